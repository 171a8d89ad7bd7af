package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
)

const genericFailure = "Something went wrong. Please try again or contact us."

// writeError answers business rejections with their mapped status and
// logs anything else before hiding it behind a generic 500.
func writeError(c *gin.Context, log *logrus.Logger, err error, op string) {
	if _, ok := httperr.AsBusiness(err); !ok {
		log.WithFields(logrus.Fields{
			"op":   op,
			"path": c.FullPath(),
		}).WithError(err).Error("request failed")
	}
	httperr.FromError(c, err, op+"_failed", genericFailure)
}
