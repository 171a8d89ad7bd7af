// Command setadmin grants or revokes the admin flag of an account.
//
//	setadmin -email owner@prestine.ng
//	setadmin -email owner@prestine.ng -revoke
package main

import (
	"flag"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/prestine-booking/internal/db"
	"github.com/BruksfildServices01/prestine-booking/internal/logging"
	"github.com/BruksfildServices01/prestine-booking/internal/models"
)

func main() {
	email := flag.String("email", "", "account email")
	revoke := flag.Bool("revoke", false, "remove the admin flag instead of granting it")
	flag.Parse()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	addr := strings.ToLower(strings.TrimSpace(*email))
	if addr == "" {
		log.Fatal("-email is required")
	}

	db := dbpkg.NewDB(cfg, log)

	res := db.Model(&models.User{}).
		Where("email = ?", addr).
		Update("is_admin", !*revoke)
	if res.Error != nil {
		log.WithError(res.Error).Fatal("failed to update user")
	}
	if res.RowsAffected == 0 {
		log.WithField("email", addr).Fatal("no account with this email")
	}

	log.WithFields(logrus.Fields{
		"email": addr,
		"admin": !*revoke,
	}).Info("admin flag updated")
}
