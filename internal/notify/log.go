package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogNotifier only logs messages. Local development transport.
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(_ context.Context, msg Message) error {
	n.log.WithFields(logrus.Fields{
		"booking_id":     msg.BookingID,
		"kind":           msg.Kind,
		"template":       msg.Template,
		"to":             msg.Params["user_email"],
		"booking_status": msg.Params["booking_status"],
	}).Info("notification")
	return nil
}

var _ Notifier = (*LogNotifier)(nil)
