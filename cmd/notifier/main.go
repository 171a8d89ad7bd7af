// Command notifier drains the booking notification queue into EmailJS.
// Run it when the API uses NOTIFY_TRANSPORT=amqp.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/BruksfildServices01/prestine-booking/internal/config"
	"github.com/BruksfildServices01/prestine-booking/internal/logging"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	timezone.SetBusiness(cfg.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := notify.NewConsumer(cfg.Notify.RabbitMQURL, notify.NewEmailJS(cfg.Notify), log)

	log.WithField("queue", notify.QueueName).Info("notifier started")
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("notifier stopped")
	}
	log.Info("notifier stopped")
}
