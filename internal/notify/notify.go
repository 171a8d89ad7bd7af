package notify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/config"
)

type Template string

const (
	TemplateGuest    Template = "guest"
	TemplateOperator Template = "operator"
)

// Message is one templated email. Params are flat template variables.
type Message struct {
	Kind      Kind              `json:"kind"`
	BookingID string            `json:"booking_id"`
	Template  Template          `json:"template"`
	Params    map[string]string `json:"params"`
}

// Notifier delivers a message through one transport.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the transport named by NOTIFY_TRANSPORT. The returned closer
// is never nil.
func New(cfg config.NotifyConfig, log *logrus.Logger) (Notifier, io.Closer, error) {
	switch strings.ToLower(cfg.Transport) {
	case "", "emailjs":
		return NewEmailJS(cfg), nopCloser{}, nil
	case "amqp":
		p := NewPublisher(cfg.RabbitMQURL, log)
		return p, p, nil
	case "log":
		return NewLogNotifier(log), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("notify: unknown transport %q", cfg.Transport)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
