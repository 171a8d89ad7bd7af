package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/BruksfildServices01/prestine-booking/internal/config"
)

const EmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJS sends messages through the EmailJS REST API.
type EmailJS struct {
	endpoint   string
	serviceID  string
	templates  map[Template]string
	publicKey  string
	privateKey string
	http       *http.Client
}

func NewEmailJS(cfg config.NotifyConfig) *EmailJS {
	return &EmailJS{
		endpoint:  EmailJSEndpoint,
		serviceID: cfg.EmailJSServiceID,
		templates: map[Template]string{
			TemplateGuest:    cfg.EmailJSTemplateGuest,
			TemplateOperator: cfg.EmailJSTemplateOperator,
		},
		publicKey:  cfg.EmailJSPublicKey,
		privateKey: cfg.EmailJSPrivateKey,
		http:       &http.Client{Timeout: cfg.Timeout},
	}
}

// WithEndpoint points the client at another URL.
func (e *EmailJS) WithEndpoint(url string) *EmailJS {
	e.endpoint = url
	return e
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

func (e *EmailJS) Send(ctx context.Context, msg Message) error {
	templateID := e.templates[msg.Template]
	if templateID == "" {
		return fmt.Errorf("emailjs: no template configured for %q", msg.Template)
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      e.serviceID,
		TemplateID:     templateID,
		UserID:         e.publicKey,
		TemplateParams: msg.Params,
		AccessToken:    e.privateKey,
	})
	if err != nil {
		return fmt.Errorf("emailjs: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("emailjs: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.http.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs: status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}

var _ Notifier = (*EmailJS)(nil)
