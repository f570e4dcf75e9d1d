package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/errs"
)

// Notifier tells the site owner about a new contact form submission.
type Notifier interface {
	Notify(ctx context.Context, senderName, senderEmail, message string) error
}

// NewNotifier picks the notification backend once from configuration.
func NewNotifier(cfg config.EmailConfig, awsCfg aws.Config) (Notifier, error) {
	if cfg.UseLocal {
		return NewConsoleNotifier(os.Stdout, cfg.Recipient), nil
	}

	switch cfg.Provider {
	case config.EmailProviderSES:
		return NewSESNotifier(sesv2.NewFromConfig(awsCfg, sesRegion(cfg.Region)), cfg.Sender, cfg.Recipient), nil
	case config.EmailProviderResend:
		if cfg.ResendAPIKey == "" {
			return nil, errs.NewConfigError("RESEND_API_KEY", "required for the resend provider")
		}
		client := &http.Client{Timeout: 10 * time.Second}
		return NewResendNotifier(client, ResendEndpoint, cfg.ResendAPIKey, cfg.Sender, cfg.Recipient), nil
	default:
		return nil, errs.NewConfigError("EMAIL_PROVIDER", fmt.Sprintf("unknown provider %q", cfg.Provider))
	}
}

// sesRegion overrides the region of the SES client when one is configured.
func sesRegion(region string) func(*sesv2.Options) {
	return func(o *sesv2.Options) {
		if region != "" {
			o.Region = region
		}
	}
}

func contactSubject(name string) string {
	return "Portfolio Contact: Message from " + name
}

func contactBody(name, email, message string) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", name, email, message)
}

// ConsoleNotifier prints submissions for local development.
type ConsoleNotifier struct {
	out       io.Writer
	recipient string
}

func NewConsoleNotifier(out io.Writer, recipient string) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, recipient: recipient}
}

func (n *ConsoleNotifier) Notify(_ context.Context, name, email, message string) error {
	rule := "============================================================"
	fmt.Fprintf(n.out, "\n%s\nNEW CONTACT MESSAGE (local mode, email not sent)\n%s\nFrom: %s <%s>\nTo: %s\nSubject: %s\n\n%s\n%s\n",
		rule, rule, name, email, n.recipient, contactSubject(name), message, rule)
	return nil
}
