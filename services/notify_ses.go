package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog/log"
)

// EmailSender is the subset of the SES v2 client used for notifications.
type EmailSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESNotifier struct {
	client    EmailSender
	sender    string
	recipient string
}

func NewSESNotifier(client EmailSender, sender, recipient string) *SESNotifier {
	return &SESNotifier{client: client, sender: sender, recipient: recipient}
}

func (n *SESNotifier) Notify(ctx context.Context, name, email, message string) error {
	out, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.sender),
		Destination:      &types.Destination{ToAddresses: []string{n.recipient}},
		ReplyToAddresses: []string{email},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(contactSubject(name)), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(contactBody(name, email, message)), Charset: aws.String("UTF-8")},
				},
			},
		},
	})
	if err != nil {
		return errs.NewNotificationFailedError(config.EmailProviderSES, err)
	}

	log.Info().Str("messageId", aws.ToString(out.MessageId)).Msg("Successfully sent email via SES")
	return nil
}
