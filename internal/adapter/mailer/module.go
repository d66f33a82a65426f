package mailer

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gophershop/internal/config"
)

// Module exposes SMTP mail sender to fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
}

func newSender(p senderParams) Sender {
	return NewSMTPSender(p.Config.SMTPHost, p.Config.SMTPPort, p.Config.SMTPUser, p.Config.SMTPPassword, p.Config.MailFrom)
}
