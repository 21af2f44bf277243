package mail_fx

import (
	"log"

	"go.uber.org/fx"

	"foodiesbnb/internal/config"
	"foodiesbnb/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg config.Config) services.IMailService {
	if cfg.SMTP.Host == "" {
		log.Println("SMTP not configured, acceptance mails disabled")
		return services.NoopMailService{}
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		AppName:  "FoodiesBNB",
	})
}
