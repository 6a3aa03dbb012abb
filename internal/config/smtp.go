package config

import (
	"os"
	"strconv"
	"sync"
)

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Sender     string
	SenderName string
}

var (
	smtpConfig *SMTPConfig
	smtpOnce   sync.Once
)

func LoadSMTPConfig() *SMTPConfig {
	smtpOnce.Do(func() {
		port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if err != nil {
			port = 587
		}
		smtpConfig = &SMTPConfig{
			Host:       os.Getenv("SMTP_HOST"),
			Port:       port,
			Username:   os.Getenv("SMTP_USERNAME"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			Sender:     os.Getenv("SMTP_SENDER"),
			SenderName: os.Getenv("SMTP_SENDER_NAME"),
		}
	})
	return smtpConfig
}
