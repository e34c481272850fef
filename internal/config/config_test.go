package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Database: DatabaseConfig{
			Host:   "localhost",
			User:   "test",
			DBName: "test",
		},
		Mail: MailConfig{
			Provider:  ProviderBrevo,
			FromEmail: "noreply@example.com",
			Brevo:     BrevoConfig{APIKey: "key"},
		},
		Brochure: BrochureConfig{
			Path: "./assets/brochure.pdf",
		},
		Refresher: RefresherConfig{
			IntervalMinutes: 5,
		},
	}
}

func TestConfigValidation(t *testing.T) {
	config := validConfig()
	assert.NoError(t, config.Validate())

	invalidConfig := &Config{
		Server: ServerConfig{
			Port: "",
		},
	}
	assert.Error(t, invalidConfig.Validate())
}

func TestConfigValidationProviders(t *testing.T) {
	config := validConfig()
	config.Mail.Brevo.APIKey = ""
	assert.Error(t, config.Validate(), "brevo without API key")

	config = validConfig()
	config.Mail.Provider = ProviderSMTP
	assert.Error(t, config.Validate(), "smtp without credentials")
	config.Mail.SMTP = SMTPConfig{Host: "smtp.example.com", User: "u", Password: "p"}
	assert.NoError(t, config.Validate())

	config = validConfig()
	config.Mail.Provider = ProviderGmail
	assert.Error(t, config.Validate(), "gmail without credentials")
	config.Mail.Gmail = GmailConfig{ClientID: "id", ClientSecret: "secret", RefreshToken: "token"}
	assert.NoError(t, config.Validate())

	config = validConfig()
	config.Mail.Provider = "sendgrid"
	assert.Error(t, config.Validate(), "unknown provider")
}

func TestConfigValidationRefresher(t *testing.T) {
	config := validConfig()
	config.Refresher.IntervalMinutes = 0
	assert.Error(t, config.Validate())
}

func TestDatabaseDSN(t *testing.T) {
	config := DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
	}

	dsn := config.GetDSN()
	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=True&loc=Local"
	assert.Equal(t, expected, dsn)
}
