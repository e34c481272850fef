package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Mail provider identifiers accepted by MailConfig.Provider.
const (
	ProviderBrevo = "brevo"
	ProviderSMTP  = "smtp"
	ProviderGmail = "gmail"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Mail      MailConfig      `mapstructure:"mail"`
	Brochure  BrochureConfig  `mapstructure:"brochure"`
	Refresher RefresherConfig `mapstructure:"refresher"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// MailConfig holds transactional mail provider configuration. The concrete
// provider is selected by Provider; only its credential block needs to be set.
type MailConfig struct {
	Provider    string      `mapstructure:"provider"`
	FromEmail   string      `mapstructure:"from_email"`
	FromName    string      `mapstructure:"from_name"`
	CompanyName string      `mapstructure:"company_name"`
	Brevo       BrevoConfig `mapstructure:"brevo"`
	SMTP        SMTPConfig  `mapstructure:"smtp"`
	Gmail       GmailConfig `mapstructure:"gmail"`
}

// BrevoConfig holds Brevo transactional API credentials
type BrevoConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// SMTPConfig holds SMTP relay credentials
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// GmailConfig holds Gmail API OAuth2 credentials
type GmailConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RefreshToken string `mapstructure:"refresh_token"`
	UserEmail    string `mapstructure:"user_email"`
}

// BrochureConfig holds the brochure attachment configuration
type BrochureConfig struct {
	Path           string `mapstructure:"path"`
	AttachmentName string `mapstructure:"attachment_name"`
	DownloadURL    string `mapstructure:"download_url"`
}

// RefresherConfig holds the subscriber stats refresher configuration
type RefresherConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes"`
}

// LoadConfig loads configuration from environment variables and config file
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables override config file
	viper.AutomaticEnv()
	bindEnvVars()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)

	viper.SetDefault("mail.provider", ProviderBrevo)
	viper.SetDefault("mail.from_name", "Digital Reception")
	viper.SetDefault("mail.company_name", "Digital Reception")
	viper.SetDefault("mail.smtp.port", 587)

	viper.SetDefault("brochure.path", "./assets/DigitalReceptionBrochure.pdf")
	viper.SetDefault("brochure.attachment_name", "Digital-Reception-Brochure.pdf")

	viper.SetDefault("refresher.interval_minutes", 5)
}

// bindEnvVars binds environment variables to configuration keys
func bindEnvVars() {
	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	// Database
	viper.BindEnv("database.host", "DB_HOST")
	viper.BindEnv("database.port", "DB_PORT")
	viper.BindEnv("database.user", "DB_USER")
	viper.BindEnv("database.password", "DB_PASSWORD")
	viper.BindEnv("database.dbname", "DB_NAME")

	// Mail
	viper.BindEnv("mail.provider", "MAIL_PROVIDER")
	viper.BindEnv("mail.from_email", "FROM_EMAIL")
	viper.BindEnv("mail.from_name", "FROM_NAME")
	viper.BindEnv("mail.company_name", "COMPANY_NAME")
	viper.BindEnv("mail.brevo.api_key", "BREVO_API_KEY")
	viper.BindEnv("mail.smtp.host", "SMTP_HOST")
	viper.BindEnv("mail.smtp.port", "SMTP_PORT")
	viper.BindEnv("mail.smtp.user", "SMTP_USER")
	viper.BindEnv("mail.smtp.password", "SMTP_PASSWORD")
	viper.BindEnv("mail.gmail.client_id", "GMAIL_CLIENT_ID")
	viper.BindEnv("mail.gmail.client_secret", "GMAIL_CLIENT_SECRET")
	viper.BindEnv("mail.gmail.refresh_token", "GMAIL_REFRESH_TOKEN")
	viper.BindEnv("mail.gmail.user_email", "GMAIL_USER_EMAIL")

	// Brochure
	viper.BindEnv("brochure.path", "BROCHURE_PATH")
	viper.BindEnv("brochure.attachment_name", "BROCHURE_ATTACHMENT_NAME")
	viper.BindEnv("brochure.download_url", "BROCHURE_DOWNLOAD_URL")

	// Refresher
	viper.BindEnv("refresher.interval_minutes", "REFRESHER_INTERVAL_MINUTES")
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("database host, user, and dbname are required")
	}

	if c.Mail.FromEmail == "" {
		return fmt.Errorf("mail from_email is required")
	}

	switch c.Mail.Provider {
	case ProviderBrevo:
		if c.Mail.Brevo.APIKey == "" {
			return fmt.Errorf("Brevo API key is required when using the brevo provider")
		}
	case ProviderSMTP:
		if c.Mail.SMTP.Host == "" || c.Mail.SMTP.User == "" || c.Mail.SMTP.Password == "" {
			return fmt.Errorf("SMTP host, user, and password are required when using the smtp provider")
		}
	case ProviderGmail:
		if c.Mail.Gmail.ClientID == "" || c.Mail.Gmail.ClientSecret == "" || c.Mail.Gmail.RefreshToken == "" {
			return fmt.Errorf("Gmail OAuth2 credentials are required when using the gmail provider")
		}
	default:
		return fmt.Errorf("unknown mail provider: %q", c.Mail.Provider)
	}

	if c.Brochure.Path == "" {
		return fmt.Errorf("brochure path is required")
	}

	if c.Refresher.IntervalMinutes <= 0 {
		return fmt.Errorf("refresher interval must be greater than 0")
	}

	return nil
}
