package config

import (
	"net"
	"net/url"
	"time"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	AcceptedOrigins []string
	LogLevel        string
	LogFormat       string

	Database DatabaseConfig
	AWS      AWSConfig
	Storage  StorageConfig
	Email    EmailConfig

	AdminPassword         string
	AdminPasswordSSMParam string

	AutoMigrate    bool
	GenerateModels bool
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	ReplicaHost  string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN renders a postgres:// URL for host. Credentials and database name are
// escaped, so any password is safe to use.
func (c DatabaseConfig) DSN(host string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type StorageConfig struct {
	UseLocal       bool
	LocalDir       string
	Bucket         string
	Region         string
	Endpoint       string
	UsePathStyle   bool
	PublicBaseURL  string
	MaxUploadBytes int64
}

const (
	EmailProviderSES    = "ses"
	EmailProviderResend = "resend"
)

type EmailConfig struct {
	UseLocal     bool
	Provider     string
	Sender       string
	Recipient    string
	Region       string
	ResendAPIKey string
}

// Load builds a Config from an environment map such as the one returned by New.
// Defaults favour local development: local disk uploads and console email.
func Load(env map[string]string) Config {
	region := GetString(env, "AWS_REGION", "us-east-1")

	return Config{
		Port:            GetString(env, "PORT", "5000"),
		ReadTimeout:     time.Duration(GetInt(env, "READ_TIMEOUT_SECONDS", 180)) * time.Second,
		WriteTimeout:    time.Duration(GetInt(env, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
		IdleTimeout:     time.Duration(GetInt(env, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second,
		AcceptedOrigins: GetList(env, "ACCEPTED_ORIGINS", []string{"*"}),
		LogLevel:        GetString(env, "LOG_LEVEL", "info"),
		LogFormat:       GetString(env, "LOG_FORMAT", "json"),

		Database: DatabaseConfig{
			Host:         GetString(env, "DB_HOST", "localhost"),
			Port:         GetString(env, "DB_PORT", "5432"),
			Name:         GetString(env, "DB_NAME", "portfolio"),
			User:         GetString(env, "DB_USER", "postgres"),
			Password:     GetString(env, "DB_PASSWORD", "postgres"),
			SSLMode:      GetString(env, "DB_SSLMODE", "disable"),
			ReplicaHost:  GetString(env, "DB_REPLICA_HOST", ""),
			MaxOpenConns: GetInt(env, "DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: GetInt(env, "DB_MAX_IDLE_CONNS", 5),
		},

		AWS: AWSConfig{
			Region:          region,
			AccessKeyID:     GetString(env, "AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: GetString(env, "AWS_SECRET_ACCESS_KEY", ""),
		},

		Storage: StorageConfig{
			UseLocal:       GetBool(env, "USE_LOCAL_STORAGE", true),
			LocalDir:       GetString(env, "LOCAL_UPLOAD_DIR", "uploads"),
			Bucket:         GetString(env, "S3_BUCKET", "portfolio-images-dev"),
			Region:         region,
			Endpoint:       GetString(env, "S3_ENDPOINT", ""),
			UsePathStyle:   GetBool(env, "S3_USE_PATH_STYLE", false),
			PublicBaseURL:  GetString(env, "S3_PUBLIC_BASE_URL", ""),
			MaxUploadBytes: int64(GetInt(env, "MAX_UPLOAD_MB", 16)) << 20,
		},

		Email: EmailConfig{
			UseLocal:     GetBool(env, "USE_LOCAL_EMAIL", true),
			Provider:     GetString(env, "EMAIL_PROVIDER", EmailProviderSES),
			Sender:       GetString(env, "SES_SENDER_EMAIL", "noreply@example.com"),
			Recipient:    GetString(env, "SES_RECIPIENT_EMAIL", "your-email@example.com"),
			Region:       GetString(env, "SES_REGION", region),
			ResendAPIKey: GetString(env, "RESEND_API_KEY", ""),
		},

		AdminPassword:         GetString(env, "ADMIN_PASSWORD", "admin123"),
		AdminPasswordSSMParam: GetString(env, "ADMIN_PASSWORD_SSM_PARAM", ""),

		AutoMigrate:    GetBool(env, "AUTO_MIGRATE", false),
		GenerateModels: GetBool(env, "GENERATE_MODELS", false),
	}
}

// NeedsAWS reports whether any configured backend talks to AWS.
func (c Config) NeedsAWS() bool {
	if !c.Storage.UseLocal {
		return true
	}
	if !c.Email.UseLocal && c.Email.Provider == EmailProviderSES {
		return true
	}
	return c.AdminPasswordSSMParam != ""
}
