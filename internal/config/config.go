package config

import (
	"time"

	"github.com/gbmfoods/admin-api/pkg/logger"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Firestore FirestoreConfig
	JWT       JWTConfig
	OAuth     OAuthConfig
	Paystack  PaystackConfig
	Printer   PrinterConfig
	Receipt   ReceiptConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type PaystackConfig struct {
	SecretKey string
	BaseURL   string
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
}

type ReceiptConfig struct {
	StoreName    string
	Currency     string
	ThankYouLine string
	FooterLine   string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.L().Warn(".env file not found, using environment variables")
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "gbm-admin-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("FIRESTORE_PROJECT_ID", "gbm-foods")
	viper.SetDefault("FIRESTORE_CREDENTIALS_FILE", "")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("PAYSTACK_SECRET_KEY", "")
	viper.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("RECEIPT_STORE_NAME", "GBM Foods")
	viper.SetDefault("RECEIPT_CURRENCY", "$")
	viper.SetDefault("RECEIPT_THANK_YOU_LINE", "Thank you for your patronage!")
	viper.SetDefault("RECEIPT_FOOTER_LINE", "GBM Foods Marketplace - gbmfoods.com")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Firestore: FirestoreConfig{
			ProjectID:       viper.GetString("FIRESTORE_PROJECT_ID"),
			CredentialsFile: viper.GetString("FIRESTORE_CREDENTIALS_FILE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		OAuth: OAuthConfig{
			GoogleClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
			GoogleRedirectURL:  viper.GetString("GOOGLE_REDIRECT_URL"),
		},
		Paystack: PaystackConfig{
			SecretKey: viper.GetString("PAYSTACK_SECRET_KEY"),
			BaseURL:   viper.GetString("PAYSTACK_BASE_URL"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		Receipt: ReceiptConfig{
			StoreName:    viper.GetString("RECEIPT_STORE_NAME"),
			Currency:     viper.GetString("RECEIPT_CURRENCY"),
			ThankYouLine: viper.GetString("RECEIPT_THANK_YOU_LINE"),
			FooterLine:   viper.GetString("RECEIPT_FOOTER_LINE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
