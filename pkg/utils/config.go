package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Gateway  GatewayConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

// GatewayConfig carries the payment provider credentials. It is injected
// into the gateway client at construction; nothing else reads the secret.
type GatewayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Currency  string
}

type BookingConfig struct {
	// ExpiryMinutes > 0 enables the sweep that cancels confirmed, unpaid
	// bookings older than the window. 0 disables expiry entirely.
	ExpiryMinutes int
	SweepMinutes  int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("GATEWAY_BASE_URL", "https://api.razorpay.com")
	viper.SetDefault("GATEWAY_CURRENCY", "INR")
	viper.SetDefault("BOOKING_EXPIRY_MINUTES", 0)
	viper.SetDefault("BOOKING_SWEEP_MINUTES", 5)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Gateway: GatewayConfig{
			KeyID:     viper.GetString("GATEWAY_KEY_ID"),
			KeySecret: viper.GetString("GATEWAY_KEY_SECRET"),
			BaseURL:   viper.GetString("GATEWAY_BASE_URL"),
			Currency:  viper.GetString("GATEWAY_CURRENCY"),
		},
		Booking: BookingConfig{
			ExpiryMinutes: viper.GetInt("BOOKING_EXPIRY_MINUTES"),
			SweepMinutes:  viper.GetInt("BOOKING_SWEEP_MINUTES"),
		},
	}

	return config, nil
}
