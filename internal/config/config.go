package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type PaymentConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	PaymentDB  `yaml:"payment_db"`
	Razorpay   `yaml:"razorpay"`
	Mailer     `yaml:"mailer"`
	KafkaService `yaml:"kafka-service"`
	LogConfig  `yaml:"log_config"`
	Migrations `yaml:"migrations"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PaymentDB struct {
	Dsn string `yaml:"dsn"`
}

type Razorpay struct {
	KeyID          string `yaml:"key_id" env:"RAZORPAY_KEY_ID"`
	KeySecret      string `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET"`
	WebhookSecret  string `yaml:"webhook_secret" env:"RAZORPAY_WEBHOOK_SECRET"`
	BaseURL        string `yaml:"base_url" env-default:"https://api.razorpay.com/v1"`
	MaxAmountMinor int64  `yaml:"max_amount_minor" env-default:"50000000"`
}

type Mailer struct {
	APIAddress string `yaml:"api_address"`
	APIKey     string `yaml:"api_key" env:"MAILER_API_KEY"`
	Sender     string `yaml:"sender"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"payment-events"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type Migrations struct {
	Path string `yaml:"path" env-default:"migrations"`
}

func MustLoad() *PaymentConfig {

	// Processing env config variable and file
	configPath := os.Getenv("PAYMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PAYMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg PaymentConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
