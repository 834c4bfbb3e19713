package config

import "os"

type Config struct {
	Port     string
	Mongo    MongoConfig
	SMTP     SMTPConfig
	RabbitMQ RabbitMQConfig
	// Bucket name for uploaded assets (GLB models, images). Referenced by
	// chapter sections but uploads themselves go through another service.
	UploadsBucket string
}

type MongoConfig struct {
	URI      string
	Database string
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

type RabbitMQConfig struct {
	URI      string
	Exchange string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGO_URI"),
			Database: getEnv("DB_NAME", "elearning"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: os.Getenv("GMAIL_USER"),
			Password: os.Getenv("GMAIL_PASS"),
		},
		RabbitMQ: RabbitMQConfig{
			URI:      os.Getenv("RABBITMQ_URI"),
			Exchange: os.Getenv("RABBITMQ_EXCHANGE"),
		},
		UploadsBucket: getEnv("SUPABASE_BUCKET_UPLOADS", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
