package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL"`
	MigrationsPath string        `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	AdminAddr      string        `env:"ADMIN_ADDR" envDefault:":8081"`
	AdminEmail     string        `env:"ADMIN_EMAIL" envDefault:"admin@localhost"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL         string `env:"RABBITMQ_URL"`
	Exchange    string `env:"RABBITMQ_EXCHANGE" envDefault:"orders-ex"`
	ImportQueue string `env:"RABBITMQ_IMPORT_QUEUE" envDefault:"orders.pricelist-imports"`
	ImportKey   string `env:"RABBITMQ_IMPORT_KEY" envDefault:"pricelist-imports"`
}
