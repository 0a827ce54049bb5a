package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/cloud-wave-best-zizon/stockify-web/pkg/redis"
	"github.com/cloud-wave-best-zizon/stockify-web/pkg/tls"
	"github.com/kelseyhightower/envconfig"
)

const (
	SessionBackendMemory   = "memory"
	SessionBackendDynamoDB = "dynamodb"
	SessionBackendRedis    = "redis"
)

// ServiceConfig holds the remote web service endpoints.
type ServiceConfig struct {
	CategoryURL string `envconfig:"CATEGORY_WS_URL" default:"http://localhost:8081/StockifyWS/CategoriaWS"`
	ProductURL  string `envconfig:"PRODUCT_WS_URL" default:"http://localhost:8081/StockifyWS/ProductoWS"`
	CompanyURL  string `envconfig:"COMPANY_WS_URL" default:"http://localhost:8081/StockifyWS/EmpresaWS"`
	StockURL    string `envconfig:"STOCK_WS_URL" default:"http://localhost:8081/StockifyWS/ExistenciasWS"`
	Namespace   string `envconfig:"WS_NAMESPACE" default:"http://services.stockify.pe/"`
}

type SessionConfig struct {
	SessionBackend   string        `envconfig:"SESSION_BACKEND" default:"memory"`
	SessionTTL       time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	AWSRegion        string        `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	SessionTableName string        `envconfig:"SESSION_TABLE_NAME" default:"stockify-form-sessions"`
	DynamoDBEndpoint string        `envconfig:"DYNAMODB_ENDPOINT"` // local DynamoDB, uses static credentials
}

type KafkaConfig struct {
	KafkaBrokers string `envconfig:"KAFKA_BROKERS"` // empty disables event publishing
	KafkaTopic   string `envconfig:"KAFKA_TOPIC" default:"inventory-events"`
}

type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LocalMode bool   `envconfig:"LOCAL_MODE" default:"true"` // development logging, memory sessions

	ServiceConfig
	SessionConfig
	KafkaConfig
	redis.Config
	tls.TLSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.SessionBackend = strings.ToLower(strings.TrimSpace(c.SessionBackend))
	if c.LocalMode && c.SessionBackend == "" {
		c.SessionBackend = SessionBackendMemory
	}
	switch c.SessionBackend {
	case SessionBackendMemory, SessionBackendDynamoDB, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.SessionBackend)
	}
	return nil
}

// Brokers splits KAFKA_BROKERS on commas.
func (c *Config) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
