package config

import "github.com/go-playground/validator/v10"

type Config struct {
	AppName                       string   `env:"APP_NAME" env-default:"catalog-feed-api" validate:"required"`
	Port                          int      `env:"PORT" env-default:"3004" validate:"gt=0,lte=65535"`
	LogLevel                      string   `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	PrettyLogs                    bool     `env:"PRETTY_LOGS" env-default:"false"`
	HttpServerWriteTimeoutSeconds int      `env:"HTTP_SERVER_WRITE_TIMEOUT_SECONDS" env-default:"30" validate:"gt=0"`
	HttpServerReadTimeoutSeconds  int      `env:"HTTP_SERVER_READ_TIMEOUT_SECONDS" env-default:"30" validate:"gt=0"`
	HttpServerIdleTimeoutSeconds  int      `env:"HTTP_SERVER_IDLE_TIMEOUT_SECONDS" env-default:"10" validate:"gt=0"`
	MaxHeaderBytes                int      `env:"HTTP_SERVER_MAX_HEADER_BYTES" env-default:"64000" validate:"gt=0"` // 64KB
	AllowOrigins                  []string `env:"HTTP_SERVER_ALLOW_ORIGINS" env-default:"*"`
	AllowMethods                  []string `env:"HTTP_SERVER_ALLOW_METHODS" env-default:"GET,POST"`

	// Upload limits
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" env-default:"16000000" validate:"gt=0"` // 16MB

	// Kafka Producer (batch lifecycle events; disabled when no brokers set)
	KafkaEnabled      bool     `env:"KAFKA_ENABLED" env-default:"false"`
	KafkaBrokers      []string `env:"KAFKA_BROKERS" env-default:"localhost:9092" validate:"required_if=KafkaEnabled true"`
	KafkaOutputTopic  string   `env:"KAFKA_OUTPUT_TOPIC" env-default:"feed-events" validate:"required_if=KafkaEnabled true"`
	KafkaBatchSize    int      `env:"KAFKA_BATCH_SIZE" env-default:"100" validate:"gt=0"`
	KafkaBatchTimeout int      `env:"KAFKA_BATCH_TIMEOUT_MS" env-default:"100" validate:"gt=0"`
	KafkaRequiredAcks int      `env:"KAFKA_REQUIRED_ACKS" env-default:"1" validate:"gte=-1,lte=1"`
	KafkaCompression  string   `env:"KAFKA_COMPRESSION" env-default:"snappy" validate:"oneof=none gzip snappy lz4 zstd"`
}

// Validate checks the bound configuration for values the service cannot
// start with.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
