package logger

import "os"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls how the SDK logger is built.
type Config struct {
	// Level is one of the level constants above. Anything else falls back to info.
	Level string `yaml:"level" env:"STARPOINT_LOG_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"STARPOINT_SERVICE_NAME"`
}

// NewConfig reads the logger configuration from environment variables.
func NewConfig() Config {
	service := os.Getenv("STARPOINT_SERVICE_NAME")
	if service == "" {
		service = "starpoint-go"
	}

	return Config{
		Level:       os.Getenv("STARPOINT_LOG_LEVEL"),
		ServiceName: service,
	}
}
