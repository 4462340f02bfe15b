package config

import (
	"fmt"
	"os"
	"simple_todo/types"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultBufferSize = 2048
	minBufferSize     = 512
	maxBufferSize     = 65536
)

type config struct {
	port       string
	staticRoot string
	bufferSize int

	todoPort       string
	databasePath   string
	grpcHealthPort string
	ginMode        string

	logLevel  string
	logFormat types.LogFormat
}

func parse() (*config, error) {
	port, err := parsePort("PORT", "3000")
	if err != nil {
		return nil, err
	}

	todoPort, err := parsePort("TODO_PORT", "8080")
	if err != nil {
		return nil, err
	}

	grpcHealthPort := getenv("GRPC_HEALTH_PORT", "")
	if grpcHealthPort != "" {
		if grpcHealthPort, err = parsePort("GRPC_HEALTH_PORT", ""); err != nil {
			return nil, err
		}
	}

	logFormat, err := parseLogFormat()
	if err != nil {
		return nil, err
	}

	return &config{
		port:           port,
		staticRoot:     getenv("STATIC_ROOT", "public"),
		bufferSize:     parseBufferSize(),
		todoPort:       todoPort,
		databasePath:   getenv("DATABASE_PATH", "todos.db"),
		grpcHealthPort: grpcHealthPort,
		ginMode:        getenv("GIN_MODE", "release"),
		logLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		logFormat:      logFormat,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parsePort(key, def string) (string, error) {
	raw := getenv(key, def)
	if _, err := strconv.ParseUint(raw, 10, 16); err != nil {
		return "", fmt.Errorf("invalid %s value %q", key, raw)
	}
	return raw, nil
}

func parseLogFormat() (types.LogFormat, error) {
	switch strings.ToLower(getenv("LOG_FORMAT", "console")) {
	case "console":
		return types.LogFormatConsole, nil
	case "json":
		return types.LogFormatJSON, nil
	default:
		return "", fmt.Errorf("invalid LOG_FORMAT value")
	}
}

func parseBufferSize() int {
	raw := getenv("READ_BUFFER_SIZE", strconv.Itoa(defaultBufferSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minBufferSize || size > maxBufferSize {
		log.Warn().Str("value", raw).Msgf("Invalid READ_BUFFER_SIZE, falling back to %d", defaultBufferSize)
		return defaultBufferSize
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
