package config

import "simple_todo/types"

type Config interface {
	Port() string
	StaticRoot() string
	BufferSize() int

	TodoPort() string
	DatabasePath() string
	GRPCHealthPort() string
	GinMode() string

	LogLevel() string
	LogFormat() types.LogFormat
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Port() string               { return c.port }
func (c *config) StaticRoot() string         { return c.staticRoot }
func (c *config) BufferSize() int            { return c.bufferSize }
func (c *config) TodoPort() string           { return c.todoPort }
func (c *config) DatabasePath() string       { return c.databasePath }
func (c *config) GRPCHealthPort() string     { return c.grpcHealthPort }
func (c *config) GinMode() string            { return c.ginMode }
func (c *config) LogLevel() string           { return c.logLevel }
func (c *config) LogFormat() types.LogFormat { return c.logFormat }
