package config

import (
	"os"
	"simple_todo/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		val      string
		def      string
		expected string
	}{
		{
			name:     "returns existing env",
			key:      "TEST_ENV_EXIST",
			val:      "value",
			def:      "default",
			expected: "value",
		},
		{
			name:     "returns default when env missing",
			key:      "TEST_ENV_MISSING",
			val:      "",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv(tt.key, tt.val)
			} else {
				os.Unsetenv(tt.key)
			}
			assert.Equal(t, tt.expected, getenv(tt.key, tt.def))
		})
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		name      string
		val       string
		expect    string
		expectErr bool
	}{
		{"default", "", "3000", false},
		{"valid", "4000", "4000", false},
		{"zero", "0", "0", false},
		{"not a number", "abc", "", true},
		{"out of range", "70000", "", true},
		{"negative", "-1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("PORT", tt.val)
			} else {
				os.Unsetenv("PORT")
			}
			port, err := parsePort("PORT", "3000")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expect, port)
			}
		})
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		name      string
		val       string
		expect    types.LogFormat
		expectErr bool
	}{
		{"default", "", types.LogFormatConsole, false},
		{"console", "console", types.LogFormatConsole, false},
		{"json uppercase", "JSON", types.LogFormatJSON, false},
		{"invalid", "xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("LOG_FORMAT", tt.val)
			} else {
				os.Unsetenv("LOG_FORMAT")
			}
			format, err := parseLogFormat()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expect, format)
			}
		})
	}
}

func TestParseBufferSize(t *testing.T) {
	tests := []struct {
		name   string
		val    string
		expect int
	}{
		{"valid size", "4096", 4096},
		{"default size", "", 2048},
		{"too small", "128", 2048},
		{"too large", "2000000", 2048},
		{"invalid format", "abc", 2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("READ_BUFFER_SIZE", tt.val)
			} else {
				os.Unsetenv("READ_BUFFER_SIZE")
			}
			assert.Equal(t, tt.expect, parseBufferSize())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		envs      map[string]string
		expectErr bool
	}{
		{
			name:      "defaults",
			envs:      map[string]string{},
			expectErr: false,
		},
		{
			name: "invalid port",
			envs: map[string]string{
				"PORT": "http",
			},
			expectErr: true,
		},
		{
			name: "invalid todo port",
			envs: map[string]string{
				"TODO_PORT": "99999",
			},
			expectErr: true,
		},
		{
			name: "invalid grpc health port",
			envs: map[string]string{
				"GRPC_HEALTH_PORT": "grpc",
			},
			expectErr: true,
		},
		{
			name: "invalid log format",
			envs: map[string]string{
				"LOG_FORMAT": "yaml",
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			cfg, err := parse()
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := parse()
	assert.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port())
	assert.Equal(t, "public", cfg.StaticRoot())
	assert.Equal(t, 2048, cfg.BufferSize())
	assert.Equal(t, "8080", cfg.TodoPort())
	assert.Equal(t, "todos.db", cfg.DatabasePath())
	assert.Equal(t, "", cfg.GRPCHealthPort())
	assert.Equal(t, "release", cfg.GinMode())
	assert.Equal(t, "info", cfg.LogLevel())
	assert.Equal(t, types.LogFormatConsole, cfg.LogFormat())
}

func TestGetters(t *testing.T) {
	envs := map[string]string{
		"PORT":             "3333",
		"STATIC_ROOT":      "/srv/www",
		"READ_BUFFER_SIZE": "8192",
		"TODO_PORT":        "9000",
		"DATABASE_PATH":    "/tmp/todos.db",
		"GRPC_HEALTH_PORT": "9090",
		"GIN_MODE":         "debug",
		"LOG_LEVEL":        "DEBUG",
		"LOG_FORMAT":       "json",
	}

	os.Clearenv()
	for k, v := range envs {
		t.Setenv(k, v)
	}

	cfg, err := parse()
	assert.NoError(t, err)

	assert.Equal(t, "3333", cfg.Port())
	assert.Equal(t, "/srv/www", cfg.StaticRoot())
	assert.Equal(t, 8192, cfg.BufferSize())
	assert.Equal(t, "9000", cfg.TodoPort())
	assert.Equal(t, "/tmp/todos.db", cfg.DatabasePath())
	assert.Equal(t, "9090", cfg.GRPCHealthPort())
	assert.Equal(t, "debug", cfg.GinMode())
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Equal(t, types.LogFormatJSON, cfg.LogFormat())
}

func TestMustLoad(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		os.Clearenv()
		cfg, err := MustLoad()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
	})

	t.Run("loadEnvFile error", func(t *testing.T) {
		err := os.Mkdir(".env", 0755)
		assert.NoError(t, err)
		defer os.Remove(".env")

		cfg, err := MustLoad()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("parse error", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("PORT", "invalid")
		cfg, err := MustLoad()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("file exists", func(t *testing.T) {
		err := os.WriteFile(".env", []byte("TEST_ENV_FILE=true"), 0644)
		assert.NoError(t, err)
		defer os.Remove(".env")

		err = loadEnvFile()
		assert.NoError(t, err)
		assert.Equal(t, "true", os.Getenv("TEST_ENV_FILE"))
	})

	t.Run("file missing", func(t *testing.T) {
		_ = os.Remove(".env")
		err := loadEnvFile()
		assert.NoError(t, err)
	})
}
