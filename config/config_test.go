package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:4000",
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.API.TimeoutSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name: "assistant enabled without key",
			mutate: func(c *Config) {
				c.Assistant.Enabled = true
				c.Assistant.BaseURL = "http://localhost:9000"
			},
			wantErr: true,
		},
		{
			name: "assistant enabled with placeholder key",
			mutate: func(c *Config) {
				c.Assistant.Enabled = true
				c.Assistant.BaseURL = "http://localhost:9000"
				c.Assistant.APIKey = "your-api-key-here"
			},
			wantErr: true,
		},
		{
			name: "assistant fully configured",
			mutate: func(c *Config) {
				c.Assistant.Enabled = true
				c.Assistant.BaseURL = "http://localhost:9000"
				c.Assistant.APIKey = "real-key"
			},
			wantErr: false,
		},
		{
			name: "assistant disabled needs no key",
			mutate: func(c *Config) {
				c.Assistant.Enabled = false
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
