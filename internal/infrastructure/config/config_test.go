package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "po-intake", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stdout", cfg.Log.Output)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name: "idle conns exceed open conns",
			mutate: func(c *Config) {
				c.Database.MaxIdleConns = 100
			},
			wantErr: "cannot exceed",
		},
		{
			name: "production requires password",
			mutate: func(c *Config) {
				c.App.Env = "production"
				c.Database.SSLMode = "require"
			},
			wantErr: "password is required",
		},
		{
			name: "production rejects sslmode disable",
			mutate: func(c *Config) {
				c.App.Env = "production"
				c.Database.Password = "secret"
			},
			wantErr: "sslmode",
		},
		{
			name: "production rejects full SQL logging",
			mutate: func(c *Config) {
				c.App.Env = "production"
				c.Database.Password = "secret"
				c.Database.SSLMode = "require"
				c.Telemetry.DBLogFullSQL = true
			},
			wantErr: "db_log_full_sql",
		},
		{
			name: "sampling ratio out of range",
			mutate: func(c *Config) {
				c.Telemetry.SamplingRatio = 1.5
			},
			wantErr: "sampling_ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDSNEscapesCredentials(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "svc user",
		Password: "p@ss/word#1",
		DBName:   "po_intake",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word#1")
}
