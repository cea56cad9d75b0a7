package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{name: "valid config", modify: func(c *Config) {}},
		{
			name:    "missing server listen",
			modify:  func(c *Config) { c.Server.Listen = "" },
			wantErr: true,
			errMsg:  "server.listen is required",
		},
		{
			name:    "missing source url",
			modify:  func(c *Config) { c.Source.BaseURL = "" },
			wantErr: true,
			errMsg:  "source.base_url is required",
		},
		{
			name: "sync enabled without schedule",
			modify: func(c *Config) {
				c.Sync.Enabled = true
				c.Sync.Schedule = ""
			},
			wantErr: true,
			errMsg:  "sync.schedule is required when sync is enabled",
		},
		{
			name: "sync disabled without schedule",
			modify: func(c *Config) {
				c.Sync.Enabled = false
				c.Sync.Schedule = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := Default()
	require.NoError(t, validateRequiredFields(cfg))

	cfg.Source.Timeout = 10 * time.Millisecond
	err := validateRequiredFields(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.timeout")

	cfg = Default()
	cfg.Server.Timeout = 0
	err = validateRequiredFields(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.timeout is required")
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// verify schema can be marshaled to JSON
	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// verify it contains expected fields
	schemaStr := string(data)
	assert.Contains(t, schemaStr, "Config")
	assert.Contains(t, schemaStr, "server")
	assert.Contains(t, schemaStr, "classifier")
	assert.Contains(t, schemaStr, "zeroshot")
}

func TestEmbeddedSchemaIsCurrent(t *testing.T) {
	// embedded schema.json must cover every config section, regenerate with go generate otherwise
	for _, section := range []string{"server", "database", "source", "sync", "classifier", "llm", "zeroshot"} {
		assert.Contains(t, embeddedSchema, `"`+section+`"`)
	}
}
