package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 10,
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"search": map[string]any{
			"unlimitedRadiusMiles": 1000,
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{
			name:   "nested key aligned with yaml casing",
			rawKey: "POSTGRES_SSLMODE",
			want:   "postgres.sslMode",
		},
		{
			name:   "camelCase parent segment",
			rawKey: "SECRETKEY_ACCESS",
			want:   "secretKey.access",
		},
		{
			name:   "leaf absent from yaml keeps lowered segment",
			rawKey: "POSTGRES_PASSWORD",
			want:   "postgres.password",
		},
		{
			name:   "unknown root passes through",
			rawKey: "CUSTOM_VALUE",
			want:   "custom.value",
		},
		{
			name:   "multi word camel leaf",
			rawKey: "SEARCH_UNLIMITEDRADIUSMILES",
			want:   "search.unlimitedRadiusMiles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.InDelta(t, 25.0, cfg.Search.DefaultRadiusMiles, 0)
	assert.InDelta(t, 1000.0, cfg.Search.UnlimitedRadiusMiles, 0)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxImageBytes)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxPhotoBytes)
	assert.NotNil(t, cfg.Booking)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Search: &SearchConfig{DefaultRadiusMiles: 10, UnlimitedRadiusMiles: 500},
		Upload: &UploadConfig{MaxImageBytes: 1 << 20, MaxPhotoBytes: 2 << 20},
	}
	applyDefaults(cfg)

	assert.InDelta(t, 10.0, cfg.Search.DefaultRadiusMiles, 0)
	assert.InDelta(t, 500.0, cfg.Search.UnlimitedRadiusMiles, 0)
	assert.Equal(t, int64(1<<20), cfg.Upload.MaxImageBytes)
	assert.Equal(t, int64(2<<20), cfg.Upload.MaxPhotoBytes)
}
