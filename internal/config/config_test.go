package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"orgdomain/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 12*time.Hour, cfg.DomainVerification.Interval)
	require.Equal(t, 3, cfg.DomainVerification.MaxJobRunCount)
	require.Equal(t, "0 */12 * * *", cfg.DomainVerification.Schedule)
	require.True(t, cfg.DNS.TCPFallback)
	require.Empty(t, cfg.DNS.Nameservers)
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("DOMAIN_VERIFICATION_INTERVAL", "6h")

	cfg, err := config.Load(writeConfig(t, `
dns:
  nameservers: ["1.1.1.1", "8.8.8.8:53"]
  timeout: 2s
domainVerification:
  maxJobRunCount: 5
  schedule: "@hourly"
`))
	require.NoError(t, err)

	require.Equal(t, []string{"1.1.1.1", "8.8.8.8:53"}, cfg.DNS.Nameservers)
	require.Equal(t, 2*time.Second, cfg.DNS.Timeout)
	require.Equal(t, 5, cfg.DomainVerification.MaxJobRunCount)
	require.Equal(t, 6*time.Hour, cfg.DomainVerification.Interval)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad schedule", content: "domainVerification:\n  schedule: \"every day\"\n"},
		{name: "negative interval", content: "domainVerification:\n  interval: -1h\n"},
		{name: "negative run count", content: "domainVerification:\n  maxJobRunCount: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate_ZeroBatchSize(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: development\n"))
	require.NoError(t, err)

	cfg.DomainVerification.BatchSize = 0
	require.ErrorContains(t, cfg.Validate(), "batchSize")
}
