package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ca-srg/brandrank/internal/types"
)

func TestLoadConfig(t *testing.T) {
	t.Run("disabled config normalizes defaults", func(t *testing.T) {
		cfg, err := LoadConfig(&types.Config{})
		require.NoError(t, err)

		require.False(t, cfg.Enabled)
		require.Equal(t, defaultServiceName, cfg.ServiceName)
		require.Equal(t, defaultExporterProtocol, cfg.ExporterProtocol)
		require.Equal(t, 60*time.Second, cfg.MetricExportInterval)
		require.Equal(t, defaultServiceName, cfg.ResourceAttributes[resourceServiceNameKey])
	})

	t.Run("enabled config requires endpoint", func(t *testing.T) {
		_, err := LoadConfig(&types.Config{OTelEnabled: true})
		require.Error(t, err)
		require.Contains(t, err.Error(), "endpoint is required")
	})

	t.Run("http endpoint must carry scheme", func(t *testing.T) {
		_, err := LoadConfig(&types.Config{
			OTelEnabled:              true,
			OTelExporterOTLPEndpoint: "collector:4318",
			OTelExporterOTLPProtocol: "http/protobuf",
		})
		require.Error(t, err)
	})

	t.Run("grpc endpoint accepts host:port", func(t *testing.T) {
		cfg, err := LoadConfig(&types.Config{
			OTelEnabled:              true,
			OTelExporterOTLPEndpoint: "collector:4317",
			OTelExporterOTLPProtocol: "grpc",
		})
		require.NoError(t, err)
		require.Equal(t, protocolGRPC, cfg.ExporterProtocol)
	})

	t.Run("parses resource attributes", func(t *testing.T) {
		cfg, err := LoadConfig(&types.Config{
			OTelResourceAttributes: "deployment.environment=dev, team=growth",
		})
		require.NoError(t, err)
		require.Equal(t, "dev", cfg.ResourceAttributes["deployment.environment"])
		require.Equal(t, "growth", cfg.ResourceAttributes["team"])
	})

	t.Run("rejects malformed resource attributes", func(t *testing.T) {
		_, err := LoadConfig(&types.Config{OTelResourceAttributes: "noequalsign"})
		require.Error(t, err)
	})
}

func TestNormalizeOTLPHTTPPath(t *testing.T) {
	endpoint, err := normalizeOTLPHTTPPath("http://collector:4318", "/v1/metrics")
	require.NoError(t, err)
	require.Equal(t, "http://collector:4318/v1/metrics", endpoint)

	endpoint, err = normalizeOTLPHTTPPath("https://collector/v1/metrics", "/v1/metrics")
	require.NoError(t, err)
	require.Equal(t, "https://collector/v1/metrics", endpoint)

	_, err = normalizeOTLPHTTPPath("  ", "/v1/metrics")
	require.Error(t, err)
}

func TestParseGRPCEndpoint(t *testing.T) {
	host, insecure, err := parseGRPCEndpoint("collector:4317")
	require.NoError(t, err)
	require.Equal(t, "collector:4317", host)
	require.False(t, insecure)

	host, insecure, err = parseGRPCEndpoint("http://collector:4317")
	require.NoError(t, err)
	require.Equal(t, "collector:4317", host)
	require.True(t, insecure)

	_, _, err = parseGRPCEndpoint("ftp://collector:4317")
	require.Error(t, err)
}
