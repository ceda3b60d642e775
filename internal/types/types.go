package types

import (
	"fmt"
	"time"
)

// SearchResult represents one cleaned line of the generated ranking.
// Rank is the 1-based position among non-empty lines, in reply order.
type SearchResult struct {
	Rank int    `json:"rank"`
	Text string `json:"text"`
}

// BrandMatch is the outcome of scanning a ranking for a brand name.
// Rank and Context are only meaningful when Found is true.
type BrandMatch struct {
	Found        bool   `json:"found"`
	Rank         int    `json:"rank,omitempty"`
	Context      string `json:"context,omitempty"`
	TotalResults int    `json:"total_results"`
}

// CheckRun bundles the inputs and outputs of a single ranking check.
type CheckRun struct {
	Keyword   string         `json:"keyword"`
	Brand     string         `json:"brand"`
	Results   []SearchResult `json:"results"`
	Match     BrandMatch     `json:"match"`
	CheckedAt time.Time      `json:"checked_at"`
}

// ErrorType represents the type of error that occurred during a check
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation"
	ErrorTypeMissingCredential ErrorType = "missing_credential"
	ErrorTypeServiceInit       ErrorType = "service_init"
	ErrorTypeService           ErrorType = "service"
)

// CheckError represents a user-facing failure in the check pipeline.
// All check failures degrade to a visible message; none terminate the process.
type CheckError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface for CheckError
func (ce *CheckError) Error() string {
	if ce.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", ce.Type, ce.Message, ce.Cause)
	}
	return fmt.Sprintf("[%s] %s", ce.Type, ce.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains
func (ce *CheckError) Unwrap() error {
	return ce.Cause
}

// NewValidationError reports a keyword that failed the specificity check
func NewValidationError(message string) *CheckError {
	return &CheckError{Type: ErrorTypeValidation, Message: message}
}

// NewMissingCredentialError reports an absent API key
func NewMissingCredentialError(message string) *CheckError {
	return &CheckError{Type: ErrorTypeMissingCredential, Message: message}
}

// NewServiceInitError reports a chat client that could not be constructed
func NewServiceInitError(message string, cause error) *CheckError {
	return &CheckError{Type: ErrorTypeServiceInit, Message: message, Cause: cause}
}

// NewServiceError wraps a failure from the text-generation service
func NewServiceError(message string, cause error) *CheckError {
	return &CheckError{Type: ErrorTypeService, Message: message, Cause: cause}
}

// Config represents the brandrank configuration
type Config struct {
	// OpenAI configuration. The API key may instead be supplied per
	// invocation (flag or web form), so it is not required here.
	OpenAIAPIKey string  `json:"-" env:"OPENAI_API_KEY"`
	ChatModel    string  `json:"chat_model" env:"BRANDRANK_CHAT_MODEL,default=gpt-4o-mini"`
	Temperature  float64 `json:"temperature" env:"BRANDRANK_TEMPERATURE,default=0.3"`
	MaxTokens    int     `json:"max_tokens" env:"BRANDRANK_MAX_TOKENS,default=1000"`
	ResultCount  int     `json:"result_count" env:"BRANDRANK_RESULT_COUNT,default=10"`

	// Request timeout applied at the command boundary
	RequestTimeout time.Duration `json:"request_timeout" env:"BRANDRANK_REQUEST_TIMEOUT,default=60s"`

	// Web UI configuration
	WebUIHost            string        `json:"webui_host" env:"BRANDRANK_WEBUI_HOST,default=localhost"`
	WebUIPort            int           `json:"webui_port" env:"BRANDRANK_WEBUI_PORT,default=8081"`
	WebUIReadTimeout     time.Duration `json:"webui_read_timeout" env:"BRANDRANK_WEBUI_READ_TIMEOUT,default=30s"`
	WebUIWriteTimeout    time.Duration `json:"webui_write_timeout" env:"BRANDRANK_WEBUI_WRITE_TIMEOUT,default=120s"`
	WebUIIdleTimeout     time.Duration `json:"webui_idle_timeout" env:"BRANDRANK_WEBUI_IDLE_TIMEOUT,default=120s"`
	WebUIShutdownTimeout time.Duration `json:"webui_shutdown_timeout" env:"BRANDRANK_WEBUI_SHUTDOWN_TIMEOUT,default=30s"`

	// OpenTelemetry configuration
	OTelEnabled              bool    `json:"otel_enabled" env:"OTEL_ENABLED,default=false"`
	OTelServiceName          string  `json:"otel_service_name" env:"OTEL_SERVICE_NAME,default=brandrank"`
	OTelExporterOTLPEndpoint string  `json:"otel_exporter_otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelExporterOTLPProtocol string  `json:"otel_exporter_otlp_protocol" env:"OTEL_EXPORTER_OTLP_PROTOCOL,default=http/protobuf"`
	OTelResourceAttributes   string  `json:"otel_resource_attributes" env:"OTEL_RESOURCE_ATTRIBUTES"`
	OTelMetricIntervalSec    int     `json:"otel_metric_interval_sec" env:"OTEL_METRIC_EXPORT_INTERVAL_SEC,default=60"`
	OTelInsecure             bool    `json:"otel_insecure" env:"OTEL_EXPORTER_OTLP_INSECURE,default=false"`
	OTelTimeoutSec           float64 `json:"otel_timeout_sec" env:"OTEL_EXPORTER_OTLP_TIMEOUT_SEC,default=10"`
}
