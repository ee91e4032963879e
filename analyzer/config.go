package analyzer

import (
	"os"
	"time"
)

// Defaults for the model endpoint. BASE_URL points at the public
// inference endpoint the default model is hosted on.
const (
	DefaultBaseURL = "https://api.z.ai/api/paas/v4"
	DefaultModel   = "autoglm-phone-multilingual"
	DefaultTimeout = 60 * time.Second
)

// Config is the analyzer configuration. It is built once at startup
// and passed in explicitly; nothing in the pipeline reads the
// environment after construction.
type Config struct {
	// BaseURL is the chat-completion endpoint.
	BaseURL string

	// Model is the model identifier at that endpoint.
	Model string

	// APIKey is the bearer credential. Empty disables the tool: every
	// query fails fast with an auth error before touching the device.
	APIKey string

	// Serial selects the adb device (adb -s). Empty assumes a single
	// attached device.
	Serial string

	// Timeout bounds one whole query: capture, prompt, model call.
	Timeout time.Duration
}

// FromEnv reads the recognized environment options. Unset options
// fall back to defaults; the caller decides when (and whether) to
// load a .env file first.
func FromEnv() Config {
	cfg := Config{
		BaseURL: os.Getenv("BASE_URL"),
		Model:   os.Getenv("MODEL"),
		APIKey:  os.Getenv("APIKEY"),
		Serial:  os.Getenv("ADB_SERIAL"),
		Timeout: DefaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg
}
