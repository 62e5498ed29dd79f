package worldpay_cg_hosted

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment represents the Worldpay environment (test or live).
type Environment string

const (
	EnvTest Environment = "test"
	EnvLive Environment = "live"
)

const (
	endpointHostTest = "https://secure-test.worldpay.com"
	endpointHostLive = "https://secure.worldpay.com"
	endpointPath     = "/jsp/merchant/xml/paymentService.jsp"
)

// Config holds the credentials and settings needed to interact with the
// Worldpay Corporate Gateway hosted XML API.
type Config struct {
	// MerchantCode is the Worldpay merchant code.
	MerchantCode string

	// InstallationID identifies the hosted payment page installation.
	InstallationID string

	// Username is the XML API username. When empty, MerchantCode is used.
	Username string

	// Password is the XML API password.
	Password string

	// Env selects test or live endpoints.
	Env Environment

	// BaseURL optionally overrides the XML endpoint URL.
	// When empty, the URL is derived from Env.
	BaseURL string

	// AcceptHeader and UserAgentHeader are used for orders that don't
	// carry the shopper's own browser headers.
	AcceptHeader    string
	UserAgentHeader string

	// SuccessURL, FailureURL and CancelURL are used for orders that don't
	// carry their own redirect URLs.
	SuccessURL string
	FailureURL string
	CancelURL  string

	// P12Path optionally points at a P12/PFX client certificate presented
	// on the TLS connection to Worldpay.
	P12Path     string
	P12Password string

	// Timeout bounds each HTTP request. Defaults to 30 seconds.
	Timeout time.Duration

	// Logger receives client logs. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Validate checks that the required configuration fields are present.
func (c Config) Validate() error {
	if c.MerchantCode == "" {
		return fmt.Errorf("worldpay_cg_hosted: MerchantCode is required")
	}
	if c.Password == "" {
		return fmt.Errorf("worldpay_cg_hosted: Password is required")
	}
	if c.Env != "" && c.Env != EnvTest && c.Env != EnvLive {
		return fmt.Errorf("worldpay_cg_hosted: unknown environment %q", c.Env)
	}
	return nil
}

// DefaultBaseURL returns the XML endpoint for the configured environment.
func (c Config) DefaultBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Env == EnvLive {
		return endpointHostLive + endpointPath
	}
	return endpointHostTest + endpointPath
}

// AuthUsername returns the Basic auth username: Username, or MerchantCode
// when no username is configured.
func (c Config) AuthUsername() string {
	if c.Username != "" {
		return c.Username
	}
	return c.MerchantCode
}

func (c Config) logger() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return *c.Logger
}

// LoadConfigFromEnv creates a Config from environment variables:
//
//	WPCG_MERCHANT_CODE     – merchant code (required)
//	WPCG_PASSWORD          – XML API password (required)
//	WPCG_USERNAME          – XML API username, defaults to the merchant code
//	WPCG_INSTALLATION_ID   – hosted payment page installation
//	WPCG_ENV               – "test" (default) or "live"
//	WPCG_BASE_URL          – optional endpoint override
//	WPCG_ACCEPT_HEADER     – default browser Accept header
//	WPCG_USER_AGENT_HEADER – default browser User-Agent header
//	WPCG_SUCCESS_URL       – default success redirect
//	WPCG_FAILURE_URL       – default failure redirect
//	WPCG_CANCEL_URL        – default cancel redirect
//	WPCG_P12_PATH          – optional client certificate
//	WPCG_P12_PASSWORD      – client certificate password
func LoadConfigFromEnv() Config {
	return configFromEnv()
}

// LoadConfigFromDotEnv loads environment variables from a .env file and then
// reads the Config from them. If the file does not exist it silently falls
// back to the current process environment.
func LoadConfigFromDotEnv(filenames ...string) Config {
	// godotenv.Load does NOT override existing env vars.
	_ = godotenv.Load(filenames...)
	return configFromEnv()
}

func configFromEnv() Config {
	env := EnvTest
	if os.Getenv("WPCG_ENV") == string(EnvLive) {
		env = EnvLive
	}

	return Config{
		MerchantCode:    os.Getenv("WPCG_MERCHANT_CODE"),
		InstallationID:  os.Getenv("WPCG_INSTALLATION_ID"),
		Username:        os.Getenv("WPCG_USERNAME"),
		Password:        os.Getenv("WPCG_PASSWORD"),
		Env:             env,
		BaseURL:         os.Getenv("WPCG_BASE_URL"),
		AcceptHeader:    os.Getenv("WPCG_ACCEPT_HEADER"),
		UserAgentHeader: os.Getenv("WPCG_USER_AGENT_HEADER"),
		SuccessURL:      os.Getenv("WPCG_SUCCESS_URL"),
		FailureURL:      os.Getenv("WPCG_FAILURE_URL"),
		CancelURL:       os.Getenv("WPCG_CANCEL_URL"),
		P12Path:         os.Getenv("WPCG_P12_PATH"),
		P12Password:     os.Getenv("WPCG_P12_PASSWORD"),
	}
}
