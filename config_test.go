package worldpay_cg_hosted

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaultBaseURL(t *testing.T) {
	assert.Equal(t, "https://secure-test.worldpay.com/jsp/merchant/xml/paymentService.jsp", Config{}.DefaultBaseURL())
	assert.Equal(t, "https://secure-test.worldpay.com/jsp/merchant/xml/paymentService.jsp", Config{Env: EnvTest}.DefaultBaseURL())
	assert.Equal(t, "https://secure.worldpay.com/jsp/merchant/xml/paymentService.jsp", Config{Env: EnvLive}.DefaultBaseURL())
	assert.Equal(t, "http://localhost:8080/xml", Config{Env: EnvLive, BaseURL: "http://localhost:8080/xml"}.DefaultBaseURL())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{MerchantCode: "ACMECO", Password: "x"}, false},
		{"live", Config{MerchantCode: "ACMECO", Password: "x", Env: EnvLive}, false},
		{"missing merchant", Config{Password: "x"}, true},
		{"missing password", Config{MerchantCode: "ACMECO"}, true},
		{"unknown env", Config{MerchantCode: "ACMECO", Password: "x", Env: "prod"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigAuthUsername(t *testing.T) {
	assert.Equal(t, "ACMECO", Config{MerchantCode: "ACMECO"}.AuthUsername())
	assert.Equal(t, "XMLUSER", Config{MerchantCode: "ACMECO", Username: "XMLUSER"}.AuthUsername())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("WPCG_MERCHANT_CODE", "ACMECO")
	t.Setenv("WPCG_PASSWORD", "s3cret")
	t.Setenv("WPCG_INSTALLATION_ID", "ABC123")
	t.Setenv("WPCG_ENV", "live")
	t.Setenv("WPCG_SUCCESS_URL", "https://shop.example/ok")

	cfg := LoadConfigFromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ACMECO", cfg.MerchantCode)
	assert.Equal(t, "s3cret", cfg.Password)
	assert.Equal(t, "ABC123", cfg.InstallationID)
	assert.Equal(t, EnvLive, cfg.Env)
	assert.Equal(t, "https://shop.example/ok", cfg.SuccessURL)
	assert.Equal(t, "ACMECO", cfg.AuthUsername())
}

func TestLoadConfigFromEnvDefaultsToTest(t *testing.T) {
	t.Setenv("WPCG_ENV", "staging")
	assert.Equal(t, EnvTest, LoadConfigFromEnv().Env)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WPCG_MERCHANT_CODE=DOTENVCO\nWPCG_PASSWORD=fromfile\n"), 0o600))

	// Existing variables win over the file.
	t.Setenv("WPCG_PASSWORD", "fromenv")
	t.Setenv("WPCG_MERCHANT_CODE", "")
	require.NoError(t, os.Unsetenv("WPCG_MERCHANT_CODE"))

	cfg := LoadConfigFromDotEnv(path)
	assert.Equal(t, "DOTENVCO", cfg.MerchantCode)
	assert.Equal(t, "fromenv", cfg.Password)
}

func TestLoadConfigFromDotEnvMissingFile(t *testing.T) {
	t.Setenv("WPCG_MERCHANT_CODE", "ACMECO")
	cfg := LoadConfigFromDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "ACMECO", cfg.MerchantCode)
}
