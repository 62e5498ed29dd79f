package worldpay_cg_hosted

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	names map[string][]string
	err   error
	calls int
}

func (r *fakeResolver) LookupAddr(_ context.Context, addr string) ([]string, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if names, ok := r.names[addr]; ok {
		return names, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: addr, IsNotFound: true}
}

func worldpayResolver() *fakeResolver {
	return &fakeResolver{names: map[string][]string{
		"195.35.90.111": {"hello.worldpay.com."},
		"1.2.3.4":       {"wpnotifier.worldpay.com"},
		"10.0.0.1":      {"evil.example.com."},
		"10.0.0.2":      {"notworldpay.com."},
		"10.0.0.3":      {"worldpay.com."},
		"10.0.0.4":      {"PAY.WorldPay.COM."},
	}}
}

const notificationTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE paymentService PUBLIC "-//WorldPay//DTD WorldPay PaymentService v1//EN" "http://dtd.worldpay.com/paymentService_v1.dtd">
<paymentService version="1.4" merchantCode="ACMECO">
  <notify>
    <orderStatusEvent orderCode="11111111-0000-0000-0000-000011110000">
      <payment>
        <paymentMethod>ECMC-SSL</paymentMethod>
        <amount value="745" currencyCode="GBP" exponent="2" debitCreditIndicator="credit"/>
        <lastEvent>%s</lastEvent>
        <AuthorisationId id="622206"/>
      </payment>
      <token>
        <tokenDetails tokenEvent="NEW">
          <paymentTokenID>9914233438784841</paymentTokenID>
          <paymentTokenExpiry>
            <date dayOfMonth="17" month="4" year="2026" hour="13" minute="6" second="9"/>
          </paymentTokenExpiry>
        </tokenDetails>
      </token>
    </orderStatusEvent>
  </notify>
</paymentService>`

func notificationBody(status string) []byte {
	return []byte(fmt.Sprintf(notificationTemplate, status))
}

func newTestNotification(t *testing.T, data []byte, originIP string, opts NotificationOptions) *Notification {
	t.Helper()
	if opts.Resolver == nil {
		opts.Resolver = worldpayResolver()
	}
	n, err := NewNotification(context.Background(), data, originIP, opts)
	require.NoError(t, err)
	return n
}

func TestNotificationAuthorisedFromWorldpay(t *testing.T) {
	n := newTestNotification(t, notificationBody("AUTHORISED"), "195.35.90.111", NotificationOptions{})

	status, ok := n.Status()
	require.True(t, ok)
	assert.Equal(t, StatusAuthorised, status)
	assert.True(t, n.HasStatus())
	assert.True(t, n.OriginIsValid())
	assert.True(t, n.IsValid())
	assert.True(t, n.IsSuccessful())
	assert.True(t, n.IsAuthorised())
	assert.Equal(t, TransactionStatusCompleted, n.TransactionStatus())
	assert.Equal(t, "[OK]", n.ResponseBody())
	assert.Equal(t, 200, n.ResponseStatusCode())
}

func TestNotificationPaymentDetails(t *testing.T) {
	n := newTestNotification(t, notificationBody("AUTHORISED"), "195.35.90.111", NotificationOptions{})

	cardType, ok := n.CardType()
	require.True(t, ok)
	assert.Equal(t, "ECMC-SSL", cardType)

	code, ok := n.AuthorisationCode()
	require.True(t, ok)
	assert.Equal(t, "622206", code)

	amount, ok := n.Amount()
	require.True(t, ok)
	assert.Equal(t, "7.45", amount.StringFixed(2))

	currency, ok := n.Currency()
	require.True(t, ok)
	assert.Equal(t, "GBP", currency)

	id, ok := n.TransactionID()
	require.True(t, ok)
	assert.Equal(t, "11111111-0000-0000-0000-000011110000", id)
	ref, ok := n.TransactionReference()
	require.True(t, ok)
	assert.Equal(t, id, ref)

	token, ok := n.PaymentTokenID()
	require.True(t, ok)
	assert.Equal(t, "9914233438784841", token)

	expiry, ok := n.PaymentTokenExpiry()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.April, 17, 13, 6, 9, 0, time.UTC), expiry)
}

func TestNotificationRefused(t *testing.T) {
	n := newTestNotification(t, notificationBody("REFUSED"), "195.35.90.111", NotificationOptions{})

	assert.True(t, n.IsValid())
	assert.False(t, n.IsSuccessful())
	assert.False(t, n.IsAuthorised())
	assert.Equal(t, TransactionStatusFailed, n.TransactionStatus())
	// A genuine but unsuccessful notification is still acknowledged.
	assert.Equal(t, ResponseBodySuccess, n.ResponseBody())
	assert.Equal(t, ResponseCodeSuccess, n.ResponseStatusCode())
}

func TestNotificationCustomSuccessStatuses(t *testing.T) {
	n := newTestNotification(t, notificationBody("CAPTURED"), "195.35.90.111", NotificationOptions{
		SuccessStatuses: []StatusCode{StatusAuthorised},
	})
	assert.False(t, n.IsSuccessful())

	n = newTestNotification(t, notificationBody("CAPTURED"), "195.35.90.111", NotificationOptions{})
	assert.True(t, n.IsSuccessful())
}

func TestNotificationMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not xml", []byte("this is not < xml")},
		{"no notify", []byte(`<paymentService version="1.4"><reply/></paymentService>`)},
		{"second root", []byte(`<paymentService><notify/></paymentService><second/>`)},
		{"trailing text", []byte(`<paymentService><notify/></paymentService>trailing`)},
		{"no root", []byte(`<?xml version="1.0"?>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNotification(context.Background(), tt.data, "195.35.90.111", NotificationOptions{
				Resolver: worldpayResolver(),
			})
			var malformed *MalformedNotificationError
			require.ErrorAs(t, err, &malformed)
			assert.Nil(t, n)
		})
	}
}

func TestNotificationUntrustedOrigin(t *testing.T) {
	n := newTestNotification(t, notificationBody("AUTHORISED"), "10.0.0.1", NotificationOptions{})

	assert.False(t, n.OriginIsValid())
	assert.False(t, n.IsValid())
	assert.True(t, n.IsSuccessful(), "success does not depend on origin")
	assert.False(t, n.IsAuthorised())
	assert.Equal(t, TransactionStatusFailed, n.TransactionStatus())
	assert.Equal(t, "[ERROR]", n.ResponseBody())
	assert.Equal(t, 500, n.ResponseStatusCode())
}

func TestNotificationWithoutStatus(t *testing.T) {
	n := newTestNotification(t, notificationBody(""), "195.35.90.111", NotificationOptions{})

	assert.True(t, n.OriginIsValid())
	assert.False(t, n.HasStatus())
	assert.False(t, n.IsValid())
	assert.False(t, n.IsSuccessful())
	assert.Equal(t, ResponseBodyError, n.ResponseBody())
}

func TestNotificationMissingAmountParts(t *testing.T) {
	for name, amount := range map[string]string{
		"no exponent": `<amount value="745" currencyCode="GBP"/>`,
		"no value":    `<amount currencyCode="GBP" exponent="2"/>`,
	} {
		t.Run(name, func(t *testing.T) {
			body := `<paymentService><notify><orderStatusEvent orderCode="x"><payment>` +
				amount + `<lastEvent>AUTHORISED</lastEvent></payment></orderStatusEvent></notify></paymentService>`
			n := newTestNotification(t, []byte(body), "195.35.90.111", NotificationOptions{})

			_, ok := n.Amount()
			assert.False(t, ok)
			_, ok = n.PaymentTokenID()
			assert.False(t, ok)
			_, ok = n.PaymentTokenExpiry()
			assert.False(t, ok)
			_, ok = n.AuthorisationCode()
			assert.False(t, ok)
		})
	}
}

func TestNotificationWithoutOrderStatusEvent(t *testing.T) {
	n := newTestNotification(t, []byte(`<paymentService><notify/></paymentService>`), "195.35.90.111", NotificationOptions{})

	assert.False(t, n.HasStatus())
	_, ok := n.TransactionID()
	assert.False(t, ok)
	_, ok = n.CardType()
	assert.False(t, ok)
}

func TestOriginIsValid(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		opts NotificationOptions
		want bool
	}{
		{"worldpay subdomain", "1.2.3.4", NotificationOptions{}, true},
		{"worldpay apex", "10.0.0.3", NotificationOptions{}, true},
		{"mixed case hostname", "10.0.0.4", NotificationOptions{}, true},
		{"suffix without dot", "10.0.0.2", NotificationOptions{}, false},
		{"foreign hostname", "10.0.0.1", NotificationOptions{}, false},
		{"unresolved worldpay network", "195.35.91.7", NotificationOptions{}, true},
		{"unresolved other network", "203.0.113.9", NotificationOptions{}, false},
		{"empty ip", "", NotificationOptions{}, false},
		{"ip checks disabled", "195.35.91.7", NotificationOptions{DisableIPChecks: true}, false},
		{"hostname checks disabled", "195.35.91.7", NotificationOptions{DisableHostnameChecks: true}, true},
		{"hostname checks disabled foreign host", "1.2.3.4", NotificationOptions{DisableHostnameChecks: true}, false},
		{"all checks disabled", "10.0.0.1", NotificationOptions{DisableIPChecks: true, DisableHostnameChecks: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Resolver = worldpayResolver()
			assert.Equal(t, tt.want, originIsValid(context.Background(), tt.ip, opts))
		})
	}
}

func TestOriginIsValidSkipsLookupWhenDisabled(t *testing.T) {
	r := worldpayResolver()
	ok := originIsValid(context.Background(), "10.0.0.1", NotificationOptions{
		DisableIPChecks:       true,
		DisableHostnameChecks: true,
		Resolver:              r,
	})
	assert.True(t, ok)
	assert.Zero(t, r.calls)
}

func TestOriginIsValidFailedLookup(t *testing.T) {
	for name, lookupErr := range map[string]error{
		"connection refused": &net.DNSError{Err: "dial udp 127.0.0.1:53: connect: connection refused", Name: "195.35.90.111"},
		"timeout":            &net.DNSError{Err: "i/o timeout", Name: "195.35.90.111", IsTimeout: true},
		"generic":            errors.New("resolver unavailable"),
	} {
		t.Run(name, func(t *testing.T) {
			r := &fakeResolver{err: lookupErr}

			assert.False(t, originIsValid(context.Background(), "195.35.90.111", NotificationOptions{Resolver: r}),
				"hostname check rejects a failed lookup")
			assert.True(t, originIsValid(context.Background(), "195.35.90.111", NotificationOptions{
				Resolver:              r,
				DisableHostnameChecks: true,
			}), "ip check falls back to the claimed address")
			assert.False(t, originIsValid(context.Background(), "203.0.113.9", NotificationOptions{
				Resolver:              r,
				DisableHostnameChecks: true,
			}))
		})
	}
}

func TestNotificationIPFallbackWithoutResolver(t *testing.T) {
	n := newTestNotification(t, notificationBody("AUTHORISED"), "195.35.91.20", NotificationOptions{
		Resolver:              &fakeResolver{err: errors.New("no resolver configured")},
		DisableHostnameChecks: true,
	})
	assert.True(t, n.IsValid())
	assert.Equal(t, ResponseBodySuccess, n.ResponseBody())
}

func TestNotificationOriginCheckedOnce(t *testing.T) {
	r := worldpayResolver()
	n := newTestNotification(t, notificationBody("AUTHORISED"), "1.2.3.4", NotificationOptions{Resolver: r})

	for i := 0; i < 3; i++ {
		assert.True(t, n.IsValid())
		_ = n.ResponseBody()
		_ = n.TransactionStatus()
	}
	assert.Equal(t, 1, r.calls)
}
