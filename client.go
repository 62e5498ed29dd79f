package worldpay_cg_hosted

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/hugochinchilla79/worldpay_cg_hosted_sdk/models"
)

const defaultTimeout = 30 * time.Second

// Client submits hosted orders to the Worldpay XML API and accepts the
// notifications Worldpay sends back.
type Client struct {
	cfg        Config
	httpClient *http.Client
	xmlURL     string
	breaker    *gobreaker.CircuitBreaker[rawReply]
	log        zerolog.Logger
}

type rawReply struct {
	status int
	body   []byte
}

// NewClient creates a new hosted XML client.
// It validates the configuration, loads the optional P12 client certificate,
// and prepares a TLS-configured HTTP client.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tlsCfg, err := clientTLSConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("worldpay_cg_hosted: failed to load P12 certificate: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: tlsCfg,
		},
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		xmlURL:     cfg.DefaultBaseURL(),
		breaker:    newBreaker("worldpay-xml"),
		log:        cfg.logger(),
	}, nil
}

func newBreaker(name string) *gobreaker.CircuitBreaker[rawReply] {
	var st gobreaker.Settings
	st.Name = name
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	return gobreaker.NewCircuitBreaker[rawReply](st)
}

// Purchase submits an order, or a 3-D Secure continuation when
// order.PaResponse is set, and decodes Worldpay's reply.
func (c *Client) Purchase(ctx context.Context, order models.Order, card *models.Card, risk RiskData) (models.PurchaseAPIResponse, error) {
	order = c.withDefaults(order)

	doc, err := EncodeOrder(order, card, risk)
	if err != nil {
		return models.PurchaseAPIResponse{}, err
	}

	payload, err := marshalOrder(doc)
	if err != nil {
		return models.PurchaseAPIResponse{}, fmt.Errorf("worldpay_cg_hosted: marshal order: %w", err)
	}

	digest, err := payloadDigest(doc.Element())
	if err != nil {
		return models.PurchaseAPIResponse{}, fmt.Errorf("worldpay_cg_hosted: digest order: %w", err)
	}

	log := c.log.With().
		Str("order_code", order.TransactionID).
		Str("payload_digest", digest).
		Logger()
	log.Info().
		Str("endpoint", c.xmlURL).
		Bool("continuation", order.PaResponse != "").
		Msg("submitting order")

	start := time.Now()
	reply, err := c.breaker.Execute(func() (rawReply, error) {
		return c.post(ctx, payload)
	})
	if err != nil {
		log.Error().Err(err).Msg("order submission failed")
		return models.PurchaseAPIResponse{
			HTTPStatus: reply.status,
			Body:       reply.body,
		}, err
	}

	log.Info().
		Int("status", reply.status).
		Int64("latency", time.Since(start).Milliseconds()).
		Msg("order reply received")

	data, err := ParsePurchaseResponse(reply.body, RedirectURLs{
		Success: order.ReturnURL,
		Failure: order.FailureURL,
		Cancel:  order.CancelURL,
	})
	if err != nil {
		return models.PurchaseAPIResponse{
			HTTPStatus: reply.status,
			Body:       reply.body,
		}, fmt.Errorf("worldpay_cg_hosted: parse reply (HTTP %d): %w", reply.status, err)
	}

	if data.Message != "" {
		log.Warn().Str("code", data.Code).Str("message", data.Message).Msg("order rejected")
	}

	return models.PurchaseAPIResponse{
		HTTPStatus: reply.status,
		Body:       reply.body,
		Data:       data,
	}, nil
}

func (c *Client) post(ctx context.Context, payload []byte) (rawReply, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.xmlURL, bytes.NewReader(payload))
	if err != nil {
		return rawReply{}, fmt.Errorf("worldpay_cg_hosted: create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.SetBasicAuth(c.cfg.AuthUsername(), c.cfg.Password)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return rawReply{}, fmt.Errorf("worldpay_cg_hosted: send XML request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return rawReply{}, fmt.Errorf("worldpay_cg_hosted: read response: %w", err)
	}

	reply := rawReply{status: resp.StatusCode, body: body}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return reply, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
			Headers:    resp.Header,
		}
	}
	return reply, nil
}

// withDefaults fills blank order fields from the client config.
func (c *Client) withDefaults(order models.Order) models.Order {
	if order.MerchantCode == "" {
		order.MerchantCode = c.cfg.MerchantCode
	}
	if order.InstallationID == "" {
		order.InstallationID = c.cfg.InstallationID
	}
	if order.AcceptHeader == "" {
		order.AcceptHeader = c.cfg.AcceptHeader
	}
	if order.UserAgentHeader == "" {
		order.UserAgentHeader = c.cfg.UserAgentHeader
	}
	if order.ReturnURL == "" {
		order.ReturnURL = c.cfg.SuccessURL
	}
	if order.FailureURL == "" {
		order.FailureURL = c.cfg.FailureURL
	}
	if order.CancelURL == "" {
		order.CancelURL = c.cfg.CancelURL
	}
	if order.TransactionID == "" && order.PaResponse == "" {
		order.TransactionID = uuid.NewString()
	}
	return order
}

// AcceptNotification decodes a notification request delivered by Worldpay.
// The origin is taken from the request's remote address.
func (c *Client) AcceptNotification(r *http.Request, opts NotificationOptions) (*Notification, error) {
	return readNotification(r, opts, c.log)
}
