package worldpay_cg_hosted

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/rs/zerolog"
)

const maxNotificationBytes = 1 << 20

// NotificationFunc handles a notification that passed origin validation.
// Returning an error makes the handler reply with the error
// acknowledgement, so Worldpay delivers the notification again.
type NotificationFunc func(ctx context.Context, n *Notification) error

// NotificationHandler replies to Worldpay's notification callbacks with
// the acknowledgement Worldpay requires.
type NotificationHandler struct {
	opts     NotificationOptions
	onNotify NotificationFunc
	log      zerolog.Logger
}

// NewNotificationHandler returns an http.Handler for the merchant
// notification endpoint. onNotify may be nil.
func NewNotificationHandler(opts NotificationOptions, onNotify NotificationFunc, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{opts: opts, onNotify: onNotify, log: log}
}

func (h *NotificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	n, err := readNotification(r, h.opts, h.log)
	if err != nil {
		h.log.Warn().Err(err).Msg("rejecting unreadable notification")
		writeAck(w, ResponseCodeError, ResponseBodyError)
		return
	}

	if n.IsValid() && h.onNotify != nil {
		if err := h.onNotify(r.Context(), n); err != nil {
			id, _ := n.TransactionID()
			h.log.Error().Err(err).Str("order_code", id).Msg("notification handler failed")
			writeAck(w, ResponseCodeError, ResponseBodyError)
			return
		}
	}

	writeAck(w, n.ResponseStatusCode(), n.ResponseBody())
}

func writeAck(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// readNotification reads and decodes a notification request, bounding the
// origin lookup by the request context.
func readNotification(r *http.Request, opts NotificationOptions, log zerolog.Logger) (*Notification, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxNotificationBytes))
	if err != nil {
		return nil, fmt.Errorf("worldpay_cg_hosted: read notification body: %w", err)
	}

	originIP := remoteIP(r)
	log.Debug().
		Str("origin_ip", originIP).
		Int("body_length", len(body)).
		Bytes("body", body).
		Msg("notification received")

	n, err := NewNotification(r.Context(), body, originIP, opts)
	if err != nil {
		return nil, err
	}

	id, _ := n.TransactionID()
	status, _ := n.Status()
	log.Info().
		Str("origin_ip", originIP).
		Str("order_code", id).
		Str("status", string(status)).
		Bool("origin_valid", n.OriginIsValid()).
		Bool("valid", n.IsValid()).
		Msg("notification decoded")
	return n, nil
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
