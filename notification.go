package worldpay_cg_hosted

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// Acknowledgements Worldpay expects in reply to a notification. The success
// body must match exactly or Worldpay treats the notification as undelivered.
const (
	ResponseBodySuccess = "[OK]"
	ResponseCodeSuccess = 200
	ResponseBodyError   = "[ERROR]"
	ResponseCodeError   = 500
)

const worldpayDomain = "worldpay.com"

// worldpayIPPrefixes are the notification source networks accepted when
// reverse DNS cannot name the host.
var worldpayIPPrefixes = []string{"195.35.90", "195.35.91"}

// Resolver performs reverse DNS lookups. *net.Resolver satisfies it.
type Resolver interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// NotificationOptions tunes how a notification is authenticated.
type NotificationOptions struct {
	// DisableIPChecks turns off the IP prefix fallback.
	DisableIPChecks bool

	// DisableHostnameChecks turns off the reverse DNS hostname check.
	// With both checks disabled every origin is trusted.
	DisableHostnameChecks bool

	// Resolver defaults to net.DefaultResolver.
	Resolver Resolver

	// SuccessStatuses defaults to DefaultSuccessStatuses.
	SuccessStatuses []StatusCode
}

// Notification is a parsed Worldpay order status notification. It is
// read-only after construction and safe for concurrent use.
type Notification struct {
	order           *etree.Element
	originIP        string
	originValid     bool
	successStatuses []StatusCode
}

// NewNotification parses a notification body received from originIP and
// authenticates its origin. The origin check may perform a reverse DNS
// lookup bounded by ctx.
func NewNotification(ctx context.Context, data []byte, originIP string, opts NotificationOptions) (*Notification, error) {
	if len(data) == 0 {
		return nil, &MalformedNotificationError{Reason: "notification data empty"}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &MalformedNotificationError{Reason: "notification data not loaded as XML", Err: err}
	}
	root, err := singleRoot(doc)
	if err != nil {
		return nil, err
	}
	notify := findChild(root, "notify")
	if notify == nil {
		return nil, &MalformedNotificationError{Reason: "notify element missing"}
	}

	n := &Notification{
		order:           findChild(notify, "orderStatusEvent"),
		originIP:        originIP,
		successStatuses: opts.SuccessStatuses,
	}
	if n.successStatuses == nil {
		n.successStatuses = DefaultSuccessStatuses
	}
	n.originValid = originIsValid(ctx, originIP, opts)
	return n, nil
}

// Status returns the most recent lifecycle event, e.g. AUTHORISED.
func (n *Notification) Status() (StatusCode, bool) {
	s, ok := childText(n.order, "payment", "lastEvent")
	return StatusCode(s), ok
}

// HasStatus reports whether any lifecycle event has been posted.
func (n *Notification) HasStatus() bool {
	_, ok := n.Status()
	return ok
}

// OriginIsValid reports the result of the origin check done at construction.
func (n *Notification) OriginIsValid() bool {
	return n.originValid
}

// IsValid reports whether the notification can be trusted: it came from
// Worldpay and carries a status.
func (n *Notification) IsValid() bool {
	return n.originValid && n.HasStatus()
}

// IsSuccessful reports whether the status is one of the success statuses.
// It does not check the origin; see IsAuthorised.
func (n *Notification) IsSuccessful() bool {
	status, ok := n.Status()
	if !ok {
		return false
	}
	for _, s := range n.successStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// IsAuthorised reports whether the notification is both valid and successful.
func (n *Notification) IsAuthorised() bool {
	return n.IsValid() && n.IsSuccessful()
}

// TransactionStatus maps the notification to completed or failed.
func (n *Notification) TransactionStatus() TransactionStatus {
	if n.IsAuthorised() {
		return TransactionStatusCompleted
	}
	return TransactionStatusFailed
}

// CardType returns the Worldpay payment method code, e.g. ECMC-SSL.
func (n *Notification) CardType() (string, bool) {
	return childText(n.order, "payment", "paymentMethod")
}

// AuthorisationCode returns the acquirer's authorisation id.
func (n *Notification) AuthorisationCode() (string, bool) {
	return attrValue(findPath(n.order, "payment", "AuthorisationId"), "id")
}

// Amount returns the payment amount in major units. Both the value and
// the exponent must be present.
func (n *Notification) Amount() (decimal.Decimal, bool) {
	amount := findPath(n.order, "payment", "amount")
	raw, ok := attrValue(amount, "value")
	if !ok {
		return decimal.Zero, false
	}
	rawExp, ok := attrValue(amount, "exponent")
	if !ok {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	exponent, err := strconv.Atoi(rawExp)
	if err != nil {
		return decimal.Zero, false
	}
	return value.Shift(int32(-exponent)), true
}

// Currency returns the payment amount's currency code.
func (n *Notification) Currency() (string, bool) {
	return attrValue(findPath(n.order, "payment", "amount"), "currencyCode")
}

// TransactionID returns the merchant order code the notification is for.
func (n *Notification) TransactionID() (string, bool) {
	return attrValue(n.order, "orderCode")
}

// TransactionReference is the same as TransactionID: Worldpay only uses
// the merchant's own reference.
func (n *Notification) TransactionReference() (string, bool) {
	return n.TransactionID()
}

func (n *Notification) tokenDetails() *etree.Element {
	return findPath(n.order, "token", "tokenDetails")
}

// PaymentTokenID returns the stored card token id, when tokenisation was requested.
func (n *Notification) PaymentTokenID() (string, bool) {
	return childText(n.tokenDetails(), "paymentTokenID")
}

// PaymentTokenExpiry returns the token's expiry, in UTC.
func (n *Notification) PaymentTokenExpiry() (time.Time, bool) {
	date := findPath(n.tokenDetails(), "paymentTokenExpiry", "date")
	if date == nil {
		return time.Time{}, false
	}

	var parts [6]string
	for i, key := range []string{"year", "month", "dayOfMonth", "hour", "minute", "second"} {
		v, ok := attrValue(date, key)
		if !ok {
			return time.Time{}, false
		}
		parts[i] = v
	}

	t, err := time.Parse("2006-1-2 15:4:5", fmt.Sprintf("%s-%s-%s %s:%s:%s",
		parts[0], parts[1], parts[2], parts[3], parts[4], parts[5]))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ResponseBody is the body to return to Worldpay for this notification.
func (n *Notification) ResponseBody() string {
	if n.IsValid() {
		return ResponseBodySuccess
	}
	return ResponseBodyError
}

// ResponseStatusCode is the HTTP status to return to Worldpay.
func (n *Notification) ResponseStatusCode() int {
	if n.IsValid() {
		return ResponseCodeSuccess
	}
	return ResponseCodeError
}

// originIsValid checks that originIP reverse-resolves to *.worldpay.com,
// or, as a fallback for hosts without working reverse DNS, that it is an
// unresolved address inside Worldpay's notification networks.
func originIsValid(ctx context.Context, originIP string, opts NotificationOptions) bool {
	checkHostname := !opts.DisableHostnameChecks
	checkIP := !opts.DisableIPChecks
	if !checkHostname && !checkIP {
		return true
	}
	if originIP == "" {
		return false
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	hostname, err := reverseLookup(ctx, resolver, originIP)

	if checkHostname {
		if err != nil || hostname == "" {
			return false
		}
		h := strings.ToLower(hostname)
		if strings.HasSuffix(h, "."+worldpayDomain) || h == worldpayDomain {
			return true
		}
	}

	if checkIP && hostname == originIP {
		for _, prefix := range worldpayIPPrefixes {
			if strings.HasPrefix(hostname, prefix) {
				return true
			}
		}
	}

	return false
}

// reverseLookup returns the first PTR name for addr without its trailing
// dot. When there is no PTR record, or the lookup fails, the name is addr
// itself; a failure is also reported as an error.
func reverseLookup(ctx context.Context, r Resolver, addr string) (string, error) {
	names, err := r.LookupAddr(ctx, addr)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return addr, nil
		}
		return addr, err
	}
	if len(names) == 0 {
		return addr, nil
	}
	return strings.TrimSuffix(names[0], "."), nil
}

// singleRoot returns the document element, rejecting documents with more
// than one top-level element or with text outside the root.
func singleRoot(doc *etree.Document) (*etree.Element, error) {
	var root *etree.Element
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if root != nil {
				return nil, &MalformedNotificationError{Reason: "notification has more than one root element"}
			}
			root = t
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return nil, &MalformedNotificationError{Reason: "notification has text outside the root element"}
			}
		}
	}
	if root == nil {
		return nil, &MalformedNotificationError{Reason: "notification has no root element"}
	}
	return root, nil
}
