package models

// PurchaseAPIResponse wraps the parsed purchase reply together with HTTP
// metadata, following the same pattern as the other gateway SDKs.
type PurchaseAPIResponse struct {
	// HTTPStatus is the HTTP status code returned by Worldpay.
	HTTPStatus int

	// Body is the raw XML reply body.
	Body []byte

	// Data is the parsed purchase reply.
	Data PurchaseResponse
}

// PurchaseResponse is the parsed reply to a hosted order submission.
type PurchaseResponse struct {
	// TransactionID is the order code echoed back by Worldpay.
	TransactionID string

	// TransactionReference is the reference id Worldpay assigned.
	TransactionReference string

	// RedirectURL is the hosted payment page, with success, failure and
	// cancel URLs appended. Empty when the order was rejected.
	RedirectURL string

	// Code and Message describe an error reply.
	Code    string
	Message string
}

// IsRedirect reports whether the shopper should be sent to RedirectURL.
func (r PurchaseResponse) IsRedirect() bool {
	return r.RedirectURL != ""
}

// IsSuccessful is always false for a hosted order: payment outcome arrives
// later by notification.
func (r PurchaseResponse) IsSuccessful() bool {
	return false
}
