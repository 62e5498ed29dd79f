package models

import "github.com/shopspring/decimal"

// Order is the input for a hosted purchase or a 3-D Secure continuation.
type Order struct {
	// MerchantCode is the Worldpay merchant code. Filled from the client
	// config when empty.
	MerchantCode string

	// InstallationID is the hosted payment page installation. Filled from
	// the client config when empty.
	InstallationID string

	// TransactionID is the merchant's unique order code.
	TransactionID string

	// Description is shown to the shopper. Defaults to "Merchandise".
	Description string

	// Amount is the order total in major units (e.g. 7.45). Required.
	Amount *decimal.Decimal

	// Currency is the ISO 4217 currency code, e.g. "GBP".
	Currency string

	// PaymentType restricts the hosted page to one payment method. It may
	// be a card brand ("visa"), a Worldpay type ("ECMC") or a mask code
	// ("VISA-SSL"). Unknown values do not restrict.
	PaymentType string

	// AcceptHeader and UserAgentHeader are the shopper's browser headers.
	AcceptHeader    string
	UserAgentHeader string

	// PaResponse is the issuer's 3-D Secure authentication response. When
	// set, the order is encoded as a continuation of an earlier order.
	PaResponse string

	// Session is the shopper session id echoed in a continuation.
	Session string

	// ClientIP is the shopper's IP address.
	ClientIP string

	// DisableBillingAddress omits the billing address, and its validation,
	// even when a card is supplied.
	DisableBillingAddress bool

	// ReturnURL, FailureURL and CancelURL are appended to the hosted page
	// redirect. Filled from the client config when empty.
	ReturnURL  string
	FailureURL string
	CancelURL  string
}

// Card carries the shopper's contact and billing details. No card number
// is collected in the hosted flow.
type Card struct {
	Email     string
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	Postcode  string
	State     string
	Country   string
}
