package worldpay_cg_hosted

import "strings"

// Card brand names accepted by ResolvePaymentType.
const (
	BrandAmex       = "amex"
	BrandDankort    = "dankort"
	BrandDinersClub = "diners_club"
	BrandDiscover   = "discover"
	BrandJCB        = "jcb"
	BrandLaser      = "laser"
	BrandMaestro    = "maestro"
	BrandMastercard = "mastercard"
	BrandSwitch     = "switch"
	BrandVisa       = "visa"
)

// PaymentTypeAll disables payment method masking on the hosted page.
const PaymentTypeAll = "ALL"

// brandPaymentTypes maps a lower-cased brand name, or a Worldpay sub-brand
// payment type, to the Worldpay payment method mask code.
var brandPaymentTypes = map[string]string{
	BrandAmex:       "AMEX-SSL",
	BrandDankort:    "DANKORT-SSL",
	BrandDinersClub: "DINERS-SSL",
	BrandDiscover:   "DISCOVER-SSL",
	BrandJCB:        "JCB-SSL",
	BrandLaser:      "LASER-SSL",
	BrandMaestro:    "MAESTRO-SSL",
	BrandMastercard: "ECMC-SSL",
	BrandSwitch:     "MAESTRO-SSL",
	BrandVisa:       "VISA-SSL",

	// Mastercard debit and Visa Electron share their parent brand's mask.
	"mscd": "ECMC-SSL",
	"vied": "VISA-SSL",
}

// knownPaymentTypes is the set of mask codes brandPaymentTypes can produce.
var knownPaymentTypes = func() map[string]struct{} {
	m := make(map[string]struct{}, len(brandPaymentTypes))
	for _, code := range brandPaymentTypes {
		m[code] = struct{}{}
	}
	return m
}()

// ResolvePaymentType returns the Worldpay payment method mask code for
// input, which may be a card brand name in any case (e.g. "Mastercard"),
// a Worldpay payment type without its suffix (e.g. "ECMC") or a full mask
// code (e.g. "VISA-SSL"). Worldpay codes are case-sensitive. Anything
// unrecognised resolves to PaymentTypeAll.
func ResolvePaymentType(input string) string {
	if code, ok := brandPaymentTypes[strings.ToLower(input)]; ok {
		return code
	}

	if _, ok := knownPaymentTypes[input]; ok {
		return input
	}
	if _, ok := knownPaymentTypes[input+"-SSL"]; ok {
		return input + "-SSL"
	}

	return PaymentTypeAll
}
