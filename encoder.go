package worldpay_cg_hosted

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/hugochinchilla79/worldpay_cg_hosted_sdk/models"
)

// ProtocolVersion is the paymentService DTD version the SDK speaks.
const ProtocolVersion = "1.4"

const defaultDescription = "Merchandise"

// OrderDocument is an outbound paymentService submission. Content is either
// a *NewOrder or a *Continuation, never both.
type OrderDocument struct {
	Version      string
	MerchantCode string
	Content      OrderContent
}

// OrderContent is the mode-specific body of an order submission.
type OrderContent interface {
	buildOrder(order *etree.Element)
}

// NewOrder is a fresh hosted order.
type NewOrder struct {
	OrderCode      string
	InstallationID string
	Description    string

	// AmountValue is the amount in minor units.
	AmountValue  string
	CurrencyCode string
	Exponent     int

	PaymentMethodMask string

	ShopperEmail    string
	AcceptHeader    string
	UserAgentHeader string

	// BillingAddress is nil when no card was given or its use is disabled.
	BillingAddress *models.Card

	// risk holds the rendered risk data groups.
	risk []*etree.Element
}

// Continuation completes an earlier order after a 3-D Secure challenge.
type Continuation struct {
	SessionID  string
	ShopperIP  string
	PaResponse string
}

// EncodeOrder validates the order and builds its submission document.
// A non-empty PaResponse selects the continuation shape. No I/O is done.
func EncodeOrder(order models.Order, card *models.Card, risk RiskData) (*OrderDocument, error) {
	if order.Amount == nil {
		return nil, &ValidationError{Field: "amount", Message: "amount required"}
	}

	useBilling := card != nil && !order.DisableBillingAddress
	if useBilling {
		if err := validateBillingAddress(card); err != nil {
			return nil, err
		}
	}

	doc := &OrderDocument{
		Version:      ProtocolVersion,
		MerchantCode: order.MerchantCode,
	}

	if order.PaResponse != "" {
		doc.Content = &Continuation{
			SessionID:  order.Session,
			ShopperIP:  order.ClientIP,
			PaResponse: order.PaResponse,
		}
		return doc, nil
	}

	currencyCode := strings.ToUpper(order.Currency)
	exponent, err := currencyExponent(currencyCode)
	if err != nil {
		return nil, err
	}
	value, err := amountInteger(*order.Amount, exponent)
	if err != nil {
		return nil, err
	}

	var riskElements []*etree.Element
	for _, g := range risk.groups() {
		el, err := g.buildElement(currencyCode, exponent)
		if err != nil {
			return nil, err
		}
		riskElements = append(riskElements, el)
	}

	description := order.Description
	if description == "" {
		description = defaultDescription
	}

	content := &NewOrder{
		OrderCode:         order.TransactionID,
		InstallationID:    order.InstallationID,
		Description:       description,
		AmountValue:       value,
		CurrencyCode:      currencyCode,
		Exponent:          exponent,
		PaymentMethodMask: ResolvePaymentType(order.PaymentType),
		AcceptHeader:      order.AcceptHeader,
		UserAgentHeader:   order.UserAgentHeader,
		risk:              riskElements,
	}
	if card != nil {
		content.ShopperEmail = card.Email
	}
	if useBilling {
		address := *card
		content.BillingAddress = &address
	}

	doc.Content = content
	return doc, nil
}

func validateBillingAddress(card *models.Card) error {
	if card.Address1 == "" || card.City == "" || card.Postcode == "" || card.Country == "" {
		return &ValidationError{Field: "card", Message: "billing address required"}
	}
	return nil
}

// OrderCode returns the order code of a new order, or "" for a continuation.
func (d *OrderDocument) OrderCode() string {
	if o, ok := d.Content.(*NewOrder); ok {
		return o.OrderCode
	}
	return ""
}

// Element builds the paymentService root element.
func (d *OrderDocument) Element() *etree.Element {
	root := etree.NewElement("paymentService")
	root.CreateAttr("version", d.Version)
	root.CreateAttr("merchantCode", d.MerchantCode)

	order := root.CreateElement("submit").CreateElement("order")
	if d.Content != nil {
		d.Content.buildOrder(order)
	}
	return root
}

func (o *NewOrder) buildOrder(order *etree.Element) {
	order.CreateAttr("orderCode", o.OrderCode)
	order.CreateAttr("installationId", o.InstallationID)

	order.CreateElement("description").SetText(o.Description)

	amount := order.CreateElement("amount")
	amount.CreateAttr("value", o.AmountValue)
	amount.CreateAttr("currencyCode", o.CurrencyCode)
	amount.CreateAttr("exponent", strconv.Itoa(o.Exponent))

	order.CreateElement("paymentMethodMask").
		CreateElement("include").
		CreateAttr("code", o.PaymentMethodMask)

	shopper := order.CreateElement("shopper")
	if o.ShopperEmail != "" {
		shopper.CreateElement("shopperEmailAddress").SetText(o.ShopperEmail)
	}
	browser := shopper.CreateElement("browser")
	browser.CreateElement("acceptHeader").SetText(o.AcceptHeader)
	browser.CreateElement("userAgentHeader").SetText(o.UserAgentHeader)

	if o.BillingAddress != nil {
		a := o.BillingAddress
		address := order.CreateElement("billingAddress").CreateElement("address")
		address.CreateElement("firstName").SetText(a.FirstName)
		address.CreateElement("lastName").SetText(a.LastName)
		address.CreateElement("address1").SetText(a.Address1)
		address.CreateElement("address2").SetText(a.Address2)
		address.CreateElement("postalCode").SetText(a.Postcode)
		address.CreateElement("city").SetText(a.City)
		address.CreateElement("state").SetText(a.State)
		address.CreateElement("countryCode").SetText(a.Country)
	}

	if len(o.risk) > 0 {
		riskData := order.CreateElement("riskData")
		for _, el := range o.risk {
			riskData.AddChild(el.Copy())
		}
	}
}

func (c *Continuation) buildOrder(order *etree.Element) {
	// An empty session tag is valid, an empty id attribute is not.
	session := order.CreateElement("session")
	session.CreateAttr("shopperIPAddress", c.ShopperIP)
	if c.SessionID != "" {
		session.CreateAttr("id", c.SessionID)
	}

	order.CreateElement("info3DSecure").
		CreateElement("paResponse").
		SetText(c.PaResponse)
}
