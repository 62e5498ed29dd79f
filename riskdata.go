package worldpay_cg_hosted

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// Risk data field names, as accepted by the New*RiskData constructors and
// as emitted on the wire.
const (
	FieldAuthenticationTimestamp = "authenticationTimestamp"
	FieldAuthenticationMethod    = "authenticationMethod"

	FieldShopperAccountCreationDate                  = "shopperAccountCreationDate"
	FieldShopperAccountModificationDate              = "shopperAccountModificationDate"
	FieldShopperAccountPasswordChangeDate            = "shopperAccountPasswordChangeDate"
	FieldShopperAccountShippingAddressFirstUseDate   = "shopperAccountShippingAddressFirstUseDate"
	FieldShopperAccountPaymentAccountFirstUseDate    = "shopperAccountPaymentAccountFirstUseDate"
	FieldTransactionsAttemptedLastDay                = "transactionsAttemptedLastDay"
	FieldTransactionsAttemptedLastYear               = "transactionsAttemptedLastYear"
	FieldPurchasesCompletedLastSixMonths             = "purchasesCompletedLastSixMonths"
	FieldAddCardAttemptsLastDay                      = "addCardAttemptsLastDay"
	FieldPreviousSuspiciousActivity                  = "previousSuspiciousActivity"
	FieldShippingNameMatchesAccountName              = "shippingNameMatchesAccountName"
	FieldShopperAccountAgeIndicator                  = "shopperAccountAgeIndicator"
	FieldShopperAccountChangeIndicator               = "shopperAccountChangeIndicator"
	FieldShopperAccountPasswordChangeIndicator       = "shopperAccountPasswordChangeIndicator"
	FieldShopperAccountShippingAddressUsageIndicator = "shopperAccountShippingAddressUsageIndicator"
	FieldShopperAccountPaymentAccountIndicator       = "shopperAccountPaymentAccountIndicator"

	FieldTransactionRiskDataGiftCardAmount = "transactionRiskDataGiftCardAmount"
	FieldTransactionRiskDataPreOrderDate   = "transactionRiskDataPreOrderDate"
	FieldShippingMethod                    = "shippingMethod"
	FieldDeliveryTimeframe                 = "deliveryTimeframe"
	FieldDeliveryEmailAddress              = "deliveryEmailAddress"
	FieldReorderingPreviousPurchases       = "reorderingPreviousPurchases"
	FieldPreOrderPurchase                  = "preOrderPurchase"
	FieldGiftCardCount                     = "giftCardCount"
)

// AuthenticationMethod is how the shopper logged in to the merchant site.
type AuthenticationMethod string

const (
	AuthenticationMethodGuestCheckout     AuthenticationMethod = "guestCheckout"
	AuthenticationMethodLocalAccount      AuthenticationMethod = "localAccount"
	AuthenticationMethodFederatedAccount  AuthenticationMethod = "federatedAccount"
	AuthenticationMethodFidoAuthenticator AuthenticationMethod = "fidoAuthenticator"
)

func (v AuthenticationMethod) String() string { return string(v) }

// ShopperAccountAgeIndicator is how long the shopper has held an account.
type ShopperAccountAgeIndicator string

const (
	ShopperAccountAgeNoAccount                ShopperAccountAgeIndicator = "noAccount"
	ShopperAccountAgeCreatedDuringTransaction ShopperAccountAgeIndicator = "createdDuringTransaction"
	ShopperAccountAgeLessThanThirtyDays       ShopperAccountAgeIndicator = "lessThanThirtyDays"
	ShopperAccountAgeThirtyToSixtyDays        ShopperAccountAgeIndicator = "thirtyToSixtyDays"
	ShopperAccountAgeMoreThanSixtyDays        ShopperAccountAgeIndicator = "moreThanSixtyDays"
)

func (v ShopperAccountAgeIndicator) String() string { return string(v) }

// ShopperAccountChangeIndicator is when the account details last changed.
type ShopperAccountChangeIndicator string

const (
	ShopperAccountChangeChangedDuringTransaction ShopperAccountChangeIndicator = "changedDuringTransaction"
	ShopperAccountChangeLessThanThirtyDays       ShopperAccountChangeIndicator = "lessThanThirtyDays"
	ShopperAccountChangeThirtyToSixtyDays        ShopperAccountChangeIndicator = "thirtyToSixtyDays"
	ShopperAccountChangeMoreThanSixtyDays        ShopperAccountChangeIndicator = "moreThanSixtyDays"
)

func (v ShopperAccountChangeIndicator) String() string { return string(v) }

// ShopperAccountPasswordChangeIndicator is when the account password last changed.
type ShopperAccountPasswordChangeIndicator string

const (
	ShopperAccountPasswordNoChange                 ShopperAccountPasswordChangeIndicator = "noChange"
	ShopperAccountPasswordChangedDuringTransaction ShopperAccountPasswordChangeIndicator = "changedDuringTransaction"
	ShopperAccountPasswordLessThanThirtyDays       ShopperAccountPasswordChangeIndicator = "lessThanThirtyDays"
	ShopperAccountPasswordThirtyToSixtyDays        ShopperAccountPasswordChangeIndicator = "thirtyToSixtyDays"
	ShopperAccountPasswordMoreThanSixtyDays        ShopperAccountPasswordChangeIndicator = "moreThanSixtyDays"
)

func (v ShopperAccountPasswordChangeIndicator) String() string { return string(v) }

// ShopperAccountShippingAddressUsageIndicator is when the shipping address
// was first used.
type ShopperAccountShippingAddressUsageIndicator string

const (
	ShippingAddressUsageThisTransaction    ShopperAccountShippingAddressUsageIndicator = "thisTransaction"
	ShippingAddressUsageLessThanThirtyDays ShopperAccountShippingAddressUsageIndicator = "lessThanThirtyDays"
	ShippingAddressUsageThirtyToSixtyDays  ShopperAccountShippingAddressUsageIndicator = "thirtyToSixtyDays"
	ShippingAddressUsageMoreThanSixtyDays  ShopperAccountShippingAddressUsageIndicator = "moreThanSixtyDays"
)

func (v ShopperAccountShippingAddressUsageIndicator) String() string { return string(v) }

// ShopperAccountPaymentAccountIndicator is when the payment account was
// added to the shopper account.
type ShopperAccountPaymentAccountIndicator string

const (
	PaymentAccountNoAccount          ShopperAccountPaymentAccountIndicator = "noAccount"
	PaymentAccountDuringTransaction  ShopperAccountPaymentAccountIndicator = "duringTransaction"
	PaymentAccountLessThanThirtyDays ShopperAccountPaymentAccountIndicator = "lessThanThirtyDays"
	PaymentAccountThirtyToSixtyDays  ShopperAccountPaymentAccountIndicator = "thirtyToSixtyDays"
	PaymentAccountMoreThanSixtyDays  ShopperAccountPaymentAccountIndicator = "moreThanSixtyDays"
)

func (v ShopperAccountPaymentAccountIndicator) String() string { return string(v) }

// ShippingMethod describes where the goods are sent.
type ShippingMethod string

const (
	ShippingMethodShipToBillingAddress          ShippingMethod = "shipToBillingAddress"
	ShippingMethodShipToVerifiedAddress         ShippingMethod = "shipToVerifiedAddress"
	ShippingMethodShipToOtherAddress            ShippingMethod = "shipToOtherAddress"
	ShippingMethodShipToStore                   ShippingMethod = "shipToStore"
	ShippingMethodDigital                       ShippingMethod = "digital"
	ShippingMethodUnshippedTravelOrEventTickets ShippingMethod = "unshippedTravelOrEventTickets"
	ShippingMethodOther                         ShippingMethod = "other"
)

func (v ShippingMethod) String() string { return string(v) }

// DeliveryTimeframe describes how fast the goods are delivered.
type DeliveryTimeframe string

const (
	DeliveryTimeframeElectronicDelivery DeliveryTimeframe = "electronicDelivery"
	DeliveryTimeframeSameDayShipping    DeliveryTimeframe = "sameDayShipping"
	DeliveryTimeframeOvernightShipping  DeliveryTimeframe = "overnightShipping"
	DeliveryTimeframeOtherShipping      DeliveryTimeframe = "otherShipping"
)

func (v DeliveryTimeframe) String() string { return string(v) }

type fieldKind int

const (
	kindTime fieldKind = iota
	kindEnum
	kindInt
	kindBool
	kindDecimal
	kindString
)

type riskField struct {
	name string
	kind fieldKind
	enum []string
}

// riskGroup is the shared implementation behind the three risk data types:
// a field schema plus the OptionalData holding normalised values.
type riskGroup struct {
	element string
	fields  []riskField
	data    *OptionalData
}

func newRiskGroup(element string, fields []riskField, initial map[string]any) (*riskGroup, error) {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	data, err := NewOptionalData(names, initial)
	if err != nil {
		return nil, err
	}
	g := &riskGroup{element: element, fields: fields, data: data}

	// Re-set every seeded value through set so it is type-checked.
	for _, name := range data.Keys() {
		v, _ := data.Get(name)
		if err := g.set(name, v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *riskGroup) field(name string) (riskField, bool) {
	for _, f := range g.fields {
		if f.name == name {
			return f, true
		}
	}
	return riskField{}, false
}

func (g *riskGroup) set(name string, value any) error {
	f, ok := g.field(name)
	if !ok {
		return &UnsupportedParameterError{Keys: []string{name}}
	}
	v, err := f.normalise(value)
	if err != nil {
		return err
	}
	return g.data.Set(name, v)
}

func (f riskField) normalise(value any) (any, error) {
	mismatch := func(want string) error {
		return &ValidationError{Field: f.name, Message: fmt.Sprintf("expected %s, got %T", want, value)}
	}

	switch f.kind {
	case kindTime:
		switch v := value.(type) {
		case time.Time:
			return v, nil
		case *time.Time:
			if v != nil {
				return *v, nil
			}
		}
		return nil, mismatch("time.Time")

	case kindEnum:
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case fmt.Stringer:
			s = v.String()
		default:
			return nil, mismatch("string")
		}
		for _, allowed := range f.enum {
			if s == allowed {
				return s, nil
			}
		}
		return nil, &ValidationError{Field: f.name, Message: fmt.Sprintf("unsupported value %q", s)}

	case kindInt:
		switch v := value.(type) {
		case int:
			return v, nil
		case int32:
			return int(v), nil
		case int64:
			return int(v), nil
		}
		return nil, mismatch("int")

	case kindBool:
		if v, ok := value.(bool); ok {
			return v, nil
		}
		return nil, mismatch("bool")

	case kindDecimal:
		switch v := value.(type) {
		case decimal.Decimal:
			return v, nil
		case float64:
			return decimal.NewFromFloat(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case string:
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil, &ValidationError{Field: f.name, Message: err.Error()}
			}
			return d, nil
		}
		return nil, mismatch("decimal")

	case kindString:
		if v, ok := value.(string); ok {
			return v, nil
		}
		return nil, mismatch("string")
	}
	return nil, mismatch("known field type")
}

func groupValue[T any](g *riskGroup, name string) (T, error) {
	var zero T
	v, err := g.data.Get(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("worldpay_cg_hosted: %s holds %T", name, v)
	}
	return t, nil
}

func groupEnum[T ~string](g *riskGroup, name string) (T, error) {
	s, err := groupValue[string](g, name)
	return T(s), err
}

// buildElement renders the set fields of the group. Scalar fields become
// attributes, dates and amounts become child elements. Amounts must fit the
// order currency's precision.
func (g *riskGroup) buildElement(currency string, exponent int) (*etree.Element, error) {
	el := etree.NewElement(g.element)
	var children []*etree.Element
	for _, f := range g.fields {
		v, err := g.data.Get(f.name)
		if err != nil {
			continue
		}
		switch f.kind {
		case kindTime:
			child := etree.NewElement(f.name)
			child.AddChild(dateElement(v.(time.Time)))
			children = append(children, child)
		case kindDecimal:
			value, err := amountInteger(v.(decimal.Decimal), exponent)
			if err != nil {
				var invalid *ValidationError
				if errors.As(err, &invalid) {
					invalid.Field = f.name
				}
				return nil, err
			}
			child := etree.NewElement(f.name)
			amount := child.CreateElement("amount")
			amount.CreateAttr("value", value)
			amount.CreateAttr("currencyCode", currency)
			amount.CreateAttr("exponent", strconv.Itoa(exponent))
			children = append(children, child)
		case kindInt:
			el.CreateAttr(f.name, strconv.Itoa(v.(int)))
		case kindBool:
			el.CreateAttr(f.name, strconv.FormatBool(v.(bool)))
		default:
			el.CreateAttr(f.name, v.(string))
		}
	}
	for _, c := range children {
		el.AddChild(c)
	}
	return el, nil
}

// dateElement renders t in the vendor's split date form.
func dateElement(t time.Time) *etree.Element {
	d := etree.NewElement("date")
	d.CreateAttr("second", strconv.Itoa(t.Second()))
	d.CreateAttr("minute", strconv.Itoa(t.Minute()))
	d.CreateAttr("hour", strconv.Itoa(t.Hour()))
	d.CreateAttr("dayOfMonth", strconv.Itoa(t.Day()))
	d.CreateAttr("month", strconv.Itoa(int(t.Month())))
	d.CreateAttr("year", strconv.Itoa(t.Year()))
	return d
}

func enumValues[T ~string](values ...T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var authenticationFields = []riskField{
	{name: FieldAuthenticationTimestamp, kind: kindTime},
	{name: FieldAuthenticationMethod, kind: kindEnum, enum: enumValues(
		AuthenticationMethodGuestCheckout,
		AuthenticationMethodLocalAccount,
		AuthenticationMethodFederatedAccount,
		AuthenticationMethodFidoAuthenticator,
	)},
}

var shopperAccountFields = []riskField{
	{name: FieldShopperAccountCreationDate, kind: kindTime},
	{name: FieldShopperAccountModificationDate, kind: kindTime},
	{name: FieldShopperAccountPasswordChangeDate, kind: kindTime},
	{name: FieldShopperAccountShippingAddressFirstUseDate, kind: kindTime},
	{name: FieldShopperAccountPaymentAccountFirstUseDate, kind: kindTime},
	{name: FieldTransactionsAttemptedLastDay, kind: kindInt},
	{name: FieldTransactionsAttemptedLastYear, kind: kindInt},
	{name: FieldPurchasesCompletedLastSixMonths, kind: kindInt},
	{name: FieldAddCardAttemptsLastDay, kind: kindInt},
	{name: FieldPreviousSuspiciousActivity, kind: kindBool},
	{name: FieldShippingNameMatchesAccountName, kind: kindBool},
	{name: FieldShopperAccountAgeIndicator, kind: kindEnum, enum: enumValues(
		ShopperAccountAgeNoAccount,
		ShopperAccountAgeCreatedDuringTransaction,
		ShopperAccountAgeLessThanThirtyDays,
		ShopperAccountAgeThirtyToSixtyDays,
		ShopperAccountAgeMoreThanSixtyDays,
	)},
	{name: FieldShopperAccountChangeIndicator, kind: kindEnum, enum: enumValues(
		ShopperAccountChangeChangedDuringTransaction,
		ShopperAccountChangeLessThanThirtyDays,
		ShopperAccountChangeThirtyToSixtyDays,
		ShopperAccountChangeMoreThanSixtyDays,
	)},
	{name: FieldShopperAccountPasswordChangeIndicator, kind: kindEnum, enum: enumValues(
		ShopperAccountPasswordNoChange,
		ShopperAccountPasswordChangedDuringTransaction,
		ShopperAccountPasswordLessThanThirtyDays,
		ShopperAccountPasswordThirtyToSixtyDays,
		ShopperAccountPasswordMoreThanSixtyDays,
	)},
	{name: FieldShopperAccountShippingAddressUsageIndicator, kind: kindEnum, enum: enumValues(
		ShippingAddressUsageThisTransaction,
		ShippingAddressUsageLessThanThirtyDays,
		ShippingAddressUsageThirtyToSixtyDays,
		ShippingAddressUsageMoreThanSixtyDays,
	)},
	{name: FieldShopperAccountPaymentAccountIndicator, kind: kindEnum, enum: enumValues(
		PaymentAccountNoAccount,
		PaymentAccountDuringTransaction,
		PaymentAccountLessThanThirtyDays,
		PaymentAccountThirtyToSixtyDays,
		PaymentAccountMoreThanSixtyDays,
	)},
}

var transactionFields = []riskField{
	{name: FieldTransactionRiskDataGiftCardAmount, kind: kindDecimal},
	{name: FieldTransactionRiskDataPreOrderDate, kind: kindTime},
	{name: FieldShippingMethod, kind: kindEnum, enum: enumValues(
		ShippingMethodShipToBillingAddress,
		ShippingMethodShipToVerifiedAddress,
		ShippingMethodShipToOtherAddress,
		ShippingMethodShipToStore,
		ShippingMethodDigital,
		ShippingMethodUnshippedTravelOrEventTickets,
		ShippingMethodOther,
	)},
	{name: FieldDeliveryTimeframe, kind: kindEnum, enum: enumValues(
		DeliveryTimeframeElectronicDelivery,
		DeliveryTimeframeSameDayShipping,
		DeliveryTimeframeOvernightShipping,
		DeliveryTimeframeOtherShipping,
	)},
	{name: FieldDeliveryEmailAddress, kind: kindString},
	{name: FieldReorderingPreviousPurchases, kind: kindBool},
	{name: FieldPreOrderPurchase, kind: kindBool},
	{name: FieldGiftCardCount, kind: kindInt},
}

// AuthenticationRiskData describes how the shopper authenticated with the merchant.
type AuthenticationRiskData struct {
	g *riskGroup
}

// NewAuthenticationRiskData builds the group from field name/value pairs.
// A nil map yields an empty group.
func NewAuthenticationRiskData(initial map[string]any) (*AuthenticationRiskData, error) {
	g, err := newRiskGroup("authenticationRiskData", authenticationFields, initial)
	if err != nil {
		return nil, err
	}
	return &AuthenticationRiskData{g: g}, nil
}

// IsSet reports whether the named field has been set.
func (r *AuthenticationRiskData) IsSet(field string) bool { return r.g.data.IsSet(field) }

// HasProperties reports whether any field has been set. Empty groups are not encoded.
func (r *AuthenticationRiskData) HasProperties() bool { return r.g.data.HasProperties() }

// SetAuthenticationTimestamp sets authenticationTimestamp.
func (r *AuthenticationRiskData) SetAuthenticationTimestamp(t time.Time) error {
	return r.g.set(FieldAuthenticationTimestamp, t)
}

// AuthenticationTimestamp returns authenticationTimestamp, or an error matching ErrNotSet.
func (r *AuthenticationRiskData) AuthenticationTimestamp() (time.Time, error) {
	return groupValue[time.Time](r.g, FieldAuthenticationTimestamp)
}

// SetAuthenticationMethod sets authenticationMethod.
func (r *AuthenticationRiskData) SetAuthenticationMethod(m AuthenticationMethod) error {
	return r.g.set(FieldAuthenticationMethod, m)
}

// AuthenticationMethod returns authenticationMethod, or an error matching ErrNotSet.
func (r *AuthenticationRiskData) AuthenticationMethod() (AuthenticationMethod, error) {
	return groupEnum[AuthenticationMethod](r.g, FieldAuthenticationMethod)
}

// ShopperAccountRiskData describes the shopper's account history with the merchant.
type ShopperAccountRiskData struct {
	g *riskGroup
}

// NewShopperAccountRiskData builds the group from field name/value pairs.
func NewShopperAccountRiskData(initial map[string]any) (*ShopperAccountRiskData, error) {
	g, err := newRiskGroup("shopperAccountRiskData", shopperAccountFields, initial)
	if err != nil {
		return nil, err
	}
	return &ShopperAccountRiskData{g: g}, nil
}

// IsSet reports whether the named field has been set.
func (r *ShopperAccountRiskData) IsSet(field string) bool { return r.g.data.IsSet(field) }

// HasProperties reports whether any field has been set. Empty groups are not encoded.
func (r *ShopperAccountRiskData) HasProperties() bool { return r.g.data.HasProperties() }

// Set assigns any shopper account field by name.
func (r *ShopperAccountRiskData) Set(field string, value any) error { return r.g.set(field, value) }

// CreationDate returns shopperAccountCreationDate, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) CreationDate() (time.Time, error) {
	return groupValue[time.Time](r.g, FieldShopperAccountCreationDate)
}

// SetCreationDate sets shopperAccountCreationDate.
func (r *ShopperAccountRiskData) SetCreationDate(t time.Time) error {
	return r.g.set(FieldShopperAccountCreationDate, t)
}

// ModificationDate returns shopperAccountModificationDate, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) ModificationDate() (time.Time, error) {
	return groupValue[time.Time](r.g, FieldShopperAccountModificationDate)
}

// SetModificationDate sets shopperAccountModificationDate.
func (r *ShopperAccountRiskData) SetModificationDate(t time.Time) error {
	return r.g.set(FieldShopperAccountModificationDate, t)
}

// PasswordChangeDate returns shopperAccountPasswordChangeDate, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) PasswordChangeDate() (time.Time, error) {
	return groupValue[time.Time](r.g, FieldShopperAccountPasswordChangeDate)
}

// SetPasswordChangeDate sets shopperAccountPasswordChangeDate.
func (r *ShopperAccountRiskData) SetPasswordChangeDate(t time.Time) error {
	return r.g.set(FieldShopperAccountPasswordChangeDate, t)
}

// ShippingAddressFirstUseDate returns shopperAccountShippingAddressFirstUseDate, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) ShippingAddressFirstUseDate() (time.Time, error) {
	return groupValue[time.Time](r.g, FieldShopperAccountShippingAddressFirstUseDate)
}

// SetShippingAddressFirstUseDate sets shopperAccountShippingAddressFirstUseDate.
func (r *ShopperAccountRiskData) SetShippingAddressFirstUseDate(t time.Time) error {
	return r.g.set(FieldShopperAccountShippingAddressFirstUseDate, t)
}

// PaymentAccountFirstUseDate returns shopperAccountPaymentAccountFirstUseDate, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) PaymentAccountFirstUseDate() (time.Time, error) {
	return groupValue[time.Time](r.g, FieldShopperAccountPaymentAccountFirstUseDate)
}

// SetPaymentAccountFirstUseDate sets shopperAccountPaymentAccountFirstUseDate.
func (r *ShopperAccountRiskData) SetPaymentAccountFirstUseDate(t time.Time) error {
	return r.g.set(FieldShopperAccountPaymentAccountFirstUseDate, t)
}

// TransactionsAttemptedLastDay returns transactionsAttemptedLastDay, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) TransactionsAttemptedLastDay() (int, error) {
	return groupValue[int](r.g, FieldTransactionsAttemptedLastDay)
}

// SetTransactionsAttemptedLastDay sets transactionsAttemptedLastDay.
func (r *ShopperAccountRiskData) SetTransactionsAttemptedLastDay(n int) error {
	return r.g.set(FieldTransactionsAttemptedLastDay, n)
}

// TransactionsAttemptedLastYear returns transactionsAttemptedLastYear, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) TransactionsAttemptedLastYear() (int, error) {
	return groupValue[int](r.g, FieldTransactionsAttemptedLastYear)
}

// SetTransactionsAttemptedLastYear sets transactionsAttemptedLastYear.
func (r *ShopperAccountRiskData) SetTransactionsAttemptedLastYear(n int) error {
	return r.g.set(FieldTransactionsAttemptedLastYear, n)
}

// PurchasesCompletedLastSixMonths returns purchasesCompletedLastSixMonths, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) PurchasesCompletedLastSixMonths() (int, error) {
	return groupValue[int](r.g, FieldPurchasesCompletedLastSixMonths)
}

// SetPurchasesCompletedLastSixMonths sets purchasesCompletedLastSixMonths.
func (r *ShopperAccountRiskData) SetPurchasesCompletedLastSixMonths(n int) error {
	return r.g.set(FieldPurchasesCompletedLastSixMonths, n)
}

// AddCardAttemptsLastDay returns addCardAttemptsLastDay, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) AddCardAttemptsLastDay() (int, error) {
	return groupValue[int](r.g, FieldAddCardAttemptsLastDay)
}

// SetAddCardAttemptsLastDay sets addCardAttemptsLastDay.
func (r *ShopperAccountRiskData) SetAddCardAttemptsLastDay(n int) error {
	return r.g.set(FieldAddCardAttemptsLastDay, n)
}

// PreviousSuspiciousActivity returns previousSuspiciousActivity, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) PreviousSuspiciousActivity() (bool, error) {
	return groupValue[bool](r.g, FieldPreviousSuspiciousActivity)
}

// SetPreviousSuspiciousActivity sets previousSuspiciousActivity.
func (r *ShopperAccountRiskData) SetPreviousSuspiciousActivity(b bool) error {
	return r.g.set(FieldPreviousSuspiciousActivity, b)
}

// ShippingNameMatchesAccountName returns shippingNameMatchesAccountName, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) ShippingNameMatchesAccountName() (bool, error) {
	return groupValue[bool](r.g, FieldShippingNameMatchesAccountName)
}

// SetShippingNameMatchesAccountName sets shippingNameMatchesAccountName.
func (r *ShopperAccountRiskData) SetShippingNameMatchesAccountName(b bool) error {
	return r.g.set(FieldShippingNameMatchesAccountName, b)
}

// AgeIndicator returns shopperAccountAgeIndicator, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) AgeIndicator() (ShopperAccountAgeIndicator, error) {
	return groupEnum[ShopperAccountAgeIndicator](r.g, FieldShopperAccountAgeIndicator)
}

// SetAgeIndicator sets shopperAccountAgeIndicator.
func (r *ShopperAccountRiskData) SetAgeIndicator(v ShopperAccountAgeIndicator) error {
	return r.g.set(FieldShopperAccountAgeIndicator, v)
}

// ChangeIndicator returns shopperAccountChangeIndicator, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) ChangeIndicator() (ShopperAccountChangeIndicator, error) {
	return groupEnum[ShopperAccountChangeIndicator](r.g, FieldShopperAccountChangeIndicator)
}

// SetChangeIndicator sets shopperAccountChangeIndicator.
func (r *ShopperAccountRiskData) SetChangeIndicator(v ShopperAccountChangeIndicator) error {
	return r.g.set(FieldShopperAccountChangeIndicator, v)
}

// PasswordChangeIndicator returns shopperAccountPasswordChangeIndicator, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) PasswordChangeIndicator() (ShopperAccountPasswordChangeIndicator, error) {
	return groupEnum[ShopperAccountPasswordChangeIndicator](r.g, FieldShopperAccountPasswordChangeIndicator)
}

// SetPasswordChangeIndicator sets shopperAccountPasswordChangeIndicator.
func (r *ShopperAccountRiskData) SetPasswordChangeIndicator(v ShopperAccountPasswordChangeIndicator) error {
	return r.g.set(FieldShopperAccountPasswordChangeIndicator, v)
}

// ShippingAddressUsageIndicator returns shopperAccountShippingAddressUsageIndicator, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) ShippingAddressUsageIndicator() (ShopperAccountShippingAddressUsageIndicator, error) {
	return groupEnum[ShopperAccountShippingAddressUsageIndicator](r.g, FieldShopperAccountShippingAddressUsageIndicator)
}

// SetShippingAddressUsageIndicator sets shopperAccountShippingAddressUsageIndicator.
func (r *ShopperAccountRiskData) SetShippingAddressUsageIndicator(v ShopperAccountShippingAddressUsageIndicator) error {
	return r.g.set(FieldShopperAccountShippingAddressUsageIndicator, v)
}

// PaymentAccountIndicator returns shopperAccountPaymentAccountIndicator, or an error matching ErrNotSet.
func (r *ShopperAccountRiskData) PaymentAccountIndicator() (ShopperAccountPaymentAccountIndicator, error) {
	return groupEnum[ShopperAccountPaymentAccountIndicator](r.g, FieldShopperAccountPaymentAccountIndicator)
}

// SetPaymentAccountIndicator sets shopperAccountPaymentAccountIndicator.
func (r *ShopperAccountRiskData) SetPaymentAccountIndicator(v ShopperAccountPaymentAccountIndicator) error {
	return r.g.set(FieldShopperAccountPaymentAccountIndicator, v)
}

// TransactionRiskData describes the goods and delivery of this order.
type TransactionRiskData struct {
	g *riskGroup
}

// NewTransactionRiskData builds the group from field name/value pairs.
// The gift card amount is encoded in the order currency and must fit its
// precision.
func NewTransactionRiskData(initial map[string]any) (*TransactionRiskData, error) {
	g, err := newRiskGroup("transactionRiskData", transactionFields, initial)
	if err != nil {
		return nil, err
	}
	return &TransactionRiskData{g: g}, nil
}

// IsSet reports whether the named field has been set.
func (r *TransactionRiskData) IsSet(field string) bool { return r.g.data.IsSet(field) }

// HasProperties reports whether any field has been set. Empty groups are not encoded.
func (r *TransactionRiskData) HasProperties() bool { return r.g.data.HasProperties() }

// GiftCardAmount returns transactionRiskDataGiftCardAmount, or an error matching ErrNotSet.
func (r *TransactionRiskData) GiftCardAmount() (decimal.Decimal, error) {
	return groupValue[decimal.Decimal](r.g, FieldTransactionRiskDataGiftCardAmount)
}

// SetGiftCardAmount sets transactionRiskDataGiftCardAmount.
func (r *TransactionRiskData) SetGiftCardAmount(d decimal.Decimal) error {
	return r.g.set(FieldTransactionRiskDataGiftCardAmount, d)
}

// PreOrderDate returns transactionRiskDataPreOrderDate, or an error matching ErrNotSet.
func (r *TransactionRiskData) PreOrderDate() (time.Time, error) {
	return groupValue[time.Time](r.g, FieldTransactionRiskDataPreOrderDate)
}

// SetPreOrderDate sets transactionRiskDataPreOrderDate.
func (r *TransactionRiskData) SetPreOrderDate(t time.Time) error {
	return r.g.set(FieldTransactionRiskDataPreOrderDate, t)
}

// ShippingMethod returns shippingMethod, or an error matching ErrNotSet.
func (r *TransactionRiskData) ShippingMethod() (ShippingMethod, error) {
	return groupEnum[ShippingMethod](r.g, FieldShippingMethod)
}

// SetShippingMethod sets shippingMethod.
func (r *TransactionRiskData) SetShippingMethod(m ShippingMethod) error {
	return r.g.set(FieldShippingMethod, m)
}

// DeliveryTimeframe returns deliveryTimeframe, or an error matching ErrNotSet.
func (r *TransactionRiskData) DeliveryTimeframe() (DeliveryTimeframe, error) {
	return groupEnum[DeliveryTimeframe](r.g, FieldDeliveryTimeframe)
}

// SetDeliveryTimeframe sets deliveryTimeframe.
func (r *TransactionRiskData) SetDeliveryTimeframe(t DeliveryTimeframe) error {
	return r.g.set(FieldDeliveryTimeframe, t)
}

// DeliveryEmailAddress returns deliveryEmailAddress, or an error matching ErrNotSet.
func (r *TransactionRiskData) DeliveryEmailAddress() (string, error) {
	return groupValue[string](r.g, FieldDeliveryEmailAddress)
}

// SetDeliveryEmailAddress sets deliveryEmailAddress.
func (r *TransactionRiskData) SetDeliveryEmailAddress(email string) error {
	return r.g.set(FieldDeliveryEmailAddress, email)
}

// ReorderingPreviousPurchases returns reorderingPreviousPurchases, or an error matching ErrNotSet.
func (r *TransactionRiskData) ReorderingPreviousPurchases() (bool, error) {
	return groupValue[bool](r.g, FieldReorderingPreviousPurchases)
}

// SetReorderingPreviousPurchases sets reorderingPreviousPurchases.
func (r *TransactionRiskData) SetReorderingPreviousPurchases(b bool) error {
	return r.g.set(FieldReorderingPreviousPurchases, b)
}

// PreOrderPurchase returns preOrderPurchase, or an error matching ErrNotSet.
func (r *TransactionRiskData) PreOrderPurchase() (bool, error) {
	return groupValue[bool](r.g, FieldPreOrderPurchase)
}

// SetPreOrderPurchase sets preOrderPurchase.
func (r *TransactionRiskData) SetPreOrderPurchase(b bool) error {
	return r.g.set(FieldPreOrderPurchase, b)
}

// GiftCardCount returns giftCardCount, or an error matching ErrNotSet.
func (r *TransactionRiskData) GiftCardCount() (int, error) {
	return groupValue[int](r.g, FieldGiftCardCount)
}

// SetGiftCardCount sets giftCardCount.
func (r *TransactionRiskData) SetGiftCardCount(n int) error {
	return r.g.set(FieldGiftCardCount, n)
}

// RiskData bundles the optional risk groups attached to one order.
// Nil groups, and groups with nothing set, are not encoded.
type RiskData struct {
	Authentication *AuthenticationRiskData
	ShopperAccount *ShopperAccountRiskData
	Transaction    *TransactionRiskData
}

func (r RiskData) groups() []*riskGroup {
	var gs []*riskGroup
	if r.Authentication != nil && r.Authentication.HasProperties() {
		gs = append(gs, r.Authentication.g)
	}
	if r.ShopperAccount != nil && r.ShopperAccount.HasProperties() {
		gs = append(gs, r.ShopperAccount.g)
	}
	if r.Transaction != nil && r.Transaction.HasProperties() {
		gs = append(gs, r.Transaction.g)
	}
	return gs
}
