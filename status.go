package worldpay_cg_hosted

// StatusCode is a Worldpay order lifecycle event.
type StatusCode string

const (
	StatusAuthorised           StatusCode = "AUTHORISED"
	StatusCancelled            StatusCode = "CANCELLED"
	StatusCaptured             StatusCode = "CAPTURED"
	StatusChargedBack          StatusCode = "CHARGED_BACK"
	StatusChargebackReversed   StatusCode = "CHARGEBACK_REVERSED"
	StatusError                StatusCode = "ERROR"
	StatusExpired              StatusCode = "EXPIRED"
	StatusInformationRequested StatusCode = "INFORMATION_REQUESTED"
	StatusInformationSupplied  StatusCode = "INFORMATION_SUPPLIED"
	StatusRefunded             StatusCode = "REFUNDED"
	StatusRefundedFailed       StatusCode = "REFUNDED_FAILED"
	StatusRefundedByMerchant   StatusCode = "REFUNDED_BY_MERCHANT"
	StatusRefused              StatusCode = "REFUSED"
	StatusSentForAuthorisation StatusCode = "SENT_FOR_AUTHORISATION"
	StatusSentForRefund        StatusCode = "SENT_FOR_REFUND"
	StatusSettled              StatusCode = "SETTLED"
	StatusSettledByMerchant    StatusCode = "SETTLED_BY_MERCHANT"
)

// DefaultSuccessStatuses are the events treated as a successful payment.
var DefaultSuccessStatuses = []StatusCode{
	StatusAuthorised,
	StatusCaptured,
	StatusSettled,
	StatusSettledByMerchant,
}

// TransactionStatus is the gateway-neutral outcome of a notification.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)
