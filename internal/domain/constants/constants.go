// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider selectors used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Payment methods accepted at checkout. Validation happens at the request
// boundary; the core treats the method as opaque data afterwards.
const (
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCashOnDelivery = "cash_on_delivery"
)
