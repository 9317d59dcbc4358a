// Package conf holds the static lookup tables of the CSOB payment gateway
// API: the ordered allow-list of signed response fields, the masked-card
// extension field list, and the constants the gateway accepts for payment
// operations, methods, currencies, statuses and languages.
//
// The field lists are ordered: the gateway signs response payloads over the
// fields in exactly this order, so the tables drive canonical message
// construction during verification.
package conf

// ResponseKeys is the ordered allow-list of response fields covered by the
// gateway's response signature. Fields absent from a response are skipped,
// the remaining ones are verified in this order.
var ResponseKeys = []string{
	"payId",
	"custId",
	"dttm",
	"resultCode",
	"resultMessage",
	"paymentStatus",
	"authCode",
	"merchantData",
}

// ExtensionMaskCln is the type discriminator of the masked card number
// response extension.
const ExtensionMaskCln = "maskClnRP"

// MaskClnKeys is the ordered field allow-list covered by a masked card
// extension's own signature.
var MaskClnKeys = []string{
	"extension",
	"dttm",
	"maskedCln",
	"expiration",
	"longMaskedCln",
}

// Payment lifecycle statuses reported in the paymentStatus response field.
const (
	PaymentStatusInit          = 1
	PaymentStatusProcess       = 2
	PaymentStatusCancelled     = 3
	PaymentStatusConfirmed     = 4
	PaymentStatusReversed      = 5
	PaymentStatusRejected      = 6
	PaymentStatusWaiting       = 7
	PaymentStatusRecognized    = 8
	PaymentStatusReturnWaiting = 9
	PaymentStatusReturned      = 10
)

// PaymentStatuses maps status codes to human readable descriptions.
var PaymentStatuses = map[int]string{
	PaymentStatusInit:          "Payment initialized",
	PaymentStatusProcess:       "Payment in progress",
	PaymentStatusCancelled:     "Payment cancelled",
	PaymentStatusConfirmed:     "Payment confirmed",
	PaymentStatusReversed:      "Payment reversed",
	PaymentStatusRejected:      "Payment rejected",
	PaymentStatusWaiting:       "Waiting for settlement",
	PaymentStatusRecognized:    "Payment recognized",
	PaymentStatusReturnWaiting: "Waiting for refund",
	PaymentStatusReturned:      "Payment returned",
}

// Payment operations accepted by payment/init.
const (
	PayOperationPayment       = "payment"
	PayOperationOneclick      = "oneclickPayment"
	PayOperationCustomPayment = "customPayment"
)

// Payment methods accepted by payment/init.
const (
	PayMethodCard = "card"
)

// Return methods for the shopper redirect back to the e-shop.
const (
	ReturnMethodPost = "POST"
	ReturnMethodGet  = "GET"
)

// Currencies accepted by the gateway.
const (
	CurrencyCZK = "CZK"
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
	CurrencyGBP = "GBP"
	CurrencyHUF = "HUF"
	CurrencyPLN = "PLN"
	CurrencyRON = "RON"
	CurrencyNOK = "NOK"
	CurrencySEK = "SEK"
)

// Payment page languages.
const (
	LanguageCZ = "CZ"
	LanguageEN = "EN"
	LanguageDE = "DE"
	LanguageFR = "FR"
	LanguageHU = "HU"
	LanguageIT = "IT"
	LanguageJP = "JP"
	LanguagePL = "PL"
	LanguagePT = "PT"
	LanguageRO = "RO"
	LanguageRU = "RU"
	LanguageSK = "SK"
	LanguageES = "ES"
	LanguageTR = "TR"
	LanguageVN = "VN"
)

// Card provider identifiers and their display names.
const (
	CardProviderVisa   = "VISA"
	CardProviderAmex   = "AMEX"
	CardProviderDiners = "DINERS"
	CardProviderJCB    = "JCB"
	CardProviderMC     = "MASTER"
)

// CardProviders maps provider identifiers to display names.
var CardProviders = map[string]string{
	CardProviderVisa:   "Visa",
	CardProviderAmex:   "American Express",
	CardProviderDiners: "Diners Club International",
	CardProviderJCB:    "JCB",
	CardProviderMC:     "MasterCard",
}
