// Package card classifies card numbers by issuing network using BIN
// prefixes. Works on masked numbers too, since only the first six digits are
// examined.
package card

import (
	"regexp"

	"github.com/moventis/csob-client/conf"
)

// Provider identifies a card issuing network.
type Provider string

// Known providers. None is the sentinel for an unrecognized BIN.
const (
	Visa       Provider = conf.CardProviderVisa
	Amex       Provider = conf.CardProviderAmex
	Diners     Provider = conf.CardProviderDiners
	JCB        Provider = conf.CardProviderJCB
	MasterCard Provider = conf.CardProviderMC
	None       Provider = ""
)

// providers is the classification table, tested in order; first match wins.
var providers = []struct {
	id Provider
	rx *regexp.Regexp
}{
	{Visa, regexp.MustCompile(`^4\d{5}$`)},
	{Amex, regexp.MustCompile(`^3[47]\d{4}$`)},
	{Diners, regexp.MustCompile(`^3(?:0[0-5]|[68][0-9])[0-9]{3}$`)},
	{JCB, regexp.MustCompile(`^(?:2131|1800|35[0-9]{2})[0-9]{2}$`)},
	{MasterCard, regexp.MustCompile(`^(?:5[1-5][0-9]{4}|222[1-9][0-9]{2}|22[3-9][0-9]{3}|2[3-6][0-9]{4}|27[01][0-9]{3}|2720[0-9]{2})$`)},
}

// Classify matches the first six digits of a card number, masked or full,
// against the BIN table and returns the provider identity and its display
// name. An unrecognized prefix returns (None, "").
func Classify(number string) (Provider, string) {
	prefix := number
	if len(prefix) > 6 {
		prefix = prefix[:6]
	}
	for _, p := range providers {
		if p.rx.MatchString(prefix) {
			return p.id, conf.CardProviders[string(p.id)]
		}
	}
	return None, ""
}
