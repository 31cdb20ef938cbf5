// Package upi formats UPI deep links for settling a group expense through an
// external payment app. Links are output-only; nothing in finflow parses
// them back.
package upi

import (
	"net/url"
	"strconv"
)

// Formatter builds upi://pay links against a fixed payee address and
// currency.
type Formatter struct {
	vpa      string
	currency string
}

// NewFormatter creates a Formatter. vpa is the virtual payment address the
// link targets and currency is an ISO 4217 code (INR for the stock setup).
func NewFormatter(vpa, currency string) *Formatter {
	return &Formatter{vpa: vpa, currency: currency}
}

// Link renders a payment link for the given recipient name, amount and
// transaction note. Payment apps expect the pa, pn, am, cu, tn parameter
// order, so the query string is assembled by hand; url.Values would sort
// the keys.
func (f *Formatter) Link(name string, amount float64, note string) string {
	return "upi://pay" +
		"?pa=" + url.QueryEscape(f.vpa) +
		"&pn=" + url.QueryEscape(name) +
		"&am=" + strconv.FormatFloat(amount, 'f', -1, 64) +
		"&cu=" + f.currency +
		"&tn=" + url.QueryEscape(note)
}
