// Package whatsapp builds the outbound hand-off deep link. Nothing is
// sent from here; the caller opens the URL and the flow ends.
package whatsapp

import "net/url"

// Link composes a wa.me URL with the percent-encoded message body for
// the given recipient number.
func Link(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

// Builder satisfies the checkout hand-off link port.
type Builder struct{}

func (Builder) Link(number, message string) string {
	return Link(number, message)
}
