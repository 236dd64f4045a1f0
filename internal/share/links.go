// Package share builds the outbound deep links behind the widget's share
// actions. The links are fire-and-forget: nothing flows back into the engine.
package share

import (
	"errors"
	"net/url"
)

// Channel names a supported share target.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

var ErrUnknownChannel = errors.New("unknown share channel")

const (
	shareText    = "Check out this information from Binary Semantics!"
	emailSubject = "Information from Binary Semantics"
)

// Link builds the deep link for sharing the current page on a channel.
func Link(channel Channel, pageURL string) (string, error) {
	switch channel {
	case ChannelWhatsApp:
		return "https://wa.me/?text=" + url.QueryEscape(shareText+" "+pageURL), nil
	case ChannelEmail:
		return "mailto:?subject=" + url.QueryEscape(emailSubject) +
			"&body=" + url.QueryEscape(shareText+"\n\n"+pageURL), nil
	default:
		return "", ErrUnknownChannel
	}
}
