package share_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/binarysemantics/ichatrobo/internal/share"
)

func TestWhatsAppLink(t *testing.T) {
	link, err := share.Link(share.ChannelWhatsApp, "https://www.binarysemantics.com")
	if err != nil {
		t.Fatalf("Link err: %v", err)
	}

	if !strings.HasPrefix(link, "https://wa.me/?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if !strings.Contains(link, "binarysemantics.com") {
		t.Fatal("page URL missing from link")
	}
}

func TestEmailLink(t *testing.T) {
	link, err := share.Link(share.ChannelEmail, "https://www.binarysemantics.com")
	if err != nil {
		t.Fatalf("Link err: %v", err)
	}

	if !strings.HasPrefix(link, "mailto:?subject=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if !strings.Contains(link, "&body=") {
		t.Fatal("body missing from mail link")
	}
}

func TestUnknownChannel(t *testing.T) {
	if _, err := share.Link("carrier-pigeon", "https://example.com"); !errors.Is(err, share.ErrUnknownChannel) {
		t.Fatalf("expected ErrUnknownChannel, got %v", err)
	}
}
