package config

import (
	"fmt"
	"net/netip"
	"strings"
)

// Template defaults from the shipped profiles. A token left at one of these
// must never reach a deployed device.
var placeholderTokens = []string{"token", "CHANGE_ME"}

// validate runs every construction check, before any network or hardware
// I/O. Values are trimmed for checking only; the stored values stay exactly
// as the winning source provided them.
func validate(c *Config) error {
	required := []struct {
		key   string
		value string
	}{
		{"wifi.ssid", c.wifiSSID},
		{"server.address", c.serverAddress},
		{"auth.token", c.authToken.Reveal()},
		{"machine.name", c.machineName},
		{"machine.id", c.machineID},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.key)
		}
	}

	// The password is required too, but not trimmed: an open network is not
	// indicated anywhere in the profiles, and a whitespace password is
	// technically joinable.
	if c.wifiPassword.Empty() {
		return fmt.Errorf("%w: wifi.password", ErrMissingField)
	}

	if !validHostOrIP(strings.TrimSpace(c.serverAddress)) {
		return fmt.Errorf("%w: server.address %q", ErrInvalidAddress, c.serverAddress)
	}

	token := strings.TrimSpace(c.authToken.Reveal())
	for _, p := range placeholderTokens {
		if token == p {
			return fmt.Errorf("%w: set a real auth.token before deploying", ErrPlaceholderCredential)
		}
	}

	return nil
}

// validHostOrIP accepts an IPv4/IPv6 literal or an RFC 1123 hostname.
func validHostOrIP(s string) bool {
	if _, err := netip.ParseAddr(s); err == nil {
		return true
	}
	return validHostname(s)
}

func validHostname(s string) bool {
	// A single trailing dot is a legal fully-qualified form.
	s = strings.TrimSuffix(s, ".")
	if s == "" || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if !validHostLabel(label) {
			return false
		}
	}
	return true
}

func validHostLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}
