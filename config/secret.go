package config

import "encoding/json"

const redacted = "[redacted]"

// Secret is a credential string that hides itself from fmt, logging and
// encoders. The Wi-Fi password and the backend auth token must never show
// up in a log line or a serialized config dump; only a collaborator that
// actually presents the credential calls Reveal.
type Secret string

func (s Secret) String() string   { return redacted }
func (s Secret) GoString() string { return redacted }

// MarshalJSON keeps the marker, not the value, in any JSON dump.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText covers YAML/TOML encoders the same way.
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Reveal returns the actual credential.
func (s Secret) Reveal() string { return string(s) }

// Empty reports whether no credential was configured.
func (s Secret) Empty() bool { return len(s) == 0 }
