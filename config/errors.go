package config

import "errors"

// Construction errors. Every failure aborts startup: the device must not
// join a network or talk to the backend with a malformed identity. Wrapped
// errors carry the offending config key; match with errors.Is.
var (
	ErrMissingField          = errors.New("missing required config field")
	ErrInvalidAddress        = errors.New("server address is not a valid host or IP")
	ErrPlaceholderCredential = errors.New("auth token is a template placeholder")
	ErrInvalidBoolean        = errors.New("malformed boolean flag")
	ErrUnknownProfile        = errors.New("unknown config profile")
)
