package config

import "fmt"

// Config is the device configuration descriptor: every constant the
// firmware needs to join the network, reach the backend and identify the
// machine it guards. One instance exists per boot, built by Load before any
// network or RFID activity starts, and is immutable afterwards, so
// goroutines may share it without locking. Fields are reachable only through
// accessors; there is no setter.
type Config struct {
	profile string

	wifiSSID     string
	wifiPassword Secret

	serverAddress string
	authToken     Secret

	// rfidAuthConst alters the reader's card-authentication behavior. Its
	// exact semantics live in the RFID collaborator; absent from a profile
	// it is false, but confirm with that collaborator before relying on
	// the default.
	rfidAuthConst bool

	machineName string
	machineID   string

	logging Logging
}

// Logging selects level/format/output for the startup diagnostic logger.
// Not security sensitive; never fails validation.
type Logging struct {
	Level  string // trace|debug|info|warning|error|fatal
	Format string // text|json
	File   string // log file path prefix, empty for stdout only
}

// WifiCredentials is the view consumed by the network-join collaborator.
type WifiCredentials struct {
	SSID     string
	Password Secret
}

// BackendEndpoint is the view consumed by the backend client: where to
// connect and the bearer credential to present. The wire-level auth scheme
// belongs to that collaborator, not to this package.
type BackendEndpoint struct {
	Address string
	Token   Secret
}

// MachineIdentity is the view consumed by the access-control collaborator.
// Name is the permission group the backend checks card use against; ID is
// the key the backend logs this device's activity under. ID uniqueness
// across devices is an operational contract with the backend, not enforced
// here.
type MachineIdentity struct {
	Name string
	ID   string
}

// RFIDOptions is the view consumed by the RFID reader collaborator.
type RFIDOptions struct {
	AuthConst bool
}

func (c *Config) Profile() string       { return c.profile }
func (c *Config) WifiSSID() string      { return c.wifiSSID }
func (c *Config) WifiPassword() Secret  { return c.wifiPassword }
func (c *Config) ServerAddress() string { return c.serverAddress }
func (c *Config) AuthToken() Secret     { return c.authToken }
func (c *Config) RFIDAuthConst() bool   { return c.rfidAuthConst }
func (c *Config) MachineName() string   { return c.machineName }
func (c *Config) MachineID() string     { return c.machineID }
func (c *Config) Logging() Logging      { return c.logging }

func (c *Config) WifiCredentials() WifiCredentials {
	return WifiCredentials{SSID: c.wifiSSID, Password: c.wifiPassword}
}

func (c *Config) Backend() BackendEndpoint {
	return BackendEndpoint{Address: c.serverAddress, Token: c.authToken}
}

func (c *Config) Machine() MachineIdentity {
	return MachineIdentity{Name: c.machineName, ID: c.machineID}
}

func (c *Config) RFID() RFIDOptions {
	return RFIDOptions{AuthConst: c.rfidAuthConst}
}

// Fields is the startup-diagnostic payload: everything an operator needs to
// recognize a misconfigured device, secrets reduced to their lengths.
func (c *Config) Fields() map[string]any {
	return map[string]any{
		"profile":           c.profile,
		"wifi_ssid":         c.wifiSSID,
		"wifi_password_len": len(c.wifiPassword),
		"server_address":    c.serverAddress,
		"auth_token_len":    len(c.authToken),
		"rfid_auth_const":   c.rfidAuthConst,
		"machine_name":      c.machineName,
		"machine_id":        c.machineID,
	}
}

// String renders a one-line redacted summary, safe for logs and panics.
// Value receiver: a Config formatted by value must still go through here
// instead of fmt's field reflection.
func (c Config) String() string {
	return fmt.Sprintf("profile=%s ssid=%s server=%s machine=%s/%s rfid_auth_const=%t",
		c.profile, c.wifiSSID, c.serverAddress, c.machineName, c.machineID, c.rfidAuthConst)
}

// GoString keeps %#v on the same summary.
func (c Config) GoString() string { return c.String() }
