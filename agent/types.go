package agent

import (
	"context"

	"fablock/config"
)

// NetworkJoiner brings the device onto the configured wireless network.
type NetworkJoiner interface {
	Join(ctx context.Context, creds config.WifiCredentials) error
	Leave(ctx context.Context) error
}

// BackendLink maintains the session with the access-control backend.
type BackendLink interface {
	Connect(ctx context.Context, ep config.BackendEndpoint) error
	Close(ctx context.Context) error
}

// AccessController drives the machine relay: it decides when the tool this
// device guards may run, and for which card holder.
type AccessController interface {
	Start(ctx context.Context, machine config.MachineIdentity) error
	Stop(ctx context.Context) error
}

// TagReader waits for RFID cards and hands them to the access controller.
type TagReader interface {
	Start(ctx context.Context, opts config.RFIDOptions) error
	Stop(ctx context.Context) error
}

// Collaborators are the hardware-facing parts the agent sequences. A nil
// entry is skipped, so partial assemblies (bench rigs, tests) still run.
type Collaborators struct {
	Network NetworkJoiner
	Backend BackendLink
	Access  AccessController
	RFID    TagReader
}
