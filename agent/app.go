package agent

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fablock/config"
	"fablock/internal/logs"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// App sequences one boot of the device: logging, then the collaborators in
// dependency order, then waits for a stop signal and unwinds in reverse.
type App struct {
	cfg    *config.Config
	collab Collaborators
	bootID string

	ctx    context.Context
	cancel context.CancelFunc
}

// stage is one startable collaborator with its teardown.
type stage struct {
	name  string
	start func(context.Context) error
	stop  func(context.Context) error
}

func (a *App) Initialize(cfg *config.Config, collab Collaborators) {
	a.cfg = cfg
	a.collab = collab

	/* 1) Boot identity */
	a.bootID = uuid.NewString()

	/* 2) Logs, every entry stamped with this boot and machine */
	lg := cfg.Logging()
	logs.Init(logs.Options{
		Level:  lg.Level,
		Format: lg.Format,
		File:   lg.File,
		Fields: map[string]any{
			"boot_id": a.bootID,
			"machine": cfg.MachineID(),
		},
	})

	/* 3) Redacted config echo */
	logs.Logger.WithFields(logrus.Fields(cfg.Fields())).Info("configuration loaded")

	a.ctx, a.cancel = context.WithCancel(context.Background())
}

// BootID identifies this boot in logs and backend reports.
func (a *App) BootID() string { return a.bootID }

// Run starts the collaborators and blocks until a signal or Shutdown. The
// startup order is network, backend, access, rfid; teardown is the reverse.
// If any stage fails, the ones already up are stopped and the error returned.
func (a *App) Run() error {
	if a.cfg == nil || a.ctx == nil {
		return fmt.Errorf("agent not initialized")
	}
	defer a.cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case s := <-sigs:
			logs.Logger.Infof("shutdown signal: %s", s)
			a.cancel()
		case <-a.ctx.Done():
		}
	}()

	stages := a.stages()
	started := 0
	for _, st := range stages {
		logs.Logger.Infof("starting %s", st.name)
		if err := st.start(a.ctx); err != nil {
			a.unwind(stages[:started])
			return fmt.Errorf("%s start: %w", st.name, err)
		}
		started++
	}
	logs.Logger.Info("agent up")

	<-a.ctx.Done()

	a.unwind(stages[:started])
	return nil
}

// Shutdown stops a running agent. Safe to call from another goroutine.
func (a *App) Shutdown() {
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *App) stages() []stage {
	var out []stage
	if n := a.collab.Network; n != nil {
		creds := a.cfg.WifiCredentials()
		out = append(out, stage{
			name:  "network",
			start: func(ctx context.Context) error { return n.Join(ctx, creds) },
			stop:  n.Leave,
		})
	}
	if b := a.collab.Backend; b != nil {
		ep := a.cfg.Backend()
		out = append(out, stage{
			name:  "backend",
			start: func(ctx context.Context) error { return b.Connect(ctx, ep) },
			stop:  b.Close,
		})
	}
	if c := a.collab.Access; c != nil {
		m := a.cfg.Machine()
		out = append(out, stage{
			name:  "access",
			start: func(ctx context.Context) error { return c.Start(ctx, m) },
			stop:  c.Stop,
		})
	}
	if r := a.collab.RFID; r != nil {
		o := a.cfg.RFID()
		out = append(out, stage{
			name:  "rfid",
			start: func(ctx context.Context) error { return r.Start(ctx, o) },
			stop:  r.Stop,
		})
	}
	return out
}

// unwind stops the given stages in reverse under a hard deadline, logging
// failures instead of aborting: teardown always visits every stage.
func (a *App) unwind(up []stage) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := len(up) - 1; i >= 0; i-- {
		if err := up[i].stop(ctx); err != nil {
			logs.Logger.Errorf("%s stop: %v", up[i].name, err)
		}
	}
}
