package logs

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger, set up once by Init at boot. Every
// entry carries the identity fields passed to Init, so a line can be traced
// to a device and a boot even when several agents share a log collector.
var Logger *logrus.Entry

// Options select the logger behavior, normally taken from cfg.Logging().
type Options struct {
	Level  string // trace|debug|info|warning|error|fatal
	Format string // text|json
	File   string // log file path/prefix, empty means stdout only

	// Fields are stamped onto every entry: boot id, machine id.
	Fields map[string]any
}

// Init configures the global logger. Stdout always stays attached (on the
// device that is the serial console); File adds a per-boot copy. An unknown
// Level degrades to info: the logging knobs never abort a boot.
func Init(opts Options) {
	l := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if opts.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	if opts.File != "" {
		stamp := time.Now().Format("2006-01-02_15-04-05")
		name := fmt.Sprintf("%s_%s.log", opts.File, stamp)
		file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			l.Fatalf("failed to open log file %s: %v", name, err)
		}
		l.SetOutput(io.MultiWriter(file, os.Stdout))
	} else {
		l.SetOutput(os.Stdout)
	}

	Logger = l.WithFields(logrus.Fields(opts.Fields))
}
