package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// record mirrors the layered sources before validation. rfid.auth_const is
// deliberately not in here: unmarshal would cast junk like "maybe" to false
// instead of failing, see decodeRFIDFlag.
type record struct {
	Wifi struct {
		Ssid     string `mapstructure:"ssid"`
		Password Secret `mapstructure:"password"`
	} `mapstructure:"wifi"`

	Server struct {
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`

	Auth struct {
		Token Secret `mapstructure:"token"`
	} `mapstructure:"auth"`

	Machine struct {
		Name string `mapstructure:"name"`
		ID   string `mapstructure:"id"`
	} `mapstructure:"machine"`

	Logs struct {
		Level  string `mapstructure:"level"`  // trace|debug|info|warning|error|fatal
		Format string `mapstructure:"format"` // text|json
		File   string `mapstructure:"file"`   // file path/prefix, empty means stdout only
	} `mapstructure:"logs"`
}

// envKeys lists every config key so each answers to an environment variable
// (uppercase, dots to underscores): wifi.ssid becomes WIFI_SSID and so on,
// matching the constant names the firmware headers used.
var envKeys = []string{
	"wifi.ssid", "wifi.password",
	"server.address",
	"auth.token",
	"rfid.auth_const",
	"machine.name", "machine.id",
	"logs.level", "logs.format", "logs.file",
}

// Load builds and validates the device configuration. Source precedence,
// highest first: process environment, optional config file, embedded profile
// record, defaults. The profile comes from the PROFILE environment variable,
// falling back to DefaultProfile. Load touches no network, storage or
// hardware; a non-nil error means the device must not boot.
func Load() (*Config, error) {
	// A .env next to the binary is a deployment convenience; absent is
	// fine, and real environment variables keep priority over it.
	_ = godotenv.Load()

	name := os.Getenv("PROFILE")
	if name == "" {
		name = DefaultProfile
	}
	return loadProfile(name)
}

// LoadProfile is Load with an explicit profile, for tests and tooling that
// need several profiles side by side.
func LoadProfile(name string) (*Config, error) {
	_ = godotenv.Load()
	return loadProfile(name)
}

// MustLoad is the boot entry: a device with a broken configuration must not
// come up at all.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func loadProfile(name string) (*Config, error) {
	data, err := profileBytes(name)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	// Safe defaults only; credentials and addresses have none.
	v.SetDefault("rfid.auth_const", false)
	v.SetDefault("logs.level", "info")
	v.SetDefault("logs.format", "text")
	v.SetDefault("logs.file", "")

	// The profile record is parsed on a scratch instance: pinning the yaml
	// type on the main one would also pin it for CONFIG_FILE, whose format
	// must follow its own extension.
	base := viper.New()
	base.SetConfigType("yaml")
	if err := base.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("profile %s: %w", name, err)
	}
	if err := v.MergeConfigMap(base.AllSettings()); err != nil {
		return nil, fmt.Errorf("profile %s: %w", name, err)
	}

	// Optional config file on top of the profile record. An explicit
	// CONFIG_FILE must exist; the search-path lookup may come up empty.
	if cfgFile := os.Getenv("CONFIG_FILE"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("config read error: %w", err)
		}
	} else {
		v.SetConfigName("fablock")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/fablock")
		if err := v.MergeInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, fmt.Errorf("config read error: %w", err)
			}
		}
	}

	var rec record
	if err := v.Unmarshal(&rec); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	flag, err := decodeRFIDFlag(v.Get("rfid.auth_const"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		profile:       name,
		wifiSSID:      rec.Wifi.Ssid,
		wifiPassword:  rec.Wifi.Password,
		serverAddress: rec.Server.Address,
		authToken:     rec.Auth.Token,
		rfidAuthConst: flag,
		machineName:   rec.Machine.Name,
		machineID:     rec.Machine.ID,
		logging: Logging{
			Level:  rec.Logs.Level,
			Format: rec.Logs.Format,
			File:   rec.Logs.File,
		},
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeRFIDFlag keeps malformed booleans loud. A reader flag that silently
// flips to false on a typo is worse than a device that refuses to boot.
func decodeRFIDFlag(raw any) (bool, error) {
	switch val := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return val, nil
	default:
		b, err := strconv.ParseBool(strings.TrimSpace(fmt.Sprint(val)))
		if err != nil {
			return false, fmt.Errorf("%w: rfid.auth_const %q", ErrInvalidBoolean, fmt.Sprint(val))
		}
		return b, nil
	}
}
