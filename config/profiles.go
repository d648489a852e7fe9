package config

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

// Profiles are the deployment targets compiled into the binary, one YAML
// record each. They carry structure and per-target defaults, not secrets:
// every shipped record keeps the literal placeholder token, so an image
// cannot pass validation until the deployment supplies a real one.
//
//go:embed profiles/*.yaml
var profilesFS embed.FS

// DefaultProfile names the profile used when the PROFILE environment
// variable is unset. Overridable at build time:
//
//	go build -ldflags "-X fablock/config.DefaultProfile=lab"
var DefaultProfile = "production"

// Profiles lists the embedded profile names, sorted.
func Profiles() []string {
	entries, err := profilesFS.ReadDir("profiles")
	if err != nil {
		// The directory is compiled in; this cannot fail at runtime.
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

func profileBytes(name string) ([]byte, error) {
	data, err := profilesFS.ReadFile("profiles/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownProfile, name, strings.Join(Profiles(), ", "))
	}
	return data, nil
}
