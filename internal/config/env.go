package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CHESSRULES_"

// ApplyEnv fills settings from CHESSRULES_* variables read through getenv
// (normally os.Getenv). Unset or empty variables leave the current value
// alone, so command-line flags applied afterwards still win.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	str := func(name string, dst *string) {
		if v := getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v := getenv(EnvPrefix + name)
		if v == "" {
			return nil
		}
		b, ok := parseBool(v)
		if !ok {
			return fmt.Errorf("%s%s=%q is not a boolean: %w", EnvPrefix, name, v, errors.ErrInvalidConfig)
		}
		*dst = b
		return nil
	}
	duration := func(name string, dst *time.Duration) error {
		v := getenv(EnvPrefix + name)
		if v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %v: %w", EnvPrefix, name, err, errors.ErrInvalidConfig)
		}
		*dst = d
		return nil
	}

	str("FEN", &c.Game.FEN)
	str("ADDR", &c.Server.Addr)
	str("HOST_KEY", &c.Server.HostKeyPath)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FILE", &c.Log.File)

	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{"STRICT", &c.Game.StrictKingSafety},
		{"ASCII", &c.UI.ASCII},
		{"SERVE", &c.Server.Enabled},
	} {
		if err := boolean(b.name, b.dst); err != nil {
			return err
		}
	}

	if err := duration("IDLE_TIMEOUT", &c.Server.IdleTimeout); err != nil {
		return err
	}
	return duration("SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout)
}

func parseBool(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	}
	return false, false
}
