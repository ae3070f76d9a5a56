// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game options
	fenFlag    = flag.String("fen", "", "Start from this FEN position instead of the standard one")
	strictFlag = flag.Bool("strict", false, "Reject moves that leave the mover's own king in check")

	// Display options
	asciiFlag  = flag.Bool("ascii", false, "Draw pieces as letters instead of chess symbols")
	noTargets  = flag.Bool("notargets", false, "Don't highlight the targets of the selected piece")
	noFEN      = flag.Bool("nofen", false, "Don't show the FEN of the position")
	statusOnly = flag.Bool("status", false, "Print the board and status of the position and exit")

	// Server options
	serveFlag       = flag.Bool("serve", false, "Serve games over SSH instead of playing locally")
	addrFlag        = flag.String("addr", ":23234", "SSH listen address")
	hostKeyFlag     = flag.String("hostkey", ".ssh/chessrules_host_key", "SSH host key path (generated if missing)")
	idleTimeoutFlag = flag.Duration("idle-timeout", 30*time.Minute, "Disconnect idle SSH sessions after this long (0 disables)")

	// Logging
	logLevelFlag = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFileFlag  = flag.String("log-file", "", "Append logs to this file")

	// Other options
	help    = flag.Bool("help", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies the command-line flags in set to the configuration.
// Flags that were not given leave the value from the defaults or the
// environment alone.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyGameFlags(cfg, set)
	applyUIFlags(cfg, set)
	applyServerFlags(cfg, set)
	applyLogFlags(cfg, set)
}

// applyGameFlags configures the rules of the game.
func applyGameFlags(cfg *config.Config, set map[string]bool) {
	if set["fen"] {
		cfg.Game.FEN = *fenFlag
	}
	if set["strict"] {
		cfg.Game.StrictKingSafety = *strictFlag
	}
}

// applyUIFlags configures the board display.
func applyUIFlags(cfg *config.Config, set map[string]bool) {
	if set["ascii"] {
		cfg.UI.ASCII = *asciiFlag
	}
	if set["notargets"] {
		cfg.UI.ShowTargets = !*noTargets
	}
	if set["nofen"] {
		cfg.UI.ShowFEN = !*noFEN
	}
}

// applyServerFlags configures SSH serving.
func applyServerFlags(cfg *config.Config, set map[string]bool) {
	if set["serve"] {
		cfg.Server.Enabled = *serveFlag
	}
	if set["addr"] {
		cfg.Server.Addr = *addrFlag
	}
	if set["hostkey"] {
		cfg.Server.HostKeyPath = *hostKeyFlag
	}
	if set["idle-timeout"] {
		cfg.Server.IdleTimeout = *idleTimeoutFlag
	}
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config, set map[string]bool) {
	if set["log-level"] {
		cfg.Log.Level = *logLevelFlag
	}
	if set["log-file"] {
		cfg.Log.File = *logFileFlag
	}
}
