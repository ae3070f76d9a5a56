// Package config provides configuration for chessrules.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// GameConfig holds settings for the rules of a game.
type GameConfig struct {
	// Starting position; empty means the standard start.
	FEN string

	// Reject moves that leave the mover's own king in check.
	StrictKingSafety bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{}
}

// Validate checks that the starting position parses and has both kings.
func (g *GameConfig) Validate() error {
	if g.FEN == "" {
		return nil
	}
	board, _, err := engine.NewBoardFromFEN(g.FEN)
	if err != nil {
		return fmt.Errorf("fen: %v: %w", err, errors.ErrInvalidConfig)
	}
	for _, side := range []chess.Side{chess.Light, chess.Dark} {
		if _, err := engine.KingSquare(board, side); err != nil {
			return fmt.Errorf("fen: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// UIConfig holds settings for the terminal board.
type UIConfig struct {
	ASCII       bool // Letters instead of Unicode chess symbols
	ShowTargets bool // Highlight the targets of the selected piece
	ShowFEN     bool // Show the position text under the status line
}

// NewUIConfig creates a UIConfig with default values.
func NewUIConfig() *UIConfig {
	return &UIConfig{
		ShowTargets: true,
		ShowFEN:     true,
	}
}

// ServerConfig holds settings for serving games over SSH.
type ServerConfig struct {
	Enabled         bool
	Addr            string
	HostKeyPath     string
	IdleTimeout     time.Duration // 0 disables
	ShutdownTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":23234",
		HostKeyPath:     ".ssh/chessrules_host_key",
		IdleTimeout:     30 * time.Minute,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Validate checks the server settings. Nothing is checked when serving is
// disabled.
func (s *ServerConfig) Validate() error {
	if !s.Enabled {
		return nil
	}
	if s.Addr == "" {
		return fmt.Errorf("server address is empty: %w", errors.ErrInvalidConfig)
	}
	if s.HostKeyPath == "" {
		return fmt.Errorf("host key path is empty: %w", errors.ErrInvalidConfig)
	}
	if s.IdleTimeout < 0 || s.ShutdownTimeout < 0 {
		return fmt.Errorf("negative timeout: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string // debug, info, warn, error, fatal
	File  string // Append to this file; empty means stderr
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "info"}
}

// ParsedLevel returns the log level.
func (l *LogConfig) ParsedLevel() (log.Level, error) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Validate checks the log level.
func (l *LogConfig) Validate() error {
	_, err := l.ParsedLevel()
	return err
}

// Config holds all program configuration.
type Config struct {
	Game   *GameConfig
	UI     *UIConfig
	Server *ServerConfig
	Log    *LogConfig

	// Log destination when Log.File is empty
	LogOutput io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:      NewGameConfig(),
		UI:        NewUIConfig(),
		Server:    NewServerConfig(),
		Log:       NewLogConfig(),
		LogOutput: os.Stderr,
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// SetLogOutput sets the log destination used when no log file is named.
func (c *Config) SetLogOutput(w io.Writer) {
	c.LogOutput = w
}

// GameOptions translates the game settings into options for game.New.
func (c *Config) GameOptions(logger *log.Logger) []game.Option {
	opts := []game.Option{
		game.WithStrictKingSafety(c.Game.StrictKingSafety),
	}
	if c.Game.FEN != "" {
		opts = append(opts, game.WithFEN(c.Game.FEN))
	}
	if logger != nil {
		opts = append(opts, game.WithLogger(logger))
	}
	return opts
}

// NewGame creates a game from the configuration.
func (c *Config) NewGame(logger *log.Logger) (*game.Game, error) {
	return game.New(c.GameOptions(logger)...)
}
