package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Game.FEN = fen
	return b
}

// WithStrictKingSafety enables rejection of self-check moves.
func (b *ConfigBuilder) WithStrictKingSafety(enabled bool) *ConfigBuilder {
	b.cfg.Game.StrictKingSafety = enabled
	return b
}

// WithASCII switches the board to letters.
func (b *ConfigBuilder) WithASCII(enabled bool) *ConfigBuilder {
	b.cfg.UI.ASCII = enabled
	return b
}

// WithServer enables serving on addr with the given host key.
func (b *ConfigBuilder) WithServer(addr, hostKeyPath string) *ConfigBuilder {
	b.cfg.Server.Enabled = true
	b.cfg.Server.Addr = addr
	b.cfg.Server.HostKeyPath = hostKeyPath
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFile sets the log file.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Log.File = path
	return b
}
