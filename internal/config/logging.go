package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the program logger. When a log file is configured it is
// opened for appending and returned as the closer; otherwise the closer is a
// no-op and logs go to LogOutput.
func (c *Config) NewLogger() (*log.Logger, io.Closer, error) {
	level, err := c.Log.ParsedLevel()
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = c.LogOutput
	var closer io.Closer = nopCloser{}
	if c.Log.File != "" {
		file, err := os.OpenFile(c.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return nil, nil, err
		}
		out, closer = file, file
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "chessrules",
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
