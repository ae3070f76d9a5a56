// chessrules is a two-player chess board for the terminal, played locally or
// served over SSH.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/server"
	"github.com/lgbarn/chessrules-go/internal/ui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, setFlags())

	os.Exit(run(cfg, *statusOnly, os.Stdout, os.Stderr))
}

// run starts the selected mode and returns the exit code. With status set
// it prints the position and exits instead of playing.
func run(cfg *config.Config, status bool, stdout, stderr io.Writer) int {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// The local board owns the terminal, so logs only go to a file.
	if !cfg.Server.Enabled && !status && cfg.Log.File == "" {
		cfg.SetLogOutput(io.Discard)
	} else if cfg.LogOutput == os.Stderr {
		cfg.SetLogOutput(stderr)
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(stderr, "Error setting up logging: %v\n", err)
		return 1
	}
	defer closer.Close() //nolint:errcheck // G104: cleanup on exit

	switch {
	case status:
		err = printStatus(cfg, logger, stdout)
	case cfg.Server.Enabled:
		err = runServer(cfg, logger)
	default:
		err = runLocal(cfg, logger)
	}
	if err != nil {
		logger.Error("exiting", "err", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// printStatus writes the starting position and its status.
func printStatus(cfg *config.Config, logger *log.Logger, w io.Writer) error {
	g, err := cfg.NewGame(logger)
	if err != nil {
		return err
	}
	writeStatus(w, g)
	return nil
}

func writeStatus(w io.Writer, g *game.Game) {
	fmt.Fprint(w, g.Board().String())
	fmt.Fprintln(w, g.Status())
	fmt.Fprintln(w, g.FEN())
}

// runLocal plays on this terminal until the player quits.
func runLocal(cfg *config.Config, logger *log.Logger) error {
	g, err := cfg.NewGame(logger)
	if err != nil {
		return err
	}
	logger.Info("starting local game", "fen", g.FEN(), "strict", g.StrictKingSafety())

	p := tea.NewProgram(ui.New(g, cfg.UI, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	if g.IsGameOver() {
		fmt.Println(g.Status())
	}
	return nil
}

// runServer serves games over SSH until interrupted.
func runServer(cfg *config.Config, logger *log.Logger) error {
	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return srv.Run(ctx)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess board that enforces the movement rules,\n")
	fmt.Fprintf(os.Stderr, "check and checkmate.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment (overridden by flags):\n")
	fmt.Fprintf(os.Stderr, "  %sFEN, %sSTRICT, %sASCII, %sSERVE, %sADDR,\n",
		config.EnvPrefix, config.EnvPrefix, config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	fmt.Fprintf(os.Stderr, "  %sHOST_KEY, %sIDLE_TIMEOUT, %sSHUTDOWN_TIMEOUT,\n",
		config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	fmt.Fprintf(os.Stderr, "  %sLOG_LEVEL, %sLOG_FILE\n", config.EnvPrefix, config.EnvPrefix)
	fmt.Fprintf(os.Stderr, "\nKeys:\n")
	fmt.Fprintf(os.Stderr, "  arrows/hjkl  move the cursor\n")
	fmt.Fprintf(os.Stderr, "  enter/space  select a piece, then its target\n")
	fmt.Fprintf(os.Stderr, "  esc          clear the selection\n")
	fmt.Fprintf(os.Stderr, "  r            restart\n")
	fmt.Fprintf(os.Stderr, "  q            quit\n")
}
