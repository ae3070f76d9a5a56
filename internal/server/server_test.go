package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/wish/testsession"
	gossh "golang.org/x/crypto/ssh"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.NewConfigBuilder().
		WithServer("127.0.0.1:0", filepath.Join(t.TempDir(), "host_key")).
		Build()
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, b *syncBuffer, substr string) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(b.String(), substr) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("output never contained %q; got:\n%s", substr, b.String())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.Addr = ""

	_, err := New(cfg, log.New(io.Discard))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestNew_GeneratesHostKey(t *testing.T) {
	cfg := testConfig(t)

	s, err := New(cfg, log.New(io.Discard))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Addr(), "127.0.0.1:0")

	if _, err := os.Stat(cfg.Server.HostKeyPath); err != nil {
		t.Errorf("host key not written: %v", err)
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	var logs syncBuffer
	s, err := New(testConfig(t), log.New(&logs))
	testutil.AssertNoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	testutil.AssertNoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	waitFor(t, &logs, "starting SSH server")
	cancel()

	select {
	case err := <-done:
		testutil.AssertNoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	testutil.AssertContains(t, logs.String(), "stopping SSH server")
}

func TestSession_ShowsBoardAndQuits(t *testing.T) {
	var logs syncBuffer
	s, err := New(testConfig(t), log.New(&logs))
	testutil.AssertNoError(t, err)

	sess := testsession.New(t, s.ssh, nil)
	testutil.AssertNoError(t, sess.RequestPty("xterm", 30, 120, gossh.TerminalModes{}))

	var out syncBuffer
	sess.Stdout = &out
	in, err := sess.StdinPipe()
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, sess.Shell())

	// Answer the background colour and device attribute queries the
	// renderer sends before the first frame.
	_, err = in.Write([]byte("\x1b]11;rgb:0000/0000/0000\x07\x1b[?1;2c"))
	testutil.AssertNoError(t, err)

	waitFor(t, &out, "Light's turn")

	_, err = in.Write([]byte("q"))
	testutil.AssertNoError(t, err)

	done := make(chan struct{})
	go func() {
		_ = sess.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("session did not end after q")
	}

	waitFor(t, &logs, "connect")
}
