package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

var ErrPaneUnavailable = errors.New("tmux pane unavailable")

// TestSession is the detached session every test server starts with.
const TestSession = "gridjump-test"

// Server is a throwaway tmux server on its own socket. Its verbose logs land
// in Dir.
type Server struct {
	t      *testing.T
	Socket string
	Dir    string
}

// RequireTmux skips the calling test when tmux is not on PATH.
func RequireTmux(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("tmux")
	if err != nil {
		t.Skip("skipping: tmux binary not available")
	}
	return path
}

// StartServer boots a server whose first session is TestSession, sized
// 120x40. The server is killed and its files removed when the test ends,
// after checking the logs for a crash.
func StartServer(t *testing.T) *Server {
	t.Helper()
	RequireTmux(t)
	dir, err := os.MkdirTemp("/tmp", "gridjump-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	s := &Server{t: t, Socket: filepath.Join(dir, "tmux-test.sock"), Dir: dir}
	if err := s.Command("-f", "/dev/null", "-vv", "new-session", "-d", "-x", "120", "-y", "40", "-s", TestSession, "sleep", "600").Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	if out, err := s.Command("display-message", "-p", "#{pid}").Output(); err == nil {
		t.Logf("started tmux test server pid=%s socket=%s", strings.TrimSpace(string(out)), s.Socket)
	}
	t.Cleanup(func() {
		s.kill()
		s.assertNoCrash()
	})
	return s
}

// Command builds a tmux invocation against the server. TMUX is cleared so
// the command never talks to the developer's own session.
func (s *Server) Command(args ...string) *exec.Cmd {
	cmd := exec.Command("tmux", append([]string{"-S", s.Socket}, args...)...)
	env := make([]string, 0, len(os.Environ())+2)
	for _, entry := range os.Environ() {
		if !strings.HasPrefix(entry, "TMUX=") {
			env = append(env, entry)
		}
	}
	cmd.Env = append(env, "TMUX=", "TMUX_TMPDIR="+s.Dir)
	return cmd
}

// Capture returns the rendered contents of target, escapes included.
func (s *Server) Capture(target string) (string, error) {
	out, err := s.Command("capture-pane", "-e", "-p", "-t", target).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrPaneUnavailable
		}
		return "", fmt.Errorf("capture-pane failed: %w", err)
	}
	return string(out), nil
}

// SendKeys types keys into target, one tmux key name per argument.
func (s *Server) SendKeys(target string, keys ...string) {
	s.t.Helper()
	if err := s.Command(append([]string{"send-keys", "-t", target}, keys...)...).Run(); err != nil {
		s.t.Fatalf("send-keys %v failed: %v", keys, err)
	}
}

// WaitFor polls target until its contents include want. A non-zero code
// written to exitPath by the launcher fails the test early.
func (s *Server) WaitFor(ctx context.Context, target, want, exitPath string) string {
	s.t.Helper()
	loggedMissing := false
	for {
		select {
		case <-ctx.Done():
			s.t.Fatalf("timeout waiting for %q to render: %v", want, ctx.Err())
		case <-time.After(50 * time.Millisecond):
		}
		if exitPath != "" {
			if data, err := os.ReadFile(exitPath); err == nil {
				if code := strings.TrimSpace(string(data)); code != "" && code != "0" {
					s.t.Fatalf("gridjump exited early with code %s", code)
				}
			}
		}
		out, err := s.Capture(target)
		if errors.Is(err, ErrPaneUnavailable) {
			if !loggedMissing {
				s.t.Logf("waiting for pane %s to become available", target)
				loggedMissing = true
			}
			continue
		}
		if err != nil {
			s.t.Fatalf("capture-pane error: %v", err)
		}
		if strings.Contains(out, want) {
			return out
		}
	}
}

// kill asks the server to exit over a control-mode client and falls back to
// kill-server.
func (s *Server) kill() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, err := gotmux.NewTmuxWithOptions(s.Socket, gotmux.WithContext(ctx))
	if err == nil {
		err = client.KillServer()
		client.Close()
	}
	if err != nil {
		s.t.Logf("control-mode kill failed for socket %s: %v; falling back to tmux kill-server", s.Socket, err)
		_ = s.Command("kill-server").Run()
	}
}

func (s *Server) assertNoCrash() {
	files, err := filepath.Glob(filepath.Join(s.Dir, "tmux-server-*.log"))
	if err != nil {
		s.t.Errorf("failed to glob tmux logs: %v", err)
		return
	}
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			s.t.Errorf("failed to read tmux server log %s: %v", path, err)
			continue
		}
		if bytes.Contains(content, []byte("server exited unexpectedly")) {
			s.t.Errorf("tmux server reported unexpected exit; see %s", path)
		}
	}
}
