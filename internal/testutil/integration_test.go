package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOverlayRendersInsideTmux(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	bin := BuildBinary(t)
	srv := StartServer(t)
	session := "overlay"
	pane := session + ":0.0"
	scriptDir := t.TempDir()
	settingsPath := filepath.Join(scriptDir, "settings.yaml")
	if err := os.WriteFile(settingsPath, []byte("pool_size: 6\n"), 0o644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	exitFile := filepath.Join(scriptDir, "exit-code")
	scriptPath := filepath.Join(scriptDir, "run.sh")
	script := launcherScript(bin, settingsPath, filepath.Join(scriptDir, "gridjump.log"), exitFile)
	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write launcher script: %v", err)
	}
	// Panes inherit the server's environment, not this client's.
	cmd := srv.Command("new-session", "-d", "-x", "72", "-y", "24", "-s", session, scriptPath)
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to launch binary: %v", err)
	}
	if err := srv.Command("has-session", "-t", session).Run(); err != nil {
		t.Skipf("skipping: unable to create tmux session: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.WaitFor(ctx, pane, "f.f", exitFile)

	srv.SendKeys(pane, "a", "b")
	srv.WaitFor(ctx, pane, "1=Left", exitFile)

	srv.SendKeys(pane, "Escape")
	_ = srv.Command("kill-session", "-t", session).Run()
}

// launcherScript runs gridjump once in the pane, records its exit code in
// exitPath and keeps the pane alive for capture.
func launcherScript(bin, settingsPath, logPath, exitPath string) string {
	return "#!/bin/sh\n" +
		shellQuote(bin) + " --pointer dry-run --poll 0 --settings " + shellQuote(settingsPath) +
		" --log-file " + shellQuote(logPath) + " > /dev/null 2>&1\n" +
		"printf '%s' $? > " + shellQuote(exitPath) + "\n" +
		"sleep 300\n"
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func TestLauncherScriptEmbedsPaths(t *testing.T) {
	script := launcherScript("/tmp/x/gridjump", "/tmp/x/settings.yaml", "/tmp/it's.log", "/tmp/x/exit-code")
	for _, want := range []string{
		"'/tmp/x/gridjump' --pointer dry-run",
		"--settings '/tmp/x/settings.yaml'",
		`--log-file '/tmp/it'\''s.log'`,
		"> '/tmp/x/exit-code'",
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("expected %q in script:\n%s", want, script)
		}
	}
	if strings.Contains(script, "$GRIDJUMP_") {
		t.Fatalf("expected no environment lookups in script:\n%s", script)
	}
}
