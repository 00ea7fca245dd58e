package tmux

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

func withStubTmux(t *testing.T, fn func(string) (tmuxClient, error)) {
	t.Helper()
	prev := newTmux
	newTmux = fn
	t.Cleanup(func() {
		newTmux = prev
	})
}

type fakeClient struct {
	clients    []*gotmux.Client
	clientsErr error

	displayMessageFn func(target, format string) (string, error)

	listPanesTarget      string
	listPanesFilter      string
	listPanesFormatLines []string
	listPanesFormatErr   error

	commandCalls [][]string
	commandErr   error

	closed int
}

func (f *fakeClient) ListClients() ([]*gotmux.Client, error) {
	if f.clientsErr != nil {
		return nil, f.clientsErr
	}
	return f.clients, nil
}

func (f *fakeClient) DisplayMessage(target, format string) (string, error) {
	if f.displayMessageFn != nil {
		return f.displayMessageFn(target, format)
	}
	return "", nil
}

func (f *fakeClient) ListPanesFormat(target, filter, format string) ([]string, error) {
	f.listPanesTarget = target
	f.listPanesFilter = filter
	if f.listPanesFormatErr != nil {
		return nil, f.listPanesFormatErr
	}
	return f.listPanesFormatLines, nil
}

func (f *fakeClient) Command(parts ...string) (string, error) {
	cp := make([]string, len(parts))
	copy(cp, parts)
	f.commandCalls = append(f.commandCalls, cp)
	return "", f.commandErr
}

func (f *fakeClient) Close() error {
	f.closed++
	return nil
}

func TestFetchClientLayout(t *testing.T) {
	t.Setenv("TMUX_PANE", "%3")
	fake := &fakeClient{
		displayMessageFn: func(target, format string) (string, error) {
			if target != "%3" {
				t.Fatalf("expected target %%3, got %q", target)
			}
			if format != clientLayoutFormat {
				t.Fatalf("unexpected format %q", format)
			}
			return "200\t50\ton\ttop\n", nil
		},
	}
	withStubTmux(t, func(string) (tmuxClient, error) { return fake, nil })

	layout, err := FetchClientLayout("sock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ClientLayout{Size: Size{Width: 200, Height: 50}, StatusLines: 1, StatusTop: true}
	if layout != want {
		t.Fatalf("expected %#v, got %#v", want, layout)
	}
	if layout.WindowOffset() != 1 {
		t.Fatalf("expected window offset 1, got %d", layout.WindowOffset())
	}
	if fake.closed != 1 {
		t.Fatalf("expected client to be closed")
	}
}

func TestParseClientLayout(t *testing.T) {
	layout, err := parseClientLayout("80\t24\t2\tbottom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if layout.StatusLines != 2 || layout.StatusTop || layout.WindowOffset() != 0 {
		t.Fatalf("unexpected layout %#v", layout)
	}
	if layout, _ := parseClientLayout("80\t24\toff\ttop"); layout.WindowOffset() != 0 {
		t.Fatalf("expected no offset with status off, got %#v", layout)
	}
	if _, err := parseClientLayout("\t"); err == nil {
		t.Fatalf("expected error for empty layout")
	}
}

func TestFetchClientLayoutPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	withStubTmux(t, func(string) (tmuxClient, error) { return nil, boom })
	if _, err := FetchClientLayout(""); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestFetchPanesUsesCurrentSession(t *testing.T) {
	t.Setenv("TMUX_PANE", "%1")
	fake := &fakeClient{
		displayMessageFn: func(target, format string) (string, error) {
			return "work\n", nil
		},
		listPanesFormatLines: []string{
			"%1\t0\t0\t0\t100\t49\t1\t0",
			"%2\t1\t101\t0\t99\t49\t0\t0",
			"garbage",
			"",
		},
	}
	withStubTmux(t, func(string) (tmuxClient, error) { return fake, nil })

	panes, err := FetchPanes("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.listPanesTarget != "work" || fake.listPanesFilter != "" {
		t.Fatalf("expected session target, got %q/%q", fake.listPanesTarget, fake.listPanesFilter)
	}
	want := []Pane{
		{ID: "%1", Index: 0, Left: 0, Top: 0, Width: 100, Height: 49, Active: true},
		{ID: "%2", Index: 1, Left: 101, Top: 0, Width: 99, Height: 49},
	}
	if !reflect.DeepEqual(panes, want) {
		t.Fatalf("expected %#v, got %#v", want, panes)
	}

	if p, ok := PaneAt(panes, 150, 10); !ok || p.ID != "%2" {
		t.Fatalf("expected %%2 under (150,10), got %#v", p)
	}
	if _, ok := PaneAt(panes, 100, 10); ok {
		t.Fatalf("expected border column to hit no pane")
	}
}

func TestFetchPanesFallsBackToActiveWindowFilter(t *testing.T) {
	t.Setenv("TMUX_PANE", "")
	fake := &fakeClient{
		clients: []*gotmux.Client{{Name: "ctl", Session: "x", ControlMode: true}},
	}
	withStubTmux(t, func(string) (tmuxClient, error) { return fake, nil })
	if _, err := FetchPanes(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.listPanesTarget != "" || fake.listPanesFilter != activeWindowFilter {
		t.Fatalf("expected active window filter, got %q/%q", fake.listPanesTarget, fake.listPanesFilter)
	}
}

func TestSelectAndZoomPane(t *testing.T) {
	fake := &fakeClient{}
	withStubTmux(t, func(string) (tmuxClient, error) { return fake, nil })
	if err := SelectPane("", " %4 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ToggleZoom("", "%4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"select-pane", "-t", "%4"}, {"resize-pane", "-Z", "-t", "%4"}}
	if !reflect.DeepEqual(fake.commandCalls, want) {
		t.Fatalf("expected %v, got %v", want, fake.commandCalls)
	}

	fake.commandErr = errors.New("no pane")
	if err := SelectPane("", "%9"); err == nil || !strings.Contains(err.Error(), "select-pane") {
		t.Fatalf("expected wrapped select-pane error, got %v", err)
	}
}

func TestBindingArgs(t *testing.T) {
	args := BindingArgs("M-g", []string{"/usr/local/bin/gridjump", "--log-file", "/tmp/my log"})
	want := []string{
		"bind-key", "-n", "M-g",
		"display-popup", "-E", "-B", "-w", "100%", "-h", "100%",
		"/usr/local/bin/gridjump --log-file '/tmp/my log'",
	}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("expected %q, got %q", want, args)
	}
	if got := shellQuote("it's"); got != `'it'\''s'` {
		t.Fatalf("unexpected quoting %q", got)
	}
}

func TestInstallBinding(t *testing.T) {
	fake := &fakeClient{}
	withStubTmux(t, func(string) (tmuxClient, error) { return fake, nil })
	if err := InstallBinding("", "C-M-z", []string{"gridjump"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.commandCalls) != 1 || fake.commandCalls[0][0] != "bind-key" {
		t.Fatalf("expected one bind-key call, got %v", fake.commandCalls)
	}
}

func TestResolveSocketPath(t *testing.T) {
	t.Setenv("GRIDJUMP_SOCKET", "")
	t.Setenv("TMUX", "/tmp/tmux-1000/work,123,0")
	if got, _ := ResolveSocketPath("/flag"); got != "/flag" {
		t.Fatalf("expected flag to win, got %q", got)
	}
	if got, _ := ResolveSocketPath(""); got != "/tmp/tmux-1000/work" {
		t.Fatalf("expected $TMUX socket, got %q", got)
	}
	t.Setenv("GRIDJUMP_SOCKET", "/env")
	if got, _ := ResolveSocketPath(""); got != "/env" {
		t.Fatalf("expected env socket, got %q", got)
	}
}
