package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/atomicstack/gridjump/internal/backend"
	"github.com/atomicstack/gridjump/internal/format/table"
	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/hotkey"
	"github.com/atomicstack/gridjump/internal/logging"
	"github.com/atomicstack/gridjump/internal/logging/events"
	"github.com/atomicstack/gridjump/internal/pointer"
	"github.com/atomicstack/gridjump/internal/settings"
	"github.com/atomicstack/gridjump/internal/tmux"
	"github.com/atomicstack/gridjump/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// PrintViewport is the viewport --print-cells uses when no --screen is set.
var PrintViewport = grid.Size{Width: 1920, Height: 1080}

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	SettingsPath string
	Pointer      string
	Mode         ui.Mode
	Screen       grid.Size
	Poll         time.Duration

	PrintCells     bool
	InstallBinding bool
	// BindingChord overrides the settings hotkey for InstallBinding.
	BindingChord  string
	ResetSettings bool
}

var (
	newPointer     = pointer.New
	installBinding = tmux.InstallBinding
	executable     = os.Executable
)

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	return run(cfg, os.Stdout)
}

func run(cfg Config, out io.Writer) error {
	path := cfg.SettingsPath
	if path == "" {
		path = settings.DefaultPath()
	}
	current, err := loadSettings(path, cfg.ResetSettings)
	if err != nil {
		return err
	}

	if cfg.PrintCells {
		return printCells(out, current, cfg.Screen)
	}
	if cfg.InstallBinding {
		return install(out, cfg, current)
	}
	return runOverlay(cfg, path, current)
}

// loadSettings resets first when asked. Read and parse failures fall back
// to defaults and are only logged.
func loadSettings(path string, reset bool) (settings.Settings, error) {
	if reset {
		s, err := settings.Reset(path)
		if err != nil {
			return settings.Settings{}, fmt.Errorf("reset settings: %w", err)
		}
		events.Settings.Reset(path)
		return s, nil
	}
	s, err := settings.Load(path)
	if err != nil {
		logging.Error(fmt.Errorf("settings %s: %w", path, err))
		events.Settings.Error(path, err)
	}
	events.Settings.Load(path, s.PoolSize, s.Hotkey)
	return s, nil
}

func printCells(out io.Writer, s settings.Settings, screen grid.Size) error {
	viewport := screen
	if viewport.Empty() {
		viewport = PrintViewport
	}
	alphabet := s.AlphabetValue()
	pool := grid.ClampPoolSize(s.PoolSize, alphabet)
	cells := grid.Generate(alphabet, pool)
	grid.Layout(cells, alphabet, pool, viewport)
	events.Grid.Generate(alphabet.String(), pool, len(cells))
	events.Grid.Layout(viewport.Width, viewport.Height, pool)

	tbl := table.New(
		table.Column{Title: "LABEL"},
		table.Column{Title: "SHAPE"},
		table.Column{Title: "ROW", Align: table.AlignRight},
		table.Column{Title: "COL", Align: table.AlignRight},
		table.Column{Title: "LEFT", Align: table.AlignRight},
		table.Column{Title: "TOP", Align: table.AlignRight},
		table.Column{Title: "RIGHT", Align: table.AlignRight},
		table.Column{Title: "BOTTOM", Align: table.AlignRight},
	)
	for _, c := range cells {
		tbl.Append(
			c.Label,
			c.Shape.String(),
			strconv.Itoa(c.Row),
			strconv.Itoa(c.Col),
			strconv.Itoa(c.Rect.Left),
			strconv.Itoa(c.Rect.Top),
			strconv.Itoa(c.Rect.Right),
			strconv.Itoa(c.Rect.Bottom),
		)
	}
	for _, line := range tbl.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func install(out io.Writer, cfg Config, s settings.Settings) error {
	spec := s.HotkeySpec()
	if cfg.BindingChord != "" {
		parsed, err := hotkey.Parse(cfg.BindingChord)
		if err != nil {
			return fmt.Errorf("install-binding: %w", err)
		}
		spec = parsed
	}
	key, err := spec.TmuxKey()
	if err != nil {
		return fmt.Errorf("install-binding %s: %w", spec.Describe(), err)
	}
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	exe, err := executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	command := []string{exe, "--pointer", pointer.KindTmux}
	if cfg.SettingsPath != "" {
		command = append(command, "--settings", cfg.SettingsPath)
	}
	if err := installBinding(socketPath, key, command); err != nil {
		return fmt.Errorf("install binding %s: %w", key, err)
	}
	_, err = fmt.Fprintf(out, "Bound %s to open gridjump in a popup.\n", key)
	return err
}

func runOverlay(cfg Config, settingsPath string, current settings.Settings) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	socketPath := cfg.SocketPath
	if cfg.Pointer == pointer.KindTmux || cfg.Pointer == "" {
		resolved, err := tmux.ResolveSocketPath(cfg.SocketPath)
		if err != nil {
			return fmt.Errorf("resolve socket path: %w", err)
		}
		socketPath = resolved
	}
	p, err := newPointer(cfg.Pointer, pointer.Options{SocketPath: socketPath, Screen: cfg.Screen})
	if err != nil {
		return fmt.Errorf("pointer backend: %w", err)
	}
	defer p.Close()

	terminalViewport := false
	viewport, err := p.Viewport(ctx)
	switch {
	case errors.Is(err, pointer.ErrNoViewport):
		terminalViewport = true
	case err != nil:
		return fmt.Errorf("viewport: %w", err)
	}

	src := backend.Sources{}
	if !terminalViewport {
		src.Viewport = p.Viewport
		src.Interval = cfg.Poll
	}
	changes, closer, err := settings.Watch(settingsPath)
	if err != nil {
		logging.Error(fmt.Errorf("watch settings: %w", err))
		events.Settings.Error(settingsPath, err)
	} else {
		defer closer.Close()
		src.Settings = changes
	}
	if x, ok := p.(*pointer.X11); ok && cfg.Mode == ui.ModeResident {
		if d := x.Display(); d != nil {
			src.Hotkey = d
			src.HotkeyKey = current.HotkeySpec().X11Key()
		}
	}
	watcher := backend.NewWatcher(src)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Viewport:         viewport,
		Pointer:          p,
		Watcher:          watcher,
		Settings:         current,
		SettingsPath:     settingsPath,
		Width:            cfg.Width,
		Height:           cfg.Height,
		ShowFooter:       cfg.ShowFooter,
		Verbose:          cfg.Verbose,
		Mode:             cfg.Mode,
		TerminalViewport: terminalViewport,
		Context:          ctx,
	})
	events.App.Ready(cfg.Mode.String(), cfg.Pointer, viewport.Width, viewport.Height, terminalViewport)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	return model.Err()
}
