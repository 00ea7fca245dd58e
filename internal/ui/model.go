package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/gridjump/internal/backend"
	"github.com/atomicstack/gridjump/internal/data/dispatcher"
	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/logging/events"
	"github.com/atomicstack/gridjump/internal/overlay"
	"github.com/atomicstack/gridjump/internal/pointer"
	"github.com/atomicstack/gridjump/internal/settings"
	"github.com/atomicstack/gridjump/internal/state"
	"github.com/atomicstack/gridjump/internal/theme"
	"github.com/atomicstack/gridjump/internal/ui/command"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects what hiding the grid does.
type Mode int

const (
	// ModeOneShot shows the grid at start and exits once it is hidden.
	ModeOneShot Mode = iota
	// ModeResident keeps running idle between toggles.
	ModeResident
)

// ParseMode maps a --mode value onto a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "oneshot", "one-shot":
		return ModeOneShot, true
	case "resident":
		return ModeResident, true
	default:
		return ModeOneShot, false
	}
}

func (m Mode) String() string {
	if m == ModeResident {
		return "resident"
	}
	return "oneshot"
}

const pointerTimeout = 5 * time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures NewModel.
type Options struct {
	// Machine defaults to one built from Settings and Viewport.
	Machine  *overlay.Machine
	Viewport grid.Size
	Pointer  pointer.Pointer
	Watcher  *backend.Watcher
	Settings settings.Settings
	// SettingsPath is only used for tracing reloads.
	SettingsPath string

	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Mode       Mode
	// TerminalViewport makes the terminal canvas the viewport, for pointer
	// backends that cannot report one.
	TerminalViewport bool
	Context          context.Context
}

// Model implements the Bubble Tea model for the grid overlay.
type Model struct {
	machine *overlay.Machine
	pointer pointer.Pointer
	bus     *command.Bus
	ctx     context.Context

	errMsg      string
	lastErr     error
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string
	dispatcher     *dispatcher.Dispatcher
	viewport       state.ViewportStore
	settings       state.SettingsStore
	settingsPath   string

	showFooter       bool
	verbose          bool
	mode             Mode
	terminalViewport bool
	quitting         bool

	cellColor     theme.RGBA
	hotkeyLabel   string
	hotkeyTea     string
	prefixCursor  cursor.Model
	prefixChanged bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the overlay machine to the pointer backend and optional
// watcher. In one-shot mode the grid is shown immediately.
func NewModel(opts Options) *Model {
	machine := opts.Machine
	if machine == nil {
		machine = overlay.New(opts.Settings.AlphabetValue(), opts.Settings.PoolSize, opts.Viewport)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	viewport := state.NewViewportStore(machine.Viewport())
	store := state.NewSettingsStore(opts.Settings)
	m := &Model{
		machine:          machine,
		pointer:          opts.Pointer,
		bus:              command.New(),
		ctx:              ctx,
		backend:          opts.Watcher,
		backendState:     map[backend.Kind]error{},
		dispatcher:       dispatcher.New(viewport, store),
		viewport:         viewport,
		settings:         store,
		settingsPath:     opts.SettingsPath,
		showFooter:       opts.ShowFooter,
		verbose:          opts.Verbose,
		mode:             opts.Mode,
		terminalViewport: opts.TerminalViewport,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.applySettings(opts.Settings)
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Prefix != nil {
		c.TextStyle = styles.Prefix.Copy()
	}
	c.SetChar(" ")
	m.prefixCursor = c
	m.registerHandlers()
	if m.terminalViewport {
		m.syncTerminalViewport()
	}
	if m.mode == ModeOneShot {
		m.apply(overlay.EventHotkey{})
	}
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.prefixCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updatePrefixCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(pointerResultMsg{}):  m.handlePointerResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.prefixChanged {
		m.prefixChanged = false
		m.prefixCursor.Blink = false
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// apply feeds ev to the machine and turns the resulting effects into
// commands. It is the only place the machine is mutated.
func (m *Model) apply(ev overlay.Event) tea.Cmd {
	from := m.machine.State()
	typed := m.machine.Typed()
	effects := m.machine.Handle(ev)
	names := make([]string, len(effects))
	for i, eff := range effects {
		names[i] = eff.String()
	}
	events.Overlay.Transition(overlay.EventName(ev), from.String(), m.machine.State().String(), names)
	switch ev.(type) {
	case overlay.EventConfigure, overlay.EventResize:
		if _, ok := ev.(overlay.EventConfigure); ok {
			events.Grid.Generate(m.machine.Alphabet().String(), m.machine.PoolSize(), len(m.machine.Cells()))
		}
		vp := m.machine.Viewport()
		events.Grid.Layout(vp.Width, vp.Height, m.machine.PoolSize())
	}
	if now := m.machine.Typed(); now != typed {
		m.prefixChanged = true
		events.Overlay.Prefix(now, len(m.machine.Filtered()))
	}
	return m.perform(effects)
}

func (m *Model) perform(effects []overlay.Effect) tea.Cmd {
	var pointerEffects []overlay.Effect
	hidden := false
	for _, eff := range effects {
		switch e := eff.(type) {
		case overlay.EffectShow:
			m.errMsg = ""
			m.forceClearInfo()
		case overlay.EffectHide:
			hidden = true
		case overlay.EffectRender:
			m.clearInfo()
		case overlay.EffectMovePointer:
			if cell, ok := m.machine.Resolved(); ok {
				events.Overlay.Resolved(cell.Label, e.Point.X, e.Point.Y)
			}
			pointerEffects = append(pointerEffects, eff)
		case overlay.EffectClick:
			pointerEffects = append(pointerEffects, eff)
		}
	}
	quit := hidden && m.mode == ModeOneShot
	if len(pointerEffects) == 0 {
		if quit {
			return m.quit("hidden")
		}
		return nil
	}
	return m.pointerCmd(pointerEffects, quit)
}

func (m *Model) quit(reason string) tea.Cmd {
	m.quitting = true
	events.App.Exit(reason)
	return tea.Quit
}

func (m *Model) applySettings(s settings.Settings) {
	m.cellColor = s.Color()
	spec := s.HotkeySpec()
	m.hotkeyLabel = spec.Describe()
	m.hotkeyTea = ""
	if key, err := spec.TeaString(); err == nil {
		m.hotkeyTea = key
	}
}

// Machine exposes the overlay machine, mainly for tests.
func (m *Model) Machine() *overlay.Machine {
	return m.machine
}

// Err returns the last pointer failure, if any.
func (m *Model) Err() error {
	return m.lastErr
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}
