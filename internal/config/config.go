package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/gridjump/internal/app"
	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/hotkey"
	"github.com/atomicstack/gridjump/internal/pointer"
	"github.com/atomicstack/gridjump/internal/ui"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

// HelpError carries the usage text when -h/--help is given.
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string {
	return "help requested"
}

const (
	envSocketPath   = "GRIDJUMP_SOCKET"
	envWidth        = "GRIDJUMP_WIDTH"
	envHeight       = "GRIDJUMP_HEIGHT"
	envShowFooter   = "GRIDJUMP_FOOTER"
	envVerbose      = "GRIDJUMP_VERBOSE"
	envTrace        = "GRIDJUMP_TRACE"
	envLogFile      = "GRIDJUMP_LOG_FILE"
	envSettingsPath = "GRIDJUMP_SETTINGS"
	envPointer      = "GRIDJUMP_POINTER"
	envMode         = "GRIDJUMP_MODE"
	envScreen       = "GRIDJUMP_SCREEN"
	envPoll         = "GRIDJUMP_POLL"
)

// bindingFromSettings is the --install-binding value used when the flag is
// given without a chord.
const bindingFromSettings = "settings"

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	out := new(strings.Builder)
	fs := pflag.NewFlagSet("gridjump", pflag.ContinueOnError)
	fs.SetOutput(out)

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "canvas width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "canvas height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the prefix and status row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show success messages in the footer")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	settingsPath := fs.String("settings", envOrDefault(env, envSettingsPath, ""), "path to settings.yaml (default: user config dir)")
	pointerKind := fs.String("pointer", envOrDefault(env, envPointer, pointer.KindTmux), "pointer backend: "+strings.Join(pointer.Kinds, ", "))
	mode := fs.String("mode", envOrDefault(env, envMode, ui.ModeOneShot.String()), "oneshot exits after one jump, resident stays running")
	screen := fs.String("screen", envOrDefault(env, envScreen, ""), "dry-run viewport as WIDTHxHEIGHT (default: terminal size)")
	poll := fs.Duration("poll", envOrDuration(env, envPoll, time.Second), "viewport poll interval (0 disables polling)")
	printCells := fs.Bool("print-cells", false, "print the cell table for the current settings and exit")
	install := fs.String("install-binding", "", "bind a tmux key (default: the settings hotkey) that opens gridjump in a popup, then exit")
	fs.Lookup("install-binding").NoOptDefVal = bindingFromSettings
	reset := fs.Bool("reset-settings", false, "restore default settings before starting")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, &HelpError{Usage: out.String()}
		}
		return Config{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return Config{}, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *poll < 0 {
		return Config{}, fmt.Errorf("poll must be >= 0 (got %s)", *poll)
	}
	screenSize, err := parseScreen(*screen)
	if err != nil {
		return Config{}, err
	}
	uiMode, ok := ui.ParseMode(strings.ToLower(strings.TrimSpace(*mode)))
	if !ok {
		return Config{}, fmt.Errorf("unknown mode %q (want oneshot or resident)", *mode)
	}
	binding := strings.TrimSpace(*install)
	if binding != "" && binding != bindingFromSettings {
		if _, err := hotkey.Parse(binding); err != nil {
			return Config{}, fmt.Errorf("install-binding: %w", err)
		}
	}

	cfg := Config{
		App: app.Config{
			SocketPath:     *socket,
			Width:          *width,
			Height:         *height,
			ShowFooter:     *footer,
			Verbose:        *verbose,
			SettingsPath:   *settingsPath,
			Pointer:        strings.ToLower(strings.TrimSpace(*pointerKind)),
			Mode:           uiMode,
			Screen:         screenSize,
			Poll:           *poll,
			PrintCells:     *printCells,
			InstallBinding: fs.Changed("install-binding"),
			BindingChord:   bindingChord(binding),
			ResetSettings:  *reset,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"socket":         *socket,
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"footer":         strconv.FormatBool(*footer),
			"trace":          strconv.FormatBool(*trace),
			"verbose":        strconv.FormatBool(*verbose),
			"logFile":        *logFile,
			"settings":       *settingsPath,
			"pointer":        *pointerKind,
			"mode":           uiMode.String(),
			"screen":         *screen,
			"poll":           poll.String(),
			"printCells":     strconv.FormatBool(*printCells),
			"installBinding": binding,
			"resetSettings":  strconv.FormatBool(*reset),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func bindingChord(value string) string {
	if value == bindingFromSettings {
		return ""
	}
	return value
}

// parseScreen reads WIDTHxHEIGHT. An empty value means unset.
func parseScreen(value string) (grid.Size, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return grid.Size{}, nil
	}
	parts := strings.Split(strings.ToLower(value), "x")
	if len(parts) != 2 {
		return grid.Size{}, fmt.Errorf("screen must be WIDTHxHEIGHT (got %q)", value)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return grid.Size{}, fmt.Errorf("screen must be WIDTHxHEIGHT with positive numbers (got %q)", value)
	}
	return grid.Size{Width: w, Height: h}, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	known := false
	for _, kind := range pointer.Kinds {
		if cfg.App.Pointer == kind {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown pointer backend %q (want one of %s)", cfg.App.Pointer, strings.Join(pointer.Kinds, ", "))
	}
	if cfg.App.InstallBinding && cfg.App.Pointer != pointer.KindTmux {
		return errors.New("install-binding requires the tmux pointer backend")
	}
	return nil
}
