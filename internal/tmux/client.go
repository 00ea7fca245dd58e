package tmux

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ClientLayout is the visible extent of the attached client plus the rows
// taken by the status line.
type ClientLayout struct {
	Size        Size
	StatusLines int
	StatusTop   bool
}

// WindowOffset returns the row where pane coordinates start.
func (l ClientLayout) WindowOffset() int {
	if l.StatusTop {
		return l.StatusLines
	}
	return 0
}

const clientLayoutFormat = "#{client_width}\t#{client_height}\t#{status}\t#{status-position}"

// FetchClientLayout reports the size of the client that launched the popup.
func FetchClientLayout(socketPath string) (ClientLayout, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return ClientLayout{}, err
	}
	defer client.Close()
	out, err := client.DisplayMessage(currentTarget(), clientLayoutFormat)
	if err != nil {
		return ClientLayout{}, fmt.Errorf("display-message: %w", err)
	}
	return parseClientLayout(out)
}

func parseClientLayout(raw string) (ClientLayout, error) {
	parts := strings.Split(strings.TrimSpace(raw), "\t")
	if len(parts) < 2 {
		return ClientLayout{}, fmt.Errorf("unexpected client layout %q", raw)
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ClientLayout{}, fmt.Errorf("client width %q: %w", parts[0], err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ClientLayout{}, fmt.Errorf("client height %q: %w", parts[1], err)
	}
	layout := ClientLayout{Size: Size{Width: width, Height: height}}
	if len(parts) > 2 {
		layout.StatusLines = statusLines(parts[2])
	}
	if len(parts) > 3 {
		layout.StatusTop = strings.TrimSpace(parts[3]) == "top"
	}
	return layout, nil
}

// statusLines decodes the status option: off, on, or a line count.
func statusLines(value string) int {
	switch v := strings.TrimSpace(value); v {
	case "", "off", "0":
		return 0
	case "on":
		return 1
	default:
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 1
		}
		return n
	}
}

func currentTarget() string {
	return strings.TrimSpace(os.Getenv("TMUX_PANE"))
}

func currentSessionName(client tmuxClient) string {
	if pane := currentTarget(); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	if clients, err := client.ListClients(); err == nil {
		for _, c := range clients {
			if c != nil && !c.ControlMode && c.Session != "" {
				return c.Session
			}
		}
	}
	return ""
}
