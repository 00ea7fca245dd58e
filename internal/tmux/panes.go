package tmux

import (
	"fmt"
	"strconv"
	"strings"
)

const paneGeometryFormat = "#{pane_id}\t#{pane_index}\t#{pane_left}\t#{pane_top}\t#{pane_width}\t#{pane_height}\t#{pane_active}\t#{window_zoomed_flag}"

// activeWindowFilter keeps panes of the visible window when no session is known.
const activeWindowFilter = "#{&&:#{window_active},#{session_attached}}"

// FetchPanes lists the panes of the current window with their geometry.
func FetchPanes(socketPath string) ([]Pane, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	target := currentSessionName(client)
	filter := ""
	if target == "" {
		filter = activeWindowFilter
	}
	lines, err := client.ListPanesFormat(target, filter, paneGeometryFormat)
	if err != nil {
		return nil, fmt.Errorf("list-panes: %w", err)
	}
	return parsePaneLines(lines), nil
}

func parsePaneLines(lines []string) []Pane {
	panes := make([]Pane, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 8 {
			continue
		}
		nums := make([]int, 5)
		ok := true
		for i := range nums {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i+1]))
			if err != nil {
				ok = false
				break
			}
			nums[i] = n
		}
		if !ok {
			continue
		}
		panes = append(panes, Pane{
			ID:     strings.TrimSpace(parts[0]),
			Index:  nums[0],
			Left:   nums[1],
			Top:    nums[2],
			Width:  nums[3],
			Height: nums[4],
			Active: strings.TrimSpace(parts[6]) == "1",
			Zoomed: strings.TrimSpace(parts[7]) == "1",
		})
	}
	return panes
}

// PaneAt returns the pane covering window cell (x, y).
func PaneAt(panes []Pane, x, y int) (Pane, bool) {
	for _, p := range panes {
		if p.Contains(x, y) {
			return p, true
		}
	}
	return Pane{}, false
}

// SelectPane makes target the active pane.
func SelectPane(socketPath, target string) error {
	return runCommand(socketPath, "select-pane", "-t", strings.TrimSpace(target))
}

// ToggleZoom zooms or unzooms target.
func ToggleZoom(socketPath, target string) error {
	return runCommand(socketPath, "resize-pane", "-Z", "-t", strings.TrimSpace(target))
}

func runCommand(socketPath string, parts ...string) error {
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	defer client.Close()
	if _, err := client.Command(parts...); err != nil {
		return fmt.Errorf("%s: %w", parts[0], err)
	}
	return nil
}
