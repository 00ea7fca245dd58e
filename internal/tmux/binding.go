package tmux

import (
	"strings"
)

// PopupArgs returns the tmux arguments that open command in a borderless
// popup covering the whole client.
func PopupArgs(command []string) []string {
	return []string{"display-popup", "-E", "-B", "-w", "100%", "-h", "100%", shellJoin(command)}
}

// BindingArgs returns the bind-key arguments that open command in a popup
// whenever key is pressed, without the prefix.
func BindingArgs(key string, command []string) []string {
	return append([]string{"bind-key", "-n", key}, PopupArgs(command)...)
}

// InstallBinding registers the popup binding on the server.
func InstallBinding(socketPath, key string, command []string) error {
	return runCommand(socketPath, BindingArgs(key, command)...)
}

func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./=:@%+,", r)) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
