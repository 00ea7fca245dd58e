// Package ui contains the Bubble Tea program that paints the label grid and
// feeds keystrokes to the overlay machine.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function.
//   - Key presses become overlay events (internal/ui/input.go). Every event
//     goes through Model.apply, the only caller of Machine.Handle, so the
//     machine sees one event at a time.
//   - Effects returned by the machine are split: show, hide and render only
//     change what View draws, while pointer moves and clicks run through the
//     command bus (internal/ui/command) as one ordered tea.Cmd.
//
// Backend interactions:
//   - A backend.Watcher streams viewport polls, settings reloads and global
//     hotkey presses. The dispatcher keeps the last good viewport and
//     settings in internal/state and converts changes into resize, configure
//     and hotkey events.
//
// Rendering:
//   - Cell rectangles live in the pointer backend's viewport units and are
//     scaled onto the terminal canvas. The click prompt is placed with the
//     same rules as the pixel overlay, in terminal cells.
package ui
