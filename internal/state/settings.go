package state

import "github.com/atomicstack/gridjump/internal/settings"

// SettingsStore keeps the last settings that loaded cleanly. A failed
// reload leaves them in place and records the error.
type SettingsStore interface {
	Current() settings.Settings
	Set(settings.Settings)
	Err() error
	SetErr(error)
}

type settingsStore struct {
	current settings.Settings
	err     error
}

func NewSettingsStore(initial settings.Settings) SettingsStore {
	return &settingsStore{current: initial}
}

func (s *settingsStore) Current() settings.Settings {
	return s.current
}

func (s *settingsStore) Set(next settings.Settings) {
	s.current = next
	s.err = nil
}

func (s *settingsStore) Err() error {
	return s.err
}

func (s *settingsStore) SetErr(err error) {
	s.err = err
}
