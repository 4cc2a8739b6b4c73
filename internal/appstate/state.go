// Package appstate holds the ephemeral UI state: current view,
// reference date, filters and preference mirrors. It is an explicit
// struct passed to whoever needs it, never a package-level singleton;
// setters notify registered listeners so dependent views recompute.
package appstate

import (
	"sync"
	"time"

	"github.com/mfalcone/calendario/internal/layout"
)

type State struct {
	mu          sync.Mutex
	currentDate time.Time
	view        layout.View
	selected    []int64
	search      string
	theme       string
	language    string

	seq       int
	listeners map[int]func()
}

func New(now time.Time) *State {
	return &State{
		currentDate: now,
		view:        layout.ViewMonth,
		theme:       "light",
		language:    "it",
		listeners:   make(map[int]func()),
	}
}

// OnChange registers a listener invoked after every state mutation.
// The returned cancel is idempotent.
func (s *State) OnChange(fn func()) (cancel func()) {
	s.mu.Lock()
	s.seq++
	id := s.seq
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *State) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *State) CurrentDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentDate
}

func (s *State) SetCurrentDate(t time.Time) {
	s.mu.Lock()
	s.currentDate = t
	s.mu.Unlock()
	s.notify()
}

func (s *State) View() layout.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *State) SetView(v layout.View) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
	s.notify()
}

// Prev steps the reference date back by one month, week or day
// according to the current view.
func (s *State) Prev() {
	s.step(-1)
}

// Next steps the reference date forward likewise.
func (s *State) Next() {
	s.step(1)
}

func (s *State) step(dir int) {
	s.mu.Lock()
	switch s.view {
	case layout.ViewMonth:
		s.currentDate = s.currentDate.AddDate(0, dir, 0)
	case layout.ViewWeek:
		s.currentDate = s.currentDate.AddDate(0, 0, 7*dir)
	case layout.ViewDay:
		s.currentDate = s.currentDate.AddDate(0, 0, dir)
	}
	s.mu.Unlock()
	s.notify()
}

// Today resets the reference date to now.
func (s *State) Today(now time.Time) {
	s.SetCurrentDate(now)
}

func (s *State) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

func (s *State) SetSearch(q string) {
	s.mu.Lock()
	s.search = q
	s.mu.Unlock()
	s.notify()
}

// SelectedEntities returns a copy of the active entity filter; empty
// means all entities.
func (s *State) SelectedEntities() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.selected))
	copy(out, s.selected)
	return out
}

func (s *State) SetSelectedEntities(ids []int64) {
	s.mu.Lock()
	s.selected = append([]int64(nil), ids...)
	s.mu.Unlock()
	s.notify()
}

// ToggleEntityFilter adds the entity to the filter set, or removes it
// when already present.
func (s *State) ToggleEntityFilter(id int64) {
	s.mu.Lock()
	found := false
	next := s.selected[:0]
	for _, v := range s.selected {
		if v == id {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, id)
	}
	s.selected = next
	s.mu.Unlock()
	s.notify()
}

func (s *State) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *State) SetTheme(theme string) {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	s.notify()
}

func (s *State) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *State) SetLanguage(lang string) {
	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()
	s.notify()
}
