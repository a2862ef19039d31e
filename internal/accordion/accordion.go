// Package accordion tracks the expanded/collapsed state of a set of
// independently collapsible sections.
package accordion

import (
	"errors"
	"fmt"
)

// State is the display state of one section.
type State int

// Section states. The zero value is Collapsed.
const (
	Collapsed State = iota
	Expanded
)

func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// ErrUnknownSection is returned when an id does not name a section.
var ErrUnknownSection = errors.New("unknown section")

// Accordion holds one State per section. Sections toggle independently;
// any number may be expanded at once. An Accordion is owned by a single
// view and is not safe for concurrent use.
type Accordion struct {
	ids    []string
	states map[string]State
}

// New returns an accordion over ids with every section collapsed.
// Duplicate ids are ignored.
func New(ids ...string) *Accordion {
	a := &Accordion{states: make(map[string]State, len(ids))}
	for _, id := range ids {
		if _, dup := a.states[id]; dup {
			continue
		}
		a.ids = append(a.ids, id)
		a.states[id] = Collapsed
	}
	return a
}

// IDs returns the section ids in the order they were registered.
func (a *Accordion) IDs() []string {
	out := make([]string, len(a.ids))
	copy(out, a.ids)
	return out
}

// State returns the current state of a section.
func (a *Accordion) State(id string) (State, error) {
	s, ok := a.states[id]
	if !ok {
		return Collapsed, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	return s, nil
}

// IsExpanded reports whether the section is expanded. Unknown ids
// report false.
func (a *Accordion) IsExpanded(id string) bool {
	return a.states[id] == Expanded
}

// Toggle flips one section between collapsed and expanded and returns
// its new state. No other section changes.
func (a *Accordion) Toggle(id string) (State, error) {
	s, ok := a.states[id]
	if !ok {
		return Collapsed, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	if s == Collapsed {
		s = Expanded
	} else {
		s = Collapsed
	}
	a.states[id] = s
	return s, nil
}

// Expand sets a section to expanded regardless of its current state.
func (a *Accordion) Expand(id string) error {
	if _, ok := a.states[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	a.states[id] = Expanded
	return nil
}

// Expanded returns the ids of expanded sections in registration order.
func (a *Accordion) Expanded() []string {
	var out []string
	for _, id := range a.ids {
		if a.states[id] == Expanded {
			out = append(out, id)
		}
	}
	return out
}

// Set returns the expanded sections as a lookup set.
func (a *Accordion) Set() map[string]bool {
	set := make(map[string]bool, len(a.ids))
	for _, id := range a.Expanded() {
		set[id] = true
	}
	return set
}
