// Package section holds the ordered, contiguous list of committed sections.
package section

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStore is returned when an operation needs a last section and there is none.
	ErrEmptyStore = errors.New("no sections")
	// ErrOrderingViolation is returned when a new section would end before it starts.
	ErrOrderingViolation = errors.New("section ordering violation")
)

// Section is one committed segment of the track, in percent.
// Start and End never change after creation; only Selected does.
type Section struct {
	Start    float64
	End      float64
	Selected bool
}

// Width returns End - Start.
func (s Section) Width() float64 {
	return s.End - s.Start
}

func (s Section) String() string {
	mark := ""
	if s.Selected {
		mark = "*"
	}
	return fmt.Sprintf("[%g, %g)%s", s.Start, s.End, mark)
}

// Store is an append/remove-from-tail list of sections. The zero value is
// an empty store. It is not safe for concurrent use.
type Store struct {
	sections []Section
}

// Append closes a new section at end, starting where the last one ended (or
// at 0). It returns false without changing anything when the new section
// would have zero width. Appending deselects any selected section.
func (s *Store) Append(end float64) (Section, bool, error) {
	start := 0.0
	if last, ok := s.Last(); ok {
		start = last.End
	}
	if start == end {
		return Section{}, false, nil
	}
	if !(end > start) {
		return Section{}, false, fmt.Errorf("%w: split at %g is before last section end %g", ErrOrderingViolation, end, start)
	}

	s.Deselect()
	sec := Section{Start: start, End: end}
	s.sections = append(s.sections, sec)
	return sec, true, nil
}

// RemoveLast pops the last section.
func (s *Store) RemoveLast() (Section, error) {
	if len(s.sections) == 0 {
		return Section{}, ErrEmptyStore
	}
	last := s.sections[len(s.sections)-1]
	s.sections = s.sections[:len(s.sections)-1]
	return last, nil
}

// Last returns the most recently appended section.
func (s *Store) Last() (Section, bool) {
	if len(s.sections) == 0 {
		return Section{}, false
	}
	return s.sections[len(s.sections)-1], true
}

// SelectLast marks the last section selected and returns its previous flag.
func (s *Store) SelectLast() (bool, error) {
	if len(s.sections) == 0 {
		return false, ErrEmptyStore
	}
	last := &s.sections[len(s.sections)-1]
	prev := last.Selected
	last.Selected = true
	return prev, nil
}

// Deselect clears the selection. It reports whether anything was selected.
// Only the last section can ever be selected.
func (s *Store) Deselect() bool {
	if len(s.sections) == 0 {
		return false
	}
	last := &s.sections[len(s.sections)-1]
	was := last.Selected
	last.Selected = false
	return was
}

// Selected returns the selected section, if any.
func (s *Store) Selected() (Section, bool) {
	last, ok := s.Last()
	if !ok || !last.Selected {
		return Section{}, false
	}
	return last, true
}

// Len returns the number of sections.
func (s *Store) Len() int {
	return len(s.sections)
}

// Sections returns a copy of the sections in track order.
func (s *Store) Sections() []Section {
	out := make([]Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Clear drops all sections.
func (s *Store) Clear() {
	s.sections = nil
}

// Validate checks that the sections partition a prefix of [0, 100].
func (s *Store) Validate() error {
	return Validate(s.sections)
}

// Validate checks contiguity, ordering, bounds, and single selection on a
// section list.
func Validate(sections []Section) error {
	for i, sec := range sections {
		if !(sec.Start >= 0 && sec.End <= 100) {
			return fmt.Errorf("section %d %s out of [0, 100]", i, sec)
		}
		if !(sec.End > sec.Start) {
			return fmt.Errorf("section %d %s has non-positive width", i, sec)
		}
		if i == 0 && sec.Start != 0 {
			return fmt.Errorf("first section %s does not start at 0", sec)
		}
		if i > 0 && sections[i-1].End != sec.Start {
			return fmt.Errorf("section %d %s is not contiguous with %s", i, sec, sections[i-1])
		}
		if sec.Selected && i != len(sections)-1 {
			return fmt.Errorf("section %d %s is selected but not last", i, sec)
		}
	}
	return nil
}
