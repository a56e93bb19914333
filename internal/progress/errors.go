package progress

import (
	"errors"

	"github.com/pablasso/sectionbar/internal/section"
)

var (
	// ErrRange is returned when a progress value falls outside [0, 100].
	ErrRange = errors.New("percent must be between 0 and 100")

	// ErrOrderingViolation is returned when a structural edit targets a
	// section the live progress has already moved past.
	ErrOrderingViolation = section.ErrOrderingViolation

	// ErrEmptyStore is returned when selecting or removing with no sections.
	ErrEmptyStore = section.ErrEmptyStore
)
