package appointment

import (
	"errors"
	"strings"
)

var (
	ErrUnknownStatus     = errors.New("unknown appointment status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseStatus converts the external string form, case-insensitively.
// "SCHEDULED" and "UPCOMING" are legacy aliases of PENDING accepted on input
// but never emitted.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING", "SCHEDULED", "UPCOMING":
		return StatusPending, nil
	case "CONFIRMED":
		return StatusConfirmed, nil
	case "CANCELLED":
		return StatusCancelled, nil
	default:
		return "", ErrUnknownStatus
	}
}

// TransitionTo reports whether moving to target changes the appointment.
// Same-state requests are no-ops; a cancelled appointment is terminal;
// CONFIRMED never goes back to PENDING.
func (s Status) TransitionTo(target Status) (changed bool, err error) {
	if s == target {
		return false, nil
	}

	switch s {
	case StatusPending:
		return true, nil // PENDING -> CONFIRMED or CANCELLED
	case StatusConfirmed:
		if target == StatusCancelled {
			return true, nil
		}
		return false, ErrInvalidTransition // CONFIRMED -> PENDING rejected
	case StatusCancelled:
		return false, ErrInvalidTransition
	default:
		return false, ErrUnknownStatus
	}
}
