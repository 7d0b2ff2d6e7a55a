package booking

import "time"

// Slot is the half-day booking granularity. The wire values "FM" (förmiddag,
// morning) and "EM" (eftermiddag, afternoon) are kept as the single canonical
// representation across all layers; start/end instants are always derived.
type Slot string

const (
	SlotMorning   Slot = "FM"
	SlotAfternoon Slot = "EM"
)

const (
	morningStartHour   = 8
	morningEndHour     = 12
	afternoonStartHour = 13
	afternoonEndHour   = 17
)

func (s Slot) String() string {
	return string(s)
}

func (s Slot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon:
		return true
	default:
		return false
	}
}

func NewSlot(v string) (Slot, error) {
	slot := Slot(v)
	if !slot.IsValid() {
		return "", ErrInvalidSlot
	}
	return slot, nil
}

// StartOn returns the instant the slot opens on the given date.
func (s Slot) StartOn(date Date, loc *time.Location) time.Time {
	if s == SlotMorning {
		return date.At(morningStartHour, loc)
	}
	return date.At(afternoonStartHour, loc)
}

// EndOn returns the instant the slot closes on the given date.
func (s Slot) EndOn(date Date, loc *time.Location) time.Time {
	if s == SlotMorning {
		return date.At(morningEndHour, loc)
	}
	return date.At(afternoonEndHour, loc)
}

type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCanceled:
		return true
	default:
		return false
	}
}
