package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNextID      = errors.New("get next id from generator")
	ErrNotFound    = errors.New("booking not found")
	ErrPersistence = errors.New("ledger snapshot not persisted")
)

// AvailabilityError reports a requested stay that conflicts with an
// existing booking.
type AvailabilityError struct {
	roomID string
	from   time.Time
	to     time.Time
}

func NewAvailabilityError(roomID string, from, to time.Time) *AvailabilityError {
	return &AvailabilityError{roomID: roomID, from: from, to: to}
}

func IsAvailabilityError(err error) *AvailabilityError {
	if err == nil {
		return nil
	}

	var availabilityError *AvailabilityError

	if errors.As(err, &availabilityError) {
		return availabilityError
	}

	return nil
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf(
		"room '%v' is unavailable from %v to %v",
		e.roomID,
		e.from.Format(time.DateOnly),
		e.to.Format(time.DateOnly),
	)
}

func (e *AvailabilityError) RoomID() string {
	return e.roomID
}

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}
