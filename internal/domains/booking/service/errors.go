package service

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"voyago/shared/constant"
	"voyago/shared/failure"
)

var (
	ErrPackageNotFound     = errors.New("travel package not found")
	ErrPackageUnavailable  = errors.New("this travel package is not available")
	ErrPackageEnded        = errors.New("this travel package has already ended")
	ErrPriorityConflict    = errors.New("a room is available, but the user at position #1 in the waiting list has priority")
	ErrNotificationExpired = errors.New("your notification has expired; please wait for the next available room")
	ErrConcurrencyConflict = errors.New("the room availability has changed, please try again")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrNotBookingOwner     = errors.New("this booking belongs to another user")
)

// InsufficientRoomsError is returned when the request asks for more rooms
// than the package has left.
type InsufficientRoomsError struct {
	Requested int
	Remaining int
}

func (e *InsufficientRoomsError) Error() string {
	return fmt.Sprintf("only %d room(s) available, you requested %d room(s)", e.Remaining, e.Requested)
}

// TooManyUpcomingError is returned when the user already holds the maximum
// number of paid bookings on packages that have not started.
type TooManyUpcomingError struct {
	Limit int
}

func (e *TooManyUpcomingError) Error() string {
	return fmt.Sprintf("you have reached the maximum limit of %d upcoming paid bookings", e.Limit)
}

// QueuePositionError is returned when a full package rejects a user who is
// queued behind the front of the waiting list.
type QueuePositionError struct {
	Position int
}

func (e *QueuePositionError) Error() string {
	return fmt.Sprintf("this package is full; you are position #%d in the waiting list", e.Position)
}

// ToFailure maps booking errors onto HTTP-coded failures for the transport
// layer. Unknown errors pass through untouched.
func ToFailure(err error) error {
	var insufficient *InsufficientRoomsError
	var tooMany *TooManyUpcomingError
	var queued *QueuePositionError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrPackageNotFound), errors.Is(err, ErrBookingNotFound):
		return failure.NotFound(err.Error())
	case errors.Is(err, ErrPackageUnavailable),
		errors.Is(err, ErrPackageEnded),
		errors.Is(err, ErrNotificationExpired):
		return failure.BadRequest(err)
	case errors.Is(err, ErrNotBookingOwner):
		return failure.Forbidden(err.Error())
	case errors.Is(err, ErrPriorityConflict), errors.Is(err, ErrConcurrencyConflict):
		return failure.Conflict(err.Error())
	case errors.As(err, &insufficient), errors.As(err, &tooMany), errors.As(err, &queued):
		return failure.Conflict(err.Error())
	default:
		return err
	}
}

// isRetryableTxError recognizes the serialization and deadlock failures that
// Postgres raises when concurrent bookings collide on a package row.
func isRetryableTxError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	code := string(pqErr.Code)

	return code == constant.PqErrorCodeSerializationFailure || code == constant.PqErrorCodeDeadlockDetected
}
