package service

import (
	"errors"

	"voyago/shared/failure"
)

var (
	ErrPackageNotFound     = errors.New("travel package not found")
	ErrAlreadyInQueue      = errors.New("you are already on the waiting list for this package")
	ErrRoomsStillAvailable = errors.New("rooms are still available for this package; you can book directly")
	ErrNotInQueue          = errors.New("you are not on the waiting list for this package")
)

// ToFailure maps waiting list errors onto HTTP-coded failures. Unknown
// errors pass through untouched.
func ToFailure(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrPackageNotFound), errors.Is(err, ErrNotInQueue):
		return failure.NotFound(err.Error())
	case errors.Is(err, ErrAlreadyInQueue):
		return failure.Conflict(err.Error())
	case errors.Is(err, ErrRoomsStillAvailable):
		return failure.BadRequest(err)
	default:
		return err
	}
}
