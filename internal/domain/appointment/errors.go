package appointment

import (
	"errors"
	"fmt"

	"github.com/BruksfildServices01/showroom-scheduler/internal/httperr"
)

var (
	ErrUnauthenticated   = httperr.ErrBusiness("unauthenticated")
	ErrForbidden         = httperr.ErrBusiness("forbidden")
	ErrNotFound          = httperr.ErrBusiness("appointment_not_found")
	ErrInvalidTransition = httperr.ErrBusiness("invalid_state")
	ErrSlotTaken         = httperr.ErrBusiness("slot_taken")
)

type StoreErrorKind string

const (
	StoreRead  StoreErrorKind = "read"
	StoreWrite StoreErrorKind = "write"
)

// StoreError is a failure of the appointment store, covering connectivity
// and constraint violations alike.
type StoreError struct {
	Kind StoreErrorKind
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func ReadError(op string, err error) error {
	return &StoreError{Kind: StoreRead, Op: op, Err: err}
}

func WriteError(op string, err error) error {
	return &StoreError{Kind: StoreWrite, Op: op, Err: err}
}

func IsStoreError(err error, kind StoreErrorKind) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}
