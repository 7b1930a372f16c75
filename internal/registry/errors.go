package registry

import (
	"errors"
	"fmt"

	"github.com/erazemk/medsupply/internal/model"
)

// Collections named in NotFoundError.
const (
	CollectionInventory = "inventory item"
	CollectionVehicles  = "vehicle"
	CollectionRequests  = "approval request"
	CollectionStaff     = "staff member"
)

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState matches every *InvalidStateError.
	ErrInvalidState = errors.New("invalid state")
)

// NotFoundError reports an operation that referenced a missing entity.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Collection, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(collection, id string) error {
	return &NotFoundError{Collection: collection, ID: id}
}

// InvalidStateError reports an approval transition attempted out of order.
type InvalidStateError struct {
	RequestID string
	Status    model.RequestStatus
	Want      model.RequestStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("approval request %s is %q, must be %q", e.RequestID, e.Status, e.Want)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}
