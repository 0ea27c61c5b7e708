// Package domain contains the core business entities and rules for the travel
// planning system. These entities are inventory-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the planning core.
var (
	// ErrInvalidRequest indicates that a request failed validation and was
	// rejected before any inventory search was attempted.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrItineraryNotFound indicates that no saved itinerary exists for the
	// requested ID. It is a distinct outcome, not an empty result: callers can
	// tell "itinerary has no legs" apart from "itinerary does not exist".
	ErrItineraryNotFound = errors.New("itinerary not found")

	// ErrInventoryUnavailable indicates that an inventory backend could not be
	// reached at all. Inside a search fan-out this is treated as absence for
	// the failing unit of work and never aborts the batch.
	ErrInventoryUnavailable = errors.New("inventory unavailable")
)

// InventoryError wraps an error from a flight or hotel inventory backend with
// the name of the backend that produced it.
type InventoryError struct {
	Inventory string
	Err       error
}

// Error implements the error interface.
func (e *InventoryError) Error() string {
	return fmt.Sprintf("inventory %s: %v", e.Inventory, e.Err)
}

// Unwrap returns the underlying error.
func (e *InventoryError) Unwrap() error { return e.Err }

// NewInventoryError creates an InventoryError for the named backend.
func NewInventoryError(inventory string, err error) *InventoryError {
	return &InventoryError{Inventory: inventory, Err: err}
}
