package relation

import (
	"context"
	"fmt"
)

// EdgeStore persists relation rows. Implementations stage mutations inside the
// caller's unit of work; nothing is durable until the caller commits.
//
// Create does not check that personA and personB exist or differ. Callers
// validate both ids first; a self relation that slips through is rejected with
// ErrIntegrityViolation.
type EdgeStore interface {
	// Create stores a new edge and returns its id, or ErrDuplicateEdge when
	// the unordered pair already has one.
	Create(ctx context.Context, personA, personB int64, t RelationType) (int64, error)
	// FindByPair returns the edge between x and y in either order, or nil.
	FindByPair(ctx context.Context, x, y int64) (*Edge, error)
	// DeleteByID reports whether a row was removed. A missing id is not an error.
	DeleteByID(ctx context.Context, id int64) (bool, error)
	// DeleteByPair removes the edge between x and y or returns ErrNotFound.
	DeleteByPair(ctx context.Context, x, y int64) error
	ListAll(ctx context.Context) ([]Edge, error)
	ListForPerson(ctx context.Context, personID int64) ([]Edge, error)
}

// Roster lists the persons a report is generated against.
type Roster interface {
	ListPersons(ctx context.Context) ([]Person, error)
}

// CheckCreate runs the argument checks every EdgeStore applies before touching
// storage.
func CheckCreate(personA, personB int64, t RelationType) error {
	if personA == personB {
		return fmt.Errorf("%w: person %d cannot relate to itself", ErrIntegrityViolation, personA)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRelationType, t)
	}
	return nil
}

// DeleteByPair resolves the edge between x and y and removes it by id. Store
// implementations delegate their DeleteByPair here so the lookup and the
// NotFound contract stay identical across backends.
func DeleteByPair(ctx context.Context, store EdgeStore, x, y int64) error {
	edge, err := store.FindByPair(ctx, x, y)
	if err != nil {
		return err
	}
	if edge == nil {
		return fmt.Errorf("%w: between %d and %d", ErrNotFound, x, y)
	}
	deleted, err := store.DeleteByID(ctx, edge.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: relation %d", ErrNotFound, edge.ID)
	}
	return nil
}
