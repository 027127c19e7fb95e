package relation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateEdge       = errors.New("relation already exists")
	ErrNotFound            = errors.New("relation not found")
	ErrIntegrityViolation  = errors.New("relation integrity violation")
	ErrUnknownRelationType = errors.New("unknown relation type")
)

// RelationType tags an edge. The set is closed: new kinds are added here and
// in the relations_relation_type_check constraint, never created at runtime.
type RelationType string

const (
	Family       RelationType = "family"
	Acquaintance RelationType = "acquaintance"
	Colleague    RelationType = "colleague"
	Other        RelationType = "other"
)

var relationTypes = []RelationType{Family, Acquaintance, Colleague, Other}

// RelationTypes returns every known tag in declaration order.
func RelationTypes() []RelationType {
	out := make([]RelationType, len(relationTypes))
	copy(out, relationTypes)
	return out
}

func (t RelationType) Valid() bool {
	for _, known := range relationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseRelationType accepts a tag case-insensitively.
func ParseRelationType(s string) (RelationType, error) {
	t := RelationType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRelationType, s)
	}
	return t, nil
}

// Person is the summary record the graph reads from the person directory.
// Existence and lifecycle are owned by the caller.
type Person struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PersonalNumber string `json:"personal_number"`
}

// Edge is one undirected relation. Which id sits in PersonA and which in
// PersonB carries no meaning.
type Edge struct {
	ID      int64        `json:"id"`
	PersonA int64        `json:"person_a"`
	PersonB int64        `json:"person_b"`
	Type    RelationType `json:"relation_type"`
}

func (e Edge) Pair() Pair {
	return Normalize(e.PersonA, e.PersonB)
}

// Other returns the endpoint that is not personID. Edges that do not touch
// personID, or that join personID to itself, are integrity violations.
func (e Edge) Other(personID int64) (int64, error) {
	pair := e.Pair()
	switch {
	case pair.Degenerate():
		return 0, fmt.Errorf("%w: relation %d joins person %d to itself", ErrIntegrityViolation, e.ID, e.PersonA)
	case !pair.Contains(personID):
		return 0, fmt.Errorf("%w: relation %d does not involve person %d", ErrIntegrityViolation, e.ID, personID)
	case e.PersonA == personID:
		return e.PersonB, nil
	default:
		return e.PersonA, nil
	}
}

type Neighbor struct {
	PersonID   int64        `json:"person_id"`
	RelationID int64        `json:"relation_id"`
	Type       RelationType `json:"relation_type"`
}
