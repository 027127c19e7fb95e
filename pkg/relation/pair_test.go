package relation

import (
	"errors"
	"testing"
)

func TestNormalize_OrderIndependent(t *testing.T) {
	pairs := [][2]int64{{1, 2}, {2, 1}, {9, 5}, {-3, 7}, {42, 42}, {0, 1 << 40}}
	for _, p := range pairs {
		if Normalize(p[0], p[1]) != Normalize(p[1], p[0]) {
			t.Fatalf("expected normalize(%d,%d) == normalize(%d,%d)", p[0], p[1], p[1], p[0])
		}
		n := Normalize(p[0], p[1])
		if n.Low > n.High {
			t.Fatalf("expected low <= high, got %v", n)
		}
		if !n.Contains(p[0]) || !n.Contains(p[1]) {
			t.Fatalf("expected %v to contain both endpoints", n)
		}
	}
}

func TestPair_Degenerate(t *testing.T) {
	if !Normalize(4, 4).Degenerate() {
		t.Fatal("expected {4,4} to be degenerate")
	}
	if Normalize(4, 5).Degenerate() {
		t.Fatal("expected {4,5} not to be degenerate")
	}
}

func TestEdge_Other(t *testing.T) {
	edge := Edge{ID: 1, PersonA: 3, PersonB: 8, Type: Family}

	if other, err := edge.Other(3); err != nil || other != 8 {
		t.Fatalf("expected (8, nil), got (%d, %v)", other, err)
	}
	if other, err := edge.Other(8); err != nil || other != 3 {
		t.Fatalf("expected (3, nil), got (%d, %v)", other, err)
	}
	if _, err := edge.Other(5); !errors.Is(err, ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation for unrelated person, got %v", err)
	}

	self := Edge{ID: 2, PersonA: 3, PersonB: 3, Type: Family}
	if _, err := self.Other(3); !errors.Is(err, ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation for self relation, got %v", err)
	}
}

func TestParseRelationType(t *testing.T) {
	got, err := ParseRelationType(" Colleague ")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got != Colleague {
		t.Fatalf("expected colleague, got %q", got)
	}

	if _, err := ParseRelationType("enemy"); !errors.Is(err, ErrUnknownRelationType) {
		t.Fatalf("expected ErrUnknownRelationType, got %v", err)
	}
}

func TestRelationTypes_ReturnsCopy(t *testing.T) {
	types := RelationTypes()
	types[0] = "mutated"
	if RelationTypes()[0] != Family {
		t.Fatal("expected RelationTypes to return a copy")
	}
}

func TestCheckCreate(t *testing.T) {
	if err := CheckCreate(1, 1, Family); !errors.Is(err, ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation, got %v", err)
	}
	if err := CheckCreate(1, 2, RelationType("rival")); !errors.Is(err, ErrUnknownRelationType) {
		t.Fatalf("expected ErrUnknownRelationType, got %v", err)
	}
	if err := CheckCreate(1, 2, Other); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
