package routes

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"
)

func TestRelationErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: {1,2}", relation.ErrDuplicateEdge), http.StatusConflict},
		{fmt.Errorf("%w: between 1 and 2", relation.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: \"enemy\"", relation.ErrUnknownRelationType), http.StatusBadRequest},
		{fmt.Errorf("%w: self relation", relation.ErrIntegrityViolation), http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		status, message := relationErrorStatus(tc.err)
		if status != tc.status {
			t.Fatalf("expected %d for %v, got %d", tc.status, tc.err, status)
		}
		if message == "" {
			t.Fatalf("expected a message for %v", tc.err)
		}
	}
}

func TestRelationErrorStatus_HidesInternalCause(t *testing.T) {
	_, message := relationErrorStatus(errors.New("password authentication failed for user"))
	if message != "Internal server error" {
		t.Fatalf("expected generic message, got %q", message)
	}
}
