package pgx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/OFFIS-RIT/npdirectory/backend/pkg/db/migrations"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"

	"github.com/jackc/pgx/v5/pgxpool"
)

// These tests need a disposable PostgreSQL database in TEST_DATABASE_URL.

func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if err := migrations.Up(url); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// seedPersons commits n persons and removes them and their relations on cleanup.
func seedPersons(t *testing.T, pool *pgxpool.Pool, n int) []int64 {
	t.Helper()
	ctx := context.Background()
	ids := make([]int64, 0, n)
	stamp := time.Now().UnixNano()
	for i := range n {
		var id int64
		err := pool.QueryRow(ctx,
			`INSERT INTO natural_persons (first_name, last_name, personal_number) VALUES ($1, $2, $3) RETURNING id`,
			fmt.Sprintf("First%d", i), fmt.Sprintf("Last%d", i), fmt.Sprintf("%d-%d", stamp, i),
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed person: %v", err)
		}
		ids = append(ids, id)
	}
	t.Cleanup(func() {
		ctx := context.Background()
		_, _ = pool.Exec(ctx, `DELETE FROM relations WHERE person_a_id = ANY($1) OR person_b_id = ANY($1)`, ids)
		_, _ = pool.Exec(ctx, `DELETE FROM natural_persons WHERE id = ANY($1)`, ids)
	})
	return ids
}

func TestEdgeStore_CreateFindDeleteInTransaction(t *testing.T) {
	pool := openTestPool(t)
	ids := seedPersons(t, pool, 2)
	a, b := ids[0], ids[1]
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin: %v", err)
	}
	defer tx.Rollback(ctx)
	store := NewEdgeStore(tx)

	id, err := store.Create(ctx, a, b, relation.Family)
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	for _, order := range [][2]int64{{a, b}, {b, a}} {
		edge, err := store.FindByPair(ctx, order[0], order[1])
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if edge == nil || edge.ID != id {
			t.Fatalf("expected edge %d for %v, got %+v", id, order, edge)
		}
	}

	if _, err := store.Create(ctx, b, a, relation.Colleague); !errors.Is(err, relation.ErrDuplicateEdge) {
		t.Fatalf("expected ErrDuplicateEdge, got %v", err)
	}

	edges, err := store.ListForPerson(ctx, b)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(edges) != 1 || edges[0].ID != id {
		t.Fatalf("expected the staged edge to be visible, got %+v", edges)
	}

	if err := store.DeleteByPair(ctx, b, a); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if err := store.DeleteByPair(ctx, a, b); !errors.Is(err, relation.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	deleted, err := store.DeleteByID(ctx, id)
	if err != nil || deleted {
		t.Fatalf("expected (false, nil) for deleted id, got (%v, %v)", deleted, err)
	}
}

func TestEdgeStore_UnknownPersonIsIntegrityViolation(t *testing.T) {
	pool := openTestPool(t)
	ids := seedPersons(t, pool, 1)
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin: %v", err)
	}
	defer tx.Rollback(ctx)

	_, err = NewEdgeStore(tx).Create(ctx, ids[0], -1, relation.Other)
	if !errors.Is(err, relation.ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation, got %v", err)
	}
}

func TestEdgeStore_ConcurrentCreateSamePair(t *testing.T) {
	pool := openTestPool(t)
	ids := seedPersons(t, pool, 2)
	a, b := ids[0], ids[1]
	ctx := context.Background()

	tx1, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin: %v", err)
	}
	defer tx1.Rollback(ctx)
	tx2, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin: %v", err)
	}
	defer tx2.Rollback(ctx)

	if _, err := NewEdgeStore(tx1).Create(ctx, a, b, relation.Family); err != nil {
		t.Fatalf("expected first create to succeed, got %v", err)
	}

	// The second insert blocks on the unique index until tx1 commits.
	done := make(chan error, 1)
	go func() {
		_, err := NewEdgeStore(tx2).Create(ctx, b, a, relation.Acquaintance)
		done <- err
	}()

	time.Sleep(100 * time.Millisecond)
	if err := tx1.Commit(ctx); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	select {
	case err := <-done:
		if !errors.Is(err, relation.ErrDuplicateEdge) {
			t.Fatalf("expected ErrDuplicateEdge, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("second create did not finish")
	}
}

func TestRoster_ListAndLookup(t *testing.T) {
	pool := openTestPool(t)
	ids := seedPersons(t, pool, 3)
	ctx := context.Background()
	roster := NewRoster(pool)

	persons, err := roster.PersonsByID(ctx, []int64{ids[0], ids[2], -5})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(persons) != 2 {
		t.Fatalf("expected 2 persons, got %d", len(persons))
	}
	if persons[ids[2]].FirstName != "First2" {
		t.Fatalf("expected First2, got %q", persons[ids[2]].FirstName)
	}

	exists, err := roster.Exists(ctx, ids[1])
	if err != nil || !exists {
		t.Fatalf("expected person %d to exist, got (%v, %v)", ids[1], exists, err)
	}
}
