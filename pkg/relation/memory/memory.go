// Package memory provides an in-process EdgeStore and Roster. The pair index
// plays the role of the unique constraint on the canonical pair, so concurrent
// creates for the same two persons cannot both succeed.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"
)

type Store struct {
	mu     sync.RWMutex
	nextID int64
	edges  map[int64]relation.Edge
	byPair map[relation.Pair]int64
	order  []int64
}

func NewStore() *Store {
	return &Store{
		edges:  make(map[int64]relation.Edge),
		byPair: make(map[relation.Pair]int64),
	}
}

func (s *Store) Create(ctx context.Context, personA, personB int64, t relation.RelationType) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := relation.CheckCreate(personA, personB, t); err != nil {
		return 0, err
	}

	pair := relation.Normalize(personA, personB)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byPair[pair]; ok {
		return 0, fmt.Errorf("%w: relation %d already joins %s", relation.ErrDuplicateEdge, existing, pair)
	}

	s.nextID++
	id := s.nextID
	s.edges[id] = relation.Edge{ID: id, PersonA: personA, PersonB: personB, Type: t}
	s.byPair[pair] = id
	s.order = append(s.order, id)
	return id, nil
}

func (s *Store) FindByPair(ctx context.Context, x, y int64) (*relation.Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byPair[relation.Normalize(x, y)]
	if !ok {
		return nil, nil
	}
	edge := s.edges[id]
	return &edge, nil
}

func (s *Store) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	edge, ok := s.edges[id]
	if !ok {
		return false, nil
	}
	delete(s.edges, id)
	if idx := slices.Index(s.order, id); idx >= 0 {
		s.order = slices.Delete(s.order, idx, idx+1)
	}
	s.unindex(edge.Pair(), id)
	return true, nil
}

func (s *Store) DeleteByPair(ctx context.Context, x, y int64) error {
	return relation.DeleteByPair(ctx, s, x, y)
}

func (s *Store) ListAll(ctx context.Context) ([]relation.Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]relation.Edge, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.edges[id])
	}
	return out, nil
}

func (s *Store) ListForPerson(ctx context.Context, personID int64) ([]relation.Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]relation.Edge, 0)
	for _, id := range s.order {
		edge := s.edges[id]
		if edge.PersonA == personID || edge.PersonB == personID {
			out = append(out, edge)
		}
	}
	return out, nil
}

// Insert stores edge as given, bypassing every check. It exists to load rows
// that a real database could already contain, such as legacy self relations.
func (s *Store) Insert(edge relation.Edge) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if edge.ID > s.nextID {
		s.nextID = edge.ID
	}
	previous, ok := s.edges[edge.ID]
	if !ok {
		s.order = append(s.order, edge.ID)
	}
	s.edges[edge.ID] = edge
	if ok && previous.Pair() != edge.Pair() {
		s.unindex(previous.Pair(), edge.ID)
	}
	if _, taken := s.byPair[edge.Pair()]; !taken {
		s.byPair[edge.Pair()] = edge.ID
	}
}

// unindex removes id as the index entry for pair. Legacy rows may share a
// pair, so the entry moves to the oldest remaining edge joining it.
func (s *Store) unindex(pair relation.Pair, id int64) {
	if s.byPair[pair] != id {
		return
	}
	delete(s.byPair, pair)
	for _, other := range s.order {
		if other != id && s.edges[other].Pair() == pair {
			s.byPair[pair] = other
			return
		}
	}
}

// Roster is a fixed list of persons.
type Roster []relation.Person

func (r Roster) ListPersons(ctx context.Context) ([]relation.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r), nil
}
