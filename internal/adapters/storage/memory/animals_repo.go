package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-behavior-demo/internal/domain/animals"
)

var (
	ErrNotFound = animals.ErrNotFound
)

type animalRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Record
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]animals.Record),
	}
}

func (r *animalRepo) Create(ctx context.Context, rec animals.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *animalRepo) Update(ctx context.Context, rec animals.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[rec.ID]; !exists {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return animals.Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Record, 0, len(r.byID))
	for _, rec := range r.byID {
		out = append(out, rec)
	}

	// Orden estable por created_at asc; el id desempata.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
