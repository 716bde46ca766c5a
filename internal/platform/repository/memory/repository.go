package memory

import (
	"context"
	"sync"
)

// Keyed is anything stored under a unique string key.
type Keyed interface {
	Key() string
}

type Repository[T Keyed] struct {
	data map[string]T
	mu   sync.RWMutex
}

func New[T Keyed]() *Repository[T] {
	return &Repository[T]{
		data: make(map[string]T),
	}
}

func (r *Repository[T]) Save(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := item.Key()
	if _, exists := r.data[key]; exists {
		return ErrAlreadyExists
	}

	r.data[key] = item
	return nil
}

func (r *Repository[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.data[key]
	if !exists {
		return zero, ErrNotFound
	}
	return item, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.data), nil
}
