package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-blog/repositories"
)

// meta exposes the server-managed fields of a document.
type meta struct {
	id        *primitive.ObjectID
	createdAt *time.Time
	updatedAt *time.Time
}

// table is a goroutine-safe document map with the same ordering and
// not-found semantics as the mongo repositories.
type table[T any] struct {
	mu    sync.RWMutex
	docs  map[primitive.ObjectID]T
	meta  func(*T) meta
	clone func(T) T
	now   func() time.Time
}

func newTable[T any](metaFn func(*T) meta, cloneFn func(T) T) *table[T] {
	return &table[T]{
		docs:  make(map[primitive.ObjectID]T),
		meta:  metaFn,
		clone: cloneFn,
		now:   repositories.Now,
	}
}

func (t *table[T]) insert(ctx context.Context, doc *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := t.meta(doc)
	now := t.now()
	*m.id = primitive.NewObjectID()
	*m.createdAt = now
	*m.updatedAt = now

	t.mu.Lock()
	t.docs[*m.id] = t.clone(*doc)
	t.mu.Unlock()
	return nil
}

func (t *table[T]) list(ctx context.Context, match func(*T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.RLock()
	out := make([]T, 0, len(t.docs))
	for _, doc := range t.docs {
		if match(&doc) {
			out = append(out, t.clone(doc))
		}
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := t.meta(&out[i]), t.meta(&out[j])
		if !a.createdAt.Equal(*b.createdAt) {
			return a.createdAt.After(*b.createdAt)
		}
		return bytes.Compare(a.id[:], b.id[:]) > 0
	})
	return out, nil
}

func (t *table[T]) find(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	doc, ok := t.docs[id]
	t.mu.RUnlock()
	if !ok {
		return nil, repositories.ErrNotFound
	}
	doc = t.clone(doc)
	return &doc, nil
}

func (t *table[T]) replace(ctx context.Context, doc *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := t.meta(doc)

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.docs[*m.id]; !ok {
		return repositories.ErrNotFound
	}
	*m.updatedAt = t.now()
	t.docs[*m.id] = t.clone(*doc)
	return nil
}

func (t *table[T]) delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.docs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(t.docs, id)
	return nil
}

func (t *table[T]) count(ctx context.Context, match func(*T) bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	var n int64
	for _, doc := range t.docs {
		if match(&doc) {
			n++
		}
	}
	return n, nil
}
