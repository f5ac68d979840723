package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type ToFirestoreFunc[T any] func(*T) map[string]interface{}
type FromFirestoreFunc[T any] func(map[string]interface{}) *T

type Collection[T any] struct {
	Ref           *firestore.CollectionRef
	ToFirestore   ToFirestoreFunc[T]
	FromFirestore FromFirestoreFunc[T]
}

func (c *Collection[T]) Doc(id string) *DocumentRef[T] {
	return &DocumentRef[T]{
		Ref:           c.Ref.Doc(id),
		ToFirestore:   c.ToFirestore,
		FromFirestore: c.FromFirestore,
	}
}

func (c *Collection[T]) NewDoc() *DocumentRef[T] {
	return &DocumentRef[T]{
		Ref:           c.Ref.NewDoc(),
		ToFirestore:   c.ToFirestore,
		FromFirestore: c.FromFirestore,
	}
}

// All drains the collection. Use Query for filtered reads.
func (c *Collection[T]) All(ctx context.Context) ([]*T, error) {
	return c.drain(ctx, c.Ref.Documents(ctx))
}

// Query drains an arbitrary firestore query built from this collection's Ref,
// decoding each document with the collection converter.
func (c *Collection[T]) Query(ctx context.Context, q firestore.Query) ([]*T, error) {
	return c.drain(ctx, q.Documents(ctx))
}

func (c *Collection[T]) drain(ctx context.Context, docs *firestore.DocumentIterator) ([]*T, error) {
	defer docs.Stop()

	var out []*T
	for {
		snap, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, c.FromFirestore(snap.Data()))
	}
	return out, nil
}

type DocumentRef[T any] struct {
	Ref           *firestore.DocumentRef
	ToFirestore   ToFirestoreFunc[T]
	FromFirestore FromFirestoreFunc[T]
}

func (d *DocumentRef[T]) ID() string {
	return d.Ref.ID
}

func (d *DocumentRef[T]) Get(ctx context.Context) (*T, error) {
	snap, err := d.Ref.Get(ctx)
	if err != nil {
		return nil, err
	}
	return d.FromFirestore(snap.Data()), nil
}

func (d *DocumentRef[T]) Set(ctx context.Context, data *T) error {
	m := d.ToFirestore(data)
	_, err := d.Ref.Set(ctx, m, firestore.MergeAll)
	return err
}

func (d *DocumentRef[T]) Update(ctx context.Context, updates map[string]interface{}) error {
	// Keys must match the Firestore snake_case fields. No converter here:
	// updates are usually partials.
	_, err := d.Ref.Set(ctx, updates, firestore.MergeAll)
	return err
}
