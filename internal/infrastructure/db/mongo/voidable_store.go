package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// voidableStore is the single funnel every repository read and write goes
// through. It intersects each caller filter with {"voided": false} before
// anything else, so voided documents are invisible to every query shape and
// immutable to every update: an update against a voided document matches
// nothing and reports notFound. This replaces the per-call-site filtering a
// handler could forget.
//
// Documents use ObjectID hex strings as _id so domain types stay free of
// driver types.
type voidableStore[T any] struct {
	col *mongo.Collection
	// notFound is the entity's sentinel, e.g. domain.ErrProjectNotFound.
	notFound error
}

func newVoidableStore[T any](col *mongo.Collection, notFound error) *voidableStore[T] {
	return &voidableStore[T]{col: col, notFound: notFound}
}

// scope applies the visibility filter. Caller keys never override it
// because it is written last.
func scope(filter bson.M) bson.M {
	if filter == nil {
		filter = bson.M{}
	}
	filter["voided"] = false
	return filter
}

// NewID returns a fresh document id.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// Insert persists a new document. The document's Voidable zero value means
// a freshly created entity is never voided.
func (s *voidableStore[T]) Insert(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.col.InsertOne(ctx, doc)
	return err
}

func (s *voidableStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

func (s *voidableStore[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	err := s.col.FindOne(ctx, scope(filter)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.notFound
		}
		return nil, err
	}
	return &doc, nil
}

func (s *voidableStore[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := s.col.Find(ctx, scope(filter), opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *voidableStore[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return s.col.CountDocuments(ctx, scope(filter))
}

// UpdateByID applies update to a non-voided document. Updating a voided
// document reports notFound: the terminal-void invariant is enforced at
// write time, not only at read time.
func (s *voidableStore[T]) UpdateByID(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.UpdateOne(ctx, scope(bson.M{"_id": id}), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return s.notFound
	}
	return nil
}

// Void applies the terminal transition in one conditional write. The filter
// requires voided:false at write time, so of two racing voiders exactly one
// succeeds and the loser cannot overwrite the recorded audit fields.
func (s *voidableStore[T]) Void(ctx context.Context, id, reason, actorID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"voided":        true,
		"voided_reason": reason,
		"voided_at":     now,
		"voided_by":     actorID,
		"updated_at":    now,
	}}

	err := s.col.FindOneAndUpdate(ctx, scope(bson.M{"_id": id}), update).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return s.notFound
		}
		return err
	}
	return nil
}
