package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Skipper-116/devhub-backend/internal/core/domain"
)

const collectionComments = "comments"

type CommentRepository struct {
	store *voidableStore[domain.Comment]
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	col := db.Collection(collectionComments)
	return &CommentRepository{
		store: newVoidableStore[domain.Comment](col, domain.ErrCommentNotFound),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	c.ID = NewID()
	return r.store.Insert(ctx, c)
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	return r.store.FindByID(ctx, id)
}

// FindByIDs returns the non-voided comments among ids. Project comment
// lists may reference voided comments; those ids simply match nothing here.
func (r *CommentRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.store.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *CommentRepository) Void(ctx context.Context, id, reason, actorID string) error {
	return r.store.Void(ctx, id, reason, actorID)
}
