package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Skipper-116/devhub-backend/internal/core/domain"
)

const collectionProjects = "projects"

type ProjectRepository struct {
	store *voidableStore[domain.Project]
	col   *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	col := db.Collection(collectionProjects)
	return &ProjectRepository{
		store: newVoidableStore[domain.Project](col, domain.ErrProjectNotFound),
		col:   col,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	p.ID = NewID()
	return r.store.Insert(ctx, p)
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	return r.store.FindByID(ctx, id)
}

// List returns one page ordered by creation time, newest first, plus the
// total non-voided count.
func (r *ProjectRepository) List(ctx context.Context, skip, limit int64) ([]domain.Project, int64, error) {
	total, err := r.store.Count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	projects, err := r.store.Find(ctx, nil, opts)
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// UpdateFields persists the mutable business fields of p.
func (r *ProjectRepository) UpdateFields(ctx context.Context, p *domain.Project) error {
	return r.store.UpdateByID(ctx, p.ID, bson.M{"$set": bson.M{
		"title":       p.Title,
		"description": p.Description,
		"tech_stack":  p.TechStack,
		"github_link": p.GithubLink,
		"demo_link":   p.DemoLink,
		"screenshots": p.Screenshots,
		"category":    p.Category,
		"updated_at":  time.Now().UTC(),
	}})
}

// SetLikes replaces the likes set with the toggled version.
func (r *ProjectRepository) SetLikes(ctx context.Context, id string, likes []string) error {
	return r.store.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"likes":      likes,
		"updated_at": time.Now().UTC(),
	}})
}

// AppendComment appends commentID to the project's comment list. Comment
// ids are never removed from the list; voiding a comment hides the comment
// document instead.
func (r *ProjectRepository) AppendComment(ctx context.Context, id, commentID string) error {
	return r.store.UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"comments": commentID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *ProjectRepository) Void(ctx context.Context, id, reason, actorID string) error {
	return r.store.Void(ctx, id, reason, actorID)
}

// EnsureIndexes backs the list sort and the owner lookup.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
