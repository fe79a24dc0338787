package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Skipper-116/devhub-backend/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	store *voidableStore[domain.User]
	col   *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	col := db.Collection(collectionUsers)
	return &UserRepository{
		store: newVoidableStore[domain.User](col, domain.ErrUserNotFound),
		col:   col,
	}
}

// Create inserts a new account. The unique email index turns a duplicate
// into domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.ID = NewID()
	if err := r.store.Insert(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.store.FindByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.store.FindOne(ctx, bson.M{"email": email})
}

// UpdateProfile persists the mutable profile fields of u.
func (r *UserRepository) UpdateProfile(ctx context.Context, u *domain.User) error {
	return r.store.UpdateByID(ctx, u.ID, bson.M{"$set": bson.M{
		"name":            u.Name,
		"email":           u.Email,
		"avatar":          u.Avatar,
		"bio":             u.Bio,
		"skills":          u.Skills,
		"github_username": u.GithubUsername,
		"updated_at":      time.Now().UTC(),
	}})
}

func (r *UserRepository) Void(ctx context.Context, id, reason, actorID string) error {
	return r.store.Void(ctx, id, reason, actorID)
}

// EnsureIndexes creates the unique email index backing duplicate detection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
