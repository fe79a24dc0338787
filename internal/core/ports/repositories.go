package ports

import (
	"context"

	"github.com/Skipper-116/devhub-backend/internal/core/domain"
)

// Every repository read goes through the store-level visibility filter:
// voided documents are invisible to all of these methods, and updates match
// nothing once a document is voided. Void writes are conditioned on the
// document still being non-voided at write time, so concurrent voiders
// cannot overwrite each other's audit fields.

// UserRepository persists accounts.
type UserRepository interface {
	// Create assigns the user's id. A duplicate email yields
	// domain.ErrUserExists.
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateProfile persists the mutable profile fields of u.
	UpdateProfile(ctx context.Context, u *domain.User) error
	Void(ctx context.Context, id, reason, actorID string) error
}

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns one page of projects plus the total non-voided count.
	// skip/limit follow the caller's pagination.
	List(ctx context.Context, skip, limit int64) ([]domain.Project, int64, error)
	// UpdateFields persists the mutable business fields of p.
	UpdateFields(ctx context.Context, p *domain.Project) error
	// SetLikes replaces the likes set.
	SetLikes(ctx context.Context, id string, likes []string) error
	// AppendComment appends commentID to the project's comment list.
	AppendComment(ctx context.Context, id, commentID string) error
	Void(ctx context.Context, id, reason, actorID string) error
}

// CommentRepository persists project comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// FindByIDs returns the non-voided comments among ids, preserving no
	// particular order. Dangling ids are silently skipped.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Comment, error)
	Void(ctx context.Context, id, reason, actorID string) error
}

// ProjectCache is a read-through cache for single-project lookups. A miss
// is (nil, nil); cache failures are soft and must never fail the request.
type ProjectCache interface {
	Get(ctx context.Context, id string) (*domain.Project, error)
	Set(ctx context.Context, p *domain.Project) error
	Invalidate(ctx context.Context, id string) error
}
