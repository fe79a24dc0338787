package ports

import (
	"context"

	"github.com/Skipper-116/devhub-backend/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Avatar         string
	Bio            string
	Skills         []string
	GithubUsername string
	Role           string // empty defaults to "user"
}

// AuthResult pairs a fresh session token with the account it identifies.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// UpdateProfileInput holds the mutable profile fields. Zero values mean
// "leave unchanged"; a nil Skills slice leaves skills unchanged.
type UpdateProfileInput struct {
	Name           string
	Email          string
	Avatar         string
	Bio            string
	Skills         []string
	GithubUsername string
}

// ProfileService covers the authenticated user's own account.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	// Delete voids the target account. actorID must be the target itself
	// or an admin; reason is required.
	Delete(ctx context.Context, actorID, targetID, reason string) error
}

// CreateProjectInput carries a new project's business fields.
type CreateProjectInput struct {
	Title       string
	Description string
	TechStack   []string
	GithubLink  string
	DemoLink    string
	Screenshots []string
	Category    string
}

// UpdateProjectInput follows the same only-if-present semantics as
// UpdateProfileInput.
type UpdateProjectInput struct {
	Title       string
	Description string
	TechStack   []string
	GithubLink  string
	DemoLink    string
	Screenshots []string
	Category    string
}

// ProjectPage is one page of project summaries plus the total count.
type ProjectPage struct {
	Projects []domain.Project
	Count    int64
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Liked bool // principal likes the project after the toggle
	Likes int  // resulting like count
}

// ProjectService covers project CRUD, likes and comments.
type ProjectService interface {
	Create(ctx context.Context, actorID string, input CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context, page, limit int64) (*ProjectPage, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, actorID, id string, input UpdateProjectInput) (*domain.Project, error)
	Void(ctx context.Context, actorID, id, reason string) error
	ToggleLike(ctx context.Context, actorID, id string) (*LikeResult, error)
	AddComment(ctx context.Context, actorID, projectID, content string) (int, error)
	RemoveComment(ctx context.Context, actorID, projectID, commentID, reason string) error
	Comments(ctx context.Context, projectID string) ([]domain.Comment, error)
}
