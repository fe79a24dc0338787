package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Skipper-116/devhub-backend/internal/core/domain"
	"github.com/Skipper-116/devhub-backend/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ProjectService implements project CRUD, the like toggle and comments.
// Authorization is decided through domain.Authorize before any mutation is
// attempted; the repositories' visibility filter guarantees voided projects
// and comments never surface here.
type ProjectService struct {
	projects ports.ProjectRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	cache    ports.ProjectCache
	logger   zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	comments ports.CommentRepository,
	users ports.UserRepository,
	cache ports.ProjectCache,
	logger zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projects: projects,
		comments: comments,
		users:    users,
		cache:    cache,
		logger:   logger,
	}
}

func (s *ProjectService) Create(ctx context.Context, actorID string, input ports.CreateProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		TechStack:   input.TechStack,
		GithubLink:  input.GithubLink,
		DemoLink:    input.DemoLink,
		Screenshots: input.Screenshots,
		Category:    input.Category,
		Likes:       []string{},
		Comments:    []string{},
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if project.Screenshots == nil {
		project.Screenshots = []string{}
	}

	if err := s.projects.Create(ctx, project); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", project.ID).Str("created_by", actorID).Msg("project created")
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, page, limit int64) (*ports.ProjectPage, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if page < 0 {
		page = 0
	}

	projects, total, err := s.projects.List(ctx, page*limit, limit)
	if err != nil {
		return nil, err
	}
	return &ports.ProjectPage{Projects: projects, Count: total}, nil
}

// Get serves reads through the cache. Cache failures degrade to the store;
// they never fail the request.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, project); err != nil {
		s.logger.Warn().Err(err).Str("project_id", id).Msg("project cache set failed")
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, actorID, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	principal := domain.Principal{ID: actorID, Role: domain.RoleUser}
	if err := domain.Authorize(principal, project.CreatedBy, domain.ActionUpdate); err != nil {
		return nil, err
	}

	if input.Title != "" {
		project.Title = input.Title
	}
	if input.Description != "" {
		project.Description = input.Description
	}
	if input.TechStack != nil {
		project.TechStack = input.TechStack
	}
	if input.GithubLink != "" {
		project.GithubLink = input.GithubLink
	}
	if input.DemoLink != "" {
		project.DemoLink = input.DemoLink
	}
	if input.Screenshots != nil {
		project.Screenshots = input.Screenshots
	}
	if input.Category != "" {
		project.Category = input.Category
	}

	if err := s.projects.UpdateFields(ctx, project); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return project, nil
}

// Void applies the terminal transition. The repository conditions the write
// on the project still being non-voided, so of two racing voiders only one
// records the audit fields; the other gets ErrProjectNotFound.
func (s *ProjectService) Void(ctx context.Context, actorID, id, reason string) error {
	if reason == "" {
		return domain.ErrBadRequest
	}

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}

	principal := domain.Principal{ID: actor.ID, Role: actor.Role}
	if err := domain.Authorize(principal, project.CreatedBy, domain.ActionVoid); err != nil {
		return err
	}

	if err := s.projects.Void(ctx, id, reason, actor.ID); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	s.logger.Info().Str("project_id", id).Str("voided_by", actor.ID).Msg("project voided")
	return nil
}

func (s *ProjectService) ToggleLike(ctx context.Context, actorID, id string) (*ports.LikeResult, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	liked := project.ToggleLike(actorID)
	if err := s.projects.SetLikes(ctx, id, project.Likes); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	return &ports.LikeResult{Liked: liked, Likes: len(project.Likes)}, nil
}

// AddComment creates the comment then appends its id to the project. It
// returns the resulting comment count, voided references included.
func (s *ProjectService) AddComment(ctx context.Context, actorID, projectID, content string) (int, error) {
	if content == "" {
		return 0, domain.ErrBadRequest
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		Content:   content,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return 0, err
	}
	if err := s.projects.AppendComment(ctx, projectID, comment.ID); err != nil {
		return 0, err
	}
	s.invalidate(ctx, projectID)

	return len(project.Comments) + 1, nil
}

// RemoveComment voids the comment. The comment id deliberately stays in the
// project's comment list; the visibility filter hides the voided comment
// from Comments, so the dangling reference is harmless on read paths.
func (s *ProjectService) RemoveComment(ctx context.Context, actorID, projectID, commentID, reason string) error {
	if reason == "" {
		return domain.ErrBadRequest
	}

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return err
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	principal := domain.Principal{ID: actor.ID, Role: actor.Role}
	if err := domain.Authorize(principal, comment.CreatedBy, domain.ActionVoid); err != nil {
		return err
	}

	if err := s.comments.Void(ctx, commentID, reason, actor.ID); err != nil {
		return err
	}
	s.invalidate(ctx, projectID)

	s.logger.Info().Str("comment_id", commentID).Str("voided_by", actor.ID).Msg("comment voided")
	return nil
}

func (s *ProjectService) Comments(ctx context.Context, projectID string) ([]domain.Comment, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.comments.FindByIDs(ctx, project.Comments)
}

func (s *ProjectService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("project_id", id).Msg("project cache invalidation failed")
	}
}
