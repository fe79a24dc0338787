package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skipper-116/devhub-backend/internal/core/domain"
)

// In-memory repositories that mirror the store contract: every read skips
// voided documents and void writes are conditioned on the document still
// being non-voided.

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrUserExists
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.IsVoided() {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email && !u.IsVoided() {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, u *domain.User) error {
	stored, ok := r.users[u.ID]
	if !ok || stored.IsVoided() {
		return domain.ErrUserNotFound
	}
	clone := cloneUser(u)
	clone.Voidable = stored.Voidable
	r.users[u.ID] = clone
	return nil
}

func (r *stubUserRepo) Void(_ context.Context, id, reason, actorID string) error {
	u, ok := r.users[id]
	if !ok || u.IsVoided() {
		return domain.ErrUserNotFound
	}
	return u.Voidable.Void(reason, actorID, time.Now().UTC())
}

type stubProjectRepo struct {
	projects map[string]*domain.Project
	order    []string
	seq      int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	clone := *p
	clone.Likes = append([]string(nil), p.Likes...)
	clone.Comments = append([]string(nil), p.Comments...)
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	r.seq++
	p.ID = fmt.Sprintf("proj_%d", r.seq)
	r.projects[p.ID] = cloneProject(p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok || p.IsVoided() {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *stubProjectRepo) List(_ context.Context, skip, limit int64) ([]domain.Project, int64, error) {
	var visible []domain.Project
	for _, id := range r.order {
		if p := r.projects[id]; !p.IsVoided() {
			visible = append(visible, *cloneProject(p))
		}
	}
	total := int64(len(visible))
	if skip >= total {
		return nil, total, nil
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return visible[skip:end], total, nil
}

func (r *stubProjectRepo) UpdateFields(_ context.Context, p *domain.Project) error {
	stored, ok := r.projects[p.ID]
	if !ok || stored.IsVoided() {
		return domain.ErrProjectNotFound
	}
	clone := cloneProject(p)
	clone.Voidable = stored.Voidable
	r.projects[p.ID] = clone
	return nil
}

func (r *stubProjectRepo) SetLikes(_ context.Context, id string, likes []string) error {
	p, ok := r.projects[id]
	if !ok || p.IsVoided() {
		return domain.ErrProjectNotFound
	}
	p.Likes = append([]string(nil), likes...)
	return nil
}

func (r *stubProjectRepo) AppendComment(_ context.Context, id, commentID string) error {
	p, ok := r.projects[id]
	if !ok || p.IsVoided() {
		return domain.ErrProjectNotFound
	}
	p.Comments = append(p.Comments, commentID)
	return nil
}

func (r *stubProjectRepo) Void(_ context.Context, id, reason, actorID string) error {
	p, ok := r.projects[id]
	if !ok || p.IsVoided() {
		return domain.ErrProjectNotFound
	}
	return p.Voidable.Void(reason, actorID, time.Now().UTC())
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	seq      int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	r.seq++
	c.ID = fmt.Sprintf("comment_%d", r.seq)
	clone := *c
	r.comments[c.ID] = &clone
	return nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok || c.IsVoided() {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, id := range ids {
		if c, ok := r.comments[id]; ok && !c.IsVoided() {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) Void(_ context.Context, id, reason, actorID string) error {
	c, ok := r.comments[id]
	if !ok || c.IsVoided() {
		return domain.ErrCommentNotFound
	}
	return c.Voidable.Void(reason, actorID, time.Now().UTC())
}

type stubProjectCache struct {
	entries map[string]*domain.Project
	hits    int
	sets    int
}

func newStubProjectCache() *stubProjectCache {
	return &stubProjectCache{entries: make(map[string]*domain.Project)}
}

func (c *stubProjectCache) Get(_ context.Context, id string) (*domain.Project, error) {
	p, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	c.hits++
	return cloneProject(p), nil
}

func (c *stubProjectCache) Set(_ context.Context, p *domain.Project) error {
	c.sets++
	c.entries[p.ID] = cloneProject(p)
	return nil
}

func (c *stubProjectCache) Invalidate(_ context.Context, id string) error {
	delete(c.entries, id)
	return nil
}
