package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Skipper-116/devhub-backend/internal/core/domain"
	"github.com/Skipper-116/devhub-backend/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, email, role string) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		Skills:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func TestProfileService_GetAndUpdate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo, zerolog.Nop())
	user := seedUser(t, repo, "Alice", "alice@example.com", domain.RoleUser)

	got, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Alice" {
		t.Fatalf("unexpected name: %s", got.Name)
	}

	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateProfileInput{
		Bio:    "gopher",
		Skills: []string{"go", "mongo"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Bio != "gopher" || len(updated.Skills) != 2 {
		t.Fatalf("update not applied: %+v", updated)
	}
	// Fields absent from the input stay untouched.
	if updated.Name != "Alice" || updated.Email != "alice@example.com" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestProfileService_Delete_Self(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo, zerolog.Nop())
	user := seedUser(t, repo, "Alice", "alice@example.com", domain.RoleUser)

	if err := svc.Delete(context.Background(), user.ID, user.ID, "leaving the platform"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// The account is gone from every default read path.
	if _, err := svc.Get(context.Background(), user.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound after void, got %v", err)
	}

	stored := repo.users[user.ID]
	if !stored.IsVoided() || stored.VoidedBy != user.ID || stored.VoidedReason == nil {
		t.Fatalf("audit fields not recorded: %+v", stored.Voidable)
	}
}

func TestProfileService_Delete_RequiresReason(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo, zerolog.Nop())
	user := seedUser(t, repo, "Alice", "alice@example.com", domain.RoleUser)

	if err := svc.Delete(context.Background(), user.ID, user.ID, ""); err != domain.ErrBadRequest {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if _, err := svc.Get(context.Background(), user.ID); err != nil {
		t.Fatalf("account must survive a rejected delete: %v", err)
	}
}

func TestProfileService_Delete_NonOwnerDenied(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo, zerolog.Nop())
	alice := seedUser(t, repo, "Alice", "alice@example.com", domain.RoleUser)
	bob := seedUser(t, repo, "Bob", "bob@example.com", domain.RoleUser)

	if err := svc.Delete(context.Background(), bob.ID, alice.ID, "nope"); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProfileService_Delete_AdminAllowed(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo, zerolog.Nop())
	alice := seedUser(t, repo, "Alice", "alice@example.com", domain.RoleUser)
	admin := seedUser(t, repo, "Root", "root@example.com", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), admin.ID, alice.ID, "policy violation"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if repo.users[alice.ID].VoidedBy != admin.ID {
		t.Fatalf("voided_by should record the admin")
	}
}

func TestProfileService_Delete_AlreadyVoided(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProfileService(repo, zerolog.Nop())
	alice := seedUser(t, repo, "Alice", "alice@example.com", domain.RoleUser)
	admin := seedUser(t, repo, "Root", "root@example.com", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), admin.ID, alice.ID, "first"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	// A voided target is indistinguishable from an absent one.
	if err := svc.Delete(context.Background(), admin.ID, alice.ID, "second"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if *repo.users[alice.ID].VoidedReason != "first" {
		t.Fatalf("audit reason overwritten by rejected re-void")
	}
}
