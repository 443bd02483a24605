package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dobleb/todo-backend/internal/auth"
	"github.com/dobleb/todo-backend/internal/common"
	"github.com/dobleb/todo-backend/internal/models"
)

// --- fakes ---

type fakeUsersRepo struct {
	byEmail map[string]*models.User

	createErr error
	getErr    error

	created *models.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrAlreadyExists
	}
	f.byEmail[u.Email] = u
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func newUserService(repo *fakeUsersRepo) *UserService {
	return NewUserService(repo, "jwt-secret", "static-salt")
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := newUserService(repo)

	user, token, err := svc.Register(context.Background(), "  Alice@X.COM ", "pw1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Email != "alice@x.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "" || user.PasswordHash == "pw1" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}

	ident, err := auth.VerifyToken(token, []byte("jwt-secret"))
	if err != nil {
		t.Fatalf("token from Register does not verify: %v", err)
	}
	if ident.UserID != user.ID || ident.Email != user.Email {
		t.Fatalf("token identity mismatch: %+v vs %+v", ident, user)
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := newUserService(repo)

	if _, _, err := svc.Register(context.Background(), "a@x.com", "pw1"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, _, err := svc.Register(context.Background(), "A@X.com", "pw2")
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegister_EmptyInput(t *testing.T) {
	svc := newUserService(newFakeUsersRepo())

	if _, _, err := svc.Register(context.Background(), "", "pw1"); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty email, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "a@x.com", ""); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty password, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := newUserService(repo)

	reg, _, err := svc.Register(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != reg.ID {
		t.Fatalf("expected same user id, got %q vs %q", user.ID, reg.ID)
	}
	if _, err := auth.VerifyToken(token, []byte("jwt-secret")); err != nil {
		t.Fatalf("token from Login does not verify: %v", err)
	}
}

func TestLogin_UndifferentiatedFailures(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := newUserService(repo)

	if _, _, err := svc.Register(context.Background(), "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// Unknown user and wrong password must be the same outcome.
	_, _, errUnknown := svc.Login(context.Background(), "nobody@x.com", "pw1")
	_, _, errWrongPw := svc.Login(context.Background(), "a@x.com", "wrong")

	if !errors.Is(errUnknown, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong password, got %v", errWrongPw)
	}
}

func TestLogin_RepoFailureIsNotUnauthorized(t *testing.T) {
	repo := newFakeUsersRepo()
	repo.getErr = errors.New("db down")
	svc := newUserService(repo)

	_, _, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err == nil || errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}
