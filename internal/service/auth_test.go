package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/auth"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/entity"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/repository"
)

type mockUsersRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	create      func(ctx context.Context, email, passwordHash, role string) (*entity.User, error)
}

func (m *mockUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("findByEmail not implemented")
}

func (m *mockUsersRepository) Create(ctx context.Context, email, passwordHash, role string) (*entity.User, error) {
	if m.create != nil {
		return m.create(ctx, email, passwordHash, role)
	}
	return nil, errors.New("create not implemented")
}

func newAuthService(repo repository.UsersRepository) *AuthService {
	return NewAuthService(repo, auth.NewJWTManager("test-secret", 0))
}

func storedAdmin(t *testing.T, password string) *entity.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &entity.User{
		ID:           uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
		Email:        "admin@example.com",
		PasswordHash: string(hashed),
		Role:         "admin",
	}
}

func TestAuthService_Login(t *testing.T) {
	admin := storedAdmin(t, "super-secret")

	tests := map[string]struct {
		email    string
		password string
		user     *entity.User
		findErr  error
		wantErr  string
	}{
		"empty credentials": {
			wantErr: "email and password must not be empty",
		},
		"unknown account": {
			email:    "ghost@example.com",
			password: "whatever",
			findErr:  repository.ErrUserNotFound,
			wantErr:  "invalid credentials",
		},
		"wrong password": {
			email:    "admin@example.com",
			password: "wrong",
			user:     admin,
			wantErr:  "invalid credentials",
		},
		"lookup failure surfaces unchanged": {
			email:    "admin@example.com",
			password: "super-secret",
			findErr:  errors.New("db down"),
			wantErr:  "db down",
		},
		"valid credentials": {
			email:    "admin@example.com",
			password: "super-secret",
			user:     admin,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			repo := &mockUsersRepository{
				findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
					if tc.findErr != nil {
						return nil, tc.findErr
					}
					return tc.user, nil
				},
			}

			token, err := newAuthService(repo).Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != "" {
				if err == nil || err.Error() != tc.wantErr {
					t.Fatalf("expected error %q, got %v", tc.wantErr, err)
				}
				if token != "" {
					t.Fatalf("expected empty token on error, got %q", token)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token == "" {
				t.Fatalf("expected non-empty token")
			}
		})
	}
}

func TestAuthService_LoginNormalizesEmail(t *testing.T) {
	admin := storedAdmin(t, "super-secret")
	var lookups []string
	repo := &mockUsersRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			lookups = append(lookups, email)
			return admin, nil
		},
	}

	manager := auth.NewJWTManager("test-secret", 0)
	token, err := NewAuthService(repo, manager).Login(context.Background(), "  Admin@Example.COM ", "super-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lookups) != 1 || lookups[0] != "admin@example.com" {
		t.Fatalf("expected lowercased lookup, got %v", lookups)
	}

	claims, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Subject != admin.ID.String() || claims.Email != "admin@example.com" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	t.Run("disabled without credentials", func(t *testing.T) {
		repo := &mockUsersRepository{}
		if err := newAuthService(repo).EnsureAdmin(context.Background(), "", "secret"); err != nil {
			t.Fatalf("expected bootstrap to be skipped, got %v", err)
		}
		if err := newAuthService(repo).EnsureAdmin(context.Background(), "admin@example.com", ""); err != nil {
			t.Fatalf("expected bootstrap to be skipped, got %v", err)
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		err := newAuthService(&mockUsersRepository{}).EnsureAdmin(context.Background(), "not-an-email", "secret")
		if err == nil || !strings.Contains(err.Error(), "admin email") {
			t.Fatalf("expected admin email error, got %v", err)
		}
	})

	t.Run("skips existing account", func(t *testing.T) {
		created := false
		repo := &mockUsersRepository{
			findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
				return storedAdmin(t, "old-secret"), nil
			},
			create: func(ctx context.Context, email, passwordHash, role string) (*entity.User, error) {
				created = true
				return nil, nil
			},
		}
		if err := newAuthService(repo).EnsureAdmin(context.Background(), "admin@example.com", "secret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created {
			t.Fatalf("expected no create call for existing account")
		}
	})

	t.Run("creates missing account", func(t *testing.T) {
		var gotEmail, gotHash, gotRole string
		repo := &mockUsersRepository{
			findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, repository.ErrUserNotFound
			},
			create: func(ctx context.Context, email, passwordHash, role string) (*entity.User, error) {
				gotEmail, gotHash, gotRole = email, passwordHash, role
				return &entity.User{ID: uuid.New(), Email: email, Role: role}, nil
			},
		}

		if err := newAuthService(repo).EnsureAdmin(context.Background(), " Admin@Example.COM ", "secret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotEmail != "admin@example.com" || gotRole != "admin" {
			t.Fatalf("unexpected create args: %q %q", gotEmail, gotRole)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(gotHash), []byte("secret")); err != nil {
			t.Fatalf("stored hash does not match password: %v", err)
		}
	})

	t.Run("tolerates a concurrent create", func(t *testing.T) {
		repo := &mockUsersRepository{
			findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, repository.ErrUserNotFound
			},
			create: func(ctx context.Context, email, passwordHash, role string) (*entity.User, error) {
				return nil, repository.ErrEmailDuplicate
			},
		}
		if err := newAuthService(repo).EnsureAdmin(context.Background(), "admin@example.com", "secret"); err != nil {
			t.Fatalf("expected duplicate to be tolerated, got %v", err)
		}
	})
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"admin@example.com",
		"trip.lead+promo@travel.example.org",
		"o'neil@example.travel",
	}
	for _, email := range valid {
		if err := validateEmail(email); err != nil {
			t.Fatalf("expected %q to validate, got %v", email, err)
		}
	}

	invalid := []string{
		"",
		"plain-text",
		"user@",
		"@example.com",
		"user@nodot",
		"USER@EXAMPLE.COM",
	}
	for _, email := range invalid {
		if err := validateEmail(email); err == nil {
			t.Fatalf("expected %q to be rejected", email)
		}
	}
}
