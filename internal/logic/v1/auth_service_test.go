package v1

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

func testTokens() *TokenService {
	return NewTokenService("test-secret", time.Hour)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	password := "testpass123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:           1,
				Email:        "user@example.com",
				FirstName:    "Test",
				LastName:     "User",
				PasswordHash: string(hash),
				Admin:        true,
			}, nil
		},
	}

	svc := NewAuthService(users, testTokens())
	resp, err := svc.Login(ctx, domain.LoginRequest{Email: "user@example.com", Password: password})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.ID != 1 || !resp.Admin {
		t.Errorf("principal does not match stored credential: %+v", resp)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correctpass"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email, PasswordHash: string(hash)}, nil
		},
	}

	svc := NewAuthService(users, testTokens())
	_, err := svc.Login(ctx, domain.LoginRequest{Email: "user@example.com", Password: "wrongpass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, nil
		},
	}

	svc := NewAuthService(users, testTokens())
	_, err := svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()

	var gotHash string
	var gotAdmin bool
	users := &mockUserRepo{
		existsByEmailFn: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, email, firstName, lastName, passwordHash string, admin bool) (int64, error) {
			gotHash = passwordHash
			gotAdmin = admin
			return 5, nil
		},
	}

	svc := NewAuthService(users, testTokens())
	err := svc.Register(ctx, domain.RegisterRequest{
		Email:     "new@example.com",
		FirstName: "New",
		LastName:  "User",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotAdmin {
		t.Error("registered users must not be admins")
	}
	if bcrypt.CompareHashAndPassword([]byte(gotHash), []byte("secret123")) != nil {
		t.Error("stored hash does not verify against the password")
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()

	createCalled := false
	users := &mockUserRepo{
		existsByEmailFn: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
		createFn: func(ctx context.Context, email, firstName, lastName, passwordHash string, admin bool) (int64, error) {
			createCalled = true
			return 0, nil
		},
	}

	svc := NewAuthService(users, testTokens())
	err := svc.Register(ctx, domain.RegisterRequest{
		Email: "taken@example.com", FirstName: "A", LastName: "B", Password: "secret123",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
	if createCalled {
		t.Error("the existing credential must not be touched")
	}
}

func TestAuthService_PrincipalByEmail(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 3, Email: email, Admin: true}, nil
		},
	}

	svc := NewAuthService(users, testTokens())
	p, err := svc.PrincipalByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.ID != 3 || !p.Admin {
		t.Errorf("unexpected principal: %+v", p)
	}
}
