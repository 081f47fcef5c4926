package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"donatehub/internal/domain"
	"donatehub/internal/security"
)

func identityFixture() (*IdentityService, *security.TokenIssuer) {
	issuer := security.NewTokenIssuer("test-secret", time.Hour)
	hasher := security.NewPasswordHasher(security.DefaultArgon2Params())
	return NewIdentityService(newFakeUserRepo(), hasher, issuer), issuer
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc, issuer := identityFixture()

	user, token, err := svc.Register(context.Background(), RegistrationInput{
		Name:     "Helping Hands",
		Email:    "NGO@Example.com",
		Password: "sekret123",
		Role:     domain.UserRoleOrganization,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "ngo@example.com" {
		t.Fatalf("email not lowercased: %q", user.Email)
	}
	if user.PasswordHash == "sekret123" || user.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}

	id, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify registration token: %v", err)
	}
	if id.UserID != user.ID || id.Role != string(domain.UserRoleOrganization) {
		t.Fatalf("unexpected token identity: %+v", id)
	}

	logged, token2, err := svc.Login(context.Background(), "ngo@example.com", "sekret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != user.ID || token2 == "" {
		t.Fatal("login should return the registered account with a token")
	}

	profile, err := svc.Profile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Name != "Helping Hands" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := identityFixture()

	input := RegistrationInput{Name: "A", Email: "a@example.com", Password: "sekret123", Role: domain.UserRoleSupporter}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("second register: got %v, want ErrEmailTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := identityFixture()

	cases := []RegistrationInput{
		{Name: "", Email: "a@example.com", Password: "sekret123", Role: domain.UserRoleSupporter},
		{Name: "A", Email: "not-an-email", Password: "sekret123", Role: domain.UserRoleSupporter},
		{Name: "A", Email: "a@example.com", Password: "short", Role: domain.UserRoleSupporter},
		{Name: "A", Email: "a@example.com", Password: "sekret123", Role: "admin"},
	}
	for i, input := range cases {
		if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: got %v, want ErrInvalidInput", i, err)
		}
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _ := identityFixture()

	if _, _, err := svc.Register(context.Background(), RegistrationInput{
		Name: "A", Email: "a@example.com", Password: "sekret123", Role: domain.UserRoleSupporter,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "a@example.com", "wrong"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("wrong password: got %v, want ErrUnauthenticated", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "sekret123"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("unknown email: got %v, want ErrUnauthenticated", err)
	}
}
