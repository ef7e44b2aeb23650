package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/auth"
)

type mockAdminRepository struct {
	admins    map[string]*admin.Admin
	CreateErr error
	GetErr    error
}

func newMockAdminRepository(admins ...*admin.Admin) *mockAdminRepository {
	m := &mockAdminRepository{admins: make(map[string]*admin.Admin)}
	for _, a := range admins {
		m.admins[a.ID()] = a
	}
	return m
}

func (m *mockAdminRepository) Create(_ context.Context, a *admin.Admin) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.admins[a.ID()] = a
	return nil
}

func (m *mockAdminRepository) GetByID(_ context.Context, id string) (*admin.Admin, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.admins[id], nil
}

func (m *mockAdminRepository) GetByEmail(_ context.Context, email string) (*admin.Admin, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, a := range m.admins {
		if a.Email() == admin.NormalizeEmail(email) {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	a, err := m.GetByEmail(ctx, email)
	return a != nil, err
}

func (m *mockAdminRepository) ExistsByPhoneNumber(_ context.Context, phone string) (bool, error) {
	for _, a := range m.admins {
		if a.Profile().PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

// plainHasher prefixes instead of hashing so tests can assert on stored values.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "h:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokens encodes the admin ID and email in the token itself.
type fakeTokens struct {
	GenerateErr error
}

func (f fakeTokens) Generate(adminID, email string) (string, error) {
	if f.GenerateErr != nil {
		return "", f.GenerateErr
	}
	return adminID + "|" + email, nil
}

func (f fakeTokens) Verify(token string) (*auth.Claims, error) {
	parts := strings.SplitN(token, "|", 2)
	if len(parts) != 2 {
		return nil, errors.New("malformed token")
	}
	return &auth.Claims{UUID: parts[0], Email: parts[1]}, nil
}
