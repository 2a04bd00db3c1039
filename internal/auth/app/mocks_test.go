package app

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, email, token string) error {
	return m.Called(ctx, email, token).Error(0)
}

func (m *MockUserRepository) UpdateResetToken(ctx context.Context, email, token string) error {
	return m.Called(ctx, email, token).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return m.Called(ctx, email, passwordHash).Error(0)
}

func (m *MockUserRepository) ConfirmEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, email string, role entities.Role) error {
	return m.Called(ctx, email, role).Error(0)
}

func (m *MockUserRepository) SetBanned(ctx context.Context, email string, banned bool) error {
	return m.Called(ctx, email, banned).Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, email, avatarURL string) error {
	return m.Called(ctx, email, avatarURL).Error(0)
}

func (m *MockUserRepository) UpdateUsername(ctx context.Context, email, username string) error {
	return m.Called(ctx, email, username).Error(0)
}

func (m *MockUserRepository) Search(ctx context.Context, query string) ([]*entities.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(ctx context.Context, subject string, scope services.TokenScope) (string, time.Time, error) {
	args := m.Called(ctx, subject, scope)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) Decode(ctx context.Context, token string, expected services.TokenScope) (*services.TokenClaims, error) {
	args := m.Called(ctx, token, expected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenClaims), args.Error(1)
}

type MockRevocationLedger struct {
	mock.Mock
}

func (m *MockRevocationLedger) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return m.Called(ctx, token, ttl).Error(0)
}

func (m *MockRevocationLedger) IsRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

type MockSessionCache struct {
	mock.Mock
}

func (m *MockSessionCache) Get(ctx context.Context, subject string) (*entities.User, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockSessionCache) Put(ctx context.Context, subject string, user *entities.User, ttl time.Duration) error {
	return m.Called(ctx, subject, user, ttl).Error(0)
}

func (m *MockSessionCache) Invalidate(ctx context.Context, subject string) error {
	return m.Called(ctx, subject).Error(0)
}

type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendConfirmation(ctx context.Context, email, username, token string) error {
	return m.Called(ctx, email, username, token).Error(0)
}

func (m *MockEmailService) SendPasswordReset(ctx context.Context, email, username, token string) error {
	return m.Called(ctx, email, username, token).Error(0)
}

// noopSessionCache never stores anything. The authenticator must stay
// correct with it, just slower.
type noopSessionCache struct{}

func (noopSessionCache) Get(context.Context, string) (*entities.User, error) { return nil, nil }
func (noopSessionCache) Put(context.Context, string, *entities.User, time.Duration) error {
	return nil
}
func (noopSessionCache) Invalidate(context.Context, string) error { return nil }

// fakeUserRepo is an in-memory repository for end-to-end scenarios.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[string]*entities.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return nil, entities.ErrAccountExists
	}
	stored := *user
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.nextID++
	f.users[user.Email] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) update(email string, fn func(*entities.User)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return entities.ErrUserNotFound
	}
	fn(user)
	user.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) UpdateRefreshToken(_ context.Context, email, token string) error {
	return f.update(email, func(u *entities.User) { u.RefreshToken = token })
}

func (f *fakeUserRepo) UpdateResetToken(_ context.Context, email, token string) error {
	return f.update(email, func(u *entities.User) { u.ResetToken = token })
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	return f.update(email, func(u *entities.User) { u.PasswordHash = passwordHash })
}

func (f *fakeUserRepo) ConfirmEmail(_ context.Context, email string) error {
	return f.update(email, func(u *entities.User) { u.Confirmed = true })
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, email string, role entities.Role) error {
	return f.update(email, func(u *entities.User) { u.Role = role })
}

func (f *fakeUserRepo) SetBanned(_ context.Context, email string, banned bool) error {
	return f.update(email, func(u *entities.User) { u.Banned = banned })
}

func (f *fakeUserRepo) UpdateAvatar(_ context.Context, email, avatarURL string) error {
	return f.update(email, func(u *entities.User) { u.Avatar = avatarURL })
}

func (f *fakeUserRepo) UpdateUsername(_ context.Context, email, username string) error {
	return f.update(email, func(u *entities.User) { u.Username = username })
}

func (f *fakeUserRepo) Search(_ context.Context, _ string) ([]*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*entities.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, user := range f.users {
		if user.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return entities.ErrUserNotFound
}
