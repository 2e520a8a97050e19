package service_test

import (
	"context"
	"testing"

	"docushare-server/internal/apperr"
	"docushare-server/internal/model"
	srv "docushare-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, email, username, mobile string) (*model.User, error) {
	args := m.Called(ctx, email, username, mobile)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// Сценарий C: повторная регистрация с тем же email отклоняется как конфликт
func TestUserService_Signup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		username   string
		email      string
		mobile     string
		password   string
		setupMocks func(repo *MockUserRepository)
		expectErr  error
	}{
		{
			name:      "missing field",
			username:  "alice",
			email:     "",
			mobile:    "123",
			password:  "pw",
			expectErr: apperr.ErrValidation,
		},
		{
			name:     "duplicate email",
			username: "alice",
			email:    "alice@example.com",
			mobile:   "123",
			password: "pw",
			setupMocks: func(repo *MockUserRepository) {
				repo.On("ExistsByEmail", ctx, "alice@example.com").Return(true, nil)
			},
			expectErr: apperr.ErrConflict,
		},
		{
			name:     "success",
			username: "alice",
			email:    "alice@example.com",
			mobile:   "123",
			password: "pw",
			setupMocks: func(repo *MockUserRepository) {
				repo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
				repo.On("CreateUser", ctx, mock.MatchedBy(func(u *model.User) bool {
					return u.UUID != "" && u.Email == "alice@example.com"
				})).Return(&model.User{
					UUID:     "11111111-1111-1111-1111-111111111111",
					Username: "alice",
					Email:    "alice@example.com",
					Mobile:   "123",
					Password: "pw",
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}
			service := srv.NewUserService(repo)

			user, err := service.Signup(ctx, tt.username, tt.email, tt.mobile, tt.password)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
			}

			repo.AssertExpectations(t)
		})
	}
}

// Сценарий D: вход с несуществующим email и с неверным паролем дают разные ошибки
func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	stored := &model.User{
		UUID:     "11111111-1111-1111-1111-111111111111",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw",
	}

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(repo *MockUserRepository)
		expectErr  error
	}{
		{
			name:      "missing credentials",
			email:     "alice@example.com",
			password:  "",
			expectErr: apperr.ErrValidation,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "pw",
			setupMocks: func(repo *MockUserRepository) {
				repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, apperr.ErrNotFound)
			},
			expectErr: apperr.ErrNotFound,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong",
			setupMocks: func(repo *MockUserRepository) {
				repo.On("FindByEmail", ctx, "alice@example.com").Return(stored, nil)
			},
			expectErr: apperr.ErrUnauthorized,
		},
		{
			name:     "success",
			email:    "alice@example.com",
			password: "pw",
			setupMocks: func(repo *MockUserRepository) {
				repo.On("FindByEmail", ctx, "alice@example.com").Return(stored, nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}
			service := srv.NewUserService(repo)

			user, err := service.Login(ctx, tt.email, tt.password)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "alice", user.Username)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, apperr.ErrNotFound)
	service := srv.NewUserService(repo)

	_, err := service.GetProfile(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

// Частичное обновление: пустые поля сохраняют текущие значения
func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	current := &model.User{
		Username: "alice",
		Email:    "alice@example.com",
		Mobile:   "123",
	}

	tests := []struct {
		name         string
		username     string
		mobile       string
		wantUsername string
		wantMobile   string
	}{
		{name: "both fields", username: "alice2", mobile: "456", wantUsername: "alice2", wantMobile: "456"},
		{name: "username only", username: "alice2", mobile: "", wantUsername: "alice2", wantMobile: "123"},
		{name: "mobile only", username: "", mobile: "456", wantUsername: "alice", wantMobile: "456"},
		{name: "nothing", username: "", mobile: "", wantUsername: "alice", wantMobile: "123"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			repo.On("FindByEmail", ctx, current.Email).Return(current, nil)
			repo.On("UpdateProfile", ctx, current.Email, tt.wantUsername, tt.wantMobile).Return(&model.User{
				Username: tt.wantUsername,
				Email:    current.Email,
				Mobile:   tt.wantMobile,
			}, nil)
			service := srv.NewUserService(repo)

			updated, err := service.UpdateProfile(ctx, current.Email, tt.username, tt.mobile)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantUsername, updated.Username)
			assert.Equal(t, tt.wantMobile, updated.Mobile)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, apperr.ErrNotFound)
	service := srv.NewUserService(repo)

	_, err := service.UpdateProfile(ctx, "ghost@example.com", "x", "y")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
