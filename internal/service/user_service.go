package service

import (
	"context"
	"errors"
	"fmt"

	"docushare-server/internal/apperr"
	"docushare-server/internal/model"
	"docushare-server/internal/ports"
	"docushare-server/internal/util"

	"github.com/google/uuid"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

// Signup : регистрирует пользователя. Email уникален; пароль сохраняется
// открытым текстом (требование совместимости с уже сохранёнными данными)
// и никогда не возвращается в ответах.
func (s *UserService) Signup(ctx context.Context, username, email, mobile, password string) (*model.User, error) {
	if username == "" || email == "" || mobile == "" || password == "" {
		return nil, fmt.Errorf("[UserService] все поля обязательны: %w", apperr.ErrValidation)
	}

	exists, err := s.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка проверки email", err)
	}
	if exists {
		return nil, fmt.Errorf("[UserService] email уже зарегистрирован: %w", apperr.ErrConflict)
	}

	user := &model.User{
		UUID:     uuid.New().String(),
		Username: username,
		Email:    email,
		Mobile:   mobile,
		Password: password,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка создания пользователя", err)
	}

	return created, nil
}

// Login : вход по email и паролю. Сравнение паролей посимвольное,
// открытым текстом.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("[UserService] email и пароль обязательны: %w", apperr.ErrValidation)
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.Password != password {
		return nil, fmt.Errorf("[UserService] неверные учётные данные: %w", apperr.ErrUnauthorized)
	}

	return user, nil
}

// GetProfile : профиль пользователя по email
func (s *UserService) GetProfile(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		return nil, util.LogError("[UserService] не удалось получить профиль", err)
	}
	return user, nil
}

// UpdateProfile : частичное обновление изменяемых полей username и mobile.
// Непереданные (пустые) поля сохраняют текущее значение.
func (s *UserService) UpdateProfile(ctx context.Context, email, username, mobile string) (*model.User, error) {
	current, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if username == "" {
		username = current.Username
	}
	if mobile == "" {
		mobile = current.Mobile
	}

	return s.userRepository.UpdateProfile(ctx, email, username, mobile)
}
