package repository

import (
	"context"
	"database/sql"
	"errors"

	"docushare-server/config"
	"docushare-server/internal/apperr"
	"docushare-server/internal/model"
	"docushare-server/internal/util"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, username, email, mobile, password)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING uuid, username, email, mobile, password, created_at
	`

	createdUser := &model.User{}
	err := r.QueryRowxContext(ctx, query, user.UUID, user.Username, user.Email, user.Mobile, user.Password).
		StructScan(createdUser)
	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT uuid, username, email, mobile, password, created_at FROM users WHERE email = $1`
	var user model.User
	err := r.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// ExistsByEmail : проверяет, занят ли email
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	err := r.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, util.LogError("[UserRepo] ошибка проверки существования пользователя", err)
	}
	return exists, nil
}

// UpdateProfile : обновляет изменяемые поля username и mobile
func (r *UserRepository) UpdateProfile(ctx context.Context, email, username, mobile string) (*model.User, error) {
	query := `
	UPDATE users
	SET username = $2, mobile = $3
	WHERE email = $1
	RETURNING uuid, username, email, mobile, password, created_at
	`

	updated := &model.User{}
	err := r.QueryRowxContext(ctx, query, email, username, mobile).StructScan(updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось обновить пользователя", err)
	}
	return updated, nil
}
