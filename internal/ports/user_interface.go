package ports

import (
	"context"

	"docushare-server/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, email, username, mobile string) (*model.User, error)
}

type UserService interface {
	Signup(ctx context.Context, username, email, mobile, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	GetProfile(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, email, username, mobile string) (*model.User, error)
}
