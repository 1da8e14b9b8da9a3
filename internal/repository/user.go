package repository

import (
	"context"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/pkg/kvstore"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

type UserRepository interface {
	GetAll(ctx context.Context) []entity.User
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error

	GetCurrent(ctx context.Context) (*entity.SessionUser, error)
	SetCurrent(ctx context.Context, user *entity.SessionUser) error
	ClearCurrent(ctx context.Context) error

	SaveAPIKey(ctx context.Context, key string) error
	GetAPIKey(ctx context.Context) string
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) GetAll(ctx context.Context) []entity.User {
	return getJSON(ctx, common.KeyUsers, []entity.User{})
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range r.GetAll(ctx) {
		if u.ID == id {
			return &u, nil
		}
	}

	return nil, kvstore.ErrNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.GetAll(ctx) {
		if u.Email == email {
			return &u, nil
		}
	}

	return nil, kvstore.ErrNotFound
}

// GetByIdentifier matches either email or display name.
func (r *userRepository) GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	for _, u := range r.GetAll(ctx) {
		if u.Email == identifier || u.Name == identifier {
			return &u, nil
		}
	}

	return nil, kvstore.ErrNotFound
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return updateJSON(ctx, common.KeyUsers, []entity.User{}, func(users []entity.User) ([]entity.User, error) {
		return append(users, *user), nil
	})
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return updateJSON(ctx, common.KeyUsers, []entity.User{}, func(users []entity.User) ([]entity.User, error) {
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = *user
				return users, nil
			}
		}

		return nil, kvstore.ErrNotFound
	})
}

func (r *userRepository) GetCurrent(ctx context.Context) (*entity.SessionUser, error) {
	user := getJSON[*entity.SessionUser](ctx, common.KeyCurrentUser, nil)
	if user == nil {
		return nil, kvstore.ErrNotFound
	}

	return user, nil
}

func (r *userRepository) SetCurrent(ctx context.Context, user *entity.SessionUser) error {
	return setJSON(ctx, common.KeyCurrentUser, user)
}

func (r *userRepository) ClearCurrent(ctx context.Context) error {
	return xcontext.Store(ctx).Delete(ctx, common.KeyCurrentUser)
}

func (r *userRepository) SaveAPIKey(ctx context.Context, key string) error {
	return setJSON(ctx, common.KeyAPIKey, key)
}

func (r *userRepository) GetAPIKey(ctx context.Context) string {
	return getJSON(ctx, common.KeyAPIKey, "")
}
