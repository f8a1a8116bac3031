package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"subpay/internal/models/db_models"
)

type IUserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*db_models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (u UserRepository) GetUserByID(ctx context.Context, userID string) (*db_models.User, error) {

	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
