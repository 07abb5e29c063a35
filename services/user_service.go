package services

import (
	"errors"
	"strings"
	"time"

	"notelist-app/notelist/broker"
	"notelist-app/notelist/database"
	"notelist-app/notelist/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserServiceInterface interface {
	CreateUser(db *database.Database, email, password string) (models.User, error)
	GetUserById(db *database.Database, id uuid.UUID) (models.User, error)
}

type UserService struct {
	auth AuthServiceInterface
}

func NewUserService(auth AuthServiceInterface) UserServiceInterface {
	return &UserService{auth: auth}
}

func (s *UserService) CreateUser(db *database.Database, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := checkVar("email", email, "required,email"); err != nil {
		return models.User{}, err
	}
	if err := checkVar("password", password, "min=8,max=72"); err != nil {
		return models.User{}, err
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrResourceExists
			}
			return err
		}

		event, err := models.NewEvent(
			string(broker.UserCreated),
			"user",
			"create",
			user.ID.String(),
			map[string]interface{}{
				"user_id": user.ID.String(),
				"email":   user.Email,
			},
		)
		if err != nil {
			return err
		}
		return tx.Create(event).Error
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (s *UserService) GetUserById(db *database.Database, id uuid.UUID) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
