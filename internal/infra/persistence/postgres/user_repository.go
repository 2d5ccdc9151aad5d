package postgres

import (
	"context"
	"time"

	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/repository"
	"mimapa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by exact email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. ID and timestamps are filled in when missing.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.LastLogin.IsZero() {
		user.LastLogin = user.CreatedAt
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		switch classifyConstraint(err) {
		case constraintUnique:
			return domainerrors.ErrUserUpsertFailed.WrapMessage("email already exists")
		case constraintNotNull:
			return domainerrors.ErrUserUpsertFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// TouchLogin bumps last_login and refreshes the provider profile fields.
func (repo *userRepository) TouchLogin(ctx context.Context, user *entity.User, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":       user.Name,
			"picture":    user.Picture,
			"last_login": at,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.LastLogin = at

	return nil
}

func toUserDomain(userM *model.UserModel) *entity.User {
	if userM == nil {
		return nil
	}

	return &entity.User{
		ID:            userM.ID,
		Email:         userM.Email,
		Name:          userM.Name,
		Picture:       userM.Picture,
		OAuthProvider: entity.ProviderType(userM.OAuthProvider),
		OAuthID:       userM.OAuthID,
		CreatedAt:     userM.CreatedAt,
		LastLogin:     userM.LastLogin,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Picture:       user.Picture,
		OAuthProvider: user.OAuthProvider.String(),
		OAuthID:       user.OAuthID,
		CreatedAt:     user.CreatedAt,
		LastLogin:     user.LastLogin,
	}
}
