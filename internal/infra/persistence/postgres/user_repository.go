package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id.Int64()).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM)
}

// FindByEmail retrieves a user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email.Value()).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM)
}

// Create persists a new user. The unique index on email settles duplicate
// registrations; its violation surfaces as ErrDuplicateEmail.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	id, err := entity.NewUserID(userM.ID)
	if err != nil {
		return errors.Wrap(err, "invalid generated user id")
	}
	user.ID = id
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// CountAdmins returns the number of administrator accounts.
func (repo *userRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_admin = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count admins")
	}

	return count, nil
}

// PromoteToAdmin grants administrator rights to the user.
func (repo *userRepository) PromoteToAdmin(ctx context.Context, id entity.UserID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id.Int64()).
		Update("is_admin", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to promote user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DemoteIfNotLastAdmin revokes administrator rights with the last-admin
// guard folded into the statement itself: the update matches only when the
// user is an admin and at least one other admin exists. Zero rows affected
// means the condition did not hold.
func (repo *userRepository) DemoteIfNotLastAdmin(ctx context.Context, id entity.UserID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND is_admin = ?", id.Int64(), true).
		Where("(SELECT COUNT(*) FROM users AS admins WHERE admins.is_admin = TRUE) > 1").
		Update("is_admin", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to demote user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminConditionFailed
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) (*entity.User, error) {
	id, err := entity.NewUserID(data.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored user id")
	}
	email, err := entity.NewEmail(data.Email)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored user email")
	}

	return &entity.User{
		ID:           id,
		Name:         data.Name,
		Email:        email,
		PasswordHash: data.PasswordHash,
		IsAdmin:      data.IsAdmin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           data.ID.Int64(),
		Name:         data.Name,
		Email:        data.Email.Value(),
		PasswordHash: data.PasswordHash,
		IsAdmin:      data.IsAdmin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
