package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	adminRules *service.AdminService
	hasher     service.PasswordHasher
	tokenSvc   service.TokenService
	logger     *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	AdminRules *service.AdminService
	Hasher     service.PasswordHasher
	TokenSvc   service.TokenService
	Logger     *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		adminRules: params.AdminRules,
		hasher:     params.Hasher,
		tokenSvc:   params.TokenSvc,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. There is deliberately no prior
// FindByEmail check: the unique index on email is what settles concurrent
// registrations of the same address, and its violation is translated here.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	user := &entity.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", email.Value()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID.Int64()))

	return &usecase.RegisterOutput{User: toUserOutput(user)}, nil
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenSvc.GenerateTokens(user.ID, user.IsAdmin)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Int64("userID", user.ID.Int64()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserOutput(user),
	}, nil
}

// PromoteToAdmin grants administrator rights.
func (srv *userService) PromoteToAdmin(ctx context.Context, userID int64) (*usecase.UserOutput, error) {
	uid, err := entity.NewUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if err := srv.userRepo.PromoteToAdmin(ctx, uid); err != nil {
		return nil, errors.Wrap(err, "failed to promote user")
	}

	user.IsAdmin = true
	srv.log(ctx).Info("User promoted to admin", slog.Int64("userID", userID))

	return toUserOutput(user), nil
}

// DemoteFromAdmin revokes administrator rights, refusing to demote the last
// remaining administrator. The pure rule gives the specific error; the
// conditional update inside the transaction closes the read-then-decide race.
func (srv *userService) DemoteFromAdmin(ctx context.Context, userID int64) (*usecase.UserOutput, error) {
	uid, err := entity.NewUserID(userID)
	if err != nil {
		return nil, err
	}

	var demoted *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, txErr := userRepo.FindByID(ctx, uid)
		if errors.Is(txErr, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if txErr != nil {
			return errors.Wrap(txErr, "failed to find user")
		}

		adminCount, txErr := userRepo.CountAdmins(ctx)
		if txErr != nil {
			return errors.Wrap(txErr, "failed to count admins")
		}

		if txErr := srv.adminRules.CanDemoteFromAdmin(*user, adminCount); txErr != nil {
			return txErr
		}

		txErr = userRepo.DemoteIfNotLastAdmin(ctx, uid)
		if errors.Is(txErr, repository.ErrAdminConditionFailed) {
			return domainerrors.ErrLastAdmin
		}
		if txErr != nil {
			return errors.Wrap(txErr, "failed to demote user")
		}

		user.IsAdmin = false
		demoted = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to demote admin", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Admin demoted", slog.Int64("userID", userID))

	return toUserOutput(demoted), nil
}
