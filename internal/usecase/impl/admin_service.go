package impl

import (
	"context"
	"log/slog"

	deliverycontext "presskit/internal/delivery/context"
	domainerrors "presskit/internal/domain/errors"
	"presskit/internal/domain/repository"
	"presskit/internal/domain/service"
	"presskit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	adminRepo    repository.AdminUserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	blacklist    service.TokenBlacklist
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminRepo    repository.AdminUserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Blacklist    service.TokenBlacklist
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		blacklist:    params.Blacklist,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the admin credentials and mints a session token.
// An unknown email and a wrong password both surface as ErrInvalidCredentials
// so the response cannot be used to enumerate accounts.
func (srv *adminService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting admin login", slog.String("email", input.Email))

	admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Login failed: unknown admin email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	// bcrypt comparison is constant-time on the hash itself.
	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, claims, err := srv.tokenService.IssueToken(admin)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Admin logged in", slog.Uint64("adminID", uint64(admin.ID)), slog.String("tokenID", claims.TokenID()))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the presented token until its natural expiry. Revocation is
// additive: the token would die at its expiry anyway, the blacklist just
// kills it early.
func (srv *adminService) Logout(ctx context.Context, claims *service.Claims) error {
	if claims == nil || claims.TokenID() == "" {
		return errors.Wrap(domainerrors.ErrTokenInvalid, "logout without token claims")
	}

	srv.blacklist.Revoke(claims.TokenID(), claims.ExpiresAt.Time)
	srv.log(ctx).Info("Admin logged out", slog.String("tokenID", claims.TokenID()))

	return nil
}
