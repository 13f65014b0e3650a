package impl

import (
	"context"
	"testing"
	"time"

	"presskit/internal/domain/entity"
	domainerrors "presskit/internal/domain/errors"
	"presskit/internal/domain/repository"
	"presskit/internal/domain/service"
	mockRepo "presskit/internal/mocks/repository"
	mockSvc "presskit/internal/mocks/service"
	"presskit/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminServiceMocks struct {
	adminRepo *mockRepo.MockAdminUserRepository
	hasher    *mockSvc.MockPasswordHasher
	tokenSvc  *mockSvc.MockTokenService
	blacklist *mockSvc.MockTokenBlacklist
}

func newAdminService(t *testing.T) (usecase.AdminUsecase, adminServiceMocks) {
	mocks := adminServiceMocks{
		adminRepo: mockRepo.NewMockAdminUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokenSvc:  mockSvc.NewMockTokenService(t),
		blacklist: mockSvc.NewMockTokenBlacklist(t),
	}

	adminSvc := NewAdminService(AdminServiceParams{
		AdminRepo:    mocks.adminRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenSvc,
		Blacklist:    mocks.blacklist,
		Logger:       newDiscardLogger(),
	})

	return adminSvc, mocks
}

func testClaims(adminID string, tokenID string, expiresAt time.Time) *service.Claims {
	return &service.Claims{
		Email: "dj@example.com",
		Role:  entity.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestAdminService_Login_Success(t *testing.T) {
	adminSvc, mocks := newAdminService(t)
	ctx := context.Background()

	admin := &entity.AdminUser{
		ID:           1,
		Email:        "dj@example.com",
		PasswordHash: "$2a$12$hash",
	}
	expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	claims := testClaims("1", "token-id-1", expiry)

	mocks.adminRepo.EXPECT().FindByEmail(ctx, "dj@example.com").Return(admin, nil)
	mocks.hasher.EXPECT().Check("correct horse", admin.PasswordHash).Return(true)
	mocks.tokenSvc.EXPECT().IssueToken(admin).Return("signed.jwt.token", claims, nil)

	output, err := adminSvc.Login(ctx, &usecase.LoginInput{
		Email:    "dj@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, expiry, output.ExpiresAt)
}

func TestAdminService_Login_UnknownEmail(t *testing.T) {
	adminSvc, mocks := newAdminService(t)
	ctx := context.Background()

	mocks.adminRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAdminNotFound)

	output, err := adminSvc.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	adminSvc, mocks := newAdminService(t)
	ctx := context.Background()

	admin := &entity.AdminUser{
		ID:           1,
		Email:        "dj@example.com",
		PasswordHash: "$2a$12$hash",
	}

	mocks.adminRepo.EXPECT().FindByEmail(ctx, "dj@example.com").Return(admin, nil)
	mocks.hasher.EXPECT().Check("wrong", admin.PasswordHash).Return(false)

	output, err := adminSvc.Login(ctx, &usecase.LoginInput{
		Email:    "dj@example.com",
		Password: "wrong",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAdminService_Login_FailureModesIndistinguishable(t *testing.T) {
	adminSvc, mocks := newAdminService(t)
	ctx := context.Background()

	mocks.adminRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAdminNotFound)

	admin := &entity.AdminUser{ID: 1, Email: "dj@example.com", PasswordHash: "$2a$12$hash"}
	mocks.adminRepo.EXPECT().FindByEmail(ctx, "dj@example.com").Return(admin, nil)
	mocks.hasher.EXPECT().Check("wrong", admin.PasswordHash).Return(false)

	_, errUnknown := adminSvc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	_, errWrongPw := adminSvc.Login(ctx, &usecase.LoginInput{Email: "dj@example.com", Password: "wrong"})

	var appErrUnknown, appErrWrongPw domainerrors.AppError
	require.ErrorAs(t, errUnknown, &appErrUnknown)
	require.ErrorAs(t, errWrongPw, &appErrWrongPw)
	assert.Equal(t, appErrUnknown.ErrorCode(), appErrWrongPw.ErrorCode())
	assert.Equal(t, appErrUnknown.Message(), appErrWrongPw.Message())
}

func TestAdminService_Login_RepositoryError(t *testing.T) {
	adminSvc, mocks := newAdminService(t)
	ctx := context.Background()

	mocks.adminRepo.EXPECT().
		FindByEmail(ctx, "dj@example.com").
		Return(nil, errors.New("db down"))

	output, err := adminSvc.Login(ctx, &usecase.LoginInput{
		Email:    "dj@example.com",
		Password: "whatever",
	})
	assert.Nil(t, output)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_TokenIssueError(t *testing.T) {
	adminSvc, mocks := newAdminService(t)
	ctx := context.Background()

	admin := &entity.AdminUser{ID: 1, Email: "dj@example.com", PasswordHash: "$2a$12$hash"}

	mocks.adminRepo.EXPECT().FindByEmail(ctx, "dj@example.com").Return(admin, nil)
	mocks.hasher.EXPECT().Check("correct horse", admin.PasswordHash).Return(true)
	mocks.tokenSvc.EXPECT().IssueToken(admin).Return("", nil, errors.New("no secret"))

	output, err := adminSvc.Login(ctx, &usecase.LoginInput{
		Email:    "dj@example.com",
		Password: "correct horse",
	})
	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestAdminService_Logout_RevokesToken(t *testing.T) {
	adminSvc, mocks := newAdminService(t)
	ctx := context.Background()

	expiry := time.Now().Add(10 * time.Minute)
	claims := testClaims("1", "token-id-9", expiry)

	mocks.blacklist.EXPECT().Revoke("token-id-9", claims.ExpiresAt.Time)

	err := adminSvc.Logout(ctx, claims)
	require.NoError(t, err)
}

func TestAdminService_Logout_NilClaims(t *testing.T) {
	adminSvc, _ := newAdminService(t)

	err := adminSvc.Logout(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAdminService_Logout_MissingTokenID(t *testing.T) {
	adminSvc, _ := newAdminService(t)

	claims := testClaims("1", "", time.Now().Add(time.Minute))

	err := adminSvc.Logout(context.Background(), claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
