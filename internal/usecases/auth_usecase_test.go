package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/pkg/jwt"
	"fin-circle.backend/pkg/redis"
)

const (
	testEncryptionKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	testAdminPhone    = "13888888888"
)

func newAuthFixture(t *testing.T, userRepo *MockUserRepository) *AuthUsecase {
	t.Helper()

	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	sessionStore, err := redis.NewSessionStore(testEncryptionKey)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 7*24*time.Hour)

	return NewAuthUsecase(userRepo, jwtService, sessionStore, redis.NewCodeStore(), testAdminPhone, 5*time.Minute)
}

// captureSMS swaps the provider hook and returns a pointer to the last code
func captureSMS(t *testing.T) *string {
	t.Helper()

	var code string
	orig := sendSMS
	sendSMS = func(ctx context.Context, phone, c string) error {
		code = c
		return nil
	}
	t.Cleanup(func() { sendSMS = orig })
	return &code
}

func TestAuthUsecase_SendCode(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)
	code := captureSMS(t)

	err := uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "13812345678"})

	assert.NoError(t, err)
	assert.Len(t, *code, 4)
}

func TestAuthUsecase_SendCode_InvalidPhone(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)

	err := uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "12345"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAuthUsecase_SendCode_RateLimited(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)
	captureSMS(t)

	require.NoError(t, uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "13812345678"}))

	err := uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "13812345678"})
	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)

	// a different phone is not affected
	err = uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "13912345678"})
	assert.NoError(t, err)
}

func TestAuthUsecase_Login_FirstLoginRegisters(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)
	code := captureSMS(t)

	require.NoError(t, uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "13812345678"}))

	userRepo.On("GetByPhone", mock.Anything, "13812345678").Return(nil, domainerrors.ErrNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Phone == "13812345678" && u.Role == entities.UserRoleUser
	})).Return(nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Phone: "13812345678", Code: *code})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, entities.UserRoleUser, resp.User.Role)
	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_Login_AdminPhoneGetsAdminRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)
	code := captureSMS(t)

	require.NoError(t, uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: testAdminPhone}))

	userRepo.On("GetByPhone", mock.Anything, testAdminPhone).Return(nil, domainerrors.ErrNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Role == entities.UserRoleAdmin
	})).Return(nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Phone: testAdminPhone, Code: *code})

	assert.NoError(t, err)
	assert.Equal(t, entities.UserRoleAdmin, resp.User.Role)
}

func TestAuthUsecase_Login_ExistingUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)
	code := captureSMS(t)

	require.NoError(t, uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "13812345678"}))

	existing := &entities.User{Phone: "13812345678", Role: entities.UserRoleUser}
	userRepo.On("GetByPhone", mock.Anything, "13812345678").Return(existing, nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Phone: "13812345678", Code: *code})

	assert.NoError(t, err)
	assert.Same(t, existing, resp.User)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Login_WrongCode(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)
	code := captureSMS(t)

	require.NoError(t, uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "13812345678"}))

	wrong := "0000"
	if *code == wrong {
		wrong = "0001"
	}

	_, err := uc.Login(context.Background(), &entities.LoginInput{Phone: "13812345678", Code: wrong})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Login_NoPendingCode(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)

	_, err := uc.Login(context.Background(), &entities.LoginInput{Phone: "13812345678", Code: "1234"})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Login_CodeIsSingleUse(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)
	code := captureSMS(t)

	require.NoError(t, uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "13812345678"}))

	existing := &entities.User{Phone: "13812345678", Role: entities.UserRoleUser}
	userRepo.On("GetByPhone", mock.Anything, "13812345678").Return(existing, nil).Once()

	_, err := uc.Login(context.Background(), &entities.LoginInput{Phone: "13812345678", Code: *code})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), &entities.LoginInput{Phone: "13812345678", Code: *code})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Refresh(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)
	code := captureSMS(t)

	require.NoError(t, uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "13812345678"}))

	existing := &entities.User{Phone: "13812345678", Role: entities.UserRoleUser}
	userRepo.On("GetByPhone", mock.Anything, "13812345678").Return(existing, nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Phone: "13812345678", Code: *code})
	require.NoError(t, err)

	userRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil).Once()

	refreshed, err := uc.Refresh(context.Background(), resp.RefreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthUsecase_Refresh_InvalidToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)

	_, err := uc.Refresh(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Logout(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthFixture(t, userRepo)
	code := captureSMS(t)

	require.NoError(t, uc.SendCode(context.Background(), &entities.SendCodeInput{Phone: "13812345678"}))

	existing := &entities.User{Phone: "13812345678", Role: entities.UserRoleUser}
	userRepo.On("GetByPhone", mock.Anything, "13812345678").Return(existing, nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Phone: "13812345678", Code: *code})
	require.NoError(t, err)

	assert.NoError(t, uc.Logout(context.Background(), resp.SessionID))
	assert.NoError(t, uc.Logout(context.Background(), ""))
}

func TestNormalizePhone(t *testing.T) {
	phone, err := normalizePhone("13812345678")
	assert.NoError(t, err)
	assert.Equal(t, "13812345678", phone)

	phone, err = normalizePhone("+8613812345678")
	assert.NoError(t, err)
	assert.Equal(t, "13812345678", phone)

	_, err = normalizePhone("12345")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = normalizePhone("not a phone")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
