package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/domain/repositories"
	"fin-circle.backend/pkg/crypto"
	"fin-circle.backend/pkg/jwt"
	"fin-circle.backend/pkg/logger"
	"fin-circle.backend/pkg/redis"
)

// defaultPhoneRegion is the region phone numbers are parsed against when
// they carry no country prefix.
const defaultPhoneRegion = "CN"

// AuthUsecase handles SMS-code login and session management
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	jwtService   *jwt.JWTService
	sessionStore *redis.SessionStore
	codeStore    *redis.CodeStore
	adminPhone   string
	codeTTL      time.Duration

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter

	now func() time.Time
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, sessionStore *redis.SessionStore, codeStore *redis.CodeStore, adminPhone string, codeTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		codeStore:    codeStore,
		adminPhone:   adminPhone,
		codeTTL:      codeTTL,
		limiters:     make(map[string]*rate.Limiter),
		now:          time.Now,
	}
}

// sendSMS is the provider hook; the real gateway is not wired in this
// deployment, codes are only logged.
var sendSMS = func(ctx context.Context, phone, code string) error {
	logger.Info(ctx, "sms code issued", zap.String("phone", phone))
	return nil
}

// SendCode validates the phone, applies the per-phone rate limit and
// stores a hashed 4-digit code with a TTL. The plaintext code never
// reaches Redis.
func (u *AuthUsecase) SendCode(ctx context.Context, input *entities.SendCodeInput) error {
	phone, err := normalizePhone(input.Phone)
	if err != nil {
		return err
	}

	if !u.allowSend(phone) {
		return domainerrors.RateLimited("please wait before requesting another code")
	}

	code, err := crypto.GenerateNumericCode(crypto.CodeLength)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	hash, err := crypto.HashCode(code)
	if err != nil {
		return domainerrors.InternalError(err)
	}

	if err := u.codeStore.Save(ctx, phone, hash, u.codeTTL); err != nil {
		return domainerrors.InternalError(err)
	}

	return sendSMS(ctx, phone, code)
}

// Login verifies the code, consumes it, upserts the user keyed by phone
// and opens a session. First login creates the account; the configured
// admin phone gets the ADMIN role.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	phone, err := normalizePhone(input.Phone)
	if err != nil {
		return nil, err
	}

	hash, found, err := u.codeStore.Get(ctx, phone)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if !found || !crypto.CheckCode(input.Code, hash) {
		return nil, domainerrors.Unauthorized("invalid or expired verification code")
	}

	// one code, one login
	if err := u.codeStore.Delete(ctx, phone); err != nil {
		logger.Warn(ctx, "failed to delete used code", zap.Error(err))
	}

	user, err := u.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if err != domainerrors.ErrNotFound {
			return nil, err
		}
		user, err = u.register(ctx, phone)
		if err != nil {
			return nil, err
		}
	}

	return u.openSession(ctx, user)
}

func (u *AuthUsecase) register(ctx context.Context, phone string) (*entities.User, error) {
	role := entities.UserRoleUser
	if phone == u.adminPhone {
		role = entities.UserRoleAdmin
	}

	nowAt := u.now()
	user := &entities.User{
		ID:        uuid.New(),
		Phone:     phone,
		Role:      role,
		CreatedAt: nowAt,
		UpdatedAt: nowAt,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered",
		zap.String("userId", user.ID.String()),
		zap.String("role", string(user.Role)))
	return user, nil
}

func (u *AuthUsecase) openSession(ctx context.Context, user *entities.User) (*entities.AuthResponse, error) {
	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Phone, string(user.Role))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	sessionID := uuid.New().String()
	session := &redis.SessionData{
		UserID:       user.ID.String(),
		Phone:        user.Phone,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if err := u.sessionStore.CreateSession(ctx, sessionID, session, 7*24*time.Hour); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		SessionID:    sessionID,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domainerrors.Unauthorized("user no longer exists")
	}

	return u.openSession(ctx, user)
}

// Me returns the authenticated user's account
func (u *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// Logout deletes the session; missing sessions are fine
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return u.sessionStore.DeleteSession(ctx, sessionID)
}

// allowSend rate-limits code requests to one per minute per phone
func (u *AuthUsecase) allowSend(phone string) bool {
	u.limiterMu.Lock()
	defer u.limiterMu.Unlock()

	l, ok := u.limiters[phone]
	if !ok {
		l = rate.NewLimiter(rate.Every(time.Minute), 1)
		u.limiters[phone] = l
	}
	return l.Allow()
}

// normalizePhone parses and validates a phone number and returns its
// national significant form, which is the account key.
func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", domainerrors.BadRequest("invalid phone number")
	}
	return phonenumbers.GetNationalSignificantNumber(num), nil
}
