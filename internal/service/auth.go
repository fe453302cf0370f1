package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/russkiih/bookapp/internal/domain"
	"github.com/russkiih/bookapp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	adminRepo   ports.AdminRepo
	sessionRepo ports.SessionRepo
	sessionTTL  time.Duration
	logger      logger.Logger
	now         func() time.Time
}

func NewAuthService(
	adminRepo ports.AdminRepo,
	sessionRepo ports.SessionRepo,
	sessionTTL time.Duration,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// EnsureAdmin creates the admin account or resets its password.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return fmt.Errorf("%w: admin email and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err = s.adminRepo.Upsert(ctx, &domain.Admin{Email: email, PasswordHash: string(hash)}); err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}

	s.logger.Info("admin account ensured", logger.String("email", email))
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = normalizeEmail(email)

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			s.logger.Warn("login for unknown admin", logger.String("email", email))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login with wrong password", logger.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	now := s.now()
	session := &domain.Session{
		Token:     token,
		TokenHash: hashToken(token),
		AdminID:   admin.ID,
		Email:     admin.Email,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err = s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("admin signed in",
		logger.Int64("admin_id", admin.ID),
		logger.String("email", admin.Email),
	)

	return session, nil
}

// Session resolves a raw cookie token. Unknown and expired tokens both yield
// domain.ErrSessionNotFound.
func (s *AuthService) Session(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetByTokenHash(ctx, hashToken(token))
	if err != nil {
		return nil, err
	}

	if session.Expired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}

	return session, nil
}

func (s *AuthService) SignOut(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return domain.ErrSessionNotFound
	}

	if err := s.sessionRepo.Delete(ctx, session.TokenHash); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.Info("admin signed out", logger.Int64("admin_id", session.AdminID))
	return nil
}

func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return n, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
