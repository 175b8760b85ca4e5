package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timo-intelligence-be/internal/config"
	"timo-intelligence-be/internal/dto"
	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/internal/pkg/serverutils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginAttempts = 5
	lockoutDuration  = 15 * time.Minute
	sessionDuration  = 8 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("too many failed attempts, try again later")
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error)
	Verify(tokenString string) (string, error)
}

// authService authenticates the single admin account. Failed attempts
// are tracked per client IP and lock the caller out after five misses.
type authService struct {
	cfg      config.AdminConfig
	attempts *cache.Cache
	log      logger.ILogger
}

func NewAuthService(cfg config.AdminConfig, log logger.ILogger) IAuthService {
	return &authService{
		cfg:      cfg,
		attempts: cache.New(lockoutDuration, 5*time.Minute),
		log:      log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error) {
	attemptKey := "login:" + ipAddress

	if count, found := s.attempts.Get(attemptKey); found && count.(int) >= maxLoginAttempts {
		s.log.Warn("Auth", "Login blocked by lockout", map[string]interface{}{"ip": ipAddress})
		return nil, ErrAccountLocked
	}

	if !s.checkCredentials(req.Username, req.Password) {
		count, err := s.attempts.IncrementInt(attemptKey, 1)
		if err != nil {
			s.attempts.Set(attemptKey, 1, lockoutDuration)
			count = 1
		}
		s.log.Warn("Auth", "Failed login attempt", map[string]interface{}{"ip": ipAddress, "attempts": count})
		return nil, ErrInvalidCredentials
	}

	s.attempts.Delete(attemptKey)

	now := time.Now()
	expiresAt := now.Add(sessionDuration)
	token, err := serverutils.SignToken(jwt.RegisteredClaims{
		Subject:   req.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	s.log.Info("Auth", "Admin logged in", map[string]interface{}{"ip": ipAddress})
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) checkCredentials(username, password string) bool {
	if username != s.cfg.Username {
		// Burn a comparison anyway so username misses cost the same.
		_ = bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) == nil
}

func (s *authService) Verify(tokenString string) (string, error) {
	claims, err := serverutils.ParseToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
