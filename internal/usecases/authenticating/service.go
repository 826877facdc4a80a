package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/etl-dashboard-api/internal/config"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/etl-dashboard-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 24 * time.Hour

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Authenticator interface {
	Login(ctx context.Context, password string) (*domain.LoginResponse, error)
	Logout(ctx context.Context, bearer string) error
	ValidateToken(ctx context.Context, bearer string) (*domain.AdminSession, error)
	Verify(ctx context.Context, bearer string) *domain.VerifyResponse
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

type Service struct {
	sessionRepo  repository.AdminSessionRepository
	passwordHash []byte
	secretKey    []byte
	sessionTTL   time.Duration
	now          func() time.Time
}

func NewService(sessionRepo repository.AdminSessionRepository, cfg *config.Config) Authenticator {
	service := &Service{
		sessionRepo: sessionRepo,
		secretKey:   []byte(cfg.SecretKey),
		sessionTTL:  cfg.Auth.SessionTTL,
		now:         time.Now,
	}

	if service.sessionTTL <= 0 {
		service.sessionTTL = defaultSessionTTL
	}

	if cfg.Auth.AdminPassword == "" {
		logrus.Warn("ADMIN_PASSWORD não configurada, login administrativo desabilitado")
		return service
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar hash da senha administrativa, login desabilitado")
		return service
	}
	service.passwordHash = hash

	return service
}

// Login confere a senha administrativa e abre uma sessão com validade de sessionTTL
func (s *Service) Login(ctx context.Context, password string) (*domain.LoginResponse, error) {
	if len(s.passwordHash) == 0 {
		return nil, NewAuthError(ErrAdminNotConfigured, apiErrors.ErrAdminNotConfigured, "Admin authentication not configured")
	}

	if password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Password required")
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Invalid password")
	}

	now := s.now()
	session, err := s.createSession(ctx, now)
	if err != nil {
		return nil, err
	}

	bearer, err := s.signSession(session, now)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithField("session_id", session.ID).Info("Sessão administrativa criada")

	return &domain.LoginResponse{
		Success:   true,
		Token:     bearer,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// createSession grava uma nova sessão; uma colisão de token gera um novo token uma única vez
func (s *Service) createSession(ctx context.Context, now time.Time) (*domain.AdminSession, error) {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		var sessionToken string
		sessionToken, err = utils.GenerateSessionToken()
		if err != nil {
			return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de sessão")
		}

		var session *domain.AdminSession
		session, err = s.sessionRepo.Create(ctx, &domain.AdminSession{
			Token:     sessionToken,
			ExpiresAt: now.Add(s.sessionTTL),
		})
		if err == nil {
			return session, nil
		}

		if !errors.Is(err, repository.ErrDuplicateSessionToken) {
			break
		}
		logrus.Warn("Colisão de token de sessão, gerando outro")
	}

	return nil, NewAuthError(errors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, "Failed to create session")
}

// Logout remove a sessão do token, mesmo que o JWT já tenha expirado
func (s *Service) Logout(ctx context.Context, bearer string) error {
	if bearer == "" {
		return nil
	}

	claims, err := s.parseClaims(bearer, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}

	if err := s.sessionRepo.DeleteByToken(ctx, claims.ID); err != nil {
		return errors.Wrap(err, "erro ao remover sessão")
	}

	return nil
}

// ValidateToken confere a assinatura do token e se a sessão ainda existe no banco
func (s *Service) ValidateToken(ctx context.Context, bearer string) (*domain.AdminSession, error) {
	if bearer == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.parseClaims(bearer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	session, err := s.sessionRepo.GetActiveByToken(ctx, claims.ID, s.now())
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar sessão")
	}
	if session == nil {
		return nil, ErrInvalidToken
	}

	return session, nil
}

// Verify nunca falha: qualquer problema com o token resulta em authenticated=false
func (s *Service) Verify(ctx context.Context, bearer string) *domain.VerifyResponse {
	session, err := s.ValidateToken(ctx, bearer)
	if err != nil {
		if !IsSessionError(err) {
			logrus.WithError(err).Warn("Erro ao verificar sessão")
		}
		return &domain.VerifyResponse{Authenticated: false}
	}

	return &domain.VerifyResponse{
		Authenticated: true,
		ExpiresAt:     &session.ExpiresAt,
	}
}

func (s *Service) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.sessionRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "erro ao remover sessões expiradas")
	}
	return removed, nil
}

func (s *Service) signSession(session *domain.AdminSession, issuedAt time.Time) (string, error) {
	claims := domain.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.Token,
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) parseClaims(bearer string, options ...jwt.ParserOption) (*domain.SessionClaims, error) {
	options = append(options, jwt.WithTimeFunc(s.now))

	token, err := jwt.ParseWithClaims(strings.TrimSpace(bearer), &domain.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, options...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.SessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
