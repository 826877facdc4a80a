package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/etl-dashboard-api/internal/config"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "segredo-de-teste"

var authNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, password string) (*Service, *mocks.MockAdminSessionRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdminSessionRepository(ctrl)

	service := &Service{
		sessionRepo: repo,
		secretKey:   []byte(testSecret),
		sessionTTL:  defaultSessionTTL,
		now:         func() time.Time { return authNow },
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		service.passwordHash = hash
	}

	return service, repo
}

func TestNewService(t *testing.T) {
	t.Run("Sem senha configurada o login fica desabilitado", func(t *testing.T) {
		service := NewService(nil, &config.Config{}).(*Service)

		assert.Empty(t, service.passwordHash)
		assert.Equal(t, defaultSessionTTL, service.sessionTTL)
	})

	t.Run("A senha é mantida apenas como hash", func(t *testing.T) {
		cfg := &config.Config{SecretKey: testSecret}
		cfg.Auth.AdminPassword = "admin123"
		cfg.Auth.SessionTTL = time.Hour

		service := NewService(nil, cfg).(*Service)

		assert.NotEqual(t, []byte("admin123"), service.passwordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword(service.passwordHash, []byte("admin123")))
		assert.Equal(t, time.Hour, service.sessionTTL)
	})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name          string
		configured    string
		password      string
		expectedError error
		expectedCode  string
	}{
		{
			name:          "Senha administrativa não configurada",
			password:      "qualquer",
			expectedError: ErrAdminNotConfigured,
			expectedCode:  apiErrors.ErrAdminNotConfigured,
		},
		{
			name:          "Senha ausente",
			configured:    "admin123",
			expectedError: ErrMissingRequiredData,
			expectedCode:  apiErrors.ErrMissingRequiredData,
		},
		{
			name:          "Senha incorreta",
			configured:    "admin123",
			password:      "errada",
			expectedError: ErrInvalidCredentials,
			expectedCode:  apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t, tt.configured)

			response, err := service.Login(context.Background(), tt.password)

			assert.Nil(t, response)
			assert.ErrorIs(t, err, tt.expectedError)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.expectedCode, authErr.Code)
		})
	}

	t.Run("Senha correta cria a sessão e devolve um token assinado", func(t *testing.T) {
		service, repo := newTestService(t, "admin123")

		var stored *domain.AdminSession
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, session *domain.AdminSession) (*domain.AdminSession, error) {
				stored = session
				session.ID = 1
				session.CreatedAt = authNow
				return session, nil
			})

		response, err := service.Login(context.Background(), "admin123")

		require.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, authNow.Add(24*time.Hour), response.ExpiresAt)
		assert.Len(t, stored.Token, 64)

		claims, err := service.parseClaims(response.Token)
		require.NoError(t, err)
		assert.Equal(t, stored.Token, claims.ID)
		assert.Equal(t, authNow.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("Colisão de token gera um novo token", func(t *testing.T) {
		service, repo := newTestService(t, "admin123")

		var tokens []string
		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, session *domain.AdminSession) (*domain.AdminSession, error) {
					tokens = append(tokens, session.Token)
					return nil, repository.ErrDuplicateSessionToken
				}),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, session *domain.AdminSession) (*domain.AdminSession, error) {
					tokens = append(tokens, session.Token)
					session.ID = 2
					return session, nil
				}),
		)

		response, err := service.Login(context.Background(), "admin123")

		require.NoError(t, err)
		assert.True(t, response.Success)
		require.Len(t, tokens, 2)
		assert.NotEqual(t, tokens[0], tokens[1])
	})

	t.Run("Colisões seguidas falham", func(t *testing.T) {
		service, repo := newTestService(t, "admin123")
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicateSessionToken).Times(2)

		_, err := service.Login(context.Background(), "admin123")

		assert.ErrorIs(t, err, repository.ErrDuplicateSessionToken)
	})

	t.Run("Falha ao gravar a sessão", func(t *testing.T) {
		service, repo := newTestService(t, "admin123")
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))

		_, err := service.Login(context.Background(), "admin123")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, authErr.Code)
	})
}

func signedToken(t *testing.T, secret, sessionToken string, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionToken,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	session := &domain.AdminSession{ID: 3, Token: "sessao-ativa", ExpiresAt: authNow.Add(time.Hour)}

	tests := []struct {
		name          string
		bearer        func(t *testing.T) string
		mockSetup     func(repo *mocks.MockAdminSessionRepository)
		expectedError error
	}{
		{
			name:          "Token ausente",
			bearer:        func(t *testing.T) string { return "" },
			expectedError: ErrMissingToken,
		},
		{
			name:          "Token malformado",
			bearer:        func(t *testing.T) string { return "abc.def" },
			expectedError: ErrInvalidToken,
		},
		{
			name: "Assinado com outra chave",
			bearer: func(t *testing.T) string {
				return signedToken(t, "outra-chave", "sessao-ativa", authNow.Add(time.Hour))
			},
			expectedError: ErrInvalidToken,
		},
		{
			name: "JWT expirado",
			bearer: func(t *testing.T) string {
				return signedToken(t, testSecret, "sessao-ativa", authNow.Add(-time.Minute))
			},
			expectedError: ErrExpiredToken,
		},
		{
			name: "Sessão removida do banco",
			bearer: func(t *testing.T) string {
				return signedToken(t, testSecret, "sessao-removida", authNow.Add(time.Hour))
			},
			mockSetup: func(repo *mocks.MockAdminSessionRepository) {
				repo.EXPECT().GetActiveByToken(gomock.Any(), "sessao-removida", authNow).Return(nil, nil)
			},
			expectedError: ErrInvalidToken,
		},
		{
			name: "Sessão ativa",
			bearer: func(t *testing.T) string {
				return signedToken(t, testSecret, "sessao-ativa", authNow.Add(time.Hour))
			},
			mockSetup: func(repo *mocks.MockAdminSessionRepository) {
				repo.EXPECT().GetActiveByToken(gomock.Any(), "sessao-ativa", authNow).Return(session, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t, "admin123")
			if tt.mockSetup != nil {
				tt.mockSetup(repo)
			}

			result, err := service.ValidateToken(context.Background(), tt.bearer(t))

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.True(t, IsSessionError(err))
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, session, result)
		})
	}
}

func TestVerify(t *testing.T) {
	t.Run("Token inválido não é erro", func(t *testing.T) {
		service, _ := newTestService(t, "admin123")

		response := service.Verify(context.Background(), "invalido")

		assert.False(t, response.Authenticated)
		assert.Nil(t, response.ExpiresAt)
	})

	t.Run("Sessão ativa devolve a expiração", func(t *testing.T) {
		service, repo := newTestService(t, "admin123")
		expiresAt := authNow.Add(2 * time.Hour)
		repo.EXPECT().GetActiveByToken(gomock.Any(), "sessao", authNow).
			Return(&domain.AdminSession{Token: "sessao", ExpiresAt: expiresAt}, nil)

		response := service.Verify(context.Background(), signedToken(t, testSecret, "sessao", expiresAt))

		assert.True(t, response.Authenticated)
		assert.Equal(t, &expiresAt, response.ExpiresAt)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Remove a sessão mesmo com o token expirado", func(t *testing.T) {
		service, repo := newTestService(t, "admin123")
		repo.EXPECT().DeleteByToken(gomock.Any(), "sessao-antiga").Return(nil)

		err := service.Logout(context.Background(), signedToken(t, testSecret, "sessao-antiga", authNow.Add(-time.Hour)))

		assert.NoError(t, err)
	})

	t.Run("Sem token não consulta o banco", func(t *testing.T) {
		service, _ := newTestService(t, "admin123")

		assert.NoError(t, service.Logout(context.Background(), ""))
		assert.NoError(t, service.Logout(context.Background(), "lixo"))
	})
}

func TestCleanupExpiredSessions(t *testing.T) {
	service, repo := newTestService(t, "")
	repo.EXPECT().DeleteExpired(gomock.Any(), authNow).Return(int64(4), nil)

	removed, err := service.CleanupExpiredSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
