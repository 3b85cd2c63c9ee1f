package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ksuvorov/bankledger/infra/cache"
	"github.com/ksuvorov/bankledger/internal/fixtures/mocks"
	"github.com/ksuvorov/bankledger/pkg/config"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/dto"
	"github.com/ksuvorov/bankledger/pkg/service/auth"
	"github.com/ksuvorov/bankledger/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newService(t *testing.T) (*auth.Service, *mocks.ClientRepository) {
	t.Helper()
	uow := new(mocks.UnitOfWork)
	clients := new(mocks.ClientRepository)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	uow.On("Clients").Return(clients)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Jwt{Secret: testSecret, Expiry: time.Hour}
	svc := auth.New(uow, cache.NewMemoryCache(), cfg, time.Minute, logger)
	return svc, clients
}

func TestRegister(t *testing.T) {
	svc, clients := newService(t)

	clients.On("GetByEmail", mock.Anything, "new@example.com").
		Return(nil, domain.ErrClientNotFound)
	clients.On("Create", mock.Anything, mock.MatchedBy(func(c dto.ClientCreate) bool {
		return c.Email == "new@example.com" &&
			c.Role == domain.RoleClient &&
			utils.CheckPasswordHash("s3cret-pass", c.PasswordHash)
	})).Return(nil)
	clients.On("Get", mock.Anything, mock.Anything).Return(&dto.ClientRead{
		ID:    uuid.New(),
		Email: "new@example.com",
		Role:  domain.RoleClient,
	}, nil)

	c, err := svc.Register(context.Background(), "new@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.RoleClient, c.Role)
	clients.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, clients := newService(t)

	clients.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&dto.ClientRead{ID: uuid.New(), Email: "taken@example.com"}, nil)

	c, err := svc.Register(context.Background(), "taken@example.com", "s3cret-pass")
	require.ErrorIs(t, err, domain.ErrClientExists)
	assert.Nil(t, c)
	clients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	svc, clients := newService(t)
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	clientID := uuid.New()

	clients.On("GetByEmail", mock.Anything, "client@example.com").
		Return(&dto.ClientRead{
			ID:           clientID,
			Email:        "client@example.com",
			PasswordHash: hash,
			Role:         domain.RoleClient,
		}, nil)

	token, err := svc.Login(context.Background(), "client@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, clientID.String(), claims["client_id"])
	assert.Equal(t, "CLIENT", claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, clients := newService(t)
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)

	clients.On("GetByEmail", mock.Anything, "client@example.com").
		Return(&dto.ClientRead{
			ID:           uuid.New(),
			Email:        "client@example.com",
			PasswordHash: hash,
		}, nil)

	_, err = svc.Login(context.Background(), "client@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, clients := newService(t)

	clients.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, domain.ErrClientNotFound)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestProfile_CacheMissThenStore(t *testing.T) {
	svc, clients := newService(t)
	clientID := uuid.New()

	clients.On("Get", mock.Anything, clientID).Return(&dto.ClientRead{
		ID:    clientID,
		Email: "client@example.com",
		Role:  domain.RoleClient,
	}, nil).Once()

	email, err := svc.Profile(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", email)

	// second call is served from the cache
	email, err = svc.Profile(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", email)
	clients.AssertNumberOfCalls(t, "Get", 1)
}

func TestCurrentPrincipal(t *testing.T) {
	svc, _ := newService(t)
	clientID := uuid.New()

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["client_id"] = clientID.String()
	claims["role"] = "ADMIN"

	p, err := svc.CurrentPrincipal(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, p.ClientID)
	assert.Equal(t, domain.RoleAdmin, p.Role)
}

func TestCurrentPrincipal_MissingClaims(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CurrentPrincipal(jwt.New(jwt.SigningMethodHS256))
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEnsureAdmin(t *testing.T) {
	svc, clients := newService(t)

	clients.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(nil, domain.ErrClientNotFound)
	clients.On("Create", mock.Anything, mock.MatchedBy(func(c dto.ClientCreate) bool {
		return c.Email == "admin@example.com" && c.Role == domain.RoleAdmin
	})).Return(nil)

	err := svc.EnsureAdmin(context.Background(), "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	clients.AssertExpectations(t)
}

func TestEnsureAdmin_AlreadyExists(t *testing.T) {
	svc, clients := newService(t)

	clients.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(&dto.ClientRead{ID: uuid.New(), Email: "admin@example.com"}, nil)

	err := svc.EnsureAdmin(context.Background(), "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	clients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnsureAdmin_Unconfigured(t *testing.T) {
	svc, clients := newService(t)

	err := svc.EnsureAdmin(context.Background(), "", "")
	require.NoError(t, err)
	clients.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}
