package authenticating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backendclient"
	"github.com/vfg2006/insights-dashboard/infrastructure/backend/mocks"
	"github.com/vfg2006/insights-dashboard/internal/domain"
)

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(integrator)
	ctx := context.Background()

	user := domain.User{ID: 1, Name: "Ana", Email: "a@b.com"}
	gomock.InOrder(
		integrator.EXPECT().Login(ctx, "a@b.com", "x").Return(&domain.LoginResult{AccessToken: "T1", TokenType: "bearer", User: user}, nil),
		integrator.EXPECT().SetAuthToken("T1"),
	)

	got, err := service.Login(ctx, " A@B.com ", "x")
	require.NoError(t, err)
	assert.Equal(t, user, *got)
}

func TestService_LoginFailure(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(m *mocks.MockIntegrator)
	}{
		{
			name:     "campos vazios",
			email:    " ",
			password: "x",
			setup:    func(m *mocks.MockIntegrator) {},
		},
		{
			name:     "credenciais inválidas",
			email:    "a@b.com",
			password: "errada",
			setup: func(m *mocks.MockIntegrator) {
				m.EXPECT().Login(gomock.Any(), "a@b.com", "errada").
					Return(nil, &backendclient.APIError{Err: backendclient.ErrAuthentication, StatusCode: 401, Detail: "Incorrect email or password"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			integrator := mocks.NewMockIntegrator(ctrl)
			tt.setup(integrator)

			_, err := NewService(integrator).Login(context.Background(), tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, MsgLoginFailed, UserMessage(err, ""))
			assert.NotContains(t, UserMessage(err, ""), "Incorrect")
		})
	}
}

func TestService_RegisterThenLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(integrator)
	ctx := context.Background()

	registration := domain.Registration{Name: "Ana", Email: "a@b.com", Password: "x"}
	user := domain.User{ID: 2, Name: "Ana", Email: "a@b.com"}

	gomock.InOrder(
		integrator.EXPECT().RegisterUser(ctx, registration).Return(&user, nil),
		integrator.EXPECT().Login(ctx, "a@b.com", "x").Return(&domain.LoginResult{AccessToken: "T2", User: user}, nil),
		integrator.EXPECT().SetAuthToken("T2"),
	)

	got, err := service.Register(ctx, registration)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)
}

func TestService_RegisterAbortsOnConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(integrator)

	integrator.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(nil, &backendclient.APIError{Err: backendclient.ErrConflict, StatusCode: 400})

	_, err := service.Register(context.Background(), domain.Registration{Name: "Ana", Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegistrationFailed)
	assert.Equal(t, MsgRegisterFailed, UserMessage(err, ""))
}

func TestService_RegisterLoginFailureUsesSameMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(integrator)

	integrator.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 3}, nil)
	integrator.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &backendclient.APIError{Err: backendclient.ErrNetwork})

	_, err := service.Register(context.Background(), domain.Registration{Name: "Ana", Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginAfterRegister)
	assert.Equal(t, MsgRegisterFailed, UserMessage(err, ""))
}

func TestService_RestoreAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(integrator)
	ctx := context.Background()

	gomock.InOrder(
		integrator.EXPECT().SetAuthToken("T1"),
		integrator.EXPECT().CurrentUser(ctx).Return(&domain.User{ID: 1}, nil),
		integrator.EXPECT().SetAuthToken("T-old"),
		integrator.EXPECT().CurrentUser(ctx).Return(nil, &backendclient.APIError{Err: backendclient.ErrAuthentication}),
		integrator.EXPECT().SetAuthToken(""),
		integrator.EXPECT().SetAuthToken(""),
	)

	user, err := service.Restore(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	_, err = service.Restore(ctx, "T-old")
	require.Error(t, err)
	assert.True(t, IsCredentialsError(err))
	assert.Equal(t, MsgSessionExpired, UserMessage(err, ""))

	service.Logout()
}
