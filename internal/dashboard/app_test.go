package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backendclient"
	"github.com/vfg2006/insights-dashboard/infrastructure/backend/mocks"
	"github.com/vfg2006/insights-dashboard/internal/domain"
	"github.com/vfg2006/insights-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/insights-dashboard/internal/usecases/insighting"
	"github.com/vfg2006/insights-dashboard/internal/usecases/integrating"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func fixedClock() time.Time { return fixedNow }

func sampleIntegrations() []domain.Integration {
	return []domain.Integration{
		{ID: 1, Credentials: domain.FacebookCredentials{AccountID: "act_1", BusinessID: strPtr("biz")}},
		{ID: 2, Credentials: domain.GoogleCredentials{AccountID: "pub-1"}},
	}
}

func sampleNotifications() []domain.SyncNotification {
	return []domain.SyncNotification{
		{ID: 30, Level: domain.NotificationError, Message: "c"},
		{ID: 20, Level: domain.NotificationWarning, Message: "b"},
		{ID: 10, Level: domain.NotificationInfo, Message: "a"},
	}
}

// loggedInApp devolve um App já autenticado; FetchMetrics aceita qualquer número de chamadas
func loggedInApp(t *testing.T, integrator *mocks.MockIntegrator) *App {
	t.Helper()

	integrator.EXPECT().FetchMetrics(gomock.Any(), gomock.Any()).Return(&domain.MetricsResponse{TotalSpend: 100}, nil).AnyTimes()
	integrator.EXPECT().Login(gomock.Any(), "a@b.com", "x").Return(&domain.LoginResult{
		AccessToken: "T1",
		TokenType:   "bearer",
		User:        domain.User{ID: 1, Name: "Ana", Email: "a@b.com"},
	}, nil)
	integrator.EXPECT().SetAuthToken("T1")
	integrator.EXPECT().ListIntegrations(gomock.Any()).Return(sampleIntegrations(), nil)
	integrator.EXPECT().ListNotifications(gomock.Any()).Return(sampleNotifications(), nil)

	app := NewApp(integrator, WithClock(fixedClock))
	t.Cleanup(app.Close)

	require.NoError(t, app.Login(context.Background(), "a@b.com", "x"))
	app.WaitMetrics()
	return app
}

func TestApp_LoginLoadsUserData(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	app := loggedInApp(t, integrator)
	snapshot := app.Snapshot()

	require.NotNil(t, snapshot.User)
	assert.Equal(t, "Ana", snapshot.User.Name)
	assert.Len(t, snapshot.Integrations, 2)
	assert.Len(t, snapshot.Notifications, 3)
	assert.Empty(t, snapshot.LoginError)
	assert.Equal(t, insighting.StatusSuccess, snapshot.Metrics.Status)
	assert.Equal(t, 100.0, snapshot.Metrics.Data.TotalSpend)
	assert.Equal(t, "2024-03-01 até 2024-03-15 (15 dias)", snapshot.RangeLabel)
}

func TestApp_LogoutClearsUserState(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	app := loggedInApp(t, integrator)
	_, err := app.StartEdit(1)
	require.NoError(t, err)

	integrator.EXPECT().SetAuthToken("")
	app.Logout()

	snapshot := app.Snapshot()
	assert.Nil(t, snapshot.User)
	assert.NotNil(t, snapshot.Integrations)
	assert.Empty(t, snapshot.Integrations)
	assert.NotNil(t, snapshot.Notifications)
	assert.Empty(t, snapshot.Notifications)
	assert.Empty(t, snapshot.NotificationError)
	assert.Nil(t, snapshot.Editing)
	assert.Equal(t, insighting.StatusIdle, snapshot.Metrics.Status)
	assert.Nil(t, snapshot.Metrics.Data)
	assert.False(t, app.Authenticated())
}

func TestApp_LoginFailureShowsGenericMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	integrator.EXPECT().Login(gomock.Any(), "a@b.com", "errada").
		Return(nil, &backendclient.APIError{Err: backendclient.ErrAuthentication, StatusCode: 401, Detail: "Incorrect email or password"})

	app := NewApp(integrator, WithClock(fixedClock))
	defer app.Close()

	err := app.Login(context.Background(), "a@b.com", "errada")
	require.Error(t, err)

	snapshot := app.Snapshot()
	assert.Equal(t, authenticating.MsgLoginFailed, snapshot.LoginError)
	assert.Nil(t, snapshot.User)
	assert.Equal(t, insighting.StatusIdle, snapshot.Metrics.Status)
}

func TestApp_RegisterFailureShowsCombinedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	integrator.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(nil, &backendclient.APIError{Err: backendclient.ErrConflict, StatusCode: 400})

	app := NewApp(integrator, WithClock(fixedClock))
	defer app.Close()

	err := app.Register(context.Background(), domain.Registration{Name: "Ana", Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, authenticating.MsgRegisterFailed, app.Snapshot().LoginError)
}

func TestApp_NotificationsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	integrator.EXPECT().FetchMetrics(gomock.Any(), gomock.Any()).Return(&domain.MetricsResponse{}, nil).AnyTimes()
	integrator.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.LoginResult{AccessToken: "T1", User: domain.User{ID: 1}}, nil)
	integrator.EXPECT().SetAuthToken("T1")
	integrator.EXPECT().ListIntegrations(gomock.Any()).Return(sampleIntegrations(), nil)
	integrator.EXPECT().ListNotifications(gomock.Any()).Return(nil, &backendclient.APIError{Err: backendclient.ErrNetwork})

	app := NewApp(integrator, WithClock(fixedClock))
	defer app.Close()

	require.NoError(t, app.Login(context.Background(), "a@b.com", "x"))
	app.WaitMetrics()

	snapshot := app.Snapshot()
	assert.Equal(t, MsgNotificationsFailed, snapshot.NotificationError)
	assert.False(t, snapshot.NotificationsLoading)
	assert.Len(t, snapshot.Integrations, 2)
}

func TestApp_LogoutDuringNotificationsLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	app := loggedInApp(t, integrator)

	integrator.EXPECT().SetAuthToken("")
	integrator.EXPECT().ListNotifications(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]domain.SyncNotification, error) {
			assert.True(t, app.Snapshot().NotificationsLoading)
			app.Logout()
			return sampleNotifications(), nil
		})

	require.NoError(t, app.LoadNotifications(context.Background()))

	snapshot := app.Snapshot()
	assert.False(t, snapshot.NotificationsLoading)
	assert.Empty(t, snapshot.Notifications)

	assert.ErrorIs(t, app.LoadNotifications(context.Background()), ErrNotAuthenticated)
	assert.False(t, app.Snapshot().NotificationsLoading)
}

func TestApp_MarkNotificationRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	app := loggedInApp(t, integrator)
	ctx := context.Background()

	t.Run("falha mantém a lista", func(t *testing.T) {
		integrator.EXPECT().MarkNotificationRead(ctx, 20).Return(&backendclient.APIError{Err: backendclient.ErrNetwork})

		require.Error(t, app.MarkNotificationRead(ctx, 20))
		assert.Equal(t, sampleNotifications(), app.Snapshot().Notifications)
	})

	t.Run("sucesso remove apenas o id", func(t *testing.T) {
		integrator.EXPECT().MarkNotificationRead(ctx, 20).Return(nil)

		require.NoError(t, app.MarkNotificationRead(ctx, 20))

		notifications := app.Snapshot().Notifications
		require.Len(t, notifications, 2)
		assert.Equal(t, sampleNotifications()[0], notifications[0])
		assert.Equal(t, sampleNotifications()[2], notifications[1])
	})
}

func TestApp_DeleteIntegration(t *testing.T) {
	ctx := context.Background()

	t.Run("id já removido conta como sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := mocks.NewMockIntegrator(ctrl)
		app := loggedInApp(t, integrator)

		_, err := app.StartEdit(2)
		require.NoError(t, err)

		integrator.EXPECT().DeleteIntegration(ctx, 2).Return(&backendclient.APIError{Err: backendclient.ErrNotFound, StatusCode: 404})
		integrator.EXPECT().ListIntegrations(ctx).Return(sampleIntegrations()[:1], nil)

		require.NoError(t, app.DeleteIntegration(ctx, 2))
		app.WaitMetrics()

		snapshot := app.Snapshot()
		assert.Len(t, snapshot.Integrations, 1)
		assert.Nil(t, snapshot.Editing)
	})

	t.Run("outros erros não recarregam", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := mocks.NewMockIntegrator(ctrl)
		app := loggedInApp(t, integrator)

		integrator.EXPECT().DeleteIntegration(ctx, 1).Return(&backendclient.APIError{Err: backendclient.ErrUnexpectedStatus, StatusCode: 500})

		require.Error(t, app.DeleteIntegration(ctx, 1))
		snapshot := app.Snapshot()
		assert.Len(t, snapshot.Integrations, 2)
		assert.Equal(t, integrating.MsgDeleteFailed, snapshot.Feedback)
	})
}

func TestApp_ConnectFacebook(t *testing.T) {
	ctx := context.Background()

	t.Run("sucesso limpa o formulário e recarrega", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := mocks.NewMockIntegrator(ctrl)
		app := loggedInApp(t, integrator)

		created := &domain.Integration{ID: 3, Credentials: domain.FacebookCredentials{AccountID: "act_3"}}
		gomock.InOrder(
			integrator.EXPECT().ConnectFacebook(ctx, 0, domain.FacebookConnect{AccountID: "act_3", AccessToken: "tok"}).Return(created, nil),
			integrator.EXPECT().ListIntegrations(ctx).Return(append(sampleIntegrations(), *created), nil),
		)

		form := &integrating.FacebookConnectForm{AccountID: "act_3", AccessToken: "tok"}
		require.NoError(t, app.ConnectFacebook(ctx, form))
		app.WaitMetrics()

		assert.Equal(t, integrating.FacebookConnectForm{}, *form)
		snapshot := app.Snapshot()
		assert.Equal(t, integrating.MsgFacebookConnected, snapshot.Feedback)
		assert.Len(t, snapshot.Integrations, 3)
	})

	t.Run("validação local não chama o servidor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := mocks.NewMockIntegrator(ctrl)
		app := loggedInApp(t, integrator)

		form := &integrating.FacebookConnectForm{AccountID: "act_3"}
		err := app.ConnectFacebook(ctx, form)

		var validationErr *integrating.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Preencha os campos obrigatórios: access_token", app.Snapshot().Feedback)
		assert.Equal(t, "act_3", form.AccountID)
	})

	t.Run("falha do servidor mantém o formulário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := mocks.NewMockIntegrator(ctrl)
		app := loggedInApp(t, integrator)

		integrator.EXPECT().ConnectFacebook(ctx, 0, gomock.Any()).Return(nil, &backendclient.APIError{Err: backendclient.ErrValidation, StatusCode: 400})

		form := &integrating.FacebookConnectForm{AccountID: "act_3", AccessToken: "tok"}
		require.Error(t, app.ConnectFacebook(ctx, form))
		assert.Equal(t, integrating.MsgFacebookConnectFailed, app.Snapshot().Feedback)
		assert.Equal(t, "tok", form.AccessToken)
	})
}

func TestApp_ConnectRequiresLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	app := NewApp(integrator, WithClock(fixedClock))
	defer app.Close()

	err := app.ConnectAdSense(context.Background(), &integrating.AdSenseConnectForm{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestApp_EditFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	app := loggedInApp(t, integrator)
	ctx := context.Background()

	_, err := app.StartEdit(99)
	assert.ErrorIs(t, err, backendclient.ErrNotFound)

	editor, err := app.StartEdit(1)
	require.NoError(t, err)
	require.NotNil(t, app.Snapshot().Editing)

	app.CancelEdit()
	assert.Nil(t, app.Snapshot().Editing)
	assert.Nil(t, app.Editor())

	editor, err = app.StartEdit(1)
	require.NoError(t, err)
	editor.Facebook.AccessToken = "novo"

	integrator.EXPECT().UpdateFacebookIntegration(ctx, 1, domain.FacebookUpdate{
		AccountID:   strPtr("act_1"),
		AccessToken: strPtr("novo"),
		BusinessID:  strPtr("biz"),
	}).Return(nil, errors.New("boom"))

	require.Error(t, app.SaveEdit(ctx))
	snapshot := app.Snapshot()
	assert.Equal(t, integrating.MsgSaveFailed, snapshot.EditError)
	assert.NotNil(t, snapshot.Editing)

	gomock.InOrder(
		integrator.EXPECT().UpdateFacebookIntegration(ctx, 1, gomock.Any()).Return(&sampleIntegrations()[0], nil),
		integrator.EXPECT().ListIntegrations(ctx).Return(sampleIntegrations(), nil),
	)

	require.NoError(t, app.SaveEdit(ctx))
	app.WaitMetrics()

	snapshot = app.Snapshot()
	assert.Nil(t, snapshot.Editing)
	assert.Empty(t, snapshot.EditError)
}

func TestApp_SetRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	app := loggedInApp(t, integrator)

	require.NoError(t, app.SetRange("2024-02-01", "2024-02-29"))
	app.WaitMetrics()

	snapshot := app.Snapshot()
	assert.Equal(t, "2024-02-01 até 2024-02-29 (29 dias)", snapshot.RangeLabel)
	assert.Equal(t, "2024-02-01", snapshot.Metrics.Query.Range.StartDate())
	assert.Equal(t, insighting.StatusSuccess, snapshot.Metrics.Status)

	require.NoError(t, app.SetRange("2024-02-10", "2024-02-01"))
	app.WaitMetrics()
	snapshot = app.Snapshot()
	assert.Equal(t, insighting.StatusError, snapshot.Metrics.Status)
	assert.Equal(t, insighting.MsgInvalidRange, snapshot.Metrics.Error)
	require.NotNil(t, snapshot.Metrics.Data)

	assert.Error(t, app.SetRange("01/02/2024", "2024-02-01"))
}

func TestApp_DefaultRangeDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	app := NewApp(integrator, WithClock(fixedClock), WithDefaultRangeDays(7))
	defer app.Close()

	assert.Equal(t, "2024-03-09 até 2024-03-15 (7 dias)", app.RangeLabel())
}

func TestApp_SyncMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)
	app := loggedInApp(t, integrator)
	ctx := context.Background()

	integrator.EXPECT().SyncMetrics(ctx, fixedNow).Return(&domain.DailyMetric{MetricDate: fixedNow, Spend: 10}, nil)

	metric, err := app.SyncMetrics(ctx, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 10.0, metric.Spend)
	app.WaitMetrics()

	integrator.EXPECT().SyncMetrics(ctx, fixedNow).Return(nil, &backendclient.APIError{Err: backendclient.ErrNetwork})
	_, err = app.SyncMetrics(ctx, fixedNow)
	require.Error(t, err)
	assert.Equal(t, MsgSyncFailed, app.Snapshot().Feedback)
}
