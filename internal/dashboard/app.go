package dashboard

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend"
	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backendclient"
	"github.com/vfg2006/insights-dashboard/internal/domain"
	"github.com/vfg2006/insights-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/insights-dashboard/internal/usecases/insighting"
	"github.com/vfg2006/insights-dashboard/internal/usecases/integrating"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

const (
	MsgNotificationsFailed = "Não foi possível carregar as notificações."
	MsgIntegrationsFailed  = "Não foi possível carregar as integrações."
	MsgSyncFailed          = "Não foi possível sincronizar as métricas do dia."
)

var ErrNotAuthenticated = errors.New("usuário não autenticado")

// Snapshot é uma cópia do estado visível do dashboard
type Snapshot struct {
	User *domain.User

	Integrations      []domain.Integration
	IntegrationsError string

	Notifications        []domain.SyncNotification
	NotificationsLoading bool
	NotificationError    string

	Editing   *domain.Integration
	EditError string

	Range      domain.DateRange
	RangeLabel string
	Metrics    insighting.State

	LoginError string
	Feedback   string
}

type Option func(*App)

func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithDefaultRangeDays usa os últimos n dias como período inicial; zero mantém o mês corrente
func WithDefaultRangeDays(days int) Option {
	return func(a *App) {
		a.defaultDays = days
	}
}

func WithMetricsTimeout(timeout time.Duration) Option {
	return func(a *App) {
		a.metricsTimeout = timeout
	}
}

// App compõe autenticação, integrações, notificações e métricas.
// Todas as operações podem ser chamadas de goroutines diferentes.
type App struct {
	integrator backend.Integrator
	auth       authenticating.Authenticator
	loader     *insighting.Loader

	now            func() time.Time
	defaultDays    int
	metricsTimeout time.Duration

	mu sync.Mutex
	// epoch muda a cada login/logout; respostas de uma sessão anterior são descartadas
	epoch                uint64
	user                 *domain.User
	integrations         []domain.Integration
	integrationsError    string
	notifications        []domain.SyncNotification
	notificationsLoading bool
	notificationError    string
	editor               *integrating.Editor
	editError            string
	dateRange            domain.DateRange
	loginError           string
	feedback             string
}

func NewApp(integrator backend.Integrator, opts ...Option) *App {
	app := &App{
		integrator:    integrator,
		auth:          authenticating.NewService(integrator),
		now:           time.Now,
		integrations:  []domain.Integration{},
		notifications: []domain.SyncNotification{},
	}

	for _, opt := range opts {
		opt(app)
	}

	app.dateRange = app.initialRange()
	app.loader = insighting.NewLoader(
		integrator,
		domain.MetricsQuery{Range: app.dateRange},
		false,
		insighting.WithTimeout(app.metricsTimeout),
	)

	return app
}

func (a *App) initialRange() domain.DateRange {
	now := a.now()
	if a.defaultDays > 0 {
		return domain.DateRange{Start: now.AddDate(0, 0, -(a.defaultDays - 1)), End: now}
	}
	return domain.DefaultDateRange(now)
}

func (a *App) Login(ctx context.Context, email, password string) error {
	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.mu.Lock()
		a.loginError = authenticating.UserMessage(err, authenticating.MsgLoginFailed)
		a.mu.Unlock()
		return err
	}

	a.startSession(ctx, user)
	return nil
}

// Register cria a conta e entra com ela em seguida
func (a *App) Register(ctx context.Context, registration domain.Registration) error {
	user, err := a.auth.Register(ctx, registration)
	if err != nil {
		a.mu.Lock()
		a.loginError = authenticating.UserMessage(err, authenticating.MsgRegisterFailed)
		a.mu.Unlock()
		return err
	}

	a.startSession(ctx, user)
	return nil
}

// Restore retoma uma sessão a partir de um token já emitido
func (a *App) Restore(ctx context.Context, token string) error {
	user, err := a.auth.Restore(ctx, token)
	if err != nil {
		a.mu.Lock()
		a.loginError = authenticating.UserMessage(err, authenticating.MsgLoginFailed)
		a.mu.Unlock()
		return err
	}

	a.startSession(ctx, user)
	return nil
}

func (a *App) startSession(ctx context.Context, user *domain.User) {
	a.mu.Lock()
	a.epoch++
	a.user = user
	a.loginError = ""
	a.feedback = ""
	a.mu.Unlock()

	a.loader.SetEnabled(true)

	// integrações e notificações são independentes
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = a.LoadIntegrations(ctx)
	}()
	go func() {
		defer wg.Done()
		_ = a.LoadNotifications(ctx)
	}()
	wg.Wait()
}

// Logout limpa o token e todo o estado do usuário
func (a *App) Logout() {
	a.auth.Logout()

	a.mu.Lock()
	a.epoch++
	a.user = nil
	a.integrations = []domain.Integration{}
	a.integrationsError = ""
	a.notifications = []domain.SyncNotification{}
	a.notificationsLoading = false
	a.notificationError = ""
	a.editor = nil
	a.editError = ""
	a.feedback = ""
	a.mu.Unlock()

	a.loader.SetEnabled(false)
	a.loader.Reset()
}

func (a *App) currentEpoch() (uint64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.epoch, a.user != nil
}

func (a *App) LoadIntegrations(ctx context.Context) error {
	epoch, loggedIn := a.currentEpoch()
	if !loggedIn {
		return ErrNotAuthenticated
	}

	integrations, err := a.integrator.ListIntegrations(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if epoch != a.epoch {
		return nil
	}

	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: failed to load integrations")
		a.integrationsError = MsgIntegrationsFailed
		return err
	}

	a.integrations = integrations
	a.integrationsError = ""
	return nil
}

func (a *App) LoadNotifications(ctx context.Context) error {
	// a sessão é conferida junto com a marcação de carregamento
	a.mu.Lock()
	if a.user == nil {
		a.mu.Unlock()
		return ErrNotAuthenticated
	}
	epoch := a.epoch
	a.notificationsLoading = true
	a.mu.Unlock()

	notifications, err := a.integrator.ListNotifications(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if epoch != a.epoch {
		return nil
	}

	a.notificationsLoading = false
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: failed to load notifications")
		a.notificationError = MsgNotificationsFailed
		return err
	}

	a.notifications = notifications
	a.notificationError = ""
	return nil
}

// afterIntegrationChange recarrega a lista e depois as métricas
func (a *App) afterIntegrationChange(ctx context.Context) {
	_ = a.LoadIntegrations(ctx)
	a.loader.Refetch()
}

func (a *App) setFeedback(message string) {
	a.mu.Lock()
	a.feedback = message
	a.mu.Unlock()
}

func (a *App) ConnectFacebook(ctx context.Context, form *integrating.FacebookConnectForm) error {
	if _, loggedIn := a.currentEpoch(); !loggedIn {
		return ErrNotAuthenticated
	}

	payload, err := form.Payload()
	if err != nil {
		a.setFeedback(integrating.UserMessage(err, integrating.MsgFacebookConnectFailed))
		return err
	}

	if _, err := a.integrator.ConnectFacebook(ctx, 0, payload); err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: failed to connect facebook ads")
		a.setFeedback(integrating.MsgFacebookConnectFailed)
		return err
	}

	form.Reset()
	a.setFeedback(integrating.MsgFacebookConnected)
	a.afterIntegrationChange(ctx)
	return nil
}

func (a *App) ConnectAdSense(ctx context.Context, form *integrating.AdSenseConnectForm) error {
	if _, loggedIn := a.currentEpoch(); !loggedIn {
		return ErrNotAuthenticated
	}

	payload, err := form.Payload()
	if err != nil {
		a.setFeedback(integrating.UserMessage(err, integrating.MsgAdSenseConnectFailed))
		return err
	}

	if _, err := a.integrator.ConnectAdSense(ctx, 0, payload); err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: failed to connect google adsense")
		a.setFeedback(integrating.MsgAdSenseConnectFailed)
		return err
	}

	form.Reset()
	a.setFeedback(integrating.MsgAdSenseConnected)
	a.afterIntegrationChange(ctx)
	return nil
}

// StartEdit abre o editor para a integração id da lista atual
func (a *App) StartEdit(id int) (*integrating.Editor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, integration := range a.integrations {
		if integration.ID != id {
			continue
		}

		editor, err := integrating.NewEditor(integration)
		if err != nil {
			return nil, err
		}
		a.editor = editor
		a.editError = ""
		return editor, nil
	}

	return nil, errors.Wrapf(backendclient.ErrNotFound, "integração %d", id)
}

// Editor devolve o editor aberto, ou nil
func (a *App) Editor() *integrating.Editor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.editor
}

// CancelEdit descarta as alterações sem chamadas de rede
func (a *App) CancelEdit() {
	a.mu.Lock()
	a.editor = nil
	a.editError = ""
	a.mu.Unlock()
}

func (a *App) SaveEdit(ctx context.Context) error {
	a.mu.Lock()
	editor := a.editor
	a.mu.Unlock()

	if editor == nil {
		return errors.New("nenhuma integração em edição")
	}

	if _, err := editor.Submit(ctx, a.integrator); err != nil {
		log.ForContext(ctx).WithError(err).WithField("integration_id", editor.ID()).Error("dashboard: failed to update integration")
		a.mu.Lock()
		a.editError = integrating.UserMessage(err, integrating.MsgSaveFailed)
		a.mu.Unlock()
		return err
	}

	a.mu.Lock()
	if a.editor == editor {
		a.editor = nil
	}
	a.editError = ""
	a.mu.Unlock()

	a.afterIntegrationChange(ctx)
	return nil
}

// DeleteIntegration trata id inexistente como já removido, sem nova tentativa
func (a *App) DeleteIntegration(ctx context.Context, id int) error {
	err := a.integrator.DeleteIntegration(ctx, id)
	if err != nil && !errors.Is(err, backendclient.ErrNotFound) {
		log.ForContext(ctx).WithError(err).WithField("integration_id", id).Error("dashboard: failed to delete integration")
		a.setFeedback(integrating.MsgDeleteFailed)
		return err
	}

	a.mu.Lock()
	if a.editor != nil && a.editor.ID() == id {
		a.editor = nil
	}
	a.mu.Unlock()

	a.afterIntegrationChange(ctx)
	return nil
}

// MarkNotificationRead remove a notificação da lista só depois da confirmação do servidor
func (a *App) MarkNotificationRead(ctx context.Context, id int) error {
	epoch, _ := a.currentEpoch()

	if err := a.integrator.MarkNotificationRead(ctx, id); err != nil {
		log.ForContext(ctx).WithError(err).WithField("notification_id", id).Error("dashboard: failed to mark notification as read")
		return err
	}

	a.mu.Lock()
	if epoch == a.epoch {
		a.notifications = domain.WithoutNotification(a.notifications, id)
	}
	a.mu.Unlock()
	return nil
}

// SetRange troca o período; datas fora de ordem viram erro no estado das métricas
func (a *App) SetRange(start, end string) error {
	dateRange, err := domain.NewDateRange(start, end)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.dateRange = dateRange
	a.mu.Unlock()

	query := a.loader.Query()
	query.Range = dateRange
	a.loader.SetQuery(query)
	return nil
}

func (a *App) RefreshMetrics() {
	a.loader.Refetch()
}

// WaitMetrics bloqueia até a busca de métricas em andamento terminar
func (a *App) WaitMetrics() {
	a.loader.Wait()
}

// SyncMetrics pede ao servidor a agregação de um dia e recarrega as métricas
func (a *App) SyncMetrics(ctx context.Context, day time.Time) (*domain.DailyMetric, error) {
	metric, err := a.integrator.SyncMetrics(ctx, day)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: failed to sync metrics")
		a.setFeedback(MsgSyncFailed)
		return nil, err
	}

	a.loader.Refetch()
	return metric, nil
}

func (a *App) RangeLabel() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dateRange.Label()
}

func (a *App) Authenticated() bool {
	_, loggedIn := a.currentEpoch()
	return loggedIn
}

func (a *App) Snapshot() Snapshot {
	metrics := a.loader.State()

	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot := Snapshot{
		Integrations:         slices.Clone(a.integrations),
		IntegrationsError:    a.integrationsError,
		Notifications:        slices.Clone(a.notifications),
		NotificationsLoading: a.notificationsLoading,
		NotificationError:    a.notificationError,
		EditError:            a.editError,
		Range:                a.dateRange,
		RangeLabel:           a.dateRange.Label(),
		Metrics:              metrics,
		LoginError:           a.loginError,
		Feedback:             a.feedback,
	}

	if a.user != nil {
		user := *a.user
		snapshot.User = &user
	}
	if a.editor != nil {
		integration := a.editor.Integration()
		snapshot.Editing = &integration
	}

	return snapshot
}

func (a *App) Close() {
	a.loader.Close()
}
