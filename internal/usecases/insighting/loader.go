package insighting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/insights-dashboard/internal/domain"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

const (
	MsgLoadFailed   = "Falha ao carregar métricas. Verifique se as integrações estão conectadas."
	MsgInvalidRange = "A data final deve ser igual ou posterior à data inicial."
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State é o retrato do loader. Data continua com o último resultado válido
// mesmo depois de um erro.
type State struct {
	Status  Status
	Query   domain.MetricsQuery
	Data    *domain.MetricsResponse
	Loading bool
	Error   string
	Err     error
}

type Option func(*Loader)

// WithTimeout limita a duração de cada busca; zero desliga
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		l.timeout = timeout
	}
}

// Loader busca métricas sempre que a consulta muda enquanto está habilitado.
// Cada busca recebe uma geração; apenas a geração mais recente escreve no estado.
type Loader struct {
	fetcher MetricsFetcher
	timeout time.Duration

	mu         sync.Mutex
	query      domain.MetricsQuery
	enabled    bool
	closed     bool
	generation uint64
	cancel     context.CancelFunc
	state      State
	listeners  []func(State)
	// seq numera cada transição; delivered é a última entregue aos listeners
	seq uint64

	notifyMu  sync.Mutex
	delivered uint64

	inflight sync.WaitGroup
}

func NewLoader(fetcher MetricsFetcher, query domain.MetricsQuery, enabled bool, opts ...Option) *Loader {
	l := &Loader{
		fetcher: fetcher,
		query:   query,
		enabled: enabled,
		state:   State{Status: StatusIdle, Query: query},
	}

	for _, opt := range opts {
		opt(l)
	}

	if enabled {
		l.mu.Lock()
		l.startLocked()
		l.mu.Unlock()
	}

	return l
}

// OnChange registra um callback chamado a cada transição de estado.
// As entregas são serializadas e nunca voltam para uma transição mais antiga;
// o callback não deve chamar o próprio loader.
func (l *Loader) OnChange(fn func(State)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loader) Query() domain.MetricsQuery {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query
}

// SetQuery troca a consulta. Com o loader habilitado a busca anterior é
// substituída, não enfileirada.
func (l *Loader) SetQuery(query domain.MetricsQuery) {
	l.mu.Lock()
	if l.closed || sameQuery(l.query, query) {
		l.mu.Unlock()
		return
	}

	l.query = query
	l.state.Query = query
	if !l.enabled {
		l.mu.Unlock()
		return
	}

	l.startLocked()
	n := l.transitionLocked()
	l.mu.Unlock()

	l.deliver(n)
}

// SetEnabled liga ou desliga a busca automática. Desligar descarta a busca em andamento.
func (l *Loader) SetEnabled(enabled bool) {
	l.mu.Lock()
	if l.closed || l.enabled == enabled {
		l.mu.Unlock()
		return
	}

	l.enabled = enabled

	if enabled {
		l.startLocked()
	} else {
		l.abandonLocked()
	}
	n := l.transitionLocked()
	l.mu.Unlock()

	l.deliver(n)
}

// Refetch repete a consulta atual. Com o loader desligado não faz nada.
func (l *Loader) Refetch() {
	l.mu.Lock()
	if l.closed || !l.enabled {
		l.mu.Unlock()
		return
	}

	l.startLocked()
	n := l.transitionLocked()
	l.mu.Unlock()

	l.deliver(n)
}

// Reset descarta dados, erro e busca em andamento, voltando para idle
func (l *Loader) Reset() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}

	l.abandonLocked()
	l.state = State{Status: StatusIdle, Query: l.query}
	n := l.transitionLocked()
	l.mu.Unlock()

	l.deliver(n)
}

// Wait bloqueia até que todas as buscas disparadas terminem
func (l *Loader) Wait() {
	l.inflight.Wait()
}

func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.abandonLocked()
	l.mu.Unlock()

	l.inflight.Wait()
}

func (l *Loader) startLocked() {
	l.generation++
	generation := l.generation
	query := l.query

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	if err := query.Range.Validate(); err != nil {
		l.state = State{
			Status: StatusError,
			Query:  query,
			Data:   l.state.Data,
			Error:  MsgInvalidRange,
			Err:    err,
		}
		return
	}

	ctx, correlationID := log.WithCorrelationID(context.Background())
	var cancel context.CancelFunc
	if l.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	l.cancel = cancel

	l.state.Status = StatusLoading
	l.state.Query = query
	l.state.Loading = true
	l.state.Error = ""
	l.state.Err = nil

	log.ForContext(ctx).WithFields(log.Fields{
		"generation": generation,
		"start_date": query.Range.StartDate(),
		"end_date":   query.Range.EndDate(),
	}).Debugf("metrics: fetching (%s)", correlationID)

	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()
		defer cancel()

		resp, err := l.fetcher.FetchMetrics(ctx, query)
		l.complete(ctx, generation, resp, err)
	}()
}

// abandonLocked invalida a geração atual sem tocar nos dados
func (l *Loader) abandonLocked() {
	l.generation++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	if l.state.Loading {
		l.state.Loading = false
		if l.state.Data != nil {
			l.state.Status = StatusSuccess
		} else {
			l.state.Status = StatusIdle
		}
	}
}

func (l *Loader) complete(ctx context.Context, generation uint64, resp *domain.MetricsResponse, err error) {
	logger := log.ForContext(ctx).WithField("generation", generation)

	l.mu.Lock()
	if l.closed || generation != l.generation {
		l.mu.Unlock()
		logger.Debug("metrics: discarding superseded response")
		return
	}

	l.cancel = nil
	l.state.Loading = false

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("metrics: request timed out")
		}
		logger.WithError(err).Error("metrics: failed to load metrics")

		l.state.Status = StatusError
		l.state.Error = MsgLoadFailed
		l.state.Err = err
	} else {
		l.state.Status = StatusSuccess
		l.state.Data = resp
		l.state.Error = ""
		l.state.Err = nil
	}

	n := l.transitionLocked()
	l.mu.Unlock()

	l.deliver(n)
}

type transition struct {
	seq       uint64
	state     State
	listeners []func(State)
}

func (l *Loader) transitionLocked() transition {
	l.seq++
	return transition{seq: l.seq, state: l.state, listeners: l.listeners}
}

// deliver entrega a transição se nenhuma mais nova já tiver sido entregue
func (l *Loader) deliver(n transition) {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	if n.seq <= l.delivered {
		return
	}
	l.delivered = n.seq

	for _, fn := range n.listeners {
		fn(n.state)
	}
}

func sameQuery(a, b domain.MetricsQuery) bool {
	return a.UserID == b.UserID &&
		a.Range.StartDate() == b.Range.StartDate() &&
		a.Range.EndDate() == b.Range.EndDate()
}
