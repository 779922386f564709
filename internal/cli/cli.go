// Package cli é o front end de terminal do dashboard: um REPL que lê comandos,
// chama o dashboard.App e desenha resumo, gráfico, integrações e notificações.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/vfg2006/insights-dashboard/internal/dashboard"
	"github.com/vfg2006/insights-dashboard/internal/domain"
	"github.com/vfg2006/insights-dashboard/internal/usecases/integrating"
)

// Dashboard é a parte do dashboard.App usada pelos comandos
type Dashboard interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, registration domain.Registration) error
	Logout()
	Authenticated() bool

	LoadIntegrations(ctx context.Context) error
	LoadNotifications(ctx context.Context) error
	ConnectFacebook(ctx context.Context, form *integrating.FacebookConnectForm) error
	ConnectAdSense(ctx context.Context, form *integrating.AdSenseConnectForm) error
	StartEdit(id int) (*integrating.Editor, error)
	CancelEdit()
	SaveEdit(ctx context.Context) error
	DeleteIntegration(ctx context.Context, id int) error
	MarkNotificationRead(ctx context.Context, id int) error

	SetRange(start, end string) error
	RefreshMetrics()
	WaitMetrics()
	SyncMetrics(ctx context.Context, day time.Time) (*domain.DailyMetric, error)

	Snapshot() dashboard.Snapshot
}

type CLI struct {
	app    Dashboard
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

func New(app Dashboard, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		app:    app,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}
}

// Run executa o REPL até EOF, exit ou cancelamento de ctx
func (c *CLI) Run(ctx context.Context) {
	fmt.Fprintln(c.out, "Insights Dashboard (digite 'help' para ver os comandos)")

	if c.app.Authenticated() {
		_ = c.Show(ctx, nil)
	}

	runREPL(ctx, c, c.status, c.reader, c.out)
}

func (c *CLI) isLoggedIn() bool {
	return c.app.Authenticated()
}

func (c *CLI) status() string {
	snapshot := c.app.Snapshot()
	if snapshot.User == nil {
		return "(desconectado)"
	}
	return fmt.Sprintf("(%s · %s)", snapshot.User.Name, snapshot.RangeLabel)
}

func (c *CLI) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *CLI) ask(prompt string) (string, error) {
	return GetSimpleText(c.reader, prompt, c.out)
}

func (c *CLI) askSecret(prompt string) (string, error) {
	return GetSecret(c.reader, prompt, c.out)
}

func (c *CLI) askDefault(prompt, current string) (string, error) {
	return GetDefaultText(c.reader, prompt, current, c.out)
}

// idArg lê o id numérico do primeiro argumento
func (c *CLI) idArg(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		c.println("Uso:", usage)
		return 0, false
	}

	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		c.println("Id inválido:", args[0])
		return 0, false
	}

	return id, true
}
