package cli

import (
	"context"

	"github.com/vfg2006/insights-dashboard/internal/domain"
)

func (c *CLI) Login(ctx context.Context, args []string) error {
	var email string
	var err error

	if len(args) > 0 {
		email = args[0]
	} else if email, err = c.ask("Email"); err != nil {
		return err
	}

	password, err := c.askSecret("Senha")
	if err != nil {
		return err
	}

	if err := c.app.Login(ctx, email, password); err != nil {
		c.println(c.app.Snapshot().LoginError)
		return err
	}

	c.welcome()
	return nil
}

// Register cria a conta e já entra com ela
func (c *CLI) Register(ctx context.Context, _ []string) error {
	name, err := c.ask("Nome")
	if err != nil {
		return err
	}

	email, err := c.ask("Email")
	if err != nil {
		return err
	}

	password, err := c.askSecret("Senha")
	if err != nil {
		return err
	}

	registration := domain.Registration{Name: name, Email: email, Password: password}
	if err := c.app.Register(ctx, registration); err != nil {
		c.println(c.app.Snapshot().LoginError)
		return err
	}

	c.welcome()
	return nil
}

func (c *CLI) welcome() {
	snapshot := c.app.Snapshot()
	if snapshot.User == nil {
		return
	}

	c.println("Bem-vindo(a),", snapshot.User.Name+"!")
	if unread := len(snapshot.Notifications); unread > 0 {
		c.println("Notificações não lidas:", unread)
	}
}

func (c *CLI) Logout(_ context.Context, _ []string) error {
	c.app.Logout()
	c.println("Sessão encerrada.")
	return nil
}
