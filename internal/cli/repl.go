package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface é o conjunto de comandos que o REPL despacha. O CLI real
// implementa todos; os testes usam um stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Metrics(ctx context.Context, args []string) error
	Range(ctx context.Context, args []string) error
	Refresh(ctx context.Context, args []string) error
	Sync(ctx context.Context, args []string) error
	Integrations(ctx context.Context, args []string) error
	Connect(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Notifications(ctx context.Context, args []string) error
	Read(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Comandos: register, login [email], exit"
	helpLoggedIn  = `Comandos:
  show                         painel completo
  metrics                      resumo e gráfico do período
  range <início> <fim>         troca o período (yyyy-MM-dd)
  refresh                      recarrega as métricas
  sync [yyyy-MM-dd]            agrega um dia no servidor
  integrations                 lista as integrações
  connect facebook|adsense     conecta uma conta
  edit <id>                    edita uma integração
  delete <id>                  remove uma integração
  notifications                lista as notificações não lidas
  read <id>                    marca uma notificação como lida
  logout, exit`
)

// runREPL lê uma linha por vez, usa a primeira palavra como comando e o
// resto como argumentos. Termina em EOF, "exit" ou "quit". Os comandos já
// mostram os próprios erros, por isso o retorno deles é ignorado aqui.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "insights %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !a.isLoggedIn() && !publicCommand(cmd) {
			fmt.Fprintln(w, "Faça login primeiro (login ou register).")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx, args)
		case "login":
			_ = a.Login(ctx, args)
		case "logout":
			_ = a.Logout(ctx, args)
		case "show":
			_ = a.Show(ctx, args)
		case "metrics", "m":
			_ = a.Metrics(ctx, args)
		case "range":
			_ = a.Range(ctx, args)
		case "refresh":
			_ = a.Refresh(ctx, args)
		case "sync":
			_ = a.Sync(ctx, args)
		case "integrations", "i":
			_ = a.Integrations(ctx, args)
		case "connect":
			_ = a.Connect(ctx, args)
		case "edit":
			_ = a.Edit(ctx, args)
		case "delete":
			_ = a.Delete(ctx, args)
		case "notifications", "n":
			_ = a.Notifications(ctx, args)
		case "read":
			_ = a.Read(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Até logo!")
			return

		default:
			fmt.Fprintln(w, "Comando desconhecido:", cmd)
		}
	}
}

func publicCommand(cmd string) bool {
	switch cmd {
	case "help", "register", "login", "exit", "quit":
		return true
	default:
		return false
	}
}
