package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Тестовые заглушки пользовательского вывода.
var (
	printlnFn = func(w io.Writer, args ...any) { fmt.Fprintln(w, args...) }
	printfFn  = func(w io.Writer, format string, args ...any) { fmt.Fprintf(w, format, args...) }
)

// commands описывает минимальную поверхность команд, нужную циклу.
// Реальный App удовлетворяет интерфейсу; тесты подставляют заглушку.
type commands interface {
	isAuthenticated() bool
	loginView(ctx context.Context) error
	registerView(ctx context.Context) error
	verifyEmailView(ctx context.Context) error
	resendVerificationView(ctx context.Context) error
	dashboardView(ctx context.Context) error
	profileView(ctx context.Context) error
	editProfileView(ctx context.Context) error
	qualificationsView(ctx context.Context) error
	locationView(ctx context.Context) error
	reportsView() error
	documentsView() error
	refreshView(ctx context.Context) error
	logoutView() error
}

// repl читает команды и вызывает представления.
// Ошибки представлений цикл игнорирует: представления сами печатают
// сообщения, цикл отвечает только за ввод-вывод и диспетчеризацию.
func (a *App) repl(ctx context.Context) {
	runREPL(ctx, a, a.prompt, a.reader, a.out)
}

func (a *App) prompt() string {
	st := a.session.State()
	if st.IsAuthenticated && st.User != nil {
		return st.User.Email
	}
	return "guest"
}

func (a *App) isAuthenticated() bool {
	return a.session.IsAuthenticated()
}

func runREPL(ctx context.Context, c commands, statusFn func() string, reader lineReader, w io.Writer) {
	for {
		printfFn(w, "valuer> %s > ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if c.isAuthenticated() {
				printlnFn(w, "Available commands: dashboard, profile, edit, qualifications, location, reports, documents, refresh, verify, resend, logout, exit")
			} else {
				printlnFn(w, "Available commands: login, register, verify, exit")
			}

		case "login":
			_ = c.loginView(ctx)

		case "register":
			_ = c.registerView(ctx)

		case "verify":
			_ = c.verifyEmailView(ctx)

		case "resend":
			_ = c.resendVerificationView(ctx)

		case "dashboard", "d":
			_ = c.dashboardView(ctx)

		case "profile", "p":
			_ = c.profileView(ctx)

		case "edit":
			_ = c.editProfileView(ctx)

		case "qualifications", "q":
			_ = c.qualificationsView(ctx)

		case "location", "loc":
			_ = c.locationView(ctx)

		case "reports":
			_ = c.reportsView()

		case "documents":
			_ = c.documentsView()

		case "refresh":
			_ = c.refreshView(ctx)

		case "logout":
			_ = c.logoutView()

		case "exit", "quit":
			printlnFn(w, "Bye!")
			return

		default:
			printlnFn(w, "Unknown command:", parts[0])
		}
	}
}

// lineReader минимальный контракт чтения строк, который REPL требует от ввода.
type lineReader interface {
	ReadString(delim byte) (string, error)
}
