// Package cli реализует интерактивные представления клиента: вход и
// регистрацию, кабинет, профиль, гео-инструменты и страницы-заглушки.
//
// Каждое представление — тонкий слой: читает форму, вызывает операцию
// хранилища сессии или HTTP-клиента и печатает ответ. Хранилище сессии и
// клиент передаются явно через конструктор, скрытых синглтонов нет.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator"

	"github.com/proval-lk/valuer-client/internal/api"
	"github.com/proval-lk/valuer-client/internal/session"
)

// App интерактивное приложение клиента.
type App struct {
	session *session.Store
	guard   *session.Guard
	api     *api.Client
	log     *slog.Logger

	reader   *bufio.Reader
	out      io.Writer
	termFd   int
	validate *validator.Validate
}

// NewApp создаёт приложение поверх готовых хранилища сессии и HTTP-клиента.
// Представления получают оба объекта отсюда; переход к входу при отказе в
// доступе и при глобальном истечении сессии выполняет сам REPL.
func NewApp(sessionStore *session.Store, apiClient *api.Client, log *slog.Logger) *App {
	a := &App{
		session:  sessionStore,
		api:      apiClient,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		termFd:   int(os.Stdin.Fd()),
		validate: validator.New(),
	}
	a.guard = session.NewGuard(sessionStore, a.navigateToLogin)

	sessionStore.OnSessionExpired(func() {
		a.println("Session expired. Please log in again.")
		a.navigateToLogin()
	})
	return a
}

// Run выполняет начальную загрузку сессии и запускает REPL.
func (a *App) Run(ctx context.Context) {
	a.println("Valuer Workbench")
	a.session.Bootstrap(ctx)

	if st := a.session.State(); st.IsAuthenticated {
		a.printf("Welcome back, %s\n", st.User.FullName)
	} else {
		a.println("Type 'login' or 'register' to begin, 'help' for commands.")
	}
	a.repl(ctx)
}

// allowed консультируется с защитой маршрутов перед показом защищённого
// представления. При отказе guard сам выполняет переход к входу.
func (a *App) allowed() bool {
	return a.guard.Check() == session.DecisionAllow
}

// navigateToLogin переводит приложение к представлению входа.
// В терминальном клиенте это сообщение и возврат в корневой цикл:
// следующая защищённая команда снова упрётся в guard.
func (a *App) navigateToLogin() {
	a.println("-> login")
}

func (a *App) println(args ...any) {
	printlnFn(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	printfFn(a.out, format, args...)
}
