package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// commandsStub записывает вызванные представления.
type commandsStub struct {
	authenticated bool
	calls         []string
}

func (c *commandsStub) record(name string) error {
	c.calls = append(c.calls, name)
	return nil
}

func (c *commandsStub) isAuthenticated() bool                        { return c.authenticated }
func (c *commandsStub) loginView(context.Context) error              { return c.record("login") }
func (c *commandsStub) registerView(context.Context) error           { return c.record("register") }
func (c *commandsStub) verifyEmailView(context.Context) error        { return c.record("verify") }
func (c *commandsStub) resendVerificationView(context.Context) error { return c.record("resend") }
func (c *commandsStub) dashboardView(context.Context) error          { return c.record("dashboard") }
func (c *commandsStub) profileView(context.Context) error            { return c.record("profile") }
func (c *commandsStub) editProfileView(context.Context) error        { return c.record("edit") }
func (c *commandsStub) qualificationsView(context.Context) error     { return c.record("qualifications") }
func (c *commandsStub) locationView(context.Context) error           { return c.record("location") }
func (c *commandsStub) reportsView() error                           { return c.record("reports") }
func (c *commandsStub) documentsView() error                         { return c.record("documents") }
func (c *commandsStub) refreshView(context.Context) error            { return c.record("refresh") }
func (c *commandsStub) logoutView() error                            { return c.record("logout") }

func runScript(t *testing.T, stub *commandsStub, script string) string {
	t.Helper()
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "guest" }, reader, &out)
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stub := &commandsStub{}
	runScript(t, stub, "login\nregister\nverify\nexit\n")
	assert.Equal(t, []string{"login", "register", "verify"}, stub.calls)
}

func TestRunREPL_Aliases(t *testing.T) {
	stub := &commandsStub{authenticated: true}
	runScript(t, stub, "d\np\nq\nloc\nquit\n")
	assert.Equal(t, []string{"dashboard", "profile", "qualifications", "location"}, stub.calls)
}

func TestRunREPL_UnknownAndEmpty(t *testing.T) {
	stub := &commandsStub{}
	out := runScript(t, stub, "\nfrobnicate\nexit\n")
	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := runScript(t, &commandsStub{}, "help\nexit\n")
	assert.Contains(t, out, "login, register, verify, exit")

	out = runScript(t, &commandsStub{authenticated: true}, "help\nexit\n")
	assert.Contains(t, out, "dashboard, profile, edit")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	stub := &commandsStub{}
	runScript(t, stub, "login\n") // без exit: конец ввода завершает цикл
	assert.Equal(t, []string{"login"}, stub.calls)
}
