package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/passkeeper/internal/config"
	"github.com/iudanet/passkeeper/internal/iocli"
)

const testMasterPassword = "master-secret"

// testConsole IOMock поверх буфера: вывод копится, ответы на prompt берутся по очереди
type testConsole struct {
	mu      sync.Mutex
	out     bytes.Buffer
	answers []string
	prompts []string
}

func (tc *testConsole) next(prompt string) (string, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.prompts = append(tc.prompts, prompt)
	if len(tc.answers) == 0 {
		return "", os.ErrClosed
	}
	answer := tc.answers[0]
	tc.answers = tc.answers[1:]
	return answer, nil
}

func (tc *testConsole) mock() *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			tc.mu.Lock()
			defer tc.mu.Unlock()
			fmt.Fprintln(&tc.out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			tc.mu.Lock()
			defer tc.mu.Unlock()
			fmt.Fprintf(&tc.out, format, a...)
		},
		ReadInputFunc:    tc.next,
		ReadPasswordFunc: tc.next,
		WriteFunc: func(p []byte) (int, error) {
			tc.mu.Lock()
			defer tc.mu.Unlock()
			return tc.out.Write(p)
		},
	}
}

type testEnv struct {
	cfg *config.Config
}

// newTestEnv конфигурация с базами во временной директории
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv(config.EnvMasterPassword, "")

	dir := t.TempDir()
	return &testEnv{
		cfg: &config.Config{
			DBPath:           filepath.Join(dir, "passkeeper.db"),
			VaultDBPath:      filepath.Join(dir, "passkeeper-vault.db"),
			DeviceSecretFile: filepath.Join(dir, "passkeeper.secret"),
			HandleTTL:        time.Minute,
		},
	}
}

type runOptions struct {
	answers []string
	stdin   string
}

// run выполняет одну команду как отдельный запуск процесса
func (e *testEnv) run(t *testing.T, opts runOptions, args ...string) (string, error) {
	t.Helper()

	console := &testConsole{answers: opts.answers}
	cfg := *e.cfg
	c := New(console.mock(), &cfg, Open, Version{Version: "test"})
	defer func() { require.NoError(t, c.Close()) }()

	root := c.Command()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(opts.stdin))
	root.SetErr(&bytes.Buffer{})

	err := root.ExecuteContext(context.Background())
	return console.out.String(), err
}

// runOK выполняет команду с мастер-паролем из флага
func (e *testEnv) runOK(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, runOptions{}, append(args, "--master-password", testMasterPassword)...)
	require.NoError(t, err, out)
	return out
}

func (e *testEnv) setup(t *testing.T) {
	t.Helper()
	e.runOK(t, "setup")
}

var idPattern = regexp.MustCompile(`ID: ([0-9a-f-]{36})`)

func parseID(t *testing.T, out string) string {
	t.Helper()
	m := idPattern.FindStringSubmatch(out)
	require.Len(t, m, 2, "no id in output: %s", out)
	return m[1]
}
