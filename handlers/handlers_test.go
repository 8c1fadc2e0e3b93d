package handlers

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/testutil"
)

// lockedBuffer is a bytes.Buffer safe for a writer and a reader running at
// the same time.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func setupTestApp(t *testing.T) *App {
	t.Helper()
	app := NewApp()
	app.Config.RedirectDelay = 0
	app.Config.RefreshDelay = 0
	app.Store, app.Area = testutil.SetupSQLiteStore(t)
	return app
}

func runCommand(ctx context.Context, run middleware.RunFunc, bind func(*pflag.FlagSet), in io.Reader, out io.Writer, args ...string) error {
	cmd := &cobra.Command{Use: "test", RunE: run, SilenceUsage: true, SilenceErrors: true}
	if bind != nil {
		bind(cmd.Flags())
	}
	if in == nil {
		in = strings.NewReader("")
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
