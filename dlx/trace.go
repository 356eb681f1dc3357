package dlx

import (
	"fmt"
	"log/slog"
	"os"
)

// SetTrace turns diagnostic logging on or off for u. Kept as a field on the
// Universe rather than a process-wide flag (as the original C
// implementation's dlx_trace global did) so that independent universes in
// the same process can be traced independently and tests can assert on one
// without affecting another.
func (u *Universe) SetTrace(on bool) {
	u.trace = on
}

// SetLogger installs a custom logger for trace output. If tracing is turned
// on without ever calling SetLogger, a default text logger to stderr is
// used.
func (u *Universe) SetLogger(l *slog.Logger) {
	u.logger = l
}

func (u *Universe) tracef(format string, args ...any) {
	if !u.trace {
		return
	}
	if u.logger == nil {
		u.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	u.logger.Info(fmt.Sprintf(format, args...))
}
