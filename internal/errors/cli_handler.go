package errors

import (
	"fmt"
	"io"

	"github.com/okay-you-very-pro/oyvp/internal/colors"
	"github.com/okay-you-very-pro/oyvp/internal/logging"
)

// CLIHandler prints notices for one command. Errors and warnings go to errOut,
// info and success to out unless quiet output is on. Every notice is also
// written to the structured log.
type CLIHandler struct {
	out    io.Writer
	errOut io.Writer
	log    logging.Logger
}

var _ ErrorHandler = (*CLIHandler)(nil)

// NewCLIHandler returns a CLIHandler writing to the given streams, usually a
// command's OutOrStdout and ErrOrStderr.
func NewCLIHandler(out, errOut io.Writer) *CLIHandler {
	return &CLIHandler{
		out:    out,
		errOut: errOut,
		log:    logging.GetGlobal().With("component", "cli"),
	}
}

func (h *CLIHandler) Error(msg string) {
	h.log.Error(msg)
	h.print(h.errOut, "%sError:%s %s\n", colors.Red, colors.Reset, msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.log.Warn(msg)
	h.print(h.errOut, "%sWarning:%s %s\n", colors.Yellow, colors.Reset, msg)
}

func (h *CLIHandler) Info(msg string) {
	h.log.Info(msg)
	if colors.Quiet() {
		return
	}
	h.print(h.out, "%s%s%s\n", colors.Blue, msg, colors.Reset)
}

func (h *CLIHandler) Success(msg string) {
	h.log.Info(msg, "type", "success")
	if colors.Quiet() {
		return
	}
	h.print(h.out, "%s✓%s %s\n", colors.Green, colors.Reset, msg)
}

func (h *CLIHandler) print(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		h.log.Error("failed to print notice", "error", err)
	}
}
