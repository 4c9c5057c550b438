// Package errors turns settings and roster outcomes into user-facing notices
// and routes them to the console or the TUI status line.
package errors

// ErrorHandler receives user-facing notices.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// Notice is one user-facing message and its severity.
type Notice struct {
	Type MessageType
	Text string
}

// Deliver routes n to the handler method matching its type.
func Deliver(h ErrorHandler, n Notice) {
	switch n.Type {
	case MessageTypeError:
		h.Error(n.Text)
	case MessageTypeWarning:
		h.Warning(n.Text)
	case MessageTypeSuccess:
		h.Success(n.Text)
	default:
		h.Info(n.Text)
	}
}
