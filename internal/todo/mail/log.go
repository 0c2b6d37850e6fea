package mail

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/todo/pkg/slogx"
)

// LogTransport writes messages to the log instead of sending them. It is
// meant for development, where the links can be copied from the output.
type LogTransport struct {
	Logger *slog.Logger
}

func (t *LogTransport) Send(ctx context.Context, msg Message) error {
	l := t.Logger
	if l == nil {
		l = slogx.FromContext(ctx)
	}
	l.InfoContext(ctx, "email",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Text),
	)
	return nil
}
