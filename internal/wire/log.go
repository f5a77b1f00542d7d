package wire

import (
	"context"
	"log/slog"
)

// LogMessage logs a message, either sent or received
func LogMessage(logger *slog.Logger, m Message, sent bool) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	dir := "<-"
	if sent {
		dir = "->"
	}
	switch msg := m.(type) {
	case *Control:
		logger.Debug(dir+" Control", "kind", msg.Kind(), "text", msg.Text)
	case *Data:
		logger.Debug(dir+" Data", "seq", msg.Sequence, "len", len(msg.Payload))
	case *End:
		logger.Debug(dir+" End", "seq", msg.Sequence)
	default:
		logger.Debug(dir+" unknown message", "type", m.Type())
	}
}
