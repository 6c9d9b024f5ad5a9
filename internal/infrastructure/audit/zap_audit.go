package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/fasalmbt/complainto/domain"
)

// ZapAuditLogger implements domain.AuditLogger on a structured logger.
// Events land in the service log stream; a future implementation could
// write them to a table instead without touching callers.
type ZapAuditLogger struct {
	logger *zap.Logger
}

// NewZapAuditLogger creates a new audit logger
func NewZapAuditLogger(logger *zap.Logger) domain.AuditLogger {
	return &ZapAuditLogger{logger: logger.Named("audit")}
}

// LogEvent implements domain.AuditLogger
func (a *ZapAuditLogger) LogEvent(_ context.Context, event *domain.AuditEvent) error {
	fields := []zap.Field{
		zap.String("event_type", string(event.EventType)),
		zap.Bool("success", event.Success),
		zap.Time("timestamp", event.Timestamp),
	}
	if event.UserID != 0 {
		fields = append(fields, zap.Uint("user_id", event.UserID))
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", event.Email))
	}
	if event.ErrorMsg != "" {
		fields = append(fields, zap.String("error", event.ErrorMsg))
	}
	if len(event.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", event.Metadata))
	}

	if event.Success {
		a.logger.Info("audit event", fields...)
	} else {
		a.logger.Warn("audit event", fields...)
	}
	return nil
}
