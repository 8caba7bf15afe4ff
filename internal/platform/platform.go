// Package platform provides the server-side stand-ins for device-bound
// collaborators. The real launcher, device controller, and notification
// scheduler live on the client; these implementations log the effect so the
// pipeline can run end to end without a device attached.
package platform

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/domain"
)

// LogLauncher records launch requests instead of launching.
type LogLauncher struct {
	logger *zap.Logger
}

func NewLogLauncher(logger *zap.Logger) *LogLauncher {
	return &LogLauncher{logger: logger}
}

func (l *LogLauncher) Launch(ctx context.Context, packageID string) error {
	l.logger.Info("launch requested", zap.String("package_id", packageID))
	return nil
}

// LogDevice records device effects instead of applying them.
type LogDevice struct {
	logger *zap.Logger
}

func NewLogDevice(logger *zap.Logger) *LogDevice {
	return &LogDevice{logger: logger}
}

func (d *LogDevice) Apply(ctx context.Context, intent domain.Intent, params map[string]string) error {
	d.logger.Info("device effect requested",
		zap.String("intent", string(intent)),
		zap.Any("params", params),
	)
	return nil
}

// LogNotifier records notification scheduling instead of scheduling.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Schedule(ctx context.Context, id uuid.UUID, triggerAt time.Time, title string) error {
	n.logger.Info("notification scheduled",
		zap.String("id", id.String()),
		zap.Time("trigger_at", triggerAt),
		zap.String("title", title),
	)
	return nil
}

func (n *LogNotifier) Cancel(ctx context.Context, id uuid.UUID) error {
	n.logger.Info("notification cancelled", zap.String("id", id.String()))
	return nil
}
