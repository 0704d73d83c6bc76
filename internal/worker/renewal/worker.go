package renewal

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// jobTimeout ограничение на длительность одного прохода продления
const jobTimeout = 5 * time.Minute

// Worker периодически продлевает истекшие абонементы с автопродлением
type Worker struct {
	service  MembershipService
	logger   Logger
	schedule string
	cron     *cron.Cron
}

func NewWorker(service MembershipService, logger Logger, schedule string) *Worker {
	return &Worker{
		service:  service,
		logger:   logger,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start регистрирует задачу и запускает планировщик
func (w *Worker) Start() error {
	if _, err := w.cron.AddFunc(w.schedule, w.run); err != nil {
		return fmt.Errorf("renewal worker: invalid schedule %q: %w", w.schedule, err)
	}

	w.cron.Start()
	w.logger.Info("Renewal worker started: schedule=%q", w.schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущей задачи
func (w *Worker) Stop(ctx context.Context) {
	stopped := w.cron.Stop()

	select {
	case <-stopped.Done():
		w.logger.Info("Renewal worker stopped")
	case <-ctx.Done():
		w.logger.Warn("Renewal worker stop timed out: %v", ctx.Err())
	}
}

func (w *Worker) run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	renewed, err := w.service.RenewDue(ctx)
	if err != nil {
		w.logger.Error("Renewal worker: sweep failed: %v", err)
		return
	}

	w.logger.Info("Renewal worker: sweep completed, renewed=%d", renewed)
}
