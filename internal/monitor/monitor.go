package monitor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nkravets/statuswatch/internal/notify"
	"github.com/nkravets/statuswatch/internal/probe"
	"github.com/nkravets/statuswatch/internal/state"
)

// Monitor drives the probe cycle and turns probe observations into
// notifications. Targets are walked sequentially in configured order; one
// target's failure never aborts the pass.
type Monitor struct {
	Logger   *zap.Logger
	Checker  probe.Checker
	Notifier notify.Notifier
	States   state.Store
	Targets  []string
	Interval time.Duration
	Timeout  time.Duration
}

func New(
	logger *zap.Logger,
	checker probe.Checker,
	notifier notify.Notifier,
	states state.Store,
	targets []string,
	interval time.Duration,
) *Monitor {
	if interval <= 0 {
		interval = 300 * time.Second
	}
	return &Monitor{
		Logger:   logger,
		Checker:  checker,
		Notifier: notifier,
		States:   states,
		Targets:  targets,
		Interval: interval,
		Timeout:  probe.DefaultTimeout,
	}
}

// Run does an immediate pass, then one pass per interval tick. It returns
// nil when ctx is cancelled; that is the only way out.
func (m *Monitor) Run(ctx context.Context) error {
	t := time.NewTicker(m.Interval)
	defer t.Stop()

	m.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			m.Logger.Info("monitor_stopped")
			return nil
		case <-t.C:
			m.runOnce(ctx)
		}
	}
}

func (m *Monitor) runOnce(ctx context.Context) {
	for _, target := range m.Targets {
		if ctx.Err() != nil {
			return
		}

		cctx, cancel := context.WithTimeout(ctx, m.Timeout)
		out := m.Checker.Check(cctx, target)
		cancel()

		m.evaluate(ctx, target, out.OK())
	}
}

// evaluate applies one observation to the stored state. Stored state only
// advances when the notification is confirmed delivered, so a failed send
// leaves the transition pending and the next cycle retries it.
func (m *Monitor) evaluate(ctx context.Context, target string, ok bool) {
	last := m.States.Up(target)
	if ok == last {
		return
	}

	text := "Resource is down! URL: " + target
	if ok {
		text = "Resource is up! URL: " + target
	}

	if err := m.Notifier.Send(ctx, text); err != nil {
		m.Logger.Error("notify_failed",
			zap.String("url", target),
			zap.Bool("up", ok),
			zap.Error(err),
		)
		return
	}

	m.States.Set(target, ok)
	m.Logger.Info("state_transition",
		zap.String("url", target),
		zap.Bool("up", ok),
	)
}
