package engine

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/phoenix/internal/domain"
)

// EvaluationEvent captures lightweight telemetry for one engine run.
type EvaluationEvent struct {
	Month       string
	RowsTotal   int
	RowsInMonth int
	FlagCount   int
	AlertCount  int
	Duration    time.Duration
	Err         error
}

// Observer receives evaluation events. The engine core itself never logs;
// callers wrap EvaluateMonth with Observe when they want telemetry.
type Observer interface {
	ObserveEvaluation(event EvaluationEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveEvaluation(EvaluationEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes evaluation events to the provided writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveEvaluation(event EvaluationEvent) {
	attrs := []any{
		"month", event.Month,
		"rows_total", event.RowsTotal,
		"rows_in_month", event.RowsInMonth,
		"flags", event.FlagCount,
		"alerts", event.AlertCount,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Error("evaluation", attrs...)
		return
	}
	o.logger.Info("evaluation", attrs...)
}

// Observe runs EvaluateMonth and reports one event to the observer.
func Observe(obs Observer, in Input) (*domain.DecisionRecord, error) {
	if obs == nil {
		obs = NoopObserver{}
	}
	start := time.Now()
	rec, err := EvaluateMonth(in)

	event := EvaluationEvent{
		Month:     in.TargetMonth,
		RowsTotal: len(in.Rows),
		Duration:  time.Since(start),
		Err:       err,
	}
	if rec != nil {
		event.RowsInMonth = rec.InputSummary.RowsInTargetMonth
		event.FlagCount = len(rec.Flags)
		event.AlertCount = len(rec.Alerts)
	}
	obs.ObserveEvaluation(event)
	return rec, err
}
