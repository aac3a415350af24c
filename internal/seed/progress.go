package seed

import (
	"time"

	"go.uber.org/zap"
)

// Phase names reported while a seed run advances.
const (
	PhaseClearing = "clearing"
	PhaseSeeding  = "seeding"
	PhaseComplete = "complete"
)

// Progress describes the pipeline position before each step runs.
type Progress struct {
	Step      string
	Index     int
	Total     int
	Phase     string
	StartedAt time.Time
}

// Observer receives structured seeding events. Implementations must not
// block; the pipeline calls them synchronously.
type Observer interface {
	OnProgress(p Progress)
	OnStepDone(step string, rows int)
	OnWarning(msg string, err error)
}

// nopObserver is used when the caller passes nil.
type nopObserver struct{}

func (nopObserver) OnProgress(Progress)     {}
func (nopObserver) OnStepDone(string, int)  {}
func (nopObserver) OnWarning(string, error) {}

// LogObserver adapts an Observer onto a zap sugared logger for developer
// visibility. Verbose mode lowers the level to debug.
type LogObserver struct {
	log *zap.SugaredLogger
}

func NewLogObserver(verbose bool) (*LogObserver, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &LogObserver{log: logger.Sugar()}, nil
}

func (o *LogObserver) OnProgress(p Progress) {
	o.log.Infow("seed progress", "phase", p.Phase, "step", p.Step, "index", p.Index, "total", p.Total)
}

func (o *LogObserver) OnStepDone(step string, rows int) {
	o.log.Debugw("step done", "step", step, "rows", rows)
}

func (o *LogObserver) OnWarning(msg string, err error) {
	if err != nil {
		o.log.Warnw(msg, "error", err)
		return
	}
	o.log.Warnw(msg)
}

func (o *LogObserver) Sync() {
	_ = o.log.Sync()
}
