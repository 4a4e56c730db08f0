// Package tracker turns sensor packets into printed workout summaries.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/and161185/fitness-tracker/internal/training"
	"github.com/and161185/fitness-tracker/model"
	"go.uber.org/zap"
)

// Tracker prints one summary line per packet.
type Tracker struct {
	out    io.Writer
	logger *zap.SugaredLogger
}

// NewTracker creates a Tracker writing messages to out.
func NewTracker(out io.Writer, logger *zap.SugaredLogger) *Tracker {
	return &Tracker{out: out, logger: logger}
}

// Run handles packets one by one in order. A bad packet is logged and
// skipped; all such failures are returned joined once the list is done.
func (t *Tracker) Run(ctx context.Context, packets []model.Packet) error {
	var errs []error

	for i, p := range packets {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if err := t.handle(p); err != nil {
			t.logger.Errorw("failed to process packet", "index", i, "type", p.Type, "error", err)
			errs = append(errs, fmt.Errorf("packet %d (%s): %w", i, p.Type, err))
		}
	}

	return errors.Join(errs...)
}

func (t *Tracker) handle(p model.Packet) error {
	tr, err := training.ReadPackage(string(p.Type), p.Data)
	if err != nil {
		return err
	}

	info := training.ShowTrainingInfo(tr)
	t.logger.Debugw("workout summarized",
		"type", info.TrainingType,
		"distance", info.Distance,
		"speed", info.Speed,
		"calories", info.Calories,
	)

	if _, err := fmt.Fprintln(t.out, info.GetMessage()); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}
