package demo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/marcus/popup/pkg/popup"
)

// Remind raises a reminder alert every interval until ctx is done. It runs
// outside the program's Update loop, so svc is normally a popup.Messenger.
// The next reminder is scheduled once the previous one is dismissed or
// has gone unanswered for a full interval. App turns a reminder away while
// another dialog is open, which counts as dismissed.
func Remind(ctx context.Context, svc popup.Service, every time.Duration, logger *slog.Logger) error {
	if every <= 0 {
		return nil
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	timer := time.NewTimer(every)
	defer timer.Stop()

	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		// a reminder overwritten by another dialog never resolves
		actx, cancel := context.WithTimeout(ctx, every)
		res, err := popup.Await(actx, svc, popup.Alert{
			Title: "Reminder",
			Text:  "Still here. Press **?** for the key list.",
			Icon:  "bell",
		})
		cancel()

		switch {
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, context.DeadlineExceeded):
			logger.Debug("reminder unanswered", "n", n)
		case err != nil:
			return err
		default:
			logger.Debug("reminder dismissed", "n", n, "kind", res.Kind.String())
		}

		timer.Reset(every)
	}
}
