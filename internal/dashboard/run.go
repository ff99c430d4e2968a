package dashboard

import (
	"context"
	"fmt"
	"io"
	"time"
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Run is the plain-terminal loop: receive, apply, render to out, then
// sleep the poll interval however long the tick took. It returns when
// ctx is cancelled or on the first fatal link error. Cancelling ctx
// closes the link to unblock a pending receive.
func (e *Engine) Run(ctx context.Context, out io.Writer) error {
	stop := context.AfterFunc(ctx, func() {
		if err := e.link.Close(); err != nil {
			e.log.WithField("err", err).Debug("close link")
		}
	})
	defer stop()

	e.log.WithField("poll", e.poll).Info("plain dashboard started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := e.Receive()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			e.log.WithField("err", err).Error("receive failed")
			return err
		}
		if err := e.Apply(frame, e.now()); err != nil {
			return err
		}

		e.Render(e.canvas)
		if _, err := fmt.Fprint(out, clearScreen+e.canvas.Render()+"\n"); err != nil {
			return fmt.Errorf("dashboard: write frame: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.poll):
		}
	}
}
