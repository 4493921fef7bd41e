package analyzer

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/nguyentantai21042004/interview-summarizer/internal/gateway"
)

// uploadAndWait pushes the staged file and re-fetches its handle every poll
// interval until the gateway leaves the PROCESSING state.
func (a *implAnalyzer) uploadAndWait(ctx context.Context, path, mimeType string) (gateway.Handle, error) {
	file, err := a.gateway.Upload(ctx, path, mimeType)
	if err != nil {
		return gateway.Handle{}, fmt.Errorf("upload: %w", err)
	}

	schedule := a.pollSchedule()
	for file.State == gateway.StateProcessing {
		wait := schedule.NextBackOff()
		if wait == backoff.Stop {
			return gateway.Handle{}, fmt.Errorf("%w: %s still processing after %s", ErrPollTimeout, file.Name, a.pollTimeout)
		}

		a.logger.Info(ctx, "File is processing...")
		if err := a.sleep(ctx, wait); err != nil {
			return gateway.Handle{}, fmt.Errorf("wait for %s: %w", file.Name, err)
		}

		file, err = a.gateway.GetFile(ctx, file.Name)
		if err != nil {
			return gateway.Handle{}, fmt.Errorf("poll: %w", err)
		}
	}

	if file.State == gateway.StateFailed {
		a.logger.Error(ctx, "File processing failed: %s", file.Name)
		return gateway.Handle{}, fmt.Errorf("%w: %s", ErrRemoteProcessing, file.Name)
	}

	a.logger.Info(ctx, "File ready. State: %s", file.State)
	return file, nil
}

// pollSchedule waits a fixed interval and stops after poll timeout / interval re-fetches.
func (a *implAnalyzer) pollSchedule() backoff.BackOff {
	maxPolls := uint64(1)
	if a.pollInterval > 0 {
		maxPolls = uint64((a.pollTimeout + a.pollInterval - 1) / a.pollInterval)
	}
	if maxPolls == 0 {
		maxPolls = 1
	}
	return backoff.WithMaxRetries(backoff.NewConstantBackOff(a.pollInterval), maxPolls)
}

