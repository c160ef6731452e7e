package rules

import (
	"context"
	"sync"
)

// Reporter sends best-effort log entries to the rules service without
// holding up the caller. A hung rules service costs one background call per
// entry, bounded by the client timeout.
type Reporter struct {
	client Client
	wg     sync.WaitGroup
}

// NewReporter creates a reporter that logs through client
func NewReporter(client Client) *Reporter {
	return &Reporter{client: client}
}

// Report queues entry for the remote log. The request's cancellation does
// not apply to the background call.
func (r *Reporter) Report(ctx context.Context, entry *LogEntry) {
	if r == nil || entry == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.client.Log(ctx, entry)
	}()
}

// Wait blocks until every reported entry has been sent or dropped
func (r *Reporter) Wait() {
	if r == nil {
		return
	}
	r.wg.Wait()
}
