package notify

import (
	"context"
	"sync"
)

type collectorKey struct{}

// Collector records the notices raised while handling one request so they
// can be returned with its response
type Collector struct {
	mu       sync.Mutex
	messages []string
}

// WithCollector returns a context whose notices are recorded by the
// returned collector in addition to being published
func WithCollector(ctx context.Context) (context.Context, *Collector) {
	c := &Collector{}
	return context.WithValue(ctx, collectorKey{}, c), c
}

// Messages returns the recorded notices in order
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.messages))
	copy(out, c.messages)
	return out
}

func record(ctx context.Context, message string) {
	c, ok := ctx.Value(collectorKey{}).(*Collector)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
}
