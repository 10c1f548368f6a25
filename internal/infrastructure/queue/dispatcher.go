package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/schnackhq/forum-api/internal/core/domain"
	"github.com/schnackhq/forum-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes auth audit events to a fixed set of workers using
// consistent hashing on the subject, guaranteeing per-account event ordering.
// Enqueue never blocks: when a worker's buffer is full the event is dropped
// and logged, keeping the authentication path fast.
type Dispatcher struct {
	workers []chan domain.AuthEvent
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuthEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its subject.
func (d *Dispatcher) Enqueue(event domain.AuthEvent) {
	select {
	case d.workers[d.shardIndex(event.Subject)] <- event:
	default:
		d.log.Warn().
			Str("subject", event.Subject).
			Str("type", string(event.Type)).
			Msg("audit buffer full, event dropped")
	}
}

// shardIndex maps a subject deterministically to a worker index.
func (d *Dispatcher) shardIndex(subject string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subject))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("subject", event.Subject).
					Int("worker_id", id).
					Msg("audit event processing failed")
			}
		}
	}
}
