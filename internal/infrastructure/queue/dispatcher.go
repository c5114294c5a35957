package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/api/metrics"
	"github.com/obrasys/backoffice/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher writes notification rows asynchronously. Inputs are sharded to
// a fixed set of workers by recipient id, preserving per-recipient feed
// ordering. Callers never observe the outcome (fire-and-forget).
type Dispatcher struct {
	workers []chan ports.NotificationInput
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify implements ports.Notifier. Non-blocking up to channelBuffer
// capacity per worker.
func (d *Dispatcher) Notify(input ports.NotificationInput) {
	shard := d.shardIndex(input.RecipientID)
	d.workers[shard] <- input
	metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(shard)).Set(float64(len(d.workers[shard])))
}

// shardIndex maps a recipient id deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipientID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipientID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.service.Process(ctx, input); err != nil {
				d.log.Error().Err(err).
					Str("recipient_id", input.RecipientID).
					Str("kind", input.Kind).
					Int("worker_id", id).
					Msg("notification write failed")
				metrics.NotificationsFailedTotal.WithLabelValues(input.Kind).Inc()
				continue
			}
			metrics.NotificationsDispatchedTotal.WithLabelValues(input.Kind).Inc()
		}
	}
}
