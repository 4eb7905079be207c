package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/artistpay/payout-portal/internal/api/metrics"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes notification jobs to a fixed set of workers using
// consistent hashing on the recipient, so emails to the same artist are
// sent in the order their triggering state changes happened. Delivery is
// best-effort: failures are logged and counted, never propagated back to
// the API call that enqueued the job.
type Dispatcher struct {
	workers  []chan ports.Notification
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.Notification, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a job to the worker responsible for its recipient. It never
// blocks the caller: when the worker's buffer is full the job is dropped and
// counted, consistent with delivery being best-effort.
func (d *Dispatcher) Enqueue(n ports.Notification) {
	select {
	case d.workers[d.shardIndex(n.Recipient)] <- n:
	default:
		metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "dropped").Inc()
		d.log.Warn().
			Str("kind", string(n.Kind)).
			Str("recipient", n.Recipient).
			Msg("notification queue full, job dropped")
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := d.notifier.Send(ctx, n); err != nil {
				metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "error").Inc()
				d.log.Warn().Err(err).
					Str("kind", string(n.Kind)).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "sent").Inc()
			d.log.Debug().Str("kind", string(n.Kind)).Msg("notification sent")
		}
	}
}
