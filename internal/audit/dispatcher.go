package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Event struct {
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	Metadata any       `json:"metadata,omitempty"`
	At       time.Time `json:"at"`
}

// Recorder accepts audit events without blocking the request.
type Recorder interface {
	Dispatch(ev Event)
}

// Publisher fans events out to an external channel.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	logger    *Logger
	publisher Publisher
	log       *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan Event
	done   chan struct{}
}

// NewDispatcher starts the background worker. publisher may be nil.
func NewDispatcher(logger *Logger, publisher Publisher, log *zap.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dispatcher{
		logger:    logger,
		publisher: publisher,
		log:       log,
		queue:     make(chan Event, size),
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := d.logger.Log(ctx, ev); err != nil {
			d.log.Error("audit persist failed", zap.String("action", ev.Action), zap.Error(err))
		}

		if d.publisher != nil {
			if err := d.publisher.Publish(ctx, ev); err != nil {
				d.log.Warn("audit publish failed", zap.String("action", ev.Action), zap.Error(err))
			}
		}

		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", zap.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		// queue full: the request must not fail because of auditing
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

// Nop discards every event.
type Nop struct{}

func (Nop) Dispatch(Event) {}
