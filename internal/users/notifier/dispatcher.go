package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"userdir/internal/users/model"

	"github.com/cenkalti/backoff/v4"
)

// StateStore persists notification-state transitions. The user repository
// implements it.
type StateStore interface {
	SetNotificationState(ctx context.Context, id, state, lastErr string) error
}

type Config struct {
	QueueSize    int           `env:"NOTIFIER_QUEUE_SIZE"    envDefault:"256"`
	Workers      int           `env:"NOTIFIER_WORKERS"       envDefault:"4"`
	MaxRetries   uint64        `env:"NOTIFIER_MAX_RETRIES"   envDefault:"2"`
	StoreTimeout time.Duration `env:"NOTIFIER_STORE_TIMEOUT" envDefault:"10s"`
}

// Dispatcher delivers registration mail off the request path. Enqueue never
// blocks the ingestion pipeline, and a delivery failure only affects the
// user's notification state, never the batch outcome that created the user.
type Dispatcher struct {
	mailer Mailer
	store  StateStore
	logger *slog.Logger
	conf   Config

	queue chan *model.User
	wg    sync.WaitGroup
}

func NewDispatcher(mailer Mailer, store StateStore, conf Config, logger *slog.Logger) *Dispatcher {
	if conf.QueueSize < 1 {
		conf.QueueSize = 256
	}
	if conf.Workers < 1 {
		conf.Workers = 1
	}
	if conf.StoreTimeout <= 0 {
		conf.StoreTimeout = 10 * time.Second
	}

	d := &Dispatcher{
		mailer: mailer,
		store:  store,
		logger: logger,
		conf:   conf,
		queue:  make(chan *model.User, conf.QueueSize),
	}
	for i := 0; i < conf.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Enqueue hands a newly created user to the delivery workers. When the queue
// is full the user is marked failed right away so a later retry sweep can
// pick it up instead of stalling the caller.
func (d *Dispatcher) Enqueue(user *model.User) {
	select {
	case d.queue <- user:
	default:
		d.logger.Warn("notification queue full", "user_id", user.ID, "email", user.Email)
		d.markState(user, model.NotificationFailed, "notification queue full")
	}
}

// Close stops accepting work and waits for in-flight deliveries to finish.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for user := range d.queue {
		d.deliver(user)
	}
}

func (d *Dispatcher) deliver(user *model.User) {
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), d.conf.MaxRetries)
	err := backoff.Retry(func() error {
		return d.mailer.SendRegistrationEmail(user)
	}, policy)
	if err != nil {
		d.logger.Warn("registration mail delivery failed", "user_id", user.ID, "error", err)
		d.markState(user, model.NotificationFailed, err.Error())
		return
	}
	d.markState(user, model.NotificationSent, "")
}

func (d *Dispatcher) markState(user *model.User, state, lastErr string) {
	ctx, cancel := context.WithTimeout(context.Background(), d.conf.StoreTimeout)
	defer cancel()

	if err := d.store.SetNotificationState(ctx, user.ID, state, lastErr); err != nil {
		d.logger.Error("failed to record notification state",
			"user_id", user.ID,
			"state", state,
			"error", err,
		)
	}
}
