package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

// Notice is the payload handed over after a status change commits.
type Notice struct {
	AppointmentID string
	NewStatus     string
}

type AppointmentReader interface {
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
}

type LogStore interface {
	InsertNotificationLog(ctx context.Context, l *models.NotificationLog) error
}

// Dispatcher delivers notices off the request path. Each notice gets one
// delivery attempt; failures are logged and recorded, never retried.
type Dispatcher struct {
	appointments AppointmentReader
	logs         LogStore
	channel      Channel
	log          *zap.Logger
	timeout      time.Duration

	queue chan Notice
	wg    sync.WaitGroup
	once  sync.Once
}

func NewDispatcher(
	appointments AppointmentReader,
	logs LogStore,
	channel Channel,
	log *zap.Logger,
	size int,
) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		appointments: appointments,
		logs:         logs,
		channel:      channel,
		log:          log,
		timeout:      10 * time.Second,
		queue:        make(chan Notice, size),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

// Notify enqueues n without blocking. A full queue drops the notice.
func (d *Dispatcher) Notify(n Notice) {
	select {
	case d.queue <- n:
	default:
		d.log.Error("notification queue full, dropping notice",
			zap.String("appointment_id", n.AppointmentID),
			zap.String("status", n.NewStatus),
		)
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for n := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		d.handle(ctx, n)
		cancel()
	}
}

func (d *Dispatcher) handle(ctx context.Context, n Notice) {
	status, ok := StatusFor(n.NewStatus)
	if !ok {
		d.log.Warn("no notification template for status",
			zap.String("appointment_id", n.AppointmentID),
			zap.String("status", n.NewStatus),
		)
		return
	}

	ap, err := d.appointments.GetAppointment(ctx, n.AppointmentID)
	if err != nil {
		d.log.Error("notification lookup failed",
			zap.String("appointment_id", n.AppointmentID),
			zap.Error(err),
		)
		return
	}

	msg, err := Compose(status, ap)
	if err != nil {
		d.log.Error("notification compose failed", zap.Error(err))
		return
	}
	msg.NewStatus = n.NewStatus

	entry := &models.NotificationLog{
		AppointmentID: ap.ID,
		Status:        n.NewStatus,
		Channel:       d.channel.Name(),
		Recipient:     msg.Recipient,
		Outcome:       OutcomeSent,
	}

	if err := d.channel.Deliver(ctx, msg); err != nil {
		entry.Outcome = OutcomeFailed
		entry.Error = err.Error()
		d.log.Error("notification delivery failed",
			zap.String("appointment_id", ap.ID),
			zap.String("channel", d.channel.Name()),
			zap.Error(err),
		)
	}

	if d.logs == nil {
		return
	}
	if err := d.logs.InsertNotificationLog(ctx, entry); err != nil {
		d.log.Error("notification log write failed",
			zap.String("appointment_id", ap.ID),
			zap.Error(err),
		)
	}
}

// Close stops accepting notices and waits for pending deliveries.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}
