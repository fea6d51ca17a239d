package services

import (
	"context"
	"log/slog"

	"github.com/baharkarakas/portfolio-api/internal/api/validate"
	"github.com/baharkarakas/portfolio-api/internal/metrics"
	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

// Notifier is told about every stored contact message.
type Notifier interface {
	NotifyContact(ctx context.Context, m models.ContactMessage) error
}

// LogNotifier writes the message metadata to the log. The body is left out.
type LogNotifier struct {
	Log *slog.Logger
}

func (n LogNotifier) NotifyContact(_ context.Context, m models.ContactMessage) error {
	n.Log.Info("new contact message", "id", m.ID, "name", m.Name, "email", m.Email, "size", len(m.Message))
	return nil
}

// Submitter queues work off the request path. *worker.Pool satisfies it.
type Submitter interface {
	Submit(f func()) error
}

type ContactService struct {
	r        repo.ContactMessages
	wp       Submitter
	notifier Notifier
	log      *slog.Logger
}

func NewContactService(r repo.ContactMessages, wp Submitter, n Notifier, log *slog.Logger) *ContactService {
	return &ContactService{r: r, wp: wp, notifier: n, log: log}
}

// Submit validates and stores the message, then queues a notification. A
// notification that cannot be queued or fails is logged only.
func (s *ContactService) Submit(ctx context.Context, in validate.ContactInput) (models.ContactMessage, error) {
	in.Normalize()
	if err := validate.Check(in); err != nil {
		return models.ContactMessage{}, err
	}
	m, err := s.r.Create(ctx, in.ToModel())
	if err != nil {
		return models.ContactMessage{}, err
	}
	metrics.ContactMessagesReceived.Inc()

	if s.wp != nil && s.notifier != nil {
		// the request context is gone by the time the job runs
		jobCtx := context.WithoutCancel(ctx)
		if err := s.wp.Submit(func() { s.notify(jobCtx, m) }); err != nil {
			s.log.Warn("contact notification not queued", "id", m.ID, "err", err)
		}
	}
	return m, nil
}

func (s *ContactService) notify(ctx context.Context, m models.ContactMessage) {
	if err := s.notifier.NotifyContact(ctx, m); err != nil {
		metrics.NotificationsFailed.Inc()
		s.log.Error("contact notification failed", "id", m.ID, "err", err)
	}
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.r.List(ctx)
}

func (s *ContactService) Get(ctx context.Context, id int64) (models.ContactMessage, error) {
	return s.r.Get(ctx, id)
}

func (s *ContactService) MarkRead(ctx context.Context, id int64) (models.ContactMessage, error) {
	m, err := s.r.MarkRead(ctx, id)
	if err != nil {
		return models.ContactMessage{}, err
	}
	metrics.ContactMessagesRead.Inc()
	return m, nil
}
