package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/lib/job"
	"github.com/deppfellow/portfolio-backend/internal/middleware"
	"github.com/deppfellow/portfolio-backend/internal/model/contact"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

type ContactRepository interface {
	ListContacts(ctx context.Context, status contact.Status) ([]contact.Contact, error)
	GetContact(ctx context.Context, id int64) (*contact.Contact, error)
	CreateContact(ctx context.Context, p *contact.SubmitContactPayload) (*contact.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status contact.Status) (*contact.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*contact.Stats, error)
}

// TaskEnqueuer is the part of *asynq.Client the contact service uses.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

const contactNotFound = "Contact not found"

type ContactService struct {
	repo     ContactRepository
	tasks    TaskEnqueuer
	notifyTo string
}

// NewContactService builds the service. With a nil tasks or an empty
// notifyTo, submissions are stored without a notification.
func NewContactService(repo ContactRepository, tasks TaskEnqueuer, notifyTo string) *ContactService {
	return &ContactService{
		repo:     repo,
		tasks:    tasks,
		notifyTo: notifyTo,
	}
}

func (s *ContactService) ListContacts(c echo.Context, query *contact.ListContactsQuery) ([]contact.Contact, error) {
	contacts, err := s.repo.ListContacts(c.Request().Context(), query.Status)
	if err != nil {
		return nil, repoError(c, err, contactNotFound, "list_contacts")
	}
	return contacts, nil
}

func (s *ContactService) GetContact(c echo.Context, id int64) (*contact.Contact, error) {
	msg, err := s.repo.GetContact(c.Request().Context(), id)
	if err != nil {
		return nil, repoError(c, err, contactNotFound, "get_contact")
	}
	return msg, nil
}

// SubmitContact stores a contact form message with status "new" and
// queues the owner notification. A failed enqueue is logged only: the
// message is already saved and the sender should not see an error.
func (s *ContactService) SubmitContact(c echo.Context, payload *contact.SubmitContactPayload) (*contact.Contact, error) {
	msg, err := s.repo.CreateContact(c.Request().Context(), payload)
	if err != nil {
		return nil, repoError(c, err, contactNotFound, "submit_contact")
	}

	logger := middleware.GetLogger(c)
	logger.Info().
		Int64("contact_id", msg.ID).
		Msg("contact message received")

	if s.tasks == nil || s.notifyTo == "" {
		return msg, nil
	}

	task, err := job.NewContactNotifyTask(job.ContactNotifyPayload{
		To:          s.notifyTo,
		ContactID:   msg.ID,
		Name:        msg.Name,
		Email:       msg.Email,
		Subject:     msg.Subject,
		Message:     msg.Message,
		SubmittedAt: msg.CreatedAt,
	})
	if err != nil {
		logger.Error().Err(err).Int64("contact_id", msg.ID).Msg("failed to build contact notification task")
		return msg, nil
	}

	info, err := s.tasks.EnqueueContext(c.Request().Context(), task)
	if err != nil {
		logger.Error().Err(err).Int64("contact_id", msg.ID).Msg("failed to enqueue contact notification")
		return msg, nil
	}

	logger.Debug().
		Str("task_id", info.ID).
		Int64("contact_id", msg.ID).
		Msg("contact notification enqueued")

	return msg, nil
}

func (s *ContactService) UpdateContactStatus(c echo.Context, payload *contact.UpdateStatusPayload) (*contact.Contact, error) {
	msg, err := s.repo.UpdateStatus(c.Request().Context(), payload.ID, payload.Status)
	if err != nil {
		return nil, repoError(c, err, contactNotFound, "update_contact_status")
	}
	return msg, nil
}

func (s *ContactService) DeleteContact(c echo.Context, id int64) error {
	if err := s.repo.DeleteContact(c.Request().Context(), id); err != nil {
		return repoError(c, err, contactNotFound, "delete_contact")
	}
	return nil
}

func (s *ContactService) ContactStats(c echo.Context) (*contact.Stats, error) {
	stats, err := s.repo.Stats(c.Request().Context())
	if err != nil {
		return nil, repoError(c, err, contactNotFound, "contact_stats")
	}
	return stats, nil
}
