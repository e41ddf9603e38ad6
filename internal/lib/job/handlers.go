package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/lib/email"
	"github.com/hibiken/asynq"
)

// ContactNotifier delivers contact notifications. *email.Client implements it.
type ContactNotifier interface {
	SendContactNotification(ctx context.Context, to string, n email.ContactNotification) error
}

const submittedAtFormat = "2006-01-02 15:04"

func (j *JobService) handleContactNotifyTask(ctx context.Context, t *asynq.Task) error {
	var p ContactNotifyPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A payload that cannot be decoded never will be; skip the retries.
		return fmt.Errorf("failed to unmarshal contact notify payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskContactNotify).
		Int64("contact_id", p.ContactID).
		Msg("Processing contact notification task")

	err := j.notifier.SendContactNotification(ctx, p.To, email.ContactNotification{
		ContactID:   p.ContactID,
		Name:        p.Name,
		Email:       p.Email,
		Subject:     p.Subject,
		Message:     p.Message,
		SubmittedAt: p.SubmittedAt.UTC().Format(submittedAtFormat),
	})
	if err != nil {
		j.logger.Error().
			Str("type", TaskContactNotify).
			Int64("contact_id", p.ContactID).
			Err(err).
			Msg("Failed to send contact notification")
		return err
	}

	j.logger.Info().
		Str("type", TaskContactNotify).
		Int64("contact_id", p.ContactID).
		Msg("Successfully sent contact notification")

	return nil
}
