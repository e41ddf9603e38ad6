package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskContactNotify emails the site owner about a new contact message.
	TaskContactNotify = "contact:notify"
)

// ContactNotifyPayload is stored in Redis as JSON.
type ContactNotifyPayload struct {
	To          string    `json:"to"`
	ContactID   int64     `json:"contact_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewContactNotifyTask builds the task: 3 retries on the default queue, 30s per attempt.
func NewContactNotifyTask(p ContactNotifyPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskContactNotify,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
