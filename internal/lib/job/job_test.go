package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	to    string
	sent  []email.ContactNotification
	err   error
	calls int
}

func (f *fakeNotifier) SendContactNotification(_ context.Context, to string, n email.ContactNotification) error {
	f.calls++
	f.to = to
	f.sent = append(f.sent, n)
	return f.err
}

func newTestJobService(n ContactNotifier) *JobService {
	logger := zerolog.Nop()
	return &JobService{notifier: n, logger: &logger}
}

func TestNewContactNotifyTask(t *testing.T) {
	submitted := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	task, err := NewContactNotifyTask(ContactNotifyPayload{
		To:          "owner@example.com",
		ContactID:   7,
		Name:        "Jane",
		Email:       "jane@example.com",
		Message:     "Hello",
		SubmittedAt: submitted,
	})
	require.NoError(t, err)

	assert.Equal(t, TaskContactNotify, task.Type())

	var decoded ContactNotifyPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, int64(7), decoded.ContactID)
	assert.Equal(t, "owner@example.com", decoded.To)
	assert.True(t, submitted.Equal(decoded.SubmittedAt))
}

func TestHandleContactNotifyTask(t *testing.T) {
	notifier := &fakeNotifier{}
	j := newTestJobService(notifier)

	task, err := NewContactNotifyTask(ContactNotifyPayload{
		To:          "owner@example.com",
		ContactID:   7,
		Name:        "Jane",
		Email:       "jane@example.com",
		Subject:     "Hi",
		Message:     "Hello",
		SubmittedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, j.handleContactNotifyTask(context.Background(), task))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "owner@example.com", notifier.to)
	assert.Equal(t, email.ContactNotification{
		ContactID:   7,
		Name:        "Jane",
		Email:       "jane@example.com",
		Subject:     "Hi",
		Message:     "Hello",
		SubmittedAt: "2024-05-01 09:30",
	}, notifier.sent[0])
}

func TestHandleContactNotifyTask_SendFailureIsRetried(t *testing.T) {
	sendErr := errors.New("resend unavailable")
	j := newTestJobService(&fakeNotifier{err: sendErr})

	task, err := NewContactNotifyTask(ContactNotifyPayload{To: "owner@example.com", ContactID: 1})
	require.NoError(t, err)

	err = j.handleContactNotifyTask(context.Background(), task)
	assert.ErrorIs(t, err, sendErr)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleContactNotifyTask_BadPayloadSkipsRetry(t *testing.T) {
	notifier := &fakeNotifier{}
	j := newTestJobService(notifier)

	err := j.handleContactNotifyTask(context.Background(), asynq.NewTask(TaskContactNotify, []byte("{not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Zero(t, notifier.calls)
}
