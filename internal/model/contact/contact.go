package contact

import "time"

type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// Contact is a message left through the public contact form.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats counts messages per status. LastMessageDate is YYYY-MM-DD, nil without messages.
type Stats struct {
	TotalMessages   int64   `json:"total_messages"`
	NewMessages     int64   `json:"new_messages"`
	ReadMessages    int64   `json:"read_messages"`
	RepliedMessages int64   `json:"replied_messages"`
	LastMessageDate *string `json:"last_message_date"`
}
