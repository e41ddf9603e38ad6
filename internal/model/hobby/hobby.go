package hobby

import "time"

type Category string

const (
	CategoryHobby Category = "hobby"
	CategoryTool  Category = "tool"
)

type Hobby struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
