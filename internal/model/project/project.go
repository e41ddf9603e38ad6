package project

import "time"

type Project struct {
	ID           int64     `json:"id"`
	ProfileID    int64     `json:"profile_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Link         string    `json:"link"`
	Image        string    `json:"image"`
	Tags         string    `json:"tags"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
