package models

import "time"

// Document is a stored file such as a rendered manifest.
type Document struct {
	ID          string    `json:"id"`
	TripID      int64     `json:"trip_id"`
	Kind        string    `json:"kind"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
