package models

import "time"

// MediaObject is a single object listed from a storage bucket. Folders are
// simulated by zero-byte marker objects whose key ends with a slash.
type MediaObject struct {
	Bucket     string    `json:"bucket"`
	Key        string    `json:"key"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type,omitempty"`
	IsFolder   bool      `json:"is_folder"`
	ModifiedAt time.Time `json:"modified_at"`
}
