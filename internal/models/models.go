package models

import "time"

// RefreshMsg tells the dashboard views to reload from the access log.
type RefreshMsg struct{}

// AccessRecord is one answered request as written to the access log.
type AccessRecord struct {
	Id          int64     `json:"id" sqliteDb:"id,primary"`
	Time        time.Time `json:"time" sqliteDb:"time"`
	RemoteAddr  string    `json:"remote_addr" sqliteDb:"remote_addr"`
	Path        string    `json:"path" sqliteDb:"path"`
	Status      int       `json:"status" sqliteDb:"status"`
	Bytes       int64     `json:"bytes" sqliteDb:"bytes"`
	ContentType string    `json:"content_type" sqliteDb:"content_type"`
}

// AccessSummary aggregates the access log for the dashboard.
type AccessSummary struct {
	Total     int64         `json:"total"`
	BytesSent int64         `json:"bytes_sent"`
	ByStatus  map[int]int64 `json:"by_status"`
	TopPaths  []PathCount   `json:"top_paths"`
}

type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}
