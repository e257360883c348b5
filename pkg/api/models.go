package api

import "time"

type LogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	IP         string    `json:"ip"`
	StatusCode int       `json:"status_code"`
	Bytes      int       `json:"bytes"`
	RequestID  string    `json:"request_id"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Duration   float64   `json:"duration_sec"`
	Service    string    `json:"service"`
}

type censorRequest struct {
	Text string `json:"text"`
	// Character overrides the configured replacement character.
	Character string `json:"character,omitempty"`
}

type censorResponse struct {
	Text    string   `json:"text"`
	Matched []string `json:"matched,omitempty"`
}

type wordsResponse struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

type healthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}
