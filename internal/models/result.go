package models

import "time"

// Result holds the three model outputs of one successful analysis.
type Result struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
	MindMap    string `json:"mind_map"`
}

// Analysis is the record the shell keeps for the last analysis of a session.
type Analysis struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	Language     Language  `json:"language"`
	LanguageName string    `json:"language_name"`
	Kind         string    `json:"kind"`
	Result       Result    `json:"result"`
	CreatedAt    time.Time `json:"created_at"`
}
