package models

import "time"

// Generation is the persisted history record for one generated tab.
// History is optional; the table only exists when a database is
// configured.
type Generation struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Root     string `gorm:"size:3;index" json:"root"`
	Scale    string `gorm:"size:32;index" json:"scale"`
	Pattern  string `gorm:"size:32;index" json:"pattern"`
	Bars     int    `json:"bars"`
	Position int    `json:"position"`
	Tuning   string `gorm:"size:32" json:"tuning"`

	Tab       string `gorm:"type:text" json:"tab"`
	NoteCount int    `json:"note_count"`
	Passed    bool   `json:"passed"`

	// Set when the request came through the style interpreter.
	StylePrompt string `gorm:"type:text" json:"style_prompt,omitempty"`
	Reasoning   string `gorm:"type:text" json:"reasoning,omitempty"`
}
