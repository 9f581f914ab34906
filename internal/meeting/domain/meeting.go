package domain

import "time"

// MeetingTranscript stores a meeting transcript and its generated summary.
// TranscriptText may be empty when the record is created purely to hold an
// edited summary.
type MeetingTranscript struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Title             string    `json:"title"`
	TranscriptText    string    `json:"transcript_text" gorm:"type:text"`
	CustomInstruction string    `json:"custom_instruction" gorm:"type:text"`
	Summary           string    `json:"summary" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (MeetingTranscript) TableName() string {
	return "meeting_transcripts"
}

// EmailShare records a simulated email share of a meeting summary.
// Creating the record is the "send" action; no delivery happens.
// SentAt is set once at creation and never mutated.
type EmailShare struct {
	ID              string            `json:"id" gorm:"primaryKey"`
	TranscriptID    string            `json:"transcript_id" gorm:"index;not null"`
	Transcript      MeetingTranscript `json:"-" gorm:"foreignKey:TranscriptID;constraint:OnDelete:CASCADE"`
	RecipientEmails string            `json:"recipient_emails" gorm:"type:text"` // comma-separated, not parsed further
	Subject         string            `json:"subject"`
	Message         string            `json:"message" gorm:"type:text"`
	SentAt          time.Time         `json:"sent_at"`
}

// TableName specifies the table name for GORM
func (EmailShare) TableName() string {
	return "email_shares"
}
