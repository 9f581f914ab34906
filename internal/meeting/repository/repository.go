package repository

import (
	"summarizer-backend/internal/meeting/domain"
)

// MeetingRepository defines the interface for meeting transcript data access
type MeetingRepository interface {
	// Create creates a new meeting transcript, assigning its id
	Create(meeting *domain.MeetingTranscript) error

	// FindByID finds a meeting by its ID; returns (nil, nil) when absent
	FindByID(id string) (*domain.MeetingTranscript, error)

	// FindAll returns all meetings, newest first
	FindAll() ([]*domain.MeetingTranscript, error)

	// Update updates an existing meeting, refreshing its updated_at
	Update(meeting *domain.MeetingTranscript) error

	// Delete deletes a meeting and all of its email shares
	Delete(id string) error
}

// EmailShareRepository defines the interface for email share data access
type EmailShareRepository interface {
	// Create creates a new share record, assigning its id and sent_at
	Create(share *domain.EmailShare) error

	// FindByTranscriptID returns all shares for a meeting, newest first
	FindByTranscriptID(transcriptID string) ([]*domain.EmailShare, error)
}
