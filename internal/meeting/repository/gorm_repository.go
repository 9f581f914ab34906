package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"summarizer-backend/internal/meeting/domain"
)

// gormMeetingRepository implements MeetingRepository using GORM
type gormMeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new GORM-based MeetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &gormMeetingRepository{db: db}
}

func (r *gormMeetingRepository) Create(meeting *domain.MeetingTranscript) error {
	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	now := time.Now()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now
	return r.db.Create(meeting).Error
}

func (r *gormMeetingRepository) FindByID(id string) (*domain.MeetingTranscript, error) {
	var meeting domain.MeetingTranscript
	err := r.db.Where("id = ?", id).First(&meeting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

func (r *gormMeetingRepository) FindAll() ([]*domain.MeetingTranscript, error) {
	var meetings []*domain.MeetingTranscript
	err := r.db.Order("created_at DESC").Find(&meetings).Error
	return meetings, err
}

func (r *gormMeetingRepository) Update(meeting *domain.MeetingTranscript) error {
	meeting.UpdatedAt = time.Now()
	return r.db.Save(meeting).Error
}

// Delete removes the meeting and its shares. The shares are deleted
// explicitly so the cascade holds on SQLite runs where foreign key
// enforcement is off by default.
func (r *gormMeetingRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transcript_id = ?", id).Delete(&domain.EmailShare{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.MeetingTranscript{}, "id = ?", id).Error
	})
}

// gormEmailShareRepository implements EmailShareRepository using GORM
type gormEmailShareRepository struct {
	db *gorm.DB
}

// NewEmailShareRepository creates a new GORM-based EmailShareRepository
func NewEmailShareRepository(db *gorm.DB) EmailShareRepository {
	return &gormEmailShareRepository{db: db}
}

func (r *gormEmailShareRepository) Create(share *domain.EmailShare) error {
	if share.ID == "" {
		share.ID = uuid.New().String()
	}
	share.SentAt = time.Now()
	return r.db.Omit("Transcript").Create(share).Error
}

func (r *gormEmailShareRepository) FindByTranscriptID(transcriptID string) ([]*domain.EmailShare, error) {
	var shares []*domain.EmailShare
	err := r.db.Where("transcript_id = ?", transcriptID).Order("sent_at DESC").Find(&shares).Error
	return shares, err
}
