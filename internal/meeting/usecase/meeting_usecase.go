package usecase

import (
	"context"
	"errors"
	"fmt"

	"summarizer-backend/internal/meeting/domain"
	"summarizer-backend/internal/meeting/repository"
	"summarizer-backend/pkg/ai"
)

// ErrMeetingNotFound is returned when a referenced meeting does not exist.
// Handlers map it to a 404 response.
var ErrMeetingNotFound = errors.New("meeting not found")

const defaultShareSubject = "Meeting Summary"

// SummaryGenerator produces a summary through the tiered provider chain.
// It never fails; the terminal rule-based tier always yields a result.
type SummaryGenerator interface {
	Generate(ctx context.Context, transcript, instruction string) ai.Result
}

// GenerateSummaryResult is the outcome of a summary generation: the
// persisted meeting id, the summary text, and the tier that produced it.
type GenerateSummaryResult struct {
	MeetingID string
	Summary   string
	Tier      ai.Tier
}

// MeetingUsecase defines the business operations over meeting transcripts
type MeetingUsecase interface {
	// GenerateSummary runs the summary chain and persists a new meeting
	// holding the transcript and the winning summary
	GenerateSummary(ctx context.Context, transcriptText, customInstruction string) (*GenerateSummaryResult, error)

	// SaveMeeting updates title/summary of an existing meeting, or creates
	// a new one with empty transcript text when no id is supplied
	SaveMeeting(meetingID, title, summary string) (string, error)

	// ShareViaEmail records a simulated email share of a meeting summary
	ShareViaEmail(meetingID, recipientEmails, subject, message string) (*domain.EmailShare, error)

	// GetMeeting loads a meeting by id
	GetMeeting(id string) (*domain.MeetingTranscript, error)

	// ListMeetings returns all meetings, newest first
	ListMeetings() ([]*domain.MeetingTranscript, error)

	// DeleteMeeting deletes a meeting and cascades to its shares
	DeleteMeeting(id string) error
}

type meetingUsecase struct {
	meetings repository.MeetingRepository
	shares   repository.EmailShareRepository
	chain    SummaryGenerator
}

// NewMeetingUsecase creates a new MeetingUsecase
func NewMeetingUsecase(meetings repository.MeetingRepository, shares repository.EmailShareRepository, chain SummaryGenerator) MeetingUsecase {
	return &meetingUsecase{
		meetings: meetings,
		shares:   shares,
		chain:    chain,
	}
}

func (u *meetingUsecase) GenerateSummary(ctx context.Context, transcriptText, customInstruction string) (*GenerateSummaryResult, error) {
	result := u.chain.Generate(ctx, transcriptText, customInstruction)

	meeting := &domain.MeetingTranscript{
		TranscriptText:    transcriptText,
		CustomInstruction: customInstruction,
		Summary:           result.Summary,
	}
	if err := u.meetings.Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to save meeting: %w", err)
	}

	return &GenerateSummaryResult{
		MeetingID: meeting.ID,
		Summary:   result.Summary,
		Tier:      result.Tier,
	}, nil
}

func (u *meetingUsecase) SaveMeeting(meetingID, title, summary string) (string, error) {
	if meetingID != "" {
		meeting, err := u.meetings.FindByID(meetingID)
		if err != nil {
			return "", err
		}
		if meeting == nil {
			return "", ErrMeetingNotFound
		}
		meeting.Title = title
		meeting.Summary = summary
		if err := u.meetings.Update(meeting); err != nil {
			return "", err
		}
		return meeting.ID, nil
	}

	meeting := &domain.MeetingTranscript{
		Title:          title,
		Summary:        summary,
		TranscriptText: "",
	}
	if err := u.meetings.Create(meeting); err != nil {
		return "", err
	}
	return meeting.ID, nil
}

func (u *meetingUsecase) ShareViaEmail(meetingID, recipientEmails, subject, message string) (*domain.EmailShare, error) {
	meeting, err := u.meetings.FindByID(meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	if subject == "" {
		subject = defaultShareSubject
	}

	share := &domain.EmailShare{
		TranscriptID:    meeting.ID,
		RecipientEmails: recipientEmails,
		Subject:         subject,
		Message:         message,
	}
	if err := u.shares.Create(share); err != nil {
		return nil, err
	}
	return share, nil
}

func (u *meetingUsecase) GetMeeting(id string) (*domain.MeetingTranscript, error) {
	meeting, err := u.meetings.FindByID(id)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}
	return meeting, nil
}

func (u *meetingUsecase) ListMeetings() ([]*domain.MeetingTranscript, error) {
	return u.meetings.FindAll()
}

func (u *meetingUsecase) DeleteMeeting(id string) error {
	meeting, err := u.meetings.FindByID(id)
	if err != nil {
		return err
	}
	if meeting == nil {
		return ErrMeetingNotFound
	}
	return u.meetings.Delete(id)
}
