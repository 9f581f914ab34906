package dto

type GenerateSummaryRequest struct {
	TranscriptText    string `json:"transcript_text" binding:"required"`
	CustomInstruction string `json:"custom_instruction"`
}

type SaveMeetingRequest struct {
	MeetingID string `json:"meeting_id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
}

type ShareEmailRequest struct {
	MeetingID       string `json:"meeting_id" binding:"required"`
	RecipientEmails string `json:"recipient_emails"`
	Subject         string `json:"subject"`
	Message         string `json:"message"`
}
