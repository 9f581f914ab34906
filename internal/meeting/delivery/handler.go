package delivery

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"summarizer-backend/internal/meeting/dto"
	"summarizer-backend/internal/meeting/usecase"
)

// MeetingHandler handles the meeting summarizer API endpoints
type MeetingHandler struct {
	usecase usecase.MeetingUsecase
}

// NewMeetingHandler creates a new MeetingHandler
func NewMeetingHandler(uc usecase.MeetingUsecase) *MeetingHandler {
	return &MeetingHandler{usecase: uc}
}

// POST /api/generate-summary/
// GenerateSummary runs the tiered summary chain over the posted transcript
// and persists a new meeting with the result
func (h *MeetingHandler) GenerateSummary(c *gin.Context) {
	var req dto.GenerateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.usecase.GenerateSummary(c.Request.Context(), req.TranscriptText, req.CustomInstruction)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"summary":    result.Summary,
		"meeting_id": result.MeetingID,
	})
}

// POST /api/save-meeting/
// SaveMeeting updates title/summary of an existing meeting, or creates a
// new one when no meeting_id is supplied
func (h *MeetingHandler) SaveMeeting(c *gin.Context) {
	var req dto.SaveMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	meetingID, err := h.usecase.SaveMeeting(req.MeetingID, req.Title, req.Summary)
	if err != nil {
		if errors.Is(err, usecase.ErrMeetingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "meeting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"meeting_id": meetingID,
	})
}

// POST /api/share-email/
// ShareViaEmail records an email share of a meeting summary. No real
// delivery happens; the record is the send.
func (h *MeetingHandler) ShareViaEmail(c *gin.Context) {
	var req dto.ShareEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	share, err := h.usecase.ShareViaEmail(req.MeetingID, req.RecipientEmails, req.Subject, req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrMeetingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "meeting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  fmt.Sprintf("Summary shared successfully to %s", share.RecipientEmails),
		"share_id": share.ID,
	})
}

// GET /api/meeting/:id/
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	meeting, err := h.usecase.GetMeeting(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrMeetingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "meeting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// GET /api/meetings/
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	meetings, err := h.usecase.ListMeetings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// DELETE /api/meeting/:id/
// DeleteMeeting removes a meeting and cascades to its email shares
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	if err := h.usecase.DeleteMeeting(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrMeetingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "meeting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
