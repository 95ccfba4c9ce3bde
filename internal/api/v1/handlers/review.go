package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"audio-review/internal/api/errors"
	"audio-review/internal/api/middleware"
	"audio-review/internal/api/v1/dto"
	"audio-review/internal/api/v1/services"
)

// ReviewHandler handles the review screen endpoints
type ReviewHandler struct {
	service services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service: service,
	}
}

// ListAudioFiles handles GET /api/audio-files
//
// @Summary List audio files with their transcription history
// @Description Every audio file on disk, sorted by name, with its latest transcription and rating. Files that were never transcribed carry a negative placeholder id.
// @Tags review
// @Produce json
// @Success 200 {array} model.FileView "Audio files"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /audio-files [get]
func (h *ReviewHandler) ListAudioFiles(c *gin.Context) {
	views, err := h.service.ListFiles(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// SaveTranscription handles POST /api/save-transcription
//
// @Summary Save a transcription
// @Description Appends a transcription to the file's history. Saving text identical to an existing entry for the same file is a no-op and reports inserted=false.
// @Tags review
// @Accept json
// @Produce json
// @Param transcription body dto.SaveTranscriptionRequest true "File name and transcription text"
// @Success 200 {object} dto.SaveTranscriptionResponse "Saved"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /save-transcription [post]
func (h *ReviewHandler) SaveTranscription(c *gin.Context) {
	var req dto.SaveTranscriptionRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.SaveTranscription(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// RateTranscription handles POST /api/transcriptions/:id/rating
//
// @Summary Rate a transcription
// @Description Sets the rating (0 to 5) of one history entry and refreshes its timestamp, which makes it the file's current transcription.
// @Tags review
// @Accept json
// @Produce json
// @Param id path int true "Transcription ID" minimum(1)
// @Param rating body dto.RatingRequest true "Rating"
// @Success 200 {object} dto.StatusResponse "Rated"
// @Failure 400 {object} errors.APIError "Invalid transcription ID"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 422 {object} errors.APIError "Rating out of range"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions/{id}/rating [post]
func (h *ReviewHandler) RateTranscription(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid transcription ID"))
		return
	}

	var req dto.RatingRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.RateTranscription(c.Request.Context(), id, *req.Rating); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK())
}

// InitDB handles POST /api/init-db
//
// @Summary Initialize the transcription store
// @Description Creates the transcriptions table and upgrades older schemas. Safe to call repeatedly.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.StatusResponse "Initialized"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /init-db [post]
func (h *ReviewHandler) InitDB(c *gin.Context) {
	if err := h.service.InitializeStore(c.Request.Context()); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK())
}
