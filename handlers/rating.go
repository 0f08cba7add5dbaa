// File: handlers/rating.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docta-server/models"
	"docta-server/services/rating"
	"docta-server/utils"
)

// RatingHandler exposes the rating endpoints.
type RatingHandler struct {
	Service rating.RatingService
}

// NewRatingHandler constructs a RatingHandler.
func NewRatingHandler(svc rating.RatingService) *RatingHandler {
	return &RatingHandler{Service: svc}
}

// CreateRatingHandler rates one of the caller's completed sessions.
func (h *RatingHandler) CreateRatingHandler(c *gin.Context) {
	var req models.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeBadRequest, "invalid input: "+err.Error())
		return
	}

	r, err := h.Service.Create(c.Request.Context(), c.GetString("userID"), c.Param("sessionId"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": r})
}

// UpdateRatingHandler edits the caller's own rating.
func (h *RatingHandler) UpdateRatingHandler(c *gin.Context) {
	var req models.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeBadRequest, "invalid input: "+err.Error())
		return
	}

	r, err := h.Service.Update(c.Request.Context(), c.GetString("userID"), c.Param("ratingId"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": r})
}

// DeleteRatingHandler soft-deletes the caller's own rating.
func (h *RatingHandler) DeleteRatingHandler(c *gin.Context) {
	r, err := h.Service.Delete(c.Request.Context(), c.GetString("userID"), c.Param("ratingId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": r})
}

// ListDoctorRatingsHandler lists a doctor's ratings, paginated, optionally
// filtered to a single rating value.
func (h *RatingHandler) ListDoctorRatingsHandler(c *gin.Context) {
	page, itemsPerPage := paginationParams(c)

	var ratingValue *int
	if raw := c.Query("rating"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 5 {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeBadRequest, "rating filter must be between 1 and 5")
			return
		}
		ratingValue = &v
	}

	items, totalItems, err := h.Service.ListDoctorRatings(c.Request.Context(), c.Param("doctorId"), ratingValue, page, itemsPerPage)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":         items,
		"totalItems":   totalItems,
		"page":         page,
		"itemsPerPage": itemsPerPage,
	})
}
