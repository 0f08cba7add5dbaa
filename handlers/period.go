// File: handlers/period.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docta-server/models"
	"docta-server/services/period"
	"docta-server/utils"
)

// PeriodHandler exposes availability-slot endpoints.
type PeriodHandler struct {
	Service period.PeriodService
}

// NewPeriodHandler constructs a PeriodHandler.
func NewPeriodHandler(svc period.PeriodService) *PeriodHandler {
	return &PeriodHandler{Service: svc}
}

// CreatePeriodHandler creates an availability slot for the calling doctor.
func (h *PeriodHandler) CreatePeriodHandler(c *gin.Context) {
	var req models.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeBadRequest, "invalid input: "+err.Error())
		return
	}

	p, err := h.Service.Create(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": p})
}

// GetMyPeriodsHandler returns the calling doctor's full calendar in a range.
func (h *PeriodHandler) GetMyPeriodsHandler(c *gin.Context) {
	start, end, ok := timeRangeParams(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeBadRequest, "startTime and endTime are required")
		return
	}

	periods, err := h.Service.GetMyPeriods(c.Request.Context(), c.GetString("userID"), start, end)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": periods})
}

// GetDoctorAvailabilityHandler returns a doctor's bookable slots in a range.
func (h *PeriodHandler) GetDoctorAvailabilityHandler(c *gin.Context) {
	start, end, ok := timeRangeParams(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeBadRequest, "startTime and endTime are required")
		return
	}

	periods, err := h.Service.GetDoctorAvailability(c.Request.Context(), c.Param("doctorId"), start, end)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": periods})
}

// DeleteMyPeriodHandler soft-deletes an Available period of the caller.
func (h *PeriodHandler) DeleteMyPeriodHandler(c *gin.Context) {
	err := h.Service.DeleteMyAvailablePeriod(c.Request.Context(), c.GetString("userID"), c.Param("periodId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Period deleted successfully."})
}
