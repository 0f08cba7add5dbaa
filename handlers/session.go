// File: handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docta-server/services/session"
	"docta-server/utils"
)

// SessionHandler exposes the reservation endpoints.
type SessionHandler struct {
	Service session.SessionService
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(svc session.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

// BookSessionHandler reserves a period for the calling patient.
func (h *SessionHandler) BookSessionHandler(c *gin.Context) {
	sess, err := h.Service.Book(c.Request.Context(), c.GetString("userID"), c.Param("periodId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": sess})
}

// GetPatientSessionHandler returns one of the caller's own sessions.
func (h *SessionHandler) GetPatientSessionHandler(c *gin.Context) {
	detail, err := h.Service.GetPatientSession(c.Request.Context(), c.GetString("userID"), c.Param("sessionId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// GetDoctorSessionHandler returns one of the calling doctor's sessions.
func (h *SessionHandler) GetDoctorSessionHandler(c *gin.Context) {
	detail, err := h.Service.GetDoctorSession(c.Request.Context(), c.GetString("userID"), c.Param("sessionId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// GetPatientFromSessionHandler returns the public profile of the patient
// booked on one of the calling doctor's sessions.
func (h *SessionHandler) GetPatientFromSessionHandler(c *gin.Context) {
	patient, err := h.Service.GetPatientFromSession(c.Request.Context(), c.GetString("userID"), c.Param("sessionId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": patient})
}

// ListPatientSessionsHandler lists the caller's sessions, paginated.
func (h *SessionHandler) ListPatientSessionsHandler(c *gin.Context) {
	page, itemsPerPage := paginationParams(c)
	items, totalItems, err := h.Service.ListPatientSessions(c.Request.Context(), c.GetString("userID"), page, itemsPerPage)
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

// ListDoctorSessionsHandler lists the calling doctor's sessions, paginated.
func (h *SessionHandler) ListDoctorSessionsHandler(c *gin.Context) {
	page, itemsPerPage := paginationParams(c)
	items, totalItems, err := h.Service.ListDoctorSessions(c.Request.Context(), c.GetString("userID"), page, itemsPerPage)
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

// CancelByDoctorHandler cancels a paid session on the doctor's side.
func (h *SessionHandler) CancelByDoctorHandler(c *gin.Context) {
	detail, err := h.Service.CancelByDoctor(c.Request.Context(), c.GetString("userID"), c.Param("sessionId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled successfully.", "data": detail})
}

// CancelByPatientHandler cancels a session on the patient's side.
func (h *SessionHandler) CancelByPatientHandler(c *gin.Context) {
	detail, err := h.Service.CancelByPatient(c.Request.Context(), c.GetString("userID"), c.Param("sessionId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled successfully.", "data": detail})
}
