// File: handlers/doctor.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docta-server/models"
	"docta-server/services/doctor"
	"docta-server/utils"
)

// DoctorHandler exposes the public doctor read endpoints.
type DoctorHandler struct {
	Service doctor.DoctorService
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// GetDoctorBySlugHandler returns a doctor's public profile.
func (h *DoctorHandler) GetDoctorBySlugHandler(c *gin.Context) {
	doc, err := h.Service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

// FilterDoctorsHandler lists visible doctors matching optional filters.
func (h *DoctorHandler) FilterDoctorsHandler(c *gin.Context) {
	var filter models.DoctorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeBadRequest, "invalid filters: "+err.Error())
		return
	}

	page, itemsPerPage := paginationParams(c)
	items, totalItems, err := h.Service.Filter(c.Request.Context(), filter, page, itemsPerPage)
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
