package handlers

import (
	"net/http"

	"kidsbook/utils"

	"github.com/gin-gonic/gin"
)

// AddChild creates a child profile under the authenticated guardian.
func (h *GuardianHandler) AddChild(c *gin.Context) {
	var input struct {
		Name      string `json:"name" binding:"required"`
		BirthDate string `json:"birthDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	child, err := h.Service.AddChild(c.GetString("guardianID"), input.Name, input.BirthDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to add child", err.Error())
		return
	}
	c.JSON(http.StatusCreated, child)
}

// ListChildren returns the guardian's child profiles.
func (h *GuardianHandler) ListChildren(c *gin.Context) {
	children, err := h.Service.ListChildren(c.GetString("guardianID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list children", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"children": children})
}

// UpdateChild updates a child profile.
func (h *GuardianHandler) UpdateChild(c *gin.Context) {
	var input struct {
		Name      string `json:"name"`
		BirthDate string `json:"birthDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	child, err := h.Service.UpdateChild(c.GetString("guardianID"), c.Param("id"), input.Name, input.BirthDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update child", err.Error())
		return
	}
	c.JSON(http.StatusOK, child)
}

// RemoveChild deletes a child profile.
func (h *GuardianHandler) RemoveChild(c *gin.Context) {
	if err := h.Service.RemoveChild(c.GetString("guardianID"), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to remove child", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
