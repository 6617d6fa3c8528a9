package handler

import (
	"errors"
	"net/http"

	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type serviceRequest struct {
	Language    string `json:"language"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

func (r serviceRequest) toInput() service.ServiceInput {
	return service.ServiceInput{
		Language:    r.Language,
		Title:       r.Title,
		Summary:     r.Summary,
		Description: r.Description,
		Icon:        r.Icon,
		SortOrder:   r.SortOrder,
		IsActive:    r.IsActive,
	}
}

// AdminListServices lists every catalog entry, inactive included.
func (a *API) AdminListServices(c *gin.Context) {
	items, err := a.catalog.List(c.Request.Context(), c.Query("language"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}

// GetService fetches one catalog entry.
func (a *API) GetService(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := a.catalog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": item})
}

// CreateService adds a catalog entry.
func (a *API) CreateService(c *gin.Context) {
	var payload serviceRequest
	if !bindJSON(c, &payload, "invalid service payload") {
		return
	}

	item, err := a.catalog.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrServiceTitleMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create service")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": item})
}

// UpdateService replaces a catalog entry.
func (a *API) UpdateService(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload serviceRequest
	if !bindJSON(c, &payload, "invalid service payload") {
		return
	}

	item, err := a.catalog.Update(c.Request.Context(), id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrServiceTitleMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update service")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": item})
}

// DeleteService removes a catalog entry.
func (a *API) DeleteService(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.catalog.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}
