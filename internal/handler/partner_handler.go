package handler

import (
	"errors"
	"net/http"

	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type partnerRequest struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logoUrl"`
	WebsiteURL string `json:"websiteUrl"`
	SortOrder  int    `json:"sortOrder"`
	IsActive   *bool  `json:"isActive"`
}

func (r partnerRequest) toInput() service.PartnerInput {
	return service.PartnerInput{
		Name:       r.Name,
		LogoURL:    r.LogoURL,
		WebsiteURL: r.WebsiteURL,
		SortOrder:  r.SortOrder,
		IsActive:   r.IsActive,
	}
}

// AdminListPartners lists every partner, inactive included.
func (a *API) AdminListPartners(c *gin.Context) {
	items, err := a.partners.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load partners")
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": items})
}

// GetPartner fetches one partner.
func (a *API) GetPartner(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := a.partners.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPartnerNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load partner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"partner": item})
}

// CreatePartner adds a partner university.
func (a *API) CreatePartner(c *gin.Context) {
	var payload partnerRequest
	if !bindJSON(c, &payload, "invalid partner payload") {
		return
	}

	item, err := a.partners.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrPartnerLogoMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create partner")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"partner": item})
}

// UpdatePartner replaces a partner.
func (a *API) UpdatePartner(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload partnerRequest
	if !bindJSON(c, &payload, "invalid partner payload") {
		return
	}

	item, err := a.partners.Update(c.Request.Context(), id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartnerNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPartnerLogoMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update partner")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"partner": item})
}

// DeletePartner removes a partner.
func (a *API) DeletePartner(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.partners.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPartnerNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete partner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "partner deleted"})
}
