package handler

import (
	"errors"
	"net/http"

	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type testimonialRequest struct {
	Language  string `json:"language"`
	Author    string `json:"author"`
	Role      string `json:"role"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatarUrl"`
	Rating    int    `json:"rating"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

func (r testimonialRequest) toInput() service.TestimonialInput {
	return service.TestimonialInput{
		Language:  r.Language,
		Author:    r.Author,
		Role:      r.Role,
		Quote:     r.Quote,
		AvatarURL: r.AvatarURL,
		Rating:    r.Rating,
		SortOrder: r.SortOrder,
		IsActive:  r.IsActive,
	}
}

// AdminListTestimonials lists every testimonial, inactive included.
func (a *API) AdminListTestimonials(c *gin.Context) {
	items, err := a.testimonials.List(c.Request.Context(), c.Query("language"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

// GetTestimonial fetches one testimonial.
func (a *API) GetTestimonial(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := a.testimonials.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonial": item})
}

// CreateTestimonial adds a testimonial.
func (a *API) CreateTestimonial(c *gin.Context) {
	var payload testimonialRequest
	if !bindJSON(c, &payload, "invalid testimonial payload") {
		return
	}

	item, err := a.testimonials.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTestimonialQuoteMissing),
			errors.Is(err, service.ErrTestimonialRatingInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create testimonial")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"testimonial": item})
}

// UpdateTestimonial replaces a testimonial.
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload testimonialRequest
	if !bindJSON(c, &payload, "invalid testimonial payload") {
		return
	}

	item, err := a.testimonials.Update(c.Request.Context(), id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTestimonialNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTestimonialQuoteMissing),
			errors.Is(err, service.ErrTestimonialRatingInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update testimonial")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonial": item})
}

// DeleteTestimonial removes a testimonial.
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.testimonials.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted"})
}
