package handler

import (
	"errors"
	"net/http"

	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Healthz reports whether the database answers a ping.
func (a *API) Healthz(c *gin.Context) {
	if err := a.st.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// serviceView carries a catalog entry plus its rendered description for the
// public site.
type serviceView struct {
	db.Service
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
}

func renderServices(items []db.Service) []serviceView {
	views := make([]serviceView, 0, len(items))
	for _, item := range items {
		views = append(views, serviceView{
			Service:         item,
			DescriptionHTML: service.RenderMarkdown(item.Description),
		})
	}
	return views
}

// GetServices lists active services for the public site. A database outage
// degrades to the demo dataset instead of an error page.
func (a *API) GetServices(c *gin.Context) {
	language := requestLanguage(c)
	items, err := a.catalog.ListPublic(c.Request.Context(), language)
	if err != nil {
		a.log.Error("public services unavailable, serving demo data", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"services": renderServices(demoServices(language)),
			"fallback": true,
			"message":  fallbackMessage(language),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": renderServices(items), "fallback": false})
}

// GetTestimonials lists active testimonials for the public site.
func (a *API) GetTestimonials(c *gin.Context) {
	language := requestLanguage(c)
	items, err := a.testimonials.ListPublic(c.Request.Context(), language)
	if err != nil {
		a.log.Error("public testimonials unavailable, serving demo data", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"testimonials": demoTestimonials(language),
			"fallback":     true,
			"message":      fallbackMessage(language),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items, "fallback": false})
}

// GetTeam lists active team members for the public site.
func (a *API) GetTeam(c *gin.Context) {
	language := requestLanguage(c)
	items, err := a.team.ListPublic(c.Request.Context(), language)
	if err != nil {
		a.log.Error("public team unavailable, serving demo data", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"team":     demoTeam(language),
			"fallback": true,
			"message":  fallbackMessage(language),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": items, "fallback": false})
}

// GetPartners lists active partners for the public site.
func (a *API) GetPartners(c *gin.Context) {
	items, err := a.partners.ListPublic(c.Request.Context())
	if err != nil {
		a.log.Error("public partners unavailable, serving demo data", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"partners": demoPartners(),
			"fallback": true,
			"message":  fallbackMessage(requestLanguage(c)),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": items, "fallback": false})
}

type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	School     string `json:"school"`
	Grade      string `json:"grade"`
	Program    string `json:"program"`
	TargetCity string `json:"targetCity"`
	Message    string `json:"message"`
	Language   string `json:"language"`
}

// Register accepts a consultation request from the public form. Unlike the
// read endpoints this writes, so a database outage is a real error here.
func (a *API) Register(c *gin.Context) {
	var payload registerRequest
	if !bindJSON(c, &payload, "invalid registration payload") {
		return
	}

	student, err := a.students.Register(c.Request.Context(), service.StudentInput{
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		School:     payload.School,
		Grade:      payload.Grade,
		Program:    payload.Program,
		TargetCity: payload.TargetCity,
		Message:    payload.Message,
		Language:   payload.Language,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNameMissing), errors.Is(err, service.ErrStudentContactMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			a.log.Error("student registration failed", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "failed to save registration")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"student": student})
}
