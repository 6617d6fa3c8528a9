package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type studentRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	School     string `json:"school"`
	Grade      string `json:"grade"`
	Program    string `json:"program"`
	TargetCity string `json:"targetCity"`
	Message    string `json:"message"`
	Language   string `json:"language"`
	Status     string `json:"status"`
}

func (r studentRequest) toInput() service.StudentInput {
	return service.StudentInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		School:     r.School,
		Grade:      r.Grade,
		Program:    r.Program,
		TargetCity: r.TargetCity,
		Message:    r.Message,
		Language:   r.Language,
		Status:     r.Status,
	}
}

// ListStudents pages through registrations for the admin screen.
func (a *API) ListStudents(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("perPage"))

	result, err := a.students.List(c.Request.Context(), service.StudentFilter{
		Status:  c.Query("status"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		if errors.Is(err, service.ErrStudentStatusInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load students")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"students":   result.Items,
		"total":      result.Total,
		"totalPages": result.TotalPages,
		"page":       result.Page,
		"perPage":    result.PerPage,
	})
}

// CreateStudent adds a registration from the admin screens. The status field
// is honored here, unlike the public form.
func (a *API) CreateStudent(c *gin.Context) {
	var payload studentRequest
	if !bindJSON(c, &payload, "invalid student payload") {
		return
	}

	student, err := a.students.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNameMissing),
			errors.Is(err, service.ErrStudentContactMissing),
			errors.Is(err, service.ErrStudentStatusInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create student")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"student": student})
}

// GetStudent fetches one registration.
func (a *API) GetStudent(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	student, err := a.students.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load student")
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": student})
}

// UpdateStudent replaces a registration, including its pipeline status.
func (a *API) UpdateStudent(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload studentRequest
	if !bindJSON(c, &payload, "invalid student payload") {
		return
	}

	student, err := a.students.Update(c.Request.Context(), id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrStudentNameMissing),
			errors.Is(err, service.ErrStudentContactMissing),
			errors.Is(err, service.ErrStudentStatusInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update student")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": student})
}

// DeleteStudent removes a registration.
func (a *API) DeleteStudent(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.students.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete student")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "student deleted"})
}
