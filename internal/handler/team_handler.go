package handler

import (
	"errors"
	"net/http"

	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type teamMemberRequest struct {
	Language  string `json:"language"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photoUrl"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

func (r teamMemberRequest) toInput() service.TeamMemberInput {
	return service.TeamMemberInput{
		Language:  r.Language,
		Name:      r.Name,
		Role:      r.Role,
		Bio:       r.Bio,
		PhotoURL:  r.PhotoURL,
		SortOrder: r.SortOrder,
		IsActive:  r.IsActive,
	}
}

// AdminListTeam lists every team member, inactive included.
func (a *API) AdminListTeam(c *gin.Context) {
	items, err := a.team.List(c.Request.Context(), c.Query("language"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load team")
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": items})
}

// GetTeamMember fetches one staff profile.
func (a *API) GetTeamMember(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := a.team.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load team member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": item})
}

// CreateTeamMember adds a staff profile.
func (a *API) CreateTeamMember(c *gin.Context) {
	var payload teamMemberRequest
	if !bindJSON(c, &payload, "invalid team member payload") {
		return
	}

	item, err := a.team.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrTeamMemberNameMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create team member")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": item})
}

// UpdateTeamMember replaces a staff profile.
func (a *API) UpdateTeamMember(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload teamMemberRequest
	if !bindJSON(c, &payload, "invalid team member payload") {
		return
	}

	item, err := a.team.Update(c.Request.Context(), id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamMemberNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTeamMemberNameMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update team member")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": item})
}

// DeleteTeamMember removes a staff profile.
func (a *API) DeleteTeamMember(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.team.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete team member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team member deleted"})
}
