package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Zerogne/Haneducation-sub000/internal/content"
	"github.com/Zerogne/Haneducation-sub000/internal/locale"
	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

// requestLanguage picks the display language for public reads: explicit query
// parameter first, then Accept-Language, then Mongolian.
func requestLanguage(c *gin.Context) string {
	if language := c.Query("language"); language != "" {
		return language
	}
	if language := locale.LanguageFromAcceptLanguage(c.GetHeader("Accept-Language")); language != "" {
		return language
	}
	return locale.LanguageMongolian
}

// ListContent serves active content records to the public site.
func (a *API) ListContent(c *gin.Context) {
	records, err := a.contents.List(c.Request.Context(), c.Query("section"), c.Query("language"), false)
	if err != nil {
		if errors.Is(err, content.ErrUnknownSection) {
			respondError(c, http.StatusBadRequest, "unknown section")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": records})
}

// ResolveContent answers the three-tier lookup for one section. It never
// fails: a miss at every tier still returns the section's neutral shape.
func (a *API) ResolveContent(c *gin.Context) {
	section, err := content.ParseSection(c.Query("section"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "unknown section")
		return
	}

	resolution := a.contents.Resolve(c.Request.Context(), section, requestLanguage(c))
	c.JSON(http.StatusOK, gin.H{
		"section":  resolution.Section,
		"language": resolution.Language,
		"source":   resolution.Source,
		"content":  resolution.Payload,
	})
}

// AdminListContent serves every content record, inactive included.
func (a *API) AdminListContent(c *gin.Context) {
	records, err := a.contents.List(c.Request.Context(), c.Query("section"), c.Query("language"), true)
	if err != nil {
		if errors.Is(err, content.ErrUnknownSection) {
			respondError(c, http.StatusBadRequest, "unknown section")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": records})
}

type saveContentRequest struct {
	Section  string          `json:"section"`
	Language string          `json:"language"`
	Content  json.RawMessage `json:"content"`
	Order    int             `json:"order"`
}

// SaveContent validates and upserts the record for one (section, language)
// pair. Editors sometimes send the payload as a JSON-encoded string, so both
// forms are accepted.
func (a *API) SaveContent(c *gin.Context) {
	var payload saveContentRequest
	if !bindJSON(c, &payload, "section, language and content are required") {
		return
	}

	section, err := content.ParseSection(payload.Section)
	if err != nil {
		respondError(c, http.StatusBadRequest, "unknown section")
		return
	}

	raw := payload.Content
	var nested string
	if json.Unmarshal(raw, &nested) == nil {
		raw = json.RawMessage(nested)
	}

	record, err := a.contents.Save(c.Request.Context(), section, payload.Language, raw, payload.Order)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLanguageUnsupported):
			respondError(c, http.StatusBadRequest, "language is not supported")
		case errors.Is(err, service.ErrContentInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to save content")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": record})
}

// DeleteContent removes the record for one (section, language) pair.
func (a *API) DeleteContent(c *gin.Context) {
	section, err := content.ParseSection(c.Query("section"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "unknown section")
		return
	}
	language := c.Query("language")
	if language == "" {
		respondError(c, http.StatusBadRequest, "language is required")
		return
	}

	removed, err := a.contents.Delete(c.Request.Context(), section, language)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": removed})
}
