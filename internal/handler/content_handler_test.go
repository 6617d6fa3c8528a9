package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func resolveRequest(t *testing.T, api *API, url string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.ResolveContent(c)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return w.Code, body
}

func TestResolveContentServesDefaults(t *testing.T) {
	api, _ := setupTestAPI(t)

	code, body := resolveRequest(t, api, "/api/content/resolve?section=hero&language=mn")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if body["source"] != service.SourceDefault {
		t.Fatalf("expected default source, got %v", body["source"])
	}
	payload, ok := body["content"].(map[string]any)
	if !ok {
		t.Fatalf("expected a content object, got %T", body["content"])
	}
	if payload["title"] == "" || payload["title"] == nil {
		t.Fatal("expected the default hero title to be present")
	}
}

func TestResolveContentUnknownLanguageGetsEmptyShape(t *testing.T) {
	api, _ := setupTestAPI(t)

	code, body := resolveRequest(t, api, "/api/content/resolve?section=hero&language=fr")
	if code != http.StatusOK {
		t.Fatalf("expected status 200 even for an unknown language, got %d", code)
	}
	if body["source"] != service.SourceEmpty {
		t.Fatalf("expected empty source, got %v", body["source"])
	}
}

func TestResolveContentUnknownSection(t *testing.T) {
	api, _ := setupTestAPI(t)

	code, _ := resolveRequest(t, api, "/api/content/resolve?section=blog")
	if code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", code)
	}
}

func saveContentRequestHelper(t *testing.T, api *API, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/admin/api/content", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.SaveContent(c)
	return w
}

func TestSaveContentValidatesPayload(t *testing.T) {
	api, _ := setupTestAPI(t)

	w := saveContentRequestHelper(t, api, map[string]any{
		"section":  "hero",
		"language": "mn",
		"content":  map[string]any{},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an empty payload, got %d", w.Code)
	}

	w = saveContentRequestHelper(t, api, map[string]any{
		"section":  "blog",
		"language": "mn",
		"content":  map[string]any{"title": "x"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an unknown section, got %d", w.Code)
	}

	w = saveContentRequestHelper(t, api, map[string]any{
		"section":  "hero",
		"language": "fr",
		"content":  map[string]any{"title": "x"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an unsupported language, got %d", w.Code)
	}
}

func TestSaveContentAcceptsObjectAndStringPayloads(t *testing.T) {
	api, mem := setupTestAPI(t)

	w := saveContentRequestHelper(t, api, map[string]any{
		"section":  "hero",
		"language": "mn",
		"content":  map[string]any{"title": "Объект хэлбэр"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for an object payload, got %d: %s", w.Code, w.Body.String())
	}

	w = saveContentRequestHelper(t, api, map[string]any{
		"section":  "hero",
		"language": "mn",
		"content":  `{"title":"Мөр хэлбэр"}`,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for a string payload, got %d: %s", w.Code, w.Body.String())
	}

	var record db.ContentRecord
	err := mem.Collection(db.ColContent).FindOne(context.Background(), bson.M{"section": "hero", "language": "mn"}, &record)
	if err != nil {
		t.Fatalf("failed to load saved record: %v", err)
	}
	if record.Title != "Мөр хэлбэр" {
		t.Fatalf("expected the string payload to win, got title %q", record.Title)
	}
}
