package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

func TestGetServicesFallsBackOnOutage(t *testing.T) {
	api, mem := setupTestAPI(t)

	// Seed a real record, then take the store down.
	if _, err := api.catalog.Create(context.Background(), service.ServiceInput{Title: "Зөвлөгөө"}); err != nil {
		t.Fatalf("seed service failed: %v", err)
	}
	mem.FailWith(errors.New("no reachable servers"))

	req := httptest.NewRequest(http.MethodGet, "/api/services?language=mn", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.GetServices(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 during an outage, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["fallback"] != true {
		t.Fatal("expected fallback=true during an outage")
	}
	if body["message"] == nil || body["message"] == "" {
		t.Fatal("expected a fallback notice message")
	}
	items, ok := body["services"].([]any)
	if !ok || len(items) == 0 {
		t.Fatal("expected demo services during an outage")
	}
}

func TestGetServicesNormalPath(t *testing.T) {
	api, _ := setupTestAPI(t)

	if _, err := api.catalog.Create(context.Background(), service.ServiceInput{
		Title:       "Зөвлөгөө",
		Description: "**Бүрэн** дэмжлэг",
	}); err != nil {
		t.Fatalf("seed service failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/services?language=mn", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.GetServices(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var body struct {
		Fallback bool `json:"fallback"`
		Services []struct {
			Title           string `json:"title"`
			DescriptionHTML string `json:"descriptionHtml"`
		} `json:"services"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Fallback {
		t.Fatal("expected fallback=false on the normal path")
	}
	if len(body.Services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(body.Services))
	}
	if body.Services[0].DescriptionHTML == "" {
		t.Fatal("expected the markdown description to be rendered")
	}
}

func TestGetPartnersFallsBackOnOutage(t *testing.T) {
	api, mem := setupTestAPI(t)
	mem.FailWith(errors.New("no reachable servers"))

	req := httptest.NewRequest(http.MethodGet, "/api/partners", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.GetPartners(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 during an outage, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["fallback"] != true {
		t.Fatal("expected fallback=true during an outage")
	}
}

func TestRegisterValidationAndSuccess(t *testing.T) {
	api, _ := setupTestAPI(t)

	post := func(payload map[string]any) *httptest.ResponseRecorder {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		api.Register(c)
		return w
	}

	w := post(map[string]any{"phone": "99112233"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without a name, got %d", w.Code)
	}

	w = post(map[string]any{"name": "Батболд"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without contact details, got %d", w.Code)
	}

	w = post(map[string]any{"name": "Батболд", "phone": "99112233", "status": "enrolled"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Student struct {
			Status string `json:"status"`
		} `json:"student"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Student.Status != "new" {
		t.Fatalf("expected the public form to force status new, got %q", body.Student.Status)
	}
}

func TestRegisterFailsLoudlyOnOutage(t *testing.T) {
	api, mem := setupTestAPI(t)
	mem.FailWith(errors.New("no reachable servers"))

	payload, _ := json.Marshal(map[string]any{"name": "Батболд", "phone": "99112233"})
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.Register(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected a write during an outage to fail with 500, got %d", w.Code)
	}
}

func TestHealthzReflectsStoreState(t *testing.T) {
	api, mem := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	api.Healthz(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	mem.FailWith(errors.New("no reachable servers"))
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = req
	api.Healthz(c)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 during an outage, got %d", w.Code)
	}
}
