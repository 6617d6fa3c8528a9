package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/handler"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func setupRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mem := store.NewMemory()
	api := handler.NewAPI(mem, nil, 512, nil)
	if err := api.Users().EnsureAdmin(context.Background(), "admin", "s3cret"); err != nil {
		t.Fatalf("failed to bootstrap admin: %v", err)
	}
	return New(api, "test-secret"), mem
}

func login(t *testing.T, r *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]any{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}

func saveHeroRequest(cookies []*http.Cookie) *http.Request {
	body, _ := json.Marshal(map[string]any{
		"section":  "hero",
		"language": "mn",
		"content":  map[string]any{"title": "Шинэ гарчиг"},
	})
	req := httptest.NewRequest(http.MethodPut, "/admin/api/content", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return req
}

func TestAdminWriteRequiresSession(t *testing.T) {
	r, mem := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, saveHeroRequest(nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without a session, got %d", w.Code)
	}

	count, err := mem.Collection(db.ColContent).Count(context.Background(), bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected the rejected write to leave no records, got %d", count)
	}
}

func TestLoginThenSaveContent(t *testing.T) {
	r, mem := setupRouter(t)
	cookies := login(t, r, "admin", "s3cret")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, saveHeroRequest(cookies))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 with a session, got %d: %s", w.Code, w.Body.String())
	}

	var record db.ContentRecord
	err := mem.Collection(db.ColContent).FindOne(context.Background(), bson.M{"section": "hero", "language": "mn"}, &record)
	if err != nil {
		t.Fatalf("expected the record to be written: %v", err)
	}
	if record.Title != "Шинэ гарчиг" {
		t.Fatalf("unexpected saved title %q", record.Title)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r, _ := setupRouter(t)

	body, _ := json.Marshal(map[string]any{"username": "admin", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestLogoutEndsSession(t *testing.T) {
	r, _ := setupRouter(t)
	cookies := login(t, r, "admin", "s3cret")

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("logout failed with status %d", w.Code)
	}

	// The cleared cookie replaces the session; reusing it must not authorize.
	cleared := w.Result().Cookies()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, saveHeroRequest(cleared))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 after logout, got %d", w.Code)
	}
}

func TestPublicRoutesAreOpen(t *testing.T) {
	r, _ := setupRouter(t)

	for _, path := range []string{
		"/healthz",
		"/api/content/resolve?section=hero&language=mn",
		"/api/services",
		"/api/testimonials",
		"/api/team",
		"/api/partners",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected %s to answer 200 without auth, got %d", path, w.Code)
		}
	}
}
