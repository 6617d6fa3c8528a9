package handler

import (
	"testing"

	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"github.com/gin-gonic/gin"
)

func setupTestAPI(t *testing.T) (*API, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mem := store.NewMemory()
	return NewAPI(mem, nil, 512, nil), mem
}
