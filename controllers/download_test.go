package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/projectlog/linebot/service"
)

func newDownloadRouter(dir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/download/:filename", NewDownloadController(dir).Download)
	return router
}

func TestDownloadExistingFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "project_abc.xlsx"), []byte("workbook"), 0o644); err != nil {
		t.Fatal(err)
	}
	router := newDownloadRouter(dir)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download/project_abc.xlsx", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != xlsxContentType {
		t.Errorf("Content-Type = %q, want %q", got, xlsxContentType)
	}
	if w.Body.String() != "workbook" {
		t.Errorf("body = %q, want file content", w.Body.String())
	}
}

func TestDownloadMissingFile(t *testing.T) {
	router := newDownloadRouter(t.TempDir())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download/project_gone.xlsx", nil))

	// missing file is a 200 with a message, not an HTTP error
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["message"] != service.MsgFileNotFound {
		t.Errorf("message = %q, want %q", body["message"], service.MsgFileNotFound)
	}
}
