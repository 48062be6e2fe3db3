package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/apna-adda/adda/internal/apiserver/database"
	"github.com/apna-adda/adda/internal/common/config"
	"github.com/apna-adda/adda/internal/listing"
	"github.com/apna-adda/adda/internal/session"
	"github.com/apna-adda/adda/internal/upload"
)

// testEnv wires a full router against an in-memory database, a memory
// session store and temp directories for uploads, fixtures and listing files.
type testEnv struct {
	router   *gin.Engine
	db       database.Database
	store    *session.MemoryStore
	uploader *upload.Uploader
	seedDir  string
	listDir  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewMemoryStore(5 * time.Minute)
	sessions := session.NewManager(store, 5*time.Minute)

	uploader := upload.NewUploader(t.TempDir())
	if err := uploader.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}

	seedDir := t.TempDir()
	listDir := t.TempDir()
	appender := listing.NewAppender(listDir)

	logger := zap.NewNop()
	r := gin.New()
	Register(r,
		NewAuth(db, sessions, logger),
		NewAdmin(db, sessions, uploader, logger),
		NewTenant(db, uploader, logger),
		NewListing(db, appender, logger),
		NewSeeder(db, seedDir, logger),
		sessions,
	)

	return &testEnv{
		router:   r,
		db:       db,
		store:    store,
		uploader: uploader,
		seedDir:  seedDir,
		listDir:  listDir,
	}
}

// do performs a request and returns the recorder. A cookie value from a
// previous response may be attached.
func (e *testEnv) do(method, path string, body io.Reader, contentType, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// sessionCookie extracts the session cookie from a response, empty when none
// was set.
func sessionCookie(w *httptest.ResponseRecorder) string {
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == "adda_session" {
			return c.Name + "=" + c.Value
		}
	}
	return ""
}

// multipartForm builds a multipart body with the given fields and one file
// part carrying content under fileField (skipped when fileField is empty).
func multipartForm(t *testing.T, fields map[string]string, fileField, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}
