package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/singleblog/singleblog/config"
	"github.com/singleblog/singleblog/controllers"
	"github.com/singleblog/singleblog/models"
	"github.com/singleblog/singleblog/routes"
	"github.com/singleblog/singleblog/storage"
)

const testAdminToken = "test-admin-token"

// newTestServer builds the full router against a fresh sqlite database
// and a fresh images directory.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	tmp := t.TempDir()
	cfg := config.AppConfig{
		AdminRoleToken:     testAdminToken,
		DBDriver:           "sqlite",
		DBPath:             filepath.Join(tmp, "test.db"),
		ImagesDir:          filepath.Join(tmp, "images"),
		GinMode:            "test",
		GinPath:            filepath.Join(tmp, "gin.log"),
		RateLimitPerMinute: 1000000,
		AllowedOrigins:     []string{"*"},
		LogLevel:           "silent",
	}

	db, err := config.OpenDatabase(cfg, &models.Post{}, &models.Tag{})
	require.NoError(t, err)

	images, err := storage.NewImageStore(cfg.ImagesDir)
	require.NoError(t, err)

	return routes.SetupRouter(cfg, db, images)
}

func do(r http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	return do(r, method, path, strings.NewReader(body), map[string]string{"Content-Type": "application/json"})
}

func createPost(t *testing.T, r http.Handler, title, author, content, category string) int {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"author":%q,"content":%q,"category":%q}`, title, author, content, category)
	rec := doJSON(r, http.MethodPost, "/Posts", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var id int
	_, err := fmt.Sscanf(rec.Body.String(), "%d", &id)
	require.NoError(t, err)
	return id
}

func getPost(t *testing.T, r http.Handler, id int) controllers.ResponsePost {
	t.Helper()
	rec := do(r, http.MethodGet, fmt.Sprintf("/Posts/%d", id), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var post controllers.ResponsePost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	return post
}

func listPosts(t *testing.T, r http.Handler, query string) []controllers.ResponsePost {
	t.Helper()
	rec := do(r, http.MethodGet, "/Posts"+query, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var posts []controllers.ResponsePost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	return posts
}

func multipartImage(t *testing.T, field, filename string, data []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
