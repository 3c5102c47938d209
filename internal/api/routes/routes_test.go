package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/KarlovS28/uchettest/internal/api/routes"
	"github.com/KarlovS28/uchettest/internal/config"
	"github.com/KarlovS28/uchettest/internal/files"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// client drives the router and carries session cookies between requests.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()

	cfg := &config.Config{
		Environment:      "test",
		SessionSecret:    "test-secret",
		SessionMaxAgeSec: 3600,
		UploadDir:        t.TempDir(),
	}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	fileStore, err := files.NewStore(cfg.UploadDir)
	require.NoError(t, err)

	router := routes.SetupRoutes(routes.Dependencies{
		Store:        storage.NewMemory(),
		SessionStore: cookie.NewStore([]byte(cfg.SessionSecret)),
		FileStore:    fileStore,
		Config:       cfg,
		Log:          log,
	})
	return &client{t: t, router: router}
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func (c *client) doUpload(path, field, filename, contentType string, content []byte) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(c.t, err)
	_, err = part.Write(content)
	require.NoError(c.t, err)
	require.NoError(c.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func (c *client) decode(w *httptest.ResponseRecorder, out interface{}) {
	c.t.Helper()
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), out))
}

func (c *client) setup() {
	c.t.Helper()
	w := c.do(http.MethodPost, "/api/setup", gin.H{
		"organizationName": "ООО Ромашка",
		"adminFullName":    "Петров Пётр Петрович",
		"adminPosition":    "Директор",
		"adminUsername":    "admin",
		"adminPassword":    "secret123",
	})
	require.Equal(c.t, http.StatusCreated, w.Code)
}

func TestSetupFlow(t *testing.T) {
	c := newClient(t)

	var status struct {
		IsSetup bool `json:"isSetup"`
	}
	w := c.do(http.MethodGet, "/api/system-status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	c.decode(w, &status)
	assert.False(t, status.IsSetup)

	// An incomplete payload never bootstraps anything
	w = c.do(http.MethodPost, "/api/setup", gin.H{
		"organizationName": "ООО Ромашка",
		"adminFullName":    "Петров Пётр Петрович",
		"adminUsername":    "admin",
		"adminPassword":    "secret123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/api/setup", gin.H{
		"organizationName": "ООО Ромашка",
		"adminFullName":    "Петров Пётр Петрович",
		"adminPosition":    "Директор",
		"adminUsername":    "admin",
		"adminPassword":    "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var result struct {
		Organization struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"organization"`
		User struct {
			Username    string   `json:"username"`
			Role        string   `json:"role"`
			Permissions []string `json:"permissions"`
		} `json:"user"`
	}
	c.decode(w, &result)
	assert.Equal(t, uint(1), result.Organization.ID)
	assert.Equal(t, "admin", result.User.Username)
	assert.Equal(t, []string{"full_access"}, result.User.Permissions)

	// Password hash never leaves the server
	assert.NotContains(t, w.Body.String(), "password")

	// The setup response established a session
	w = c.do(http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second bootstrap attempt conflicts
	w = c.do(http.MethodPost, "/api/setup", gin.H{
		"organizationName": "Другая",
		"adminFullName":    "Кто-то",
		"adminPosition":    "Директор",
		"adminUsername":    "admin2",
		"adminPassword":    "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodGet, "/api/system-status", nil)
	c.decode(w, &status)
	assert.True(t, status.IsSetup)
}

func TestLoginLogout(t *testing.T) {
	c := newClient(t)
	c.setup()
	c.cookies = nil // drop the setup session

	w := c.do(http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodPost, "/api/login", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodPost, "/api/login", gin.H{"username": "ghost", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodPost, "/api/login", gin.H{"username": "admin", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDepartmentStatsScenario(t *testing.T) {
	c := newClient(t)
	c.setup()

	w := c.do(http.MethodPost, "/api/departments", gin.H{"name": "Sales"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodGet, "/api/departments?stats=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats []struct {
		DepartmentName string `json:"departmentName"`
		EmployeeCount  int    `json:"employeeCount"`
		InventoryCount int    `json:"inventoryCount"`
	}
	c.decode(w, &stats)
	require.Len(t, stats, 1)
	assert.Equal(t, "Sales", stats[0].DepartmentName)
	assert.Equal(t, 0, stats[0].EmployeeCount)
	assert.Equal(t, 0, stats[0].InventoryCount)
}

func TestInventoryListRequiresFilter(t *testing.T) {
	c := newClient(t)
	c.setup()

	w := c.do(http.MethodGet, "/api/inventory", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeLifecycleOverHTTP(t *testing.T) {
	c := newClient(t)
	c.setup()

	w := c.do(http.MethodPost, "/api/departments", gin.H{"name": "Sales"})
	require.Equal(t, http.StatusCreated, w.Code)
	var department struct {
		ID uint `json:"id"`
	}
	c.decode(w, &department)

	w = c.do(http.MethodPost, "/api/employees", gin.H{
		"fullName":     "Иванов Иван Иванович",
		"departmentId": department.ID,
		"position":     "Инженер",
		"hireDate":     "2023-03-01",
		"birthDate":    "1985-06-15",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var employee struct {
		ID        uint `json:"id"`
		Dismissed bool `json:"dismissed"`
	}
	c.decode(w, &employee)
	assert.False(t, employee.Dismissed)

	// Department is now in use
	w = c.do(http.MethodDelete, "/api/departments/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Dismissal needs both fields
	w = c.do(http.MethodPost, "/api/employees/1/dismiss", gin.H{"dismissalDate": "2024-02-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/api/employees/1/dismiss", gin.H{
		"dismissalDate":        "2024-02-01",
		"dismissalOrderNumber": "У-7",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A second dismissal conflicts
	w = c.do(http.MethodPost, "/api/employees/1/dismiss", gin.H{
		"dismissalDate":        "2024-03-01",
		"dismissalOrderNumber": "У-8",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Dismissed employees are read-only
	w = c.do(http.MethodPut, "/api/employees/1", gin.H{"position": "Старший инженер"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodGet, "/api/employees/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeUploads(t *testing.T) {
	c := newClient(t)
	c.setup()

	w := c.do(http.MethodPost, "/api/departments", gin.H{"name": "Sales"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodPost, "/api/employees", gin.H{
		"fullName":     "Иванов Иван Иванович",
		"departmentId": 1,
		"position":     "Инженер",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Photo uploads use the photo form field
	w = c.doUpload("/api/upload/photo/1", "photo", "face.png", "image/png", []byte("png-bytes"))
	require.Equal(t, http.StatusOK, w.Code)
	var employee struct {
		Photo string `json:"photo"`
	}
	c.decode(w, &employee)
	assert.Contains(t, employee.Photo, "/uploads/photos/")

	// A mislabeled field is rejected before anything hits the disk
	w = c.doUpload("/api/upload/photo/1", "file", "face.png", "image/png", []byte("png-bytes"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Document uploads use the document form field
	w = c.doUpload("/api/upload/document/1", "document", "contract.pdf", "application/pdf", []byte("pdf-bytes"))
	require.Equal(t, http.StatusCreated, w.Code)
	var document struct {
		Filename string `json:"filename"`
		Path     string `json:"path"`
	}
	c.decode(w, &document)
	assert.Equal(t, "contract.pdf", document.Filename)
	assert.Contains(t, document.Path, "/uploads/documents/")

	w = c.doUpload("/api/upload/document/1", "file", "contract.pdf", "application/pdf", []byte("pdf-bytes"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown employee
	w = c.doUpload("/api/upload/photo/999", "photo", "face.png", "image/png", []byte("png-bytes"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPermissionEnforcement(t *testing.T) {
	c := newClient(t)
	c.setup()

	// Admin creates a viewer with no management permissions
	w := c.do(http.MethodPost, "/api/users", gin.H{
		"username":    "viewer",
		"password":    "secret123",
		"fullName":    "Наблюдатель",
		"permissions": []string{"view_employee_data"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	c.cookies = nil
	w = c.do(http.MethodPost, "/api/login", gin.H{"username": "viewer", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	// Reads are allowed
	w = c.do(http.MethodGet, "/api/departments", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Mutations are not
	w = c.do(http.MethodPost, "/api/departments", gin.H{"name": "Sales"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = c.do(http.MethodPost, "/api/users", gin.H{
		"username": "intruder",
		"password": "secret123",
		"fullName": "Кто-то",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUnauthenticatedRequests(t *testing.T) {
	c := newClient(t)
	c.setup()
	c.cookies = nil

	for _, path := range []string{"/api/departments", "/api/employees", "/api/inventory", "/api/users"} {
		w := c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestHealthEndpoint(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	c.decode(w, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "memory", health.Services["storage"])
}
