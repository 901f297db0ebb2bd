package router

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"symposium-portal/config"
	"symposium-portal/upload"
)

func newPortalApp(t *testing.T) *fiber.App {
	t.Setenv(config.SignKey, "test-sign-key")

	app := NewApp()
	SetupRoutes(app)
	return app
}

func adminToken(t *testing.T, role string) string {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["role"] = role
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	signed, err := token.SignedString([]byte("test-sign-key"))
	if err != nil {
		assert.FailNow(t, "cannot sign test token", err)
	}
	return signed
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	app := newPortalApp(t)

	tests := []struct {
		method string
		route  string
	}{
		{"GET", "/admin/registrations"},
		{"GET", "/admin/registrations/export"},
		{"POST", "/admin/events"},
		{"DELETE", "/admin/events/e1"},
		{"POST", "/admin/rules"},
		{"PUT", "/admin/details"},
	}

	for _, test := range tests {
		req, _ := http.NewRequest(test.method, test.route, nil)
		res, err := app.Test(req, -1)

		assert.NoError(t, err)
		assert.Equalf(t, fiber.StatusBadRequest, res.StatusCode, "%v %v", test.method, test.route)
	}
}

func TestAdminRoutesRejectBadToken(t *testing.T) {
	app := newPortalApp(t)

	req, _ := http.NewRequest("GET", "/admin/registrations", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	res, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAdminMutationRejectsNonAdminRole(t *testing.T) {
	app := newPortalApp(t)

	req, _ := http.NewRequest("POST", "/admin/events", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "viewer"))

	res, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func multipartFile(t *testing.T, filename string, size int) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		assert.FailNow(t, "cannot build multipart body", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("a"), size)); err != nil {
		assert.FailNow(t, "cannot build multipart body", err)
	}
	if err := writer.Close(); err != nil {
		assert.FailNow(t, "cannot build multipart body", err)
	}

	return body, writer.FormDataContentType()
}

// Files between Fiber's default 4 MB body limit and the 10 MB paper
// ceiling must reach the handler instead of dying at the framework.
// With hosting credentials absent the handler answers with its
// configuration error, which proves the request body got through.
func TestPaperUploadBodyWithinCeilingReachesHandler(t *testing.T) {
	app := newPortalApp(t)
	t.Setenv(config.CloudinaryCloudKey, "demo")
	os.Unsetenv(config.CloudinaryCloudKey)

	body, contentType := multipartFile(t, "paper.pdf", 6<<20)

	req, _ := http.NewRequest("POST", "/upload/paper", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)

	raw, _ := io.ReadAll(res.Body)
	payload := map[string]interface{}{}
	_ = json.Unmarshal(raw, &payload)
	assert.Equal(t, "service not configured", payload["message"])
}

func TestPaperUploadBodyAboveCeilingIsRejected(t *testing.T) {
	app := newPortalApp(t)

	body, contentType := multipartFile(t, "paper.pdf", upload.MaxPaperSize+(3<<20))

	req, _ := http.NewRequest("POST", "/upload/paper", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, res.StatusCode)
}

// Behind a reverse proxy every request shares the proxy's address, so
// the lockout keys on the configured forwarding header instead.
func TestLockoutKeysOnProxyHeaderClients(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		assert.FailNow(t, "cannot hash test password", err)
	}
	t.Setenv(config.AdminPasswordKey, string(hash))
	t.Setenv(config.ProxyHeaderKey, "X-Forwarded-For")

	app := newPortalApp(t)

	login := func(password, client string) int {
		req, _ := http.NewRequest("POST", "/admin/login",
			bytes.NewBufferString(`{"password":"`+password+`"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", client)

		res, err := app.Test(req, -1)
		assert.NoError(t, err)
		return res.StatusCode
	}

	assert.Equal(t, fiber.StatusUnauthorized, login("no", "9.9.9.9"))
	assert.Equal(t, fiber.StatusUnauthorized, login("no", "9.9.9.9"))
	assert.Equal(t, fiber.StatusLocked, login("no", "9.9.9.9"))

	// a different client behind the same proxy is unaffected
	assert.Equal(t, fiber.StatusOK, login("letmein", "8.8.8.8"))
	assert.Equal(t, fiber.StatusLocked, login("letmein", "9.9.9.9"))
}

func TestAdminMutationAcceptsAdminToken(t *testing.T) {
	app := newPortalApp(t)

	// an admin token passes the gate, the empty draft then fails
	// field checks before any store access
	req, _ := http.NewRequest("POST", "/admin/events", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "admin"))

	res, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}
