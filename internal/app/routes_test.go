package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seva-foundation/core/internal/config"
)

func newTestApp(t *testing.T, cfg *config.AppConfig) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = &config.AppConfig{Port: 0, Env: "development"}
	}
	a, err := New(zap.NewNop(), cfg)
	require.NoError(t, err)
	return a
}

func request(t *testing.T, a *App, method, path string, body interface{}, header map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestContactSubmission(t *testing.T) {
	a := newTestApp(t, nil)

	w, body := request(t, a, http.MethodPost, "/api/contacts", gin.H{
		"firstName": "Asha",
		"lastName":  "Verma",
		"email":     "asha@example.org",
		"subject":   "Partnership",
		"message":   "We would like to collaborate.",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	contact := body["contact"].(map[string]interface{})
	assert.NotEmpty(t, contact["id"])
	assert.NotEmpty(t, contact["createdAt"])
	assert.Equal(t, "Asha", contact["firstName"])

	w, body = request(t, a, http.MethodPost, "/api/contacts", gin.H{"firstName": "Asha"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestVolunteerSubmission(t *testing.T) {
	a := newTestApp(t, nil)

	w, body := request(t, a, http.MethodPost, "/api/volunteers", gin.H{
		"fullName":       "Ravi Sharma",
		"email":          "ravi@example.org",
		"phone":          "+91 98765 43210",
		"areaOfInterest": "education",
		"skills":         "teaching, mentoring",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	volunteer := body["volunteer"].(map[string]interface{})
	assert.Equal(t, "education", volunteer["areaOfInterest"])

	w, _ = request(t, a, http.MethodPost, "/api/volunteers", gin.H{
		"fullName":       "Ravi Sharma",
		"email":          "ravi@example.org",
		"phone":          "+91 98765 43210",
		"areaOfInterest": "astrology",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "area of interest is enumerated")
}

func TestDonationSubmission(t *testing.T) {
	a := newTestApp(t, nil)

	w, body := request(t, a, http.MethodPost, "/api/donations", gin.H{
		"amount":    500,
		"isMonthly": true,
		"donorName": "Asha Verma",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	donation := body["donation"].(map[string]interface{})
	assert.Equal(t, "pending", donation["status"])
	assert.Equal(t, float64(500), donation["amount"])

	paymentURL := body["paymentUrl"].(string)
	assert.True(t, strings.HasPrefix(paymentURL, "https://checkout.razorpay.com/v1/checkout.js?"))
	assert.Contains(t, paymentURL, "amount=50000")
	assert.Contains(t, paymentURL, "currency=INR")
	assert.Contains(t, paymentURL, "order_id="+donation["id"].(string))

	w, _ = request(t, a, http.MethodPost, "/api/donations", gin.H{"amount": 0}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = request(t, a, http.MethodPost, "/api/donations", gin.H{"amount": -5}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewsletterSubscription(t *testing.T) {
	a := newTestApp(t, nil)

	w, body := request(t, a, http.MethodPost, "/api/newsletter", gin.H{"email": "reader@example.org"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	sub := body["newsletter"].(map[string]interface{})
	assert.Equal(t, true, sub["isActive"])

	w, body = request(t, a, http.MethodPost, "/api/newsletter", gin.H{"email": "reader@example.org"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already subscribed", body["error"])

	w, _ = request(t, a, http.MethodPost, "/api/newsletter", gin.H{"email": "not-an-email"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogModerationFlow(t *testing.T) {
	a := newTestApp(t, nil)

	content := strings.Repeat("Stories of change from the villages we serve. ", 4)
	w, body := request(t, a, http.MethodPost, "/api/blogs", gin.H{
		"title":       "Hope in Rajasthan",
		"content":     content,
		"authorName":  "Ravi Sharma",
		"authorEmail": "ravi@example.org",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	post := body["blog"].(map[string]interface{})
	id := post["id"].(string)
	slug := post["slug"].(string)
	assert.Equal(t, "pending", post["status"])

	// invisible on the public surface until approved
	w, body = request(t, a, http.MethodGet, "/api/blogs", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["blogs"])

	w, _ = request(t, a, http.MethodPut, "/api/admin/blogs/"+id+"/approve", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = request(t, a, http.MethodGet, "/api/blogs/slug/"+slug, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := body["blog"].(map[string]interface{})
	assert.Equal(t, float64(1), got["viewCount"])

	w, _ = request(t, a, http.MethodDelete, "/api/admin/blogs/"+id, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = request(t, a, http.MethodGet, "/api/blogs/slug/"+slug, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminAuthGate(t *testing.T) {
	cfg := &config.AppConfig{
		Port:      0,
		Env:       "development",
		JWTSecret: "test-secret",
		Admin:     config.AdminConfig{Username: "admin", Password: "sevapass"},
	}
	a := newTestApp(t, cfg)

	w, _ := request(t, a, http.MethodGet, "/api/admin/blogs", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = request(t, a, http.MethodPost, "/api/admin/login", gin.H{"username": "admin", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := request(t, a, http.MethodPost, "/api/admin/login", gin.H{"username": "admin", "password": "sevapass"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := body["token"].(string)
	require.NotEmpty(t, token)

	w, _ = request(t, a, http.MethodGet, "/api/admin/blogs", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminStats(t *testing.T) {
	a := newTestApp(t, nil)

	_, _ = request(t, a, http.MethodPost, "/api/donations", gin.H{"amount": 250}, nil)
	_, _ = request(t, a, http.MethodPost, "/api/newsletter", gin.H{"email": "reader@example.org"}, nil)

	w, body := request(t, a, http.MethodGet, "/api/admin/stats", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["donations"])
	assert.Equal(t, float64(250), stats["donationTotal"])
	assert.Equal(t, float64(1), stats["subscribers"])
}

func TestHealthEndpoint(t *testing.T) {
	a := newTestApp(t, nil)

	w, body := request(t, a, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["store"])
}

func TestNoRouteAndNoMethod(t *testing.T) {
	a := newTestApp(t, nil)

	w, body := request(t, a, http.MethodGet, "/api/nothing-here", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])

	w, _ = request(t, a, http.MethodDelete, "/api/newsletter", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
