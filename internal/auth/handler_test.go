package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := NewInMemoryUserRepository()
	handler := NewHandler(NewService(repo))

	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r := setupRouter()

	w := postJSON(r, "/auth/register", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["id"] == "" {
		t.Fatal("expected user id in response")
	}
	if resp["email"] != "asha@example.com" {
		t.Fatalf("unexpected email %q", resp["email"])
	}
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	r := setupRouter()

	body := gin.H{"name": "Asha", "email": "asha@example.com", "password": "secret"}
	if w := postJSON(r, "/auth/register", body); w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w.Code)
	}
	if w := postJSON(r, "/auth/register", body); w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", w.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupRouter()

	postJSON(r, "/auth/register", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret",
	})

	w := postJSON(r, "/auth/login", gin.H{
		"email":    "asha@example.com",
		"password": "secret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected token in response")
	}

	userID, _, role, err := ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if userID == "" || role != RoleStudent {
		t.Fatalf("unexpected claims: id=%q role=%q", userID, role)
	}
}

func TestLoginEndpointBadPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupRouter()

	postJSON(r, "/auth/register", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret",
	})

	w := postJSON(r, "/auth/login", gin.H{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
