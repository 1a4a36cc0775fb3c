package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"shoply-be/internal/entities"
	"shoply-be/internal/jwt"
	"shoply-be/internal/repository/mocks"
	"shoply-be/internal/service"
)

func newAuthRouter(t *testing.T) (*mocks.MockUserRepository, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	jwtService := jwt.NewJWTService("test-secret", 0)
	authController := NewAuthController(service.NewAuthService(userRepo, jwtService))

	router := gin.New()
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)
	return userRepo, router
}

func performJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterReturnsCreatedUserSummary(t *testing.T) {
	userRepo, router := newAuthRouter(t)

	userRepo.EXPECT().FindByEmail("alice@example.com").Return(nil, nil)
	userRepo.EXPECT().
		Create("Alice", "alice@example.com", gomock.Any()).
		Return(&entities.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$10$hash"}, nil)

	w := performJSON(router, http.MethodPost, "/register",
		`{"name":"Alice","email":"alice@example.com","password":"hunter22"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		User    struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User.ID != "user-1" || resp.User.Email != "alice@example.com" {
		t.Errorf("unexpected user summary: %+v", resp.User)
	}
	if strings.Contains(w.Body.String(), "hash") {
		t.Error("response must never contain the password hash")
	}
}

func TestRegisterDuplicateEmailReturns400(t *testing.T) {
	userRepo, router := newAuthRouter(t)

	userRepo.EXPECT().
		FindByEmail("alice@example.com").
		Return(&entities.User{ID: "user-1", Email: "alice@example.com"}, nil)

	w := performJSON(router, http.MethodPost, "/register",
		`{"name":"Mallory","email":"alice@example.com","password":"whatever"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["code"] != "EMAIL_IN_USE" {
		t.Errorf("expected code EMAIL_IN_USE, got %q", resp["code"])
	}
	if resp["message"] == "" {
		t.Error("error responses must keep a human-readable message field")
	}
}

func TestRegisterMissingFieldsReturns400(t *testing.T) {
	_, router := newAuthRouter(t)

	w := performJSON(router, http.MethodPost, "/register", `{"email":"alice@example.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLoginFailuresAreIdentical(t *testing.T) {
	userRepo, router := newAuthRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	userRepo.EXPECT().FindByEmail("unknown@example.com").Return(nil, nil)
	unknown := performJSON(router, http.MethodPost, "/login",
		`{"email":"unknown@example.com","password":"correct"}`)

	userRepo.EXPECT().FindByEmail("alice@example.com").Return(&entities.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)
	wrongPass := performJSON(router, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	if unknown.Code != http.StatusBadRequest || wrongPass.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", unknown.Code, wrongPass.Code)
	}
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Errorf("login failure bodies must be identical: %s vs %s",
			unknown.Body.String(), wrongPass.Body.String())
	}
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	userRepo, router := newAuthRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	userRepo.EXPECT().FindByEmail("alice@example.com").Return(&entities.User{
		ID:           "user-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)

	w := performJSON(router, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"hunter22"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a bearer token in the response")
	}

	claims, err := jwt.NewJWTService("test-secret", 0).ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "alice@example.com" {
		t.Errorf("token claims do not match user: %+v", claims)
	}
}
