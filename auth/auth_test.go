package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.VerificationToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/register", RegisterHandler(db))
	r.POST("/api/auth/login", LoginHandler(db))
	r.POST("/api/auth/verify-email", VerifyEmailHandler(db))
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAILS", "owner@dariza.in")

	db := setupDB(t)
	r := newAuthRouter(db)

	if w := post(t, r, "/api/auth/register", `{"name":"Asha","email":"asha@example.com","password":"hunter2hunter2"}`); w.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := db.Where("email = ?", "asha@example.com").First(&user).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Errorf("role = %q, want user", user.Role)
	}
	if user.PasswordHash == "hunter2hunter2" {
		t.Error("password stored in plaintext")
	}

	// duplicate email
	if w := post(t, r, "/api/auth/register", `{"name":"Asha","email":"asha@example.com","password":"hunter2hunter2"}`); w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register: %d, want 400", w.Code)
	}

	// short password
	if w := post(t, r, "/api/auth/register", `{"name":"B","email":"b@example.com","password":"short"}`); w.Code != http.StatusBadRequest {
		t.Errorf("short password: %d, want 400", w.Code)
	}

	w := post(t, r, "/api/auth/login", `{"email":"asha@example.com","password":"hunter2hunter2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Errorf("expected token in login response, got %s", w.Body.String())
	}

	if w := post(t, r, "/api/auth/login", `{"email":"asha@example.com","password":"wrong-password"}`); w.Code != http.StatusUnauthorized {
		t.Errorf("bad password login: %d, want 401", w.Code)
	}
}

func TestAdminEmailGetsAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAILS", "owner@dariza.in, ops@dariza.in")

	db := setupDB(t)
	r := newAuthRouter(db)

	if w := post(t, r, "/api/auth/register", `{"name":"Owner","email":"Owner@Dariza.in","password":"hunter2hunter2"}`); w.Code != http.StatusCreated {
		t.Fatalf("register: %d", w.Code)
	}

	var user models.User
	db.Where("email = ?", "owner@dariza.in").First(&user)
	if user.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin for listed email", user.Role)
	}
}

func TestVerifyEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := setupDB(t)
	r := newAuthRouter(db)

	post(t, r, "/api/auth/register", `{"name":"Asha","email":"asha@example.com","password":"hunter2hunter2"}`)

	var token models.VerificationToken
	if err := db.Where("email = ?", "asha@example.com").First(&token).Error; err != nil {
		t.Fatalf("no verification token issued: %v", err)
	}

	if w := post(t, r, "/api/auth/verify-email", `{"token":"`+token.Token+`"}`); w.Code != http.StatusOK {
		t.Fatalf("verify: %d %s", w.Code, w.Body.String())
	}

	var user models.User
	db.Where("email = ?", "asha@example.com").First(&user)
	if !user.EmailVerified {
		t.Error("email_verified = false after verification")
	}

	// token is one-shot
	if w := post(t, r, "/api/auth/verify-email", `{"token":"`+token.Token+`"}`); w.Code != http.StatusBadRequest {
		t.Errorf("reused token: %d, want 400", w.Code)
	}

	if w := post(t, r, "/api/auth/verify-email", `{"token":"bogus"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bogus token: %d, want 400", w.Code)
	}
}
