package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"musicbase/internal/auth"
	"musicbase/internal/config"
	"musicbase/internal/music"
	"musicbase/internal/user"
)

const testSecret = "test_jwt_secret"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.JWTSecret = testSecret
	cfg.BcryptCost = 4
	return cfg
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbConn.AutoMigrate(&user.User{}, &music.Music{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	resetTables(t, dbConn)
	return dbConn
}

func resetTables(t *testing.T, database *gorm.DB) {
	t.Helper()
	if err := database.Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("failed to reset users table: %v", err)
	}
	if err := database.Exec("DELETE FROM musics").Error; err != nil {
		t.Fatalf("failed to reset musics table: %v", err)
	}
}

func newTestRouter(database *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(database, testConfig())
}

func seedUser(t *testing.T, database *gorm.DB, username, email, password string, role user.Role) user.User {
	t.Helper()
	pwHash, err := user.HashPassword(password, 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := user.User{
		ID:             uuid.NewString(),
		Username:       username,
		Email:          email,
		Password:       pwHash,
		Active:         true,
		Role:           role,
		DateRegistered: time.Now(),
	}
	if err := database.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// doJSON performs a request against the router with an optional JSON body
// and an optional bearer token via the access-token header.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("access-token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v: %s", err, w.Body.String())
	}
	return body
}
