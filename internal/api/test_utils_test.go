package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DianaCarolina3/recipes/config"
	"github.com/DianaCarolina3/recipes/internal/model"
	"github.com/DianaCarolina3/recipes/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv bundles the router and database backing an API test.
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Recipe{},
		&model.Ingredient{},
		&model.Step{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret"}
	router := gin.New()
	RegisterRoutes(router, db, nil, cfg, nil)

	return &testEnv{
		router: router,
		db:     db,
		auth:   service.NewAuthService(db, cfg.JWTSecret),
	}
}

// createUserAndToken inserts a user directly and returns it with a valid
// bearer token.
func (e *testEnv) createUserAndToken(t *testing.T, email, role string) (*model.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &model.User{
		Name:         "Test",
		Lastname:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := e.auth.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, token
}

func (e *testEnv) createCategory(t *testing.T, name string) *model.Category {
	t.Helper()

	category := &model.Category{Name: name}
	if err := e.db.Create(category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

// request performs a JSON request against the test router.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
