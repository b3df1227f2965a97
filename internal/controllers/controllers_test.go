package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"med_transport/internal/config"
	"med_transport/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

// testContext builds a gin context carrying an optional JSON body.
func testContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req = httptest.NewRequest(method, path, nil)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	return c, w
}

// asUser stores the claims RequireAuth would have extracted.
func asUser(c *gin.Context, u models.User) {
	c.Set("user_id", float64(u.ID))
	c.Set("role", u.Role)
	c.Set("full_name", u.FullName)
}

func withParam(c *gin.Context, key string, value interface{}) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: fmt.Sprint(value)})
}

var seededUsers int

// seedUser inserts a user with a hashed password and distinct
// email/citizen_id per call.
func seedUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()
	seededUsers++
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FullName:  fmt.Sprintf("Test %s %d", role, seededUsers),
		Email:     fmt.Sprintf("user%d@example.com", seededUsers),
		Password:  string(hash),
		Role:      role,
		CitizenID: fmt.Sprintf("%013d", seededUsers),
		Phone:     "0812345678",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
