package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"med_transport/internal/models"
)

func registerBody(citizenID string) map[string]interface{} {
	return map[string]interface{}{
		"fullName":   "Somchai J",
		"email":      "somchai" + citizenID + "@example.com",
		"password":   "secret123",
		"citizen_id": citizenID,
		"phone":      "0891234567",
	}
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	ctrl := NewAuthController(db)

	c, w := testContext(t, http.MethodPost, "/api/auth/register", registerBody("1234567890123"))
	ctrl.Register(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("citizen_id = ?", "1234567890123").First(&user).Error)
	assert.Equal(t, models.RoleUser, user.Role, "role defaults to USER")
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, user.ID, resp["userId"])
}

func TestRegisterDuplicateCitizenID(t *testing.T) {
	db := newTestDB(t)
	ctrl := NewAuthController(db)

	c, w := testContext(t, http.MethodPost, "/api/auth/register", registerBody("1234567890123"))
	ctrl.Register(c)
	require.Equal(t, http.StatusCreated, w.Code)

	// second registration with the same citizen_id but a fresh email
	body := registerBody("1234567890123")
	body["email"] = "another@example.com"
	c2, w2 := testContext(t, http.MethodPost, "/api/auth/register", body)
	ctrl.Register(c2)

	assert.Equal(t, http.StatusBadRequest, w2.Code)
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count, "no new row on conflict")
}

func TestRegisterRejectsBadCitizenID(t *testing.T) {
	db := newTestDB(t)
	ctrl := NewAuthController(db)

	for _, id := range []string{"123", "12345678901234", "abcdefghijklm"} {
		c, w := testContext(t, http.MethodPost, "/api/auth/register", registerBody(id))
		ctrl.Register(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("create user: %w", &pq.Error{Code: "23505"})))

	// other postgres errors and non-pq errors map to 500, not 400
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	ctrl := NewAuthController(db)

	body := registerBody("1234567890123")
	body["role"] = "SUPERUSER"
	c, w := testContext(t, http.MethodPost, "/api/auth/register", body)
	ctrl.Register(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleUser)
	ctrl := NewAuthController(db)

	c, w := testContext(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    user.Email,
		"password": "secret123",
	})
	ctrl.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	ctrl := NewAuthController(db)

	c, w := testContext(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	ctrl.Login(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleUser)
	ctrl := NewAuthController(db)

	c, w := testContext(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    user.Email,
		"password": "wrong-password",
	})
	ctrl.Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleStaff)
	ctrl := NewAuthController(db)

	c, w := testContext(t, http.MethodGet, "/api/auth/me", nil)
	asUser(c, user)
	ctrl.Profile(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.Email, resp.Data.Email)
	assert.Equal(t, models.RoleStaff, resp.Data.Role)
}
