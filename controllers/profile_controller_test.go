package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivam-2025/KhelSaksham/models"
	"github.com/Shivam-2025/KhelSaksham/services"
)

func profileRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock := setupMockDB(t)
	ctl := NewProfileController(services.NewUserService(db))

	user := &models.User{ID: 1, Username: "demo", Email: "demo@example.com"}
	r := gin.New()
	r.GET("/profile/me", withTestUser(user), ctl.Me)
	r.PATCH("/profile/me", withTestUser(user), ctl.Update)
	return r, mock
}

func patchJSON(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/profile/me", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProfileMe(t *testing.T) {
	r, mock := profileRouter(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(reps\), 0\) FROM "results" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(170))

	req := httptest.NewRequest(http.MethodGet, "/profile/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "demo", out["username"])
	assert.Equal(t, float64(170), out["total_reps"])
}

func TestProfileUpdateBio(t *testing.T) {
	r, mock := profileRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := patchJSON(t, r, map[string]string{"bio": "grinding every day"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "updated")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileUpdateEmptyEmailRejected(t *testing.T) {
	r, _ := profileRouter(t)

	w := patchJSON(t, r, map[string]string{"email": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email cannot be empty")
}

func TestProfileUpdateDuplicateEmailRejected(t *testing.T) {
	r, mock := profileRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 AND id <> \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(2, "taken@example.com"))

	w := patchJSON(t, r, map[string]string{"email": "taken@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already in use")
	require.NoError(t, mock.ExpectationsWereMet())
}
