package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivam-2025/KhelSaksham/models"
	"github.com/Shivam-2025/KhelSaksham/services"
)

func resultRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock := setupMockDB(t)
	results := services.NewResultService(db)
	ctl := NewResultController(results)
	// Storage is never reached in these tests.
	upload := NewUploadController(nil, results)

	user := &models.User{ID: 1, Username: "demo", Email: "demo@example.com"}
	r := gin.New()
	r.POST("/results", withTestUser(user), ctl.Create)
	r.POST("/submit", withTestUser(user), upload.Submit)
	r.GET("/user/history", withTestUser(user), ctl.History)
	return r, mock
}

func TestCreateResultRejectsNonPositiveReps(t *testing.T) {
	r, _ := resultRouter(t)

	for _, reps := range []int{0, -5} {
		w := postJSON(t, r, "/results", map[string]interface{}{
			"exercise":   "pushup",
			"reps":       reps,
			"video_url":  "https://cdn.example.com/v.mp4",
			"video_hash": "abc123",
			"timestamp":  time.Now().UTC(),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "reps=%d must be rejected", reps)
	}
}

func TestCreateResultRejectsUnknownExercise(t *testing.T) {
	r, _ := resultRouter(t)

	w := postJSON(t, r, "/results", map[string]interface{}{
		"exercise":   "burpee",
		"reps":       10,
		"video_url":  "https://cdn.example.com/v.mp4",
		"video_hash": "abc123",
		"timestamp":  time.Now().UTC(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateResultPersistsRow(t *testing.T) {
	r, mock := resultRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "results"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := postJSON(t, r, "/results", map[string]interface{}{
		"exercise":   "pushup",
		"reps":       25,
		"video_url":  "https://cdn.example.com/v.mp4",
		"video_hash": "abc123",
		"timestamp":  time.Now().UTC(),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
	require.NoError(t, mock.ExpectationsWereMet())
}

func submitForm(t *testing.T, r *gin.Engine, fields map[string]string, withFile bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withFile {
		part, err := writer.CreateFormFile("file", "workout.mp4")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake video bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/submit", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitRejectsNonPositiveReps(t *testing.T) {
	r, _ := resultRouter(t)

	w := submitForm(t, r, map[string]string{
		"exercise":   "pushup",
		"reps":       "0",
		"video_hash": "abc123",
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Reps must be greater than 0")
}

func TestSubmitRejectsBlankExercise(t *testing.T) {
	r, _ := resultRouter(t)

	w := submitForm(t, r, map[string]string{
		"exercise":   "   ",
		"reps":       "10",
		"video_hash": "abc123",
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Exercise name required")
}

func TestSubmitRequiresFile(t *testing.T) {
	r, _ := resultRouter(t)

	w := submitForm(t, r, map[string]string{
		"exercise":   "pushup",
		"reps":       "10",
		"video_hash": "abc123",
	}, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file provided")
}

func TestHistoryReturnsNewestFirst(t *testing.T) {
	r, mock := resultRouter(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT exercise, reps, timestamp, video_url FROM "results" WHERE user_id = \$1 ORDER BY timestamp DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"exercise", "reps", "timestamp", "video_url"}).
			AddRow("pushup", 30, now, "https://cdn.example.com/a.mp4").
			AddRow("situp", 20, now.Add(-time.Hour), "https://cdn.example.com/b.mp4"))

	req := httptest.NewRequest(http.MethodGet, "/user/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pushup")
	assert.Contains(t, w.Body.String(), "situp")
	require.NoError(t, mock.ExpectationsWereMet())
}
