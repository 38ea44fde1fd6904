package submission_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"microtask-backend/internal/api/v1/submission"
	"microtask-backend/internal/models"
	"microtask-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	db.Migrator().DropTable(&models.User{}, &models.Task{}, &models.Submission{})
	if err := db.AutoMigrate(&models.User{}, &models.Task{}, &models.Submission{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := submission.NewHandler(services.NewSubmissionService(db))
	submission.RegisterRoutes(r.Group("/"), h)
	return r
}

func TestCreateSubmissionHandler(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	task := models.Task{BuyerEmail: "buyer@example.com", Title: "Review app", RequiredWorkers: 1, PayableAmount: 5}
	assert.NoError(t, db.Create(&task).Error)

	body := fmt.Sprintf(`{"task_id":%d,"worker_email":"worker@example.com","worker_name":"W","submission_detail":"done"}`, task.ID)
	req := httptest.NewRequest(http.MethodPost, "/submissions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	// Slots are gone; the next submission is a 400.
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/submissions", bytes.NewBufferString(body))
	req2.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestApproveSubmissionHandlerConflictOnReplay(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	assert.NoError(t, db.Create(&models.User{Email: "worker@example.com", Role: models.RoleWorker, Balance: 10}).Error)
	sub := models.Submission{
		TaskID:        1,
		WorkerEmail:   "worker@example.com",
		BuyerEmail:    "buyer@example.com",
		PayableAmount: 7,
		Status:        models.SubmissionPending,
	}
	assert.NoError(t, db.Create(&sub).Error)

	url := fmt.Sprintf("/approve-submission/%d", sub.ID)

	req := httptest.NewRequest(http.MethodPatch, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var decided models.Submission
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decided))
	assert.Equal(t, models.SubmissionApproved, decided.Status)

	req2 := httptest.NewRequest(http.MethodPatch, url, nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusConflict, w2.Code)

	var worker models.User
	assert.NoError(t, db.Where("email = ?", "worker@example.com").First(&worker).Error)
	assert.Equal(t, 17.0, worker.Balance)
}

func TestRejectSubmissionHandler(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	task := models.Task{BuyerEmail: "buyer@example.com", RequiredWorkers: 2, PayableAmount: 5}
	assert.NoError(t, db.Create(&task).Error)
	sub := models.Submission{
		TaskID:        task.ID,
		WorkerEmail:   "worker@example.com",
		BuyerEmail:    "buyer@example.com",
		PayableAmount: 5,
		Status:        models.SubmissionPending,
	}
	assert.NoError(t, db.Create(&sub).Error)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/reject-submission/%d", sub.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Task
	assert.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Equal(t, 3, reloaded.RequiredWorkers)
}

func TestWorkerStatsHandler(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	rows := []models.Submission{
		{TaskID: 1, WorkerEmail: "w@example.com", BuyerEmail: "b@example.com", PayableAmount: 5, Status: models.SubmissionApproved},
		{TaskID: 2, WorkerEmail: "w@example.com", BuyerEmail: "b@example.com", PayableAmount: 9, Status: models.SubmissionPending},
	}
	for i := range rows {
		assert.NoError(t, db.Create(&rows[i]).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/worker-stats/w@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats services.WorkerStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.TotalSubmissions)
	assert.Equal(t, int64(1), stats.PendingSubmissions)
	assert.Equal(t, 5.0, stats.TotalEarnings)
}
