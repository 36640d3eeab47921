package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"learnsphere/domain"
	"learnsphere/repository"
	"learnsphere/service"
	"learnsphere/storage"
	"learnsphere/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentRig(t *testing.T) testRig {
	t.Helper()

	store := storage.NewMemoryStore()
	require.NoError(t, repository.SeedDemoData(context.Background(), store, false))

	courseRepo := repository.NewCourseRepository(store)
	bundleRepo := repository.NewBundleRepository(store)
	entitlements := service.NewEntitlementService(repository.NewEntitlementRepository(store), courseRepo, bundleRepo)
	reviews := service.NewReviewService(repository.NewReviewRepository(store), courseRepo)

	manager := utils.NewJWTManager(testSecret, time.Hour)

	router := gin.New()
	NewStudentHandler(router, entitlements, manager)
	NewReviewHandler(router, reviews, manager)

	return testRig{router: router, manager: manager}
}

func studentToken(t *testing.T, rig testRig) string {
	t.Helper()
	token, err := rig.manager.GenerateToken("u1", domain.RoleStudent, "Sam")
	require.NoError(t, err)
	return token
}

func TestStudentRoutesRequireStudentRole(t *testing.T) {
	rig := newStudentRig(t)

	rec := rig.do(t, http.MethodGet, "/student/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := rig.manager.GenerateToken("u1", domain.RoleEducator, "Eve")
	require.NoError(t, err)
	rec = rig.do(t, http.MethodGet, "/student/courses", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEnrollAndListCourses(t *testing.T) {
	rig := newStudentRig(t)
	token := studentToken(t, rig)

	rec := rig.do(t, http.MethodPost, "/student/enroll", token, gin.H{"course_id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	// Enrolling again is a quiet no-op.
	rec = rig.do(t, http.MethodPost, "/student/enroll", token, gin.H{"course_id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = rig.do(t, http.MethodGet, "/student/courses", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []domain.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Advanced React Patterns", body.Data[0].Title)

	rec = rig.do(t, http.MethodGet, "/student/courses/1/enrolled", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status struct {
		Data struct {
			Enrolled bool `json:"enrolled"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Data.Enrolled)
}

func TestEnrollUnknownCourseReturns404(t *testing.T) {
	rig := newStudentRig(t)
	token := studentToken(t, rig)

	rec := rig.do(t, http.MethodPost, "/student/enroll", token, gin.H{"course_id": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPurchaseBundleFlow(t *testing.T) {
	rig := newStudentRig(t)
	token := studentToken(t, rig)

	rec := rig.do(t, http.MethodPost, "/student/purchase", token, gin.H{"bundle_id": "2"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = rig.do(t, http.MethodGet, "/student/bundles", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []domain.Bundle `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Data Science Master Bundle", body.Data[0].Title)

	rec = rig.do(t, http.MethodGet, "/student/bundles/2/purchased", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status struct {
		Data struct {
			Purchased bool `json:"purchased"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Data.Purchased)
}

func TestPurchaseUnknownBundleReturns404(t *testing.T) {
	rig := newStudentRig(t)
	token := studentToken(t, rig)

	rec := rig.do(t, http.MethodPost, "/student/purchase", token, gin.H{"bundle_id": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewEndpoints(t *testing.T) {
	rig := newStudentRig(t)
	token := studentToken(t, rig)

	// Course 2 starts with one seeded 5-star review.
	rec := rig.do(t, http.MethodPost, "/courses/2/reviews", token, gin.H{
		"rating":  3,
		"comment": "solid but dense",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = rig.do(t, http.MethodGet, "/courses/2/reviews", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Data []domain.Review `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed.Data, 2)

	rec = rig.do(t, http.MethodGet, "/courses/2/rating", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rating struct {
		Data struct {
			Average float64 `json:"average"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rating))
	assert.InDelta(t, 4.0, rating.Data.Average, 1e-9)

	rec = rig.do(t, http.MethodGet, "/courses/2/reviews/mine", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var mine struct {
		Data domain.Review `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	assert.Equal(t, 3, mine.Data.Rating)
	assert.Equal(t, "Sam", mine.Data.UserName)
}

func TestReviewValidation(t *testing.T) {
	rig := newStudentRig(t)
	token := studentToken(t, rig)

	rec := rig.do(t, http.MethodPost, "/courses/1/reviews", token, gin.H{"rating": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewUnknownCourseReturns404(t *testing.T) {
	rig := newStudentRig(t)
	token := studentToken(t, rig)

	rec := rig.do(t, http.MethodPost, "/courses/ghost/reviews", token, gin.H{"rating": 4})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
