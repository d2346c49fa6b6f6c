package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/fitrank/internal/api"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/internal/observability"
	"github.com/limbo/fitrank/internal/service/mocks"
	"github.com/limbo/fitrank/pkg/entity"
	jwtservice "github.com/limbo/fitrank/pkg/jwt_service"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	serv     *api.Server
	users    *mocks.MockUserServiceI
	progress *mocks.MockProgressServiceI
	metrics  *observability.Manager
	token    string
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	metrics, reg := observability.NewTestManagerAndRegistry()
	jwt := jwtservice.New("secret", time.Minute)
	f := &routerFixture{
		users:    mocks.NewMockUserServiceI(ctrl),
		progress: mocks.NewMockProgressServiceI(ctrl),
		metrics:  metrics,
	}
	f.serv = api.New(&api.ServicesList{
		UserService:     f.users,
		ProgressService: f.progress,
		JwtService:      jwt,
		Metrics:         metrics,
		Gatherer:        reg,
	})
	token, err := jwt.GenerateToken(&entity.User{ID: userID, Name: username})
	require.NoError(t, err)
	f.token = token
	return f
}

func (f *routerFixture) get(path, token string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	f.serv.ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware(t *testing.T) {
	f := newRouterFixture(t)

	t.Run("successful auth", func(t *testing.T) {
		f.users.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.User{ID: userID}, nil)
		f.progress.EXPECT().GetStats(gomock.Any(), userID).Return(&entity.CumulativeStats{}, nil)
		rr := f.get("/api/v1/stats", f.token)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("missing token", func(t *testing.T) {
		rr := f.get("/api/v1/stats", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("forged token", func(t *testing.T) {
		forged, err := jwtservice.New("other", time.Minute).GenerateToken(&entity.User{ID: userID})
		require.NoError(t, err)
		rr := f.get("/api/v1/stats", forged)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("deleted user", func(t *testing.T) {
		f.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		rr := f.get("/api/v1/stats", f.token)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("public routes skip auth", func(t *testing.T) {
		rr := f.get("/healthz", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	f := newRouterFixture(t)
	rr := f.get("/healthz", "")
	_, err := uuid.Parse(rr.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rr = httptest.NewRecorder()
	f.serv.ServeHTTP(rr, req)
	assert.Equal(t, "upstream-id", rr.Header().Get("X-Request-ID"))
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	f := newRouterFixture(t)

	t.Run("no panic", func(t *testing.T) {
		rr := f.get("/healthz", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, float64(0), testutil.ToFloat64(f.metrics.CounterHandleRequestPanic))
	})
	t.Run("panicking handler", func(t *testing.T) {
		f.users.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.User{ID: userID}, nil)
		f.progress.EXPECT().GetStats(gomock.Any(), userID).DoAndReturn(func(context.Context, uuid.UUID) (*entity.CumulativeStats, error) {
			panic("stats exploded")
		})
		rr := f.get("/api/v1/stats", f.token)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CounterHandleRequestPanic))
	})
}

func TestRequestMetricsMiddleware(t *testing.T) {
	f := newRouterFixture(t)
	f.get("/healthz", "")
	f.get("/api/v1/stats", "")

	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CounterRequests.WithLabelValues(http.MethodGet, "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CounterRequests.WithLabelValues(http.MethodGet, "401")))
	assert.Equal(t, float64(0), testutil.ToFloat64(f.metrics.GaugeRequests))

	rr := f.get("/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "fitrank_test_server_request")
}
