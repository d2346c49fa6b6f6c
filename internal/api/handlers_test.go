package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/fitrank/internal/api"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/internal/service"
	"github.com/limbo/fitrank/internal/service/mocks"
	"github.com/limbo/fitrank/pkg/entity"
	jwtservice "github.com/limbo/fitrank/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username = "test_name"
	password = "test_password"
	userID   = uuid.New()
	errSvc   = errors.New("service error")
)

// authorized attaches the user the way AuthMiddleware does.
func authorized(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return body
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	us := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{UserService: us})
	body := mustMarshal(t, api.RegisterRequest{Name: username, Password: password})

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				us.EXPECT().Register(gomock.Any(), &service.RegisterRequest{Name: username, Password: password}).
					Return(&entity.User{ID: userID, Name: username}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "existed user",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				us.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid name",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				us.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("name")))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				us.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errSvc)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body)
			serv.Register(rr, req)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	us := mocks.NewMockUserServiceI(ctrl)
	jwt := jwtservice.New("secret", time.Minute)
	serv := api.New(&api.ServicesList{UserService: us, JwtService: jwt})
	body := mustMarshal(t, api.LoginRequest{Name: username, Password: password})

	t.Run("logged in", func(t *testing.T) {
		us.EXPECT().Login(gomock.Any(), username, password).Return(&entity.User{ID: userID, Name: username}, nil)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
		token, ok := result["token"].(string)
		require.True(t, ok)
		claims, err := jwt.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
	})
	t.Run("wrong password", func(t *testing.T) {
		us.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("unexist user", func(t *testing.T) {
		us.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestProfileHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	us := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{UserService: us})
	avatar := "https://cdn.example.com/a.png"

	t.Run("public profile", func(t *testing.T) {
		us.EXPECT().GetByName(gomock.Any(), username).
			Return(&entity.User{ID: userID, Name: username, AvatarURL: avatar, PasswordHash: "hash"}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+username, nil)
		req.SetPathValue("name", username)
		serv.GetProfile(rr, authorized(req))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.ProfileResponse
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, api.ProfileResponse{ID: userID.String(), Name: username, AvatarURL: avatar}, resp)
		assert.NotContains(t, rr.Body.String(), "hash")
	})
	t.Run("unknown profile", func(t *testing.T) {
		us.EXPECT().GetByName(gomock.Any(), "ghost").Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/ghost", nil)
		req.SetPathValue("name", "ghost")
		serv.GetProfile(rr, authorized(req))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("updated", func(t *testing.T) {
		us.EXPECT().UpdateProfile(gomock.Any(), userID, &service.UpdateProfileRequest{AvatarURL: &avatar}).
			Return(&entity.User{ID: userID, Name: username, AvatarURL: avatar}, nil)
		rr := httptest.NewRecorder()
		body := mustMarshal(t, map[string]string{"avatar_url": avatar})
		serv.UpdateProfile(rr, authorized(httptest.NewRequest(http.MethodPatch, "/api/v1/users/me", bytes.NewReader(body))))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("name taken", func(t *testing.T) {
		us.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrUserExists)
		rr := httptest.NewRecorder()
		body := mustMarshal(t, map[string]string{"name": "taken_name"})
		serv.UpdateProfile(rr, authorized(httptest.NewRequest(http.MethodPatch, "/api/v1/users/me", bytes.NewReader(body))))
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("no authorization", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.UpdateProfile(rr, httptest.NewRequest(http.MethodPatch, "/api/v1/users/me", bytes.NewReader([]byte("{}"))))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestLogWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mocks.NewMockWorkoutsServiceI(ctrl)
	serv := api.New(&api.ServicesList{WorkoutsService: ws})
	start := time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC)
	body := []byte(`{"name":"Leg day","start_time":"2026-03-02T18:00:00Z","exercises":[{"name":"Squat","sets":[{"reps":5,"weight":100,"completed":true}]}]}`)
	workoutID := uuid.New()

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         []byte
		Authorized   bool
	}{
		{
			Desc:         "logged",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				ws.EXPECT().LogWorkout(gomock.Any(), userID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, req *service.LogWorkoutRequest) (*entity.WorkoutRecord, error) {
						assert.Equal(t, start, req.StartTime.UTC())
						require.Len(t, req.Exercises, 1)
						assert.Equal(t, 100.0, req.Exercises[0].Sets[0].Weight)
						return &entity.WorkoutRecord{ID: workoutID, UserID: userID, StartTime: start}, nil
					})
			},
			Body:       body,
			Authorized: true,
		},
		{
			Desc:         "validation failure",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				ws.EXPECT().LogWorkout(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrValidation)
			},
			Body:       body,
			Authorized: true,
		},
		{
			Desc:         "corrupted body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         []byte("corrupted"),
			Authorized:   true,
		},
		{
			Desc:         "no authorization",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
			Body:         body,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", bytes.NewReader(tc.Body))
			if tc.Authorized {
				r = authorized(r)
			}
			serv.LogWorkout(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestListWorkouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mocks.NewMockWorkoutsServiceI(ctrl)
	serv := api.New(&api.ServicesList{WorkoutsService: ws})

	testCases := []struct {
		Desc         string
		Query        string
		ExpectedOpts service.PaginationOpts
	}{
		{Desc: "defaults", Query: "", ExpectedOpts: service.PaginationOpts{Limit: 20, Offset: 0}},
		{Desc: "second page", Query: "?limit=5&page=2", ExpectedOpts: service.PaginationOpts{Limit: 5, Offset: 5}},
		{Desc: "limit too big", Query: "?limit=1000", ExpectedOpts: service.PaginationOpts{Limit: 20, Offset: 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ws.EXPECT().ListWorkouts(gomock.Any(), userID, tc.ExpectedOpts).Return(nil, nil)
			rr := httptest.NewRecorder()
			serv.ListWorkouts(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/workouts"+tc.Query, nil)))
			require.Equal(t, http.StatusOK, rr.Result().StatusCode)
			var resp api.GetWorkoutsResponse
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
			assert.NotNil(t, resp.Workouts)
			assert.Equal(t, tc.ExpectedOpts.Limit, resp.Limit)
		})
	}
}

func TestGetAndDeleteWorkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mocks.NewMockWorkoutsServiceI(ctrl)
	serv := api.New(&api.ServicesList{WorkoutsService: ws})
	workoutID := uuid.New()
	withID := func(method, id string) *http.Request {
		r := authorized(httptest.NewRequest(method, "/api/v1/workouts/"+id, nil))
		r.SetPathValue("id", id)
		return r
	}

	t.Run("found", func(t *testing.T) {
		ws.EXPECT().GetWorkout(gomock.Any(), workoutID, userID).Return(&entity.WorkoutRecord{ID: workoutID}, nil)
		rr := httptest.NewRecorder()
		serv.GetWorkout(rr, withID(http.MethodGet, workoutID.String()))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("foreign workout looks missing", func(t *testing.T) {
		ws.EXPECT().GetWorkout(gomock.Any(), workoutID, userID).Return(nil, errorvalues.ErrWrongOwner)
		rr := httptest.NewRecorder()
		serv.GetWorkout(rr, withID(http.MethodGet, workoutID.String()))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetWorkout(rr, withID(http.MethodGet, "not-a-uuid"))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("deleted", func(t *testing.T) {
		ws.EXPECT().DeleteWorkout(gomock.Any(), workoutID, userID).Return(nil)
		rr := httptest.NewRecorder()
		serv.DeleteWorkout(rr, withID(http.MethodDelete, workoutID.String()))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("delete service error", func(t *testing.T) {
		ws.EXPECT().DeleteWorkout(gomock.Any(), workoutID, userID).Return(errSvc)
		rr := httptest.NewRecorder()
		serv.DeleteWorkout(rr, withID(http.MethodDelete, workoutID.String()))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestStatsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	ps := mocks.NewMockProgressServiceI(ctrl)
	serv := api.New(&api.ServicesList{ProgressService: ps})

	t.Run("stats", func(t *testing.T) {
		ps.EXPECT().GetStats(gomock.Any(), userID).Return(&entity.CumulativeStats{TotalWorkouts: 3, TotalVolume: 1500}, nil)
		rr := httptest.NewRecorder()
		serv.GetStats(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var stats entity.CumulativeStats
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&stats))
		assert.Equal(t, 3, stats.TotalWorkouts)
		assert.Equal(t, 1500.0, stats.TotalVolume)
	})
	t.Run("achievements", func(t *testing.T) {
		ps.EXPECT().GetAchievements(gomock.Any(), userID).Return([]entity.Achievement{{ID: "first_workout", Earned: true}}, nil)
		rr := httptest.NewRecorder()
		serv.GetAchievements(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/achievements", nil)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Contains(t, rr.Body.String(), "first_workout")
	})
	t.Run("exercise progress error", func(t *testing.T) {
		ps.EXPECT().GetExerciseProgress(gomock.Any(), userID).Return(nil, errSvc)
		rr := httptest.NewRecorder()
		serv.GetExerciseProgress(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/progress", nil)))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("weekly default", func(t *testing.T) {
		ps.EXPECT().GetWeekly(gomock.Any(), userID, 8).Return([]entity.WeeklyAggregate{}, nil)
		rr := httptest.NewRecorder()
		serv.GetWeekly(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/weekly", nil)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("weekly out of range", func(t *testing.T) {
		ps.EXPECT().GetWeekly(gomock.Any(), userID, 60).Return(nil, errorvalues.ErrValidation)
		rr := httptest.NewRecorder()
		serv.GetWeekly(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/weekly?weeks=60", nil)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("weekly not a number", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetWeekly(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/weekly?weeks=many", nil)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestGetLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	ls := mocks.NewMockLeaderboardServiceI(ctrl)
	serv := api.New(&api.ServicesList{LeaderboardService: ls})
	request := func(metric, query string) *http.Request {
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/leaderboards/"+metric+query, nil))
		r.SetPathValue("metric", metric)
		return r
	}

	t.Run("built", func(t *testing.T) {
		ls.EXPECT().GetLeaderboard(gomock.Any(), userID, "total_weight", "monthly").Return(&entity.Leaderboard{
			Metric:   entity.MetricTotalWeight,
			Period:   entity.PeriodMonthly,
			Entries:  []*entity.LeaderboardEntry{{UserID: userID, Rank: 1, Value: 900, Trend: entity.TrendSame}},
			UserRank: 1,
		}, nil)
		rr := httptest.NewRecorder()
		serv.GetLeaderboard(rr, request("total_weight", "?period=monthly"))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var lb entity.Leaderboard
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&lb))
		assert.Equal(t, 1, lb.UserRank)
		require.Len(t, lb.Entries, 1)
		assert.Equal(t, userID, lb.Entries[0].UserID)
	})
	t.Run("unknown metric", func(t *testing.T) {
		ls.EXPECT().GetLeaderboard(gomock.Any(), userID, "push_ups", "").Return(nil, errorvalues.ErrUnknownMetric)
		rr := httptest.NewRecorder()
		serv.GetLeaderboard(rr, request("push_ups", ""))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestChallengeHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	cs := mocks.NewMockChallengesServiceI(ctrl)
	serv := api.New(&api.ServicesList{ChallengesService: cs})
	challengeID := uuid.New()
	withID := func(method string, body []byte) *http.Request {
		r := authorized(httptest.NewRequest(method, "/api/v1/challenges/"+challengeID.String(), bytes.NewReader(body)))
		r.SetPathValue("id", challengeID.String())
		return r
	}
	stored := &entity.Challenge{ID: challengeID, Title: "March volume", Status: entity.StatusActive}

	t.Run("create", func(t *testing.T) {
		body := []byte(`{"title":"March volume","type":"total_weight","target":1000,"unit":"kg","start_date":"2026-03-01T00:00:00Z","end_date":"2026-04-01T00:00:00Z","is_public":true}`)
		cs.EXPECT().CreateChallenge(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, req *service.CreateChallengeRequest) (*entity.Challenge, error) {
				assert.Equal(t, entity.ChallengeTotalWeight, req.Type)
				assert.True(t, req.IsPublic)
				return stored, nil
			})
		rr := httptest.NewRecorder()
		serv.CreateChallenge(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/challenges", bytes.NewReader(body))))
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("join", func(t *testing.T) {
		cs.EXPECT().Join(gomock.Any(), challengeID, userID).Return(stored, nil)
		rr := httptest.NewRecorder()
		serv.JoinChallenge(rr, withID(http.MethodPost, nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("join twice", func(t *testing.T) {
		cs.EXPECT().Join(gomock.Any(), challengeID, userID).Return(nil, errorvalues.ErrAlreadyParticipating)
		rr := httptest.NewRecorder()
		serv.JoinChallenge(rr, withID(http.MethodPost, nil))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("update progress", func(t *testing.T) {
		cs.EXPECT().UpdateProgress(gomock.Any(), challengeID, userID, 250.0).Return(stored, nil)
		rr := httptest.NewRecorder()
		serv.UpdateChallengeProgress(rr, withID(http.MethodPut, []byte(`{"value":250}`)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("update progress without value", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.UpdateChallengeProgress(rr, withID(http.MethodPut, []byte(`{}`)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("concurrent update exhausted", func(t *testing.T) {
		cs.EXPECT().SyncProgress(gomock.Any(), challengeID, userID).Return(nil, errorvalues.ErrConcurrentUpdate)
		rr := httptest.NewRecorder()
		serv.SyncChallengeProgress(rr, withID(http.MethodPost, nil))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("private challenge", func(t *testing.T) {
		cs.EXPECT().GetChallenge(gomock.Any(), challengeID, userID).Return(nil, errorvalues.ErrChallengeNotFound)
		rr := httptest.NewRecorder()
		serv.GetChallenge(rr, withID(http.MethodGet, nil))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("leave", func(t *testing.T) {
		cs.EXPECT().Leave(gomock.Any(), challengeID, userID).Return(nil, errorvalues.ErrNotParticipating)
		rr := httptest.NewRecorder()
		serv.LeaveChallenge(rr, withID(http.MethodPost, nil))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("list", func(t *testing.T) {
		cs.EXPECT().ListChallenges(gomock.Any(), userID, service.PaginationOpts{Limit: 20}).Return([]*entity.Challenge{stored}, nil)
		rr := httptest.NewRecorder()
		serv.ListChallenges(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/challenges", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.GetChallengesResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
		assert.Len(t, resp.Challenges, 1)
	})
}
