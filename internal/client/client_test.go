package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sgolovanov/workout-tracker/internal/handlers"
	"github.com/sgolovanov/workout-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Register(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req handlers.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(handlers.RegisterResponse{
			Message: "User registered successfully",
			UserID:  userID,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	got, err := c.Register(context.Background(), "alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestClient_RegisterConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Username or email already exists"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Register(context.Background(), "alice", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Username or email already exists")
}

func TestClient_LoginSetsSession(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		json.NewEncoder(w).Encode(handlers.LoginResponse{
			Token: "token123",
			User:  models.User{UserID: userID, Username: "alice", Email: "alice@example.com"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	session, err := c.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "token123", session.Token)
	assert.Equal(t, "alice", session.User.Username)
	assert.Same(t, session, c.Session())
}

func TestClient_LoginUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid username or password"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, c.Session())
}

func TestClient_ProtectedCallsRequireSession(t *testing.T) {
	c := New("http://localhost:0", nil)

	_, err := c.Workouts(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)

	err = c.DeleteWorkout(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoSession)

	err = c.DeleteAccount(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClient_WorkoutsSendsBearerToken(t *testing.T) {
	workoutID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]handlers.WorkoutItem{
			{ID: workoutID, Date: "2025-03-01", Exercises: []handlers.ExerciseEntry{}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &Session{Token: "token123"})
	items, err := c.Workouts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, workoutID, items[0].ID)
}

func TestClient_CreateWorkout(t *testing.T) {
	workoutID := uuid.New()
	notes := "Push day"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/workouts", r.URL.Path)

		var req handlers.WorkoutCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2025-03-01", req.Date)
		assert.Equal(t, &notes, req.Notes)
		require.Len(t, req.Exercises, 1)
		assert.Equal(t, "Bench Press", req.Exercises[0].ExerciseName)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(handlers.WorkoutCreateResponse{
			Message:   "Workout created successfully",
			WorkoutID: workoutID,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &Session{Token: "token123"})
	got, err := c.CreateWorkout(context.Background(), "2025-03-01", &notes, []handlers.NewExerciseRequest{
		{ExerciseName: "Bench Press", Weight: 135, Reps: 10, Sets: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, workoutID, got)
}

func TestClient_DeleteWorkoutNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Workout not found"})
	}))
	defer srv.Close()

	c := New(srv.URL, &Session{Token: "token123"})
	err := c.DeleteWorkout(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_DeleteAccountClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/auth/account", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "Account deleted successfully"})
	}))
	defer srv.Close()

	c := New(srv.URL, &Session{Token: "token123"})
	require.NoError(t, c.DeleteAccount(context.Background()))
	assert.Nil(t, c.Session())
}

func TestClient_Leaderboards(t *testing.T) {
	aliceID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/leaderboard":
			json.NewEncoder(w).Encode([]models.OverallRank{
				{Username: "alice", UserID: aliceID, TotalVolume: 7830},
			})
		case "/api/leaderboard/Bench Press":
			json.NewEncoder(w).Encode([]models.ExerciseRank{
				{Username: "alice", UserID: aliceID, MaxWeight: 135},
			})
		case "/api/leaderboard/exercises/list":
			json.NewEncoder(w).Encode([]models.ExerciseCount{
				{ExerciseName: "Bench Press", Count: 2},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	ctx := context.Background()

	overall, err := c.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, overall, 1)
	assert.Equal(t, 7830.0, overall[0].TotalVolume)

	byExercise, err := c.ExerciseLeaderboard(ctx, "Bench Press")
	require.NoError(t, err)
	require.Len(t, byExercise, 1)
	assert.Equal(t, 135.0, byExercise[0].MaxWeight)

	counts, err := c.Exercises(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, 2, counts[0].Count)
}

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(handlers.HealthResponse{Status: "OK", Message: "Server is running"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	resp, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}
