package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sgolovanov/workout-tracker/internal/handlers"
	"github.com/sgolovanov/workout-tracker/internal/models"
)

// Error variables mirroring the API's status taxonomy.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("username or email already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSession    = errors.New("not logged in")
)

// Client talks to the workout tracker REST API. The session is explicit:
// nil means unauthenticated, and protected calls fail with ErrNoSession.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// New creates a Client against baseURL with the given session (may be nil).
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		session:    session,
	}
}

// Session returns the current session, or nil when logged out.
func (c *Client) Session() *Session {
	return c.session
}

// Register creates a new account and returns the new user id.
func (c *Client) Register(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	req := handlers.RegisterRequest{Username: username, Email: email, Password: password}

	var resp handlers.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp, false); err != nil {
		return uuid.Nil, err
	}
	return resp.UserID, nil
}

// Login authenticates and replaces the client's session with a fresh one.
// The returned session is the caller's to persist.
func (c *Client) Login(ctx context.Context, login, password string) (*Session, error) {
	req := handlers.LoginRequest{Username: login, Password: password}

	var resp handlers.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp, false); err != nil {
		return nil, err
	}

	c.session = &Session{Token: resp.Token, User: resp.User}
	return c.session, nil
}

// Logout drops the in-memory session. Persisted state is the caller's to clear.
func (c *Client) Logout() {
	c.session = nil
}

// DeleteAccount removes the logged-in user and everything they own.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/api/auth/account", nil, nil, true); err != nil {
		return err
	}
	c.session = nil
	return nil
}

// Workouts returns the logged-in user's workouts, newest first.
func (c *Client) Workouts(ctx context.Context) ([]handlers.WorkoutItem, error) {
	var items []handlers.WorkoutItem
	if err := c.do(ctx, http.MethodGet, "/api/workouts", nil, &items, true); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateWorkout logs a new workout and returns its identifier.
func (c *Client) CreateWorkout(ctx context.Context, date string, notes *string, exercises []handlers.NewExerciseRequest) (uuid.UUID, error) {
	req := handlers.WorkoutCreateRequest{Date: date, Notes: notes, Exercises: exercises}

	var resp handlers.WorkoutCreateResponse
	if err := c.do(ctx, http.MethodPost, "/api/workouts", req, &resp, true); err != nil {
		return uuid.Nil, err
	}
	return resp.WorkoutID, nil
}

// DeleteWorkout removes one of the logged-in user's workouts.
func (c *Client) DeleteWorkout(ctx context.Context, workoutID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/workouts/"+workoutID.String(), nil, nil, true)
}

// Leaderboard returns the overall leaderboard.
func (c *Client) Leaderboard(ctx context.Context) ([]models.OverallRank, error) {
	var ranks []models.OverallRank
	if err := c.do(ctx, http.MethodGet, "/api/leaderboard", nil, &ranks, false); err != nil {
		return nil, err
	}
	return ranks, nil
}

// ExerciseLeaderboard returns the leaderboard for one exercise.
func (c *Client) ExerciseLeaderboard(ctx context.Context, name string) ([]models.ExerciseRank, error) {
	var ranks []models.ExerciseRank
	if err := c.do(ctx, http.MethodGet, "/api/leaderboard/"+name, nil, &ranks, false); err != nil {
		return nil, err
	}
	return ranks, nil
}

// Exercises returns all known exercise names with entry counts.
func (c *Client) Exercises(ctx context.Context) ([]models.ExerciseCount, error) {
	var counts []models.ExerciseCount
	if err := c.do(ctx, http.MethodGet, "/api/leaderboard/exercises/list", nil, &counts, false); err != nil {
		return nil, err
	}
	return counts, nil
}

// Health checks the server.
func (c *Client) Health(ctx context.Context) (*handlers.HealthResponse, error) {
	var resp handlers.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do issues one JSON request/response round trip and maps error statuses to
// the client's error variables, preferring the server-reported message.
func (c *Client) do(ctx context.Context, method, path string, body, dest any, auth bool) error {
	if auth && c.session == nil {
		return ErrNoSession
	}

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}

	if dest != nil {
		return json.NewDecoder(resp.Body).Decode(dest)
	}
	return nil
}

// statusError wraps a sentinel error with the server-reported message when
// one is present.
func (c *Client) statusError(resp *http.Response) error {
	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = ErrInvalidInput
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	default:
		sentinel = fmt.Errorf("server error (status %d)", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("%w: %s", sentinel, body.Error)
	}
	return sentinel
}
