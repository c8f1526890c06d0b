package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/sgolovanov/workout-tracker/internal/handlers"
)

// WorkoutList is the client-side view of the user's workouts. Deletion is a
// two-phase update: the item is removed speculatively before the request is
// issued, and re-inserted at its old position if the request fails.
type WorkoutList struct {
	client *Client
	items  []handlers.WorkoutItem
}

// NewWorkoutList creates an empty list bound to the client.
func NewWorkoutList(c *Client) *WorkoutList {
	return &WorkoutList{client: c}
}

// Load refreshes the list from the server.
func (l *WorkoutList) Load(ctx context.Context) error {
	items, err := l.client.Workouts(ctx)
	if err != nil {
		return err
	}
	l.items = items
	return nil
}

// Items returns the current in-memory view.
func (l *WorkoutList) Items() []handlers.WorkoutItem {
	return l.items
}

// Delete removes the workout optimistically, then issues the request. On
// failure the compensating transition restores the item, so the view never
// drifts from the store for longer than one failed call.
func (l *WorkoutList) Delete(ctx context.Context, workoutID uuid.UUID) error {
	idx := -1
	for i, item := range l.items {
		if item.ID == workoutID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	removed := l.items[idx]
	l.items = append(l.items[:idx:idx], l.items[idx+1:]...)

	if err := l.client.DeleteWorkout(ctx, workoutID); err != nil {
		// Compensating transition: put the item back where it was.
		restored := make([]handlers.WorkoutItem, 0, len(l.items)+1)
		restored = append(restored, l.items[:idx]...)
		restored = append(restored, removed)
		restored = append(restored, l.items[idx:]...)
		l.items = restored
		return err
	}

	return nil
}
