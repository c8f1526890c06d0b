package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sgolovanov/workout-tracker/internal/logger"
)

// schema is applied at startup. Cascade deletes keep the ownership chain
// consistent: removing a user removes their workouts, removing a workout
// removes its exercise entries.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS workouts (
	workout_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	date DATE NOT NULL,
	notes TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS exercises (
	exercise_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	workout_id UUID NOT NULL REFERENCES workouts(workout_id) ON DELETE CASCADE,
	exercise_name VARCHAR(100) NOT NULL,
	weight DOUBLE PRECISION NOT NULL CHECK (weight >= 0),
	reps INTEGER NOT NULL CHECK (reps >= 0),
	sets INTEGER NOT NULL CHECK (sets >= 0)
);

CREATE INDEX IF NOT EXISTS idx_workouts_user_id ON workouts(user_id);
CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date);
CREATE INDEX IF NOT EXISTS idx_exercises_workout_id ON exercises(workout_id);
CREATE INDEX IF NOT EXISTS idx_exercises_name ON exercises(exercise_name);
`

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("failed to apply schema", "error", err)
		return err
	}
	logger.Log.Infow("schema applied")
	return nil
}
