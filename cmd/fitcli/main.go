package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/sgolovanov/workout-tracker/internal/client"
	"github.com/sgolovanov/workout-tracker/internal/handlers"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	baseURL := os.Getenv("WORKOUT_TRACKER_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	sessionPath := os.Getenv("WORKOUT_TRACKER_SESSION")
	if sessionPath == "" {
		var err error
		sessionPath, err = client.DefaultSessionPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}

	session, err := client.LoadSession(sessionPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading session:", err)
		os.Exit(1)
	}

	c := client.New(baseURL, session)
	ctx := context.Background()

	switch os.Args[1] {
	case "register":
		err = cmdRegister(ctx, c, os.Args[2:])
	case "login":
		err = cmdLogin(ctx, c, sessionPath, os.Args[2:])
	case "logout":
		c.Logout()
		err = client.ClearSession(sessionPath)
		if err == nil {
			fmt.Println("Logged out")
		}
	case "workouts":
		err = cmdWorkouts(ctx, c)
	case "add":
		err = cmdAdd(ctx, c, os.Args[2:])
	case "delete":
		err = cmdDelete(ctx, c, os.Args[2:])
	case "leaderboard":
		err = cmdLeaderboard(ctx, c, os.Args[2:])
	case "exercises":
		err = cmdExercises(ctx, c)
	case "account-delete":
		err = cmdAccountDelete(ctx, c, sessionPath, os.Args[2:])
	case "health":
		err = cmdHealth(ctx, c)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: fitcli <command> [flags]

commands:
  register        create an account (-username -email -password)
  login           log in (-user -password)
  logout          clear the stored session
  workouts        list your workouts
  add             log a workout (-date -notes -ex name:weight:reps:sets ...)
  delete          delete a workout (-id, -y to skip confirmation)
  leaderboard     overall ranking, or one exercise with -exercise
  exercises       list known exercise names
  account-delete  delete your account and all data (-y to skip confirmation)
  health          check the server`)
}

func cmdRegister(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "username")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	userID, err := c.Register(ctx, *username, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Registered user %s (%s)\n", *username, userID)
	return nil
}

func cmdLogin(ctx context.Context, c *client.Client, sessionPath string, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("user", "", "username or email")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	session, err := c.Login(ctx, *user, *password)
	if err != nil {
		return err
	}
	if err := client.SaveSession(sessionPath, session); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", session.User.Username)
	return nil
}

func cmdWorkouts(ctx context.Context, c *client.Client) error {
	items, err := c.Workouts(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No workouts logged yet")
		return nil
	}

	for _, w := range items {
		notes := ""
		if w.Notes != nil {
			notes = " - " + *w.Notes
		}
		fmt.Printf("%s  %s%s\n", w.Date, w.ID, notes)

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, e := range w.Exercises {
			fmt.Fprintf(tw, "\t%s\t%.1f x %d reps x %d sets\n", e.ExerciseName, e.Weight, e.Reps, e.Sets)
		}
		tw.Flush()
	}
	return nil
}

// parseExercise parses "name:weight:reps:sets" flag values.
func parseExercise(spec string) (handlers.NewExerciseRequest, error) {
	var e handlers.NewExerciseRequest

	parts := strings.Split(spec, ":")
	if len(parts) != 4 {
		return e, fmt.Errorf("expected name:weight:reps:sets, got %q", spec)
	}

	weight, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return e, fmt.Errorf("invalid weight in %q", spec)
	}
	reps, err := strconv.Atoi(parts[2])
	if err != nil {
		return e, fmt.Errorf("invalid reps in %q", spec)
	}
	sets, err := strconv.Atoi(parts[3])
	if err != nil {
		return e, fmt.Errorf("invalid sets in %q", spec)
	}

	e = handlers.NewExerciseRequest{
		ExerciseName: parts[0],
		Weight:       weight,
		Reps:         reps,
		Sets:         sets,
	}
	return e, nil
}

func cmdAdd(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	date := fs.String("date", "", "workout date (YYYY-MM-DD)")
	notes := fs.String("notes", "", "free-text notes")

	var exercises []handlers.NewExerciseRequest
	fs.Func("ex", "exercise as name:weight:reps:sets (repeatable)", func(spec string) error {
		e, err := parseExercise(spec)
		if err != nil {
			return err
		}
		exercises = append(exercises, e)
		return nil
	})
	fs.Parse(args)

	var notesPtr *string
	if *notes != "" {
		notesPtr = notes
	}

	workoutID, err := c.CreateWorkout(ctx, *date, notesPtr, exercises)
	if err != nil {
		return err
	}
	fmt.Printf("Workout created: %s\n", workoutID)
	return nil
}

func cmdDelete(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "workout identifier")
	yes := fs.Bool("y", false, "skip confirmation")
	fs.Parse(args)

	workoutID, err := uuid.Parse(*id)
	if err != nil {
		return errors.New("a valid -id is required")
	}

	if !*yes && !confirm(fmt.Sprintf("Delete workout %s?", workoutID)) {
		fmt.Println("Aborted")
		return nil
	}

	list := client.NewWorkoutList(c)
	if err := list.Load(ctx); err != nil {
		return err
	}
	if err := list.Delete(ctx, workoutID); err != nil {
		return err
	}
	fmt.Println("Workout deleted")
	return nil
}

func cmdLeaderboard(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("leaderboard", flag.ExitOnError)
	exercise := fs.String("exercise", "", "rank by a single exercise")
	fs.Parse(args)

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer tw.Flush()

	if *exercise != "" {
		ranks, err := c.ExerciseLeaderboard(ctx, *exercise)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "#\tUSER\tMAX WEIGHT\tMAX REPS\tMAX VOLUME")
		for i, rank := range ranks {
			fmt.Fprintf(tw, "%d\t%s\t%.1f\t%d\t%.1f\n", i+1, rank.Username, rank.MaxWeight, rank.MaxReps, rank.MaxVolume)
		}
		return nil
	}

	ranks, err := c.Leaderboard(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(tw, "#\tUSER\tVOLUME\tWORKOUTS\tEXERCISES")
	for i, rank := range ranks {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%d\t%d\n", i+1, rank.Username, rank.TotalVolume, rank.TotalWorkouts, rank.TotalExercises)
	}
	return nil
}

func cmdExercises(ctx context.Context, c *client.Client) error {
	counts, err := c.Exercises(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer tw.Flush()
	fmt.Fprintln(tw, "EXERCISE\tENTRIES")
	for _, e := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", e.ExerciseName, e.Count)
	}
	return nil
}

func cmdAccountDelete(ctx context.Context, c *client.Client, sessionPath string, args []string) error {
	fs := flag.NewFlagSet("account-delete", flag.ExitOnError)
	yes := fs.Bool("y", false, "skip confirmation")
	fs.Parse(args)

	if !*yes && !confirm("Delete your account and ALL workout data?") {
		fmt.Println("Aborted")
		return nil
	}

	if err := c.DeleteAccount(ctx); err != nil {
		return err
	}
	if err := client.ClearSession(sessionPath); err != nil {
		return err
	}
	fmt.Println("Account deleted")
	return nil
}

func cmdHealth(ctx context.Context, c *client.Client) error {
	resp, err := c.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", resp.Status, resp.Message)
	return nil
}

// confirm prompts on stdin and accepts only an explicit "y"/"yes".
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
