package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fitnesshub/fitness-app/internal/catalog"
	"fitnesshub/fitness-app/internal/config"
	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	catalogUser  string
	catalogDate  string
	catalogCount int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [workout-type] [day]",
	Short: "List programs, or print the day plan a user gets for a week",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			printPrograms(out)
			return nil
		}

		workoutType := domain.WorkoutType(args[0])
		if !workoutType.IsValid() {
			return fmt.Errorf("unknown workout type %q", args[0])
		}
		if len(args) == 1 {
			printSchedule(out, workoutType)
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		count := catalogCount
		if !cmd.Flags().Changed("count") && cfg.Tracker.PlanSize > 0 {
			count = cfg.Tracker.PlanSize
		}
		plan, err := planForUser(cfg.Tracker, catalogUser, workoutType, domain.DayOfWeek(args[1]), catalogDate, count)
		if err != nil {
			return err
		}
		printPlan(out, plan)
		return nil
	},
}

// planForUser computes the day plan the API serves, on the tracker calendar.
// An empty date means the current week.
func planForUser(tracker config.TrackerConfig, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, date string, count int) (*service.DayPlan, error) {
	loc, err := tracker.Location()
	if err != nil {
		return nil, err
	}
	ref := time.Now()
	if date != "" {
		ref, err = time.ParseInLocation(time.DateOnly, date, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid --date: %w", err)
		}
	}
	return service.NewCatalogService(service.FixedCalendar{Location: loc}).PlanForWeek(userID, workoutType, day, ref, count)
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogUser, "user", "u", "preview", "user ID the plan is seeded for")
	catalogCmd.Flags().StringVarP(&catalogDate, "date", "d", "", "any date of the week to plan (YYYY-MM-DD), defaults to today")
	catalogCmd.Flags().IntVarP(&catalogCount, "count", "n", catalog.DefaultPlanSize, "number of exercises in the plan")
	rootCmd.AddCommand(catalogCmd)
}

func printPrograms(out io.Writer) {
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	for _, p := range catalog.Programs() {
		training := 0
		for _, day := range domain.Weekdays {
			if !catalog.IsRestDay(p.Type, day) {
				training++
			}
		}
		fmt.Fprintf(out, "%s  %s (%d training days)\n", cyanBold(p.Type), p.Title, training)
	}
}

func printSchedule(out io.Writer, workoutType domain.WorkoutType) {
	header := color.New(color.FgGreen, color.Bold).SprintFunc()
	rest := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintln(out, header(workoutType.Title()))
	for _, day := range domain.Weekdays {
		pool := catalog.Pool(workoutType, day)
		if len(pool) == 0 {
			fmt.Fprintf(out, "  %-9s %s\n", day, rest("rest"))
			continue
		}
		titles := make([]string, len(pool))
		for i, e := range pool {
			titles[i] = e.Title
		}
		fmt.Fprintf(out, "  %-9s %s\n", day, strings.Join(titles, ", "))
	}
}

func printPlan(out io.Writer, plan *service.DayPlan) {
	header := color.New(color.FgGreen, color.Bold).SprintFunc()
	muscle := color.New(color.FgMagenta).SprintFunc()

	fmt.Fprintf(out, "%s %s, week of %s\n", header(plan.WorkoutType.Title()), plan.DayOfWeek, plan.WeekStart.Format(time.DateOnly))
	if plan.RestDay {
		fmt.Fprintln(out, color.New(color.FgYellow).Sprint("  rest day"))
		return
	}
	for i, e := range plan.Exercises {
		fmt.Fprintf(out, "  %d. %s  %d x %s  %s\n", i+1, e.Title, e.Sets, e.Reps, muscle(e.MuscleGroup))
	}
}
