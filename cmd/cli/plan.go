package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rhyrak/course-planner/internal/csvio"
	"github.com/rhyrak/course-planner/internal/scheduler"
	"github.com/rhyrak/course-planner/internal/service"
	"github.com/rhyrak/course-planner/internal/tui"
	"github.com/rhyrak/course-planner/internal/wizard"
	"github.com/rhyrak/course-planner/pkg/model"
)

const notFoundMessage = "조건에 맞는 시간표를 찾지 못했습니다. (no schedule satisfies the constraints)"

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate the best schedules for the given constraints",
	Example: `  planner plan -c catalog.csv --max-credit 12 --days-off 월,금 --time-of-day morning
  planner plan --url https://example.com/catalog.csv --best --export schedule.ics --term-start 2026-03-02`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := constraintsFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		return runPlan(cmd, c)
	},
}

func init() {
	rootCmd.AddCommand(planCmd)

	f := planCmd.Flags()
	f.IntP("max-credit", "m", wizard.DefaultMaxCredit, "Maximum total credits")
	f.String("days-off", "", "Weekdays without classes, e.g. 월,금 or mon,fri")
	f.StringP("instructor", "i", "", "Only courses whose instructor contains this text")
	f.StringP("time-of-day", "t", "any", "any, morning or afternoon (전체, 아침, 오후)")
	f.Bool("back-to-back", false, "Only schedules whose classes follow each other closely")
	f.StringSliceP("desired", "d", nil, "Only courses whose name contains one of these")

	addSearchFlags(f)
}

// addSearchFlags registers the flags shared by every command that plans.
func addSearchFlags(f *pflag.FlagSet) {
	f.IntP("top", "n", 5, "Number of schedules to print")
	f.Bool("best", false, "Print only the best schedule")
	f.Int("max-size", 0, "Maximum courses per schedule, 0 for no limit")
	f.Int("max-nodes", 0, "Search node budget, 0 keeps the configured value")
	f.Duration("timeout", 0, "Search time budget, 0 keeps the configured value")
	f.Bool("elapsed-gap", false, "Measure back-to-back gaps in real minutes")
	f.Int("bonus", 0, "Score back-to-back schedules with this bonus instead of filtering")
	f.Bool("verify", false, "Re-check every printed schedule against the constraints")
	f.StringP("export", "o", "", "Write the schedules to a .csv, .ics or .pdf file")
	f.String("term-start", "", "First day of classes for .ics export (YYYY-MM-DD)")
}

func constraintsFromFlags(f *pflag.FlagSet) (model.Constraints, error) {
	var c model.Constraints
	var err error

	if c.MaxCredit, err = f.GetInt("max-credit"); err != nil {
		return c, err
	}
	if c.MaxCredit < 0 {
		return c, fmt.Errorf("--max-credit must not be negative, got %d", c.MaxCredit)
	}
	days, _ := f.GetString("days-off")
	if c.ExcludedDays, err = wizard.ParseDays(days); err != nil {
		return c, fmt.Errorf("--days-off: %w", err)
	}
	c.Instructor, _ = f.GetString("instructor")
	tod, _ := f.GetString("time-of-day")
	if c.TimeOfDay, err = model.ParseTimeOfDay(tod); err != nil {
		return c, fmt.Errorf("--time-of-day: %w", err)
	}
	c.BackToBack, _ = f.GetBool("back-to-back")
	c.DesiredCourses, _ = f.GetStringSlice("desired")
	return c, nil
}

// plannerConfig applies the search flags on top of the configured values.
func plannerConfig(f *pflag.FlagSet, pc service.PlannerConfig) (service.PlannerConfig, error) {
	opts := *pc.Options
	if f.Changed("top") {
		opts.TopN, _ = f.GetInt("top")
		if opts.TopN < 1 {
			return pc, fmt.Errorf("--top must be at least 1")
		}
	}
	if best, _ := f.GetBool("best"); best {
		opts.TopN = 1
	}
	if f.Changed("max-size") {
		opts.MaxSize, _ = f.GetInt("max-size")
	}
	if n, _ := f.GetInt("max-nodes"); n > 0 {
		opts.MaxNodes = n
	}
	if d, _ := f.GetDuration("timeout"); d > 0 {
		opts.Timeout = d
	}
	if f.Changed("elapsed-gap") {
		opts.ElapsedGap, _ = f.GetBool("elapsed-gap")
	}
	if f.Changed("bonus") {
		opts.BackToBackBonus, _ = f.GetInt("bonus")
	}
	pc.Options = &opts

	if raw, _ := f.GetString("term-start"); raw != "" {
		start, err := time.ParseInLocation(time.DateOnly, raw, pc.Term.Location)
		if err != nil {
			return pc, fmt.Errorf("--term-start: %w", err)
		}
		pc.Term.Start = start
	}
	return pc, nil
}

func runPlan(cmd *cobra.Command, c model.Constraints) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	base, err := service.NewPlannerConfig(cfg)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	pc, err := plannerConfig(f, base)
	if err != nil {
		return err
	}
	svc := newPlanner(cfg, log, pc)

	var res *model.Result
	var planErr error
	plain, _ := f.GetBool("plain")
	err = spinner.New().
		Title("Searching schedules...").
		Accessible(plain).
		Action(func() {
			res, planErr = svc.Plan(cmd.Context(), c, 0)
		}).
		Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if errors.Is(planErr, scheduler.ErrNoSchedule) {
		fmt.Fprintln(out, tui.Error(notFoundMessage))
		fmt.Fprintln(out, tui.Muted(fmt.Sprintf("%d candidates, %d nodes", res.Candidates, res.Nodes)))
		return planErr
	}
	if planErr != nil {
		return planErr
	}

	printResult(out, res, plain)

	if verify, _ := f.GetBool("verify"); verify {
		if err := verifyResult(out, res, c, pc.Options); err != nil {
			return err
		}
	}
	if path, _ := f.GetString("export"); path != "" {
		if err := export(path, res.Schedules, pc); err != nil {
			return err
		}
		fmt.Fprintln(out, tui.Accent(fmt.Sprintf("Exported %d schedule(s) to %s", len(res.Schedules), path)))
	}
	return nil
}

func printResult(w io.Writer, res *model.Result, plain bool) {
	if !plain {
		fmt.Fprintln(w, tui.RenderResult(res))
		return
	}
	for i, s := range res.Schedules {
		csvio.PrintSchedule(w, i+1, s)
	}
	fmt.Fprintf(w, "%d candidates, %d feasible combinations, %d nodes\n", res.Candidates, res.Feasible, res.Nodes)
	if res.Truncated {
		fmt.Fprintln(w, "search stopped early, results are the best found so far")
	}
}

func verifyResult(w io.Writer, res *model.Result, c model.Constraints, opts *scheduler.Options) error {
	failed := 0
	for i, s := range res.Schedules {
		valid, report := scheduler.Validate(s, c, opts)
		if !valid {
			failed++
			fmt.Fprintf(w, "#%d failed validation:\n%s", i+1, report)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d schedule(s) failed validation", failed)
	}
	fmt.Fprintln(w, tui.Accent("All schedules passed validation"))
	return nil
}
