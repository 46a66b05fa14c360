package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timegridhq/timegrid/config"
	"github.com/timegridhq/timegrid/core/timetable"
	"github.com/timegridhq/timegrid/infra/logger"
	"github.com/timegridhq/timegrid/infra/storage"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate stored schedules and report faculty conflicts and quota overflows",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store, err := storage.NewFileStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	schedules, err := store.Load(context.Background())
	if err != nil {
		return err
	}
	planner, err := timetable.NewPlanner(cfg.Planner, schedules, logger.New("check"), nil, nil, nil)
	if err != nil {
		return fmt.Errorf("schedules invalid: %w", err)
	}

	findings := 0
	for _, s := range planner.Schedules() {
		table := timetable.Table(s.Periods)
		for _, slot := range s.TimeSlots {
			covered, err := table.ResolveSpan(slot.Period, slot.Duration, cfg.Planner.AllowBreakSkip)
			if err != nil {
				findings++
				cmd.Printf("%s: slot %s: %v\n", s.Label(), slot.ID, err)
				continue
			}
			for _, fid := range slot.FacultyIDs {
				for _, pid := range covered {
					if c := planner.Conflict(s.ID, slot.Day, pid, fid); c != nil {
						findings++
						cmd.Printf("%s: slot %s: faculty %s also teaches %s (slot %s) on %s period %d\n",
							s.Label(), slot.ID, fid, c.ScheduleLabel, c.SlotID, slot.Day, pid)
					}
				}
			}
		}
		for _, sub := range s.Subjects {
			usage, _, err := planner.Usage(s.ID, sub.ID, "")
			if err != nil {
				return err
			}
			if usage.Theory > sub.TheoryCount {
				findings++
				cmd.Printf("%s: subject %s: %d theory periods placed, quota is %d\n",
					s.Label(), sub.Code, usage.Theory, sub.TheoryCount)
			}
			if usage.Practical > sub.PracticalCount {
				findings++
				cmd.Printf("%s: subject %s: %d practical periods placed, quota is %d\n",
					s.Label(), sub.Code, usage.Practical, sub.PracticalCount)
			}
		}
	}
	if findings > 0 {
		return fmt.Errorf("%d finding(s)", findings)
	}
	cmd.Println("schedules are consistent")
	return nil
}
