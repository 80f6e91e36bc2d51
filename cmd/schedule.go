package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/partyplan/internal/cli"
	"github.com/theirongolddev/partyplan/internal/model"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show or edit the 60-minute schedule",
	RunE:  runScheduleShow,
}

var scheduleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every minute of the schedule",
	Args:  cobra.NoArgs,
	RunE:  runScheduleShow,
}

var scheduleSetCmd = &cobra.Command{
	Use:   "set <minute> <text...>",
	Short: "Set the activity for one minute",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runScheduleSet,
}

var scheduleClearCmd = &cobra.Command{
	Use:   "clear <minute>",
	Short: "Clear the activity for one minute",
	Args:  cobra.ExactArgs(1),
	RunE:  runScheduleClear,
}

func init() {
	scheduleCmd.AddCommand(scheduleShowCmd, scheduleSetCmd, scheduleClearCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runScheduleShow(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	slots := model.NormalizeSchedule(s.plan.Schedule)
	rows := make([][]string, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, []string{cli.FormatMinute(slot.Minute), slot.Text})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Schedule (60 minutes)",
		Headers:  []string{"Min", "Activity"},
		Rows:     rows,
		TextCols: 2,
	}))
	return nil
}

func runScheduleSet(_ *cobra.Command, args []string) error {
	return setSlot(args[0], strings.Join(args[1:], " "))
}

func runScheduleClear(_ *cobra.Command, args []string) error {
	return setSlot(args[0], "")
}

func setSlot(minuteArg, text string) error {
	minute, err := strconv.Atoi(minuteArg)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", model.ErrBadMinute, minuteArg)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.plan.SetSlot(minute, text); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("  %s: %s\n", cli.FormatMinute(minute), text)
	return nil
}
