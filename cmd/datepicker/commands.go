package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/username/datepicker/internal/calendar"
	"github.com/username/datepicker/internal/picker"
	"github.com/username/datepicker/internal/tui"
	"go.uber.org/zap"
)

func pickCmd() *cobra.Command {
	var value string
	var id string
	var label string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open an interactive date field and print the committed date",
		RunE: func(cmd *cobra.Command, args []string) error {
			spillover, err := picker.ParseSpilloverPolicy(cfg.Picker.Spillover)
			if err != nil {
				return err
			}
			if id == "" {
				id = cfg.Picker.ID
			}

			model := tui.New(tui.Options{
				ID:           id,
				Label:        label,
				InitialValue: value,
				Spillover:    spillover,
				YearEdge:     cfg.Picker.YearEdge,
				Holidays:     loadHolidays(cfg.Picker.HolidaysFile),
				Logger:       logger,
			})
			defer model.Close()

			logger.Info("Starting picker",
				zap.String("id", id),
				zap.String("initial_value", value),
				zap.String("spillover", spillover.String()))

			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("failed to run picker: %w", err)
			}

			logger.Info("Picker finished",
				zap.String("value", model.Value()),
				zap.Int("commits", model.Commits()))
			fmt.Fprintln(out, model.Value())
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Initial value (YYYY-MM-DD), today when empty")
	cmd.Flags().StringVar(&id, "id", "", "Field identifier (defaults to picker.id)")
	cmd.Flags().StringVar(&label, "label", "Date", "Field label")

	return cmd
}

func gridCmd() *cobra.Command {
	var month int
	var year int

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the 6x7 day grid of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := time.Now()
			if month == 0 {
				month = int(today.Month())
			}
			if year == 0 {
				year = today.Year()
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", month)
			}

			logger.Debug("Rendering grid", zap.Int("year", year), zap.Int("month", month))

			grid := calendar.BuildGrid(time.Month(month), year)
			fmt.Fprintln(out, tui.RenderGrid(grid, time.Month(month), year, loadHolidays(cfg.Picker.HolidaysFile)))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (defaults to the current month)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (defaults to the current year)")

	return cmd
}

func yearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "Print the selectable year window",
		RunE: func(cmd *cobra.Command, args []string) error {
			window := picker.NewYearWindow(time.Now(), cfg.Picker.YearEdge)
			fmt.Fprintf(out, "first: %d\nlast:  %d\ncount: %d\n", window.First, window.Last, window.Len())
			return nil
		},
	}
}

// loadHolidays returns nil when no file is configured or it cannot be read;
// day marks are decoration only.
func loadHolidays(path string) *calendar.HolidayFile {
	if path == "" {
		return nil
	}
	hf := calendar.NewHolidayFile(path, logger)
	if err := hf.Load(); err != nil {
		logger.Warn("Failed to load holiday file, continuing without day marks",
			zap.String("file", path),
			zap.Error(err))
		return nil
	}
	return hf
}
