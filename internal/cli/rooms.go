package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emberwood/stay/internal/app"
	"github.com/emberwood/stay/internal/config"
	"github.com/emberwood/stay/internal/logger"
)

func newRoomsCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List rooms available for a date range (defaults to tomorrow plus three nights)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			l := logger.New(logger.Config{Level: "error", File: ""})

			manager, closeStore, err := app.BuildManager(cmd.Context(), l, cfg)
			if err != nil {
				return fmt.Errorf("build booking manager: %w", err)
			}
			defer closeStore()

			window, err := browseWindow(from, to)
			if err != nil {
				return err
			}

			rooms := manager.AvailableRooms(window[0], window[1])

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"Rooms available %v to %v:\n",
				window[0].Format(time.DateOnly),
				window[1].Format(time.DateOnly),
			)

			for _, room := range rooms {
				fmt.Fprintf(
					cmd.OutOrStdout(),
					"  %-4s %-22s %-10s %7.0f/night  sleeps %d\n",
					room.ID,
					room.Name,
					room.Type,
					room.Price,
					room.Capacity,
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "check-out date (YYYY-MM-DD)")

	return cmd
}

// browseWindow defaults to the same window the booking form opens with:
// check-in tomorrow, check-out three days later.
func browseWindow(from, to string) ([2]time.Time, error) {
	now := time.Now().UTC().Truncate(24 * time.Hour) //nolint:gomnd

	window := [2]time.Time{
		now.AddDate(0, 0, 1),
		now.AddDate(0, 0, 4), //nolint:gomnd
	}

	if from != "" {
		t, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return window, fmt.Errorf("parse --from: %w", err)
		}

		window[0] = t
	}

	if to != "" {
		t, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return window, fmt.Errorf("parse --to: %w", err)
		}

		window[1] = t
	}

	if !window[0].Before(window[1]) {
		return window, fmt.Errorf("--from %v must be before --to %v", window[0], window[1])
	}

	return window, nil
}
