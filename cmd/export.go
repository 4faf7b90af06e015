package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"airbluectl/pkg/airblue"
	"airbluectl/pkg/config"
	"airbluectl/pkg/exporter"
	"airbluectl/pkg/render"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export FROM TO DEPART [RETURN]",
	Short: "Export the cheapest itinerary to an ICS file",
	Long:  `Search a route and write the cheapest itinerary as calendar events, one per leg, without using the interactive TUI.`,
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone %q in config: %w", cfg.Timezone, err)
		}

		q, err := queryFromArgs(args)
		if err != nil {
			return err
		}

		result, err := runSearch(cmd, cfg, q, true)
		if errors.Is(err, airblue.ErrNoFlights) {
			return fmt.Errorf("no flights found for %s → %s", q.From, q.To)
		}
		if err != nil {
			return err
		}
		if len(result.Itineraries) == 0 {
			return fmt.Errorf("no bookable offers found for %s → %s", q.From, q.To)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		cheapest := result.Itineraries[0]
		err = exporter.GenerateICS(cheapest, q, loc, file)
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d flights (%s) to %s\n",
			len(cheapest.Legs), render.Amount(cheapest.Currency(), cheapest.Price()), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "itinerary.ics", "Output file path")
	exportCmd.Flags().Bool("strict", false, "Fail when a result row can't be read instead of skipping it")
	exportCmd.Flags().Bool("next-day", false, "Treat arrivals earlier than departures as next-day arrivals")
}
