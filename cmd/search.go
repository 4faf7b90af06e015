package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"airbluectl/pkg/airblue"
	"airbluectl/pkg/config"
	"airbluectl/pkg/fare"
	"airbluectl/pkg/render"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search FROM TO DEPART [RETURN]",
	Short: "Find the cheapest fares for a route",
	Long: `Search airblue for flights from FROM to TO (IATA codes) on DEPART (YYYY-MM-DD).
With a RETURN date, all outbound/return combinations are ranked by total price.`,
	Example: `  airbluectl search KHI ISB 2026-11-10
  airbluectl search KHI DXB 2026-11-10 2026-11-20 --limit 5`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		schedule, _ := cmd.Flags().GetBool("schedule")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		q, err := queryFromArgs(args)
		if err != nil {
			return err
		}

		result, err := runSearch(cmd, cfg, q, !asJSON)
		if errors.Is(err, airblue.ErrNoFlights) {
			fmt.Println(err)
			return nil
		}
		if err != nil {
			return err
		}

		if asJSON {
			return writeJSON(result)
		}

		limit := cfg.ResultLimit
		if cmd.Flags().Changed("limit") {
			limit, _ = cmd.Flags().GetInt("limit")
		}
		render.Result(os.Stdout, result, render.ResultOptions{Limit: limit, Schedule: schedule})
		return nil
	},
}

// queryFromArgs parses and validates FROM TO DEPART [RETURN].
func queryFromArgs(args []string) (airblue.Query, error) {
	ret := ""
	if len(args) == 4 {
		ret = args[3]
	}

	q, err := airblue.ParseQuery(args[0], args[1], args[2], ret)
	if err != nil {
		return q, err
	}
	if err := q.Validate(time.Now()); err != nil {
		return q, err
	}

	for _, code := range []string{q.From, q.To} {
		if airblue.KnownStation(code) {
			continue
		}
		if suggestion, ok := airblue.SuggestStation(code); ok {
			render.Warn(os.Stderr, fmt.Sprintf("%s is not a known airblue station, did you mean %s?", code, suggestion))
		}
	}
	return q, nil
}

// extractOptions merges the saved row handling settings with command flags.
func extractOptions(cmd *cobra.Command, cfg *config.AppConfig) fare.ExtractOptions {
	opts := fare.ExtractOptions{Strict: cfg.Strict, NextDayArrivals: cfg.NextDayArrivals}
	if cmd.Flags().Changed("strict") {
		opts.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flags().Changed("next-day") {
		opts.NextDayArrivals, _ = cmd.Flags().GetBool("next-day")
	}
	return opts
}

func runSearch(cmd *cobra.Command, cfg *config.AppConfig, q airblue.Query, showSpinner bool) (*airblue.SearchResult, error) {
	client := airblue.NewClient()
	opts := extractOptions(cmd, cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var result *airblue.SearchResult
	var err error
	search := func() {
		result, err = airblue.Search(ctx, client, q, opts)
	}

	if showSpinner {
		_ = spinner.New().
			Title(fmt.Sprintf("Searching flights %s → %s...", q.From, q.To)).
			Action(search).
			Run()
	} else {
		search()
	}

	if err != nil && !errors.Is(err, airblue.ErrNoFlights) {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return result, err
}

type jsonItinerary struct {
	Price    int          `json:"price"`
	Currency string       `json:"currency,omitempty"`
	Legs     []fare.Offer `json:"legs"`
}

type jsonResult struct {
	From              string          `json:"from"`
	To                string          `json:"to"`
	Depart            string          `json:"depart"`
	Return            string          `json:"return,omitempty"`
	ReturnUnavailable bool            `json:"return_unavailable,omitempty"`
	SkippedRows       int             `json:"skipped_rows"`
	Itineraries       []jsonItinerary `json:"itineraries"`
}

func writeJSON(result *airblue.SearchResult) error {
	out := jsonResult{
		From:              result.Query.From,
		To:                result.Query.To,
		Depart:            result.Query.Depart.Format(airblue.DateLayout),
		ReturnUnavailable: result.ReturnUnavailable,
		SkippedRows:       len(result.Skipped),
		Itineraries:       make([]jsonItinerary, 0, len(result.Itineraries)),
	}
	if result.Query.Return != nil {
		out.Return = result.Query.Return.Format(airblue.DateLayout)
	}
	for _, it := range result.Itineraries {
		out.Itineraries = append(out.Itineraries, jsonItinerary{
			Price:    it.Price(),
			Currency: it.Currency(),
			Legs:     it.Legs,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("json", false, "Print the ranked itineraries as JSON")
	searchCmd.Flags().IntP("limit", "n", 10, "Number of options to show (defaults to the saved result limit)")
	searchCmd.Flags().Bool("schedule", false, "List every flight with its open cabins instead of ranked fares")
	searchCmd.Flags().Bool("strict", false, "Fail when a result row can't be read instead of skipping it")
	searchCmd.Flags().Bool("next-day", false, "Treat arrivals earlier than departures as next-day arrivals")
}
