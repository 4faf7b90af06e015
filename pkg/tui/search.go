package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"airbluectl/pkg/airblue"
	"airbluectl/pkg/config"
	"airbluectl/pkg/fare"
	"airbluectl/pkg/render"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunSearchTUI asks for the route and dates, re-prompting on invalid input,
// then searches and prints the cheapest options.
func RunSearchTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the airbluectl fare finder!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	from := cfg.HomeAirport
	to := cfg.DefaultDestination
	depart := now.Format(airblue.DateLayout)
	var ret string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("From").
				Description("Departure city IATA code").
				Placeholder("KHI").
				Value(&from).
				Validate(validateAirport),
			huh.NewInput().
				Title("To").
				Description("Arrival city IATA code").
				Placeholder("ISB").
				Value(&to).
				Validate(validateAirport),
			huh.NewInput().
				Title("Departure date").
				Placeholder("YYYY-MM-DD").
				Value(&depart).
				Validate(func(s string) error { return validateDate(s, now) }),
			huh.NewInput().
				Title("Return date").
				Description("Leave empty for a one-way trip").
				Placeholder("YYYY-MM-DD").
				Value(&ret).
				Validate(func(s string) error { return validateReturn(depart, s, now) }),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	q, err := airblue.ParseQuery(from, to, depart, ret)
	if err != nil {
		return err
	}
	if err := q.Validate(now); err != nil {
		return err
	}

	client := airblue.NewClient()
	var result *airblue.SearchResult
	var searchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching flights %s → %s...", q.From, q.To)).
		Action(func() {
			result, searchErr = airblue.Search(context.Background(), client, q, fare.ExtractOptions{
				Strict:          cfg.Strict,
				NextDayArrivals: cfg.NextDayArrivals,
			})
		}).
		Run()

	if errors.Is(searchErr, airblue.ErrNoFlights) {
		fmt.Println(errorStyle.Render("There are no flights available"))
		return nil
	}
	if searchErr != nil {
		return fmt.Errorf("search failed: %w", searchErr)
	}

	render.Result(os.Stdout, result, render.ResultOptions{Limit: cfg.ResultLimit})
	return nil
}
