package tui

import (
	"fmt"
	"strconv"
	"strings"

	"airbluectl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Home Airport", "home"),
						huh.NewOption("Set Default Destination", "destination"),
						huh.NewOption("Set Result Limit", "limit"),
						huh.NewOption("Set Unreadable Row Handling", "policy"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "home":
			err = runSetAirportTUI(cfg, "Enter your home airport", &cfg.HomeAirport)
		case "destination":
			err = runSetAirportTUI(cfg, "Enter your usual destination", &cfg.DefaultDestination)
		case "limit":
			err = runSetLimitTUI(cfg)
		case "policy":
			err = runSetPolicyTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.airbluectl.json) ---"))
			fmt.Print(describeConfig(cfg))
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func describeConfig(cfg *config.AppConfig) string {
	var b strings.Builder
	orNotSet := func(s string) string {
		if s == "" {
			return "Not set"
		}
		return s
	}
	fmt.Fprintf(&b, "Home Airport: %s\n", orNotSet(cfg.HomeAirport))
	fmt.Fprintf(&b, "Default Destination: %s\n", orNotSet(cfg.DefaultDestination))
	fmt.Fprintf(&b, "Timezone: %s\n", cfg.Timezone)
	fmt.Fprintf(&b, "Result Limit: %d\n", cfg.ResultLimit)
	fmt.Fprintf(&b, "Strict Row Handling: %t\n", cfg.Strict)
	fmt.Fprintf(&b, "Next-Day Arrivals: %t\n", cfg.NextDayArrivals)
	fmt.Fprintf(&b, "Accent Color: %s\n", cfg.AccentColor)
	return b.String()
}

func runSetAirportTUI(cfg *config.AppConfig, title string, target *string) error {
	input := *target

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("3 letter IATA code, e.g. KHI for Karachi.").
				Value(&input).
				Validate(validateAirport),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	*target = strings.ToUpper(strings.TrimSpace(input))
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved airport: %s\n", *target)))
	return nil
}

func runSetLimitTUI(cfg *config.AppConfig) error {
	input := strconv.Itoa(cfg.ResultLimit)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many options should a search show?").
				Value(&input).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.ResultLimit, _ = strconv.Atoi(strings.TrimSpace(input))
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Searches will show up to %d options.\n", cfg.ResultLimit)))
	return nil
}

func runSetPolicyTUI(cfg *config.AppConfig) error {
	strict := cfg.Strict
	nextDay := cfg.NextDayArrivals

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Abort a search when a result row can't be read?").
				Description("Otherwise unreadable rows are skipped and counted.").
				Value(&strict),
			huh.NewConfirm().
				Title("Treat arrivals earlier than departures as next-day arrivals?").
				Value(&nextDay),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Strict = strict
	cfg.NextDayArrivals = nextDay
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Row handling saved.\n"))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for airbluectl").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Sky Blue", colorBlock("33")), "33"),
					huh.NewOption(fmt.Sprintf("%s Sunset Orange", colorBlock("208")), "208"),
					huh.NewOption(fmt.Sprintf("%s Ocean Teal", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
