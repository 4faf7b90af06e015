package cmd

import (
	"fmt"
	"strings"

	"airbluectl/pkg/airblue"
	"airbluectl/pkg/config"
	"airbluectl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage airbluectl configuration",
	Long:  "View or edit your local configuration settings (home airport, result limit, row handling).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.NFlag() == 0 {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		if flags.Changed("set-home") {
			home, _ := flags.GetString("set-home")
			if cfg.HomeAirport, err = airportFlag(home); err != nil {
				return err
			}
		}
		if flags.Changed("set-destination") {
			dest, _ := flags.GetString("set-destination")
			if cfg.DefaultDestination, err = airportFlag(dest); err != nil {
				return err
			}
		}
		if flags.Changed("set-limit") {
			limit, _ := flags.GetInt("set-limit")
			if limit < 1 {
				return fmt.Errorf("result limit must be positive, got %d", limit)
			}
			cfg.ResultLimit = limit
		}
		if flags.Changed("set-timezone") {
			cfg.Timezone, _ = flags.GetString("set-timezone")
		}
		if flags.Changed("set-strict") {
			cfg.Strict, _ = flags.GetBool("set-strict")
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Println("✅ Configuration saved.")
		return nil
	},
}

func airportFlag(value string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(value))
	if err := airblue.ValidateIATA(code); err != nil {
		return "", err
	}
	return code, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-home", "s", "", "Set your home airport (IATA code)")
	configCmd.Flags().String("set-destination", "", "Set your usual destination (IATA code)")
	configCmd.Flags().Int("set-limit", 0, "Set how many options a search shows")
	configCmd.Flags().String("set-timezone", "", "Set the timezone used for calendar exports (e.g. Asia/Karachi)")
	configCmd.Flags().Bool("set-strict", false, "Abort searches on unreadable result rows")
}
