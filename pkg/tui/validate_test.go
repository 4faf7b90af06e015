package tui

import (
	"testing"
	"time"

	"airbluectl/pkg/config"

	"github.com/stretchr/testify/require"
)

func TestValidateAirport(t *testing.T) {
	require.NoError(t, validateAirport("khi"))
	require.ErrorContains(t, validateAirport("KH"), "not a 3 letter IATA code")
	require.ErrorContains(t, validateAirport("KHJ"), "did you mean KHI (Karachi)?")
	require.EqualError(t, validateAirport("ZZZ"), "ZZZ is not an airblue station")
}

func TestValidateDates(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	require.NoError(t, validateDate("2026-10-16", now))
	require.ErrorContains(t, validateDate("2026-10-15", now), "in the past")
	require.ErrorContains(t, validateDate("16.10.2026", now), "YYYY-MM-DD")

	require.NoError(t, validateReturn("2026-10-20", "", now))
	require.NoError(t, validateReturn("2026-10-20", "2026-10-20", now))
	require.ErrorContains(t, validateReturn("2026-10-20", "2026-10-19", now), "before the departure date")
	require.ErrorContains(t, validateReturn("2026-10-20", "2026-10-01", now), "in the past")
}

func TestDescribeConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.HomeAirport = "LHE"

	out := describeConfig(&cfg)
	require.Contains(t, out, "Home Airport: LHE\n")
	require.Contains(t, out, "Default Destination: Not set\n")
	require.Contains(t, out, "Result Limit: 10\n")
}
