package fare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindPrices(t *testing.T) {
	cases := []struct {
		text     string
		expected []string
	}{
		{text: "PKR 12,500", expected: []string{"PKR 12,500"}},
		{text: "from PKR 9,000 to PKR 1,250,000", expected: []string{"PKR 9,000", "PKR 1,250,000"}},
		{text: "AED 950 AED 950", expected: []string{"AED 950", "AED 950"}},
		{text: "pkr 100 or 12,500", expected: nil},
		{text: "", expected: nil},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, FindPrices(test.text), test.text)
	}
}

func TestFindCabins(t *testing.T) {
	require.Equal(t, []string{"-ES"}, FindCabins("family family-ES"))
	require.Equal(t, []string{"-ED", "-PREM"}, FindCabins("family-ED x-PREM"))
	require.Empty(t, FindCabins("family -E lowercase-es"))
}

func TestFindTimes(t *testing.T) {
	require.Equal(t,
		[]string{"10:00 AM", "1:30 PM"},
		FindTimes("Departs 10:00 AM arrives 1:30 PM"),
	)
	require.Equal(t, []string{"9:05 PM", "9:05 PM"}, FindTimes("9:05 PM\n9:05 PM"))
	require.Empty(t, FindTimes("10:00 and 13:30"))
}
