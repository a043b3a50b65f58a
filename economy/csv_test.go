package economy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satisgraphery/valuate/economy"
)

// TestEconomyToCSV_ConcreteFormat pins down the exact wire format:
// fixed header, lexicographic items, shortest float formatting,
// lowercase booleans.
func TestEconomyToCSV_ConcreteFormat(t *testing.T) {
	text := economy.EconomyToCSV(
		economy.Values{"A": 1.0, "B": 2.5},
		map[string]bool{"A": true},
	)

	assert.Equal(t, "Item,Value,Pinned\nA,1,true\nB,2.5,false", text)
}

// TestEconomyCSV_RoundTrip verifies that encode→decode reproduces the
// values and the pinned set.
func TestEconomyCSV_RoundTrip(t *testing.T) {
	econ := economy.Values{
		"Iron Ore":   1.0,
		"Iron Ingot": 1.73205081,
		"Iron Plate": 2.59807621,
	}
	pinned := map[string]bool{"Iron Ore": true}

	decoded, decodedPinned, err := economy.EconomyFromCSV(economy.EconomyToCSV(econ, pinned))
	require.NoError(t, err)

	assert.Equal(t, econ, decoded)
	assert.Equal(t, pinned, decodedPinned)
}

// TestEconomyFromCSV_SkipsShortRows verifies the lenient decoder: rows
// with fewer than three comma-separated fields are ignored, not fatal.
func TestEconomyFromCSV_SkipsShortRows(t *testing.T) {
	text := strings.Join([]string{
		"Item,Value,Pinned",
		"",
		"Iron Ore,1,true",
		"just-a-name",
		"NoFlag,2",
		"Copper Ore,2.5,false",
	}, "\n")

	econ, pinned, err := economy.EconomyFromCSV(text)
	require.NoError(t, err)

	assert.Equal(t, economy.Values{"Iron Ore": 1, "Copper Ore": 2.5}, econ)
	assert.Equal(t, map[string]bool{"Iron Ore": true}, pinned)
}

// TestEconomyFromCSV_BadValue verifies that an unparseable value field is
// an error rather than a silent skip.
func TestEconomyFromCSV_BadValue(t *testing.T) {
	_, _, err := economy.EconomyFromCSV("Item,Value,Pinned\nIron Ore,lots,true")
	assert.ErrorIs(t, err, economy.ErrBadCSV)
}

// TestEconomyFromCSV_CaseInsensitivePinned verifies that the pinned flag
// compares case-insensitively and anything else reads as unpinned.
func TestEconomyFromCSV_CaseInsensitivePinned(t *testing.T) {
	text := strings.Join([]string{
		"Item,Value,Pinned",
		"A,1,TRUE",
		"B,2,True",
		"C,3,false",
		"D,4,yes",
	}, "\n")

	_, pinned, err := economy.EconomyFromCSV(text)
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{"A": true, "B": true}, pinned)
}

// TestEconomyCSV_TrailingNewlineTolerated verifies that text saved with a
// final newline (as files usually are) decodes identically.
func TestEconomyCSV_TrailingNewlineTolerated(t *testing.T) {
	econ, pinned, err := economy.EconomyFromCSV("Item,Value,Pinned\nA,1,true\n")
	require.NoError(t, err)

	assert.Equal(t, economy.Values{"A": 1}, econ)
	assert.Equal(t, map[string]bool{"A": true}, pinned)
}
