package economy

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// csvHeader is the fixed first line of the serialized form.
const csvHeader = "Item,Value,Pinned"

// EconomyToCSV serializes a value map and its pinned set as CSV text:
// the header line "Item,Value,Pinned", then one "<name>,<value>,<bool>"
// row per item in lexicographic order. Values use Go's shortest exact
// formatting (no fixed decimal count); booleans are lowercase.
//
// Fields are joined with raw commas, so item names containing commas do
// not survive a round trip.
func EconomyToCSV(econ Values, pinned map[string]bool) string {
	items := make([]string, 0, len(econ))
	for item := range econ {
		items = append(items, item)
	}
	sort.Strings(items)

	rows := make([]string, 0, len(items)+1)
	rows = append(rows, csvHeader)
	for _, item := range items {
		rows = append(rows,
			item+","+strconv.FormatFloat(econ[item], 'g', -1, 64)+","+strconv.FormatBool(pinned[item]))
	}

	return strings.Join(rows, "\n")
}

// EconomyFromCSV parses text produced by EconomyToCSV back into a value
// map and pinned set. The first line is skipped as the header. Rows with
// fewer than three comma-separated fields are skipped silently; a row
// whose value field does not parse as a float yields ErrBadCSV.
// The pinned flag is the third field comparing case-insensitively equal
// to "true".
func EconomyFromCSV(text string) (Values, map[string]bool, error) {
	econ := make(Values)
	pinned := make(map[string]bool)

	lines := strings.Split(text, "\n")
	for _, line := range lines[1:] {
		fields := strings.Split(strings.TrimRight(line, "\r"), ",")
		if len(fields) < 3 {
			continue
		}
		item := fields[0]
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: item %q value %q", ErrBadCSV, item, fields[1])
		}
		econ[item] = value
		if strings.EqualFold(fields[2], "true") {
			pinned[item] = true
		}
	}

	return econ, pinned, nil
}
