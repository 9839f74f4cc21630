package name

import (
	"sort"
	"strings"
	"sync"
)

var (
	reverseOnce sync.Once
	reverse     map[string]string
)

// ToHex looks up a CSS color keyword (case-insensitive) and returns its
// canonical lowercase "#rrggbb" value.
func ToHex(keyword string) (string, bool) {
	hex, ok := table[strings.ToLower(keyword)]
	return hex, ok
}

// FromHex returns the CSS keyword for a canonical lowercase hex value.
// The reverse table is derived from the forward table on first use and
// cached for the life of the process.
func FromHex(hex string) (string, bool) {
	reverseOnce.Do(buildReverse)
	keyword, ok := reverse[strings.ToLower(hex)]
	return keyword, ok
}

// Len reports the number of keywords in the forward table.
func Len() int {
	return len(table)
}

// buildReverse inverts the forward table. Several keywords share a hex
// value (gray/grey and friends); iterating keywords in sorted order and
// keeping the first writer makes the winner deterministic across builds.
func buildReverse() {
	keywords := make([]string, 0, len(table))
	for kw := range table {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	reverse = make(map[string]string, len(table))
	for _, kw := range keywords {
		hex := table[kw]
		if _, taken := reverse[hex]; !taken {
			reverse[hex] = kw
		}
	}
}
