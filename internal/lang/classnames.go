// Package lang contains small string helpers used when assembling markup.
package lang

import "strings"

// ClassNames joins class fragments into a single class attribute value.
// Empty fragments are omitted and order is preserved.
func ClassNames(classes ...string) string {
	kept := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, " ")
}
