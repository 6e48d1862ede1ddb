package dispatch

import (
	"regexp"
	"strings"
)

var reCountWord = regexp.MustCompile(`(?i)\b(two|2|three|3|multiple|several)\b`)

// ExtractCount returns the multi-count value implied by a message's count
// keyword (two/2 → 2, three/3 → 3, multiple/several → 3), or 0 if no count
// keyword is present.
func ExtractCount(message string) int {
	m := strings.ToLower(reCountWord.FindString(message))
	switch m {
	case "":
		return 0
	case "two", "2":
		return 2
	case "three", "3":
		return 3
	default: // multiple, several
		return 3
	}
}

// KindGroup pairs a catalog key with the keyword predicate that names it
// explicitly in a request.
type KindGroup struct {
	Key     string
	Pattern *regexp.Regexp
}

// SelectKinds implements the shared kind-selection algorithm used by both
// the table emitter and the chart emitter:
//
//  1. collect every kind named explicitly in the message, in groups' order;
//  2. if no count keyword is present, return just the named kinds (or the
//     first default-order kind if none were named);
//  3. if a count is present and only one kind was named, repeat that one
//     kind to reach the count (same-type duplication);
//  4. if a count is present and no kind was named, fill from the default
//     order;
//  5. if a count is present and multiple kinds were named, keep them and
//     fill any remainder from the default order.
//
// The result is never longer than count when count > 0.
func SelectKinds(message string, count int, groups []KindGroup, defaultOrder []string) []string {
	named := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.Pattern.MatchString(message) {
			named = append(named, g.Key)
		}
	}

	if count == 0 {
		if len(named) == 0 {
			return []string{defaultOrder[0]}
		}
		return named
	}

	if len(named) == 1 {
		out := make([]string, count)
		for i := range out {
			out[i] = named[0]
		}
		return out
	}

	out := append([]string{}, named...)
	for _, k := range defaultOrder {
		if len(out) >= count {
			break
		}
		if !contains(out, k) {
			out = append(out, k)
		}
	}
	if len(out) > count {
		out = out[:count]
	}
	return out
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
