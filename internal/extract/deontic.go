package extract

import "strings"

// NoDeontic is the tag of a sentence without any obligation marker.
const NoDeontic = "none"

// DeonticTag lists the markers contained in s, in marker order, joined by
// " | ". Matching is by substring, so "shall not " also reports "shall ".
func DeonticTag(s string, markers []string) string {
	s = strings.Join(strings.Fields(s), " ")
	var found []string
	for _, m := range markers {
		if strings.Contains(s, m) {
			found = append(found, m)
		}
	}
	if len(found) == 0 {
		return NoDeontic
	}
	return strings.Join(found, " | ")
}
