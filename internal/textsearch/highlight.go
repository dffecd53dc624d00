package textsearch

// Segment is a piece of a snippet, either plain context or a query match
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Highlight splits a snippet into segments so every occurrence of the
// query can be visually highlighted, following the same case sensitivity
// rule used for searching
func Highlight(snippet, query string, exact bool) []Segment {
	if query == "" || snippet == "" {
		return []Segment{{Text: snippet}}
	}

	var segments []Segment
	last := 0
	for _, m := range occurrences(snippet, query, exact) {
		if m.start > last {
			segments = append(segments, Segment{Text: snippet[last:m.start]})
		}
		segments = append(segments, Segment{Text: snippet[m.start:m.end], Match: true})
		last = m.end
	}
	if last < len(snippet) {
		segments = append(segments, Segment{Text: snippet[last:]})
	}
	return segments
}
