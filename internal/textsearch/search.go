package textsearch

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	snippetBefore      = 40
	snippetAfter       = 60
	maxSnippetsPerPage = 2
)

// Result is one page matching a query: up to two preview snippets plus the
// total number of occurrences on that page
type Result struct {
	PageNumber int      `json:"pageNumber"`
	Snippets   []string `json:"snippets"`
	MatchCount int      `json:"matchCount"`
}

// Search finds the pages containing the passed query substring, ordered by
// ascending page number. The search is case-insensitive unless exact is
// set. Results are memoized by (query, exact), so re-running the same
// query is free; any other pair recomputes.
func (i *Index) Search(query string, exact bool) []Result {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.built || query == "" {
		return nil
	}
	if i.memoValid && i.memoQuery == query && i.memoExact == exact {
		return i.memoResults
	}

	results := []Result{}
	for number := 1; number <= len(i.pages); number++ {
		if result, ok := searchPage(i.pages[number], number, query, exact); ok {
			results = append(results, result)
		}
	}

	i.memoQuery = query
	i.memoExact = exact
	i.memoResults = results
	i.memoValid = true
	return results
}

func searchPage(text string, number int, query string, exact bool) (Result, bool) {
	matches := occurrences(text, query, exact)
	if len(matches) == 0 {
		return Result{}, false
	}

	result := Result{
		PageNumber: number,
		MatchCount: len(matches),
	}
	for _, m := range matches {
		if len(result.Snippets) == maxSnippetsPerPage {
			break
		}
		result.Snippets = append(result.Snippets, snippet(text, m))
	}
	return result, true
}

// match is the span of one occurrence, as byte offsets into the text it
// was found in
type match struct {
	start int
	end   int
}

// occurrences returns the span of every non-overlapping occurrence of
// query inside text. Case-insensitive matching lowers the haystack rune
// by rune while keeping a table back to the original offsets: lowering
// can change a rune's encoded length, so offsets found in the lowered
// text cannot index the original one directly.
func occurrences(text, query string, exact bool) []match {
	haystack, needle := text, query
	var origin []int
	if !exact {
		haystack, origin = foldCase(text)
		needle = strings.ToLower(query)
	}
	if needle == "" {
		return nil
	}

	var matches []match
	for from := 0; ; {
		i := strings.Index(haystack[from:], needle)
		if i == -1 {
			return matches
		}
		start, end := from+i, from+i+len(needle)
		if origin != nil {
			matches = append(matches, match{start: origin[start], end: origin[end]})
		} else {
			matches = append(matches, match{start: start, end: end})
		}
		from = end
	}
}

// foldCase lowers text rune by rune, returning the lowered string and a
// table mapping every byte offset in it, final boundary included, to the
// offset of the originating rune in text
func foldCase(text string) (string, []int) {
	var lowered strings.Builder
	lowered.Grow(len(text))
	origin := make([]int, 0, len(text)+1)

	for i, r := range text {
		low := unicode.ToLower(r)
		for n := utf8.RuneLen(low); n > 0; n-- {
			origin = append(origin, i)
		}
		lowered.WriteRune(low)
	}
	origin = append(origin, len(text))
	return lowered.String(), origin
}

// snippet extracts the excerpt spanning from snippetBefore characters ahead
// of the match to snippetAfter characters past its end, marking truncated
// edges with ellipses
func snippet(text string, m match) string {
	start := m.start - snippetBefore
	end := m.end + snippetAfter

	truncatedStart := start > 0
	truncatedEnd := end < len(text)
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	// nudge the window edges onto rune boundaries
	for start < len(text) && !utf8.RuneStart(text[start]) {
		start++
	}
	for end > start && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}

	excerpt := strings.TrimSpace(text[start:end])
	if truncatedStart {
		excerpt = "..." + excerpt
	}
	if truncatedEnd {
		excerpt = excerpt + "..."
	}
	return excerpt
}
