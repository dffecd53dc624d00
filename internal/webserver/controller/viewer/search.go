package viewer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/textsearch"
)

type searchResult struct {
	textsearch.Result
	// Highlights carries every snippet split into plain and matching
	// segments, in the same order as Snippets
	Highlights [][]textsearch.Segment `json:"highlights"`
}

// Search looks the query up inside the open document's text, building
// the text index on first use. Results come back ascending by page with
// at most two snippets each, split into segments so the panel can mark
// the matches.
func (v *Controller) Search(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}

	query := c.Query("query")
	exact, _ := strconv.ParseBool(c.Query("exact"))

	results := session.Search(query, exact)
	payload := make([]searchResult, len(results))
	for i, result := range results {
		payload[i] = searchResult{
			Result:     result,
			Highlights: make([][]textsearch.Segment, len(result.Snippets)),
		}
		for j, snippet := range result.Snippets {
			payload[i].Highlights[j] = textsearch.Highlight(snippet, query, exact)
		}
	}

	return c.JSON(fiber.Map{
		"indexed": session.Indexed(),
		"results": payload,
	})
}
