package summary

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Service retrieves AI-generated document summaries from an external
// HTTP endpoint. The endpoint receives the document title and authors
// and answers with a JSON body holding the summary text.
type Service struct {
	endpoint string
	client   *http.Client
}

type response struct {
	Summary string `json:"summary"`
}

func NewService(endpoint string, client *http.Client) Service {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return Service{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   client,
	}
}

func (s Service) Summary(title string, authors []string) (string, error) {
	if s.endpoint == "" {
		return "", fmt.Errorf("no summaries endpoint configured")
	}

	params := url.Values{}
	params.Set("title", title)
	params.Set("authors", strings.Join(authors, ", "))

	res, err := s.client.Get(fmt.Sprintf("%s/v1/summaries?%s", s.endpoint, params.Encode()))
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summaries endpoint answered with status %d", res.StatusCode)
	}

	var parsed response
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.Summary == "" {
		return "", fmt.Errorf("summaries endpoint answered with an empty summary")
	}

	return parsed.Summary, nil
}
