package view

import (
	"html/template"
	"net/url"
)

// ToQueryString encodes the passed parameters as a URL query string,
// with keys in deterministic order
func ToQueryString(m map[string]string) template.URL {
	if len(m) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range m {
		values.Set(k, v)
	}
	return template.URL(values.Encode())
}
