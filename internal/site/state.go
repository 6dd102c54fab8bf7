// Package site builds the shareable surface of the catalog: navigation
// state, links, page metadata and the sitemap.
package site

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the public root of the catalog.
const DefaultBaseURL = "https://axiom.design"

// Query parameter names carrying the navigation state.
const (
	ParamQuery = "q"
	ParamRule  = "rule"
)

// State is the bookmarkable navigation state: the search text and the
// selected rule id. The zero value selects nothing and matches everything.
type State struct {
	Query  string
	RuleID string
}

// ParseState reads a State from "q=...&rule=...", the same with a leading
// "?", or a full URL.
func ParseState(raw string) (State, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return State{}, nil
	}

	rawQuery := strings.TrimPrefix(raw, "?")
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return State{}, fmt.Errorf("parsing state URL: %w", err)
		}
		rawQuery = u.RawQuery
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return State{}, fmt.Errorf("parsing state %q: %w", raw, err)
	}
	return State{
		Query:  values.Get(ParamQuery),
		RuleID: values.Get(ParamRule),
	}, nil
}

// Encode returns the query string for s. Empty fields are omitted, so the
// zero State encodes to "".
func (s State) Encode() string {
	values := url.Values{}
	if s.Query != "" {
		values.Set(ParamQuery, s.Query)
	}
	if s.RuleID != "" {
		values.Set(ParamRule, s.RuleID)
	}
	return values.Encode()
}

// Link returns the catalog URL for s under baseURL.
func Link(baseURL string, s State) string {
	base := strings.TrimRight(baseURL, "/")
	if q := s.Encode(); q != "" {
		return base + "/?" + q
	}
	return base + "/"
}

// RuleURL returns the canonical page URL of a rule.
func RuleURL(baseURL, ruleID string) string {
	return strings.TrimRight(baseURL, "/") + "/rules/" + url.PathEscape(ruleID)
}
