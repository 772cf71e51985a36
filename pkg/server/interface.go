/*
Package server implements msgpack IPC for a restaurant search session.

The server reads a stream of msgpack maps from stdin and answers each with
exactly one msgpack map on stdout. Requests are processed synchronously, in
order, against a single session, and each state response carries the time
the derivation took.

# IPC

On start the server announces itself:

	{"status": "ready"}

Every request has an id and an op. The query, toggle, facet, select, reset
and state ops answer with the full derived state:

	{"id": "1", "op": "query", "q": "ita"}
	{"id": "1", "q": "ita", "sel": [], "f": "all", "tags": [...],
	 "r": [{"id": "1", "n": "Italian Bistro", ...}],
	 "s": [{"k": "name", "v": "Italian Bistro"}, {"k": "tag", "v": "Italian"}],
	 "e": false, "c": 2, "t": 41}

	{"id": "2", "op": "toggle", "tag": "Downtown"}
	{"id": "3", "op": "facet", "facet": "location"}
	{"id": "4", "op": "select", "kind": "tag", "value": "Italian"}

The home feed is served separately:

	{"id": "5", "op": "feed"}
	{"id": "5", "sections": [{"k": "mustEats", "t": "Must Eats", "r": [...]}], "c": 5}

Bad requests get an error map instead:

	{"id": "6", "err": "unknown op: search", "c": 400}
*/
package server

import (
	"github.com/bastiangx/dinesearch/pkg/catalog"
	"github.com/bastiangx/dinesearch/pkg/feed"
)

// Request is any client message. Only the fields used by Op are read.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Query string `msgpack:"q,omitempty"`
	Tag   string `msgpack:"tag,omitempty"`
	Facet string `msgpack:"facet,omitempty"`
	Kind  string `msgpack:"kind,omitempty"`
	Value string `msgpack:"value,omitempty"`
}

// SuggestionView is the wire form of a suggestion.
type SuggestionView struct {
	Kind  string `msgpack:"k"`
	Value string `msgpack:"v"`
}

// StateResponse is the derived state of the session after a request.
type StateResponse struct {
	ID          string           `msgpack:"id"`
	Query       string           `msgpack:"q"`
	Selected    []string         `msgpack:"sel"`
	Facet       string           `msgpack:"f"`
	Tags        []string         `msgpack:"tags"`
	Results     []catalog.Record `msgpack:"r"`
	Suggestions []SuggestionView `msgpack:"s"`
	Empty       bool             `msgpack:"e"`
	Count       int              `msgpack:"c"`
	TimeTaken   int64            `msgpack:"t"`
}

// FeedResponse carries the home feed carousels.
type FeedResponse struct {
	ID       string         `msgpack:"id"`
	Sections []feed.Section `msgpack:"sections"`
	Count    int            `msgpack:"c"`
}

// StatusResponse answers health checks and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"err"`
	Code  int    `msgpack:"c"`
}
