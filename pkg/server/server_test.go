package server

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bastiangx/dinesearch/pkg/catalog"
	"github.com/bastiangx/dinesearch/pkg/config"
	"github.com/bastiangx/dinesearch/pkg/feed"
	"github.com/bastiangx/dinesearch/pkg/search"
	"github.com/bastiangx/dinesearch/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// run feeds msgs to a fresh server and returns a decoder over its output,
// positioned after the ready message.
func run(t *testing.T, msgs ...any) *msgpack.Decoder {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, m := range msgs {
		require.NoError(t, enc.Encode(m))
	}

	var out bytes.Buffer
	sess := session.New(search.NewEngine(catalog.Seed()))
	sections := feed.Build(catalog.FeedSeed(), feed.DefaultOrder...)
	srv := NewServer(sess, sections, config.DefaultConfig(), &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	return dec
}

func decodeState(t *testing.T, dec *msgpack.Decoder) StateResponse {
	t.Helper()
	var resp StateResponse
	require.NoError(t, dec.Decode(&resp))
	return resp
}

func decodeError(t *testing.T, dec *msgpack.Decoder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	return resp
}

func requireDrained(t *testing.T, dec *msgpack.Decoder) {
	t.Helper()
	var extra map[string]any
	err := dec.Decode(&extra)
	require.True(t, errors.Is(err, io.EOF), "unexpected trailing output: %v %v", extra, err)
}

func TestServerSearchFlow(t *testing.T) {
	dec := run(t,
		Request{ID: "1", Op: "state"},
		Request{ID: "2", Op: "query", Query: "it"},
		Request{ID: "3", Op: "select", Kind: "tag", Value: "Italian"},
		Request{ID: "4", Op: "toggle", Tag: "Uptown"},
		Request{ID: "5", Op: "facet", Facet: "location"},
		Request{ID: "6", Op: "query", Query: "zzz"},
		Request{ID: "7", Op: "reset"},
	)

	initial := decodeState(t, dec)
	assert.Equal(t, "1", initial.ID)
	assert.Equal(t, 6, initial.Count)
	assert.Equal(t, "all", initial.Facet)
	assert.Empty(t, initial.Suggestions)

	typed := decodeState(t, dec)
	assert.Equal(t, "it", typed.Query)
	assert.Equal(t, []SuggestionView{{Kind: "name", Value: "Italian Bistro"}, {Kind: "tag", Value: "Italian"}}, typed.Suggestions)

	picked := decodeState(t, dec)
	assert.Equal(t, "", picked.Query)
	assert.Equal(t, []string{"Italian"}, picked.Selected)
	assert.Empty(t, picked.Suggestions)
	assert.Equal(t, 2, picked.Count)

	widened := decodeState(t, dec)
	assert.Equal(t, []string{"Italian", "Uptown"}, widened.Selected)
	assert.Equal(t, 3, widened.Count)

	located := decodeState(t, dec)
	assert.Equal(t, "location", located.Facet)
	assert.Equal(t, []string{"Downtown", "Midtown", "Uptown", "Westside", "Eastside"}, located.Tags)
	assert.Equal(t, 3, located.Count)

	empty := decodeState(t, dec)
	assert.True(t, empty.Empty)
	assert.Equal(t, 0, empty.Count)

	reset := decodeState(t, dec)
	assert.Equal(t, 6, reset.Count)
	assert.Empty(t, reset.Selected)
	assert.Equal(t, "all", reset.Facet)

	requireDrained(t, dec)
}

func TestServerResultsCarryRecords(t *testing.T) {
	dec := run(t, Request{ID: "1", Op: "query", Query: "taco"})
	resp := decodeState(t, dec)
	require.Len(t, resp.Results, 1)
	r := resp.Results[0]
	assert.Equal(t, "4", r.ID)
	assert.Equal(t, "Taco Fiesta", r.Name)
	assert.Equal(t, []string{"Mexican", "Tacos", "Street Food"}, r.Tags)
	assert.Equal(t, "Downtown", r.Location)
}

func TestServerBadRequests(t *testing.T) {
	dec := run(t,
		Request{ID: "1", Op: "search"},
		Request{ID: "2", Op: "facet", Facet: "price"},
		Request{ID: "3", Op: "select", Kind: "cuisine", Value: "x"},
		Request{ID: "4", Op: "toggle"},
		Request{ID: "5", Op: "query", Query: strings.Repeat("a", 61)},
		Request{ID: "6", Op: "select", Kind: "name", Value: strings.Repeat("a", 500)},
		Request{ID: "7", Op: "select", Kind: "tag"},
		42,
		Request{ID: "8", Op: "health"},
		Request{ID: "9", Op: "state"},
	)

	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", ""} {
		resp := decodeError(t, dec)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, 400, resp.Code)
		assert.NotEmpty(t, resp.Error)
	}

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, StatusResponse{ID: "8", Status: "ok"}, health)

	state := decodeState(t, dec)
	assert.Equal(t, "", state.Query)
	assert.Empty(t, state.Selected)
	assert.Equal(t, catalog.Seed().Len(), state.Count)
	requireDrained(t, dec)
}

func TestServerFeed(t *testing.T) {
	dec := run(t, Request{ID: "f", Op: "feed"})

	var resp FeedResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "f", resp.ID)
	require.Equal(t, 5, resp.Count)
	assert.Equal(t, "Must Eats", resp.Sections[0].Title)
	assert.Equal(t, "The Golden Fork", resp.Sections[0].Records[0].Name)
	assert.Equal(t, "50% OFF", resp.Sections[1].Records[0].Deal)
}

func TestServerTruncatedInput(t *testing.T) {
	full, err := msgpack.Marshal(Request{ID: "1", Op: "state"})
	require.NoError(t, err)

	var out bytes.Buffer
	srv := NewServer(session.New(search.NewEngine(catalog.Seed())), nil, nil, bytes.NewReader(full[:len(full)-2]), &out)
	assert.Error(t, srv.Start())
}
