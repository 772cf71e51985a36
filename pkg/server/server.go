package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/dinesearch/internal/logger"
	"github.com/bastiangx/dinesearch/pkg/config"
	"github.com/bastiangx/dinesearch/pkg/feed"
	"github.com/bastiangx/dinesearch/pkg/index"
	"github.com/bastiangx/dinesearch/pkg/search"
	"github.com/bastiangx/dinesearch/pkg/session"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for one search session.
type Server struct {
	session  *session.Session
	sections []feed.Section
	config   *config.Config

	decoder *msgpack.Decoder
	writer  *bufio.Writer
	encoder *msgpack.Encoder
	log     *log.Logger

	requestCount int
}

// NewServer creates a server reading requests from r and writing responses
// to w. sections is the home feed served by the feed op.
func NewServer(sess *session.Session, sections []feed.Section, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		session:  sess,
		sections: sections,
		config:   cfg,
		decoder:  msgpack.NewDecoder(bufio.NewReader(r)),
		writer:   bw,
		encoder:  msgpack.NewEncoder(bw),
		log:      logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return err
		}
		s.requestCount++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.log.Errorf("Unmarshaling request: %v", err)
			if err := s.sendError("", "invalid msgpack request", 400); err != nil {
				return err
			}
			continue
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on op. Only write failures are returned, request
// problems become error responses.
func (s *Server) handleRequest(req Request) error {
	s.log.Debug("Processing request", "id", req.ID, "op", req.Op)

	switch req.Op {
	case "query":
		if msg, ok := s.checkQuery(req.Query); !ok {
			return s.sendError(req.ID, msg, 400)
		}
		s.session.EditQuery(req.Query)
	case "toggle":
		if req.Tag == "" {
			return s.sendError(req.ID, "missing 'tag' parameter", 400)
		}
		s.session.ToggleTag(req.Tag)
	case "facet":
		f, err := index.ParseFacet(req.Facet)
		if err != nil {
			return s.sendError(req.ID, err.Error(), 400)
		}
		s.session.SetFacet(f)
	case "select":
		kind, ok := search.ParseKind(req.Kind)
		if !ok {
			return s.sendError(req.ID, fmt.Sprintf("unknown suggestion kind: %q", req.Kind), 400)
		}
		switch kind {
		case search.KindName:
			if msg, ok := s.checkQuery(req.Value); !ok {
				return s.sendError(req.ID, msg, 400)
			}
		case search.KindTag:
			if req.Value == "" {
				return s.sendError(req.ID, "missing 'value' parameter", 400)
			}
		}
		s.session.Select(search.Suggestion{Kind: kind, Value: req.Value})
	case "reset":
		s.session.Reset()
	case "state":
	case "feed":
		return s.send(FeedResponse{ID: req.ID, Sections: s.sections, Count: len(s.sections)})
	case "health":
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown op: %s", req.Op), 400)
	}
	return s.sendState(req.ID)
}

// checkQuery applies the configured length limit to text that becomes the
// session query.
func (s *Server) checkQuery(q string) (string, bool) {
	if limit := s.config.Server.MaxQueryLength; limit > 0 && utf8.RuneCountInString(q) > limit {
		return fmt.Sprintf("query exceeds maximum length of %d characters", limit), false
	}
	return "", true
}

func (s *Server) sendState(id string) error {
	start := time.Now()
	snap := s.session.Snapshot()
	elapsed := time.Since(start)

	return s.send(newStateResponse(id, snap, elapsed))
}

func newStateResponse(id string, snap session.Snapshot, elapsed time.Duration) StateResponse {
	suggestions := make([]SuggestionView, len(snap.Suggestions))
	for i, sug := range snap.Suggestions {
		suggestions[i] = SuggestionView{Kind: sug.Kind.String(), Value: sug.Value}
	}
	return StateResponse{
		ID:          id,
		Query:       snap.Query,
		Selected:    snap.Selected,
		Facet:       snap.Facet.String(),
		Tags:        snap.BrowsableTags,
		Results:     snap.Results,
		Suggestions: suggestions,
		Empty:       snap.Empty,
		Count:       len(snap.Results),
		TimeTaken:   elapsed.Microseconds(),
	}
}

// send encodes one response and flushes it so the client sees it at once.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		return err
	}
	return s.writer.Flush()
}

func (s *Server) sendError(id, message string, code int) error {
	s.log.Debug("Request failed", "id", id, "error", message)
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
