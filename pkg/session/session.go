package session

import (
	"io"
	"log/slog"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/formdata"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/tree"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

// State is one consistent snapshot of the session. Tree and UILayout are
// immutable; DataSchema and FormData are copies owned by the caller.
type State struct {
	Tree       *tree.Node
	DataSchema schema.DataSchema
	UILayout   uischema.Element
	FormData   formdata.Data
	// Selection is the id shown in the inspector. It is resolved against
	// Tree on read and may name a node that no longer exists.
	Selection string
}

func initialState() State {
	return State{
		Tree:       tree.NewRoot(),
		DataSchema: schema.Empty(),
		UILayout:   uischema.Empty(),
		FormData:   formdata.Empty(),
	}
}

// Session serialises every transition over a single State.
type Session struct {
	mu    sync.Mutex
	state State
	drag  dragState

	ids       IDGenerator
	sanitize  TitleSanitizer
	logger    *slog.Logger
	indexSize int
	index     *tree.IndexCache
}

// New seeds a session with an empty root.
func New(options ...Option) *Session {
	s := &Session{
		state:     initialState(),
		ids:       NewTimestampGenerator(nil),
		sanitize:  StripMarkup,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		indexSize: 8,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	index, err := tree.NewIndexCache(s.indexSize)
	if err != nil {
		s.logger.Warn("session: index cache disabled", "error", err)
	}
	s.index = index
	return s
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Tree:       s.state.Tree,
		DataSchema: s.state.DataSchema.Clone(),
		UILayout:   s.state.UILayout,
		FormData:   s.state.FormData.Clone(),
		Selection:  s.state.Selection,
	}
}

// Tree returns the current root.
func (s *Session) Tree() *tree.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Tree
}

// Lookup resolves id against the current tree.
func (s *Session) Lookup(id string) (*tree.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(id)
}

func (s *Session) lookup(id string) (*tree.Node, bool) {
	return s.index.Lookup(s.state.Tree, id)
}

// commit replaces the state and records the transition.
func (s *Session) commit(next State, op string, attrs ...any) {
	s.state = next
	s.logger.Debug("session: "+op, attrs...)
}

// reproject derives both schemas from root, keeping the other fields of
// the current state.
func (s *Session) reproject(root *tree.Node) State {
	next := s.state
	next.Tree = root
	next.DataSchema = schema.Project(root, s.state.DataSchema)
	next.UILayout = uischema.Project(root)
	return next
}

func (s *Session) nextID() string {
	const attempts = 16
	var id string
	for range attempts {
		id = s.ids.NextID()
		if _, taken := s.lookup(id); !taken && id != "" {
			return id
		}
	}
	// Generators are expected to be unique; keep bumping a timestamp one.
	fallback := NewTimestampGenerator(nil)
	for {
		id = fallback.NextID()
		if _, taken := s.lookup(id); !taken {
			return id
		}
	}
}
