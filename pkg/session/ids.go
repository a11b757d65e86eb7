package session

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDPrefix starts every generated node id.
const IDPrefix = "field_"

// IDGenerator mints ids for dropped components. The session still rejects an
// id that is already present in the tree and asks again.
type IDGenerator interface {
	NextID() string
}

// TimestampGenerator produces "field_<unix millis>" ids. When two ids are
// requested within the same millisecond the counter is bumped so ids stay
// unique and increasing.
type TimestampGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewTimestampGenerator uses now as its clock; nil selects time.Now.
func NewTimestampGenerator(now func() time.Time) *TimestampGenerator {
	if now == nil {
		now = time.Now
	}
	return &TimestampGenerator{now: now}
}

// NextID implements IDGenerator.
func (g *TimestampGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return IDPrefix + strconv.FormatInt(ms, 10)
}

// UUIDGenerator produces "field_<uuidv7>" ids, which sort by creation time.
type UUIDGenerator struct{}

// NextID implements IDGenerator.
func (UUIDGenerator) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return IDPrefix + id.String()
}
