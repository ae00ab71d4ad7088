package analysis

import (
	"sync"
	"time"
)

const dateLayout = "02/01/2006"

// Normalizer turns a transient service payload into a permanent, addressable
// Result. It is the single place where ids and dates are assigned.
type Normalizer struct {
	mu     sync.Mutex
	lastID int64
	now    func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// Normalize merges the payload with the caller-supplied identity. The caller
// passes name and role already defaulted; they are never taken from the
// payload. Score values are clamped to [0,100] and the verdict is coerced to
// a known value, since the upstream schema guarantees shape but not ranges.
func (n *Normalizer) Normalize(p *Payload, name, role string) Result {
	r := Result{
		ID:         n.nextID(),
		Name:       name,
		Role:       role,
		Date:       n.now().Format(dateLayout),
		Score:      clampScore(p.Score),
		Verdict:    ParseVerdict(p.Verdict),
		Title:      p.Title,
		Summary:    p.Summary,
		Subscores:  make([]Subscore, 0, len(p.Subscores)),
		Strengths:  copyStrings(p.Strengths),
		Gaps:       copyStrings(p.Gaps),
		Blindspots: make([]Blindspot, 0, len(p.Blindspots)),
		Questions:  copyStrings(p.Questions),
	}

	for _, s := range p.Subscores {
		r.Subscores = append(r.Subscores, Subscore{Label: s.Label, Value: clampScore(s.Value)})
	}
	r.Blindspots = append(r.Blindspots, p.Blindspots...)

	return r
}

// nextID derives ids from the wall clock, bumping past the previous id when
// two normalizations land on the same millisecond.
func (n *Normalizer) nextID() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.now().UnixMilli()
	if id <= n.lastID {
		id = n.lastID + 1
	}
	n.lastID = id

	return id
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func copyStrings(in []string) []string {
	out := make([]string, 0, len(in))
	return append(out, in...)
}
