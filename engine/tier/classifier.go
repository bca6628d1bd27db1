package tier

import "strings"

// Tier buckets a destination by estimated lodging inventory.
type Tier string

const (
	Large  Tier = "large"
	Medium Tier = "medium"
	Small  Tier = "small"
)

// Record is the immutable classification result for one destination.
// IsFallback marks names absent from the reference data: the default
// (smallest-inventory) policy was substituted and downstream consumers
// should disclose the reduced confidence.
type Record struct {
	Tier           Tier `json:"tier"`
	EstimatedCount int  `json:"estimated_count"`
	IsFallback     bool `json:"is_fallback"`
}

type cityEntry struct {
	key     string
	aliases []string
	tier    Tier
	count   int
}

// Classifier maps destination names to supply tiers. It is stateless after
// construction and safe to share across conversations.
type Classifier struct {
	index map[string]Record
}

// NewClassifier builds a classifier over the compiled-in reference data.
func NewClassifier() *Classifier {
	c := &Classifier{index: make(map[string]Record, len(cities)*2)}
	for _, e := range cities {
		rec := Record{Tier: e.tier, EstimatedCount: e.count}
		c.index[normalize(e.key)] = rec
		for _, alias := range e.aliases {
			c.index[normalize(alias)] = rec
		}
	}
	return c
}

// Classify resolves a destination name case-insensitively against canonical
// keys and aliases. Unrecognized names never error: they get the fallback
// record {Small, 0, IsFallback: true}.
func (c *Classifier) Classify(name string) Record {
	if rec, ok := c.index[normalize(name)]; ok {
		return rec
	}
	return Record{Tier: Small, EstimatedCount: 0, IsFallback: true}
}

// HotelCount returns the estimated candidate-hotel count for a destination.
func (c *Classifier) HotelCount(name string) int {
	return c.Classify(name).EstimatedCount
}

// RequiresNarrowing reports whether the destination's inventory is big
// enough that clarifying questions (budget, location, brand) are mandatory
// before recommending. False for Small and fallback destinations.
func (c *Classifier) RequiresNarrowing(name string) bool {
	switch c.Classify(name).Tier {
	case Large, Medium:
		return true
	default:
		return false
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
