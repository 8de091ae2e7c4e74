package sentiment

import (
	"strings"
	"sync"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

var manipulativeCues = []string{
	"act now",
	"before it's too late",
	"don't miss",
	"everyone knows",
	"last chance",
	"limited time",
	"only today",
	"they don't want you to know",
	"trust me",
	"wake up",
	"what they're hiding",
	"you must",
	"you'll regret",
	"you need to",
}

var polarizingCues = []string{
	"all of them",
	"destroy",
	"enemies",
	"enemy",
	"evil",
	"idiots",
	"radical",
	"real americans",
	"corrupt",
	"traitor",
	"us versus them",
	"us vs them",
	"people like them",
	"those people",
}

// CueMatcher counts dictionary phrase occurrences with an Aho-Corasick automaton.
type CueMatcher struct {
	// the automaton is not documented as safe for concurrent searches
	mu      sync.Mutex
	machine *goahocorasick.Machine
}

func NewCueMatcher(cues []string) (*CueMatcher, error) {
	patterns := lo.Map(cues, func(cue string, _ int) []rune {
		return normalizeCue(cue)
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &CueMatcher{machine: m}, nil
}

// Count returns the number of cue occurrences in text, overlaps included.
func (c *CueMatcher) Count(text string) int {
	normalized := normalizeCue(text)
	if len(normalized) == 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.machine.MultiPatternSearch(normalized, false))
}

// normalizeCue lowercases, unifies apostrophes and collapses whitespace.
func normalizeCue(input string) []rune {
	input = strings.NewReplacer("’", "'", "‘", "'").Replace(input)
	fields := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return unicode.IsSpace(r) || (unicode.IsPunct(r) && r != '\'')
	})
	return []rune(strings.Join(fields, " "))
}
