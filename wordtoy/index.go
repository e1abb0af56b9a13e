package wordtoy

import (
	"fmt"
	"math/bits"
	"strings"
)

// LetterSet is a set of letters; bit i holds 'a'+i.
type LetterSet uint32

// Has reports whether letter value v (0..25) is in the set.
func (s LetterSet) Has(v byte) bool { return s&(1<<v) != 0 }

// Len returns the number of letters in the set.
func (s LetterSet) Len() int { return bits.OnesCount32(uint32(s)) }

// String renders the set in alphabetical order, e.g. "abz".
func (s LetterSet) String() string {
	var b strings.Builder
	for v := byte(0); v < Alphabet; v++ {
		if s.Has(v) {
			b.WriteByte('a' + v)
		}
	}

	return b.String()
}

// Rule forbids every word whose letter at each position i is in Rule[i].
type Rule [Letters]LetterSet

// ParseRule parses a constraint of the form "X X X X", where each X is a
// run of distinct lowercase letters and tokens are separated by single spaces.
// For example "lf a tc e" forbids "late", "fate", "lace" and "face".
func ParseRule(s string) (Rule, error) {
	var r Rule
	tokens := strings.Split(s, " ")
	if len(tokens) != Letters {
		return r, fmt.Errorf("%w: %q has %d", ErrRuleTokens, s, len(tokens))
	}
	for i, tok := range tokens {
		if tok == "" {
			return r, fmt.Errorf("%w: %q has an empty token", ErrRuleTokens, s)
		}
		for j := 0; j < len(tok); j++ {
			c := tok[j]
			if c < 'a' || c > 'z' {
				return r, fmt.Errorf("%w: %q in %q", ErrRuleLetter, c, s)
			}
			if r[i].Has(c - 'a') {
				return r, fmt.Errorf("%w: %q in token %q", ErrRuleDuplicate, c, tok)
			}
			r[i] |= 1 << (c - 'a')
		}
	}

	return r, nil
}

// Matches reports whether r forbids w. It scans the rule directly and is the
// reference definition the Index must agree with.
func (r Rule) Matches(w Word) bool {
	for i := 0; i < Letters; i++ {
		if !r[i].Has(w.Letter(i)) {
			return false
		}
	}

	return true
}

// Size is the number of words r forbids: the product of its set sizes.
func (r Rule) Size() int {
	n := 1
	for _, s := range r {
		n *= s.Len()
	}

	return n
}

// String renders r in the "X X X X" form accepted by ParseRule.
func (r Rule) String() string {
	parts := make([]string, Letters)
	for i, s := range r {
		parts[i] = s.String()
	}

	return strings.Join(parts, " ")
}

// node is one trie level; next[v] is the branch for letter value v.
type node struct {
	next [Alphabet]*node
}

// terminal is the shared leaf every complete forbidden path ends in.
var terminal = &node{}

// Index is the union of a set of rules, organised as a Letters-level trie:
// a word is forbidden iff its letters spell a complete path. It is immutable
// once built and safe for concurrent readers.
type Index struct {
	head  *node
	rules int
}

// NewIndex builds an Index from rules. Each rule is inserted by branching on
// every letter of its set at each level, so the trie holds the union of all
// Cartesian products without scanning rules at query time.
func NewIndex(rules ...Rule) *Index {
	idx := &Index{head: &node{}, rules: len(rules)}
	for _, r := range rules {
		idx.insert(idx.head, r, 0)
	}

	return idx
}

// BuildIndex parses every rule string and builds an Index.
// The first malformed rule aborts with its parse error.
func BuildIndex(forbid []string) (*Index, error) {
	rules := make([]Rule, 0, len(forbid))
	for i, s := range forbid {
		r, err := ParseRule(s)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, r)
	}

	return NewIndex(rules...), nil
}

func (idx *Index) insert(n *node, r Rule, level int) {
	set := r[level]
	for v := byte(0); v < Alphabet; v++ {
		if !set.Has(v) {
			continue
		}
		if level == Letters-1 {
			n.next[v] = terminal
			continue
		}
		child := n.next[v]
		if child == nil {
			child = &node{}
			n.next[v] = child
		}
		idx.insert(child, r, level+1)
	}
}

// Forbidden reports whether w is forbidden by any rule. It walks one trie
// level per letter and stops at the first missing branch. A nil Index
// forbids nothing.
func (idx *Index) Forbidden(w Word) bool {
	if idx == nil {
		return false
	}
	n := idx.head
	for i := 0; i < Letters; i++ {
		n = n.next[w.Letter(i)]
		if n == nil {
			return false
		}
	}

	return n == terminal
}

// Rules returns the number of rules the Index was built from.
func (idx *Index) Rules() int {
	if idx == nil {
		return 0
	}

	return idx.rules
}

// Count returns the number of distinct forbidden words.
func (idx *Index) Count() int {
	if idx == nil {
		return 0
	}

	return countLeaves(idx.head, 0)
}

func countLeaves(n *node, level int) int {
	if level == Letters {
		return 1
	}
	total := 0
	for _, child := range n.next {
		if child != nil {
			total += countLeaves(child, level+1)
		}
	}

	return total
}
