// Package wordtoy finds the fewest clicks that turn one four-letter display
// into another on a toy with an up and a down button per letter, while never
// showing a forbidden word.
//
// What
//
//   - Every display is a packed Word: four 5-bit letter fields, letter 0 in the
//     low bits, so the whole state space fits in 2^20 keys.
//   - Each click moves one letter one step up or down a circular alphabet,
//     giving an implicit undirected graph where every word has 8 neighbours.
//   - Forbidden words come from rules such as "lf a tc e": a word is forbidden
//     when each of its letters is in the matching token. Rules are compiled
//     into an Index, a four-level trie, so a membership test costs four array
//     lookups however many rules there are.
//   - Search runs a breadth-first search over that graph, testing words
//     against the Index only when first met, and recovers the click count by
//     walking predecessors back from the goal.
//
// Complexity (A = 26 letters, D = 4 positions)
//
//   - Time:   O(A^D · D) neighbour generation, O(D) per forbidden test
//   - Memory: O(A^D) for the frontier marks and predecessors (one call only)
//
// Usage
//
//	clicks, err := wordtoy.MinClicks("aaaa", "zzzz", []string{"a a a z", "a a z a"})
//
//	idx, _ := wordtoy.BuildIndex(rules)
//	res, err := wordtoy.Search(
//	    wordtoy.MustPack("aaaa"), wordtoy.MustPack("mmnn"), idx,
//	    wordtoy.WithContext(ctx),
//	    wordtoy.WithMaxDepth(60),
//	)
//	fmt.Println(res.Clicks, res.Path())
//
// Errors
//
//   - ErrWordLength, ErrWordLetter      malformed start or finish.
//   - ErrRuleTokens, ErrRuleLetter,
//     ErrRuleDuplicate                  malformed rule.
//   - ErrOptionViolation                invalid Option (negative MaxDepth).
//   - ctx.Err() or a wrapped OnVisit error.
//
// An unreachable goal is not an error: Clicks is -1.
package wordtoy
