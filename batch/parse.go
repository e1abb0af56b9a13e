package batch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLine parses one problem in the text format:
//
//	wordtoy <start> <finish> [| <rule> | <rule> ...]
//	donations <n> <n> ...
//	zigzag <n> <n> ...
//	bridge <n> <n> ...
//
// Rules keep their inner single spaces, e.g. "wordtoy aaaa zzzz | a a a z | z a a a".
func ParseLine(line string) (Problem, error) {
	head, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch head {
	case KindWordToy:
		return parseWordToy(rest)
	case KindDonations:
		values, err := parseInts(rest)
		if err != nil {
			return nil, err
		}
		return Donations{Values: values}, nil
	case KindZigZag:
		values, err := parseInts(rest)
		if err != nil {
			return nil, err
		}
		return ZigZag{Sequence: values}, nil
	case KindBridge:
		values, err := parseInts(rest)
		if err != nil {
			return nil, err
		}
		return Bridge{Times: values}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, head)
	}
}

// ParseAll reads problems line by line, skipping blank lines and lines
// starting with '#'. Errors carry the 1-based line number.
func ParseAll(r io.Reader) ([]Problem, error) {
	var problems []Problem
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		problems = append(problems, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}

func parseWordToy(rest string) (Problem, error) {
	parts := strings.Split(rest, "|")
	words := strings.Fields(parts[0])
	if len(words) != 2 {
		return nil, fmt.Errorf("%w: wordtoy needs <start> <finish>, got %q", ErrSyntax, parts[0])
	}
	p := WordToy{Start: words[0], Finish: words[1]}
	for _, rule := range parts[1:] {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			return nil, fmt.Errorf("%w: empty rule", ErrSyntax)
		}
		p.Forbid = append(p.Forbid, rule)
	}

	return p, nil
}

func parseInts(rest string) ([]int, error) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no numbers", ErrSyntax)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		out[i] = v
	}

	return out, nil
}
