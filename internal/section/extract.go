// Package section isolates the "Serviços" block of a budget document and
// canonicalizes its lines for comparison.
package section

import "strings"

const (
	// HeaderToken marks the start of the services block. It also matches the
	// plural "serviços".
	HeaderToken = "serviço"

	// TerminatorToken marks the start of the labour block that follows.
	TerminatorToken = "mão de obra"
)

// state is the scanner position relative to the services block.
type state int

const (
	outside state = iota
	inside
)

type lineKind int

const (
	itemLine lineKind = iota
	headerLine
	terminatorLine
)

// classify matches a line against the block labels. The header check runs
// first, so an item mentioning "serviço" is read as a header.
func classify(line string) lineKind {
	lowered := strings.ToLower(strings.TrimSpace(line))
	switch {
	case strings.Contains(lowered, HeaderToken):
		return headerLine
	case strings.Contains(lowered, TerminatorToken):
		return terminatorLine
	default:
		return itemLine
	}
}

// Extract returns the trimmed, non-empty lines between the first services
// header and the first labour header, in source order. Text without a header
// yields nil. Without a terminator the block runs to the end of the text.
func Extract(text string) []string {
	var items []string
	st := outside
	for _, line := range strings.Split(text, "\n") {
		switch classify(line) {
		case headerLine:
			st = inside
		case terminatorLine:
			return items
		case itemLine:
			if st != inside {
				continue
			}
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				items = append(items, trimmed)
			}
		}
	}
	return items
}
