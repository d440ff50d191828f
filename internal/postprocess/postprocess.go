// Package postprocess turns the raw text returned by an oracle into a
// candidate translation of a chunk.
package postprocess

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/valpere/trsltx/internal/latex"
)

// Candidate extracts the translated fragment from an oracle answer in three
// phases:
//  1. Thinking / reasoning block removal
//  2. Extraction of the text between the answer delimiters
//  3. Unicode NFC normalisation
//
// The result is empty when the answer carries no delimiter pair.
func Candidate(text string) string {
	text = removeThinkingBlocks(text)
	text = ExtractDelimited(text)
	return norm.NFC.String(text)
}

// --- Phase 1: thinking blocks ---

// thinkingBlockRe matches complete <thinking>…</thinking> style blocks.
// Each tag variant is listed explicitly because Go's RE2 engine does not
// support backreferences.
// Flags: i = case-insensitive, s = dot matches newline.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>|<reflection>.*?</reflection>`,
)

// truncatedThinkingRe matches an opened thinking tag whose closing tag is
// missing (the model was cut off mid-thought).
var truncatedThinkingRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>|<reflection>).*$`,
)

func removeThinkingBlocks(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// --- Phase 2: delimiters ---

// ExtractDelimited returns the text between the first begin delimiter and
// the next end delimiter, unchanged. It returns "" when either is missing.
func ExtractDelimited(text string) string {
	_, rest, ok := strings.Cut(text, latex.BeginDelimiter)
	if !ok {
		return ""
	}
	inner, _, ok := strings.Cut(rest, latex.EndDelimiter)
	if !ok {
		return ""
	}
	return inner
}
