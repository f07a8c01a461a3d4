// Package ingest turns free-form AI agent replies into domain records.
//
// The agent is asked for a single JSON object but routinely wraps it in
// prose, code fences or trailing commentary, and emits numbers either as
// JSON numbers or as strings with units ("450卡", "30g"). This package owns
// the extraction and normalization rules for both plan generation and
// nutrition logging.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoJSONObject — the reply contains no {...} span at all.
	ErrNoJSONObject = errors.New("no JSON object found in agent reply")

	// ErrInvalidJSON — the extracted span does not parse.
	ErrInvalidJSON = errors.New("agent reply is not valid JSON")
)

// ExtractJSONObject returns the span from the first '{' to the last '}' of
// text. This is deliberately not a balanced-brace scan: the agent contract
// is one object per reply, and the original client shipped with exactly
// this rule. Commentary containing stray braces after the object breaks it;
// tightening the rule would change which replies are accepted.
func ExtractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONObject
	}
	return text[start : end+1], nil
}

// Unmarshal extracts the JSON object span of text and decodes it into v.
// A missing span or invalid JSON is a hard error for the whole reply — no
// partial recovery, nothing is persisted by callers on error.
func Unmarshal(text string, v any) error {
	span, err := ExtractJSONObject(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

// LooseInt decodes a JSON number or a string with unit noise into an int.
// Non-digit characters are stripped before parsing; an empty or unparseable
// result is 0 rather than an error, so one sloppy field does not discard an
// otherwise good reply.
type LooseInt int

func (n *LooseInt) UnmarshalJSON(data []byte) error {
	*n = LooseInt(ParseLooseInt(rawScalar(data)))
	return nil
}

// LooseFloat is LooseInt for fractional fields: everything except digits
// and the decimal point is stripped.
type LooseFloat float64

func (f *LooseFloat) UnmarshalJSON(data []byte) error {
	*f = LooseFloat(ParseLooseFloat(rawScalar(data)))
	return nil
}

// ParseLooseInt strips non-digits from s and parses the rest, defaulting
// to 0.
func ParseLooseInt(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// ParseLooseFloat strips everything but digits and '.' from s and parses
// the rest, defaulting to 0.
func ParseLooseFloat(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// rawScalar renders a raw JSON scalar as text: strings are unquoted,
// numbers/booleans/null pass through verbatim.
func rawScalar(data []byte) string {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	return string(data)
}
