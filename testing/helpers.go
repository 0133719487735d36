// Package testing provides test utilities for ecv1.
package testing

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/zoobzio/ecv1"
)

// TextSafeChains returns chains that always yield a framable payload for
// JSON content: every gz is followed somewhere by b64.
func TextSafeChains() []string {
	return []string{
		"none",
		"b64",
		"gz>b64",
		"none>gz>b64",
		"gz>b64>none",
		"b64>b64",
		"gz>gz>b64",
		"gz>b64>gz>b64",
		"b64>gz>b64",
	}
}

// SampleValues returns JSON values that exercise every JSON kind.
func SampleValues() map[string]any {
	return map[string]any{
		"object": map[string]any{"a": 1},
		"nested": map[string]any{"x": []any{1, 2, 3}, "y": map[string]any{"z": nil}},
		"array":  []any{"a", true, false, nil, 1.5},
		"string": "hello, world",
		"number": 42,
		"bool":   true,
		"null":   nil,
		"unicode": map[string]any{
			"greeting": "héllo wörld ✓",
			"html":     "<a href=\"x\">&</a>",
		},
		"multiline": "line one\nline two\n\nline four",
	}
}

// MustEncode encodes v or fails the test.
func MustEncode(t testing.TB, v any, opts ecv1.Options) string {
	t.Helper()
	text, err := ecv1.Encode(context.Background(), v, opts)
	if err != nil {
		t.Fatalf("Encode(%q) error: %v", opts.Chain, err)
	}
	return text
}

// AssertJSONEqual fails the test unless got and want serialize to the same
// canonical JSON. Map key order and number representation are ignored.
func AssertJSONEqual(t testing.TB, got, want any) {
	t.Helper()
	g := canonical(t, got)
	w := canonical(t, want)
	if !bytes.Equal(g, w) {
		t.Errorf("JSON mismatch:\n got: %s\nwant: %s", g, w)
	}
}

// canonical re-parses v so that json.Number and float64 compare equal.
func canonical(t testing.TB, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %T: %v", v, err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	out, err := json.Marshal(generic)
	if err != nil {
		t.Fatalf("marshal canonical: %v", err)
	}
	return out
}
