package ecv1

import (
	"fmt"
	"strings"
)

// Frame is a parsed envelope whose payload has not been untransformed.
type Frame struct {
	Chain       Chain
	ContentType string
	Payload     []byte
}

// Read parses wire text into a Frame.
//
// CRLF line endings are normalized and blank lines around the header,
// metadata and payload are ignored. The payload is every line after the
// metadata line, with internal newlines (including internal blank lines)
// preserved and leading/trailing blank lines dropped.
func Read(text string) (*Frame, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	// Indices of non-blank lines.
	var content []int
	for i, line := range lines {
		if !isBlank(line) {
			content = append(content, i)
		}
	}
	if len(content) < 3 {
		return nil, newFrameError(ErrInvalidLineCount, 0, fmt.Sprintf("expected at least 3 lines, got %d", len(content)))
	}

	headerIdx, metaIdx := content[0], content[1]
	if header := strings.TrimSpace(lines[headerIdx]); header != Header {
		return nil, newFrameError(ErrMalformedHeader, headerIdx+1, fmt.Sprintf("expected %q, got %q", Header, truncate(header)))
	}

	chain, contentType, err := parseMetadata(lines[metaIdx], metaIdx+1)
	if err != nil {
		return nil, err
	}

	last := content[len(content)-1]
	payload := strings.Join(lines[content[2]:last+1], "\n")

	return &Frame{
		Chain:       chain,
		ContentType: contentType,
		Payload:     []byte(payload),
	}, nil
}

// parseMetadata extracts t= and ct= from the metadata line.
// Unknown keys are ignored and the last occurrence of a key wins.
func parseMetadata(line string, lineNo int) (Chain, string, error) {
	var (
		rawChain    string
		hasChain    bool
		contentType string
	)
	for _, part := range strings.Split(strings.TrimSpace(line), ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case keyChain:
			rawChain, hasChain = value, true
		case keyContentType:
			contentType = strings.TrimSpace(value)
		}
	}

	if !hasChain {
		return nil, "", newFrameError(ErrMissingTransformChain, lineNo, fmt.Sprintf("no t= in %q", truncate(line)))
	}
	chain, err := ParseChain(rawChain)
	if err != nil {
		return nil, "", newFrameError(ErrInvalidChain, lineNo, "t= is empty")
	}
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	return chain, contentType, nil
}

// truncate shortens offending input quoted in error messages.
func truncate(s string) string {
	const limit = 64
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
