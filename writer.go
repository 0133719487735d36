package ecv1

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Header is the literal first line of every envelope.
const Header = "EC v1"

// Metadata keys.
const (
	keyChain       = "t"
	keyContentType = "ct"
)

// Write frames an already transformed payload.
//
// The payload must be text that survives framing: valid UTF-8, not blank,
// free of carriage returns, and without blank first or last lines. Anything
// else fails with ErrNonTextSafePayload. A chain whose last transform is gz
// is rejected here rather than embedded as raw bytes.
func Write(chain Chain, contentType string, payload []byte) (string, error) {
	if len(chain) == 0 {
		return "", newFrameError(ErrInvalidChain, 0, "chain has no tokens")
	}
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	if strings.ContainsAny(contentType, ";=\r\n") || strings.TrimSpace(contentType) != contentType {
		return "", newFrameError(ErrInvalidContentType, 0, fmt.Sprintf("%q", contentType))
	}
	if err := checkTextSafe(payload); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(Header) + len(payload) + 32)
	b.WriteString(Header)
	b.WriteByte('\n')
	b.WriteString(metadataLine(chain, contentType))
	b.WriteByte('\n')
	b.Write(payload)
	return b.String(), nil
}

// metadataLine renders "t=<chain>;ct=<contentType>".
func metadataLine(chain Chain, contentType string) string {
	return keyChain + "=" + chain.String() + ";" + keyContentType + "=" + contentType
}

func checkTextSafe(payload []byte) error {
	if !utf8.Valid(payload) {
		return newFrameError(ErrNonTextSafePayload, 0, "payload is not valid UTF-8")
	}
	text := string(payload)
	if strings.TrimSpace(text) == "" {
		return newFrameError(ErrNonTextSafePayload, 0, "payload is blank")
	}
	if strings.ContainsRune(text, '\r') {
		return newFrameError(ErrNonTextSafePayload, 0, "payload contains a carriage return")
	}
	lines := strings.Split(text, "\n")
	if isBlank(lines[0]) || isBlank(lines[len(lines)-1]) {
		return newFrameError(ErrNonTextSafePayload, 0, "payload starts or ends with a blank line")
	}
	return nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
