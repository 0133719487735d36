// Package ecv1 implements EC v1, a line-oriented text envelope that carries
// a serialized value behind a declared chain of reversible byte transforms.
//
// # Wire Format
//
// Every envelope is three logical parts:
//
//	EC v1
//	t=<chain>;ct=<contentType>
//	<payload>
//
// The chain lists transform tokens joined by ">" in the order they were
// applied during encode. Decode inverts them right to left. The content
// type selects how the untransformed bytes are interpreted: "json" is parsed,
// anything else is returned as opaque text. ct= may be omitted and defaults
// to "json".
//
// # Transforms
//
// The vocabulary is closed:
//
//   - none - identity
//   - gz   - gzip container, best compression
//   - b64  - standard padded base64
//
// Any other token fails with ErrUnknownTransform in both directions. Empty
// chain segments ("gz>>b64") are read as "none".
//
// # Basic Usage
//
//	text, _ := ecv1.Encode(ctx, map[string]any{"a": 1}, ecv1.DefaultOptions())
//	// EC v1
//	// t=gz>b64;ct=json
//	// H4sIAAAAAAAC/...   (base64 of the gzipped {"a":1})
//
//	msg, _ := ecv1.Decode(ctx, text)
//	// msg.Value == map[string]any{"a": json.Number("1")}
//
// # Text Safety
//
// The payload line must be text. A chain whose last transform produces
// binary bytes (for example "b64>gz") is rejected with ErrNonTextSafePayload
// instead of embedding invalid UTF-8.
//
// # Events
//
// Encode and Decode emit capitan signals (SignalEncodeStart,
// SignalEncodeComplete, SignalDecodeStart, SignalDecodeComplete) carrying the
// chain, content type, size, duration and error.
package ecv1

import (
	"context"
	"time"
)

// Options configures a single Encode call.
// No defaults are retained between calls; pass DefaultOptions() explicitly.
type Options struct {
	// Chain is the transform chain in wire form, e.g. "gz>b64".
	Chain string

	// ContentType is written to ct=. Empty means "json".
	ContentType string
}

// DefaultOptions returns gz>b64 over JSON.
func DefaultOptions() Options {
	return Options{
		Chain:       DefaultChain,
		ContentType: ContentTypeJSON,
	}
}

// Message is a decoded envelope.
type Message struct {
	Chain       Chain
	ContentType string

	// Value is the generic JSON value for "json" and a string otherwise.
	Value any
}

// Encode serializes v, applies the chain and frames the result.
// The chain is validated before v is serialized.
func Encode(ctx context.Context, v any, opts Options) (text string, err error) {
	contentType := opts.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}

	start := time.Now()
	emitEncodeStart(ctx, opts.Chain, contentType)
	defer func() {
		emitEncodeComplete(ctx, opts.Chain, contentType, len(text), time.Since(start), err)
	}()

	chain, err := ParseChain(opts.Chain)
	if err != nil {
		return "", err
	}
	if err := chain.Validate(); err != nil {
		return "", err
	}

	data, err := Serialize(v, contentType)
	if err != nil {
		return "", err
	}

	payload, err := ApplyForward(chain, data)
	if err != nil {
		return "", err
	}

	return Write(chain, contentType, payload)
}

// Decode reads an envelope, inverts its recorded chain and deserializes
// the payload according to its content type.
func Decode(ctx context.Context, text string) (msg *Message, err error) {
	var chain, contentType string

	start := time.Now()
	emitDecodeStart(ctx, len(text))
	defer func() {
		emitDecodeComplete(ctx, chain, contentType, len(text), time.Since(start), err)
	}()

	frame, data, err := unwrap(text)
	if err != nil {
		return nil, err
	}
	chain, contentType = frame.Chain.String(), frame.ContentType

	value, err := Deserialize(data, frame.ContentType)
	if err != nil {
		return nil, err
	}

	return &Message{
		Chain:       frame.Chain,
		ContentType: frame.ContentType,
		Value:       value,
	}, nil
}

// DecodeInto is Decode for a caller-supplied target. JSON payloads are
// unmarshaled into v; opaque payloads require a *string, *[]byte or *any.
func DecodeInto(ctx context.Context, text string, v any) (err error) {
	var chain, contentType string

	start := time.Now()
	emitDecodeStart(ctx, len(text))
	defer func() {
		emitDecodeComplete(ctx, chain, contentType, len(text), time.Since(start), err)
	}()

	frame, data, err := unwrap(text)
	if err != nil {
		return err
	}
	chain, contentType = frame.Chain.String(), frame.ContentType

	return CodecFor(frame.ContentType).Unmarshal(data, v)
}

// unwrap reads the frame and inverts its chain.
func unwrap(text string) (*Frame, []byte, error) {
	frame, err := Read(text)
	if err != nil {
		return nil, nil, err
	}
	data, err := ApplyInverse(frame.Chain, frame.Payload)
	if err != nil {
		return nil, nil, err
	}
	return frame, data, nil
}
