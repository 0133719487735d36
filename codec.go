package ecv1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ContentTypeJSON is the only content type with structured handling.
// It is also the default when a message carries no ct= entry.
const ContentTypeJSON = "json"

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the identifier written to the ct= entry.
	ContentType() string

	// Marshal encodes v into UTF-8 text bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// CodecFor returns the codec for a declared content type.
// "json" and the empty string select JSON; anything else is opaque text.
func CodecFor(contentType string) Codec {
	if contentType == "" || contentType == ContentTypeJSON {
		return JSON()
	}
	return Text(contentType)
}

// Serialize encodes v with the codec for contentType.
func Serialize(v any, contentType string) ([]byte, error) {
	return CodecFor(contentType).Marshal(v)
}

// Deserialize decodes data with the codec for contentType. JSON payloads
// decode to generic values (map[string]any, []any, json.Number, string,
// bool, nil); opaque payloads decode to a string.
func Deserialize(data []byte, contentType string) (any, error) {
	var v any
	if err := CodecFor(contentType).Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// jsonCodec implements Codec for JSON.
type jsonCodec struct{}

// JSON returns the JSON codec.
func JSON() Codec {
	return jsonCodec{}
}

// ContentType returns "json".
func (jsonCodec) ContentType() string {
	return ContentTypeJSON
}

// Marshal encodes v as compact JSON without HTML escaping.
func (jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, newCodecError(ErrJSONSerialize, ContentTypeJSON, err)
	}
	// Encoder terminates every value with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes exactly one JSON value from data into v.
// Numbers decoded into interface values are kept as json.Number.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	if !utf8.Valid(data) {
		return newCodecError(ErrJSONParse, ContentTypeJSON, errors.New("payload is not valid UTF-8"))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return newCodecError(ErrJSONParse, ContentTypeJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return newCodecError(ErrJSONParse, ContentTypeJSON, errors.New("unexpected data after top-level value"))
	}
	return nil
}

// textCodec implements Codec for opaque UTF-8 text.
type textCodec struct {
	contentType string
}

// Text returns an opaque codec that tags payloads with contentType.
// Values pass through unchanged.
func Text(contentType string) Codec {
	return textCodec{contentType: contentType}
}

// ContentType returns the declared content type.
func (c textCodec) ContentType() string {
	return c.contentType
}

// Marshal accepts string, []byte and json.RawMessage values.
func (c textCodec) Marshal(v any) ([]byte, error) {
	switch val := v.(type) {
	case string:
		return []byte(val), nil
	case []byte:
		return val, nil
	case json.RawMessage:
		return val, nil
	default:
		return nil, newCodecError(ErrUnsupportedValue, c.contentType, fmt.Errorf("opaque content requires text, got %T", v))
	}
}

// Unmarshal stores data into a *string, *[]byte or *any.
func (c textCodec) Unmarshal(data []byte, v any) error {
	switch dst := v.(type) {
	case *string:
		*dst = string(data)
	case *[]byte:
		*dst = append([]byte(nil), data...)
	case *any:
		*dst = string(data)
	default:
		return newCodecError(ErrUnsupportedValue, c.contentType, fmt.Errorf("opaque content decodes to text, got %T", v))
	}
	return nil
}
