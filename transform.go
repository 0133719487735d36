package ecv1

import (
	"bytes"
	"encoding/base64"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Transform is one reversible byte transform. The set is closed:
// LookupTransform is the only way to obtain a Transform from a chain token.
type Transform uint8

const (
	// TransformIdentity passes bytes through unchanged. Token: "none".
	TransformIdentity Transform = iota

	// TransformGzip compresses with a gzip container. Token: "gz".
	TransformGzip

	// TransformBase64 encodes bytes as standard padded base64 text. Token: "b64".
	TransformBase64
)

// Chain tokens recognised by LookupTransform.
const (
	TokenIdentity = "none"
	TokenGzip     = "gz"
	TokenBase64   = "b64"
)

// Direction is the way a transform is applied.
type Direction string

const (
	// Forward applies transforms during encode.
	Forward Direction = "forward"

	// Inverse undoes transforms during decode.
	Inverse Direction = "inverse"
)

// gzipLevel is the compression level used by the gz transform.
const gzipLevel = gzip.BestCompression

// LookupTransform returns the transform named by token.
// Any token outside {none, gz, b64} fails with ErrUnknownTransform.
func LookupTransform(token string) (Transform, error) {
	switch token {
	case TokenIdentity:
		return TransformIdentity, nil
	case TokenGzip:
		return TransformGzip, nil
	case TokenBase64:
		return TransformBase64, nil
	default:
		return 0, newTransformError(ErrUnknownTransform, token, -1, "", nil)
	}
}

// IsKnownTransform returns true if token names a built-in transform.
func IsKnownTransform(token string) bool {
	_, err := LookupTransform(token)
	return err == nil
}

// String returns the chain token for t.
func (t Transform) String() string {
	switch t {
	case TransformIdentity:
		return TokenIdentity
	case TransformGzip:
		return TokenGzip
	case TransformBase64:
		return TokenBase64
	default:
		return "unknown"
	}
}

// Forward applies the encode direction of t to data.
// Errors are returned unwrapped; the pipeline attaches stage context.
func (t Transform) Forward(data []byte) ([]byte, error) {
	switch t {
	case TransformIdentity:
		return data, nil
	case TransformGzip:
		return gzipCompress(data)
	case TransformBase64:
		out := make([]byte, base64.StdEncoding.EncodedLen(len(data)))
		base64.StdEncoding.Encode(out, data)
		return out, nil
	default:
		return nil, ErrUnknownTransform
	}
}

// Inverse applies the decode direction of t to data.
func (t Transform) Inverse(data []byte) ([]byte, error) {
	switch t {
	case TransformIdentity:
		return data, nil
	case TransformGzip:
		return gzipDecompress(data)
	case TransformBase64:
		out := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
		n, err := base64.StdEncoding.Decode(out, data)
		if err != nil {
			return nil, err
		}
		return out[:n], nil
	default:
		return nil, ErrUnknownTransform
	}
}

// sentinel returns the error a failing stage of t is reported as.
func (t Transform) sentinel(dir Direction) error {
	switch t {
	case TransformGzip:
		if dir == Forward {
			return ErrCompression
		}
		return ErrDecompression
	case TransformBase64:
		return ErrBase64Decode
	default:
		return ErrUnknownTransform
	}
}

func gzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzipLevel)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gzipDecompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return out, nil
}
