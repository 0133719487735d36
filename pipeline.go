package ecv1

import (
	"strings"
)

// ChainSeparator joins transform tokens in the metadata line.
const ChainSeparator = ">"

// DefaultChain is the chain used by DefaultOptions.
const DefaultChain = "gz>b64"

// Chain is an ordered list of transform tokens, in the order they are
// applied during encode. Tokens are resolved when the chain is applied,
// so an unknown token fails identically in both directions.
type Chain []string

// ParseChain splits s on ">" into a Chain.
//
// Surrounding whitespace is ignored. An empty string is ErrInvalidChain.
// Empty segments, as in "gz>>b64", ">gz" or "b64>", are normalized to
// "none" rather than rejected, so ">" parses as the identity chain
// "none>none".
func ParseChain(s string) (Chain, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, newFrameError(ErrInvalidChain, 0, "chain has no tokens")
	}

	parts := strings.Split(s, ChainSeparator)
	chain := make(Chain, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			part = TokenIdentity
		}
		chain[i] = part
	}
	return chain, nil
}

// String returns the chain in wire form.
func (c Chain) String() string {
	return strings.Join(c, ChainSeparator)
}

// Validate resolves every token and reports the first unknown one.
func (c Chain) Validate() error {
	_, err := c.resolve(Forward)
	return err
}

// resolve maps every token to its Transform.
func (c Chain) resolve(dir Direction) ([]Transform, error) {
	if len(c) == 0 {
		return nil, newFrameError(ErrInvalidChain, 0, "chain has no tokens")
	}
	transforms := make([]Transform, len(c))
	for i, token := range c {
		t, err := LookupTransform(token)
		if err != nil {
			return nil, newTransformError(ErrUnknownTransform, token, i, dir, nil)
		}
		transforms[i] = t
	}
	return transforms, nil
}

// ApplyForward threads data through each transform left to right.
// Processing stops at the first failing stage.
func ApplyForward(chain Chain, data []byte) ([]byte, error) {
	transforms, err := chain.resolve(Forward)
	if err != nil {
		return nil, err
	}

	for i, t := range transforms {
		data, err = t.Forward(data)
		if err != nil {
			return nil, newTransformError(t.sentinel(Forward), chain[i], i, Forward, err)
		}
	}
	return data, nil
}

// ApplyInverse threads data through each transform's inverse right to left.
// It inverts exactly the chain it is given; nothing is inferred from data.
func ApplyInverse(chain Chain, data []byte) ([]byte, error) {
	transforms, err := chain.resolve(Inverse)
	if err != nil {
		return nil, err
	}

	for i := len(transforms) - 1; i >= 0; i-- {
		t := transforms[i]
		data, err = t.Inverse(data)
		if err != nil {
			return nil, newTransformError(t.sentinel(Inverse), chain[i], i, Inverse, err)
		}
	}
	return data, nil
}
