package gen

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Engine produces the content for a validated Request. It keeps no state
// between calls.
type Engine struct {
	entropy io.Reader
}

// Option configures an Engine.
type Option func(*Engine)

// WithEntropy sets the byte source used by unseeded random requests.
func WithEntropy(src io.Reader) Option {
	return func(e *Engine) {
		if src != nil {
			e.entropy = src
		}
	}
}

// NewEngine returns an engine reading random filler from crypto/rand unless
// another source is supplied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{entropy: rand.Reader}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate dispatches req to exactly one strategy and returns its output.
func (e *Engine) Generate(req Request) ([]byte, error) {
	if req == nil {
		return nil, ErrModeMissing
	}
	out, err := e.generate(req)
	if err != nil {
		return nil, &GenerationError{Mode: req.Mode(), Err: err}
	}
	return out, nil
}

func (e *Engine) generate(req Request) ([]byte, error) {
	if req.OutputSize() < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, req.OutputSize())
	}
	switch r := req.(type) {
	case FillRequest:
		return Tile([]byte{r.Byte}, r.Size), nil
	case RandomRequest:
		src := e.entropy
		if r.Seeded {
			src = NewSeededReader(r.Seed)
		}
		return FillRandom(src, r.Size)
	case PatternRequest:
		if len(r.Pattern) == 0 {
			return nil, ErrEmptyPattern
		}
		return Tile(r.Pattern, r.Size), nil
	case HexRequest:
		return DecodeHex(r.Text)
	case IntegersRequest:
		return EncodeIntegers(r.Values, r.Width, r.Order)
	default:
		return nil, fmt.Errorf("unsupported request type %T", req)
	}
}
