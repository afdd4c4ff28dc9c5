package codec

import (
	"errors"
	"fmt"
)

// Errors returned by the text and binary codecs.
var (
	ErrUnsupportedValue  = errors.New("codec: unsupported value type")
	ErrUnsupportedTarget = errors.New("codec: unsupported decode target")
)

// Text encodes messages as text/plain.
type Text struct{}

func (Text) MediaType() MediaType { return TextPlain }

// Encode accepts strings, byte slices, errors, and fmt.Stringer values.
// Anything else is rejected rather than formatted, so accidental struct
// sends fail loudly instead of leaking Go syntax to the peer.
func (Text) Encode(v any) ([]byte, error) {
	switch s := v.(type) {
	case string:
		return []byte(s), nil
	case []byte:
		return s, nil
	case fmt.Stringer:
		return []byte(s.String()), nil
	case error:
		return []byte(s.Error()), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func (Text) Decode(data []byte, v any) error {
	switch p := v.(type) {
	case *string:
		*p = string(data)
		return nil
	case *[]byte:
		*p = data
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedTarget, v)
}
