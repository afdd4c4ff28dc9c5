package codec

import "fmt"

// Binary passes application/octet-stream payloads through untouched.
type Binary struct{}

func (Binary) MediaType() MediaType { return ApplicationOctetStream }

func (Binary) Encode(v any) ([]byte, error) {
	if data, ok := v.([]byte); ok {
		return data, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func (Binary) Decode(data []byte, v any) error {
	if p, ok := v.(*[]byte); ok {
		*p = data
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedTarget, v)
}
