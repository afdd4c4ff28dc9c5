package codec

import "encoding/json"

// JSON encodes messages as application/json.
type JSON struct{}

func (JSON) MediaType() MediaType { return ApplicationJSON }

// Encode serializes v as JSON. Values of type []byte or json.RawMessage are
// assumed to already contain JSON and are passed through unchanged.
func (JSON) Encode(v any) ([]byte, error) {
	switch data := v.(type) {
	case []byte:
		return data, nil
	case json.RawMessage:
		return data, nil
	}
	return json.Marshal(v)
}

func (JSON) Decode(data []byte, v any) error {
	if p, ok := v.(*[]byte); ok {
		*p = data
		return nil
	}
	return json.Unmarshal(data, v)
}
