package codec

import "gopkg.in/yaml.v3"

// YAML encodes messages as application/yaml.
type YAML struct{}

func (YAML) MediaType() MediaType { return ApplicationYAML }

func (YAML) Encode(v any) ([]byte, error) {
	if data, ok := v.([]byte); ok {
		return data, nil
	}
	return yaml.Marshal(v)
}

func (YAML) Decode(data []byte, v any) error {
	if p, ok := v.(*[]byte); ok {
		*p = data
		return nil
	}
	return yaml.Unmarshal(data, v)
}
