package codec

// MediaType identifies a message encoding, e.g. "application/json".
// Parameters (such as "; charset=utf-8") are not part of the registry key.
type MediaType string

// Common media types.
const (
	ApplicationJSON        MediaType = "application/json"
	ApplicationYAML        MediaType = "application/yaml"
	TextPlain              MediaType = "text/plain"
	ApplicationOctetStream MediaType = "application/octet-stream"
)

// Default is the media type assumed when a caller does not specify one.
const Default = ApplicationJSON

// IsBinary reports whether payloads of this media type are transmitted as
// binary frames rather than text frames.
func (m MediaType) IsBinary() bool {
	return m == ApplicationOctetStream
}

func (m MediaType) String() string {
	return string(m)
}
