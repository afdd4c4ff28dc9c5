package codec

// Codec converts message values to and from payload bytes for one media type.
//
// Implementations must be safe for concurrent use.
type Codec interface {
	// MediaType returns the media type this codec handles.
	MediaType() MediaType

	// Encode serializes v into payload bytes.
	Encode(v any) ([]byte, error)

	// Decode deserializes payload bytes into the value pointed to by v.
	Decode(data []byte, v any) error
}

// NoCodecError is returned by Registry.Lookup when no codec is registered
// for the requested media type.
type NoCodecError struct {
	MediaType MediaType
}

func (e *NoCodecError) Error() string {
	return "codec: no codec registered for media type " + string(e.MediaType)
}
