// Package codec maps media types to message encoders and decoders.
//
// A Codec serializes an arbitrary message value into the payload bytes of a
// WebSocket data frame and back. Codecs are selected through a Registry keyed
// by media type, so the session layer stays independent of any particular
// wire representation.
//
// The package ships codecs for application/json, application/yaml,
// text/plain, and application/octet-stream, all registered on
// DefaultRegistry. Lookup of an unregistered media type fails with
// *NoCodecError; callers must treat this as an encoding-resolution failure
// and never transmit bytes for the message.
//
// Registering a codec:
//
//	reg := codec.NewRegistry()
//	reg.Register(myCodec)
//
//	c, err := reg.Lookup(codec.ApplicationJSON)
//	if err != nil {
//	    // no codec for the media type
//	}
package codec
