package session

import "strconv"

// CloseReason describes why a session was or is being closed: a numeric
// close code per RFC 6455, section 7.4.1, and a human-readable phrase.
// The zero value is not meaningful; use one of the presets or construct
// the value explicitly.
type CloseReason struct {
	Code   int
	Reason string
}

// Close reasons for the codes defined in RFC 6455, section 7.4.1.
var (
	NormalClosure       = CloseReason{1000, "Normal Closure"}
	GoingAway           = CloseReason{1001, "Going Away"}
	ProtocolError       = CloseReason{1002, "Protocol Error"}
	UnsupportedData     = CloseReason{1003, "Unsupported Data"}
	NoStatusReceived    = CloseReason{1005, "No Status Received"}
	AbnormalClosure     = CloseReason{1006, "Abnormal Closure"}
	InvalidFrameData    = CloseReason{1007, "Invalid Frame Payload Data"}
	PolicyViolation     = CloseReason{1008, "Policy Violation"}
	MessageTooBig       = CloseReason{1009, "Message Too Big"}
	MissingExtension    = CloseReason{1010, "Mandatory Extension"}
	InternalError       = CloseReason{1011, "Internal Error"}
	ServiceRestart      = CloseReason{1012, "Service Restart"}
	TryAgainLater       = CloseReason{1013, "Try Again Later"}
	BadGateway          = CloseReason{1014, "Bad Gateway"}
	TLSHandshakeFailure = CloseReason{1015, "TLS Handshake Failure"}
)

func (r CloseReason) String() string {
	return strconv.Itoa(r.Code) + " " + r.Reason
}
