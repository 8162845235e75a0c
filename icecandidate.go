package sdpatch

// ICECandidate attributes an opaque candidate payload to a media section.
// The payload itself is produced and consumed by the transport machinery;
// the interceptor only rewrites the attribution.
type ICECandidate struct {
	Candidate     string
	SDPMid        string
	SDPMLineIndex uint16
}
