package sdpatch

const (
	// Unknown defines default public constant to use for "enum" like struct
	// comparisons when no value was defined.
	Unknown    = iota
	unknownStr = "unknown"

	// Semantics of the group every patched description is rebuilt around.
	semanticsBundle = "BUNDLE"

	// URI of the repaired RTP stream id header extension. The mid and rid
	// URIs come from pion/sdp, which does not export this one.
	sdesRepairRTPStreamIDURI = "urn:ietf:params:rtp-hdrext:sdes:repaired-rtp-stream-id"
)
