package sdpatch

import (
	"fmt"
	"strings"

	"github.com/pion/sdpatch/internal/fmtp"
)

// MimeType constants for the codecs the capability filter knows how to pair.
const (
	MimeTypeOpus      = "audio/opus"
	MimeTypeVP8       = "video/VP8"
	MimeTypeVP9       = "video/VP9"
	MimeTypeH264      = "video/H264"
	MimeTypeAV1       = "video/AV1"
	MimeTypeRTX       = "video/rtx"
	MimeTypeRED       = "video/red"
	MimeTypeULPFEC    = "video/ulpfec"
	MimeTypeFlexFEC03 = "video/flexfec-03"
)

// RTCPFeedback signals the connection to use additional RTCP packet types.
type RTCPFeedback struct {
	Type      string
	Parameter string
}

// RTPCodecCapability provides information about codec capabilities.
type RTPCodecCapability struct {
	MimeType     string
	ClockRate    uint32
	Channels     uint16
	SDPFmtpLine  string
	RTCPFeedback []RTCPFeedback
}

// RTPCodecParameters is a supported codec together with the payload type it
// was registered under.
type RTPCodecParameters struct {
	RTPCodecCapability
	PayloadType uint8
}

// FilterCodecCapabilities reduces supported to the codecs a negotiation
// should offer: every codec whose MimeType matches mimeType and whose fmtp
// parameters are a superset of requiredParams, in input order, followed by
// the enabled retransmission and forward error correction companions.
//
// A codec the caller requires is mandatory by construction, so
// FilterCodecCapabilities panics wrapping ErrNoMatchingCodecs when nothing
// matched.
func FilterCodecCapabilities(
	mimeType string,
	requiredParams map[string]string,
	useRTX, useULPFEC, useFlexFEC bool,
	supported []RTPCodecParameters,
) []RTPCodecParameters {
	output := []RTPCodecParameters{}
	for _, codec := range supported {
		if !strings.EqualFold(codec.MimeType, mimeType) {
			continue
		}
		if fmtp.Parse(codec.MimeType, codec.SDPFmtpLine).Superset(requiredParams) {
			output = append(output, codec)
		}
	}

	if len(output) == 0 {
		panic(fmt.Errorf("%w: %s with params %v", ErrNoMatchingCodecs, mimeType, requiredParams))
	}

	for _, codec := range supported {
		switch {
		case useRTX && strings.EqualFold(codec.MimeType, MimeTypeRTX):
			output = append(output, codec)
		case useFlexFEC && strings.EqualFold(codec.MimeType, MimeTypeFlexFEC03):
			output = append(output, codec)
		case useFlexFEC && (strings.EqualFold(codec.MimeType, MimeTypeRED) ||
			strings.EqualFold(codec.MimeType, MimeTypeULPFEC)):
			// RED and ULPFEC ride on the FlexFEC switch so both FEC flavors
			// are enabled and disabled together; useULPFEC is accepted but
			// ignored. TODO: decouple once the upstream gating is untangled.
			output = append(output, codec)
		}
	}

	return output
}
