package sdpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testVideoCodecs() []RTPCodecParameters {
	return []RTPCodecParameters{
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeVP8, ClockRate: 90000}, PayloadType: 96},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeRTX, ClockRate: 90000, SDPFmtpLine: "apt=96"}, PayloadType: 97},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeVP9, ClockRate: 90000, SDPFmtpLine: "profile-id=0"}, PayloadType: 98},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeVP9, ClockRate: 90000, SDPFmtpLine: "profile-id=2"}, PayloadType: 100},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeRED, ClockRate: 90000}, PayloadType: 120},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeULPFEC, ClockRate: 90000}, PayloadType: 114},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeFlexFEC03, ClockRate: 90000, SDPFmtpLine: "repair-window=10000000"}, PayloadType: 49},
	}
}

func payloadTypes(codecs []RTPCodecParameters) []uint8 {
	out := make([]uint8, 0, len(codecs))
	for _, codec := range codecs {
		out = append(out, codec.PayloadType)
	}
	return out
}

func TestFilterCodecCapabilities_MatchesRequiredParams(t *testing.T) {
	supported := testVideoCodecs()

	output := FilterCodecCapabilities(MimeTypeVP9, map[string]string{"profile-id": "0"}, false, false, false, supported)
	assert.Equal(t, []uint8{98}, payloadTypes(output))

	// Input order must not matter for the selection result.
	reversed := make([]RTPCodecParameters, 0, len(supported))
	for i := len(supported) - 1; i >= 0; i-- {
		reversed = append(reversed, supported[i])
	}
	output = FilterCodecCapabilities(MimeTypeVP9, map[string]string{"profile-id": "0"}, false, false, false, reversed)
	assert.Equal(t, []uint8{98}, payloadTypes(output))
}

func TestFilterCodecCapabilities_NoRequiredParams(t *testing.T) {
	output := FilterCodecCapabilities(MimeTypeVP9, nil, false, false, false, testVideoCodecs())
	assert.Equal(t, []uint8{98, 100}, payloadTypes(output))
}

func TestFilterCodecCapabilities_CaseInsensitiveMimeType(t *testing.T) {
	output := FilterCodecCapabilities("video/vp8", nil, false, false, false, testVideoCodecs())
	assert.Equal(t, []uint8{96}, payloadTypes(output))
}

func TestFilterCodecCapabilities_Companions(t *testing.T) {
	testCases := []struct {
		name                          string
		useRTX, useULPFEC, useFlexFEC bool
		expected                      []uint8
	}{
		{"none", false, false, false, []uint8{96}},
		{"rtx", true, false, false, []uint8{96, 97}},
		{"flexfec pulls red and ulpfec", false, false, true, []uint8{96, 120, 114, 49}},
		{"ulpfec alone has no effect", false, true, false, []uint8{96}},
		{"everything", true, true, true, []uint8{96, 97, 120, 114, 49}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			output := FilterCodecCapabilities(
				MimeTypeVP8, nil,
				testCase.useRTX, testCase.useULPFEC, testCase.useFlexFEC,
				testVideoCodecs(),
			)
			assert.Equal(t, testCase.expected, payloadTypes(output))
		})
	}
}

func TestFilterCodecCapabilities_PanicsWithoutMatch(t *testing.T) {
	assertPanicsWithError(t, ErrNoMatchingCodecs, func() {
		FilterCodecCapabilities(MimeTypeH264, nil, false, false, false, testVideoCodecs())
	})

	assertPanicsWithError(t, ErrNoMatchingCodecs, func() {
		FilterCodecCapabilities(MimeTypeVP9, map[string]string{"profile-id": "3"}, true, true, true, testVideoCodecs())
	})
}
