package sdpatch

import (
	"encoding/json"
	"fmt"
)

// MediaKind determines the kind of media a section carries. On the signaling
// channel it travels as its lowercase wire string.
type MediaKind int

const (
	// MediaKindAudio indicates this is an audio section.
	MediaKindAudio MediaKind = iota + 1

	// MediaKindVideo indicates this is a video section.
	MediaKindVideo

	// MediaKindApplication indicates this is an application section, such as
	// a data channel.
	MediaKindApplication
)

func newMediaKind(raw string) MediaKind {
	switch raw {
	case "audio":
		return MediaKindAudio
	case "video":
		return MediaKindVideo
	case "application":
		return MediaKindApplication
	default:
		return MediaKind(Unknown)
	}
}

func (k MediaKind) String() string {
	switch k {
	case MediaKindAudio:
		return "audio"
	case MediaKindVideo:
		return "video"
	case MediaKindApplication:
		return "application"
	default:
		return ErrUnknownType.Error()
	}
}

// UnmarshalJSON parses the JSON-encoded data and stores the result
func (k *MediaKind) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}

	tmp := newMediaKind(val)
	if (tmp == MediaKind(Unknown)) && (val != "") {
		return fmt.Errorf("%w: (%s)", errInvalidMediaKindString, val)
	}

	*k = tmp
	return nil
}

// MarshalJSON returns the JSON encoding
func (k MediaKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// MediaProtocolType classifies the transport protocol class of a section.
type MediaProtocolType int

const (
	// MediaProtocolRTP indicates a section transported over RTP.
	MediaProtocolRTP MediaProtocolType = iota + 1

	// MediaProtocolSCTP indicates a section transported over SCTP.
	MediaProtocolSCTP
)

func (p MediaProtocolType) String() string {
	switch p {
	case MediaProtocolRTP:
		return "rtp"
	case MediaProtocolSCTP:
		return "sctp"
	default:
		return ErrUnknownType.Error()
	}
}
