package sdpatch

import (
	"github.com/pion/randutil"
)

// Use global random generator to properly seed by crypto grade random.
var globalMathRandomGenerator = randutil.NewMathRandomGenerator() // nolint:gochecknoglobals

const (
	runesAlpha = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	lenUFrag = 16
	lenPwd   = 32
)

// RTPHeaderExtension is a negotiated RTP header extension binding. An ID of
// zero means the extension was never negotiated.
type RTPHeaderExtension struct {
	URI string
	ID  int
}

// RIDDirection is the direction a simulcast layer is negotiated for.
type RIDDirection int

const (
	// RIDDirectionSend indicates a layer the section sends.
	RIDDirectionSend RIDDirection = iota + 1

	// RIDDirectionRecv indicates a layer the section receives.
	RIDDirectionRecv
)

func (d RIDDirection) String() string {
	switch d {
	case RIDDirectionSend:
		return "send"
	case RIDDirectionRecv:
		return "recv"
	default:
		return ErrUnknownType.Error()
	}
}

// RIDDescription names one simulcast encoding layer of a stream.
type RIDDescription struct {
	RID       string
	Direction RIDDirection
}

// StreamDescription describes a single media stream within a section.
type StreamDescription struct {
	RIDs []RIDDescription
}

// HasRIDs returns whether the stream declares simulcast layer ids.
func (s *StreamDescription) HasRIDs() bool {
	return len(s.RIDs) > 0
}

func (s *StreamDescription) clone() StreamDescription {
	return StreamDescription{RIDs: append([]RIDDescription(nil), s.RIDs...)}
}

// SimulcastLayer is a single send or receive encoding layer.
type SimulcastLayer struct {
	RID    string
	Paused bool
}

// SimulcastLayerList is an ordered list of layers, each entry carrying one
// layer and its alternatives.
type SimulcastLayerList [][]SimulcastLayer

// AddLayer appends a layer with no alternatives.
func (l *SimulcastLayerList) AddLayer(layer SimulcastLayer) {
	*l = append(*l, []SimulcastLayer{layer})
}

// AddLayerWithAlternatives appends a layer together with its alternatives.
func (l *SimulcastLayerList) AddLayerWithAlternatives(layers []SimulcastLayer) {
	*l = append(*l, append([]SimulcastLayer{}, layers...))
}

func (l SimulcastLayerList) clone() SimulcastLayerList {
	if l == nil {
		return nil
	}
	out := make(SimulcastLayerList, 0, len(l))
	for _, layers := range l {
		out = append(out, append([]SimulcastLayer{}, layers...))
	}
	return out
}

// SimulcastDescription carries the send and receive layer lists negotiated
// for a section.
type SimulcastDescription struct {
	Send    SimulcastLayerList
	Receive SimulcastLayerList
}

// Empty returns whether the section negotiated any simulcast layers.
func (s *SimulcastDescription) Empty() bool {
	return len(s.Send) == 0 && len(s.Receive) == 0
}

func (s *SimulcastDescription) clone() SimulcastDescription {
	return SimulcastDescription{Send: s.Send.clone(), Receive: s.Receive.clone()}
}

// TransportDescription is the negotiation visible snapshot of a section's
// transport parameters.
type TransportDescription struct {
	ICEUfrag        string
	ICEPwd          string
	FingerprintHash string
	Fingerprint     string
	Setup           string
}

// NewTransportDescription returns a transport description with freshly
// generated ICE credentials. DTLS parameters are left to the caller.
func NewTransportDescription() (TransportDescription, error) {
	ufrag, err := randutil.GenerateCryptoRandomString(lenUFrag, runesAlpha)
	if err != nil {
		return TransportDescription{}, err
	}
	pwd, err := randutil.GenerateCryptoRandomString(lenPwd, runesAlpha)
	if err != nil {
		return TransportDescription{}, err
	}
	return TransportDescription{ICEUfrag: ufrag, ICEPwd: pwd}, nil
}

// TransportInfo binds a transport description to the section using it.
type TransportInfo struct {
	MID       string
	Transport TransportDescription
}

// BundleGroup is a named set of section ids sharing one transport.
type BundleGroup struct {
	Semantics string
	MIDs      []string
}

func (g *BundleGroup) clone() BundleGroup {
	return BundleGroup{Semantics: g.Semantics, MIDs: append([]string(nil), g.MIDs...)}
}

// MediaDescription is the media specific content of a section.
type MediaDescription struct {
	Kind             MediaKind
	HeaderExtensions []RTPHeaderExtension
	Streams          []StreamDescription
	Simulcast        SimulcastDescription
}

// HasSimulcast returns whether the section negotiated simulcast layers.
func (m *MediaDescription) HasSimulcast() bool {
	return !m.Simulcast.Empty()
}

// Clone returns a deep copy sharing no storage with m.
func (m *MediaDescription) Clone() *MediaDescription {
	out := &MediaDescription{
		Kind:             m.Kind,
		HeaderExtensions: append([]RTPHeaderExtension(nil), m.HeaderExtensions...),
		Simulcast:        m.Simulcast.clone(),
	}
	for i := range m.Streams {
		out.Streams = append(out.Streams, m.Streams[i].clone())
	}
	return out
}

// MediaSection is one named block of a session description, analogous to a
// single "m=" line.
type MediaSection struct {
	MID      string
	Protocol MediaProtocolType
	Media    *MediaDescription
}

// Description is the structured body of a session description: an ordered
// section list plus the groups and transports keyed by section id.
type Description struct {
	Sections       []MediaSection
	Groups         []BundleGroup
	TransportInfos []TransportInfo
}

// SectionByMID returns the section named mid, or nil.
func (d *Description) SectionByMID(mid string) *MediaSection {
	for i := range d.Sections {
		if d.Sections[i].MID == mid {
			return &d.Sections[i]
		}
	}
	return nil
}

// RemoveSectionByMID removes the section named mid and reports whether it was
// present.
func (d *Description) RemoveSectionByMID(mid string) bool {
	sections := make([]MediaSection, 0, len(d.Sections))
	found := false
	for _, section := range d.Sections {
		if section.MID == mid {
			found = true
			continue
		}
		sections = append(sections, section)
	}
	d.Sections = sections
	return found
}

// AddSection appends a section named mid carrying media.
func (d *Description) AddSection(mid string, protocol MediaProtocolType, media *MediaDescription) {
	d.Sections = append(d.Sections, MediaSection{MID: mid, Protocol: protocol, Media: media})
}

// HasGroup returns whether a group with the given semantics exists.
func (d *Description) HasGroup(semantics string) bool {
	for i := range d.Groups {
		if d.Groups[i].Semantics == semantics {
			return true
		}
	}
	return false
}

// RemoveGroupBySemantics removes every group with the given semantics.
func (d *Description) RemoveGroupBySemantics(semantics string) {
	groups := make([]BundleGroup, 0, len(d.Groups))
	for _, group := range d.Groups {
		if group.Semantics == semantics {
			continue
		}
		groups = append(groups, group)
	}
	d.Groups = groups
}

// AddGroup appends a group.
func (d *Description) AddGroup(group BundleGroup) {
	d.Groups = append(d.Groups, group)
}

// TransportByMID returns the transport description bound to mid.
func (d *Description) TransportByMID(mid string) (TransportDescription, bool) {
	for i := range d.TransportInfos {
		if d.TransportInfos[i].MID == mid {
			return d.TransportInfos[i].Transport, true
		}
	}
	return TransportDescription{}, false
}

// Clone returns a deep copy sharing no storage with d.
func (d *Description) Clone() *Description {
	out := &Description{
		TransportInfos: append([]TransportInfo(nil), d.TransportInfos...),
	}
	for i := range d.Sections {
		out.Sections = append(out.Sections, MediaSection{
			MID:      d.Sections[i].MID,
			Protocol: d.Sections[i].Protocol,
			Media:    d.Sections[i].Media.Clone(),
		})
	}
	for i := range d.Groups {
		out.Groups = append(out.Groups, d.Groups[i].clone())
	}
	return out
}

// SessionDescription pairs a description body with its negotiation role and
// session identity.
type SessionDescription struct {
	Type        SDPType
	ID          uint64
	Version     uint64
	Description *Description
}

// NewSessionDescription wraps desc with a fresh random session id, the way a
// newly created local description carries one.
func NewSessionDescription(sdpType SDPType, desc *Description) *SessionDescription {
	return &SessionDescription{
		Type:        sdpType,
		ID:          globalMathRandomGenerator.Uint64(),
		Version:     2,
		Description: desc,
	}
}

// Clone returns a deep copy sharing no storage with s.
func (s *SessionDescription) Clone() *SessionDescription {
	return &SessionDescription{
		Type:        s.Type,
		ID:          s.ID,
		Version:     s.Version,
		Description: s.Description.Clone(),
	}
}
