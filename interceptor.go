package sdpatch

import (
	"fmt"

	"github.com/pion/logging"
	"github.com/pion/sdp/v3"
)

// SignalingInterceptor rewrites offers, answers and ICE candidates so that a
// single simulcast media section travels as one plain section per encoding
// layer, and reassembles the original shape on the way back.
//
// Every patch operation returns a (local, remote) pair: local is kept as the
// caller's authoritative record, remote is what goes on the wire. The input
// description is consumed by the call and must not be used afterwards.
//
// One interceptor serves exactly one negotiation (one local peer's view of
// one connection). It is not safe for concurrent use.
type SignalingInterceptor struct {
	log     logging.LeveledLogger
	context *signalingContext
}

// NewSignalingInterceptor creates an interceptor for a single negotiation.
// A nil loggerFactory falls back to the default factory.
func NewSignalingInterceptor(loggerFactory logging.LoggerFactory) *SignalingInterceptor {
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}
	return &SignalingInterceptor{
		log:     loggerFactory.NewLogger("sdpatch"),
		context: newSignalingContext(),
	}
}

// fillContext records the original section order and registers a
// simulcastSectionInfo for every video section that negotiated simulcast.
// The offer is normalized in place: its rids become send direction entries
// and its simulcast descriptor is rebuilt from them, one independent
// unpaused send layer per rid.
func (i *SignalingInterceptor) fillContext(offer *SessionDescription) {
	for idx := range offer.Description.Sections {
		section := &offer.Description.Sections[idx]
		i.context.midsOrder = append(i.context.midsOrder, section.MID)

		media := section.Media
		if media.Kind != MediaKindVideo || !media.HasSimulcast() {
			continue
		}

		// Only single stream simulcast sections with rids are supported.
		if len(media.Streams) != 1 {
			panic(fmt.Errorf("%w: section %q has %d", ErrSimulcastStreamCount, section.MID, len(media.Streams)))
		}
		if !media.Streams[0].HasRIDs() {
			panic(fmt.Errorf("%w: section %q", ErrSimulcastNoRIDs, section.MID))
		}

		info := newSimulcastSectionInfo(section.MID, section.Protocol, media.Streams[0].RIDs)

		rids := make([]RIDDescription, 0, len(info.rids))
		simulcast := SimulcastDescription{}
		for _, rid := range info.rids {
			rids = append(rids, RIDDescription{RID: rid, Direction: RIDDirectionSend})
			simulcast.Send.AddLayer(SimulcastLayer{RID: rid})
		}
		media.Streams[0].RIDs = rids
		media.Simulcast = simulcast
		info.simulcast = media.Simulcast.clone()

		for _, extension := range media.HeaderExtensions {
			switch extension.URI {
			case sdp.SDESMidURI:
				info.midExtension = extension
			case sdp.SDESRTPStreamIDURI:
				info.ridExtension = extension
			case sdesRepairRTPStreamIDURI:
				info.rridExtension = extension
			}
		}
		if info.ridExtension.ID == 0 {
			panic(fmt.Errorf("%w: rid, section %q", ErrExtensionNotNegotiated, section.MID))
		}
		if info.midExtension.ID == 0 {
			panic(fmt.Errorf("%w: mid, section %q", ErrExtensionNotNegotiated, section.MID))
		}

		transport, ok := offer.Description.TransportByMID(info.mid)
		if !ok {
			panic(fmt.Errorf("%w: %q", ErrNoTransportDescription, info.mid))
		}
		info.transport = transport

		i.context.addSimulcastInfo(info)
		i.log.Tracef("registered simulcast section %q with rids %v", info.mid, info.rids)
	}
}

// PatchOffer consumes offer and returns the description pair for the offerer
// side. Without simulcast sections the remote copy is a verbatim clone;
// otherwise every simulcast section is split into one plain section per rid
// before it goes on the wire.
func (i *SignalingInterceptor) PatchOffer(offer *SessionDescription) (local, remote *SessionDescription) {
	i.fillContext(offer)
	if !i.context.hasSimulcast() {
		return offer, offer.Clone()
	}

	desc := offer.Description.Clone()
	for _, info := range i.context.simulcastInfos {
		// The original section is lifted out as a prototype, stripped of its
		// layer metadata and replicated under each rid.
		section := desc.SectionByMID(info.mid)
		if section == nil {
			panic(fmt.Errorf("%w: %q", ErrSectionNotFound, info.mid))
		}
		prototype := section.Media.Clone()
		if !desc.RemoveSectionByMID(info.mid) {
			panic(fmt.Errorf("%w: %q", ErrSectionNotFound, info.mid))
		}

		// The remote peer resolves each split section by its own mid, so the
		// rid and repaired rid extensions are dropped and the mid extension
		// moves into the id slot the peer expects layer ids in.
		extensions := make([]RTPHeaderExtension, 0, len(prototype.HeaderExtensions))
		for _, extension := range prototype.HeaderExtensions {
			switch extension.URI {
			case sdp.SDESRTPStreamIDURI, sdesRepairRTPStreamIDURI:
				continue
			case sdp.SDESMidURI:
				extension.ID = info.ridExtension.ID
			}
			extensions = append(extensions, extension)
		}
		prototype.HeaderExtensions = extensions

		if len(prototype.Streams) != 1 {
			panic(fmt.Errorf("%w: section %q has %d", ErrSimulcastStreamCount, info.mid, len(prototype.Streams)))
		}
		if !prototype.Streams[0].HasRIDs() {
			panic(fmt.Errorf("%w: section %q", ErrSimulcastNoRIDs, info.mid))
		}
		prototype.Streams[0].RIDs = nil
		prototype.Simulcast = SimulcastDescription{}

		for _, rid := range info.rids {
			desc.AddSection(rid, info.protocol, prototype.Clone())
		}
	}

	rebuildBundleGroup(desc)

	// Transport entries of the removed simulcast sections are replaced by one
	// entry per rid, reusing the snapshot captured from the offer.
	transportInfos := make([]TransportInfo, 0, len(desc.TransportInfos))
	for _, transportInfo := range desc.TransportInfos {
		if _, ok := i.context.infoByMID[transportInfo.MID]; ok {
			continue
		}
		transportInfos = append(transportInfos, transportInfo)
	}
	for _, info := range i.context.simulcastInfos {
		for _, rid := range info.rids {
			transportInfos = append(transportInfos, TransportInfo{MID: rid, Transport: info.transport})
		}
	}
	desc.TransportInfos = transportInfos

	i.log.Debugf("patched offer: split %d simulcast sections into %d rid sections",
		len(i.context.simulcastInfos), len(i.context.infoByRID))

	remote = &SessionDescription{
		Type:        SDPTypeOffer,
		ID:          offer.ID,
		Version:     offer.Version,
		Description: desc,
	}
	return offer, remote
}

// restoreMediaSectionsOrder returns a description whose sections mirror the
// original offer's count and order, drawing each section's content from
// source by mid.
func (i *SignalingInterceptor) restoreMediaSectionsOrder(source *Description) *Description {
	out := source.Clone()
	for _, mid := range i.context.midsOrder {
		if !out.RemoveSectionByMID(mid) {
			panic(fmt.Errorf("%w: %q", ErrSectionNotFound, mid))
		}
	}
	if len(out.Sections) != 0 {
		panic(fmt.Errorf("%w: %d left", ErrSectionsRemain, len(out.Sections)))
	}
	for _, mid := range i.context.midsOrder {
		section := source.SectionByMID(mid)
		if section == nil {
			panic(fmt.Errorf("%w: %q", ErrSectionNotFound, mid))
		}
		out.AddSection(mid, section.Protocol, section.Media.Clone())
	}
	return out
}

// PatchAnswer consumes answer and returns the description pair for the
// offerer side of the answer leg. The rid sections the split offer produced
// are merged back into one simulcast section per original mid, in the
// original section order.
func (i *SignalingInterceptor) PatchAnswer(answer *SessionDescription) (local, remote *SessionDescription) {
	if !i.context.hasSimulcast() {
		return answer, answer.Clone()
	}

	desc := answer.Description.Clone()
	for _, info := range i.context.simulcastInfos {
		// The section named by the first rid supplies the content the merged
		// simulcast section is rebuilt from.
		section := desc.SectionByMID(info.rids[0])
		if section == nil {
			panic(fmt.Errorf("%w: %q", ErrSectionNotFound, info.rids[0]))
		}
		media := section.Media.Clone()

		for _, rid := range info.rids {
			if !desc.RemoveSectionByMID(rid) {
				panic(fmt.Errorf("%w: %q", ErrSectionNotFound, rid))
			}
		}

		// Restore the pre split mid/rid wiring captured from the offer.
		extensions := make([]RTPHeaderExtension, 0, len(media.HeaderExtensions))
		for _, extension := range media.HeaderExtensions {
			switch extension.URI {
			case sdp.SDESMidURI, sdp.SDESRTPStreamIDURI, sdesRepairRTPStreamIDURI:
				continue
			}
			extensions = append(extensions, extension)
		}
		extensions = append(extensions, info.midExtension, info.ridExtension)
		media.HeaderExtensions = extensions

		// The merged section receives every layer the offer sent.
		if len(media.Streams) != 0 {
			panic(fmt.Errorf("%w: section %q has %d", ErrUnexpectedStreams, info.rids[0], len(media.Streams)))
		}
		rids := make([]RIDDescription, 0, len(info.rids))
		for _, rid := range info.rids {
			rids = append(rids, RIDDescription{RID: rid, Direction: RIDDirectionRecv})
		}
		media.Streams = []StreamDescription{{RIDs: rids}}

		simulcast := SimulcastDescription{}
		for _, layer := range info.simulcast.Send {
			simulcast.Receive.AddLayerWithAlternatives(layer)
		}
		media.Simulcast = simulcast

		desc.AddSection(info.mid, info.protocol, media)
	}

	desc = i.restoreMediaSectionsOrder(desc)
	rebuildBundleGroup(desc)

	// Exactly one transport entry per original simulcast section, carried
	// over from whichever rid section supplied it first.
	midToTransport := map[string]TransportDescription{}
	transportInfos := make([]TransportInfo, 0, len(desc.TransportInfos))
	for _, transportInfo := range desc.TransportInfos {
		if info, ok := i.context.infoByRID[transportInfo.MID]; ok {
			if _, collected := midToTransport[info.mid]; !collected {
				midToTransport[info.mid] = transportInfo.Transport
			}
			continue
		}
		transportInfos = append(transportInfos, transportInfo)
	}
	for _, info := range i.context.simulcastInfos {
		transport, ok := midToTransport[info.mid]
		if !ok {
			panic(fmt.Errorf("%w: %q", ErrNoTransportDescription, info.mid))
		}
		transportInfos = append(transportInfos, TransportInfo{MID: info.mid, Transport: transport})
	}
	desc.TransportInfos = transportInfos

	i.log.Debugf("patched answer: merged %d rid sections back into %d simulcast sections",
		len(i.context.infoByRID), len(i.context.simulcastInfos))

	remote = &SessionDescription{
		Type:        SDPTypeAnswer,
		ID:          answer.ID,
		Version:     answer.Version,
		Description: desc,
	}
	return answer, remote
}

// rebuildBundleGroup replaces the BUNDLE group with one spanning every
// section currently present.
func rebuildBundleGroup(desc *Description) {
	bundle := BundleGroup{Semantics: semanticsBundle}
	for _, section := range desc.Sections {
		bundle.MIDs = append(bundle.MIDs, section.MID)
	}
	if desc.HasGroup(semanticsBundle) {
		desc.RemoveGroupBySemantics(semanticsBundle)
	}
	desc.AddGroup(bundle)
}

// PatchOffererICECandidates rewrites candidates arriving at the offerer so
// their attribution matches the wire description: a candidate for a
// simulcast section only becomes meaningful once split, so it is attributed
// to the first rid section.
func (i *SignalingInterceptor) PatchOffererICECandidates(candidates []ICECandidate) []ICECandidate {
	out := make([]ICECandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if info, ok := i.context.infoByMID[candidate.SDPMid]; ok {
			out = append(out, ICECandidate{Candidate: candidate.Candidate, SDPMid: info.rids[0]})
			continue
		}
		out = append(out, candidate)
	}
	if len(out) == 0 {
		panic(ErrEmptyCandidateBatch)
	}
	return out
}

// PatchAnswererICECandidates mirrors PatchOffererICECandidates: a candidate
// for a replicated rid section is attributed back to the simulcast section
// it was split from.
func (i *SignalingInterceptor) PatchAnswererICECandidates(candidates []ICECandidate) []ICECandidate {
	out := make([]ICECandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if info, ok := i.context.infoByRID[candidate.SDPMid]; ok {
			out = append(out, ICECandidate{Candidate: candidate.Candidate, SDPMid: info.mid})
			continue
		}
		out = append(out, candidate)
	}
	if len(out) == 0 {
		panic(ErrEmptyCandidateBatch)
	}
	return out
}
