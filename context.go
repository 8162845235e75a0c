package sdpatch

import "fmt"

// simulcastSectionInfo captures the identity and wiring of one simulcast
// media section as it appeared in the original offer. Immutable once
// registered.
type simulcastSectionInfo struct {
	mid      string
	protocol MediaProtocolType
	rids     []string

	midExtension  RTPHeaderExtension
	ridExtension  RTPHeaderExtension
	rridExtension RTPHeaderExtension

	simulcast SimulcastDescription
	transport TransportDescription
}

func newSimulcastSectionInfo(mid string, protocol MediaProtocolType, rids []RIDDescription) *simulcastSectionInfo {
	info := &simulcastSectionInfo{mid: mid, protocol: protocol}
	for _, rid := range rids {
		info.rids = append(info.rids, rid.RID)
	}
	return info
}

// signalingContext is the per negotiation state of a SignalingInterceptor.
// Both lookup maps are views over the records held in simulcastInfos; each
// record is allocated individually so the map values stay valid as the slice
// grows.
type signalingContext struct {
	midsOrder      []string
	simulcastInfos []*simulcastSectionInfo

	infoByMID map[string]*simulcastSectionInfo
	infoByRID map[string]*simulcastSectionInfo
}

func newSignalingContext() *signalingContext {
	return &signalingContext{
		infoByMID: map[string]*simulcastSectionInfo{},
		infoByRID: map[string]*simulcastSectionInfo{},
	}
}

func (c *signalingContext) hasSimulcast() bool {
	return len(c.simulcastInfos) > 0
}

// addSimulcastInfo registers info under its mid and every rid. Registering a
// mid or rid twice within one negotiation is a caller defect.
func (c *signalingContext) addSimulcastInfo(info *simulcastSectionInfo) {
	if _, ok := c.infoByMID[info.mid]; ok {
		panic(fmt.Errorf("%w: %q", ErrDuplicateMID, info.mid))
	}
	c.simulcastInfos = append(c.simulcastInfos, info)
	c.infoByMID[info.mid] = info
	for _, rid := range info.rids {
		if _, ok := c.infoByRID[rid]; ok {
			panic(fmt.Errorf("%w: %q", ErrDuplicateRID, rid))
		}
		c.infoByRID[rid] = info
	}
}
