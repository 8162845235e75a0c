package sdpatch

import "errors"

// Contract violations detected while patching. Each of them marks a defect in
// the caller or in upstream negotiation, never a transient condition, so they
// are raised as panics wrapping these sentinels instead of being returned.
var (
	ErrNoMatchingCodecs       = errors.New("no supported codec matches the requested capability")
	ErrSimulcastStreamCount   = errors.New("simulcast section must carry exactly one stream")
	ErrSimulcastNoRIDs        = errors.New("simulcast stream declares no rids")
	ErrExtensionNotNegotiated = errors.New("header extension was not negotiated")
	ErrNoTransportDescription = errors.New("no transport description for section")
	ErrDuplicateMID           = errors.New("section id registered twice")
	ErrDuplicateRID           = errors.New("rid registered twice")
	ErrSectionNotFound        = errors.New("media section not found")
	ErrUnexpectedStreams      = errors.New("answer section already carries streams")
	ErrSectionsRemain         = errors.New("sections remain after removing the original order")
	ErrEmptyCandidateBatch    = errors.New("patched candidate batch is empty")
)

// ErrUnknownType indicates an enum value that has no string representation.
var ErrUnknownType = errors.New("unknown")

// Decoding errors returned by the JSON unmarshalers.
var (
	errInvalidSDPTypeString   = errors.New("invalid SDPType")
	errInvalidMediaKindString = errors.New("invalid MediaKind")
)
