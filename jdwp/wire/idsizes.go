// Package wire implements the big-endian primitive codec JDWP packets are
// built from, plus the negotiated identifier widths every ID-typed field
// is encoded with.
package wire

// IDSizes holds the five identifier widths negotiated once per connection
// via the VirtualMachine IDSizes command. Every identifier read or written
// afterwards uses one of these widths.
type IDSizes struct {
	FieldIDSize         int
	MethodIDSize        int
	ObjectIDSize        int
	ReferenceTypeIDSize int
	FrameIDSize         int
}

// DefaultIDSizes is the width set assumed before IDSizes has been queried:
// every width maxed out at 8 bytes, matching the host's widest possible
// identifier until the real values are known.
var DefaultIDSizes = IDSizes{
	FieldIDSize:         8,
	MethodIDSize:        8,
	ObjectIDSize:        8,
	ReferenceTypeIDSize: 8,
	FrameIDSize:         8,
}
