package jdwp

// packetHeaderSize is the fixed 11-byte JDWP packet header: a u32 length
// (including the header itself), a u32 id, and either a flags+command_set+
// command triple (command packet) or a flags+error_code pair (reply packet).
const packetHeaderSize = 11

const flagsReply = 0x80

// commandID pairs a command set with a command number, e.g. (1, 1) for
// VirtualMachine.Version.
type commandID struct {
	set     uint8
	command uint8
}

// packetHeader is the decoded form of the 11-byte header preceding every
// packet body.
type packetHeader struct {
	length  uint32
	id      uint32
	isReply bool
	cmd     commandID
	errCode ErrorCode
}

func (h packetHeader) bodyLength() int {
	n := int(h.length) - packetHeaderSize
	if n < 0 {
		return 0
	}
	return n
}
