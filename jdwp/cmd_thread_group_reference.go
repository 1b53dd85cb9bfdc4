package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type threadGroupRequest struct{ Group ThreadGroupID }

func (r threadGroupRequest) encode(w *wire.Writer) error { return r.Group.encode(w) }

// ThreadGroupName returns group's name.
func (s *Session) ThreadGroupName(group ThreadGroupID) (string, error) {
	return sendCommand(s, 12, 1, threadGroupRequest{Group: group}, (*wire.Reader).ReadString)
}

// ThreadGroupParent returns the thread group containing group, or zero if
// group is a top-level group.
func (s *Session) ThreadGroupParent(group ThreadGroupID) (ThreadGroupID, error) {
	return sendCommand(s, 12, 2, threadGroupRequest{Group: group}, readThreadGroupID)
}

// ThreadGroupChildrenReply lists the live threads and active thread groups
// directly contained in a thread group. Children of child groups are not
// included.
type ThreadGroupChildrenReply struct {
	ChildThreads []ThreadID
	ChildGroups  []ThreadGroupID
}

func decodeThreadGroupChildrenReply(r *wire.Reader) (ThreadGroupChildrenReply, error) {
	var rep ThreadGroupChildrenReply
	var err error
	if rep.ChildThreads, err = wire.ReadSlice(r, readThreadID); err != nil {
		return rep, err
	}
	rep.ChildGroups, err = wire.ReadSlice(r, readThreadGroupID)
	return rep, err
}

// ThreadGroupChildren returns the live threads and active thread groups
// directly contained in group.
func (s *Session) ThreadGroupChildren(group ThreadGroupID) (ThreadGroupChildrenReply, error) {
	return sendCommand(s, 12, 3, threadGroupRequest{Group: group}, decodeThreadGroupChildrenReply)
}
