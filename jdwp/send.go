package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

// encoder is implemented by every command's request struct.
type encoder interface {
	encode(*wire.Writer) error
}

// sendCommand writes a request (nil encoder for commands with no request
// fields) and decodes its reply with decode, which must consume the whole
// body or the call fails with SurplusDataError.
func sendCommand[R any](s *Session, set, command uint8, req encoder, decode func(*wire.Reader) (R, error)) (R, error) {
	var zero R

	var encode func(*wire.Writer) error
	if req != nil {
		encode = req.encode
	}

	s.logger.Trace("send", "command", commandName(set, command))
	body, err := s.send(commandID{set: set, command: command}, encode, false)
	if err != nil {
		return zero, err
	}

	br := wire.NewReader(newByteReader(body), s.currentIDSizes())
	reply, err := decode(br)
	if err != nil {
		return zero, err
	}
	if n := br.BytesRead(); n != len(body) {
		return zero, &SurplusDataError{Expected: n, Actual: len(body)}
	}
	return reply, nil
}
