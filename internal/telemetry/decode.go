package telemetry

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// DecodeError reports a datagram that is not a JSON object. It is
// recoverable: the frame is skipped.
type DecodeError struct {
	Len    int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("telemetry: decode %d byte frame: %s", e.Len, e.Reason)
}

// Decode parses one datagram payload. Missing sections decode as empty
// sections.
func Decode(b []byte) (Document, error) {
	if !gjson.ValidBytes(b) {
		return Document{}, &DecodeError{Len: len(b), Reason: "malformed or truncated json"}
	}
	// ParseBytes copies, so the caller may reuse b.
	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return Document{}, &DecodeError{Len: len(b), Reason: "top level is not an object"}
	}

	return Document{
		Physics:  section(root, KeyPhysics),
		Graphics: section(root, KeyGraphics),
		Statics:  section(root, KeyStatics),
	}, nil
}

func section(root gjson.Result, key string) Section {
	r := root.Get(key)
	if !r.IsObject() {
		return Section{}
	}
	return Section{res: r}
}
