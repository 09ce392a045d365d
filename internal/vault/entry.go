package vault

import (
	"encoding/json"
	"fmt"
)

// Status tells what [Vault.Lookup] found under a key.
type Status int

const (
	// Absent means nothing is stored under the key.
	Absent Status = iota
	// Corrupt means something is stored but it could not be decrypted or
	// parsed. Entry.Reason says which.
	Corrupt
	// Present means Entry.Raw holds a valid JSON document.
	Present
)

func (s Status) String() string {
	switch s {
	case Absent:
		return "absent"
	case Corrupt:
		return "corrupt"
	case Present:
		return "present"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Entry is the result of [Vault.Lookup].
type Entry struct {
	Status Status
	Raw    json.RawMessage
	Reason error
}

// Decode unmarshals a Present entry into target. It reports false for Absent
// and Corrupt entries and for documents that do not fit target.
func (e Entry) Decode(target any) bool {
	if e.Status != Present {
		return false
	}
	return json.Unmarshal(e.Raw, target) == nil
}

// IsValidJSON reports whether v is a string or byte slice holding a JSON
// document. applicable is false for every other type, in which case valid is
// meaningless.
func IsValidJSON(v any) (valid, applicable bool) {
	switch t := v.(type) {
	case string:
		return json.Valid([]byte(t)), true
	case []byte:
		return json.Valid(t), true
	case json.RawMessage:
		return json.Valid(t), true
	default:
		return false, false
	}
}
