package waitlist

import (
	"fmt"
	"strings"
)

// Position tells which end of the waitlist an entry was added to.
type Position int

const (
	Front Position = iota
	End
)

func (p Position) String() string {
	switch p {
	case Front:
		return "front"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// Added confirms an insertion.
type Added struct {
	Name     string
	Position Position
}

func (a Added) String() string {
	return fmt.Sprintf("%s added to the %s of the waitlist", a.Name, a.Position)
}

// Outcome is the result kind of a removal.
type Outcome int

const (
	NotFound Outcome = iota
	Removed
)

func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not_found"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Removal reports whether Remove unlinked an entry. Name is the matched name
// on success and the searched name otherwise.
type Removal struct {
	Name    string
	Outcome Outcome
}

// Found reports whether an entry was removed.
func (r Removal) Found() bool {
	return r.Outcome == Removed
}

func (r Removal) String() string {
	if r.Found() {
		return fmt.Sprintf("Removed %s from the waitlist", r.Name)
	}
	return fmt.Sprintf("%s not found", r.Name)
}

const (
	emptyMarker   = "The waitlist is empty"
	listingHeader = "Current waitlist:"
)

// Snapshot is an ordered, read-only copy of the waitlist names.
// The zero value is the empty snapshot.
type Snapshot struct {
	names []string
}

// Empty reports whether the snapshot was taken from an empty waitlist.
func (s Snapshot) Empty() bool {
	return len(s.names) == 0
}

// Len returns the number of names in the snapshot.
func (s Snapshot) Len() int {
	return len(s.names)
}

// Names returns a copy of the names from head to tail, or nil when empty.
func (s Snapshot) Names() []string {
	if s.Empty() {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// String renders the snapshot as a listing, one "- name" line per entry,
// or the empty marker.
func (s Snapshot) String() string {
	if s.Empty() {
		return emptyMarker
	}

	var sb strings.Builder
	sb.WriteString(listingHeader)
	for _, name := range s.names {
		sb.WriteString("\n- ")
		sb.WriteString(name)
	}
	return sb.String()
}
