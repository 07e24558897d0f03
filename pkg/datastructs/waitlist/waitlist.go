package waitlist

// node holds one customer and owns the link to its successor.
// A nil next marks the tail.
type node struct {
	name string
	next *node
}

// Waitlist is an ordered queue of customer names backed by a singly linked list.
// The zero value is an empty waitlist ready to use.
//
// Waitlist is not safe for concurrent use. Callers sharing one instance across
// goroutines must serialize access themselves.
type Waitlist struct {
	head *node
	size int
}

// New returns an empty waitlist.
func New() *Waitlist {
	return &Waitlist{}
}

// AddFront puts name at the head of the waitlist. O(1).
func (w *Waitlist) AddFront(name string) Added {
	w.head = &node{name: name, next: w.head}
	w.size++
	return Added{Name: name, Position: Front}
}

// AddEnd appends name after the current tail. O(n).
func (w *Waitlist) AddEnd(name string) Added {
	n := &node{name: name}
	w.size++

	if w.head == nil {
		w.head = n
		return Added{Name: name, Position: End}
	}

	tail := w.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = n
	return Added{Name: name, Position: End}
}

// Remove unlinks the first entry equal to name, scanning from the head.
// The comparison is exact. An empty waitlist or a missing name leaves the
// chain untouched and reports NotFound.
func (w *Waitlist) Remove(name string) Removal {
	if w.head == nil {
		return Removal{Name: name, Outcome: NotFound}
	}

	if w.head.name == name {
		old := w.head
		w.head = old.next
		old.next = nil
		w.size--
		return Removal{Name: name, Outcome: Removed}
	}

	for prev, curr := w.head, w.head.next; curr != nil; prev, curr = curr, curr.next {
		if curr.name != name {
			continue
		}
		prev.next = curr.next
		curr.next = nil
		w.size--
		return Removal{Name: name, Outcome: Removed}
	}

	return Removal{Name: name, Outcome: NotFound}
}

// Snapshot returns the names from head to tail without modifying the chain.
func (w *Waitlist) Snapshot() Snapshot {
	if w.head == nil {
		return Snapshot{}
	}

	names := make([]string, 0, w.size)
	w.Each(func(name string) bool {
		names = append(names, name)
		return true
	})
	return Snapshot{names: names}
}

// Each calls fn for every name from head to tail until fn returns false.
// fn must not modify the waitlist.
func (w *Waitlist) Each(fn func(name string) bool) {
	for curr := w.head; curr != nil; curr = curr.next {
		if !fn(curr.name) {
			return
		}
	}
}

// Len returns the number of entries.
func (w *Waitlist) Len() int {
	return w.size
}

// Empty reports whether the waitlist has no entries.
func (w *Waitlist) Empty() bool {
	return w.head == nil
}

// Reset releases every node and leaves the waitlist empty.
func (w *Waitlist) Reset() {
	for curr := w.head; curr != nil; {
		next := curr.next
		curr.next = nil
		curr = next
	}
	w.head = nil
	w.size = 0
}
