// Package suggest holds the bounded suggestion list and its selection cursor.
package suggest

// DefaultMaxResults matches the launcher's default max_results.
const DefaultMaxResults = 20

// List is an ordered, duplicate-free set of candidate names with a
// selection cursor. It never holds more than its capacity.
type List struct {
	names    []string
	selected int
	max      int
}

// NewList creates an empty list holding at most limit names.
// A non-positive limit falls back to DefaultMaxResults.
func NewList(limit int) *List {
	if limit <= 0 {
		limit = DefaultMaxResults
	}
	return &List{
		names: make([]string, 0, limit),
		max:   limit,
	}
}

// Cap returns the maximum number of names.
func (l *List) Cap() int { return l.max }

// Len returns the number of names.
func (l *List) Len() int { return len(l.names) }

// Empty reports whether the list has no names.
func (l *List) Empty() bool { return len(l.names) == 0 }

// Full reports whether Add would drop the next name.
func (l *List) Full() bool { return len(l.names) >= l.max }

// Names returns a copy of the names in order.
func (l *List) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Selected returns the cursor position. It is 0 on an empty list.
func (l *List) Selected() int { return l.selected }

// SelectedName returns the highlighted name, if any.
func (l *List) SelectedName() (string, bool) {
	if len(l.names) == 0 {
		return "", false
	}
	return l.names[l.selected], true
}

// First returns the name at index 0, if any.
func (l *List) First() (string, bool) {
	if len(l.names) == 0 {
		return "", false
	}
	return l.names[0], true
}

// Contains reports whether name is in the list.
// Linear on purpose: the list is small and order must be preserved.
func (l *List) Contains(name string) bool {
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}

// Add appends name unless the list is full or already holds it.
// It reports whether name was added.
func (l *List) Add(name string) bool {
	if l.Full() || l.Contains(name) {
		return false
	}
	l.names = append(l.names, name)
	return true
}

// Remove deletes name, keeping the order of the rest, and clamps the cursor.
// It reports whether name was present.
func (l *List) Remove(name string) bool {
	for i, n := range l.names {
		if n == name {
			l.names = append(l.names[:i], l.names[i+1:]...)
			l.clamp()
			return true
		}
	}
	return false
}

// MoveDown advances the cursor, stopping at the last name.
func (l *List) MoveDown() {
	if l.selected < len(l.names)-1 {
		l.selected++
	}
}

// MoveUp moves the cursor back, stopping at 0.
func (l *List) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// ResetSelection puts the cursor back on the first name.
func (l *List) ResetSelection() {
	l.selected = 0
}

// Clear drops every name and resets the cursor.
func (l *List) Clear() {
	clear(l.names)
	l.names = l.names[:0]
	l.selected = 0
}

// clamp keeps the cursor inside [0, len-1], or at 0 when empty.
func (l *List) clamp() {
	if l.selected >= len(l.names) {
		l.selected = len(l.names) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}
