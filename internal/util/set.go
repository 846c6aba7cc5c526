package util

// OrderedStrSet is a set of strings that remembers the order its elements
// were first added in. The zero value is not usable; create one with
// NewOrderedStrSet.
type OrderedStrSet struct {
	members map[string]bool
	order   []string
}

// NewOrderedStrSet creates an empty OrderedStrSet containing the given initial
// elements, in the order given.
func NewOrderedStrSet(elements ...string) *OrderedStrSet {
	s := &OrderedStrSet{
		members: make(map[string]bool),
	}
	for _, el := range elements {
		s.Add(el)
	}
	return s
}

// Add adds the given element to the set. If the element is already in the
// set, no effect occurs and its original position is retained.
func (s *OrderedStrSet) Add(element string) {
	if s.members[element] {
		return
	}
	s.members[element] = true
	s.order = append(s.order, element)
}

// Remove removes the given element from the set. If the element is already
// not in the set, no effect occurs.
func (s *OrderedStrSet) Remove(element string) {
	if !s.members[element] {
		return
	}
	delete(s.members, element)
	for i := range s.order {
		if s.order[i] == element {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Has returns whether the set contains the specified element.
func (s *OrderedStrSet) Has(element string) bool {
	return s.members[element]
}

// Len returns the number of elements in the set.
func (s *OrderedStrSet) Len() int {
	return len(s.order)
}

// Empty returns whether the set has no elements.
func (s *OrderedStrSet) Empty() bool {
	return len(s.order) == 0
}

// Elements returns the elements of the set in insertion order. The returned
// slice is a copy and may be freely modified by the caller.
func (s *OrderedStrSet) Elements() []string {
	elems := make([]string, len(s.order))
	copy(elems, s.order)
	return elems
}
