package harvest

import "github.com/fwojciec/linkharvest"

// ExclusionSet holds the boilerplate elements of one page: every element
// matched by an exclusion selector together with all of its descendants.
type ExclusionSet struct {
	members map[linkharvest.Element]struct{}
	matched map[linkharvest.Element]struct{}
}

// ComputeExclusions matches selectors against the descendants of root.
// Selectors that fail to compile are skipped; the rest still apply.
func ComputeExclusions(root linkharvest.Element, selectors []string) *ExclusionSet {
	s := &ExclusionSet{
		members: make(map[linkharvest.Element]struct{}),
		matched: make(map[linkharvest.Element]struct{}),
	}
	if root == nil {
		return s
	}
	for _, selector := range selectors {
		matches, err := root.QueryAll(selector)
		if err != nil {
			continue
		}
		for _, el := range matches {
			s.matched[el] = struct{}{}
			s.addSubtree(el)
		}
	}
	return s
}

func (s *ExclusionSet) addSubtree(el linkharvest.Element) {
	if _, ok := s.members[el]; ok {
		return
	}
	s.members[el] = struct{}{}
	for _, child := range el.Children() {
		s.addSubtree(child)
	}
}

// Has reports whether el is boilerplate.
func (s *ExclusionSet) Has(el linkharvest.Element) bool {
	_, ok := s.members[el]
	return ok
}

// Len returns the number of excluded elements.
func (s *ExclusionSet) Len() int {
	return len(s.members)
}

// ExcludedWithin reports whether el sits in a boilerplate region that
// begins strictly below root. Regions enclosing root itself are ignored,
// so a chosen content root always keeps its links.
func (s *ExclusionSet) ExcludedWithin(el, root linkharvest.Element) bool {
	for cur := el; cur != nil && cur != root; cur = cur.Parent() {
		if _, ok := s.matched[cur]; ok {
			return true
		}
	}
	return false
}
