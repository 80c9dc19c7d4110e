package analytics

// SectionMap is an ordered heading -> body mapping for one handoff document.
//
// Headings keep the position of their first occurrence. Setting a heading that
// already exists replaces its body in place (last write wins); this mirrors how
// handoff documents are parsed and is relied on by the extractors.
type SectionMap struct {
	order  []string
	bodies map[string]string
}

// NewSectionMap returns an empty SectionMap ready for use.
func NewSectionMap() *SectionMap {
	return &SectionMap{bodies: make(map[string]string)}
}

// Set stores body under heading, replacing any previous body for the same
// heading while preserving its original position.
func (m *SectionMap) Set(heading, body string) {
	if m.bodies == nil {
		m.bodies = make(map[string]string)
	}
	if _, ok := m.bodies[heading]; !ok {
		m.order = append(m.order, heading)
	}
	m.bodies[heading] = body
}

// Get returns the body for heading and whether the heading exists.
func (m *SectionMap) Get(heading string) (string, bool) {
	if m == nil || m.bodies == nil {
		return "", false
	}
	body, ok := m.bodies[heading]
	return body, ok
}

// Body returns the body for heading, or the empty string when absent.
// Extractors treat a missing section and an empty section identically.
func (m *SectionMap) Body(heading string) string {
	body, _ := m.Get(heading)
	return body
}

// Headings returns the headings in first-occurrence order.
func (m *SectionMap) Headings() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of distinct headings.
func (m *SectionMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}
