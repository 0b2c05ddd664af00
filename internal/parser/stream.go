package parser

// stream is a cursor over the items of one course.
type stream struct {
	items []item
	pos   int
}

func newStream(items []item) *stream {
	return &stream{items: items}
}

func (s *stream) next() (*item, bool) {
	if s.pos >= len(s.items) {
		return nil, false
	}
	it := &s.items[s.pos]
	s.pos++
	return it, true
}

// lookahead peeks offset items past the cursor, 0 being the next item.
func (s *stream) lookahead(offset int) (*item, bool) {
	i := s.pos + offset
	if offset < 0 || i >= len(s.items) {
		return nil, false
	}
	return &s.items[i], true
}

// lastLine is the line of the most recently consumed item.
func (s *stream) lastLine() int {
	if s.pos == 0 {
		return 0
	}
	return s.items[s.pos-1].Line
}

// measureLength counts the note slots, rests included, from the cursor up to
// and including the next measure end. Stops early at #END.
func (s *stream) measureLength() int {
	count := 0
	for i := 0; ; i++ {
		it, ok := s.lookahead(i)
		if !ok || it.Kind == itemEnd || it.Kind == itemStart {
			return count
		}
		if it.Kind != itemRow {
			continue
		}
		count += len(it.Codes)
		if it.MeasureEnd {
			return count
		}
	}
}
