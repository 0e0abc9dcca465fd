package lz78

// widthSchedule tracks the back-reference width. Encoder and decoder step it
// identically, once per phrase after the first, so the widths are never stored.
type widthSchedule struct {
	width     int // bits of the back-reference field for the next phrase
	remaining int // phrases left at this width
}

// newWidthSchedule returns the state right after phrase 0.
func newWidthSchedule() widthSchedule {
	return widthSchedule{width: 1, remaining: 1}
}

// advance moves past one phrase coded at the current width.
func (s *widthSchedule) advance() {
	s.remaining--
	if s.remaining == 0 {
		s.width++
		s.remaining = 1 << (s.width - 1)
	}
}
