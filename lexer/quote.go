package lexer

// endQuote scans the body of a character constant or string literal
// (whose opening quote q has already been consumed and emitted) up to
// and including its closing quote. what names the kind of literal, for
// diagnostic messages ("character constant" or "string literal").
func (s *Scanner) endQuote(q byte, what string) {
	for {
		c, ok := s.src.get()
		if !ok {
			s.warnf("EOF in %s", what)
			return
		}
		if c == q {
			break
		}
		s.putQuoteChar(q, c)
		if c == '\\' {
			c2, ok2 := s.src.get()
			if !ok2 {
				s.warnf("EOF in %s", what)
				return
			}
			s.putQuoteChar(q, c2)
			if (c2 == 'u' || c2 == 'U') && !s.cfg.Features.UniversalCharNames {
				s.warnStdFeature("Universal character names")
			}
			if c2 == '\\' {
				if pc, ok3 := s.src.peek(); ok3 && pc == '\n' {
					nl, _ := s.src.get()
					s.emit.PutCode(nl)
				}
			}
		} else if c == '\n' {
			s.warnAt(s.src.line-1, "newline in %s", what)
		}
	}
	s.emit.PutCode(q)
}
