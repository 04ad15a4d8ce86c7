package lexer

// regPrefixes and rawPrefixes are the valid encoding prefixes that may
// precede a string literal's opening double quote.
var regPrefixes = map[string]bool{"L": true, "u": true, "U": true, "u8": true}
var rawPrefixes = map[string]bool{"R": true, "LR": true, "uR": true, "UR": true, "u8R": true}

func isValidDQPrefix(p string) bool { return regPrefixes[p] || rawPrefixes[p] }

// couldStartStringPrefix reports whether c is one of the letters that
// can begin a string- or character-literal encoding prefix.
func couldStartStringPrefix(c byte) bool {
	switch c {
	case 'U', 'u', 'L', 'R', '8':
		return true
	}
	return false
}

func isIdentChar(c byte) bool { return isAlnum(c) || c == '_' }

// scanIdentifier is entered having already consumed and not yet emitted
// the identifier's first character.
func (s *Scanner) scanIdentifier(c byte) {
	if couldStartStringPrefix(c) {
		s.scanPossiblePrefix(c)
		return
	}
	s.emit.PutCode(c)
	s.readRemainderOfIdentifier()
}

func (s *Scanner) readRemainderOfIdentifier() {
	for {
		pc, ok := s.src.peek()
		if !ok || !isIdentChar(pc) {
			return
		}
		b, _ := s.src.get()
		s.emit.PutCode(b)
	}
}

// scanPossiblePrefix scans an identifier that might turn out to be a
// string- or character-literal encoding prefix (L, u, U, u8, and the raw
// variants). Oddly, but faithfully to the original, whether the prefix
// is one of the valid spellings only matters when it is followed by a
// double quote; followed by a single quote, the prefix text is printed
// and the quote is processed exactly as if no prefix had preceded it.
func (s *Scanner) scanPossiblePrefix(c byte) {
	prefix := []byte{c}
	for {
		pc, ok := s.src.peek()
		if !ok {
			s.emit.PutCodeString(string(prefix))
			return
		}
		switch {
		case pc == '\'':
			s.emit.PutCodeString(string(prefix))
			qc, _ := s.src.get()
			s.nonComment(qc)
			return
		case pc == '"':
			qc, _ := s.src.get()
			if isValidDQPrefix(string(prefix)) {
				s.scanPrefixedString(string(prefix), qc)
			} else {
				s.emit.PutCodeString(string(prefix))
				s.nonComment(qc)
			}
			return
		case couldStartStringPrefix(pc):
			b, _ := s.src.get()
			prefix = append(prefix, b)
			if len(prefix) > 3 {
				s.emit.PutCodeString(string(prefix))
				s.readRemainderOfIdentifier()
				return
			}
		default:
			s.emit.PutCodeString(string(prefix))
			s.readRemainderOfIdentifier()
			return
		}
	}
}

// scanPrefixedString is entered having peeked-and-consumed the opening
// quote of a literal with a confirmed-valid prefix; the quote itself has
// not yet been emitted.
func (s *Scanner) scanPrefixedString(prefix string, quote byte) {
	if rawPrefixes[prefix] {
		if !s.cfg.Features.RawString {
			s.warnStdFeature("Raw string")
		}
		s.emit.PutCodeString(prefix)
		s.scanRawString()
		return
	}
	if prefix != "L" && !s.cfg.Features.UnicodeLiteral {
		s.warnStdFeature("Unicode feature")
	}
	s.emit.PutCodeString(prefix)
	s.nonComment(quote)
}

// scanUCN scans a \u or \U universal character name. The backslash has
// already been consumed but not emitted; letter ('u' or 'U') has been
// peeked but not consumed.
func (s *Scanner) scanUCN(letter byte, nbytes int) {
	if !s.cfg.Features.UniversalCharNames {
		s.warnStdFeature("Universal character names")
	}
	s.emit.PutCode('\\')
	c, _ := s.src.get() // the letter itself
	s.emit.PutCode(c)

	ok := true
	var consumed []byte
	for i := 0; i < nbytes; i++ {
		b, got := s.src.get()
		if !got {
			ok = false
			break
		}
		if !isHexDigit(b) {
			ok = false
			s.emit.PutCode(b)
			break
		}
		consumed = append(consumed, b)
		s.emit.PutCode(b)
	}
	if !ok {
		s.warnf("Invalid UCN \\%c%s detected", letter, consumed)
	}
}
