package lexer

const maxRawMarker = 16

// forbiddenRawMarkerByte reports whether c may not appear in a raw string
// d-char-sequence: the double quote, space, ')', backslash, and the
// whitespace control characters tab/vtab/formfeed/newline. '(' ends the
// sequence and is handled by the caller before this check.
func forbiddenRawMarkerByte(c byte) bool {
	switch c {
	case '"', ')', ' ', '\\', '\t', '\v', '\f', '\n':
		return true
	}
	return false
}

// rawStringMarker scans a raw string's d-char-sequence up to and
// including the opening '(', returning the delimiter bytes read (never
// including the '(') and whether the delimiter was well formed. On a
// malformed delimiter the returned bytes are whatever was consumed
// before the problem was detected, including the offending byte itself,
// and the caller falls back to treating the literal as an ordinary
// double-quoted string.
func (s *Scanner) rawStringMarker() ([]byte, bool) {
	var marker []byte
	for {
		c, ok := s.src.get()
		if !ok {
			s.warn("Unexpected EOF in raw string d-char-sequence")
			return marker, false
		}
		if c == '(' {
			return marker, true
		}
		if forbiddenRawMarkerByte(c) || len(marker) >= maxRawMarker {
			marker = append(marker, c)
			if len(marker) > maxRawMarker {
				s.warn("Too long a raw string d-char-sequence")
			} else {
				s.warnf("Invalid mark character (code %d) in d-char-sequence", c)
			}
			return marker, false
		}
		marker = append(marker, c)
	}
}

// scanRawString is entered with the prefix emitted and the opening quote
// consumed but NOT yet emitted; the quote is printed here once it is known whether the delimiter is
// well formed, matching the original's placement of s_putch('"') inside
// parse_raw_string rather than its caller.
func (s *Scanner) scanRawString() {
	startLine := s.src.line
	marker, ok := s.rawStringMarker()
	if !ok {
		s.emit.PutCode('"')
		for _, b := range marker {
			s.putQuoteChar('"', b)
		}
		s.endQuote('"', "string literal")
		return
	}
	s.emit.PutCode('"')
	s.emit.PutCodeString(string(marker))
	s.emit.PutCode('(')
	s.rawStringBody(marker, startLine)
}

// rawStringBody scans for the first occurrence of ")marker\"" following
// the opening "marker(already consumed), applying the configured string
// replacement to content bytes.
//
// The original C implementation (raw_scan_string in scc.c) has a latent
// bug in its false-start handling: when a candidate ")partial-marker"
// run turns out not to match (the next byte is neither the next marker
// byte, nor ')', nor the closing quote), it discards that byte without
// ever writing it to either channel. That silently drops a byte of the
// literal's body. This port fixes it by emitting the mismatching byte
// before resuming the outer scan.
func (s *Scanner) rawStringBody(marker []byte, startLine int) {
	for {
		c, ok := s.src.get()
		if !ok {
			s.warnAt(startLine, "Unexpected EOF in raw string starting at this line")
			return
		}
		if c != ')' {
			s.putQuoteChar('"', c)
			continue
		}

		var matched []byte
		closed := false
		for {
			c2, ok2 := s.src.get()
			if !ok2 {
				s.warnAt(startLine, "Unexpected EOF in raw string starting at this line")
				return
			}
			switch {
			case c2 == '"' && len(matched) == len(marker):
				s.emit.PutCode(')')
				s.emit.PutCodeString(string(marker))
				s.emit.PutCode(c2)
				closed = true
			case len(matched) < len(marker) && c2 == marker[len(matched)]:
				matched = append(matched, c2)
				continue
			case c2 == ')':
				s.putQuoteChar('"', ')')
				for _, b := range matched {
					s.putQuoteChar('"', b)
				}
				matched = matched[:0]
				continue
			default:
				s.putQuoteChar('"', ')')
				for _, b := range matched {
					s.putQuoteChar('"', b)
				}
				s.putQuoteChar('"', c2)
			}
			break
		}
		if closed {
			return
		}
	}
}
