package lexer

// digitKind discriminates which digit alphabet applies on either side of
// a C++14 digit-separator apostrophe. The original C implementation
// passes a function pointer (isdigit, isxdigit, is_octal, is_binary);
// Go's lack of an equally terse function-pointer idiom here is better
// served by a small enum plus one dispatch function than by four nearly
// identical closures.
type digitKind int

const (
	digitDecimal digitKind = iota
	digitHex
	digitOctal
	digitBinary
)

func isDigitOfKind(k digitKind, c byte) bool {
	switch k {
	case digitHex:
		return isHexDigit(c)
	case digitOctal:
		return isOctDigit(c)
	case digitBinary:
		return c == '0' || c == '1'
	default:
		return isDecDigit(c)
	}
}

// checkPunct consumes a digit-separator apostrophe already confirmed
// present by peek, validating the digits on either side of it. It
// returns the byte that should be treated as the new "previous
// character" for subsequent separator checks: the byte following the
// apostrophe, or the apostrophe itself if scanning cannot continue.
func (s *Scanner) checkPunct(prevChar byte, kind digitKind) byte {
	sq, _ := s.src.get()
	s.emit.PutCode(sq)
	if !s.cfg.Features.NumPunct {
		s.warnStdFeature("Numeric punctuation")
	}
	if !isDigitOfKind(kind, prevChar) {
		s.warn("Single quote in numeric context not preceded by a valid digit")
	}
	pc, ok := s.src.peek()
	if !ok {
		s.warn("Single quote in numeric context followed by EOF")
		return sq
	}
	if !isDigitOfKind(kind, pc) {
		s.warn("Single quote in numeric context not followed by a valid digit")
	}
	return pc
}

func (s *Scanner) parseExponent() {
	c, _ := s.src.get() // e, E, p, or P
	s.emit.PutCode(c)
	count := 0
	if pc, ok := s.src.peek(); ok && (pc == '+' || pc == '-') {
		b, _ := s.src.get()
		s.emit.PutCode(b)
	}
	for {
		pc, ok := s.src.peek()
		if !ok || !isDecDigit(pc) {
			break
		}
		count++
		b, _ := s.src.get()
		s.emit.PutCode(b)
	}
	if count == 0 {
		s.warnf("Exponent %c not followed by (optional sign and) one or more digits", c)
	}
}

func (s *Scanner) parseHex() {
	s.emit.PutCode('0')
	x, _ := s.src.get() // x or X
	s.emit.PutCode(x)
	oc := x
	warned := false
loop:
	for {
		pc, ok := s.src.peek()
		if !ok {
			break
		}
		switch {
		case pc == '\'':
			oc = s.checkPunct(oc, digitHex)
		case isHexDigit(pc):
			oc = pc
			b, _ := s.src.get()
			s.emit.PutCode(b)
		case pc == '.':
			if !s.cfg.Features.HexFloat && !warned {
				s.warnStdFeature("Hexadecimal floating point constant")
				warned = true
			}
			oc = pc
			b, _ := s.src.get()
			s.emit.PutCode(b)
		default:
			break loop
		}
	}
	if pc, ok := s.src.peek(); ok && (pc == 'p' || pc == 'P') {
		if !s.cfg.Features.HexFloat && !warned {
			s.warnStdFeature("Hexadecimal floating point constant")
		}
		s.parseExponent()
	}
}

func (s *Scanner) parseBinary() {
	if !s.cfg.Features.BinaryLiteral {
		s.warnStdFeature("Binary literal")
	}
	s.emit.PutCode('0')
	b, _ := s.src.get() // b or B
	s.emit.PutCode(b)
	oc := b
	for {
		pc, ok := s.src.peek()
		if !ok {
			return
		}
		if pc == '\'' {
			oc = s.checkPunct(oc, digitBinary)
			continue
		}
		if pc == '0' || pc == '1' {
			oc = pc
			bb, _ := s.src.get()
			s.emit.PutCode(bb)
			continue
		}
		if isDecDigit(pc) {
			s.warnf("Non-binary digit %c in binary constant", pc)
		}
		return
	}
}

func (s *Scanner) parseOctal() {
	s.emit.PutCode('0')
	c, _ := s.src.get() // leading octal digit, or (legacy) a bare quote
	s.emit.PutCode(c)
	oc := c
	for {
		pc, ok := s.src.peek()
		if !ok {
			return
		}
		if pc == '\'' {
			oc = s.checkPunct(oc, digitOctal)
			continue
		}
		if isOctDigit(pc) {
			oc = pc
			b, _ := s.src.get()
			s.emit.PutCode(b)
			continue
		}
		if isDecDigit(pc) {
			s.warnf("Non-octal digit %c in octal constant", pc)
		}
		return
	}
}

func (s *Scanner) parseDecimal(c byte) {
	s.emit.PutCode(c)
	pc, ok := s.src.peek()
	if !ok || !(isDecDigit(pc) || pc == '\'') {
		return
	}
	// The original implementation prints this second digit-or-quote
	// directly, without running it through checkPunct even if it is
	// itself an apostrophe (e.g. the separator in "1'234" draws no
	// warning). Only later separators in the same literal are
	// validated. Preserved here rather than "fixed" to keep this port's
	// diagnostics identical to the tool it replaces.
	second, _ := s.src.get()
	s.emit.PutCode(second)
	oc := second
	for {
		pc, ok = s.src.peek()
		if !ok {
			return
		}
		if pc == '\'' {
			oc = s.checkPunct(oc, digitDecimal)
			continue
		}
		if isDecDigit(pc) {
			oc = pc
			b, _ := s.src.get()
			s.emit.PutCode(b)
			continue
		}
		break
	}
	if pc == 'e' || pc == 'E' {
		s.parseExponent()
	}
}

// scanNumber dispatches on the leading digit (or '.') of a numeric
// literal, already known (by the top-level dispatcher) to start one.
func (s *Scanner) scanNumber(c byte) {
	pc, hasPc := s.src.peek()
	switch {
	case c != '0':
		s.parseDecimal(c)
	case hasPc && (pc == 'x' || pc == 'X'):
		s.parseHex()
	case hasPc && (pc == 'b' || pc == 'B'):
		s.parseBinary()
	case hasPc && (isOctDigit(pc) || pc == '\''):
		s.parseOctal()
	case hasPc && (pc == 'e' || pc == 'E' || pc == '.'):
		// Fractional (0.1234) or zero-leading float (0E0).
		s.parseDecimal(c)
	case hasPc && isDecDigit(pc):
		// Malformed number, e.g. 09.
		s.warnf("0%c read - bogus number", pc)
		s.emit.PutCode(c)
	default:
		s.emit.PutCode(c)
	}
}
