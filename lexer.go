package cssmin

import (
	"bytes"
	"fmt"
)

// UnexpectedCharacterError is the lexer's single fatal error: a byte that
// matches none of the classifier's cases. Tokenization aborts atomically;
// no partial stream is returned.
type UnexpectedCharacterError struct {
	Byte   byte
	Offset int
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Byte, e.Offset)
}

var urlName = []byte("url")

// Tokenize converts CSS source into its token stream. The stream is
// lossless: whitespace runs and comments are emitted as tokens, and
// concatenating every lexeme reproduces src exactly. Token lexemes are
// views into src, not copies.
//
// On success the stream ends with exactly one EOF token with an empty
// lexeme. On failure the error is a *UnexpectedCharacterError and no
// tokens are returned.
func Tokenize(src []byte) (Stream, error) {
	l := lexer{cur: cursor{src: src}}
	for !l.cur.atEnd() {
		l.cur.start = l.cur.current
		if err := l.next(); err != nil {
			return nil, err
		}
	}
	l.cur.start = l.cur.current
	l.emit(KindEOF)
	return l.out, nil
}

type lexer struct {
	cur cursor
	out Stream
}

func (l *lexer) emit(k Kind) {
	l.out = append(l.out, Token{Kind: k, Offset: l.cur.start, Lexeme: l.cur.lexeme()})
}

func (l *lexer) emitNumeric(k Kind, typ NumberType, unit []byte) {
	l.out = append(l.out, Token{
		Kind:       k,
		Offset:     l.cur.start,
		Lexeme:     l.cur.lexeme(),
		NumberType: typ,
		Unit:       unit,
	})
}

// next scans one token starting at cur.start. It is the classifier: one
// byte decides which consumer runs.
func (l *lexer) next() error {
	b := l.cur.advance()
	switch {
	case b == '/':
		if nb, ok := l.cur.peek(0); ok && nb == '*' {
			l.cur.advance()
			l.scanComment()
			return nil
		}
		l.emit(KindDelim)

	case isWhitespace(b):
		l.scanWhitespace()

	case b == '"':
		l.scanString()

	case b == '(':
		l.emit(KindLeftParen)
	case b == ')':
		l.emit(KindRightParen)
	case b == '{':
		l.emit(KindLeftCurly)
	case b == '}':
		l.emit(KindRightCurly)
	case b == '[':
		l.emit(KindLeftSquare)
	case b == ']':
		l.emit(KindRightSquare)
	case b == ',':
		l.emit(KindComma)
	case b == ';':
		l.emit(KindSemicolon)
	case b == ':':
		l.emit(KindColon)

	case b == '@':
		if l.cur.wouldStartIdentifier(0) {
			l.cur.consumeName()
			l.emit(KindAtKeyword)
		} else {
			l.emit(KindDelim)
		}

	case b == '#':
		if nb, ok := l.cur.peek(0); (ok && isIdentChar(nb)) || l.cur.validEscapeAt(0) {
			l.cur.consumeName()
			l.emit(KindHash)
		} else {
			l.emit(KindDelim)
		}

	case b == '<':
		b0, ok0 := l.cur.peek(0)
		b1, ok1 := l.cur.peek(1)
		b2, ok2 := l.cur.peek(2)
		if ok0 && ok1 && ok2 && b0 == '!' && b1 == '-' && b2 == '-' {
			l.cur.advance()
			l.cur.advance()
			l.cur.advance()
			l.emit(KindCDO)
		} else {
			l.emit(KindDelim)
		}

	case b == '-':
		b0, ok0 := l.cur.peek(0)
		b1, ok1 := l.cur.peek(1)
		switch {
		case ok0 && ok1 && b0 == '-' && b1 == '>':
			l.cur.advance()
			l.cur.advance()
			l.emit(KindCDC)
		case numericFollows(b0, ok0, b1, ok1):
			l.scanNumeric()
		case (ok0 && (isIdentStart(b0) || b0 == '-')) || l.cur.validEscapeAt(0):
			l.scanIdentLike()
		default:
			l.emit(KindDelim)
		}

	case b == '+':
		b0, ok0 := l.cur.peek(0)
		b1, ok1 := l.cur.peek(1)
		if numericFollows(b0, ok0, b1, ok1) {
			l.scanNumeric()
		} else {
			l.emit(KindDelim)
		}

	case isDigit(b):
		l.scanNumeric()

	case isIdentStart(b):
		l.scanIdentLike()

	case b == '\\':
		// Reconsume so the name consumer sees the whole escape.
		l.cur.rewind(l.cur.start)
		if l.cur.validEscapeAt(0) {
			l.scanIdentLike()
			return nil
		}
		return &UnexpectedCharacterError{Byte: b, Offset: l.cur.start}

	case b == '>' || b == '!' || b == '=' || b == '%' || b == '~' ||
		b == '|' || b == '^' || b == '$' || b == '*' || b == '.':
		l.emit(KindDelim)

	default:
		return &UnexpectedCharacterError{Byte: b, Offset: l.cur.start}
	}
	return nil
}

// numericFollows reports whether a sign byte is the start of a numeric
// token: a digit follows, or a dot immediately followed by a digit.
func numericFollows(b0 byte, ok0 bool, b1 byte, ok1 bool) bool {
	if ok0 && isDigit(b0) {
		return true
	}
	return ok0 && ok1 && b0 == '.' && isDigit(b1)
}

// scanWhitespace coalesces a run of whitespace into one token. The first
// whitespace byte has already been consumed.
func (l *lexer) scanWhitespace() {
	for {
		b, ok := l.cur.peek(0)
		if !ok || !isWhitespace(b) {
			break
		}
		l.cur.advance()
	}
	l.emit(KindWhitespace)
}

// scanComment consumes up to and including the closing "*/". The "/*"
// opener has already been consumed. An unterminated comment silently ends
// at EOF; the token still spans everything consumed.
func (l *lexer) scanComment() {
	for !l.cur.atEnd() {
		if l.cur.advance() == '*' {
			if nb, ok := l.cur.peek(0); ok && nb == '/' {
				l.cur.advance()
				break
			}
		}
	}
	l.emit(KindComment)
}

// scanString consumes a double-quoted string. The opening quote has
// already been consumed and sits at start. A newline or EOF before the
// closing quote yields BadString; the newline stays outside the lexeme so
// reconstruction remains exact.
func (l *lexer) scanString() {
	for {
		b, ok := l.cur.peek(0)
		if !ok {
			l.emit(KindBadString)
			return
		}
		switch {
		case b == '"':
			l.cur.advance()
			l.emit(KindString)
			return
		case b == '\n':
			l.emit(KindBadString)
			return
		case b == '\\':
			if nb, ok := l.cur.peek(1); !ok {
				// Trailing backslash; EOF closes this out as a bad string.
				l.cur.advance()
			} else if nb == '\n' {
				// Escaped newline is a line continuation, not a terminator.
				l.cur.advance()
				l.cur.advance()
			} else {
				l.cur.consumeEscape()
			}
		default:
			l.cur.advance()
		}
	}
}

// scanNumeric consumes the rest of a numeric token. The classifier has
// already consumed the sign or first digit.
//
// The fraction dot is taken only when a digit immediately follows, and the
// exponent marker only when a digit (after an optional sign) follows. A
// bare trailing e/E finalizes the token as a plain Number at once, with no
// percentage or unit lookahead: the marker must surface as the next
// token instead of being swallowed as a dimension unit.
func (l *lexer) scanNumeric() {
	typ := NumberInteger
	l.consumeDigits()

	if b0, ok0 := l.cur.peek(0); ok0 && b0 == '.' {
		if b1, ok1 := l.cur.peek(1); ok1 && isDigit(b1) {
			l.cur.advance()
			l.cur.advance()
			l.consumeDigits()
			typ = NumberReal
		}
	}

	if b0, ok0 := l.cur.peek(0); ok0 && (b0 == 'e' || b0 == 'E') {
		digitAt := 1
		if b1, ok1 := l.cur.peek(1); ok1 && (b1 == '+' || b1 == '-') {
			digitAt = 2
		}
		if bd, okd := l.cur.peek(digitAt); okd && isDigit(bd) {
			for i := 0; i <= digitAt; i++ {
				l.cur.advance()
			}
			l.consumeDigits()
			typ = NumberReal
		} else {
			l.emitNumeric(KindNumber, typ, nil)
			return
		}
	}

	if b, ok := l.cur.peek(0); ok && b == '%' {
		l.cur.advance()
		l.emitNumeric(KindPercentage, typ, nil)
		return
	}

	if l.cur.wouldStartIdentifier(0) {
		unitStart := l.cur.mark()
		l.cur.consumeName()
		l.emitNumeric(KindDimension, typ, l.cur.src[unitStart:l.cur.current])
		return
	}

	l.emitNumeric(KindNumber, typ, nil)
}

func (l *lexer) consumeDigits() {
	for {
		b, ok := l.cur.peek(0)
		if !ok || !isDigit(b) {
			return
		}
		l.cur.advance()
	}
}

// scanIdentLike consumes an identifier sequence and decides between Ident,
// Function, and the url token family. The first name byte has been
// consumed (or, for an escape start, the cursor was rewound to it).
func (l *lexer) scanIdentLike() {
	l.cur.consumeName()
	name := l.cur.lexeme()

	nb, ok := l.cur.peek(0)
	if !ok || nb != '(' {
		l.emit(KindIdent)
		return
	}

	if !bytes.EqualFold(name, urlName) {
		l.cur.advance()
		l.emit(KindFunction)
		return
	}

	// For url(, peek past any whitespace; a quoted argument is parsed later
	// as an ordinary function call plus string, so back off to just
	// after the paren and emit Function there.
	l.cur.advance()
	afterParen := l.cur.mark()
	for {
		b, ok := l.cur.peek(0)
		if !ok || !isWhitespace(b) {
			break
		}
		l.cur.advance()
	}
	if b, ok := l.cur.peek(0); ok && b == '"' {
		l.cur.rewind(afterParen)
		l.emit(KindFunction)
		return
	}
	l.scanRawURL()
}

// scanRawURL consumes an unquoted url token body. "url(" has been
// consumed. EOF ends the token as URL; a quote, open paren, non-printable
// byte, invalid escape, or interior whitespace not followed by the closing
// paren turns it into BadURL.
func (l *lexer) scanRawURL() {
	for {
		b, ok := l.cur.peek(0)
		if !ok {
			l.emit(KindURL)
			return
		}
		switch {
		case b == ')':
			l.cur.advance()
			l.emit(KindURL)
			return
		case isWhitespace(b):
			for {
				if b, ok := l.cur.peek(0); ok && isWhitespace(b) {
					l.cur.advance()
				} else {
					break
				}
			}
			nb, ok := l.cur.peek(0)
			if !ok {
				l.emit(KindURL)
				return
			}
			if nb == ')' {
				l.cur.advance()
				l.emit(KindURL)
				return
			}
			l.scanBadURL()
			return
		case b == '"' || b == '\'' || b == '(' || isNonPrintable(b):
			l.scanBadURL()
			return
		case b == '\\':
			if l.cur.validEscapeAt(0) {
				l.cur.consumeEscape()
			} else {
				l.scanBadURL()
				return
			}
		default:
			l.cur.advance()
		}
	}
}

// scanBadURL consumes the bad url remnant: everything up to and including
// the next unescaped ")" or EOF, so the scanner resynchronizes.
func (l *lexer) scanBadURL() {
	for !l.cur.atEnd() {
		if l.cur.validEscapeAt(0) {
			l.cur.consumeEscape()
			continue
		}
		if l.cur.advance() == ')' {
			break
		}
	}
	l.emit(KindBadURL)
}

func isNonPrintable(b byte) bool {
	return b <= 0x08 || b == 0x0b || (b >= 0x0e && b <= 0x1f) || b == 0x7f
}
