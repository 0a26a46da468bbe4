package cssmin

// Kind identifies the lexical class of a token.
type Kind int

// Token kinds produced by Tokenize.
const (
	KindIdent Kind = iota
	KindComment
	KindFunction
	KindAtKeyword
	KindHash
	KindString
	KindBadString
	KindURL
	KindBadURL
	KindDelim
	KindNumber
	KindPercentage
	KindDimension
	KindWhitespace
	KindCDO
	KindCDC
	KindLeftSquare
	KindRightSquare
	KindLeftParen
	KindRightParen
	KindLeftCurly
	KindRightCurly
	KindComma
	KindColon
	KindSemicolon
	KindEOF
)

var kindNames = [...]string{
	KindIdent:       "Ident",
	KindComment:     "Comment",
	KindFunction:    "Function",
	KindAtKeyword:   "AtKeyword",
	KindHash:        "Hash",
	KindString:      "String",
	KindBadString:   "BadString",
	KindURL:         "URL",
	KindBadURL:      "BadURL",
	KindDelim:       "Delim",
	KindNumber:      "Number",
	KindPercentage:  "Percentage",
	KindDimension:   "Dimension",
	KindWhitespace:  "Whitespace",
	KindCDO:         "CDO",
	KindCDC:         "CDC",
	KindLeftSquare:  "LeftSquare",
	KindRightSquare: "RightSquare",
	KindLeftParen:   "LeftParen",
	KindRightParen:  "RightParen",
	KindLeftCurly:   "LeftCurly",
	KindRightCurly:  "RightCurly",
	KindComma:       "Comma",
	KindColon:       "Colon",
	KindSemicolon:   "Semicolon",
	KindEOF:         "EOF",
}

// String returns the token kind name used in dumps and test failures.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// NumberType distinguishes integer literals from literals that carried a
// decimal point or exponent. It is only meaningful on Number, Percentage,
// and Dimension tokens.
type NumberType int

const (
	// NumberInteger marks a literal with no fraction and no exponent.
	NumberInteger NumberType = iota
	// NumberReal marks a literal containing a decimal point or exponent.
	NumberReal
)

func (n NumberType) String() string {
	if n == NumberInteger {
		return "integer"
	}
	return "number"
}

// Token is one lexical unit of a stylesheet. Lexeme and Unit are views into
// the source buffer passed to Tokenize; they are never copies, so they stay
// valid exactly as long as the source slice does.
type Token struct {
	Kind   Kind
	Offset int    // byte offset of the first lexeme byte
	Lexeme []byte // source[Offset : Offset+len(Lexeme)]

	// Numeric sub-fields, set only for Number/Percentage/Dimension.
	NumberType NumberType
	Unit       []byte // dimension unit, a sub-slice of Lexeme
}

// String returns the lexeme as a string. This copies; hot paths should use
// Lexeme directly.
func (t Token) String() string {
	return string(t.Lexeme)
}

// isWordLike reports whether the token belongs to the family that can merge
// with a following word-like token when concatenated without whitespace.
// The minifier must keep a separating space between two of these.
func (t Token) isWordLike() bool {
	switch t.Kind {
	case KindIdent, KindNumber, KindPercentage, KindDimension:
		return true
	}
	return false
}

// Stream is the ordered token sequence produced by one Tokenize call.
// It is a plain slice: finite, restartable, and always terminated by
// exactly one EOF token with an empty lexeme.
type Stream []Token

// EOF returns the terminating EOF token.
func (s Stream) EOF() Token {
	return s[len(s)-1]
}

// Reconstruct concatenates every lexeme in order. For any stream produced
// by Tokenize the result is byte-for-byte the original source.
func (s Stream) Reconstruct() []byte {
	var n int
	for _, t := range s {
		n += len(t.Lexeme)
	}
	out := make([]byte, 0, n)
	for _, t := range s {
		out = append(out, t.Lexeme...)
	}
	return out
}
