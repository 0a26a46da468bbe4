package cssmin

import "bytes"

// MinifyTokens renders a token stream with whitespace and comment tokens
// removed. A single space is inserted between two adjacent emitted tokens
// that are both word-like (Ident, Number, Percentage, Dimension): dropping
// the whitespace between "10px" and "20px" would otherwise merge them into
// a different lexeme.
func MinifyTokens(ts Stream) []byte {
	var out bytes.Buffer
	var prev Token
	havePrev := false
	for _, t := range ts {
		switch t.Kind {
		case KindWhitespace, KindComment, KindEOF:
			continue
		}
		if havePrev && prev.isWordLike() && t.isWordLike() {
			out.WriteByte(' ')
		}
		out.Write(t.Lexeme)
		prev = t
		havePrev = true
	}
	return out.Bytes()
}

// MinifyBytes tokenizes src and returns the minified stylesheet.
func MinifyBytes(src []byte) ([]byte, error) {
	ts, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return MinifyTokens(ts), nil
}
