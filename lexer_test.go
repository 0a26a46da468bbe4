package cssmin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tok is a compact expectation for one token.
type tok struct {
	kind   Kind
	lexeme string
}

// tokenize is a test helper that asserts success.
func tokenize(t *testing.T, src string) Stream {
	t.Helper()
	ts, err := Tokenize([]byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, ts)
	return ts
}

// requireTokens compares every token before the EOF sentinel.
func requireTokens(t *testing.T, src string, want []tok) {
	t.Helper()
	ts := tokenize(t, src)

	require.Equal(t, KindEOF, ts[len(ts)-1].Kind)
	require.Empty(t, ts[len(ts)-1].Lexeme)

	got := make([]tok, 0, len(ts)-1)
	for _, tk := range ts[:len(ts)-1] {
		got = append(got, tok{tk.Kind, string(tk.Lexeme)})
	}
	require.Equal(t, want, got)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "dimension",
			input: "10px",
			want:  []tok{{KindDimension, "10px"}},
		},
		{
			name:  "percentage",
			input: "50%",
			want:  []tok{{KindPercentage, "50%"}},
		},
		{
			name:  "integer",
			input: "42",
			want:  []tok{{KindNumber, "42"}},
		},
		{
			name:  "negative number",
			input: "-5",
			want:  []tok{{KindNumber, "-5"}},
		},
		{
			name:  "signed fraction without integer part",
			input: "+.5",
			want:  []tok{{KindNumber, "+.5"}},
		},
		{
			name:  "decimal",
			input: "12.34",
			want:  []tok{{KindNumber, "12.34"}},
		},
		{
			name:  "exponent",
			input: "1e5",
			want:  []tok{{KindNumber, "1e5"}},
		},
		{
			name:  "signed exponent",
			input: "1E-5",
			want:  []tok{{KindNumber, "1E-5"}},
		},
		{
			name:  "bare exponent marker stays out of the number",
			input: "1e",
			want:  []tok{{KindNumber, "1"}, {KindIdent, "e"}},
		},
		{
			name:  "exponent marker with sign but no digit",
			input: "1e-",
			want:  []tok{{KindNumber, "1"}, {KindIdent, "e-"}},
		},
		{
			name:  "exponent then unit",
			input: "1.5e2px",
			want:  []tok{{KindDimension, "1.5e2px"}},
		},
		{
			name:  "dot without following digit is a delimiter",
			input: "1.x",
			want:  []tok{{KindNumber, "1"}, {KindDelim, "."}, {KindIdent, "x"}},
		},
		{
			name:  "bare dot before digits",
			input: ".5",
			want:  []tok{{KindDelim, "."}, {KindNumber, "5"}},
		},
		{
			name:  "lone sign",
			input: "+",
			want:  []tok{{KindDelim, "+"}},
		},
		{
			name:  "lone hyphen",
			input: "-",
			want:  []tok{{KindDelim, "-"}},
		},
		{
			name:  "ident",
			input: "color",
			want:  []tok{{KindIdent, "color"}},
		},
		{
			name:  "hyphen prefixed ident",
			input: "-webkit-box",
			want:  []tok{{KindIdent, "-webkit-box"}},
		},
		{
			name:  "custom property name",
			input: "--main-color",
			want:  []tok{{KindIdent, "--main-color"}},
		},
		{
			name:  "function",
			input: "rgb(",
			want:  []tok{{KindFunction, "rgb("}},
		},
		{
			name:  "function call",
			input: "rgb(255,0,0)",
			want: []tok{
				{KindFunction, "rgb("},
				{KindNumber, "255"},
				{KindComma, ","},
				{KindNumber, "0"},
				{KindComma, ","},
				{KindNumber, "0"},
				{KindRightParen, ")"},
			},
		},
		{
			name:  "unquoted url",
			input: "url(foo.png)",
			want:  []tok{{KindURL, "url(foo.png)"}},
		},
		{
			name:  "uppercase url",
			input: "URL(foo.png)",
			want:  []tok{{KindURL, "URL(foo.png)"}},
		},
		{
			name:  "url with surrounding whitespace",
			input: "url( foo.png )",
			want:  []tok{{KindURL, "url( foo.png )"}},
		},
		{
			name:  "quoted url is a function call",
			input: `url("foo.png")`,
			want: []tok{
				{KindFunction, "url("},
				{KindString, `"foo.png"`},
				{KindRightParen, ")"},
			},
		},
		{
			name:  "quoted url after whitespace",
			input: `url( "foo.png")`,
			want: []tok{
				{KindFunction, "url("},
				{KindWhitespace, " "},
				{KindString, `"foo.png"`},
				{KindRightParen, ")"},
			},
		},
		{
			name:  "url ident without paren",
			input: "url",
			want:  []tok{{KindIdent, "url"}},
		},
		{
			name:  "url with interior whitespace is bad",
			input: "url(foo bar)",
			want:  []tok{{KindBadURL, "url(foo bar)"}},
		},
		{
			name:  "url with open paren is bad",
			input: "url(a(b)c)",
			want:  []tok{{KindBadURL, "url(a(b)"}, {KindIdent, "c"}, {KindRightParen, ")"}},
		},
		{
			name:  "unterminated url",
			input: "url(foo",
			want:  []tok{{KindURL, "url(foo"}},
		},
		{
			name:  "url with escaped paren",
			input: `url(a\)b)`,
			want:  []tok{{KindURL, `url(a\)b)`}},
		},
		{
			name:  "string",
			input: `"hello"`,
			want:  []tok{{KindString, `"hello"`}},
		},
		{
			name:  "string with escaped quote",
			input: `"a\"b"`,
			want:  []tok{{KindString, `"a\"b"`}},
		},
		{
			name:  "string with hex escape",
			input: `"\66 oo"`,
			want:  []tok{{KindString, `"\66 oo"`}},
		},
		{
			name:  "string with line continuation",
			input: "\"a\\\nb\"",
			want:  []tok{{KindString, "\"a\\\nb\""}},
		},
		{
			name:  "unterminated string",
			input: `"unterminated`,
			want:  []tok{{KindBadString, `"unterminated`}},
		},
		{
			name:  "bad string stops before newline",
			input: "\"bad\nrest",
			want: []tok{
				{KindBadString, `"bad`},
				{KindWhitespace, "\n"},
				{KindIdent, "rest"},
			},
		},
		{
			name:  "comment",
			input: "/* note */",
			want:  []tok{{KindComment, "/* note */"}},
		},
		{
			name:  "unterminated comment",
			input: "/* unterminated",
			want:  []tok{{KindComment, "/* unterminated"}},
		},
		{
			name:  "comment with stars",
			input: "/* a ** b */",
			want:  []tok{{KindComment, "/* a ** b */"}},
		},
		{
			name:  "slash without star",
			input: "/",
			want:  []tok{{KindDelim, "/"}},
		},
		{
			name:  "hash",
			input: "#fff",
			want:  []tok{{KindHash, "#fff"}},
		},
		{
			name:  "hash with leading digit",
			input: "#0a0",
			want:  []tok{{KindHash, "#0a0"}},
		},
		{
			name:  "bare hash",
			input: "# ",
			want:  []tok{{KindDelim, "#"}, {KindWhitespace, " "}},
		},
		{
			name:  "at keyword",
			input: "@media",
			want:  []tok{{KindAtKeyword, "@media"}},
		},
		{
			name:  "vendor at keyword",
			input: "@-webkit-keyframes",
			want:  []tok{{KindAtKeyword, "@-webkit-keyframes"}},
		},
		{
			name:  "bare at sign",
			input: "@ ",
			want:  []tok{{KindDelim, "@"}, {KindWhitespace, " "}},
		},
		{
			name:  "cdo",
			input: "<!--",
			want:  []tok{{KindCDO, "<!--"}},
		},
		{
			name:  "cdc",
			input: "-->",
			want:  []tok{{KindCDC, "-->"}},
		},
		{
			name:  "incomplete cdo",
			input: "<!-",
			want:  []tok{{KindDelim, "<"}, {KindDelim, "!"}, {KindDelim, "-"}},
		},
		{
			name:  "lone angle bracket",
			input: "<",
			want:  []tok{{KindDelim, "<"}},
		},
		{
			name:  "punctuation",
			input: "()[]{},;:",
			want: []tok{
				{KindLeftParen, "("},
				{KindRightParen, ")"},
				{KindLeftSquare, "["},
				{KindRightSquare, "]"},
				{KindLeftCurly, "{"},
				{KindRightCurly, "}"},
				{KindComma, ","},
				{KindSemicolon, ";"},
				{KindColon, ":"},
			},
		},
		{
			name:  "delimiters",
			input: "> ! = % ~ | ^ $ *",
			want: []tok{
				{KindDelim, ">"}, {KindWhitespace, " "},
				{KindDelim, "!"}, {KindWhitespace, " "},
				{KindDelim, "="}, {KindWhitespace, " "},
				{KindDelim, "%"}, {KindWhitespace, " "},
				{KindDelim, "~"}, {KindWhitespace, " "},
				{KindDelim, "|"}, {KindWhitespace, " "},
				{KindDelim, "^"}, {KindWhitespace, " "},
				{KindDelim, "$"}, {KindWhitespace, " "},
				{KindDelim, "*"},
			},
		},
		{
			name:  "whitespace run coalesces",
			input: "a  \t\r\n\f b",
			want: []tok{
				{KindIdent, "a"},
				{KindWhitespace, "  \t\r\n\f "},
				{KindIdent, "b"},
			},
		},
		{
			name:  "class selector",
			input: ".btn",
			want:  []tok{{KindDelim, "."}, {KindIdent, "btn"}},
		},
		{
			name:  "pseudo class",
			input: "a:hover",
			want:  []tok{{KindIdent, "a"}, {KindColon, ":"}, {KindIdent, "hover"}},
		},
		{
			name:  "escaped ident start",
			input: `\65 x`,
			want:  []tok{{KindIdent, `\65 x`}},
		},
		{
			name:  "ident with interior escape",
			input: `a\)b`,
			want:  []tok{{KindIdent, `a\)b`}},
		},
		{
			name:  "hash with escape",
			input: `#\31 23`,
			want:  []tok{{KindHash, `#\31 23`}},
		},
		{
			name:  "high bytes are ident material",
			input: "\xc3\xa9l\xc3\xa9ment",
			want:  []tok{{KindIdent, "\xc3\xa9l\xc3\xa9ment"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  []tok{},
		},
		{
			name:  "small rule",
			input: "a{color:#fff;margin:0 auto}",
			want: []tok{
				{KindIdent, "a"},
				{KindLeftCurly, "{"},
				{KindIdent, "color"},
				{KindColon, ":"},
				{KindHash, "#fff"},
				{KindSemicolon, ";"},
				{KindIdent, "margin"},
				{KindColon, ":"},
				{KindNumber, "0"},
				{KindWhitespace, " "},
				{KindIdent, "auto"},
				{KindRightCurly, "}"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireTokens(t, tt.input, tt.want)
		})
	}
}

func TestTokenizeNumericSubtype(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		typ   NumberType
		unit  string
	}{
		{"42", KindNumber, NumberInteger, ""},
		{"-42", KindNumber, NumberInteger, ""},
		{"4.2", KindNumber, NumberReal, ""},
		{"4e2", KindNumber, NumberReal, ""},
		{"10px", KindDimension, NumberInteger, "px"},
		{"1.5rem", KindDimension, NumberReal, "rem"},
		{"50%", KindPercentage, NumberInteger, ""},
		{"12.5%", KindPercentage, NumberReal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts := tokenize(t, tt.input)
			require.Len(t, ts, 2)
			require.Equal(t, tt.kind, ts[0].Kind)
			assert.Equal(t, tt.typ, ts[0].NumberType)
			assert.Equal(t, tt.unit, string(ts[0].Unit))
		})
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		byte_  byte
		offset int
	}{
		{"single quote", "'x'", '\'', 0},
		{"control byte", "a\x01b", 0x01, 1},
		{"backslash before newline", "\\\n", '\\', 0},
		{"backslash at eof", "\\", '\\', 0},
		{"question mark", "a ? b", '?', 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := Tokenize([]byte(tt.input))
			require.Nil(t, ts, "no partial stream on failure")

			var uerr *UnexpectedCharacterError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, tt.byte_, uerr.Byte)
			assert.Equal(t, tt.offset, uerr.Offset)
		})
	}
}

// Corpus shared by the property tests below.
var propertyCorpus = []string{
	"",
	"a{color:red}",
	"a { color : #f0f0f0 ; }\n\n.btn:hover { margin: 0 auto }",
	"/* header */\nbody{font:12px/1.5 sans-serif}",
	"@media screen and (max-width: 600px) { .x { width: 50% } }",
	"div{background:url(img/bg.png) no-repeat}",
	`div{background:url( "quoted.png" )}`,
	"u + i ~ b > s { border: .5px }",
	"<!-- a{b:c} -->",
	"\"unterminated",
	"\"bad\nrest",
	"/* unterminated",
	"url(bad bad)",
	"1e 2e5 10px 50% --x",
	`#\31 23 { content: "\66 oo" }`,
	"ol,ul{list-style:none;margin:0;padding:0}",
}

func TestLosslessReconstruction(t *testing.T) {
	for _, src := range propertyCorpus {
		ts := tokenize(t, src)
		require.Equal(t, src, string(ts.Reconstruct()), "input %q", src)
	}
}

func TestEOFUniqueness(t *testing.T) {
	for _, src := range propertyCorpus {
		ts := tokenize(t, src)
		var eofs int
		for _, tk := range ts {
			if tk.Kind == KindEOF {
				eofs++
			}
		}
		require.Equal(t, 1, eofs, "input %q", src)
		require.Equal(t, KindEOF, ts.EOF().Kind)
		require.Empty(t, ts.EOF().Lexeme)
	}
}

func TestTokenOffsetsAreContiguous(t *testing.T) {
	for _, src := range propertyCorpus {
		ts := tokenize(t, src)
		offset := 0
		for _, tk := range ts {
			require.Equal(t, offset, tk.Offset, "input %q", src)
			offset += len(tk.Lexeme)
		}
		require.Equal(t, len(src), offset, "input %q", src)
	}
}

func TestTokenizeIsIdempotent(t *testing.T) {
	for _, src := range propertyCorpus {
		first := tokenize(t, src)
		second := tokenize(t, src)
		require.Equal(t, len(first), len(second))
		for i := range first {
			require.Equal(t, first[i].Kind, second[i].Kind)
			require.Equal(t, string(first[i].Lexeme), string(second[i].Lexeme))
			require.Equal(t, first[i].Offset, second[i].Offset)
		}
	}
}

func TestLexemesAreViewsIntoSource(t *testing.T) {
	src := []byte("a{color:red}")
	ts, err := Tokenize(src)
	require.NoError(t, err)

	// Mutating the source must show through every lexeme: they are views,
	// not copies.
	src[0] = 'b'
	require.Equal(t, "b", string(ts[0].Lexeme))
}
