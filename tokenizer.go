package replkit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a contiguous run of input text extracted from a line. The span
// covers the original text including any quote characters, so errors can
// point back at the source.
type Token struct {
	Text   string
	Start  int // byte offset of the first character
	End    int // byte offset just past the last character
	Quoted bool
}

// Tokenize splits a line into tokens on unescaped whitespace. A token or
// part of one may be delimited by matching single or double quotes, in
// which case internal whitespace is preserved and the quotes are stripped.
// A backslash escapes the following character, which inside quotes allows
// embedding the quote character itself. A quote left open at the end of
// the line fails with UnterminatedQuoteError. Whitespace-only input yields
// an empty token slice and no error.
func Tokenize(line string) ([]Token, error) {
	return tokenize(line, true)
}

// tokenizeLenient is Tokenize for partial input: an unterminated quote is
// closed at the end of the line instead of failing. Used by the hint and
// completion engines, which must cope with half-typed lines.
func tokenizeLenient(line string) []Token {
	tokens, _ := tokenize(line, false)
	return tokens
}

func tokenize(line string, strict bool) ([]Token, error) {
	var tokens []Token
	var b strings.Builder

	start := -1
	quoted := false
	escaped := false
	quote := rune(0)
	quoteStart := 0

	flush := func(end int) {
		if start < 0 {
			return
		}
		tokens = append(tokens, Token{Text: b.String(), Start: start, End: end, Quoted: quoted})
		b.Reset()
		start = -1
		quoted = false
	}

	for i := 0; i < len(line); {
		ch, w := utf8.DecodeRuneInString(line[i:])
		switch {
		case escaped:
			b.WriteRune(ch)
			escaped = false
		case ch == '\\':
			if start < 0 {
				start = i
			}
			escaped = true
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				b.WriteRune(ch)
			}
		case ch == '\'' || ch == '"':
			if start < 0 {
				start = i
			}
			quote = ch
			quoteStart = i
			quoted = true
		case unicode.IsSpace(ch):
			flush(i)
		default:
			if start < 0 {
				start = i
			}
			b.WriteRune(ch)
		}
		i += w
	}

	// A trailing backslash escapes nothing; keep it literally.
	if escaped {
		b.WriteByte('\\')
	}
	if quote != 0 && strict {
		return nil, &UnterminatedQuoteError{Pos: quoteStart, Quote: quote}
	}
	flush(len(line))

	return tokens, nil
}

// endsInSpace reports whether the line ends with token-separating
// whitespace, i.e. whether the next typed character would start a new token.
func endsInSpace(line string) bool {
	if line == "" {
		return true
	}
	tokens := tokenizeLenient(line)
	if len(tokens) == 0 {
		return true
	}
	return tokens[len(tokens)-1].End < len(line)
}
