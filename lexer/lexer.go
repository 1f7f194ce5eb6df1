package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/lanevec/vasm/token"
)

// Reader turns source text into a stream of length-tagged tokens.
//
// It never slices the source. Each call to Next records how many bytes
// of input remain before the token, consumes the token's characters,
// and reports the difference as the token's length. The caller keeps
// the running offset into the original text.
type Reader struct {
	srcLen     int    // total length of the source, for error offsets
	rest       string // unconsumed tail of the source
	lenAtStart int    // len(rest) when the current token began
}

func New(source string) *Reader {
	return &Reader{
		srcLen:     len(source),
		rest:       source,
		lenAtStart: len(source),
	}
}

// UnexpectedCharacterError reports a character no token can start with.
// The reader is left positioned on the offending character, so a caller
// that wants to recover may skip it and resume.
type UnexpectedCharacterError struct {
	Offset int
	Char   rune
}

func (e UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Offset)
}

var singleCharTokens = map[rune]token.Kind{
	',': token.Comma,
	'.': token.Dot,
	'[': token.LeftBracket,
	']': token.RightBracket,
	'+': token.Plus,
}

// Next returns the next maximal token of the input. Once the input is
// exhausted it returns EOF tokens of length 0 forever.
func (r *Reader) Next() (token.Token, error) {
	if len(r.rest) == 0 {
		return token.Token{Kind: token.EOF, Len: 0}, nil
	}

	c, _ := utf8.DecodeRuneInString(r.rest)
	var kind token.Kind
	switch {
	case c == '#':
		r.advance()
		r.eatWhile(func(c rune) bool { return c != '\n' })
		kind = token.Comment
	case c == '\n':
		r.advance()
		kind = token.Newline
	case unicode.IsSpace(c):
		r.advance()
		r.eatWhile(func(c rune) bool { return c != '\n' && unicode.IsSpace(c) })
		kind = token.Whitespace
	case isIdentStart(c):
		r.advance()
		r.eatWhile(isIdentContinue)
		kind = token.Ident
	case isDigit(c):
		r.advance()
		r.eatWhile(isDigit)
		kind = token.Number
	default:
		k, ok := singleCharTokens[c]
		if !ok {
			return token.Token{}, UnexpectedCharacterError{
				Offset: r.srcLen - len(r.rest),
				Char:   c,
			}
		}
		r.advance()
		kind = k
	}

	tok := token.Token{Kind: kind, Len: r.lenAtStart - len(r.rest)}
	r.lenAtStart = len(r.rest)
	return tok, nil
}

func (r *Reader) advance() {
	_, w := utf8.DecodeRuneInString(r.rest)
	r.rest = r.rest[w:]
}

func (r *Reader) eatWhile(f func(rune) bool) {
	for len(r.rest) > 0 {
		c, w := utf8.DecodeRuneInString(r.rest)
		if !f(c) {
			return
		}
		r.rest = r.rest[w:]
	}
}

func isIdentStart(c rune) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentContinue(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// Lex runs a Reader over source until EOF and returns every token,
// including Whitespace and Comment; filtering is the caller's job.
// It stops at the first unexpected character, returning the tokens
// read so far alongside the error.
func Lex(source string) ([]token.Token, error) {
	r := New(source)
	tokens := []token.Token{}
	for {
		tok, err := r.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}
