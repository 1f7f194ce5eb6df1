package driver

import (
	"fmt"

	"github.com/lanevec/vasm/lexer"
	"github.com/lanevec/vasm/token"
)

// Lexeme is a token re-joined with the text it spans. The reader hands
// out lengths only; this package does the offset bookkeeping on its
// behalf.
type Lexeme struct {
	Kind token.Kind
	Text string
	Span token.Span
}

func (l Lexeme) String() string {
	return fmt.Sprintf("%v %q @ %v", l.Kind, l.Text, l.Span)
}

// Tokenize lexes source to EOF and pairs every token with its text and
// span. The EOF lexeme is included, with empty text. On a lexical
// error the lexemes read so far are returned alongside the error.
func Tokenize(source string) ([]Lexeme, error) {
	r := lexer.New(source)
	lexemes := []Lexeme{}
	offset := 0
	for {
		tok, err := r.Next()
		if err != nil {
			return lexemes, fmt.Errorf("lex: %w", err)
		}
		lexemes = append(lexemes, Lexeme{
			Kind: tok.Kind,
			Text: source[offset : offset+tok.Len],
			Span: token.Span{Start: offset, End: offset + tok.Len},
		})
		offset += tok.Len
		if tok.Kind == token.EOF {
			return lexemes, nil
		}
	}
}
