package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota
	Newline
	Whitespace
	Comment

	// Single-character tokens.
	Comma
	Dot
	LeftBracket
	RightBracket
	Plus

	// Literals and identifiers.
	Ident
	Number
)

// Token is one lexical span: a kind and the number of bytes it covers.
// It carries no text and no position. The reader produces tokens in
// source order, so a consumer recovers the text by keeping a running
// offset into the source and slicing Len bytes at a time.
type Token struct {
	Kind Kind
	Len  int
}

func (t Token) String() string {
	return fmt.Sprintf("%v(%d)", t.Kind, t.Len)
}

// Span is a half-open byte range [Start, End) into the source text,
// attached to tokens and operands for diagnostics.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
