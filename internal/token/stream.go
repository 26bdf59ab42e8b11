package token

// Stream is a cursor over a fully lexed token slice. The parser only ever
// moves forward; Peek looks ahead without consuming.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Next returns the next token. Once the input is exhausted it keeps
// returning the trailing EOF token.
func (s *Stream) Next() Token {
	if len(s.tokens) == 0 {
		return Token{Type: EOF}
	}
	if s.pos >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// Peek returns up to n upcoming tokens without consuming them.
func (s *Stream) Peek(n int) []Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	return s.tokens[s.pos:end]
}

func (s *Stream) Tokens() []Token {
	return s.tokens
}

func (s *Stream) Len() int {
	return len(s.tokens)
}
