package lib

type peekResult struct {
	tok  token
	done bool
	err  error
}

// tokenCursor wraps a lexer with a single slot of lookahead. The parser only
// ever needs to see one token ahead to decide whether to keep climbing.
type tokenCursor struct {
	lexer  *lexer
	peeked *peekResult
}

func newTokenCursor(l *lexer) *tokenCursor {
	return &tokenCursor{lexer: l}
}

func (tc *tokenCursor) Next() (tok token, done bool, err error) {
	if tc.peeked != nil {
		res := tc.peeked
		tc.peeked = nil
		return res.tok, res.done, res.err
	}
	return tc.lexer.Next()
}

func (tc *tokenCursor) Peek() (token, bool, error) {
	if tc.peeked != nil {
		return tc.peeked.tok, tc.peeked.done, tc.peeked.err
	}
	tok, done, err := tc.lexer.Next()
	tc.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}
