package lib

import (
	"fmt"
	"strconv"
)

type charInfo struct {
	ch       rune
	location charLocation
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	emittedEOF       bool
}

func newLexer(expr string) *lexer {
	runes := []rune(expr)
	return &lexer{
		expr:            runes,
		length:          len(runes),
		currentLocation: charLocation{line: 1, col: 1},
	}
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.expr[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	if !ok {
		return info, false
	}
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, true
}

// Next produces the next token. The stream ends with a single EOF token;
// every call after that reports done.
func (l *lexer) Next() (tok token, done bool, err error) {
	if l.emittedEOF {
		return token{}, true, nil
	}

	for {
		chInfo, ok := l.advance()
		if !ok {
			l.emittedEOF = true
			return token{tokType: tokenTypeEOF, location: l.currentLocation}, false, nil
		}
		ch := chInfo.ch

		switch ch {
		case '+':
			return token{tokType: tokenTypePlus, location: chInfo.location}, false, nil
		case '-':
			return token{tokType: tokenTypeMinus, location: chInfo.location}, false, nil
		case '*':
			return token{tokType: tokenTypeAsterisk, location: chInfo.location}, false, nil
		case '/':
			return token{tokType: tokenTypeSlash, location: chInfo.location}, false, nil
		case '^':
			return token{tokType: tokenTypeCaret, location: chInfo.location}, false, nil
		case '(':
			return token{tokType: tokenTypeLParen, location: chInfo.location}, false, nil
		case ')':
			return token{tokType: tokenTypeRParen, location: chInfo.location}, false, nil
		case ' ', '\t', '\r', '\n':
			continue
		default:
			if isDigit(ch) {
				return l.scanNumber(chInfo)
			}
			return token{}, false, ErrUnableToParse.New(
				l.at(fmt.Sprintf("unrecognized character %q", string(ch))))
		}
	}
}

func (l *lexer) scanNumber(first charInfo) (token, bool, error) {
	start := l.currentCharIndex - 1
	hasDecimal := false

	for {
		next, ok := l.peek(0)
		if !ok {
			break
		}

		isDecimal := next.ch == '.'
		if isDecimal && hasDecimal {
			return token{}, false, ErrInvalidNumber.New(
				l.at("cannot have multiple decimals in one number"))
		}
		hasDecimal = hasDecimal || isDecimal

		if !isDecimal && !isDigit(next.ch) {
			break
		}
		_, _ = l.advance()
	}

	text := string(l.expr[start:l.currentCharIndex])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, false, ErrInvalidNumber.New(l.at(text))
	}

	return token{
		tokType:  tokenTypeNumber,
		value:    value,
		location: first.location,
	}, false, nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (l *lexer) at(msg string) string {
	return fmt.Sprintf("%s at line %d:%d", msg, l.currentLocation.line, l.currentLocation.col)
}
