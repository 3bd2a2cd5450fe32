package lib

import (
	"fmt"
	"strconv"
)

type tokenType int

const (
	tokenTypeNumber tokenType = iota
	tokenTypePlus
	tokenTypeMinus
	tokenTypeAsterisk
	tokenTypeSlash
	tokenTypeCaret
	tokenTypeLParen
	tokenTypeRParen
	tokenTypeEOF
)

// precedence orders operators for the climbing parser. The zero value sits
// below every real operator so non-operator tokens always stop the loop.
type precedence int

const (
	precedenceDefault precedence = iota
	precedenceAddSub
	precedenceMulDiv
	precedencePower
)

type charLocation struct {
	line int
	col  int
}

type token struct {
	tokType  tokenType
	value    float64
	location charLocation
}

// precedence returns the binding strength of the token when it appears in
// operator position. LParen sits at the multiplication level so that
// adjacency like (a)(b) binds the same way a*b does.
func (t token) precedence() precedence {
	switch t.tokType {
	case tokenTypePlus, tokenTypeMinus:
		return precedenceAddSub
	case tokenTypeAsterisk, tokenTypeSlash, tokenTypeLParen:
		return precedenceMulDiv
	case tokenTypeCaret:
		return precedencePower
	default:
		return precedenceDefault
	}
}

func tokenString(tok token) string {
	return fmt.Sprintf(
		"%d:%d -> %s",
		tok.location.line,
		tok.location.col,
		tokenValueString(tok))
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeNumber:
		return fmt.Sprintf("number: %s", strconv.FormatFloat(tok.value, 'g', -1, 64))
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeAsterisk:
		return "*"
	case tokenTypeSlash:
		return "/"
	case tokenTypeCaret:
		return "^"
	case tokenTypeLParen:
		return "("
	case tokenTypeRParen:
		return ")"
	case tokenTypeEOF:
		return "EOF"
	default:
		return "?"
	}
}
