package lib

// Parse lexes and parses a single arithmetic expression. The whole input must
// be consumed; a leftover token after the expression is an error rather than
// being silently ignored.
func Parse(expr string) (Expression, error) {
	p := parser{reader: newTokenCursor(newLexer(expr))}
	return p.scan()
}

// Evaluate parses the expression and reduces it to a number.
func Evaluate(expr string) (float64, error) {
	ast, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return ast.Eval(), nil
}

type parser struct {
	reader tokenReader
}

func (p *parser) scan() (Expression, error) {
	expr, err := p.scanExpr(precedenceDefault)
	if err != nil {
		return nil, err
	}

	next, done, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if !done && next.tokType != tokenTypeEOF {
		return nil, ErrInvalidOperator.New(tokenString(next))
	}

	return expr, nil
}

// scanExpr parses one expression, consuming operators that bind tighter than
// min. Operators at or below min belong to an enclosing call.
func (p *parser) scanExpr(min precedence) (Expression, error) {
	left, err := p.scanSubExpr()
	if err != nil {
		return nil, err
	}

	for {
		next, done, err := p.reader.Peek()
		if err != nil {
			return nil, err
		}
		if done {
			return nil, ErrUnableToParse.New("token stream ended unexpectedly")
		}

		if next.tokType == tokenTypeEOF {
			break
		}
		if min >= next.precedence() {
			break
		}

		left, err = p.scanOperation(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// scanSubExpr parses a primary operand: a number literal, a unary plus or
// minus applied to another primary, or a parenthesized expression.
func (p *parser) scanSubExpr() (Expression, error) {
	tok, done, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, ErrUnableToParse.New("expecting operand but token stream ended")
	}

	switch tok.tokType {
	case tokenTypePlus:
		// unary plus is a no-op
		return p.scanSubExpr()
	case tokenTypeMinus:
		right, err := p.scanSubExpr()
		if err != nil {
			return nil, err
		}
		return UnaryExpression{Right: right, Op: UnaryExprOpNegative}, nil
	case tokenTypeNumber:
		return NumberLiteral{Value: tok.value}, nil
	case tokenTypeLParen:
		return p.scanParenthetical()
	default:
		return nil, ErrInvalidNumber.New(tokenString(tok))
	}
}

// scanOperation consumes the operator following left and parses its right
// operand, seeding the climb with the operator's own precedence. A '(' in
// operator position means implicit multiplication.
func (p *parser) scanOperation(left Expression) (Expression, error) {
	tok, done, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, ErrUnableToParse.New("expecting operator but token stream ended")
	}

	if tok.tokType == tokenTypeLParen {
		right, err := p.scanParenthetical()
		if err != nil {
			return nil, err
		}
		return BinaryExpression{Left: left, Right: right, Op: BinaryExprOpMultiply}, nil
	}

	op, isOp := getBinaryExprOpType(tok)
	if !isOp {
		return nil, ErrInvalidOperator.New(tokenString(tok))
	}

	right, err := p.scanExpr(tok.precedence())
	if err != nil {
		return nil, err
	}
	return BinaryExpression{Left: left, Right: right, Op: op}, nil
}

// scanParenthetical reads everything up to the matching ')'. The opening '('
// has already been consumed.
func (p *parser) scanParenthetical() (Expression, error) {
	expr, err := p.scanExpr(precedenceDefault)
	if err != nil {
		return nil, err
	}

	next, done, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if done || next.tokType != tokenTypeRParen {
		return nil, ErrParenthesisNotBalanced.New()
	}

	return expr, nil
}

func getBinaryExprOpType(tok token) (binaryExprOpType, bool) {
	switch tok.tokType {
	case tokenTypePlus:
		return BinaryExprOpAdd, true
	case tokenTypeMinus:
		return BinaryExprOpSubtract, true
	case tokenTypeAsterisk:
		return BinaryExprOpMultiply, true
	case tokenTypeSlash:
		return BinaryExprOpDivide, true
	case tokenTypeCaret:
		return BinaryExprOpPower, true
	}

	return 0, false
}
