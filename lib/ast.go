package lib

import (
	"fmt"
	"math"
	"strconv"
)

type binaryExprOpType int

const (
	BinaryExprOpAdd binaryExprOpType = iota
	BinaryExprOpSubtract
	BinaryExprOpMultiply
	BinaryExprOpDivide
	BinaryExprOpPower
)

type unaryExprOpType int

const (
	UnaryExprOpNegative unaryExprOpType = iota
)

// Expression is a parsed arithmetic expression. Evaluation is a pure
// reduction over the tree and cannot fail; division by zero follows
// floating-point convention.
type Expression interface {
	isExpression()
	Eval() float64
}

func (n NumberLiteral) isExpression()    {}
func (u UnaryExpression) isExpression()  {}
func (b BinaryExpression) isExpression() {}

type NumberLiteral struct {
	Value float64
}

func (n NumberLiteral) Eval() float64 {
	return n.Value
}

func (n NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

type UnaryExpression struct {
	Right Expression
	Op    unaryExprOpType
}

func (u UnaryExpression) Eval() float64 {
	return -u.Right.Eval()
}

func (u UnaryExpression) String() string {
	return fmt.Sprintf("(-%v)", u.Right)
}

type BinaryExpression struct {
	Left  Expression
	Right Expression
	Op    binaryExprOpType
}

func (b BinaryExpression) Eval() float64 {
	left := b.Left.Eval()
	right := b.Right.Eval()

	switch b.Op {
	case BinaryExprOpAdd:
		return left + right
	case BinaryExprOpSubtract:
		return left - right
	case BinaryExprOpMultiply:
		return left * right
	case BinaryExprOpDivide:
		return left / right
	case BinaryExprOpPower:
		return math.Pow(left, right)
	default:
		panic(fmt.Sprintf("unknown binary operator %d", b.Op))
	}
}

func (b BinaryExpression) String() string {
	return fmt.Sprintf("(%v %s %v)", b.Left, binaryOpString(b.Op), b.Right)
}

func binaryOpString(op binaryExprOpType) string {
	switch op {
	case BinaryExprOpAdd:
		return "+"
	case BinaryExprOpSubtract:
		return "-"
	case BinaryExprOpMultiply:
		return "*"
	case BinaryExprOpDivide:
		return "/"
	case BinaryExprOpPower:
		return "^"
	default:
		return "?"
	}
}
