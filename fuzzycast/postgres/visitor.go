package postgres

import (
	"fmt"

	p "github.com/pyramind10/fuzzy-cast/fuzzycast/predicate"
)

type VisitorOption func(*Visitor)

// PlaceholderOffset shifts the first emitted placeholder past parameters an
// outer statement already holds, e.g. an offset of 2 starts at $3.
func PlaceholderOffset(offset int) VisitorOption {
	return func(v *Visitor) {
		v.placeholderOffset = offset
	}
}

func NewVisitor(opts ...VisitorOption) *Visitor {
	v := &Visitor{
		precedenceMapping: make(map[string]int),
	}
	// https://www.postgresql.org/docs/14/sql-syntax-lexical.html#SQL-PRECEDENCE-TABLE
	v.setPrecedence(100, "(any other operator) LEFT")
	v.setPrecedence(90, "LIKE NON", "ILIKE NON")
	v.setPrecedence(80, "< NON", "> NON", "= NON", "<= NON", ">= NON", "!= NON")
	v.setPrecedence(70, "IS NULL NON", "IS NOT NULL NON")
	v.setPrecedence(60, "NOT RIGHT")
	v.setPrecedence(50, "AND LEFT")
	v.setPrecedence(40, "OR LEFT")
	for i := range opts {
		opts[i](v)
	}
	return v
}

// Visitor renders a predicate tree as a PostgreSQL boolean expression with
// $n placeholder parameterization, parenthesizing by operator precedence.
type Visitor struct {
	sql               string
	parameters        []any
	placeholderOffset int
	precedence        int
	precedenceMapping map[string]int
}

func (v Visitor) getNodePrecedenceKey(n p.Operable) string {
	operator := n.Operator()
	return fmt.Sprintf("%s %s", operator, n.Associativity())
}

func (v Visitor) setPrecedence(precedence int, operators ...string) {
	for _, op := range operators {
		v.precedenceMapping[op] = precedence
	}
}

func (v *Visitor) visit(precedenceKey string, callable func() error) error {
	outerPrecedence := v.precedence
	innerPrecedence, ok := v.precedenceMapping[precedenceKey]
	if !ok {
		innerPrecedence, ok = v.precedenceMapping["(any other operator) LEFT"]
		if !ok {
			innerPrecedence = outerPrecedence
		}
	}
	v.precedence = innerPrecedence
	if innerPrecedence < outerPrecedence {
		v.sql += "("
	}
	err := callable()
	if err != nil {
		return err
	}
	if innerPrecedence < outerPrecedence {
		v.sql += ")"
	}
	v.precedence = outerPrecedence
	return nil
}

func (v *Visitor) VisitField(n p.FieldNode) error {
	v.sql += n.Name()
	return nil
}

func (v *Visitor) VisitValue(n p.ValueNode) error {
	v.parameters = append(v.parameters, n.Value())
	v.sql += fmt.Sprintf("$%d", v.placeholderOffset+len(v.parameters))
	return nil
}

func (v *Visitor) VisitPrefix(n p.PrefixNode) error {
	precedenceKey := v.getNodePrecedenceKey(n)
	return v.visit(precedenceKey, func() error {
		v.sql += fmt.Sprintf("%s ", n.Operator())
		return n.Operand().Accept(v)
	})
}

func (v *Visitor) VisitInfix(n p.InfixNode) error {
	precedenceKey := v.getNodePrecedenceKey(n)
	return v.visit(precedenceKey, func() error {
		err := n.Left().Accept(v)
		if err != nil {
			return err
		}
		v.sql += fmt.Sprintf(" %s ", n.Operator())
		err = n.Right().Accept(v)
		if err != nil {
			return err
		}
		return nil
	})
}

func (v *Visitor) VisitPostfix(n p.PostfixNode) error {
	precedenceKey := v.getNodePrecedenceKey(n)
	return v.visit(precedenceKey, func() error {
		err := n.Operand().Accept(v)
		if err != nil {
			return err
		}
		v.sql += fmt.Sprintf(" %s", n.Operator())
		return nil
	})
}

func (v Visitor) Result() (sql string, params []any, err error) {
	return v.sql, v.parameters, nil
}
