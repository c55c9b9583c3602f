package predicate

import (
	"errors"
	"fmt"

	"github.com/pyramind10/fuzzy-cast/fuzzycast/predicate/operators"
)

var ErrKeyNotFound = errors.New("key not found")

// Context is a read-only view of one record, keyed by field name.
type Context interface {
	Get(string) (any, error)
}

// MapContext adapts a plain map to the Context interface.
type MapContext map[string]any

func (c MapContext) Get(name string) (any, error) {
	value, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	return value, nil
}

func NewEvaluateVisitor(context Context, registry *operators.OperatorRegistry) *EvaluateVisitor {
	return &EvaluateVisitor{
		context:  context,
		registry: registry,
	}
}

// EvaluateVisitor evaluates a predicate tree against a single record.
type EvaluateVisitor struct {
	currentValue any
	context      Context
	registry     *operators.OperatorRegistry
}

func (v EvaluateVisitor) CurrentValue() any {
	return v.currentValue
}

func (v *EvaluateVisitor) SetCurrentValue(val any) {
	v.currentValue = val
}

func (v *EvaluateVisitor) VisitField(n FieldNode) error {
	value, err := v.context.Get(n.Name())
	if err != nil {
		return err
	}
	v.SetCurrentValue(value)
	return nil
}

func (v *EvaluateVisitor) VisitValue(n ValueNode) error {
	v.SetCurrentValue(n.Value())
	return nil
}

func (v *EvaluateVisitor) VisitPrefix(n PrefixNode) error {
	err := n.Operand().Accept(v)
	if err != nil {
		return err
	}
	result, err := v.registry.ExecUnary(n.Operator(), v.CurrentValue())
	if err != nil {
		return err
	}
	v.SetCurrentValue(result)
	return nil
}

func (v *EvaluateVisitor) VisitPostfix(n PostfixNode) error {
	err := n.Operand().Accept(v)
	if err != nil {
		return err
	}
	result, err := v.registry.ExecUnary(n.Operator(), v.CurrentValue())
	if err != nil {
		return err
	}
	v.SetCurrentValue(result)
	return nil
}

func (v *EvaluateVisitor) VisitInfix(n InfixNode) error {
	err := n.Left().Accept(v)
	if err != nil {
		return err
	}
	left := v.CurrentValue()
	err = n.Right().Accept(v)
	if err != nil {
		return err
	}
	right := v.CurrentValue()
	result, err := v.registry.ExecBinary(left, n.Operator(), right)
	if err != nil {
		return err
	}
	v.SetCurrentValue(result)
	return nil
}

func (v EvaluateVisitor) Result() (bool, error) {
	result := v.CurrentValue()
	resultTyped, ok := result.(bool)
	if !ok {
		return false, errors.New("the result is not a bool")
	}
	return resultTyped, nil
}

// Evaluate runs a predicate against a record context and reports whether it
// matched. SQL NULL semantics apply: a NULL result is not a match.
func Evaluate(exp Visitable, ctx Context, registry *operators.OperatorRegistry) (bool, error) {
	v := NewEvaluateVisitor(ctx, registry)
	if err := exp.Accept(v); err != nil {
		return false, err
	}
	if v.CurrentValue() == nil {
		return false, nil
	}
	return v.Result()
}
