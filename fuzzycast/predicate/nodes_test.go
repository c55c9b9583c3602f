package predicate

import (
	"testing"

	"github.com/pyramind10/fuzzy-cast/fuzzycast/predicate/operators"
)

func TestValueNode(t *testing.T) {
	valNode := Value(42)
	if valNode.Value() != 42 {
		t.Errorf("Expected value 42, got %v", valNode.Value())
	}
}

func TestFieldNode(t *testing.T) {
	fieldNode := Field("email")
	if fieldNode.Name() != "email" {
		t.Errorf("Expected field name 'email', got %s", fieldNode.Name())
	}
}

func TestEqualNode(t *testing.T) {
	left := Field("id")
	right := Value(5)
	eqNode := Equal(left, right)

	if eqNode.Left() != left {
		t.Error("Equal node left operand mismatch")
	}
	if eqNode.Right() != right {
		t.Error("Equal node right operand mismatch")
	}
	if eqNode.Operator() != operators.OperatorEq {
		t.Errorf("Expected = operator, got %s", eqNode.Operator())
	}
}

func TestNotNode(t *testing.T) {
	valNode := Value(true)
	notNode := Not(valNode)
	if notNode.Operand() != valNode {
		t.Error("NOT node operand mismatch")
	}
}

func TestILikeNode(t *testing.T) {
	likeNode := ILike(Field("email"), Value("%gmail%"))
	if likeNode.Operator() != operators.OperatorILike {
		t.Errorf("Expected ILIKE operator, got %s", likeNode.Operator())
	}
	if likeNode.Associativity() != NonAssociative {
		t.Errorf("Expected NON associativity, got %s", likeNode.Associativity())
	}
}

func TestContains(t *testing.T) {
	node := Contains("email", "gmail")

	field, ok := node.Left().(FieldNode)
	if !ok {
		t.Fatalf("Expected FieldNode on the left, got %T", node.Left())
	}
	if field.Name() != "email" {
		t.Errorf("Expected field 'email', got %s", field.Name())
	}

	value, ok := node.Right().(ValueNode)
	if !ok {
		t.Fatalf("Expected ValueNode on the right, got %T", node.Right())
	}
	if value.Value() != "%gmail%" {
		t.Errorf("Expected pattern '%%gmail%%', got %v", value.Value())
	}
}

func TestAndNodeMultiple(t *testing.T) {
	a := Value(true)
	b := Value(true)
	c := Value(true)

	// Variadic form folds left: (a AND b) AND c
	andNode := And(a, b, c)

	if andNode.Operator() != operators.OperatorAnd {
		t.Errorf("Expected AND operator, got %s", andNode.Operator())
	}
	inner, ok := andNode.Left().(InfixNode)
	if !ok {
		t.Fatalf("Expected nested InfixNode on the left, got %T", andNode.Left())
	}
	if inner.Left() != a || inner.Right() != b {
		t.Error("Left fold structure mismatch")
	}
	if andNode.Right() != c {
		t.Error("Expected c as outer right operand")
	}
}

func TestOrNodeMultiple(t *testing.T) {
	a := Value(1)
	b := Value(2)
	c := Value(3)

	orNode := Or(a, b, c)

	if orNode.Operator() != operators.OperatorOr {
		t.Errorf("Expected OR operator, got %s", orNode.Operator())
	}
	inner, ok := orNode.Left().(InfixNode)
	if !ok {
		t.Fatalf("Expected nested InfixNode on the left, got %T", orNode.Left())
	}
	if inner.Left() != a || inner.Right() != b {
		t.Error("Left fold structure mismatch")
	}
}

func TestIsNullNode(t *testing.T) {
	node := IsNull(Field("deleted_at"))
	if node.Operator() != operators.OperatorIsNull {
		t.Errorf("Expected IS NULL operator, got %s", node.Operator())
	}
}
