package schema

// Type identifies the declared value type of a schema field.
type Type int

const (
	TypeText Type = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeDatetime
	TypeUUID
	TypeULID
	TypeDecimal
)

func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBoolean:
		return "boolean"
	case TypeDatetime:
		return "datetime"
	case TypeUUID:
		return "uuid"
	case TypeULID:
		return "ulid"
	case TypeDecimal:
		return "decimal"
	}
	return "unknown"
}

// Metadata describes a record type: its source name, its field names in
// declaration order, and each field's declared type.
type Metadata interface {
	Name() string
	Fields() []string
	TypeOf(field string) (Type, bool)
}

type fieldDef struct {
	name string
	typ  Type
}

// Def is an ordered schema definition implementing Metadata.
type Def struct {
	name   string
	fields []fieldDef
	types  map[string]Type
}

// New creates a schema definition for a named record source.
func New(name string) *Def {
	return &Def{
		name:  name,
		types: make(map[string]Type),
	}
}

// Field declares a field. Declaration order is preserved; redeclaring a
// field updates its type without changing its position.
func (d *Def) Field(name string, t Type) *Def {
	if _, ok := d.types[name]; !ok {
		d.fields = append(d.fields, fieldDef{name: name, typ: t})
	} else {
		for i := range d.fields {
			if d.fields[i].name == name {
				d.fields[i].typ = t
				break
			}
		}
	}
	d.types[name] = t
	return d
}

func (d *Def) Name() string {
	return d.name
}

func (d *Def) Fields() []string {
	names := make([]string, len(d.fields))
	for i := range d.fields {
		names[i] = d.fields[i].name
	}
	return names
}

func (d *Def) TypeOf(field string) (Type, bool) {
	t, ok := d.types[field]
	return t, ok
}
