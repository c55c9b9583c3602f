package schema

import (
	"strconv"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Cast coerces a textual term into a value of the declared type. The rules
// are deliberately permissive: the question answered is "does this term look
// like a value of this type", not whether it is canonical.
func Cast(t Type, text string) (any, error) {
	switch t {
	case TypeText:
		return text, nil
	case TypeInteger:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cast %q to integer", text)
		}
		return n, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cast %q to float", text)
		}
		return f, nil
	case TypeBoolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, errors.Wrapf(err, "cast %q to boolean", text)
		}
		return b, nil
	case TypeDatetime:
		ts, err := dateparse.ParseAny(text)
		if err != nil {
			return nil, errors.Wrapf(err, "cast %q to datetime", text)
		}
		return ts, nil
	case TypeUUID:
		id, err := uuid.Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, "cast %q to uuid", text)
		}
		return id, nil
	case TypeULID:
		id, err := ulid.Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, "cast %q to ulid", text)
		}
		return id, nil
	case TypeDecimal:
		d, err := decimal.NewFromString(text)
		if err != nil {
			return nil, errors.Wrapf(err, "cast %q to decimal", text)
		}
		return d, nil
	}
	return nil, errors.Errorf("unsupported type %s", t)
}
