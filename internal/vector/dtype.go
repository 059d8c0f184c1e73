// Package vector provides the vector algebra capabilities consumed by the
// NLCG beta-update strategies, along with reference vector providers.
package vector

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Float is a constraint for scalar types returned by capability methods.
// It uses Go generics to ensure compile-time type safety.
type Float interface {
	constraints.Float
}

// DataType represents runtime type information for a scalar type.
type DataType int

// Supported scalar types.
const (
	Float32 DataType = iota
	Float64
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseDataType converts a name produced by String back into a DataType.
func ParseDataType(s string) (DataType, bool) {
	switch s {
	case "float32":
		return Float32, true
	case "float64":
		return Float64, true
	default:
		return 0, false
	}
}

// DataTypeOf infers the DataType of a generic scalar type F.
// Named types such as `type Celsius float64` map to their underlying type.
func DataTypeOf[F Float]() DataType {
	if reflect.TypeFor[F]().Kind() == reflect.Float32 {
		return Float32
	}
	return Float64
}
