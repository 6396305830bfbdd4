package bqschema

import "github.com/gyeh/pq2bq/internal/model"

// BigQuery standard SQL type names produced by MapType.
const (
	TypeTimestamp = "TIMESTAMP"
	TypeTime      = "TIME"
	TypeDate      = "DATE"
	TypeInteger   = "INTEGER"
	TypeFloat     = "FLOAT"
	TypeBoolean   = "BOOLEAN"
	TypeString    = "STRING"
	TypeBytes     = "BYTES"
	TypeRecord    = "RECORD"
)

// MapType returns the BigQuery type for a source column type. Lists map to
// ARRAY<T> recursively and structs to an opaque RECORD. Anything the table
// does not know about degrades to STRING.
func MapType(t model.Type) string {
	switch t.Kind {
	case model.KindTimestamp:
		return TypeTimestamp
	case model.KindTime:
		return TypeTime
	case model.KindDate:
		return TypeDate
	case model.KindInt, model.KindUint:
		return TypeInteger
	case model.KindFloat:
		return TypeFloat
	case model.KindBool:
		return TypeBoolean
	case model.KindString:
		return TypeString
	case model.KindBinary:
		return TypeBytes
	case model.KindList:
		if t.Elem == nil {
			return "ARRAY<" + TypeString + ">"
		}
		return "ARRAY<" + MapType(*t.Elem) + ">"
	case model.KindStruct:
		return TypeRecord
	default:
		return TypeString
	}
}
