package parquetread

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/format"

	"github.com/gyeh/pq2bq/internal/model"
)

func columnOf(field parquet.Field) model.Column {
	t := typeOf(field.Name(), field)
	if field.Repeated() {
		// Legacy two-level lists: a bare repeated field is a non-null list.
		return model.Column{Name: field.Name(), Type: model.List(t), Nullable: false}
	}
	return model.Column{Name: field.Name(), Type: t, Nullable: field.Optional()}
}

// typeOf converts a node into a model.Type, ignoring its own repetition.
func typeOf(name string, node parquet.Node) model.Type {
	if node.Leaf() {
		return leafType(node.Type())
	}

	var lt *format.LogicalType
	if typ := node.Type(); typ != nil {
		lt = typ.LogicalType()
	}
	if lt != nil {
		switch {
		case lt.List != nil:
			return listType(name, node)
		case lt.Map != nil:
			return model.Unknown(mapLabel(node))
		}
	}

	fields := node.Fields()
	members := make([]model.Field, len(fields))
	for i, f := range fields {
		members[i] = model.Field{Name: f.Name(), Type: elementType(f)}
	}
	return model.Struct(members...)
}

// listType unwraps a LIST-annotated group. The standard layout is
//
//	<list-repetition> group <name> (LIST) {
//	  repeated group list {
//	    <element-repetition> <element-type> element;
//	  }
//	}
//
// while older writers put the element directly in the repeated field. The
// repeated group is itself the element when it has several fields or uses
// one of the legacy names.
func listType(name string, node parquet.Node) model.Type {
	fields := node.Fields()
	if len(fields) != 1 {
		return model.Unknown("list")
	}
	repeated := fields[0]
	if repeated.Leaf() {
		return model.List(typeOf(repeated.Name(), repeated))
	}
	inner := repeated.Fields()
	legacy := repeated.Name() == "array" || repeated.Name() == name+"_tuple"
	if len(inner) == 1 && !legacy {
		return model.List(elementType(inner[0]))
	}
	return model.List(typeOf(repeated.Name(), repeated))
}

// elementType converts a nested field, wrapping repeated fields in a list.
func elementType(f parquet.Field) model.Type {
	t := typeOf(f.Name(), f)
	if f.Repeated() {
		return model.List(t)
	}
	return t
}

func leafType(t parquet.Type) model.Type {
	if lt := t.LogicalType(); lt != nil {
		switch {
		case lt.UTF8 != nil, lt.Enum != nil, lt.Json != nil:
			return model.String()
		case lt.Date != nil:
			return model.Date()
		case lt.Time != nil:
			return model.Time(unitOf(lt.Time.Unit))
		case lt.Timestamp != nil:
			return model.Timestamp(unitOf(lt.Timestamp.Unit))
		case lt.Integer != nil:
			if lt.Integer.IsSigned {
				return model.Int(int(lt.Integer.BitWidth))
			}
			return model.Uint(int(lt.Integer.BitWidth))
		case lt.Decimal != nil:
			return model.Unknown(fmt.Sprintf("decimal(%d,%d)", lt.Decimal.Precision, lt.Decimal.Scale))
		case lt.UUID != nil:
			return model.Unknown("uuid")
		case lt.Float16 != nil:
			return model.Float(16)
		case lt.Bson != nil:
			return model.Binary()
		}
	}

	switch t.Kind() {
	case parquet.Boolean:
		return model.Bool()
	case parquet.Int32:
		return model.Int(32)
	case parquet.Int64:
		return model.Int(64)
	case parquet.Int96:
		return model.Timestamp("ns")
	case parquet.Float:
		return model.Float(32)
	case parquet.Double:
		return model.Float(64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return model.Binary()
	default:
		return model.Unknown(t.String())
	}
}

func unitOf(u format.TimeUnit) string {
	switch {
	case u.Millis != nil:
		return "ms"
	case u.Nanos != nil:
		return "ns"
	default:
		return "us"
	}
}

func mapLabel(node parquet.Node) string {
	fields := node.Fields()
	if len(fields) == 1 {
		kv := fields[0].Fields()
		if len(kv) == 2 {
			return fmt.Sprintf("map<%s, %s>", elementType(kv[0]), elementType(kv[1]))
		}
	}
	return "map"
}
