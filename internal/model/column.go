package model

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a source column Type.
type Kind int

const (
	KindUnknown Kind = iota
	KindTimestamp
	KindTime
	KindDate
	KindInt
	KindUint
	KindFloat
	KindBool
	KindString
	KindBinary
	KindList
	KindStruct
)

// Type describes a Parquet/Arrow-style source column type. List and Struct
// wrap other Types, so a Type may be arbitrarily nested.
type Type struct {
	Kind   Kind
	Width  int     // bit width for Int, Uint and Float
	Unit   string  // "ms", "us" or "ns" for Timestamp and Time
	Elem   *Type   // element type for List
	Fields []Field // ordered members for Struct
	Label  string  // source type name for Unknown, e.g. "decimal(10,2)"
}

// Field is a named member of a Struct type.
type Field struct {
	Name string
	Type Type
}

// Column is a single top-level column as read from the source schema.
type Column struct {
	Name     string
	Type     Type
	Nullable bool
}

func Timestamp(unit string) Type { return Type{Kind: KindTimestamp, Unit: unit} }
func Time(unit string) Type { return Type{Kind: KindTime, Unit: unit} }
func Date() Type { return Type{Kind: KindDate} }
func Int(width int) Type { return Type{Kind: KindInt, Width: width} }
func Uint(width int) Type { return Type{Kind: KindUint, Width: width} }
func Float(width int) Type { return Type{Kind: KindFloat, Width: width} }
func Bool() Type { return Type{Kind: KindBool} }
func String() Type { return Type{Kind: KindString} }
func Binary() Type { return Type{Kind: KindBinary} }
func Unknown(label string) Type { return Type{Kind: KindUnknown, Label: label} }

// List returns a list type wrapping elem.
func List(elem Type) Type {
	return Type{Kind: KindList, Elem: &elem}
}

// Struct returns a struct type with the given fields in order.
func Struct(fields ...Field) Type {
	return Type{Kind: KindStruct, Fields: fields}
}

// String renders the type the way Arrow prints it, e.g. "int32",
// "timestamp[us]" or "list<element: string>". It is the label reported
// for skipped columns.
func (t Type) String() string {
	switch t.Kind {
	case KindTimestamp:
		return fmt.Sprintf("timestamp[%s]", unitOr(t.Unit, "us"))
	case KindTime:
		unit := unitOr(t.Unit, "us")
		if unit == "ms" {
			return "time32[ms]"
		}
		return fmt.Sprintf("time64[%s]", unit)
	case KindDate:
		return "date32"
	case KindInt:
		return fmt.Sprintf("int%d", widthOr(t.Width, 64))
	case KindUint:
		return fmt.Sprintf("uint%d", widthOr(t.Width, 64))
	case KindFloat:
		switch t.Width {
		case 16:
			return "halffloat"
		case 32:
			return "float"
		default:
			return "double"
		}
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindList:
		elem := "null"
		if t.Elem != nil {
			elem = t.Elem.String()
		}
		return "list<element: " + elem + ">"
	case KindStruct:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = f.Name + ": " + f.Type.String()
		}
		return "struct<" + strings.Join(parts, ", ") + ">"
	default:
		if t.Label != "" {
			return t.Label
		}
		return "unknown"
	}
}

func unitOr(unit, def string) string {
	if unit == "" {
		return def
	}
	return unit
}

func widthOr(width, def int) int {
	if width <= 0 {
		return def
	}
	return width
}
