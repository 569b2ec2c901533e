package session

import "strconv"

// FieldKind identifies which kind of input a field is.
type FieldKind int

const (
	FieldNone FieldKind = iota
	FieldTag
	FieldKey
	FieldValue
)

// FieldID names a logical input field. Attribute fields are positional and
// only stable until a row before them is removed.
type FieldID struct {
	Kind  FieldKind
	Index int
}

// NoField is used when focus is on something other than an input field.
var NoField = FieldID{}

func TagField() FieldID {
	return FieldID{Kind: FieldTag}
}

func KeyField(i int) FieldID {
	return FieldID{Kind: FieldKey, Index: i}
}

func ValueField(i int) FieldID {
	return FieldID{Kind: FieldValue, Index: i}
}

// String returns "tag", "attribute-key-<i>", "attribute-value-<i>" or "".
func (f FieldID) String() string {
	switch f.Kind {
	case FieldTag:
		return "tag"
	case FieldKey:
		return "attribute-key-" + strconv.Itoa(f.Index)
	case FieldValue:
		return "attribute-value-" + strconv.Itoa(f.Index)
	default:
		return ""
	}
}

// Next returns the field after f in traversal order for a form with rows
// attribute rows, wrapping to the tag field.
func (f FieldID) Next(rows int) FieldID {
	switch f.Kind {
	case FieldTag:
		if rows > 0 {
			return KeyField(0)
		}
	case FieldKey:
		if f.Index < rows {
			return ValueField(f.Index)
		}
	case FieldValue:
		if f.Index+1 < rows {
			return KeyField(f.Index + 1)
		}
	}
	return TagField()
}

// Prev returns the field before f in traversal order, wrapping to the last
// field.
func (f FieldID) Prev(rows int) FieldID {
	switch f.Kind {
	case FieldKey:
		if f.Index > 0 && f.Index <= rows {
			return ValueField(f.Index - 1)
		}
		if f.Index == 0 {
			return TagField()
		}
	case FieldValue:
		if f.Index < rows {
			return KeyField(f.Index)
		}
	}
	if rows > 0 {
		return ValueField(rows - 1)
	}
	return TagField()
}
