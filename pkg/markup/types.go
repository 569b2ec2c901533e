package markup

// AttributeRow is one key/value pair as typed by the user, before any cleanup.
type AttributeRow struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// RawInput is the editable snapshot of a session: a tag and its attribute rows
// in insertion order. Rows may be empty placeholders.
type RawInput struct {
	Tag        string         `json:"tag" yaml:"tag"`
	Attributes []AttributeRow `json:"attributes" yaml:"attributes"`
}

// Clone returns a deep copy so callers can hand out snapshots safely.
func (r RawInput) Clone() RawInput {
	out := RawInput{Tag: r.Tag}
	if r.Attributes != nil {
		out.Attributes = make([]AttributeRow, len(r.Attributes))
		copy(out.Attributes, r.Attributes)
	}
	return out
}

// Attribute is a validated attribute. A nil Value marks a boolean attribute
// that is rendered without a value.
type Attribute struct {
	Key   string  `json:"key" yaml:"key"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}

// IsFlag reports whether the attribute has no value.
func (a Attribute) IsFlag() bool {
	return a.Value == nil
}

// Document is the validated result of Build.
type Document struct {
	Tag        string      `json:"tag" yaml:"tag"`
	Attributes []Attribute `json:"attributes" yaml:"attributes"`
}

// StringValue returns a pointer to v, for building attributes by hand.
func StringValue(v string) *string {
	return &v
}
