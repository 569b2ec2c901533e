package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldID_String(t *testing.T) {
	tests := []struct {
		field FieldID
		want  string
	}{
		{field: NoField, want: ""},
		{field: TagField(), want: "tag"},
		{field: KeyField(0), want: "attribute-key-0"},
		{field: KeyField(12), want: "attribute-key-12"},
		{field: ValueField(3), want: "attribute-value-3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.field.String())
	}
}

func TestFieldID_Traversal(t *testing.T) {
	order := []FieldID{TagField(), KeyField(0), ValueField(0), KeyField(1), ValueField(1)}

	for i, f := range order {
		assert.Equal(t, order[(i+1)%len(order)], f.Next(2), "next of %s", f)
		assert.Equal(t, order[(i-1+len(order))%len(order)], f.Prev(2), "prev of %s", f)
	}

	assert.Equal(t, TagField(), TagField().Next(0))
	assert.Equal(t, TagField(), TagField().Prev(0))
	assert.Equal(t, TagField(), NoField.Next(3))
}
