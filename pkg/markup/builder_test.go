package markup

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		raw     RawInput
		want    *Document
		wantErr error
	}{
		{
			name:    "empty tag",
			raw:     RawInput{Tag: ""},
			wantErr: ErrEmptyTag,
		},
		{
			name:    "whitespace tag",
			raw:     RawInput{Tag: " \t "},
			wantErr: ErrEmptyTag,
		},
		{
			name:    "tag sanitizes to nothing",
			raw:     RawInput{Tag: "???"},
			wantErr: ErrInvalidTagCharacters,
		},
		{
			name: "blank key rows dropped and flags detected",
			raw: RawInput{
				Tag: "div",
				Attributes: []AttributeRow{
					{Key: "key1", Value: "val1"},
					{Key: "", Value: "ignored"},
					{Key: "flag", Value: ""},
				},
			},
			want: &Document{
				Tag: "div",
				Attributes: []Attribute{
					{Key: "key1", Value: StringValue("val1")},
					{Key: "flag"},
				},
			},
		},
		{
			name: "invalid key fails regardless of valid rows",
			raw: RawInput{
				Tag: "div",
				Attributes: []AttributeRow{
					{Key: "ok", Value: "1"},
					{Key: "!!!", Value: "x"},
					{Key: "later", Value: "2"},
				},
			},
			wantErr: ErrInvalidAttributeKey,
		},
		{
			name: "duplicates preserved in order",
			raw: RawInput{
				Tag: "p",
				Attributes: []AttributeRow{
					{Key: "a", Value: "1"},
					{Key: "b", Value: "2"},
					{Key: "a", Value: "3"},
				},
			},
			want: &Document{
				Tag: "p",
				Attributes: []Attribute{
					{Key: "a", Value: StringValue("1")},
					{Key: "b", Value: StringValue("2")},
					{Key: "a", Value: StringValue("3")},
				},
			},
		},
		{
			name: "values trimmed but not sanitized",
			raw: RawInput{
				Tag: " my tag ",
				Attributes: []AttributeRow{
					{Key: "data value", Value: "  a <b> & \"c\"  "},
					{Key: "  ", Value: "  "},
					{Key: "hidden", Value: "   "},
				},
			},
			want: &Document{
				Tag: "my_tag",
				Attributes: []Attribute{
					{Key: "data_value", Value: StringValue(`a <b> & "c"`)},
					{Key: "hidden"},
				},
			},
		},
		{
			name: "no rows",
			raw:  RawInput{Tag: "br"},
			want: &Document{Tag: "br", Attributes: []Attribute{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_KeyErrorDetails(t *testing.T) {
	raw := RawInput{
		Tag: "div",
		Attributes: []AttributeRow{
			{Key: "", Value: ""},
			{Key: " ?! ", Value: "v"},
		},
	}

	_, err := Build(raw)
	require.Error(t, err)

	var keyErr *KeyError
	require.True(t, errors.As(err, &keyErr))
	assert.Equal(t, 1, keyErr.Index)
	assert.Equal(t, " ?! ", keyErr.Key)
	assert.Contains(t, err.Error(), "attribute 2")
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	raw := RawInput{
		Tag:        "  a b  ",
		Attributes: []AttributeRow{{Key: " k ", Value: " v "}},
	}
	before := raw.Clone()

	_, err := Build(raw)
	require.NoError(t, err)
	assert.Equal(t, before, raw)
}

func TestRawInput_Clone(t *testing.T) {
	raw := RawInput{Tag: "a", Attributes: []AttributeRow{{Key: "k", Value: "v"}}}
	clone := raw.Clone()
	clone.Attributes[0].Key = "changed"

	assert.Equal(t, "k", raw.Attributes[0].Key)
	assert.Nil(t, RawInput{Tag: "x"}.Clone().Attributes)
}
