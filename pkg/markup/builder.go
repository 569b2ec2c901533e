package markup

import "strings"

// Build validates raw and returns the document it describes. It stops at the
// first invalid key; rows whose key is blank are skipped. raw is not modified.
func Build(raw RawInput) (*Document, error) {
	if strings.TrimSpace(raw.Tag) == "" {
		return nil, ErrEmptyTag
	}

	tag := Sanitize(raw.Tag)
	if tag == "" {
		return nil, ErrInvalidTagCharacters
	}

	attrs := make([]Attribute, 0, len(raw.Attributes))
	for i, row := range raw.Attributes {
		key := Sanitize(row.Key)
		if key == "" {
			if strings.TrimSpace(row.Key) == "" {
				continue
			}
			return nil, &KeyError{Index: i, Key: row.Key}
		}

		attr := Attribute{Key: key}
		if value := strings.TrimSpace(row.Value); value != "" {
			attr.Value = &value
		}
		attrs = append(attrs, attr)
	}

	return &Document{Tag: tag, Attributes: attrs}, nil
}
