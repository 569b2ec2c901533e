package markup

import "strings"

// Serialize renders doc as an opening tag, a blank line and a closing tag.
// Only double quotes inside values are escaped.
func Serialize(doc *Document) string {
	var b strings.Builder

	b.WriteString("<")
	b.WriteString(doc.Tag)
	for _, attr := range doc.Attributes {
		b.WriteString(" ")
		b.WriteString(attr.Key)
		if !attr.IsFlag() {
			b.WriteString(`="`)
			b.WriteString(strings.ReplaceAll(*attr.Value, `"`, "&quot;"))
			b.WriteString(`"`)
		}
	}
	b.WriteString(">\n\n</")
	b.WriteString(doc.Tag)
	b.WriteString(">")

	return b.String()
}

// Render builds and serializes raw in one step.
func Render(raw RawInput) (string, error) {
	doc, err := Build(raw)
	if err != nil {
		return "", err
	}
	return Serialize(doc), nil
}
