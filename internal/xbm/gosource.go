package xbm

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ident turns an XBM name such as "bizcat" or "my_font" into an exported Go
// identifier ("Bizcat", "MyFont").
func Ident(name string) string {
	title := cases.Title(language.Und)
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(title.String(p))
	}
	id := sb.String()
	if id == "" || unicode.IsDigit(rune(id[0])) {
		id = "X" + id
	}
	return id
}

// GoSource renders the bitmap as a Go file in package pkg declaring
// <Ident>Width, <Ident>Height and <Ident>Bits.
func (b *Bitmap) GoSource(pkg string) ([]byte, error) {
	id := Ident(b.Name)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by xbm2go from %s.xbm. DO NOT EDIT.\n\n", b.Name)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "const (\n%sWidth = %d\n%sHeight = %d\n)\n\n", id, b.Width, id, b.Height)
	fmt.Fprintf(&buf, "var %sBits = []byte{", id)
	for i, v := range b.Bits {
		if i%12 == 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "0x%02x, ", v)
	}
	buf.WriteString("\n}\n")

	return format.Source(buf.Bytes())
}
