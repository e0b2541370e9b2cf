package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command constants
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width + double height
)

// Document builds an ESC/POS byte stream for thermal printers.
// Call order matters; styling commands apply to the text written after them.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters: 32 for 58mm paper, 48 for 80mm
}

// NewDocument creates an initialized ESC/POS document with the given
// character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{esc, '@'}) // initialize printer
	return d
}

// LineFeed emits a single blank line.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(lf)
	return d
}

// FeedLines emits n blank lines.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter or AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{esc, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

// SetFontSize sets the character size: FontNormal or FontDouble.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{gs, '!', size})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
	return d
}

// TextF writes a formatted line of text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Separator prints a full-width separator line.
func (d *Document) Separator(char byte) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// KeyValue prints a left-aligned key and a right-aligned value on one line:
//
//	Subtotal                  $100.00
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	return d.Text(key + strings.Repeat(" ", spaces) + value)
}

// ItemLine prints a receipt item line with a right-aligned amount:
//
//	2x  Jollof Rice            $20.00
func (d *Document) ItemLine(qty int, name, amount string) *Document {
	return d.KeyValue(fmt.Sprintf("%dx  %s", qty, name), amount)
}

// PartialCut sends the partial paper cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
