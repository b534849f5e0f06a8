package jsonprint

import (
	"bytes"
	"io"
	"os"

	"github.com/rpcpool/injson/document"
)

// printer holds the layout state for one Print call.
type printer struct {
	s     *sink
	flags Flag
}

func (p *printer) newline() error {
	if p.flags.has(NewlineWindows) {
		return p.s.writeString("\r\n")
	}
	return p.s.writeByte('\n')
}

func (p *printer) indent(depth int) error {
	if !p.flags.has(Pretty) {
		return nil
	}
	for i := 0; i < depth*4; i++ {
		if err := p.s.writeByte(' '); err != nil {
			return err
		}
	}
	return nil
}

// Print serializes doc's root value to w according to flags and returns
// the number of bytes written. On a short or failed write from w, printing
// stops immediately and zero is returned alongside the error.
func Print(doc *document.Document, flags Flag, w WriteFunc) (int64, error) {
	p := &printer{s: newSink(w), flags: flags}
	root := doc.Root()
	if root.IsNil() {
		if err := p.s.writeString("{"); err != nil {
			return 0, err
		}
		if err := p.s.writeByte('\n'); err != nil {
			return 0, err
		}
		if err := p.s.writeByte('}'); err != nil {
			return 0, err
		}
		return p.s.n, nil
	}
	if err := p.printValue(doc, root, 0); err != nil {
		return 0, err
	}
	return p.s.n, nil
}

// PrintWriter is a convenience wrapping any io.Writer.
func PrintWriter(doc *document.Document, flags Flag, w io.Writer) (int64, error) {
	return Print(doc, flags, fromWriter(w))
}

// PrintFile writes doc to an already-open *os.File.
func PrintFile(doc *document.Document, flags Flag, f *os.File) (int64, error) {
	return PrintWriter(doc, flags, f)
}

// PrintPath creates (or truncates) path and writes doc to it.
func PrintPath(doc *document.Document, flags Flag, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return PrintFile(doc, flags, f)
}

// ToString renders doc to an in-memory string.
func ToString(doc *document.Document, flags Flag) (string, error) {
	var buf bytes.Buffer
	if _, err := PrintWriter(doc, flags, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (p *printer) printValue(doc *document.Document, v document.Value, depth int) error {
	switch v.Tag() {
	case document.TagNil:
		return p.s.writeString("null")
	case document.TagBool:
		b, _ := doc.Bool(v)
		if b {
			return p.s.writeString("true")
		}
		return p.s.writeString("false")
	case document.TagShortInt, document.TagInt:
		n, _ := doc.Int(v)
		return p.s.writeString(formatInt(n))
	case document.TagNum:
		f, _ := doc.Num(v)
		return p.s.writeString(formatNum(f))
	case document.TagStr:
		s, _ := doc.String(v)
		return p.writeString(s)
	case document.TagObject:
		o, _ := doc.Object(v)
		return p.printObject(doc, o, depth)
	case document.TagArray:
		a, _ := doc.Array(v)
		return p.printArray(doc, a, depth)
	default:
		return p.s.writeString("null")
	}
}

func (p *printer) printObject(doc *document.Document, o document.Object, depth int) error {
	if err := p.s.writeByte('{'); err != nil {
		return err
	}
	n := o.Len()
	if n == 0 {
		if p.flags.has(Pretty) {
			if err := p.newline(); err != nil {
				return err
			}
		}
		return p.s.writeByte('}')
	}
	for i := 0; i < n; i++ {
		if p.flags.has(Pretty) {
			if err := p.newline(); err != nil {
				return err
			}
			if err := p.indent(depth + 1); err != nil {
				return err
			}
		}
		e := o.At(i)
		if err := p.writeString(e.Key); err != nil {
			return err
		}
		if err := p.s.writeByte(':'); err != nil {
			return err
		}
		if p.flags.has(Pretty) {
			if err := p.s.writeByte(' '); err != nil {
				return err
			}
		}
		if err := p.printValue(doc, e.Value, depth+1); err != nil {
			return err
		}
		if i < n-1 {
			if err := p.s.writeByte(','); err != nil {
				return err
			}
		}
	}
	if p.flags.has(Pretty) {
		if err := p.newline(); err != nil {
			return err
		}
		if err := p.indent(depth); err != nil {
			return err
		}
	}
	return p.s.writeByte('}')
}

func (p *printer) printArray(doc *document.Document, a document.Array, depth int) error {
	if err := p.s.writeByte('['); err != nil {
		return err
	}
	n := a.Len()
	if n == 0 {
		return p.s.writeByte(']')
	}
	for i := 0; i < n; i++ {
		if p.flags.has(Pretty) {
			if err := p.newline(); err != nil {
				return err
			}
			if err := p.indent(depth + 1); err != nil {
				return err
			}
		}
		if err := p.printValue(doc, a.At(i), depth+1); err != nil {
			return err
		}
		if i < n-1 {
			if err := p.s.writeByte(','); err != nil {
				return err
			}
		}
	}
	if p.flags.has(Pretty) {
		if err := p.newline(); err != nil {
			return err
		}
		if err := p.indent(depth); err != nil {
			return err
		}
	}
	return p.s.writeByte(']')
}
