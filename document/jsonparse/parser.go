package jsonparse

import (
	"github.com/rpcpool/injson/document"
	"github.com/rpcpool/injson/document/jsonsrc"
)

// parser drives a single recursive-descent parse into a fresh document.
type parser struct {
	c   *cursor
	doc *document.Document
}

// Parse consumes src in full and returns a freshly populated Document. On
// any error the returned Document is nil; no partial state is observable.
func Parse(src *jsonsrc.Source) (*document.Document, error) {
	p := &parser{c: newCursor(src), doc: document.New()}

	p.c.skipWhitespace()
	b, ok := p.c.peek()
	if !ok {
		return nil, p.c.errorf(document.ErrUnexpectedEOF, "empty input")
	}
	if b != '{' && b != '[' {
		return nil, p.c.errorf(document.ErrInvalidRoot, "root value must be an object or array")
	}

	root, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.doc.SetRoot(root)

	p.c.skipWhitespace()
	if _, ok := p.c.peek(); ok {
		return nil, p.c.errorf(document.ErrTrailingBytes, "trailing data after root value")
	}

	return p.doc, nil
}

// parseValue parses one JSON value at the current position, after any
// leading whitespace has already been skipped by the caller where
// required (top level) or by parseObject/parseArray (nested values).
func (p *parser) parseValue() (document.Value, error) {
	p.c.markTokenStart()
	b, ok := p.c.peek()
	if !ok {
		return 0, p.c.errorf(document.ErrUnexpectedEOF, "unexpected end of input, expected value")
	}
	switch {
	case b == '{':
		return p.parseObject()
	case b == '[':
		return p.parseArray()
	case b == '"':
		s, err := p.parseString()
		if err != nil {
			return 0, err
		}
		return p.doc.AddStringValue(s), nil
	case b == 't':
		return document.BoolValue(true), p.consumeLiteral("true")
	case b == 'f':
		return document.BoolValue(false), p.consumeLiteral("false")
	case b == 'n':
		err := p.consumeLiteral("null")
		return document.Nil, err
	case b == '-' || isDigit(b):
		n, err := p.parseNumber()
		if err != nil {
			return 0, err
		}
		if n.isInt {
			return p.doc.AddIntValue(n.ival)
		}
		return p.doc.AddNumValue(n.fval)
	default:
		return 0, p.c.errorf(document.ErrInvalidRoot, "invalid value: expected object, array, number, string, true, false, or null")
	}
}

func (p *parser) consumeLiteral(lit string) error {
	for i := 0; i < len(lit); i++ {
		b, ok := p.c.advance()
		if !ok || b != lit[i] {
			return p.c.errorf(document.ErrUnexpectedEOF, "expected literal %q", lit)
		}
	}
	return nil
}

// parseObject implements the object state machine from the spec: Start ->
// Expect-Key/Expect-Value loop with strict comma/key-count bookkeeping.
func (p *parser) parseObject() (document.Value, error) {
	p.c.advance() // consume '{'

	obj, err := p.doc.NewObject()
	if err != nil {
		return 0, err
	}
	objValue := obj.Value()

	count := 0
	for {
		p.c.skipWhitespace()
		b, ok := p.c.peek()
		if !ok {
			return 0, p.c.errorf(document.ErrUnexpectedEOF, "unexpected end of input in object")
		}
		if b == '}' {
			if count == 0 || obj.Len() == count {
				p.c.advance()
				break
			}
			return 0, p.c.errorf(document.ErrTrailingComma, "trailing comma before '}'")
		}
		if count > 0 {
			if b != ',' {
				return 0, p.c.errorf(document.ErrMissingSeparator, "expected ',' or '}' in object")
			}
			p.c.advance()
			p.c.skipWhitespace()
			if b, ok := p.c.peek(); ok && b == '}' {
				return 0, p.c.errorf(document.ErrTrailingComma, "trailing comma before '}'")
			}
		}

		p.c.markTokenStart()
		if b, ok := p.c.peek(); !ok || b != '"' {
			return 0, p.c.errorf(document.ErrMissingSeparator, "expected string key in object")
		}
		key, err := p.parseString()
		if err != nil {
			return 0, err
		}

		p.c.skipWhitespace()
		b, ok = p.c.peek()
		if !ok || b != ':' {
			return 0, p.c.errorf(document.ErrMissingColon, "expected ':' after key %q", key)
		}
		p.c.advance()
		p.c.skipWhitespace()

		pos := obj.Add(key)
		val, err := p.parseValue()
		if err != nil {
			return 0, err
		}
		obj.Set(pos, val)
		count++
	}

	obj.Truncate()
	return objValue, nil
}

// parseArray mirrors parseObject without keys.
func (p *parser) parseArray() (document.Value, error) {
	p.c.advance() // consume '['

	arr, err := p.doc.NewArray()
	if err != nil {
		return 0, err
	}
	arrValue := arr.Value()

	count := 0
	for {
		p.c.skipWhitespace()
		b, ok := p.c.peek()
		if !ok {
			return 0, p.c.errorf(document.ErrUnexpectedEOF, "unexpected end of input in array")
		}
		if b == ']' {
			if count == 0 || arr.Len() == count {
				p.c.advance()
				break
			}
			return 0, p.c.errorf(document.ErrTrailingComma, "trailing comma before ']'")
		}
		if count > 0 {
			if b != ',' {
				return 0, p.c.errorf(document.ErrMissingSeparator, "expected ',' or ']' in array")
			}
			p.c.advance()
			p.c.skipWhitespace()
			if b, ok := p.c.peek(); ok && b == ']' {
				return 0, p.c.errorf(document.ErrTrailingComma, "trailing comma before ']'")
			}
		}

		val, err := p.parseValue()
		if err != nil {
			return 0, err
		}
		arr.Push(val)
		count++
	}

	arr.Truncate()
	return arrValue, nil
}
