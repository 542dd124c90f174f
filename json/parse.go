package json

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/signadot/docwire/doc"
)

type state uint8

const (
	stDocument    state = iota // before the top-level value
	stEnd                      // after the top-level value
	stObjectOpen               // after '{'
	stObjectName               // after ',' in an object
	stObjectColon              // after a name
	stObjectValue              // after ':'
	stObjectNext               // after a member value
	stArrayOpen                // after '['
	stArrayValue               // after ',' in an array
	stArrayNext                // after an element
	stString
	stNumber
	stLiteral
)

var stateNames = [...]string{
	stDocument:    "document",
	stEnd:         "end",
	stObjectOpen:  "object-open",
	stObjectName:  "object-name",
	stObjectColon: "object-colon",
	stObjectValue: "object-value",
	stObjectNext:  "object-next",
	stArrayOpen:   "array-open",
	stArrayValue:  "array-value",
	stArrayNext:   "array-next",
	stString:      "string",
	stNumber:      "number",
	stLiteral:     "literal",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// string sub states
const (
	strChar = iota
	strEscape
	strHex
	strLowBackslash // after a high surrogate escape
	strLowU
)

// number sub states
const (
	numMinus = iota
	numZero
	numInt
	numFracStart
	numFrac
	numExpStart
	numExpSign
	numExp
)

// frame is one entry of the parser stack. Which fields are meaningful
// depends on state.
type frame struct {
	state state

	// arrays
	count int

	// strings and numbers
	sub int

	// strings
	name bool
	hex  rune
	nhex int
	high rune

	// literals
	lit string
	pos int

	// numbers
	float bool
	over  bool
	neg   bool
	mag   uint64
}

// Parser is a push parser for JSON text. Runes are supplied with Feed and
// the document is reported to a doc.Observer as it is recognised.
type Parser struct {
	o     doc.Observer
	opts  *opts
	stack []frame
	depth int
	// buf accumulates the text of the current string or number.
	buf []byte

	off       int64
	line, col int
	err       error
}

func NewParser(o doc.Observer, options ...Option) *Parser {
	p := &Parser{o: o, opts: getOpts(options)}
	p.Reset()
	return p
}

// Reset prepares p for a new document, keeping its observer and options.
func (p *Parser) Reset() {
	p.next()
	p.off = 0
	p.line, p.col = 1, 1
}

// next prepares p for the next document of a stream.
func (p *Parser) next() {
	p.stack = append(p.stack[:0], frame{state: stDocument})
	p.depth = 0
	p.buf = p.buf[:0]
	p.err = nil
}

// Offset returns the number of bytes fed so far.
func (p *Parser) Offset() int64 {
	return p.off
}

// Started reports whether any part of the top-level value has been seen.
func (p *Parser) Started() bool {
	return len(p.stack) > 1 || p.stack[0].state != stDocument
}

// Done reports whether the top-level value is complete. A top-level number
// is only complete once a following rune or End terminates it.
func (p *Parser) Done() bool {
	return p.err == nil && len(p.stack) == 1 && p.stack[0].state == stEnd
}

// Feed consumes one rune. Once Feed fails every later call returns the
// same error.
func (p *Parser) Feed(r rune) error {
	if p.err != nil {
		return p.err
	}
	if err := p.step(r); err != nil {
		p.err = err
		return err
	}
	p.advance(r)
	return nil
}

// End signals the end of input.
func (p *Parser) End() error {
	if p.err != nil {
		return p.err
	}
	if len(p.stack) == 2 && p.stack[1].state == stNumber && numTerminal(p.stack[1].sub) {
		if err := p.endNumber(); err != nil {
			p.err = err
			return err
		}
	}
	if p.Done() {
		return nil
	}
	if !p.Started() {
		p.err = p.syntaxf("empty input")
	} else {
		p.err = p.syntaxf("unexpected end of input in %s", p.top().state)
	}
	return p.err
}

func (p *Parser) advance(r rune) {
	n := utf8.RuneLen(r)
	if n < 0 {
		n = 1
	}
	p.off += int64(n)
	if r == '\n' {
		p.line++
		p.col = 1
		return
	}
	p.col++
}

func (p *Parser) syntaxf(format string, args ...any) error {
	return &SyntaxError{
		Msg:    fmt.Sprintf(format, args...),
		Offset: p.off,
		Line:   p.line,
		Col:    p.col,
	}
}

func (p *Parser) top() *frame {
	return &p.stack[len(p.stack)-1]
}

func (p *Parser) push(f frame) {
	if ce := p.opts.logger.Check(zap.DebugLevel, "push"); ce != nil {
		ce.Write(zap.Stringer("state", f.state), zap.Int("depth", len(p.stack)), zap.Int64("offset", p.off))
	}
	p.stack = append(p.stack, f)
}

func (p *Parser) pop() {
	p.stack = p.stack[:len(p.stack)-1]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (p *Parser) step(r rune) error {
	for {
		f := p.top()
		switch f.state {
		case stDocument:
			if isSpace(r) {
				return nil
			}
			f.state = stEnd
			return p.startValue(r)
		case stEnd:
			if isSpace(r) {
				return nil
			}
			return p.syntaxf("unexpected %q after top-level value", r)
		case stObjectOpen, stObjectName:
			if isSpace(r) {
				return nil
			}
			if r == '}' && f.state == stObjectOpen {
				return p.endContainer(doc.ObjectType)
			}
			if r != '"' {
				return p.syntaxf("unexpected %q, expected object name", r)
			}
			f.state = stObjectColon
			p.push(frame{state: stString, name: true})
			p.buf = p.buf[:0]
			return nil
		case stObjectColon:
			if isSpace(r) {
				return nil
			}
			if r != ':' {
				return p.syntaxf("unexpected %q, expected ':'", r)
			}
			f.state = stObjectValue
			return nil
		case stObjectValue:
			if isSpace(r) {
				return nil
			}
			f.state = stObjectNext
			return p.startValue(r)
		case stObjectNext:
			switch {
			case isSpace(r):
				return nil
			case r == ',':
				f.state = stObjectName
				return nil
			case r == '}':
				return p.endContainer(doc.ObjectType)
			}
			return p.syntaxf("unexpected %q, expected ',' or '}'", r)
		case stArrayOpen, stArrayValue:
			if isSpace(r) {
				return nil
			}
			if r == ']' && f.state == stArrayOpen {
				return p.endContainer(doc.ArrayType)
			}
			f.state = stArrayNext
			i := f.count
			f.count++
			if err := p.o.Index(i); err != nil {
				return err
			}
			return p.startValue(r)
		case stArrayNext:
			switch {
			case isSpace(r):
				return nil
			case r == ',':
				f.state = stArrayValue
				return nil
			case r == ']':
				return p.endContainer(doc.ArrayType)
			}
			return p.syntaxf("unexpected %q, expected ',' or ']'", r)
		case stString:
			return p.stringRune(f, r)
		case stLiteral:
			if r != rune(f.lit[f.pos]) {
				return p.syntaxf("unexpected %q in literal %s", r, f.lit)
			}
			f.pos++
			if f.pos < len(f.lit) {
				return nil
			}
			var v *doc.Node
			switch f.lit {
			case "true":
				v = doc.FromBool(true)
			case "false":
				v = doc.FromBool(false)
			default:
				v = doc.Null()
			}
			p.pop()
			return p.o.Value(v)
		case stNumber:
			done, err := p.numberRune(f, r)
			if err != nil || !done {
				return err
			}
			if err := p.endNumber(); err != nil {
				return err
			}
			// r follows the number
		default:
			panic("state")
		}
	}
}

func (p *Parser) startValue(r rune) error {
	switch {
	case r == '{' || r == '[':
		if p.depth >= p.opts.maxDepth {
			return p.syntaxf("nesting exceeds %d", p.opts.maxDepth)
		}
		p.depth++
		if r == '{' {
			p.push(frame{state: stObjectOpen})
			return p.o.StartObject()
		}
		p.push(frame{state: stArrayOpen})
		return p.o.StartArray()
	case r == '"':
		p.push(frame{state: stString})
		p.buf = p.buf[:0]
		return nil
	case r == '-' || isDigit(r):
		p.push(frame{state: stNumber})
		p.buf = p.buf[:0]
		f := p.top()
		if r == '-' {
			f.neg = true
			f.sub = numMinus
			p.buf = append(p.buf, '-')
			return nil
		}
		f.sub = numMinus
		_, err := p.numberRune(f, r)
		return err
	case r == 't':
		p.push(frame{state: stLiteral, lit: "true", pos: 1})
		return nil
	case r == 'f':
		p.push(frame{state: stLiteral, lit: "false", pos: 1})
		return nil
	case r == 'n':
		p.push(frame{state: stLiteral, lit: "null", pos: 1})
		return nil
	}
	return p.syntaxf("unexpected %q, expected value", r)
}

func (p *Parser) endContainer(t doc.Type) error {
	p.pop()
	p.depth--
	if ce := p.opts.logger.Check(zap.DebugLevel, "end"); ce != nil {
		ce.Write(zap.Stringer("type", t), zap.Int("depth", p.depth), zap.Int64("offset", p.off))
	}
	if t == doc.ObjectType {
		return p.o.EndObject()
	}
	return p.o.EndArray()
}

func hexVal(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10
	}
	return -1
}

func (p *Parser) stringRune(f *frame, r rune) error {
	switch f.sub {
	case strChar:
		switch {
		case r == '"':
			return p.endString(f.name)
		case r == '\\':
			f.sub = strEscape
		case r < 0x20:
			return p.syntaxf("control character %U in string", r)
		default:
			p.buf = utf8.AppendRune(p.buf, r)
		}
		return nil
	case strEscape:
		f.sub = strChar
		switch r {
		case '"', '\\', '/':
			p.buf = append(p.buf, byte(r))
		case 'b':
			p.buf = append(p.buf, '\b')
		case 'f':
			p.buf = append(p.buf, '\f')
		case 'n':
			p.buf = append(p.buf, '\n')
		case 'r':
			p.buf = append(p.buf, '\r')
		case 't':
			p.buf = append(p.buf, '\t')
		case 'u':
			f.sub = strHex
			f.hex, f.nhex = 0, 0
		default:
			return p.syntaxf("invalid escape %q", r)
		}
		return nil
	case strHex:
		h := hexVal(r)
		if h < 0 {
			return p.syntaxf("invalid hex digit %q in \\u escape", r)
		}
		f.hex = f.hex<<4 | h
		f.nhex++
		if f.nhex < 4 {
			return nil
		}
		return p.codeUnit(f)
	case strLowBackslash:
		if r != '\\' {
			return p.syntaxf("unpaired surrogate \\u%04x", f.high)
		}
		f.sub = strLowU
		return nil
	case strLowU:
		if r != 'u' {
			return p.syntaxf("unpaired surrogate \\u%04x", f.high)
		}
		f.sub = strHex
		f.hex, f.nhex = 0, 0
		return nil
	default:
		panic("string state")
	}
}

// codeUnit handles a complete \uXXXX escape.
func (p *Parser) codeUnit(f *frame) error {
	u := f.hex
	f.sub = strChar
	if f.high != 0 {
		if !utf16.IsSurrogate(u) || u < 0xdc00 {
			return p.syntaxf("unpaired surrogate \\u%04x", f.high)
		}
		p.buf = utf8.AppendRune(p.buf, utf16.DecodeRune(f.high, u))
		f.high = 0
		return nil
	}
	switch {
	case u >= 0xd800 && u < 0xdc00:
		f.high = u
		f.sub = strLowBackslash
		return nil
	case u >= 0xdc00 && u < 0xe000:
		return p.syntaxf("unpaired surrogate \\u%04x", u)
	}
	p.buf = utf8.AppendRune(p.buf, u)
	return nil
}

func (p *Parser) endString(name bool) error {
	s := string(p.buf)
	p.pop()
	if name {
		return p.o.Name(s)
	}
	return p.o.Value(doc.FromString(s))
}

func numTerminal(sub int) bool {
	switch sub {
	case numZero, numInt, numFrac, numExp:
		return true
	}
	return false
}

// numberRune consumes r as part of a number, or reports that the number
// ended before r.
func (p *Parser) numberRune(f *frame, r rune) (bool, error) {
	switch f.sub {
	case numMinus:
		switch {
		case r == '0':
			f.sub = numZero
		case isDigit(r):
			f.sub = numInt
			p.accumulate(f, r)
		default:
			return false, p.syntaxf("unexpected %q, expected digit", r)
		}
	case numZero:
		switch {
		case isDigit(r):
			return false, p.syntaxf("leading zero in number")
		case r == '.':
			f.sub = numFracStart
			f.float = true
		case r == 'e' || r == 'E':
			f.sub = numExpStart
			f.float = true
		default:
			return true, nil
		}
	case numInt:
		switch {
		case isDigit(r):
			p.accumulate(f, r)
		case r == '.':
			f.sub = numFracStart
			f.float = true
		case r == 'e' || r == 'E':
			f.sub = numExpStart
			f.float = true
		default:
			return true, nil
		}
	case numFracStart:
		if !isDigit(r) {
			return false, p.syntaxf("unexpected %q, expected fraction digit", r)
		}
		f.sub = numFrac
	case numFrac:
		switch {
		case isDigit(r):
		case r == 'e' || r == 'E':
			f.sub = numExpStart
		default:
			return true, nil
		}
	case numExpStart:
		switch {
		case r == '+' || r == '-':
			f.sub = numExpSign
		case isDigit(r):
			f.sub = numExp
		default:
			return false, p.syntaxf("unexpected %q, expected exponent", r)
		}
	case numExpSign:
		if !isDigit(r) {
			return false, p.syntaxf("unexpected %q, expected exponent digit", r)
		}
		f.sub = numExp
	case numExp:
		if !isDigit(r) {
			return true, nil
		}
	default:
		panic("number state")
	}
	p.buf = append(p.buf, byte(r))
	return false, nil
}

// accumulate adds a digit to the integer magnitude, noting overflow past
// 2^63.
func (p *Parser) accumulate(f *frame, r rune) {
	if f.over {
		return
	}
	d := uint64(r - '0')
	if f.mag > (1<<63-d)/10 {
		f.over = true
		return
	}
	f.mag = f.mag*10 + d
}

func (p *Parser) endNumber() error {
	f := *p.top()
	p.pop()
	if !f.float && !f.over {
		switch {
		case f.neg:
			return p.o.Value(doc.FromInt(-int64(f.mag)))
		case f.mag <= math.MaxInt64:
			return p.o.Value(doc.FromInt(int64(f.mag)))
		}
	}
	v, err := strconv.ParseFloat(string(p.buf), 64)
	if err != nil {
		return fmt.Errorf("%w: json: number %s out of range at offset %d", doc.ErrUnsupported, p.buf, p.off)
	}
	return p.o.Value(doc.FromFloat(v))
}
