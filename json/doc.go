// Package json reads and writes doc.Node trees as RFC 8259 JSON text.
//
// # Encoding
//
// The Encoder is a doc.Observer, so any decoder can stream directly into
// JSON text. Integers are written without a decimal point and numbers
// always with one, so the integer/number distinction survives a round
// trip. Dates have no JSON representation and are written as their
// integer milliseconds since the Unix epoch.
//
//	data, err := json.Marshal(node, json.Indent(2))
//
// # Decoding
//
// The Parser is a character driven state machine with an explicit stack:
// it is fed one rune at a time and reports what it sees to a
// doc.Observer. It never recurses, so deeply nested input is bounded only
// by MaxDepth. The grammar is strict: trailing commas, comments, single
// quotes, unquoted names, leading zeros, lone surrogate escapes and
// trailing garbage are all rejected with a *SyntaxError.
//
// Integer literals outside the int64 range, and any literal with a
// fraction or exponent, decode as numbers (float64).
package json
