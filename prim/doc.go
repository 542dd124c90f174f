// Package prim encodes integers, floats, booleans, timestamps and strings
// as variable-length byte sequences.
//
// # Integers
//
// An integer is written as the minimum number of 7-bit groups, most
// significant group first. Every byte has its top bit clear except the
// last byte of the number, whose top bit is set to mark the end:
//
//	AppendUint(nil, 5)    // 0x85
//	AppendUint(nil, 300)  // 0x02 0xac
//	AppendInt(nil, -1)    // 0xff
//	AppendInt(nil, 64)    // 0x00 0xc0
//
// Signed integers are split with arithmetic shifts, so the leading group
// of a negative number carries its sign and decoding sign-extends from the
// number of bits read. UintLen and IntLen give the encoded size.
//
// Floats are written as the unsigned integer of their IEEE-754 bits,
// timestamps as signed milliseconds since the Unix epoch and booleans as a
// single 0x00 or 0x01 byte.
//
// # Strings
//
// AppendTermString marks the end of a string the same way integers are
// terminated: each byte is copied verbatim except the last, whose top bit
// is set. That only works for non-empty ASCII, since any byte with its top
// bit set ends the string on decode. AppendString writes a length prefix
// followed by the raw bytes and carries any string.
package prim
