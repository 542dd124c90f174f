// Package bson reads and writes doc.Node trees in the BSON binary document
// format (https://bsonspec.org).
//
// A document is an int32 total length, a sequence of elements and a 0x00
// terminator. Each element is a type byte, a NUL terminated name and a
// payload. The supported element types are:
//
//	0x01 number  8 byte little-endian double
//	0x02 string  int32 length (including NUL) + UTF-8 + NUL
//	0x03 object  embedded document
//	0x04 array   embedded document with keys "0", "1", ...
//	0x08 boolean 0x00 or 0x01
//	0x09 date    int64 milliseconds since the Unix epoch
//	0x0A null    no payload
//	0x10 int32   4 byte little-endian
//	0x12 int64   8 byte little-endian
//
// Other BSON types (binary, ObjectId, regex, decimal128, ...) fail with
// doc.ErrUnsupported.
//
// Object fields are written in the order of doc.Node, which sorts names,
// so BSON field order is always lexicographic. Integers are written as
// int32 when they fit and int64 otherwise.
package bson
