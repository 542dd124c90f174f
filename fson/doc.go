// Package fson implements FSON, a compact tag-framed binary encoding of
// doc.Node trees.
//
// # Layout
//
// Every value starts with a one byte tag. Scalars are followed by their
// payload, encoded with package prim:
//
//	's' string     varint length + bytes
//	'd' number     IEEE-754 bits as unsigned varint
//	'i' integer    signed varint
//	't' timestamp  signed varint milliseconds
//	'b' boolean    0x00 or 0x01
//	'n' null       no payload
//
// Objects are '{', then for each field ':' + name (as a string payload) +
// value, then ';'. Arrays are '[', the values, then ';'. A bare scalar is a
// complete document.
//
// Strings are length-prefixed rather than terminated by a high bit, so
// names and values may contain any UTF-8 text and may be empty.
//
// FSON is not a published format and only interoperates with itself.
package fson
