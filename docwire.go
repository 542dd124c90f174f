// Package docwire holds operations over whole documents which are not
// tied to one codec: structural matching, JSON Pointer lookup and format
// conversion.
//
// The document model lives in package doc, the codecs in json, bson, fson
// and yaml, and format dispatch in encode and parse.
package docwire
