// Package encode writes doc.Node trees in any of the supported formats.
//
//	// JSON, compact
//	err := encode.Encode(node, w)
//
//	// pretty JSON
//	err := encode.Encode(node, w, encode.EncodeIndent(2))
//
//	// FSON
//	err := encode.Encode(node, w, encode.EncodeFormat(format.FSONFormat))
//
// # Related Packages
//
//   - github.com/signadot/docwire/parse - decode any format
//   - github.com/signadot/docwire/json, bson, fson, yaml - the codecs
package encode
