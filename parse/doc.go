// Package parse decodes documents in any of the supported formats into
// doc.Node trees.
//
//	node, err := parse.Parse(data)                                    // JSON
//	node, err := parse.Parse(data, parse.ParseFormat(format.BSONFormat))
//
// A Decoder reads a stream of documents: whitespace separated JSON
// values, concatenated BSON or FSON documents, or a single YAML document.
package parse
