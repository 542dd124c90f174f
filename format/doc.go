// Package format names the wire formats a document can be read from and
// written to.
//
// # Usage
//
//	f, err := format.ParseFormat("bson")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f, f.Suffix()) // bson .bson
//
// # Related Packages
//
//   - github.com/signadot/docwire/parse - Decode any format to a doc.Node
//   - github.com/signadot/docwire/encode - Encode a doc.Node to any format
package format
