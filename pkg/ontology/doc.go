// Package ontology is the runtime half of the ontology data model. The
// ontologygen compiler emits one record type per schema kind; those types
// implement Record and call into this package for the shared codecs:
//
//   - the canonical encoding that is hashed into a CID
//   - the Compact (CBOR) format
//   - the Web3 (hex JSON) format
//   - the v0 envelope
//   - the ABIv2 event layout
//
// Nothing in this package performs I/O or holds mutable state beyond the
// kind registry, which is populated from init functions.
package ontology
