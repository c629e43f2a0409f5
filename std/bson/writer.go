// Package bson provides the fallible document writer the payload serializers
// write into, and a bsoncore backed implementation of it.
package bson

// Writer appends fields to a BSON document under construction.
//
// BeginArray and BeginDocument open a nested frame that receives every
// following append until the matching EndArray or EndDocument. Inside an
// array, field names are expected to be the decimal element indexes.
// Every call can fail; after a failure the document is in an unspecified
// state and should be discarded.
type Writer interface {
	BeginArray(name string) error
	BeginDocument(name string) error
	AppendBinary(name string, subtype byte, data []byte) error
	AppendInt64(name string, v int64) error
	EndDocument() error
	EndArray() error
}
