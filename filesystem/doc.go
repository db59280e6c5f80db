// Package filesystem provides the whole-file primitives quill's writers
// are built on: existence checks, content comparison, and write-if-changed
// with recursive parent directory creation.
//
// All operations are synchronous and whole-file. There are no partial
// reads or writes, and no streaming.
package filesystem
