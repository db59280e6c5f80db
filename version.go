// Package quill is the artifact-persistence layer for the Firebird
// Suite's code generators. See the artifact package for the writer API.
package quill

// Version is the current Quill version.
const Version = "0.1.0"
