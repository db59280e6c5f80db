// Package reportview renders quill change reports for human review,
// either inline (lipgloss-styled, terminal-width aware) or in a
// full-screen scrollable pager.
package reportview
