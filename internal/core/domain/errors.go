package domain

import "go.trai.ch/zerr"

var (
	// ErrCycle is returned when a non-entity object value is encountered
	// twice while walking the same container subtree. Entity cycles are
	// legal; plain nested values must form a tree.
	ErrCycle = zerr.New("cycle in non-entity payload value")

	// ErrEditorCommitted is returned when an editor is used after Commit.
	ErrEditorCommitted = zerr.New("editor already committed")

	// ErrEditorAborted is returned when an editor is used after a failed
	// merge. The transaction's working state is indeterminate after an
	// error; callers must discard the editor.
	ErrEditorAborted = zerr.New("editor aborted by a failed merge")

	// ErrMissingVariable is returned when a query references a variable
	// that was not supplied.
	ErrMissingVariable = zerr.New("query variable not supplied")
)
