// Package history provides command-based undo/redo for a tabular store.
//
// Every mutation of the editing surface is captured as a Command that
// knows how to reverse and reapply itself against a Store. The Manager
// keeps the commands in a single linear log with a cursor pointing at
// the last applied command; appending after an undo discards the
// redoable tail, so the log is a line, never a tree.
//
// Cursor -1 denotes the pristine, as-loaded dataset. JumpTo walks the
// cursor one command at a time, which is the only supported way to
// reach an arbitrary historical state.
package history
