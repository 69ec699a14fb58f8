package domain

import "go.trai.ch/zerr"

var (
	// ErrFileAlreadyExists is returned when attempting to add a file that is already in the graph.
	ErrFileAlreadyExists = zerr.New("file already exists")

	// ErrMissingDependency is returned when a declared dependency does not resolve to a file on disk.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected among declared dependency edges.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrEntryNotFound is returned when the entry file cannot be located.
	ErrEntryNotFound = zerr.New("entry file not found")

	// ErrCompilationFailed is returned when the external compiler exits non-zero.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrRuntimeFailed is returned when the external runtime exits non-zero.
	// It is reported after a build has already completed and never rolls back build state.
	ErrRuntimeFailed = zerr.New("program execution failed")
)
