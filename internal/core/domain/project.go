package domain

// Invalidation selects the cache invalidation strictness.
type Invalidation string

const (
	// InvalidateContent recompiles only files whose own content changed.
	// Dependents of a changed file are not re-added to the changed set.
	InvalidateContent Invalidation = "content"
	// InvalidateTransitive additionally recompiles every dependent of a
	// changed file.
	InvalidateTransitive Invalidation = "transitive"
)

// Project holds the resolved project configuration for one invocation.
type Project struct {
	// SrcDir is the single source root dependency names resolve against.
	SrcDir string
	// OutDir receives the compiled artifacts.
	OutDir string
	// CacheFile is the location of the persisted build cache document.
	CacheFile string
	// Entrypoint is the default entry file when none is given on the command line.
	Entrypoint string
	// JVMOpts are extra options handed to the runtime, in order.
	JVMOpts []string
	// AutoImplicit promotes inferred dependencies into the compilation set.
	AutoImplicit bool
	// Invalidation selects the changed-set strictness level.
	Invalidation Invalidation
}
