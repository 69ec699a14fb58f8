package config

import (
	"os"

	"go.trai.ch/zerr"
)

// Template is the starter configuration written by `javelin init`.
const Template = `# javelin configuration file

# Source directory containing your Java files.
srcDir: "."

# Output directory for compiled .class files.
outDir: "out"

# Location of the build cache file.
cacheFile: "javelin-cache.json"

# Default entrypoint when no file is specified on the command line.
entrypoint: "Main.java"

# JVM options passed when running your program.
jvmOpts: ["-Xmx256m"]

# Promote referenced-but-undeclared sibling classes into the compilation set.
autoImplicit: false

# Cache invalidation strictness:
#   content    - recompile only files whose own content changed (default)
#   transitive - additionally recompile every dependent of a changed file
invalidation: "content"
`

// ErrConfigExists is returned when init would overwrite an existing config file.
var ErrConfigExists = zerr.New("config file already exists")

// WriteTemplate writes the starter configuration to path.
// An existing file is only replaced when force is set.
func WriteTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return zerr.With(zerr.Wrap(ErrConfigExists, "refusing to overwrite configuration"), "path", path)
	}

	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil { //nolint:gosec // Project config is world-readable
		return zerr.With(zerr.Wrap(err, "failed to write config file"), "path", path)
	}
	return nil
}
