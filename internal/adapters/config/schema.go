package config

// Javelinfile represents the structure of the javelin.yaml configuration file.
type Javelinfile struct {
	SrcDir       string   `yaml:"srcDir"`
	OutDir       string   `yaml:"outDir"`
	CacheFile    string   `yaml:"cacheFile"`
	Entrypoint   string   `yaml:"entrypoint"`
	JVMOpts      []string `yaml:"jvmOpts"`
	AutoImplicit bool     `yaml:"autoImplicit"`
	Invalidation string   `yaml:"invalidation"`
}

// Defaults applied when the configuration file is absent or silent.
const (
	DefaultFilename   = "javelin.yaml"
	DefaultSrcDir     = "."
	DefaultOutDir     = "out"
	DefaultCacheFile  = "javelin-cache.json"
	DefaultEntrypoint = "Main.java"
)
