package ports

// Hasher defines the interface for computing content hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile computes the content hash of the file at path, formatted as a
	// fixed-width hex digest.
	HashFile(path string) (string, error)
}
