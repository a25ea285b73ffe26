package ports

// Hasher provides content hashing for artifact change detection.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile computes the content hash of a file on disk.
	HashFile(path string) (uint64, error)

	// HashBytes computes the content hash of an in-memory artifact.
	HashBytes(data []byte) uint64
}
