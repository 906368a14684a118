package jsonfile

// Config holds file storage settings
type Config struct {
	// Dir is the directory holding the two JSON documents
	Dir string
}

// DefaultConfig returns the storage directory the application has always
// used: a "data" directory relative to the working directory.
func DefaultConfig() Config {
	return Config{
		Dir: "data",
	}
}
