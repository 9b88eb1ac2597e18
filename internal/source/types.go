package source

type (
	// FileID identifies a file inside a FileSet.
	FileID uint32
	// FileFlags records how the file content was obtained and normalised.
	FileFlags uint8
)

const (
	// FileVirtual marks text that did not come from disk (stdin, tests).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is one compilation unit as handed to the lexer.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Valid reports whether the position was resolved against a real file.
func (lc LineCol) Valid() bool {
	return lc.Line > 0 && lc.Col > 0
}
