package dialect

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is a language a source file may be written in.
type Kind uint8

const (
	Unknown Kind = iota
	VisualBasic
	CSharp

	kindCount
)

func (k Kind) String() string {
	switch k {
	case VisualBasic:
		return "vb"
	case CSharp:
		return "csharp"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// FromExtension maps a path to the language its extension promises.
func FromExtension(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vb", ".bas", ".cls", ".vbs":
		return VisualBasic
	case ".cs", ".csx":
		return CSharp
	default:
		return Unknown
	}
}
