package driver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"codecleanup/internal/source"
)

// StdinPath names standard input on the command line and in reports.
const StdinPath = "-"

// ErrNotFound is returned when the inputs hold no Visual Basic sources.
var ErrNotFound = errors.New("no Visual Basic sources found")

// Load registers one input in fs. "-" reads stdin.
func Load(fileSet *source.FileSet, path string, stdin io.Reader) (source.FileID, error) {
	if path == StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return 0, fmt.Errorf("failed to read stdin: %w", err)
		}
		return fileSet.AddVirtual("<stdin>", data), nil
	}
	id, err := fileSet.Load(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return id, nil
}

func isSourceFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".vb")
}

// listVBFiles возвращает отсортированный список всех *.vb файлов в директории
func listVBFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// bin/obj — артефакты сборки
			if path != dir && (strings.HasPrefix(d.Name(), ".") || d.Name() == "bin" || d.Name() == "obj") {
				return filepath.SkipDir
			}
			return nil
		}
		if isSourceFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ExpandInputs turns command-line arguments into a list of files. Files are
// taken as given whatever their extension; directories contribute their
// *.vb files in lexical order.
func ExpandInputs(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if arg == StdinPath {
			out = append(out, arg)
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			out = append(out, arg)
			continue
		}
		files, err := listVBFiles(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		out = append(out, files...)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}
