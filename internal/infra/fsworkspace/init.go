package fsworkspace

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

// dayDir is the directory of one day under the inputs dir.
func dayDir(day int) string {
	return fmt.Sprintf("day-%d", day)
}

type Initializer struct {
	inputsDir string
	inputFile string
}

type Option func(*Initializer)

func WithInputsDir(dir string) Option {
	return func(i *Initializer) { i.inputsDir = dir }
}

func WithInputFile(name string) Option {
	return func(i *Initializer) { i.inputFile = name }
}

func NewInitializer(opts ...Option) *Initializer {
	i := &Initializer{
		inputsDir: "days",
		inputFile: filepath.Join("resources", "input"),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init writes the workspace skeleton. Existing files are kept unless force is set;
// puzzle inputs are never touched.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	dirs := []string{filepath.Join(root, ".advent", "logs")}
	for _, day := range spec.Days {
		inputPath := filepath.Join(root, i.inputsDir, dayDir(day), i.inputFile)
		dirs = append(dirs, filepath.Dir(inputPath))
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindExecution, Path: d, Err: err}
		}
	}

	if err := ensureGitignore(root, i.inputEntry()); err != nil {
		return &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return &domain.OpError{Op: "fsworkspace.write", Kind: domain.KindExecution, Path: dst, Err: err}
		}
		return nil
	})
}

// inputEntry is the .gitignore pattern matching every day's input file.
func (i *Initializer) inputEntry() string {
	return filepath.ToSlash(filepath.Join(i.inputsDir, "*", i.inputFile))
}

func ensureGitignore(root string, inputEntry string) error {
	const header = "# Advent"
	entries := []string{
		".advent/",
		inputEntry,
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
