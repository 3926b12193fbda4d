package adapters

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mod-updater/internal/ports"
	"mod-updater/internal/types"
)

const (
	RemappedDir = "remappedSrc"
	SourceDir   = "src/main/java"
)

// placeholderImport is emitted by the remapper for `var` declarations and
// does not compile.
const placeholderImport = "import var;"

// RelocatorAdapter copies remapped sources over the original source root.
// Open and Create default to the os package.
type RelocatorAdapter struct {
	Open   func(path string) (io.ReadCloser, error)
	Create func(path string) (io.WriteCloser, error)
}

func NewRelocatorAdapter() RelocatorAdapter {
	return RelocatorAdapter{}
}

// Clean removes the remapped output of projectDir.
func (a RelocatorAdapter) Clean(projectDir string) error {
	if strings.TrimSpace(projectDir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project directory is empty")
	}
	if err := os.RemoveAll(filepath.Join(projectDir, RemappedDir)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to delete remapped sources").
			WithCause(err)
	}
	return nil
}

// Relocate moves every file under projectDir/remappedSrc to the same
// relative path under projectDir/src/main/java. The walk stops at the first
// file that cannot be copied.
func (a RelocatorAdapter) Relocate(projectDir string) error {
	if strings.TrimSpace(projectDir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project directory is empty")
	}
	remapped := filepath.Join(projectDir, RemappedDir)
	source := filepath.Join(projectDir, filepath.FromSlash(SourceDir))
	if _, err := os.Stat(remapped); errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("dir", remapped).Msg("no remapped sources")
		return nil
	}
	return filepath.WalkDir(remapped, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to walk remapped sources").
				WithCause(err)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(remapped, path)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to relativize remapped source").
				WithCause(err)
		}
		return a.relocateFile(path, filepath.Join(source, rel), remapped, rel)
	})
}

func (a RelocatorAdapter) relocateFile(src string, dest string, remapped string, rel string) error {
	failure := &types.RelocationError{
		Source:       src,
		Destination:  dest,
		RemappedRoot: remapped,
		Relative:     rel,
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		failure.Causes = append(failure.Causes, err)
		return failure
	}
	in, err := a.open(src)
	if err != nil {
		failure.Causes = append(failure.Causes, err)
		return failure
	}
	out, err := a.create(dest)
	if err != nil {
		failure.Causes = append(failure.Causes, err)
		closeInto(in, failure)
		return failure
	}
	if err := copyFiltered(in, out, src, dest); err != nil {
		failure.Causes = append(failure.Causes, err)
	}
	closeInto(in, failure)
	closeInto(out, failure)
	if len(failure.Causes) > 0 {
		return failure
	}
	if err := os.Remove(src); err != nil {
		failure.Causes = append(failure.Causes, err)
		return failure
	}
	return nil
}

func copyFiltered(in io.Reader, out io.Writer, src string, dest string) error {
	reader := bufio.NewReader(in)
	writer := bufio.NewWriter(out)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		if line != "" {
			text := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if text == placeholderImport {
				log.Warn().
					Str("source", src).
					Str("destination", dest).
					Msg("dropped `import var;` emitted by the remapper")
			} else if _, err := writer.WriteString(text + "\n"); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	return writer.Flush()
}

func closeInto(closer io.Closer, failure *types.RelocationError) {
	if err := closer.Close(); err != nil {
		failure.Causes = append(failure.Causes, err)
	}
}

func (a RelocatorAdapter) open(path string) (io.ReadCloser, error) {
	if a.Open != nil {
		return a.Open(path)
	}
	return os.Open(path)
}

func (a RelocatorAdapter) create(path string) (io.WriteCloser, error) {
	if a.Create != nil {
		return a.Create(path)
	}
	return os.Create(path)
}

var _ ports.RelocatorPort = RelocatorAdapter{}
