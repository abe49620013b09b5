// Package nanohighlight writes nano syntax-highlighting rule files and the
// ~/.nanorc that loads them.
//
// A run produces:
//
//   - ~/.nano/python.nanorc, javascript.nanorc, html.nanorc, css.nanorc
//   - ~/.nanorc with the editor options and one include per rule file
//
// Every file is replaced on each run; content is static, so repeated runs
// are byte-identical.
package nanohighlight

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cptaffe/nano-highlight/logger"
	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

const (
	nanoDirName    = ".nano"
	masterFileName = ".nanorc"

	dirPerm  = 0o755
	filePerm = 0o644

	maxLinkHops = 40
)

// Paths are the on-disk locations a run writes to.
type Paths struct {
	Home    string
	NanoDir string // Home/.nano
	Master  string // Home/.nanorc
}

// ResolvePaths derives Paths from home.  An empty home means the invoking
// user's home directory.
func ResolvePaths(home string) (Paths, error) {
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, &FilesystemError{Op: "resolve home", Path: "~", Err: err}
		}
		home = h
	}
	return Paths{
		Home:    home,
		NanoDir: filepath.Join(home, nanoDirName),
		Master:  filepath.Join(home, masterFileName),
	}, nil
}

// RulePath is where lang's rule file is written.
func (p Paths) RulePath(lang *Language) string {
	return filepath.Join(p.NanoDir, lang.FileName())
}

// EnsureTargetDirectory creates p.NanoDir (and any missing parent) unless
// something already exists there.
func EnsureTargetDirectory(ctx context.Context, p Paths) error {
	log := logger.L(ctx)
	if _, err := os.Stat(p.NanoDir); err == nil {
		log.Debug("target directory exists", zap.String("path", p.NanoDir))
		return nil
	}
	if err := os.MkdirAll(p.NanoDir, dirPerm); err != nil {
		return &FilesystemError{Op: "create directory", Path: p.NanoDir, Err: err}
	}
	log.Debug("created target directory", zap.String("path", p.NanoDir))
	return nil
}

// WriteRuleFile writes lang's embedded ruleset into p.NanoDir, replacing
// any previous file.
func WriteRuleFile(ctx context.Context, p Paths, lang *Language) error {
	return writeFile(ctx, p.RulePath(lang), lang.Content())
}

// WriteMasterConfig writes MasterConfig() to p.Master, replacing any
// previous file.
func WriteMasterConfig(ctx context.Context, p Paths) error {
	return writeFile(ctx, p.Master, MasterConfig())
}

// Run performs a full generation: target directory, every rule file in
// Languages order, then the master config.  It stops at the first error and
// leaves already-written files in place.  ctx only carries the logger; a run
// is never cancelled part way.
func Run(ctx context.Context, p Paths) error {
	if err := EnsureTargetDirectory(ctx, p); err != nil {
		return err
	}
	for _, lang := range Languages {
		if err := WriteRuleFile(ctx, p, lang); err != nil {
			return err
		}
	}
	return WriteMasterConfig(ctx, p)
}

// writeFile replaces path with data atomically: readers see either the old
// file or the complete new one.  A symlink at path is followed and its
// target replaced, and an existing file keeps its mode.
func writeFile(ctx context.Context, path string, data []byte) error {
	log := logger.L(ctx)

	dest, err := resolveDest(path)
	if err != nil {
		return &FilesystemError{Op: "resolve", Path: path, Err: err}
	}
	perm := renameio.WithPermissions(filePerm)
	if _, err := os.Stat(dest); err == nil {
		perm = renameio.WithExistingPermissions()
	}

	pf, err := renameio.NewPendingFile(dest, perm)
	if err != nil {
		return &FilesystemError{Op: "create", Path: dest, Err: err}
	}
	defer func() {
		// No-op once the file has been committed.
		if err := pf.Cleanup(); err != nil {
			log.Debug("cleanup pending file", zap.String("path", dest), zap.Error(err))
		}
	}()

	if _, err := pf.Write(data); err != nil {
		return &FilesystemError{Op: "write", Path: dest, Err: err}
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return &FilesystemError{Op: "replace", Path: dest, Err: err}
	}
	log.Debug("wrote file", zap.String("path", path), zap.String("dest", dest), zap.Int("bytes", len(data)))
	return nil
}

// resolveDest returns the file a write to path should replace.  Symlinks
// are followed; a dangling link resolves to its (not yet existing) target so
// the write creates it, as opening the link for writing would.
func resolveDest(path string) (string, error) {
	for i := 0; i < maxLinkHops; i++ {
		fi, err := os.Lstat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", err
		}
		if fi.Mode()&fs.ModeSymlink == 0 {
			return path, nil
		}
		target, err := os.Readlink(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", errors.New("too many levels of symbolic links")
}
