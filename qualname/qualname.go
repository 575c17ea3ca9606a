// Package qualname finds fully qualified Java type names in non-Java project
// files (build descriptors, manifests, resources) and builds the edits that
// rewrite them after a type is renamed or moved.
package qualname

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/javelin-dev/javelin/edit"
	"github.com/javelin-dev/javelin/errors"
	"github.com/javelin-dev/javelin/logger"
)

// Match is one occurrence of the searched name within a file's content.
type Match struct {
	Offset int
	Length int
	Line   int // 1-based
}

// Pattern compiles the search pattern for a qualified name: the literal name
// with every regex metacharacter escaped. Boundary delimiting is done by
// findBounded on the neighbouring runes, so occurrences separated by a single
// delimiter are all found.
func Pattern(qualified string) (*regexp.Regexp, error) {
	if strings.TrimSpace(qualified) == "" {
		return nil, errors.New("empty qualified name")
	}
	re, err := regexp.Compile(regexp.QuoteMeta(qualified))
	if err != nil {
		return nil, errors.Wrapf(err, "compiling pattern for %q", qualified)
	}
	return re, nil
}

// nameRune reports whether r can be part of a (dotted) qualified name, so a
// longer name ("com.example.FooBar", "x.com.example.Foo") never matches.
func nameRune(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// findBounded returns every occurrence of the literal pattern in content that
// is not embedded in a longer name.
func findBounded(re *regexp.Regexp, content []byte) []Match {
	var matches []Match
	for _, idx := range re.FindAllIndex(content, -1) {
		start, end := idx[0], idx[1]
		if r, _ := utf8.DecodeLastRune(content[:start]); nameRune(r) {
			continue
		}
		if r, _ := utf8.DecodeRune(content[end:]); nameRune(r) {
			continue
		}
		matches = append(matches, Match{
			Offset: start,
			Length: end - start,
			Line:   1 + bytes.Count(content[:start], []byte("\n")),
		})
	}
	return matches
}

// Find returns every occurrence of the qualified name in content.
func Find(content []byte, qualified string) ([]Match, error) {
	re, err := Pattern(qualified)
	if err != nil {
		return nil, err
	}
	return findBounded(re, content), nil
}

// ReplaceEdits builds the edits substituting newName for every occurrence of
// oldName in content.
func ReplaceEdits(content []byte, oldName, newName string) ([]edit.TextEdit, error) {
	matches, err := Find(content, oldName)
	if err != nil {
		return nil, err
	}
	edits := make([]edit.TextEdit, 0, len(matches))
	for _, m := range matches {
		edits = append(edits, edit.TextEdit{Offset: m.Offset, Length: m.Length, Text: newName})
	}
	return edits, nil
}

// defaultExtensions are the non-Java file types searched: the descriptors
// and resources where qualified type names typically appear as text.
var defaultExtensions = []string{".xml", ".properties", ".mf", ".txt", ".gradle", ".yaml", ".yml"}

// Finder walks a project tree searching the qualified name in non-Java
// files.
type Finder struct {
	// Extensions limits the files searched; defaults to the common
	// descriptor and resource types.
	Extensions []string

	log *zap.SugaredLogger
}

func NewFinder() *Finder {
	return &Finder{
		Extensions: defaultExtensions,
		log:        logger.Named("qualname"),
	}
}

// FileMatches groups the occurrences found in a single file.
type FileMatches struct {
	Path    string
	Matches []Match
}

// FindInTree searches the qualified name under root, in lexical path order.
// Unreadable files are logged and skipped.
func (f *Finder) FindInTree(root, qualified string) ([]FileMatches, error) {
	re, err := Pattern(qualified)
	if err != nil {
		return nil, err
	}

	var results []FileMatches
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !f.searchable(path) {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			f.log.Warnw("skipping unreadable file", logger.FieldFile, path, "error", readErr)
			return nil
		}

		matches := findBounded(re, content)
		if len(matches) > 0 {
			results = append(results, FileMatches{Path: path, Matches: matches})
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "walking %s", root)
	}
	return results, nil
}

// ReplaceInTree rewrites every occurrence under root and returns the paths
// changed.
func (f *Finder) ReplaceInTree(root, oldName, newName string) ([]string, error) {
	found, err := f.FindInTree(root, oldName)
	if err != nil {
		return nil, err
	}

	var changed []string
	for _, fm := range found {
		content, err := os.ReadFile(fm.Path)
		if err != nil {
			return changed, errors.Wrapf(err, "reading %s", fm.Path)
		}
		edits := make([]edit.TextEdit, 0, len(fm.Matches))
		for _, m := range fm.Matches {
			edits = append(edits, edit.TextEdit{Offset: m.Offset, Length: m.Length, Text: newName})
		}
		out, err := edit.Apply(content, edits)
		if err != nil {
			return changed, errors.Wrapf(err, "rewriting %s", fm.Path)
		}
		info, err := os.Stat(fm.Path)
		if err != nil {
			return changed, errors.Wrapf(err, "stat %s", fm.Path)
		}
		if err := os.WriteFile(fm.Path, out, info.Mode().Perm()); err != nil {
			return changed, errors.Wrapf(err, "writing %s", fm.Path)
		}
		changed = append(changed, fm.Path)
		f.log.Infow("rewrote qualified name",
			logger.FieldFile, fm.Path,
			"occurrences", len(fm.Matches))
	}
	return changed, nil
}

func (f *Finder) searchable(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range f.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
