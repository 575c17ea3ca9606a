// Package checker runs tag-completion analysis over source files and applies
// the resulting edits.
package checker

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/javelin-dev/javelin/edit"
	"github.com/javelin-dev/javelin/errors"
	"github.com/javelin-dev/javelin/java"
	"github.com/javelin-dev/javelin/javadoc"
	"github.com/javelin-dev/javelin/logger"
)

// Finding is one declaration needing attention: missing tags on a documented
// declaration, or no documentation block at all.
type Finding struct {
	Path         string
	Decl         *javadoc.Declaration
	Missing      []javadoc.Missing
	Undocumented bool
}

// Checker analyzes files against one policy. Not goroutine safe; the
// underlying parser holds state.
type Checker struct {
	parser *java.Parser
	policy javadoc.Policy
	log    *zap.SugaredLogger
}

func New(pol javadoc.Policy) *Checker {
	return &Checker{
		parser: java.NewParser(),
		policy: pol,
		log:    logger.Named("checker"),
	}
}

// CheckSource analyzes a single in-memory source buffer.
func (c *Checker) CheckSource(ctx context.Context, src []byte, path string) ([]Finding, error) {
	cu, err := c.parser.Parse(ctx, src, path)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, decl := range cu.Decls {
		if decl.Doc == nil {
			findings = append(findings, Finding{Path: path, Decl: decl, Undocumented: true})
			continue
		}
		if missing := javadoc.MissingTags(decl, c.policy); len(missing) > 0 {
			findings = append(findings, Finding{Path: path, Decl: decl, Missing: missing})
		}
	}
	return findings, nil
}

// CheckFile analyzes one file on disk.
func (c *Checker) CheckFile(ctx context.Context, path string) ([]Finding, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return c.CheckSource(ctx, src, path)
}

// CheckFiles analyzes each file, skipping unparsable ones with a warning.
// The error count is returned alongside the findings.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) ([]Finding, int) {
	var findings []Finding
	failed := 0
	for _, path := range paths {
		fileFindings, err := c.CheckFile(ctx, path)
		if err != nil {
			failed++
			c.log.Warnw("check failed", logger.FieldFile, path, "error", err)
			continue
		}
		findings = append(findings, fileFindings...)
	}
	return findings, failed
}

// FixSource computes the fully fixed form of a source buffer. changed is
// false when the buffer is already complete.
func (c *Checker) FixSource(ctx context.Context, src []byte, path string, stub edit.Stub, withStubs bool) ([]byte, bool, error) {
	cu, err := c.parser.Parse(ctx, src, path)
	if err != nil {
		return nil, false, err
	}

	var edits []edit.TextEdit
	for _, decl := range cu.Decls {
		declEdits, err := edit.DeclarationEdits(src, decl, c.policy, stub, withStubs)
		if err != nil {
			return nil, false, errors.Wrapf(err, "building edits for %s in %s", decl.Name, path)
		}
		edits = append(edits, declEdits...)
	}
	if len(edits) == 0 {
		return src, false, nil
	}

	out, err := edit.Apply(src, edits)
	if err != nil {
		return nil, false, errors.Wrapf(err, "applying edits to %s", path)
	}
	return out, true, nil
}

// FixFile rewrites a file in place. Returns whether it changed.
func (c *Checker) FixFile(ctx context.Context, path string, stub edit.Stub, withStubs bool) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", path)
	}

	out, changed, err := c.FixSource(ctx, src, path, stub, withStubs)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", path)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return false, errors.Wrapf(err, "writing %s", path)
	}

	c.log.Infow("fixed file", logger.FieldFile, path)
	return true, nil
}
