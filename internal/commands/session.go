// Package commands implements the user-facing operations over a loaded
// multi-record selection: load, edit, row patching, platform toggles,
// apply, revert, check. Each operation is a plain synchronous call; the
// CLI and TUI layers own all presentation.
package commands

import (
	"fmt"

	"github.com/ruminaider/asmdef-edit/internal/reconcile"
	"github.com/ruminaider/asmdef-edit/internal/record"
)

// Session is one editing session over N selected records and their
// combined view. The combined view is rebuilt from scratch on every
// (re)load and discarded on apply.
type Session struct {
	Paths    []string
	Records  []*record.Record
	Combined *reconcile.Combined
	Deps     record.Deps

	// Diagnostics recovered during load: skipped malformed entries.
	Diagnostics []record.Diagnostic
}

// Load reads every record and folds them into a combined view. A record
// that cannot be loaded fails the whole session with a per-record error;
// no partially loaded session is returned.
func Load(paths []string, deps record.Deps) (*Session, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no assembly definitions selected")
	}

	sess := &Session{Paths: paths, Deps: deps}
	for _, path := range paths {
		rec, diags, err := record.Load(path, deps)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		sess.Records = append(sess.Records, rec)
		sess.Diagnostics = append(sess.Diagnostics, diags...)
	}

	combined, err := reconcile.Fold(sess.Records)
	if err != nil {
		return nil, err
	}
	sess.Combined = combined
	return sess, nil
}

// Refold rebuilds the combined view after direct record mutation
// (row patches, platform normalization).
func (s *Session) Refold() error {
	combined, err := reconcile.Fold(s.Records)
	if err != nil {
		return err
	}
	s.Combined = combined
	return nil
}

// Revert reloads every record from disk, discarding unsaved edits.
func (s *Session) Revert() error {
	fresh, err := Load(s.Paths, s.Deps)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// Dirty reports whether any record has unsaved state.
func (s *Session) Dirty() bool {
	for _, rec := range s.Records {
		if rec.Dirty {
			return true
		}
	}
	return s.Combined.Dirty
}

// Apply commits the combined view's non-mixed fields back onto every
// record and saves them sequentially. Partial application is expected:
// records already written stay written when a later one fails.
func (s *Session) Apply() []reconcile.ApplyResult {
	return reconcile.Apply(s.Combined, s.Records, s.Deps)
}
