package commands

import (
	"fmt"

	"github.com/ruminaider/asmdef-edit/internal/record"
	"github.com/ruminaider/asmdef-edit/internal/versionexpr"
)

// CheckResult is the validation report for one record.
type CheckResult struct {
	Path     string
	LoadErr  error               // record unreadable; Problems empty
	Problems []string            // recovered issues, record still editable
	Diags    []record.Diagnostic // skipped malformed entries
}

// Clean reports whether the record loaded without any issue.
func (r CheckResult) Clean() bool {
	return r.LoadErr == nil && len(r.Problems) == 0 && len(r.Diags) == 0
}

// Check validates each record independently without writing anything:
// load diagnostics, dangling references, and version-define expressions
// that do not parse.
func Check(paths []string, deps record.Deps) []CheckResult {
	results := make([]CheckResult, 0, len(paths))
	for _, path := range paths {
		res := CheckResult{Path: path}
		rec, diags, err := record.Load(path, deps)
		if err != nil {
			res.LoadErr = err
			results = append(results, res)
			continue
		}
		res.Diags = diags

		for _, ref := range rec.References {
			if !ref.Resolved {
				res.Problems = append(res.Problems, fmt.Sprintf("unresolved reference %s", ref.Raw))
			}
		}
		for _, vd := range rec.VersionDefines {
			if _, err := versionexpr.Parse(vd.Expression); err != nil {
				res.Problems = append(res.Problems, fmt.Sprintf("version define %s: %v", vd.Define, err))
			}
		}
		results = append(results, res)
	}
	return results
}
