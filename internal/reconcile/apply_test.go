package reconcile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/asmdef-edit/internal/asmdef"
	"github.com/ruminaider/asmdef-edit/internal/platform"
	"github.com/ruminaider/asmdef-edit/internal/record"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

func applyDeps() record.Deps {
	return record.Deps{
		Platforms: platform.NewCatalog([]platform.Platform{
			{Name: "Editor", DisplayName: "Editor"},
			{Name: "iOS", DisplayName: "iOS"},
			{Name: "Android", DisplayName: "Android"},
		}),
		Modules: platform.DefaultModules(),
	}
}

func loadDoc(t *testing.T, dir, name string, doc asmdef.Document) *record.Record {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, asmdef.Write(path, doc))
	rec, diags, err := record.Load(path, applyDeps())
	require.NoError(t, err)
	require.Empty(t, diags)
	return rec
}

func TestApply_ConcreteFieldsConvergeAllRecords(t *testing.T) {
	dir := t.TempDir()
	a := loadDoc(t, dir, "A.asmdef", asmdef.Document{
		Name: "Foo", AllowUnsafeCode: true, IncludePlatforms: []string{"Editor"},
	})
	b := loadDoc(t, dir, "B.asmdef", asmdef.Document{
		Name: "Bar", AllowUnsafeCode: false, IncludePlatforms: []string{"Editor"},
	})
	records := []*record.Record{a, b}

	c, err := Fold(records)
	require.NoError(t, err)
	assert.Equal(t, tristate.Mixed, c.AllowUnsafeCode)
	assert.Equal(t, tristate.False, c.CompatibleWithAny)
	assert.Equal(t, tristate.True, c.PlatformFlags[0])

	// User resolves the disagreement and commits.
	c.AllowUnsafeCode = tristate.True
	for _, res := range Apply(c, records, applyDeps()) {
		require.NoError(t, res.Err)
	}

	// A was already true and is unchanged; B converged. Names and the
	// Editor inclusion survive on both.
	docA, err := asmdef.Read(a.Path)
	require.NoError(t, err)
	docB, err := asmdef.Read(b.Path)
	require.NoError(t, err)
	assert.Equal(t, "Foo", docA.Name)
	assert.Equal(t, "Bar", docB.Name)
	assert.True(t, docA.AllowUnsafeCode)
	assert.True(t, docB.AllowUnsafeCode)
	assert.Equal(t, []string{"Editor"}, docA.IncludePlatforms)
	assert.Equal(t, []string{"Editor"}, docB.IncludePlatforms)
}

func TestApply_MixedFieldsLeftUntouched(t *testing.T) {
	dir := t.TempDir()
	a := loadDoc(t, dir, "A.asmdef", asmdef.Document{Name: "A", AllowUnsafeCode: true, AutoReferenced: true})
	b := loadDoc(t, dir, "B.asmdef", asmdef.Document{Name: "B", AllowUnsafeCode: false, AutoReferenced: true})
	records := []*record.Record{a, b}

	c, err := Fold(records)
	require.NoError(t, err)
	require.Equal(t, tristate.Mixed, c.AllowUnsafeCode)

	// Commit without resolving: each original keeps its own value.
	c.AutoReferenced = tristate.False
	for _, res := range Apply(c, records, applyDeps()) {
		require.NoError(t, res.Err)
	}

	docA, _ := asmdef.Read(a.Path)
	docB, _ := asmdef.Read(b.Path)
	assert.True(t, docA.AllowUnsafeCode)
	assert.False(t, docB.AllowUnsafeCode)
	assert.False(t, docA.AutoReferenced)
	assert.False(t, docB.AutoReferenced)
}

func TestApply_MixedRowsLeftUntouched(t *testing.T) {
	dir := t.TempDir()
	a := loadDoc(t, dir, "A.asmdef", asmdef.Document{Name: "A", References: []string{"One"}})
	b := loadDoc(t, dir, "B.asmdef", asmdef.Document{Name: "B", References: []string{"Two", "Extra"}})
	records := []*record.Record{a, b}

	c, err := Fold(records)
	require.NoError(t, err)
	require.Len(t, c.References, 1)
	require.Equal(t, tristate.Mixed, c.References[0].Display)

	for _, res := range Apply(c, records, applyDeps()) {
		require.NoError(t, res.Err)
	}

	docA, _ := asmdef.Read(a.Path)
	docB, _ := asmdef.Read(b.Path)
	assert.Equal(t, []string{"One"}, docA.References)
	// The divergent row and the row beyond the combined length both
	// survive untouched.
	assert.Equal(t, []string{"Two", "Extra"}, docB.References)
}

func TestApply_SingleRecordRename(t *testing.T) {
	dir := t.TempDir()
	a := loadDoc(t, dir, "A.asmdef", asmdef.Document{Name: "Old.Name"})
	records := []*record.Record{a}

	c, err := Fold(records)
	require.NoError(t, err)
	require.True(t, c.NameEditable)
	c.Name = "New.Name"

	for _, res := range Apply(c, records, applyDeps()) {
		require.NoError(t, res.Err)
	}

	doc, _ := asmdef.Read(a.Path)
	assert.Equal(t, "New.Name", doc.Name)
}

func TestApply_BulkSelectionNeverRenames(t *testing.T) {
	dir := t.TempDir()
	a := loadDoc(t, dir, "A.asmdef", asmdef.Document{Name: "A"})
	b := loadDoc(t, dir, "B.asmdef", asmdef.Document{Name: "B"})
	records := []*record.Record{a, b}

	c, err := Fold(records)
	require.NoError(t, err)
	require.False(t, c.NameEditable)
	c.Name = "Hijack"

	for _, res := range Apply(c, records, applyDeps()) {
		require.NoError(t, res.Err)
	}

	docA, _ := asmdef.Read(a.Path)
	docB, _ := asmdef.Read(b.Path)
	assert.Equal(t, "A", docA.Name)
	assert.Equal(t, "B", docB.Name)
}

func TestApply_PartialFailureDoesNotRollBack(t *testing.T) {
	dir := t.TempDir()
	a := loadDoc(t, dir, "A.asmdef", asmdef.Document{Name: "A"})
	b := loadDoc(t, dir, "B.asmdef", asmdef.Document{Name: "B"})
	// Point b at an unwritable location.
	b.Path = filepath.Join(dir, "missing-dir", "B.asmdef")
	records := []*record.Record{a, b}

	c, err := Fold(records)
	require.NoError(t, err)
	c.AllowUnsafeCode = tristate.True

	results := Apply(c, records, applyDeps())
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)

	// The successful write stands, and the failed record stays dirty.
	docA, _ := asmdef.Read(a.Path)
	assert.True(t, docA.AllowUnsafeCode)
	assert.False(t, a.Dirty)
	assert.True(t, b.Dirty)
}
