// Package tui implements the interactive field-list editor over a
// combined multi-record view. One Editor model owns the whole screen;
// the text-input modal state is handled inline.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/asmdef-edit/internal/commands"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

// rowKind identifies what the cursor is sitting on.
type rowKind int

const (
	rowHeader rowKind = iota
	rowName
	rowFlag        // scalar boolean, keyed by flag name
	rowAnyPlatform // the platform mode toggle
	rowPlatform    // one platform, indexed into the catalog
	rowModule      // one optional module, indexed into the module catalog
	rowReference
	rowPrecompiled
	rowConstraint
	rowVersionDefine
)

// row is one visible editor line.
type row struct {
	kind  rowKind
	label string
	flag  string // flag name for rowFlag
	index int    // catalog or list index
}

// editorMode is the modal state of the editor.
type editorMode int

const (
	modeBrowse editorMode = iota
	modeInput // adding a list row or renaming
)

// Editor is the bubbletea model for interactive editing. It mutates the
// session's combined view in place; committing happens on "enter" or is
// offered by the caller after the program exits.
type Editor struct {
	sess   *commands.Session
	rows   []row
	cursor int
	offset int
	width  int
	height int

	mode      editorMode
	input     textinput.Model
	inputKind rowKind // which list the pending input adds to

	status string
}

// NewEditor builds the editor over a loaded session.
func NewEditor(sess *commands.Session) Editor {
	e := Editor{sess: sess, height: 24}
	e.rebuild()
	for i := range e.rows {
		if e.rows[i].kind != rowHeader {
			e.cursor = i
			break
		}
	}
	return e
}

// Init implements tea.Model.
func (e Editor) Init() tea.Cmd {
	return nil
}

// rebuild regenerates the row list from the combined view. Called after
// every structural edit (row add/remove, refold).
func (e *Editor) rebuild() {
	c := e.sess.Combined
	var rows []row

	rows = append(rows, row{kind: rowName, label: "Name"})

	rows = append(rows, row{kind: rowHeader, label: "Flags"})
	rows = append(rows,
		row{kind: rowFlag, label: "Allow unsafe code", flag: commands.FlagAllowUnsafe},
		row{kind: rowFlag, label: "Override references", flag: commands.FlagOverrideReferences},
		row{kind: rowFlag, label: "Auto referenced", flag: commands.FlagAutoReferenced},
		row{kind: rowFlag, label: "Use identifier references", flag: commands.FlagUseGUIDs},
	)

	rows = append(rows, row{kind: rowHeader, label: "Platforms"})
	rows = append(rows, row{kind: rowAnyPlatform, label: "Any platform"})
	for i := 0; i < e.sess.Deps.Platforms.Len(); i++ {
		rows = append(rows, row{kind: rowPlatform, label: e.sess.Deps.Platforms.At(i).DisplayName, index: i})
	}

	if len(e.sess.Deps.Modules) > 0 {
		rows = append(rows, row{kind: rowHeader, label: "Optional modules"})
		for i, m := range e.sess.Deps.Modules {
			rows = append(rows, row{kind: rowModule, label: m.DisplayName, index: i})
		}
	}

	rows = append(rows, row{kind: rowHeader, label: fmt.Sprintf("References (%d)", len(c.References))})
	for i, r := range c.References {
		rows = append(rows, row{kind: rowReference, label: r.Value.Name, index: i})
	}

	rows = append(rows, row{kind: rowHeader, label: fmt.Sprintf("Precompiled (%d)", len(c.Precompiled))})
	for i, r := range c.Precompiled {
		rows = append(rows, row{kind: rowPrecompiled, label: r.Value.Name, index: i})
	}

	rows = append(rows, row{kind: rowHeader, label: fmt.Sprintf("Define constraints (%d)", len(c.DefineConstraints))})
	for i, r := range c.DefineConstraints {
		rows = append(rows, row{kind: rowConstraint, label: r.Value.String(), index: i})
	}

	rows = append(rows, row{kind: rowHeader, label: fmt.Sprintf("Version defines (%d)", len(c.VersionDefines))})
	for i, r := range c.VersionDefines {
		label := fmt.Sprintf("%s %s -> %s", r.Value.Name, r.Value.Expression, r.Value.Define)
		rows = append(rows, row{kind: rowVersionDefine, label: label, index: i})
	}

	e.rows = rows
	if e.cursor >= len(rows) {
		e.cursor = len(rows) - 1
	}
}

// Update implements tea.Model.
func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		return e, nil
	case tea.KeyMsg:
		if e.mode == modeInput {
			return e.updateInput(msg)
		}
		return e.updateBrowse(msg)
	}
	return e, nil
}

func (e Editor) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e.status = ""
	switch msg.String() {
	case "up", "k":
		e.moveCursor(-1)
	case "down", "j":
		e.moveCursor(+1)
	case " ":
		e.toggleCurrent()
	case "a":
		return e.startAdd()
	case "d":
		e.removeCurrent()
	case "e":
		return e.startRename()
	case "enter":
		e.apply()
	case "q", "esc", "ctrl+c":
		// Unsaved edits survive the quit; the caller decides whether to
		// commit or discard them.
		return e, tea.Quit
	}
	return e, nil
}

func (e Editor) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		e.mode = modeBrowse
		return e, nil
	case "enter":
		value := strings.TrimSpace(e.input.Value())
		if value == "" {
			return e, nil
		}
		e.mode = modeBrowse
		e.submitInput(value)
		return e, nil
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

// moveCursor advances in the given direction, skipping section headers.
func (e *Editor) moveCursor(dir int) {
	next := e.cursor + dir
	for next >= 0 && next < len(e.rows) {
		if e.rows[next].kind != rowHeader {
			e.cursor = next
			e.clampScroll()
			return
		}
		next += dir
	}
}

func (e *Editor) clampScroll() {
	visible := e.height - 3 // title and status lines
	if visible < 1 {
		visible = 1
	}
	if e.cursor < e.offset {
		e.offset = e.cursor
	}
	if e.cursor >= e.offset+visible {
		e.offset = e.cursor - visible + 1
	}
}

// cycle is the space-bar progression: a mixed field becomes true, a
// concrete field flips.
func cycle(v tristate.Value) bool {
	return v != tristate.True
}

// toggleCurrent advances the tri-state under the cursor.
func (e *Editor) toggleCurrent() {
	c := e.sess.Combined
	r := e.rows[e.cursor]
	var err error
	switch r.kind {
	case rowFlag:
		var cur tristate.Value
		switch r.flag {
		case commands.FlagAllowUnsafe:
			cur = c.AllowUnsafeCode
		case commands.FlagOverrideReferences:
			cur = c.OverrideReferences
		case commands.FlagAutoReferenced:
			cur = c.AutoReferenced
		case commands.FlagUseGUIDs:
			cur = c.UseGUIDs
		}
		err = e.sess.SetFlag(r.flag, cycle(cur))
	case rowAnyPlatform:
		err = e.sess.SetAnyPlatform(cycle(c.CompatibleWithAny))
	case rowPlatform:
		included := e.platformIncluded(r.index)
		name := e.sess.Deps.Platforms.At(r.index).Name
		err = e.sess.SetPlatform(name, cycle(included))
	case rowModule:
		token := e.sess.Deps.Modules[r.index].Token
		err = e.sess.SetModule(token, cycle(c.ModuleFlags[r.index]))
	}
	if err != nil {
		e.status = ErrorStyle.Render(err.Error())
	}
}

// platformIncluded maps a stored platform flag to its displayed
// inclusion sense. Under "any platform" the list names exclusions.
func (e *Editor) platformIncluded(i int) tristate.Value {
	c := e.sess.Combined
	if c.CompatibleWithAny == tristate.Mixed || c.PlatformFlags[i] == tristate.Mixed {
		return tristate.Mixed
	}
	anyPlatform := c.CompatibleWithAny == tristate.True
	flag := c.PlatformFlags[i] == tristate.True
	return tristate.FromBool(flag != anyPlatform)
}

// startAdd opens a text input for the list section under the cursor.
func (e Editor) startAdd() (tea.Model, tea.Cmd) {
	kind := e.sectionKind()
	var placeholder string
	switch kind {
	case rowReference:
		placeholder = "assembly name or GUID:<hex>"
	case rowPrecompiled:
		placeholder = "Library.dll"
	case rowConstraint:
		placeholder = "SYMBOL or !SYMBOL"
	case rowVersionDefine:
		placeholder = "resource expression SYMBOL"
	default:
		return e, nil
	}
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 48
	e.input = ti
	e.inputKind = kind
	e.mode = modeInput
	return e, textinput.Blink
}

// startRename opens the name input for a single-record selection.
func (e Editor) startRename() (tea.Model, tea.Cmd) {
	if e.rows[e.cursor].kind != rowName {
		return e, nil
	}
	if !e.sess.Combined.NameEditable {
		e.status = ErrorStyle.Render("cannot rename a multi-record selection")
		return e, nil
	}
	ti := textinput.New()
	ti.SetValue(e.sess.Combined.Name)
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 48
	e.input = ti
	e.inputKind = rowName
	e.mode = modeInput
	return e, textinput.Blink
}

// sectionKind finds the list section the cursor is in, scanning back to
// the nearest header.
func (e Editor) sectionKind() rowKind {
	for i := e.cursor; i >= 0; i-- {
		switch e.rows[i].kind {
		case rowReference, rowPrecompiled, rowConstraint, rowVersionDefine:
			return e.rows[i].kind
		case rowHeader:
			// An empty section: infer from the header when the next row
			// after it belongs to a list (or the list end).
			if i+1 < len(e.rows) {
				k := e.rows[i+1].kind
				if k == rowReference || k == rowPrecompiled || k == rowConstraint || k == rowVersionDefine {
					return k
				}
			}
			return e.headerSection(i)
		}
	}
	return rowHeader
}

// headerSection maps a header row back to the list it introduces.
func (e Editor) headerSection(i int) rowKind {
	switch {
	case strings.HasPrefix(e.rows[i].label, "References"):
		return rowReference
	case strings.HasPrefix(e.rows[i].label, "Precompiled"):
		return rowPrecompiled
	case strings.HasPrefix(e.rows[i].label, "Define constraints"):
		return rowConstraint
	case strings.HasPrefix(e.rows[i].label, "Version defines"):
		return rowVersionDefine
	}
	return rowHeader
}

// submitInput dispatches the completed text input.
func (e *Editor) submitInput(value string) {
	var err error
	switch e.inputKind {
	case rowName:
		err = e.sess.SetName(value)
	case rowReference:
		err = e.sess.AddReference(value)
	case rowPrecompiled:
		err = e.sess.AddPrecompiled(value)
	case rowConstraint:
		err = e.sess.AddDefineConstraint(value)
	case rowVersionDefine:
		fields := strings.Fields(value)
		if len(fields) != 3 {
			err = fmt.Errorf("expected: resource expression SYMBOL")
		} else {
			err = e.sess.AddVersionDefine(fields[0], fields[1], fields[2])
		}
	}
	if err != nil {
		e.status = ErrorStyle.Render(err.Error())
		return
	}
	e.rebuild()
}

// removeCurrent deletes the list row under the cursor.
func (e *Editor) removeCurrent() {
	r := e.rows[e.cursor]
	var err error
	switch r.kind {
	case rowReference:
		err = e.sess.RemoveReference(r.index)
	case rowPrecompiled:
		err = e.sess.RemovePrecompiled(r.index)
	case rowConstraint:
		err = e.sess.RemoveDefineConstraint(r.index)
	case rowVersionDefine:
		err = e.sess.RemoveVersionDefine(r.index)
	default:
		return
	}
	if err != nil {
		e.status = ErrorStyle.Render(err.Error())
		return
	}
	e.moveCursor(-1)
	e.rebuild()
}

// apply writes the combined view back to every record.
func (e *Editor) apply() {
	results := e.sess.Apply()
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if err := e.sess.Refold(); err != nil {
		e.status = ErrorStyle.Render(err.Error())
		return
	}
	e.rebuild()
	if failed > 0 {
		e.status = ErrorStyle.Render(fmt.Sprintf("saved %d of %d records", len(results)-failed, len(results)))
	} else {
		e.status = StatusStyle.Render(fmt.Sprintf("saved %d records", len(results)))
	}
}

// View implements tea.Model.
func (e Editor) View() string {
	var b strings.Builder

	title := e.sess.Combined.Name
	if !e.sess.Combined.NameEditable {
		title = fmt.Sprintf("%d assemblies", len(e.sess.Records))
	}
	b.WriteString(TitleStyle.Render(title))
	if e.sess.Dirty() {
		b.WriteString(" " + MixedStyle.Render("*"))
	}
	b.WriteString("\n")

	visible := e.height - 3
	if visible < 1 {
		visible = len(e.rows)
	}
	end := e.offset + visible
	if end > len(e.rows) {
		end = len(e.rows)
	}

	for i := e.offset; i < end; i++ {
		b.WriteString(e.renderRow(i))
		b.WriteString("\n")
	}

	switch e.mode {
	case modeInput:
		b.WriteString(e.input.View() + "\n")
	default:
		if e.status != "" {
			b.WriteString(e.status + "\n")
		} else {
			b.WriteString(StatusStyle.Render("space toggle  a add  d delete  e rename  enter save  q quit") + "\n")
		}
	}

	return b.String()
}

func (e Editor) renderRow(i int) string {
	r := e.rows[i]
	cursor := "  "
	if i == e.cursor && e.mode == modeBrowse {
		cursor = "> "
	}

	var line string
	c := e.sess.Combined
	switch r.kind {
	case rowHeader:
		return SectionStyle.Render(r.label)
	case rowName:
		line = LabelStyle.Render(r.label+": ") + c.Name
		if !c.NameEditable {
			line += " " + UnresolvedStyle.Render("(read-only)")
		}
	case rowFlag:
		var v tristate.Value
		switch r.flag {
		case commands.FlagAllowUnsafe:
			v = c.AllowUnsafeCode
		case commands.FlagOverrideReferences:
			v = c.OverrideReferences
		case commands.FlagAutoReferenced:
			v = c.AutoReferenced
		case commands.FlagUseGUIDs:
			v = c.UseGUIDs
		}
		line = renderCheckbox(v) + " " + r.label
	case rowAnyPlatform:
		line = renderCheckbox(c.CompatibleWithAny) + " " + r.label
	case rowPlatform:
		line = renderCheckbox(e.platformIncluded(r.index)) + " " + r.label
	case rowModule:
		line = renderCheckbox(c.ModuleFlags[r.index]) + " " + r.label
	case rowReference:
		ref := c.References[r.index]
		line = r.label
		if !ref.Value.Resolved {
			line = UnresolvedStyle.Render(line + " (unresolved)")
		}
		if ref.Display == tristate.Mixed {
			line += " " + MixedStyle.Render("(differs)")
		}
	case rowPrecompiled:
		row := c.Precompiled[r.index]
		line = r.label
		if !row.Value.Resolved {
			line = UnresolvedStyle.Render(line + " (unresolved)")
		}
		if row.Display == tristate.Mixed {
			line += " " + MixedStyle.Render("(differs)")
		}
	case rowConstraint:
		line = r.label
		if c.DefineConstraints[r.index].Display == tristate.Mixed {
			line += " " + MixedStyle.Render("(differs)")
		}
	case rowVersionDefine:
		line = r.label
		if c.VersionDefines[r.index].Display == tristate.Mixed {
			line += " " + MixedStyle.Render("(differs)")
		}
	}

	if i == e.cursor && e.mode == modeBrowse {
		return cursor + CursorStyle.Render(line)
	}
	return cursor + line
}

// renderCheckbox draws a three-state checkbox.
func renderCheckbox(v tristate.Value) string {
	switch v {
	case tristate.True:
		return TrueStyle.Render("[x]")
	case tristate.False:
		return FalseStyle.Render("[ ]")
	default:
		return MixedStyle.Render("[~]")
	}
}
