package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruminaider/asmdef-edit/cmd/asmdef-edit/tui"
	"github.com/ruminaider/asmdef-edit/internal/commands"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

var showCmd = &cobra.Command{
	Use:   "show <file.asmdef>...",
	Short: "Show the combined view of the selected assembly definitions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(args)
		if err != nil {
			return err
		}
		fmt.Print(renderCombined(sess))
		for _, d := range sess.Diagnostics {
			fmt.Println(tui.ErrorStyle.Render("warning: " + d.String()))
		}
		return nil
	},
}

func renderTri(v tristate.Value) string {
	switch v {
	case tristate.True:
		return tui.TrueStyle.Render("true")
	case tristate.False:
		return tui.FalseStyle.Render("false")
	default:
		return tui.MixedStyle.Render("mixed")
	}
}

func renderCombined(sess *commands.Session) string {
	c := sess.Combined
	var b strings.Builder

	name := c.Name
	if !c.NameEditable {
		name = fmt.Sprintf("%d assemblies", len(sess.Records))
	}
	b.WriteString(tui.TitleStyle.Render(name) + "\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", tui.LabelStyle.Render("allow unsafe code:"), renderTri(c.AllowUnsafeCode)))
	b.WriteString(fmt.Sprintf("  %s %s\n", tui.LabelStyle.Render("auto referenced:  "), renderTri(c.AutoReferenced)))
	b.WriteString(fmt.Sprintf("  %s %s\n", tui.LabelStyle.Render("override refs:    "), renderTri(c.OverrideReferences)))
	b.WriteString(fmt.Sprintf("  %s %s\n", tui.LabelStyle.Render("use GUIDs:        "), renderTri(c.UseGUIDs)))

	b.WriteString("\n" + tui.SectionStyle.Render("References") + "\n")
	if len(c.References) == 0 {
		b.WriteString(tui.LabelStyle.Render("  (none in common)") + "\n")
	}
	for i, row := range c.References {
		label := row.Value.Name
		switch {
		case row.Display == tristate.Mixed:
			label = tui.MixedStyle.Render(label + " (differs)")
		case !row.Value.Resolved:
			label = tui.UnresolvedStyle.Render(label + " (unresolved)")
		}
		b.WriteString(fmt.Sprintf("  %2d. %s\n", i, label))
	}

	if len(c.Precompiled) > 0 {
		b.WriteString("\n" + tui.SectionStyle.Render("Precompiled references") + "\n")
		for i, row := range c.Precompiled {
			label := row.Value.Name
			if row.Display == tristate.Mixed {
				label = tui.MixedStyle.Render(label + " (differs)")
			}
			b.WriteString(fmt.Sprintf("  %2d. %s\n", i, label))
		}
	}

	if len(c.DefineConstraints) > 0 {
		b.WriteString("\n" + tui.SectionStyle.Render("Define constraints") + "\n")
		for i, row := range c.DefineConstraints {
			label := row.Value.String()
			if row.Display == tristate.Mixed {
				label = tui.MixedStyle.Render(label + " (differs)")
			}
			b.WriteString(fmt.Sprintf("  %2d. %s\n", i, label))
		}
	}

	if len(c.VersionDefines) > 0 {
		b.WriteString("\n" + tui.SectionStyle.Render("Version defines") + "\n")
		for i, row := range c.VersionDefines {
			label := fmt.Sprintf("%s %s -> %s", row.Value.Name, row.Value.Expression, row.Value.Define)
			if row.Display == tristate.Mixed {
				label = tui.MixedStyle.Render(label + " (differs)")
			}
			b.WriteString(fmt.Sprintf("  %2d. %s\n", i, label))
		}
	}

	b.WriteString("\n" + tui.SectionStyle.Render("Platforms") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", tui.LabelStyle.Render("any platform:"), renderTri(c.CompatibleWithAny)))
	for i, f := range c.PlatformFlags {
		if f == tristate.False {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", sess.Deps.Platforms.At(i).DisplayName+":", renderTri(f)))
	}

	for i, f := range c.ModuleFlags {
		if f != tristate.False {
			b.WriteString(fmt.Sprintf("  %s %s\n", tui.LabelStyle.Render(sess.Deps.Modules[i].DisplayName+":"), renderTri(f)))
		}
	}

	return b.String()
}
