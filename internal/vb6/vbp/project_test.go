package vbp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeneralSection(t *testing.T) {
	src := "Type=Exe\r\n" +
		"Form=Form1.frm\r\n" +
		"Module=Module1; Module1.bas\r\n" +
		"Class=Class1; Class1.cls\r\n" +
		"Reference=*\\G{00020430-0000-0000-C000-000000000046}#2.0#0#C:\\WINDOWS\\System32\\stdole2.tlb#OLE Automation\r\n" +
		"Object={831FDD16-0C5C-11D2-A9FC-0000F8754DA1}#2.0#0; MSCOMCTL.OCX\r\n" +
		"Name=\"Project1\"\r\n" +
		"ExeName32=\"Project1.exe\"\r\n"

	proj, diags := Parse("Project1.vbp", []byte(src))
	require.Empty(t, diags)

	assert.Equal(t, []string{"Form1.frm"}, proj.Forms)
	require.Len(t, proj.Modules, 1)
	assert.Equal(t, "Module1", proj.Modules[0].Name)
	assert.Equal(t, "Module1.bas", proj.Modules[0].Path)
	require.Len(t, proj.Classes, 1)
	assert.Equal(t, "Class1", proj.Classes[0].Name)

	require.Len(t, proj.References, 1)
	ref := proj.References[0]
	assert.Equal(t, "00020430-0000-0000-C000-000000000046", ref.GUID)
	assert.Equal(t, int32(2), ref.VersionMajor)
	assert.Equal(t, int32(0), ref.VersionMinor)
	assert.Equal(t, "OLE Automation", ref.Name)

	require.Len(t, proj.Objects, 1)
	obj := proj.Objects[0]
	assert.Equal(t, "831FDD16-0C5C-11D2-A9FC-0000F8754DA1", obj.GUID)
	assert.Equal(t, "MSCOMCTL.OCX", obj.Path)

	name, ok := proj.Get("Name")
	require.True(t, ok)
	assert.Equal(t, "Project1", name)
	assert.Equal(t, "Project1.exe", proj.GetDefault("ExeName32", ""))
	assert.Equal(t, "fallback", proj.GetDefault("NoSuchKey", "fallback"))
}

func TestParseSections(t *testing.T) {
	src := "Type=Exe\r\n" +
		"[MS Transaction Server]\r\n" +
		"AutoRefresh=1\r\n"

	proj, diags := Parse("Project1.vbp", []byte(src))
	require.Empty(t, diags)

	require.Contains(t, proj.Sections, "MS Transaction Server")
	assert.Equal(t, "1", proj.Sections["MS Transaction Server"]["AutoRefresh"])
}

func TestParseMalformedLineProducesDiagnostic(t *testing.T) {
	src := "Type=Exe\r\nthis line has no equals sign\r\n"

	_, diags := Parse("Project1.vbp", []byte(src))
	require.Len(t, diags, 1)
}

func TestParseNoTrailingNewline(t *testing.T) {
	src := "Type=Exe\r\nName=\"NoTrailingNewline\""

	proj, diags := Parse("Project1.vbp", []byte(src))
	require.Empty(t, diags)
	name, ok := proj.Get("Name")
	require.True(t, ok)
	assert.Equal(t, "NoTrailingNewline", name)
}

func TestParseEmptyFile(t *testing.T) {
	proj, diags := Parse("Project1.vbp", []byte(""))
	require.Empty(t, diags)
	assert.Empty(t, proj.Properties)
}

func TestParseActiveXReference(t *testing.T) {
	src := `Reference=*\AC:\Program Files\Foo\foo.exe#Foo Automation` + "\r\n"

	proj, diags := Parse("Project1.vbp", []byte(src))
	require.Empty(t, diags)
	require.Len(t, proj.References, 1)
	assert.Equal(t, `C:\Program Files\Foo\foo.exe`, proj.References[0].Path)
	assert.Equal(t, "Foo Automation", proj.References[0].Name)
	assert.Empty(t, proj.References[0].GUID)
}
