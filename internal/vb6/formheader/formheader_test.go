package formheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptandcompile/vb6parse/domain"
)

const sampleForm = "VERSION 5.00\r\n" +
	"Begin VB.Form Form1 \r\n" +
	"   Caption         =   \"Hello\"\r\n" +
	"   ClientHeight    =   3195\r\n" +
	"   ClientWidth     =   4680\r\n" +
	"   LinkTopic       =   \"Form1\"\r\n" +
	"   StartUpPosition =   3  'Windows Default\r\n" +
	"   Begin VB.CommandButton Command1 \r\n" +
	"      Caption         =   \"Command1\"\r\n" +
	"      Height          =   495\r\n" +
	"      TabIndex        =   0\r\n" +
	"      BeginProperty Font \r\n" +
	"         Name            =   \"MS Sans Serif\"\r\n" +
	"         Size            =   8.25\r\n" +
	"         Charset         =   0\r\n" +
	"         Weight          =   400\r\n" +
	"         Underline       =   0   'False\r\n" +
	"         Italic          =   0   'False\r\n" +
	"         Strikethrough   =   0   'False\r\n" +
	"      EndProperty\r\n" +
	"   End\r\n" +
	"   Begin VB.Menu mnuFile \r\n" +
	"      Caption         =   \"&File\"\r\n" +
	"      Begin VB.Menu mnuFileExit \r\n" +
	"         Caption         =   \"E&xit\"\r\n" +
	"      End\r\n" +
	"   End\r\n" +
	"End\r\n" +
	"Attribute VB_Name = \"Form1\"\r\n" +
	"Attribute VB_GlobalNameSpace = False\r\n" +
	"Attribute VB_Creatable = False\r\n" +
	"Attribute VB_PredeclaredId = True\r\n" +
	"Attribute VB_Exposed = False\r\n" +
	"Private Sub Command1_Click()\r\n" +
	"End Sub\r\n"

func TestParseFormWithControlsAndMenus(t *testing.T) {
	result, diags := Parse("Form1.frm", []byte(sampleForm))
	require.Empty(t, diags, "unexpected diagnostics: %v", diags)

	assert.Equal(t, int32(5), result.Version.Major)
	assert.Equal(t, int32(0), result.Version.Minor)
	assert.False(t, result.Version.Class)

	assert.Equal(t, "Form1", result.Form.Name)
	assert.Equal(t, "Hello", result.Form.Properties.Caption)
	assert.Equal(t, int32(3195), result.Form.Properties.ClientHeight)
	assert.Equal(t, domain.StartUpWindowsDefault, result.Form.Properties.StartUpPosition)

	require.Len(t, result.Form.Controls, 1)
	btn := result.Form.Controls[0]
	assert.Equal(t, "Command1", btn.Name)
	assert.Equal(t, domain.ControlCommandButton, btn.Kind.Tag)
	assert.Equal(t, "VB.CommandButton", btn.Kind.ProgID)
	caption, ok := btn.Kind.Properties.Get("Caption")
	require.True(t, ok)
	assert.Equal(t, "Command1", caption)

	require.Len(t, btn.Kind.PropertyGroups, 1)
	font, err := domain.FontFromPropertyGroup(btn.Kind.PropertyGroups[0])
	require.NoError(t, err)
	assert.Equal(t, "MS Sans Serif", font.Name)
	assert.Equal(t, float32(8.25), font.Size)
	assert.False(t, font.Underline)

	require.Len(t, result.Form.Menus, 1)
	fileMenu := result.Form.Menus[0]
	assert.Equal(t, "mnuFile", fileMenu.Name)
	assert.Equal(t, "&File", fileMenu.Properties.Caption)
	require.Len(t, fileMenu.Children, 1)
	assert.Equal(t, "mnuFileExit", fileMenu.Children[0].Name)
	assert.Equal(t, "E&xit", fileMenu.Children[0].Properties.Caption)

	assert.Equal(t, "Form1", result.Attributes.Name)
	assert.False(t, result.Attributes.GlobalNameSpace)
	assert.True(t, result.Attributes.PredeclaredId)

	require.NotNil(t, result.CST)
}

func TestParseFormNameTakenFromAttributeOverride(t *testing.T) {
	src := "VERSION 5.00\r\n" +
		"Begin VB.Form frmOriginal \r\n" +
		"   Caption         =   \"X\"\r\n" +
		"End\r\n" +
		"Attribute VB_Name = \"frmRenamed\"\r\n"

	result, diags := Parse("x.frm", []byte(src))
	require.Empty(t, diags)
	assert.Equal(t, "frmRenamed", result.Form.Name)
}

func TestParseObjectReferences(t *testing.T) {
	src := "VERSION 5.00\r\n" +
		"Object = \"{831FDD16-0C5C-11D2-A9FC-0000F8754DA1}#2.0#0\"; \"MSCOMCTL.OCX\"\r\n" +
		"Begin VB.Form Form1 \r\n" +
		"End\r\n"

	result, diags := Parse("x.frm", []byte(src))
	require.Empty(t, diags)
	require.Len(t, result.Objects, 1)
	assert.Equal(t, int32(2), result.Objects[0].VersionMajor)
	assert.Equal(t, "MSCOMCTL.OCX", result.Objects[0].FileName)
}

func TestParseMDIForm(t *testing.T) {
	src := "VERSION 5.00\r\n" +
		"Begin VB.MDIForm MDIForm1 \r\n" +
		"   Caption         =   \"MDI\"\r\n" +
		"End\r\n"

	result, diags := Parse("x.frm", []byte(src))
	require.Empty(t, diags)
	assert.True(t, result.Form.IsMDIForm())
}

func TestParseMissingEndProducesDiagnostic(t *testing.T) {
	src := "VERSION 5.00\r\n" +
		"Begin VB.Form Form1 \r\n" +
		"   Caption         =   \"X\"\r\n"

	_, diags := Parse("x.frm", []byte(src))
	require.NotEmpty(t, diags)
}
