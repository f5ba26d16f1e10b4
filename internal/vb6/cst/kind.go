// Package cst implements the lossless concrete syntax tree: an immutable
// "green" tree of nodes and token leaves, plus a lazily materialized "red"
// view that adds parent pointers and absolute offsets on top of it
// (rowan-style, per the reference parser's own tree design).
//
// Every leaf in a tree built by this package borrows its text from the
// original source buffer (via token.Token), and concatenating every leaf's
// text, in order, always reproduces that buffer exactly.
package cst

// Kind identifies a CST node (not token) — a syntactic construct made of
// one or more children, as opposed to a single lexical Token leaf.
type Kind int

const (
	// Unknown is the zero Kind. The parser never opens a node of this
	// kind: its recovery tags the single offending token as token.Unknown
	// (Builder.ConsumeTokenAsUnknown) and continues (spec §7 "Policy").
	Unknown Kind = iota

	// Root is the single top-level node covering an entire source file.
	Root

	// Declaration / definition statements
	SubStatement
	FunctionStatement
	PropertyStatement
	DeclareStatement
	EventStatement
	ImplementsStatement
	DefTypeStatement
	DimStatement
	ReDimStatement
	EraseStatement
	ConstStatement
	TypeStatement
	EnumStatement

	// Control flow statements
	IfStatement
	ElseIfClause
	ElseClause
	ForStatement
	ForEachStatement
	WhileStatement
	DoStatement
	SelectCaseStatement
	CaseClause
	CaseElseClause
	WithStatement

	// Simple / call statements
	CallStatement
	RaiseEventStatement
	SetStatement
	AssignmentStatement
	GotoStatement
	GoSubStatement
	ReturnStatement
	ResumeStatement
	ExitStatement
	OnErrorStatement
	OnGoToStatement
	OnGoSubStatement

	// Library/runtime statements
	AppActivateStatement
	BeepStatement
	ChDirStatement
	ChDriveStatement
	CloseStatement
	DateStatement
	DeleteSettingStatement
	ResetStatement
	SavePictureStatement
	SaveSettingStatement
	SeekStatement
	SendKeysStatement
	SetAttrStatement
	StopStatement
	TimeStatement
	RandomizeStatement
	ErrorStatement
	FileCopyStatement
	GetStatement
	PutStatement
	InputStatement
	LineInputStatement
	KillStatement
	LoadStatement
	UnloadStatement
	LockStatement
	UnlockStatement
	LSetStatement
	RSetStatement
	MidStatement
	MidBStatement
	MkDirStatement
	RmDirStatement
	NameStatement
	OpenStatement
	PrintStatement
	WidthStatement
	WriteStatement
	LabelStatement
	AttributeStatement
	OptionStatement
	ObjectStatement

	// Class header nodes: the .cls top-of-file VERSION line and its flat
	// BEGIN...END property block (spec §6 ".cls"; the .frm/.ctl nested
	// control tree bypasses the CST entirely — see package formheader).
	VersionStatement
	PropertiesBlock
	Property
	PropertyKey
	PropertyValue

	// Expression nodes
	BinaryExpression
	UnaryExpression
	LiteralExpression
	IdentifierExpression
	MemberAccessExpression
	CallExpression
	ParenthesizedExpression
	NumericLiteralExpression
	StringLiteralExpression
	BooleanLiteralExpression
	AddressOfExpression
	TypeOfExpression
	NewExpression

	// Structural nodes
	ArgumentList
	ParameterList
	Parameter
	Argument
	StatementList
)

var kindNames = map[Kind]string{
	Unknown:                  "Unknown",
	Root:                     "Root",
	SubStatement:             "SubStatement",
	FunctionStatement:        "FunctionStatement",
	PropertyStatement:        "PropertyStatement",
	DeclareStatement:         "DeclareStatement",
	EventStatement:           "EventStatement",
	ImplementsStatement:      "ImplementsStatement",
	DefTypeStatement:         "DefTypeStatement",
	DimStatement:             "DimStatement",
	ReDimStatement:           "ReDimStatement",
	EraseStatement:           "EraseStatement",
	ConstStatement:           "ConstStatement",
	TypeStatement:            "TypeStatement",
	EnumStatement:            "EnumStatement",
	IfStatement:              "IfStatement",
	ElseIfClause:             "ElseIfClause",
	ElseClause:               "ElseClause",
	ForStatement:             "ForStatement",
	ForEachStatement:         "ForEachStatement",
	WhileStatement:           "WhileStatement",
	DoStatement:              "DoStatement",
	SelectCaseStatement:      "SelectCaseStatement",
	CaseClause:               "CaseClause",
	CaseElseClause:           "CaseElseClause",
	WithStatement:            "WithStatement",
	CallStatement:            "CallStatement",
	RaiseEventStatement:      "RaiseEventStatement",
	SetStatement:             "SetStatement",
	AssignmentStatement:      "AssignmentStatement",
	GotoStatement:            "GotoStatement",
	GoSubStatement:           "GoSubStatement",
	ReturnStatement:          "ReturnStatement",
	ResumeStatement:          "ResumeStatement",
	ExitStatement:            "ExitStatement",
	OnErrorStatement:         "OnErrorStatement",
	OnGoToStatement:          "OnGoToStatement",
	OnGoSubStatement:         "OnGoSubStatement",
	AppActivateStatement:     "AppActivateStatement",
	BeepStatement:            "BeepStatement",
	ChDirStatement:           "ChDirStatement",
	ChDriveStatement:         "ChDriveStatement",
	CloseStatement:           "CloseStatement",
	DateStatement:            "DateStatement",
	DeleteSettingStatement:   "DeleteSettingStatement",
	ResetStatement:           "ResetStatement",
	SavePictureStatement:     "SavePictureStatement",
	SaveSettingStatement:     "SaveSettingStatement",
	SeekStatement:            "SeekStatement",
	SendKeysStatement:        "SendKeysStatement",
	SetAttrStatement:         "SetAttrStatement",
	StopStatement:            "StopStatement",
	TimeStatement:            "TimeStatement",
	RandomizeStatement:       "RandomizeStatement",
	ErrorStatement:           "ErrorStatement",
	FileCopyStatement:        "FileCopyStatement",
	GetStatement:             "GetStatement",
	PutStatement:             "PutStatement",
	InputStatement:           "InputStatement",
	LineInputStatement:       "LineInputStatement",
	KillStatement:            "KillStatement",
	LoadStatement:            "LoadStatement",
	UnloadStatement:          "UnloadStatement",
	LockStatement:            "LockStatement",
	UnlockStatement:          "UnlockStatement",
	LSetStatement:            "LSetStatement",
	RSetStatement:            "RSetStatement",
	MidStatement:             "MidStatement",
	MidBStatement:            "MidBStatement",
	MkDirStatement:           "MkDirStatement",
	RmDirStatement:           "RmDirStatement",
	NameStatement:            "NameStatement",
	OpenStatement:            "OpenStatement",
	PrintStatement:           "PrintStatement",
	WidthStatement:           "WidthStatement",
	WriteStatement:           "WriteStatement",
	LabelStatement:           "LabelStatement",
	AttributeStatement:       "AttributeStatement",
	OptionStatement:          "OptionStatement",
	ObjectStatement:          "ObjectStatement",
	VersionStatement:         "VersionStatement",
	PropertiesBlock:          "PropertiesBlock",
	Property:                 "Property",
	PropertyKey:              "PropertyKey",
	PropertyValue:            "PropertyValue",
	BinaryExpression:         "BinaryExpression",
	UnaryExpression:          "UnaryExpression",
	LiteralExpression:        "LiteralExpression",
	IdentifierExpression:     "IdentifierExpression",
	MemberAccessExpression:   "MemberAccessExpression",
	CallExpression:           "CallExpression",
	ParenthesizedExpression:  "ParenthesizedExpression",
	NumericLiteralExpression: "NumericLiteralExpression",
	StringLiteralExpression:  "StringLiteralExpression",
	BooleanLiteralExpression: "BooleanLiteralExpression",
	AddressOfExpression:      "AddressOfExpression",
	TypeOfExpression:         "TypeOfExpression",
	NewExpression:            "NewExpression",
	ArgumentList:             "ArgumentList",
	ParameterList:            "ParameterList",
	Parameter:                "Parameter",
	Argument:                 "Argument",
	StatementList:            "StatementList",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownKind"
}
