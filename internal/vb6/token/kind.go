// Package token defines the VB6 lexical token vocabulary: the Kind
// enumeration, the ordered keyword/symbol lookup tables, and the Token and
// Stream types the lexer and parser share.
package token

// Kind identifies the lexical class of a Token. The zero value, Unknown, is
// never emitted by the lexer for a non-empty match; it is reserved for
// lexer error recovery (spec §4.B step 12) and is distinct from the CST's
// own Unknown syntax kind, which also covers parser-level recovery nodes.
type Kind int

const (
	Unknown Kind = iota

	// Trivia
	Whitespace
	Newline
	EndOfLineComment
	RemComment

	// Keywords
	ClassKeyword
	ReDimKeyword
	PreserveKeyword
	DimKeyword
	DeclareKeyword
	AliasKeyword
	AttributeKeyword
	BeginKeyword
	LibKeyword
	WithKeyword
	WithEventsKeyword
	BaseKeyword
	CompareKeyword
	OptionKeyword
	ExplicitKeyword
	PrivateKeyword
	PublicKeyword
	ConstKeyword
	AsKeyword
	ByValKeyword
	ByRefKeyword
	OptionalKeyword
	FunctionKeyword
	StaticKeyword
	SubKeyword
	EndKeyword
	TrueKeyword
	FalseKeyword
	EnumKeyword
	TypeKeyword
	BooleanKeyword
	DoubleKeyword
	CurrencyKeyword
	DecimalKeyword
	DateKeyword
	ObjectKeyword
	VariantKeyword
	ByteKeyword
	LongKeyword
	SingleKeyword
	StringKeyword
	IntegerKeyword
	IfKeyword
	ElseKeyword
	ElseIfKeyword
	AndKeyword
	OrKeyword
	XorKeyword
	ModKeyword
	EqvKeyword
	AddressOfKeyword
	ImpKeyword
	IsKeyword
	LikeKeyword
	NotKeyword
	ThenKeyword
	GotoKeyword
	GoSubKeyword
	ReturnKeyword
	ExitKeyword
	ForKeyword
	EachKeyword
	InKeyword
	ToKeyword
	LockKeyword
	UnlockKeyword
	StepKeyword
	StopKeyword
	WhileKeyword
	WendKeyword
	WidthKeyword
	WriteKeyword
	TimeKeyword
	SetAttrKeyword
	SetKeyword
	SendKeysKeyword
	SelectKeyword
	CaseKeyword
	SeekKeyword
	SaveSettingKeyword
	SavePictureKeyword
	RSetKeyword
	RmDirKeyword
	ResumeKeyword
	ResetKeyword
	RandomizeKeyword
	RaiseEventKeyword
	PutKeyword
	PropertyKeyword
	PrintKeyword
	OpenKeyword
	OnKeyword
	OffKeyword
	NameKeyword
	MkDirKeyword
	MidKeyword
	MidBKeyword
	LSetKeyword
	LoadKeyword
	UnloadKeyword
	LineKeyword
	InputKeyword
	LetKeyword
	KillKeyword
	ImplementsKeyword
	GetKeyword
	FileCopyKeyword
	EventKeyword
	ErrorKeyword
	EraseKeyword
	DoKeyword
	UntilKeyword
	LoopKeyword
	DeleteSettingKeyword
	DefBoolKeyword
	DefByteKeyword
	DefIntKeyword
	DefLngKeyword
	DefCurKeyword
	DefSngKeyword
	DefDblKeyword
	DefDecKeyword
	DefDateKeyword
	DefStrKeyword
	DefObjKeyword
	DefVarKeyword
	CloseKeyword
	ChDriveKeyword
	ChDirKeyword
	CallKeyword
	BeepKeyword
	AppActivateKeyword
	FriendKeyword
	BinaryKeyword
	RandomKeyword
	ReadKeyword
	OutputKeyword
	AppendKeyword
	AccessKeyword
	TextKeyword
	DatabaseKeyword
	EmptyKeyword
	ModuleKeyword
	NextKeyword
	NewKeyword
	LenKeyword
	MeKeyword
	NullKeyword
	ParamArrayKeyword
	VersionKeyword
	NothingKeyword
	AnyKeyword

	// Literals and identifiers
	Identifier
	StringLiteral
	IntegerLiteral
	LongLiteral
	SingleLiteral
	DoubleLiteral
	DecimalLiteral
	CurrencyLiteral
	DateLiteral

	// Operators and punctuation
	DollarSign
	Underscore
	Ampersand
	Percent
	Octothorpe
	LeftParenthesis
	RightParenthesis
	LeftCurlyBrace
	RightCurlyBrace
	LeftSquareBracket
	RightSquareBracket
	Comma
	Semicolon
	AtSign
	ExclamationMark
	EqualityOperator
	InequalityOperator
	LessThanOrEqualOperator
	GreaterThanOrEqualOperator
	LessThanOperator
	GreaterThanOperator
	MultiplicationOperator
	SubtractionOperator
	AdditionOperator
	DivisionOperator
	BackwardSlashOperator
	PeriodOperator
	ColonOperator
	ExponentiationOperator
)

// String gives a human-readable (and debug-stable) name for the kind. It is
// intentionally not a generated stringer: names come from the hand-written
// kindNames table.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownKind"
}

var kindNames = map[Kind]string{
	Unknown:          "Unknown",
	Whitespace:       "Whitespace",
	Newline:          "Newline",
	EndOfLineComment: "EndOfLineComment",
	RemComment:       "RemComment",

	ClassKeyword:         "ClassKeyword",
	ReDimKeyword:         "ReDimKeyword",
	PreserveKeyword:      "PreserveKeyword",
	DimKeyword:           "DimKeyword",
	DeclareKeyword:       "DeclareKeyword",
	AliasKeyword:         "AliasKeyword",
	AttributeKeyword:     "AttributeKeyword",
	BeginKeyword:         "BeginKeyword",
	LibKeyword:           "LibKeyword",
	WithKeyword:          "WithKeyword",
	WithEventsKeyword:    "WithEventsKeyword",
	BaseKeyword:          "BaseKeyword",
	CompareKeyword:       "CompareKeyword",
	OptionKeyword:        "OptionKeyword",
	ExplicitKeyword:      "ExplicitKeyword",
	PrivateKeyword:       "PrivateKeyword",
	PublicKeyword:        "PublicKeyword",
	ConstKeyword:         "ConstKeyword",
	AsKeyword:            "AsKeyword",
	ByValKeyword:         "ByValKeyword",
	ByRefKeyword:         "ByRefKeyword",
	OptionalKeyword:      "OptionalKeyword",
	FunctionKeyword:      "FunctionKeyword",
	StaticKeyword:        "StaticKeyword",
	SubKeyword:           "SubKeyword",
	EndKeyword:           "EndKeyword",
	TrueKeyword:          "TrueKeyword",
	FalseKeyword:         "FalseKeyword",
	EnumKeyword:          "EnumKeyword",
	TypeKeyword:          "TypeKeyword",
	BooleanKeyword:       "BooleanKeyword",
	DoubleKeyword:        "DoubleKeyword",
	CurrencyKeyword:      "CurrencyKeyword",
	DecimalKeyword:       "DecimalKeyword",
	DateKeyword:          "DateKeyword",
	ObjectKeyword:        "ObjectKeyword",
	VariantKeyword:       "VariantKeyword",
	ByteKeyword:          "ByteKeyword",
	LongKeyword:          "LongKeyword",
	SingleKeyword:        "SingleKeyword",
	StringKeyword:        "StringKeyword",
	IntegerKeyword:       "IntegerKeyword",
	IfKeyword:            "IfKeyword",
	ElseKeyword:          "ElseKeyword",
	ElseIfKeyword:        "ElseIfKeyword",
	AndKeyword:           "AndKeyword",
	OrKeyword:            "OrKeyword",
	XorKeyword:           "XorKeyword",
	ModKeyword:           "ModKeyword",
	EqvKeyword:           "EqvKeyword",
	AddressOfKeyword:     "AddressOfKeyword",
	ImpKeyword:           "ImpKeyword",
	IsKeyword:            "IsKeyword",
	LikeKeyword:          "LikeKeyword",
	NotKeyword:           "NotKeyword",
	ThenKeyword:          "ThenKeyword",
	GotoKeyword:          "GotoKeyword",
	GoSubKeyword:         "GoSubKeyword",
	ReturnKeyword:        "ReturnKeyword",
	ExitKeyword:          "ExitKeyword",
	ForKeyword:           "ForKeyword",
	EachKeyword:          "EachKeyword",
	InKeyword:            "InKeyword",
	ToKeyword:            "ToKeyword",
	LockKeyword:          "LockKeyword",
	UnlockKeyword:        "UnlockKeyword",
	StepKeyword:          "StepKeyword",
	StopKeyword:          "StopKeyword",
	WhileKeyword:         "WhileKeyword",
	WendKeyword:          "WendKeyword",
	WidthKeyword:         "WidthKeyword",
	WriteKeyword:         "WriteKeyword",
	TimeKeyword:          "TimeKeyword",
	SetAttrKeyword:       "SetAttrKeyword",
	SetKeyword:           "SetKeyword",
	SendKeysKeyword:      "SendKeysKeyword",
	SelectKeyword:        "SelectKeyword",
	CaseKeyword:          "CaseKeyword",
	SeekKeyword:          "SeekKeyword",
	SaveSettingKeyword:   "SaveSettingKeyword",
	SavePictureKeyword:   "SavePictureKeyword",
	RSetKeyword:          "RSetKeyword",
	RmDirKeyword:         "RmDirKeyword",
	ResumeKeyword:        "ResumeKeyword",
	ResetKeyword:         "ResetKeyword",
	RandomizeKeyword:     "RandomizeKeyword",
	RaiseEventKeyword:    "RaiseEventKeyword",
	PutKeyword:           "PutKeyword",
	PropertyKeyword:      "PropertyKeyword",
	PrintKeyword:         "PrintKeyword",
	OpenKeyword:          "OpenKeyword",
	OnKeyword:            "OnKeyword",
	OffKeyword:           "OffKeyword",
	NameKeyword:          "NameKeyword",
	MkDirKeyword:         "MkDirKeyword",
	MidKeyword:           "MidKeyword",
	MidBKeyword:          "MidBKeyword",
	LSetKeyword:          "LSetKeyword",
	LoadKeyword:          "LoadKeyword",
	UnloadKeyword:        "UnloadKeyword",
	LineKeyword:          "LineKeyword",
	InputKeyword:         "InputKeyword",
	LetKeyword:           "LetKeyword",
	KillKeyword:          "KillKeyword",
	ImplementsKeyword:    "ImplementsKeyword",
	GetKeyword:           "GetKeyword",
	FileCopyKeyword:      "FileCopyKeyword",
	EventKeyword:         "EventKeyword",
	ErrorKeyword:         "ErrorKeyword",
	EraseKeyword:         "EraseKeyword",
	DoKeyword:            "DoKeyword",
	UntilKeyword:         "UntilKeyword",
	LoopKeyword:          "LoopKeyword",
	DeleteSettingKeyword: "DeleteSettingKeyword",
	DefBoolKeyword:       "DefBoolKeyword",
	DefByteKeyword:       "DefByteKeyword",
	DefIntKeyword:        "DefIntKeyword",
	DefLngKeyword:        "DefLngKeyword",
	DefCurKeyword:        "DefCurKeyword",
	DefSngKeyword:        "DefSngKeyword",
	DefDblKeyword:        "DefDblKeyword",
	DefDecKeyword:        "DefDecKeyword",
	DefDateKeyword:       "DefDateKeyword",
	DefStrKeyword:        "DefStrKeyword",
	DefObjKeyword:        "DefObjKeyword",
	DefVarKeyword:        "DefVarKeyword",
	CloseKeyword:         "CloseKeyword",
	ChDriveKeyword:       "ChDriveKeyword",
	ChDirKeyword:         "ChDirKeyword",
	CallKeyword:          "CallKeyword",
	BeepKeyword:          "BeepKeyword",
	AppActivateKeyword:   "AppActivateKeyword",
	FriendKeyword:        "FriendKeyword",
	BinaryKeyword:        "BinaryKeyword",
	RandomKeyword:        "RandomKeyword",
	ReadKeyword:          "ReadKeyword",
	OutputKeyword:        "OutputKeyword",
	AppendKeyword:        "AppendKeyword",
	AccessKeyword:        "AccessKeyword",
	TextKeyword:          "TextKeyword",
	DatabaseKeyword:      "DatabaseKeyword",
	EmptyKeyword:         "EmptyKeyword",
	ModuleKeyword:        "ModuleKeyword",
	NextKeyword:          "NextKeyword",
	NewKeyword:           "NewKeyword",
	LenKeyword:           "LenKeyword",
	MeKeyword:            "MeKeyword",
	NullKeyword:          "NullKeyword",
	ParamArrayKeyword:    "ParamArrayKeyword",
	VersionKeyword:       "VersionKeyword",
	NothingKeyword:       "NothingKeyword",
	AnyKeyword:           "AnyKeyword",

	Identifier:      "Identifier",
	StringLiteral:   "StringLiteral",
	IntegerLiteral:  "IntegerLiteral",
	LongLiteral:     "LongLiteral",
	SingleLiteral:   "SingleLiteral",
	DoubleLiteral:   "DoubleLiteral",
	DecimalLiteral:  "DecimalLiteral",
	CurrencyLiteral: "CurrencyLiteral",
	DateLiteral:     "DateLiteral",

	DollarSign:                 "DollarSign",
	Underscore:                 "Underscore",
	Ampersand:                  "Ampersand",
	Percent:                    "Percent",
	Octothorpe:                 "Octothorpe",
	LeftParenthesis:            "LeftParenthesis",
	RightParenthesis:           "RightParenthesis",
	LeftCurlyBrace:             "LeftCurlyBrace",
	RightCurlyBrace:            "RightCurlyBrace",
	LeftSquareBracket:          "LeftSquareBracket",
	RightSquareBracket:         "RightSquareBracket",
	Comma:                      "Comma",
	Semicolon:                  "Semicolon",
	AtSign:                     "AtSign",
	ExclamationMark:            "ExclamationMark",
	EqualityOperator:           "EqualityOperator",
	InequalityOperator:         "InequalityOperator",
	LessThanOrEqualOperator:    "LessThanOrEqualOperator",
	GreaterThanOrEqualOperator: "GreaterThanOrEqualOperator",
	LessThanOperator:           "LessThanOperator",
	GreaterThanOperator:        "GreaterThanOperator",
	MultiplicationOperator:     "MultiplicationOperator",
	SubtractionOperator:        "SubtractionOperator",
	AdditionOperator:           "AdditionOperator",
	DivisionOperator:           "DivisionOperator",
	BackwardSlashOperator:      "BackwardSlashOperator",
	PeriodOperator:             "PeriodOperator",
	ColonOperator:              "ColonOperator",
	ExponentiationOperator:     "ExponentiationOperator",
}

// IsTrivia reports whether k is whitespace, a newline, or a comment — the
// kinds that are always preserved as CST leaves but never participate in
// lookahead decisions beyond being skipped.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Newline, EndOfLineComment, RemComment:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether k falls in the reserved-word range (ClassKeyword
// through AnyKeyword above). Used by the statement dispatcher to tell a
// legitimate-but-currently-unhandled keyword from genuinely unexpected
// punctuation.
func (k Kind) IsKeyword() bool {
	return k >= ClassKeyword && k <= AnyKeyword
}

// IsNumericLiteral reports whether k is one of the six numeric literal
// subtypes.
func (k Kind) IsNumericLiteral() bool {
	switch k {
	case IntegerLiteral, LongLiteral, SingleLiteral, DoubleLiteral, DecimalLiteral, CurrencyLiteral:
		return true
	default:
		return false
	}
}
