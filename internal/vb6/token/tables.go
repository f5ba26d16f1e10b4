package token

// KeywordEntry pairs a keyword's surface spelling with its Kind. Order
// matters: entries are tried in slice order during lexing, so a keyword
// that is a prefix of another (e.g. "Else" is a prefix of "ElseIf") must be
// preceded by the longer sibling or it would shadow it. See spec §9.
type KeywordEntry struct {
	Text string
	Kind Kind
}

// Keywords is the ordered VB6 keyword table, transcribed in the same order
// the reference lexer uses (longer-prefix-first disambiguation comments
// preserved where they explain a non-alphabetical placement).
var Keywords = []KeywordEntry{
	{"AddressOf", AddressOfKeyword},
	{"Access", AccessKeyword},
	{"Alias", AliasKeyword},
	{"And", AndKeyword},
	{"AppActivate", AppActivateKeyword},
	{"Append", AppendKeyword},
	{"Attribute", AttributeKeyword},
	{"As", AsKeyword},
	{"Base", BaseKeyword},
	{"Beep", BeepKeyword},
	{"Begin", BeginKeyword},
	{"Binary", BinaryKeyword},
	{"Boolean", BooleanKeyword},
	{"ByRef", ByRefKeyword},
	{"Byte", ByteKeyword},
	{"ByVal", ByValKeyword},
	{"Call", CallKeyword},
	{"Case", CaseKeyword},
	{"ChDir", ChDirKeyword},
	{"ChDrive", ChDriveKeyword},
	{"Class", ClassKeyword},
	{"Close", CloseKeyword},
	{"Compare", CompareKeyword},
	{"Const", ConstKeyword},
	{"Currency", CurrencyKeyword},
	{"Date", DateKeyword},
	{"Decimal", DecimalKeyword},
	{"Declare", DeclareKeyword},
	{"DefBool", DefBoolKeyword},
	{"DefByte", DefByteKeyword},
	{"DefCur", DefCurKeyword},
	{"DefDate", DefDateKeyword},
	{"DefDbl", DefDblKeyword},
	{"DefDec", DefDecKeyword},
	{"DefInt", DefIntKeyword},
	{"DefLng", DefLngKeyword},
	{"DefObj", DefObjKeyword},
	{"DefSng", DefSngKeyword},
	{"DefStr", DefStrKeyword},
	{"DefVar", DefVarKeyword},
	{"DeleteSetting", DeleteSettingKeyword},
	{"Dim", DimKeyword},
	// Double before Do, else "Do" would shadow the "Do" prefix of "Double".
	{"Double", DoubleKeyword},
	{"Do", DoKeyword},
	{"Each", EachKeyword},
	// ElseIf before Else, else "Else" would shadow "ElseIf".
	{"ElseIf", ElseIfKeyword},
	{"Else", ElseKeyword},
	{"Empty", EmptyKeyword},
	{"End", EndKeyword},
	{"Enum", EnumKeyword},
	{"Eqv", EqvKeyword},
	{"Erase", EraseKeyword},
	{"Error", ErrorKeyword},
	{"Event", EventKeyword},
	{"Exit", ExitKeyword},
	{"Explicit", ExplicitKeyword},
	{"False", FalseKeyword},
	{"FileCopy", FileCopyKeyword},
	{"For", ForKeyword},
	{"Friend", FriendKeyword},
	{"Function", FunctionKeyword},
	{"Get", GetKeyword},
	{"GoSub", GoSubKeyword},
	{"Goto", GotoKeyword},
	{"If", IfKeyword},
	// Implements before Imp, else "Imp" would shadow "Implements".
	{"Implements", ImplementsKeyword},
	{"Imp", ImpKeyword},
	{"In", InKeyword},
	{"Input", InputKeyword},
	{"Integer", IntegerKeyword},
	{"Is", IsKeyword},
	{"Kill", KillKeyword},
	{"Len", LenKeyword},
	{"Let", LetKeyword},
	{"Lib", LibKeyword},
	{"Line", LineKeyword},
	{"Lock", LockKeyword},
	{"Load", LoadKeyword},
	{"Unload", UnloadKeyword},
	{"Long", LongKeyword},
	{"Loop", LoopKeyword},
	{"LSet", LSetKeyword},
	{"Me", MeKeyword},
	{"Mid", MidKeyword},
	{"MidB", MidBKeyword},
	{"MkDir", MkDirKeyword},
	{"Module", ModuleKeyword},
	{"Mod", ModKeyword},
	{"Name", NameKeyword},
	{"New", NewKeyword},
	{"Next", NextKeyword},
	{"Not", NotKeyword},
	{"Nothing", NothingKeyword},
	{"Output", OutputKeyword},
	{"Null", NullKeyword},
	{"Object", ObjectKeyword},
	{"On", OnKeyword},
	{"Off", OffKeyword},
	{"Open", OpenKeyword},
	// Optional before Option, else "Option" would shadow "Optional".
	{"Optional", OptionalKeyword},
	{"Option", OptionKeyword},
	{"Or", OrKeyword},
	{"ParamArray", ParamArrayKeyword},
	{"Preserve", PreserveKeyword},
	{"Print", PrintKeyword},
	{"Private", PrivateKeyword},
	{"Property", PropertyKeyword},
	{"Public", PublicKeyword},
	{"Put", PutKeyword},
	{"RaiseEvent", RaiseEventKeyword},
	{"Random", RandomKeyword},
	{"Randomize", RandomizeKeyword},
	{"Read", ReadKeyword},
	{"ReDim", ReDimKeyword},
	{"Reset", ResetKeyword},
	{"Resume", ResumeKeyword},
	{"Return", ReturnKeyword},
	{"RmDir", RmDirKeyword},
	{"RSet", RSetKeyword},
	{"SavePicture", SavePictureKeyword},
	{"SaveSetting", SaveSettingKeyword},
	{"Seek", SeekKeyword},
	{"Select", SelectKeyword},
	{"SendKeys", SendKeysKeyword},
	// SetAttr before Set, else "Set" would shadow "SetAttr".
	{"SetAttr", SetAttrKeyword},
	{"Set", SetKeyword},
	{"Single", SingleKeyword},
	{"Static", StaticKeyword},
	{"Step", StepKeyword},
	{"Stop", StopKeyword},
	{"String", StringKeyword},
	{"Sub", SubKeyword},
	{"Text", TextKeyword},
	{"Database", DatabaseKeyword},
	{"Then", ThenKeyword},
	{"Time", TimeKeyword},
	{"To", ToKeyword},
	{"True", TrueKeyword},
	{"Type", TypeKeyword},
	{"Unlock", UnlockKeyword},
	{"Until", UntilKeyword},
	{"Variant", VariantKeyword},
	{"Version", VersionKeyword},
	{"Wend", WendKeyword},
	{"While", WhileKeyword},
	{"Width", WidthKeyword},
	// WithEvents before With, else "With" would shadow "WithEvents".
	{"WithEvents", WithEventsKeyword},
	{"With", WithKeyword},
	{"Write", WriteKeyword},
	{"Xor", XorKeyword},
	{"Any", AnyKeyword},
}

// SymbolEntry pairs a punctuation/operator spelling with its Kind.
type SymbolEntry struct {
	Text string
	Kind Kind
}

// Symbols is the ordered VB6 symbol table. Multi-character operators that
// share a leading character with a single-character one are listed first so
// the longest match always wins.
var Symbols = []SymbolEntry{
	{"<>", InequalityOperator},
	{"<=", LessThanOrEqualOperator},
	{">=", GreaterThanOrEqualOperator},
	{"=", EqualityOperator},
	{"$", DollarSign},
	{"_", Underscore},
	{"&", Ampersand},
	{"%", Percent},
	{"#", Octothorpe},
	{"<", LessThanOperator},
	{">", GreaterThanOperator},
	{"(", LeftParenthesis},
	{")", RightParenthesis},
	{"{", LeftCurlyBrace},
	{"}", RightCurlyBrace},
	{",", Comma},
	{"+", AdditionOperator},
	{"-", SubtractionOperator},
	{"*", MultiplicationOperator},
	{"\\", BackwardSlashOperator},
	{"/", DivisionOperator},
	{".", PeriodOperator},
	{":", ColonOperator},
	{"^", ExponentiationOperator},
	{"!", ExclamationMark},
	{"[", LeftSquareBracket},
	{"]", RightSquareBracket},
	{";", Semicolon},
	{"@", AtSign},
}
