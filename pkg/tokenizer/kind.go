package tokenizer

import "fmt"

/*
 * TokenKind is the lexical category of a token.
 *
 * The numeric values are the token codes of SQLite's grammar and are part of
 * the public contract: consumers that persist or exchange kinds as integers
 * rely on them staying put.  New kinds may only be appended after Register.
 *
 * Some of the more varied kinds:
 *
 *   Variable        a placeholder: ?  ?7  @a  :b  #c  $d
 *   Space           whitespace, but also -- and / * * / comments
 *   Id              my_column  [some table]  "that function"  `a trigger`
 *   String          'abcd'  'planet''s moon'
 *   Blob            x'FEFF6564'
 *
 * The kinds from ToText through IsNot and from Function through Register are
 * never produced by the lexer.  They are slots a parser may retag a token to
 * once context is known (an Id that turns out to name a function, a Minus that
 * is unary, ...).
 */
type TokenKind int

const (
	Semicolon TokenKind = 1 + iota
	Explain
	Query
	Plan
	Begin
	Transaction
	Deferred
	Immediate
	Exclusive
	Commit
	End
	Rollback
	Savepoint
	Release
	To
	Table
	Create
	If
	Not
	Exists
	Temp
	LeftParen
	RightParen
	As
	Without
	Comma
	Id
	Indexed
	Abort
	Action
	After
	Analyze
	Asc
	Attach
	Before
	By
	Cascade
	Cast
	ColumnKw
	Conflict
	Database
	Desc
	Detach
	Each
	Fail
	For
	Ignore
	Initially
	Instead
	Like
	Match
	No
	Key
	Of
	Offset
	Pragma
	Raise
	Recursive
	Replace
	Restrict
	Row
	Trigger
	Vacuum
	View
	Virtual
	With
	Reindex
	Rename
	CurrentTime
	Any
	Or
	And
	Is
	Between
	In
	IsNull
	NotNull
	NotEqual
	Equal
	Greater
	LessOrEqual
	Less
	GreaterOrEqual
	Escape
	BitAnd
	BitOr
	LeftShift
	RightShift
	Plus
	Minus
	Star
	Slash
	Remainder
	Concat
	Collate
	BitNot
	String
	JoinKw
	Constraint
	Default
	Null
	Primary
	Unique
	Check
	References
	AutoIncrement
	On
	Insert
	Delete
	Update
	Set
	Deferrable
	Foreign
	Drop
	Union
	All
	Except
	Intersect
	Select
	Values
	Distinct
	Dot
	From
	Join
	Using
	Order
	Group
	Having
	Limit
	Where
	Into
	Integer
	Float
	Blob
	Variable
	Case
	When
	Then
	Else
	Index
	Alter
	Add
	ToText
	ToBlob
	ToNumeric
	ToInt
	ToReal
	IsNot
	EndOfFile
	Illegal
	Space
	UnclosedString
	Function
	Column
	AggFunction
	AggColumn
	UnaryMinus
	UnaryPlus
	Register
)

// maxKind is the highest assigned token code.
const maxKind = Register

var kindNames = [...]string{
	Semicolon:      "Semicolon",
	Explain:        "Explain",
	Query:          "Query",
	Plan:           "Plan",
	Begin:          "Begin",
	Transaction:    "Transaction",
	Deferred:       "Deferred",
	Immediate:      "Immediate",
	Exclusive:      "Exclusive",
	Commit:         "Commit",
	End:            "End",
	Rollback:       "Rollback",
	Savepoint:      "Savepoint",
	Release:        "Release",
	To:             "To",
	Table:          "Table",
	Create:         "Create",
	If:             "If",
	Not:            "Not",
	Exists:         "Exists",
	Temp:           "Temp",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	As:             "As",
	Without:        "Without",
	Comma:          "Comma",
	Id:             "Id",
	Indexed:        "Indexed",
	Abort:          "Abort",
	Action:         "Action",
	After:          "After",
	Analyze:        "Analyze",
	Asc:            "Asc",
	Attach:         "Attach",
	Before:         "Before",
	By:             "By",
	Cascade:        "Cascade",
	Cast:           "Cast",
	ColumnKw:       "ColumnKw",
	Conflict:       "Conflict",
	Database:       "Database",
	Desc:           "Desc",
	Detach:         "Detach",
	Each:           "Each",
	Fail:           "Fail",
	For:            "For",
	Ignore:         "Ignore",
	Initially:      "Initially",
	Instead:        "Instead",
	Like:           "Like",
	Match:          "Match",
	No:             "No",
	Key:            "Key",
	Of:             "Of",
	Offset:         "Offset",
	Pragma:         "Pragma",
	Raise:          "Raise",
	Recursive:      "Recursive",
	Replace:        "Replace",
	Restrict:       "Restrict",
	Row:            "Row",
	Trigger:        "Trigger",
	Vacuum:         "Vacuum",
	View:           "View",
	Virtual:        "Virtual",
	With:           "With",
	Reindex:        "Reindex",
	Rename:         "Rename",
	CurrentTime:    "CurrentTime",
	Any:            "Any",
	Or:             "Or",
	And:            "And",
	Is:             "Is",
	Between:        "Between",
	In:             "In",
	IsNull:         "IsNull",
	NotNull:        "NotNull",
	NotEqual:       "NotEqual",
	Equal:          "Equal",
	Greater:        "Greater",
	LessOrEqual:    "LessOrEqual",
	Less:           "Less",
	GreaterOrEqual: "GreaterOrEqual",
	Escape:         "Escape",
	BitAnd:         "BitAnd",
	BitOr:          "BitOr",
	LeftShift:      "LeftShift",
	RightShift:     "RightShift",
	Plus:           "Plus",
	Minus:          "Minus",
	Star:           "Star",
	Slash:          "Slash",
	Remainder:      "Remainder",
	Concat:         "Concat",
	Collate:        "Collate",
	BitNot:         "BitNot",
	String:         "String",
	JoinKw:         "JoinKw",
	Constraint:     "Constraint",
	Default:        "Default",
	Null:           "Null",
	Primary:        "Primary",
	Unique:         "Unique",
	Check:          "Check",
	References:     "References",
	AutoIncrement:  "AutoIncrement",
	On:             "On",
	Insert:         "Insert",
	Delete:         "Delete",
	Update:         "Update",
	Set:            "Set",
	Deferrable:     "Deferrable",
	Foreign:        "Foreign",
	Drop:           "Drop",
	Union:          "Union",
	All:            "All",
	Except:         "Except",
	Intersect:      "Intersect",
	Select:         "Select",
	Values:         "Values",
	Distinct:       "Distinct",
	Dot:            "Dot",
	From:           "From",
	Join:           "Join",
	Using:          "Using",
	Order:          "Order",
	Group:          "Group",
	Having:         "Having",
	Limit:          "Limit",
	Where:          "Where",
	Into:           "Into",
	Integer:        "Integer",
	Float:          "Float",
	Blob:           "Blob",
	Variable:       "Variable",
	Case:           "Case",
	When:           "When",
	Then:           "Then",
	Else:           "Else",
	Index:          "Index",
	Alter:          "Alter",
	Add:            "Add",
	ToText:         "ToText",
	ToBlob:         "ToBlob",
	ToNumeric:      "ToNumeric",
	ToInt:          "ToInt",
	ToReal:         "ToReal",
	IsNot:          "IsNot",
	EndOfFile:      "EndOfFile",
	Illegal:        "Illegal",
	Space:          "Space",
	UnclosedString: "UnclosedString",
	Function:       "Function",
	Column:         "Column",
	AggFunction:    "AggFunction",
	AggColumn:      "AggColumn",
	UnaryMinus:     "UnaryMinus",
	UnaryPlus:      "UnaryPlus",
	Register:       "Register",
}

// kindsByName is the inverse of kindNames, built once at init.
var kindsByName = func() map[string]TokenKind {
	m := make(map[string]TokenKind, len(kindNames))
	for k := Semicolon; k <= maxKind; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// KindFromCode maps a token code to its kind. Unknown codes map to Illegal.
func KindFromCode(code int) TokenKind {
	if code < int(Semicolon) || code > int(maxKind) {
		return Illegal
	}
	return TokenKind(code)
}

// Code returns the stable numeric code of k.
func (k TokenKind) Code() int { return int(k) }

// Valid reports whether k is one of the enumerated kinds.
func (k TokenKind) Valid() bool { return k >= Semicolon && k <= maxKind }

func (k TokenKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind whose name is name, as printed by String.
func ParseKind(name string) (TokenKind, error) {
	if k, ok := kindsByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown token kind %q", name)
}

// MarshalText encodes k by name so that JSON reports stay readable.
func (k TokenKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid token kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name written by MarshalText.
func (k *TokenKind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Category groups token kinds for consumers such as highlighters that do not
// care about the exact keyword or operator.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryKeyword
	CategoryOperator
	CategoryPunctuation
	CategoryLiteral
	CategoryIdentifier
	CategoryWhitespace
	CategoryError
	CategoryMarker // only assigned by a parser, never by the lexer
)

// String returns a lowercase name for the category.
func (c Category) String() string {
	switch c {
	case CategoryKeyword:
		return "keyword"
	case CategoryOperator:
		return "operator"
	case CategoryPunctuation:
		return "punctuation"
	case CategoryLiteral:
		return "literal"
	case CategoryIdentifier:
		return "identifier"
	case CategoryWhitespace:
		return "whitespace"
	case CategoryError:
		return "error"
	case CategoryMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Category classifies k.
func (k TokenKind) Category() Category {
	switch k {
	case Semicolon, LeftParen, RightParen, Comma, Dot:
		return CategoryPunctuation
	case NotEqual, Equal, Greater, LessOrEqual, Less, GreaterOrEqual,
		BitAnd, BitOr, LeftShift, RightShift, Plus, Minus, Star, Slash,
		Remainder, Concat, BitNot:
		return CategoryOperator
	case String, Integer, Float, Blob, Variable:
		return CategoryLiteral
	case Id:
		return CategoryIdentifier
	case Space:
		return CategoryWhitespace
	case Illegal, UnclosedString:
		return CategoryError
	case Any, ToText, ToBlob, ToNumeric, ToInt, ToReal, IsNot, EndOfFile,
		Function, Column, AggFunction, AggColumn, UnaryMinus, UnaryPlus, Register:
		return CategoryMarker
	}
	if k.Valid() {
		return CategoryKeyword
	}
	return CategoryUnknown
}

// IsKeyword reports whether k is a reserved-word kind.
func (k TokenKind) IsKeyword() bool { return k.Category() == CategoryKeyword }

// IsError reports whether k marks malformed input (Illegal or UnclosedString).
func (k TokenKind) IsError() bool { return k.Category() == CategoryError }
