package operands

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
)

// Base of an indexed or register indirect operand, as written between parentheses
type BaseRegister uint8

const (
	// No parentheses at all
	BaseRegister_None BaseRegister = iota
	// '(Rn)'
	BaseRegister_General
	// '(PC)'
	BaseRegister_PC
	// '(SP)'
	BaseRegister_SP
)

func (b BaseRegister) String() string {
	switch b {
	case BaseRegister_None:
		return "none"
	case BaseRegister_General:
		return "Rn"
	case BaseRegister_PC:
		return "PC"
	case BaseRegister_SP:
		return "SP"
	}

	panic("unreachable")
}

// Raw components of an operand recognized by the general grammar:
//
//	['@'] [offset | '-'] ['(' (Rn | PC | SP) ')'] ['+' ['+']]
//
// where offset is a decimal or 0x prefixed hex integer, optionally negative
type Syntax struct {
	// Leading '@'
	Indirect bool
	// Offset/index text, empty if absent. A lone "-" marks autodecrement
	Offset string
	Base   BaseRegister
	// Register number text after the 'R' when Base is BaseRegister_General
	RegisterText string
	// Number of trailing '+' (0, 1 or 2)
	Increments int
}

func (s *Syntax) AutoDecrement() bool {
	return s.Offset == "-"
}

func (s *Syntax) AutoIncrement() bool {
	return s.Increments > 0
}

// Two '+' mean autoskip, a different mode than plain autoincrement
func (s *Syntax) AutoSkip() bool {
	return s.Increments == 2
}

func (s *Syntax) HasOffset() bool {
	return s.Offset != "" && !s.AutoDecrement()
}

type scanner struct {
	text string
	pos  int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.text)
}

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}

	return s.text[s.pos]
}

func (s *scanner) accept(c byte) bool {
	if !s.done() && s.text[s.pos] == c {
		s.pos++
		return true
	}

	return false
}

func (s *scanner) acceptString(prefix string) bool {
	if strings.HasPrefix(s.text[s.pos:], prefix) {
		s.pos += len(prefix)
		return true
	}

	return false
}

func (s *scanner) acceptRun(valid func(byte) bool) string {
	begin := s.pos

	for !s.done() && valid(s.text[s.pos]) {
		s.pos++
	}

	return s.text[begin:s.pos]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOffsetChar(c byte) bool {
	return c == '-' || isDigit(c)
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// The offset field is a run of digits and '-'. An 'x' right after a '0' switches the rest of the run to hex digits
func (s *scanner) offset() string {
	begin := s.pos
	run := s.acceptRun(isOffsetChar)

	if strings.HasSuffix(run, "0") && (s.accept('x') || s.accept('X')) {
		s.acceptRun(func(c byte) bool { return isHexDigit(c) || c == '-' })
	}

	return s.text[begin:s.pos]
}

func (s *scanner) base(syntax *Syntax) bool {
	if !s.accept('(') {
		return true
	}

	switch {
	case s.acceptString("PC"):
		syntax.Base = BaseRegister_PC
	case s.acceptString("SP"):
		syntax.Base = BaseRegister_SP
	case s.accept('R'):
		syntax.Base = BaseRegister_General
		begin := s.pos
		s.acceptRun(isDigit)
		syntax.RegisterText = s.text[begin:s.pos]

		if len(syntax.RegisterText) < 1 || len(syntax.RegisterText) > 2 {
			return false
		}
	default:
		return false
	}

	return s.accept(')')
}

// Runs the general grammar matcher over the whole text. Returns false if the text does not match
func MatchSyntax(text string) (Syntax, bool) {
	var syntax Syntax
	s := scanner{text: text}

	syntax.Indirect = s.accept('@')
	syntax.Offset = s.offset()

	if !s.base(&syntax) {
		return Syntax{}, false
	}

	for syntax.Increments < 2 && s.accept('+') {
		syntax.Increments++
	}

	if !s.done() {
		return Syntax{}, false
	}

	return syntax, true
}

// Result of parsing operand text: the addressing mode plus the components the encoder needs
type ParsedOperand struct {
	// Source text
	Text string
	Mode AddressingMode
	// General register for the modes where Mode.HasRegister()
	Register int
	// Leading '@' on indexed forms
	Indirect bool
	// Offset/index text of indexed and absolute modes
	Offset string
	// Immediate text after '#' for literal/immediate operands
	Immediate string
}

// Operands written as a single keyword, with no register or value
var keywordModes = map[string]AddressingMode{
	"STK": AddressingMode_StackPushPop,
	"RES": AddressingMode_Reserved,
	"ESC": AddressingMode_Escape,
}

// Parses a register number of one or two decimal digits
func parseRegisterNumber(text string) (int, error) {
	if len(text) < 1 || len(text) > 2 || !isDigit(text[0]) || (len(text) == 2 && !isDigit(text[1])) {
		return 0, utils.MakeError(ErrInvalidRegisterNumber, "'%v' is not a register number", text)
	}

	n, _ := strconv.Atoi(text)

	if n > 15 {
		return 0, utils.MakeError(ErrInvalidRegisterNumber, "R%v outside range 0-15", n)
	}

	return n, nil
}

// Returns true if text is an identifier: a letter or underscore followed by letters, digits or underscores
func IsValidLabel(text string) bool {
	if text == "" {
		return false
	}

	for i, r := range text {
		if !(r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r))) {
			return false
		}
	}

	return true
}

// Parses operand text (already stripped of surrounding whitespace) into its addressing mode.
//
// The expected type only matters for bare identifiers: they are accepted as unresolved labels
// when the operand is an address, and rejected otherwise
func Parse(text string, expected types.OperandType) (ParsedOperand, error) {
	result := ParsedOperand{Text: text}

	if text == "" {
		return result, utils.MakeError(ErrUnparseableOperand, "empty operand")
	}

	if immediate, isImmediate := strings.CutPrefix(text, "#"); isImmediate {
		result.Mode = AddressingMode_Immediate
		result.Immediate = immediate
		return result, nil
	}

	if mode, isKeyword := keywordModes[text]; isKeyword {
		result.Mode = mode
		return result, nil
	}

	// Anything that is not a valid register number falls through, it might be a label like 'RETRY'
	if number, isRegister := strings.CutPrefix(text, "R"); isRegister {
		if n, err := parseRegisterNumber(number); err == nil {
			result.Mode = AddressingMode_RegisterDirect
			result.Register = n
			return result, nil
		}
	}

	syntax, ok := MatchSyntax(text)

	if !ok {
		if expected == types.OperandType_Address && IsValidLabel(text) {
			result.Mode = AddressingMode_UnresolvedLabel
			return result, nil
		}

		return result, utils.MakeError(ErrUnparseableOperand, "'%v'", text)
	}

	return parseSyntax(result, &syntax)
}

func parseSyntax(result ParsedOperand, syntax *Syntax) (ParsedOperand, error) {
	if syntax.Base == BaseRegister_General {
		n, err := parseRegisterNumber(syntax.RegisterText)

		if err != nil {
			return result, err
		}

		result.Register = n
	}

	if !syntax.HasOffset() {
		switch {
		case syntax.AutoIncrement() && syntax.AutoDecrement():
			return result, utils.MakeError(ErrIllegalModeCombination, "'%v': autoincrement and autodecrement cannot both be present", result.Text)
		case syntax.Base != BaseRegister_General:
			return result, utils.MakeError(ErrIllegalModeCombination, "'%v': register indirect requires a general purpose register", result.Text)
		case (syntax.AutoDecrement() || syntax.AutoSkip()) && syntax.Indirect:
			return result, utils.MakeError(ErrIllegalModeCombination, "'%v': autodecrement/autoskip and @indirect cannot both be present", result.Text)
		case syntax.Indirect && !syntax.AutoIncrement():
			return result, utils.MakeError(ErrIllegalModeCombination, "'%v': @(Rn) requires a non-empty offset or autoincrement", result.Text)
		}

		switch {
		case syntax.AutoSkip():
			result.Mode = AddressingMode_AutoSkip
		case syntax.AutoIncrement() && syntax.Indirect:
			result.Mode = AddressingMode_AutoIncrementIndirect
		case syntax.AutoIncrement():
			result.Mode = AddressingMode_AutoIncrement
		case syntax.AutoDecrement():
			result.Mode = AddressingMode_AutoDecrement
		default:
			result.Mode = AddressingMode_RegisterIndirect
		}

		return result, nil
	}

	if syntax.AutoIncrement() {
		return result, utils.MakeError(ErrIllegalModeCombination, "'%v': autoincrement/autoskip cannot be combined with an offset", result.Text)
	}

	result.Indirect = syntax.Indirect
	result.Offset = syntax.Offset

	switch syntax.Base {
	case BaseRegister_General:
		if syntax.Indirect {
			result.Mode = AddressingMode_IndirectIndexed
		} else {
			result.Mode = AddressingMode_IndexedRegister
		}
	case BaseRegister_PC:
		result.Mode = AddressingMode_IndexedPC
	case BaseRegister_SP:
		result.Mode = AddressingMode_IndexedSP
	default:
		result.Mode = AddressingMode_Absolute
	}

	return result, nil
}
