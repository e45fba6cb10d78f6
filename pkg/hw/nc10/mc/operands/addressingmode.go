package operands

// Values of the high nibble of an operand leading byte
const (
	// 0x0-0x3 hold the two high bits of a 6 bit inline literal
	ModeNibble_LiteralLast           uint8 = 0x3
	ModeNibble_RegisterIndirect      uint8 = 0x4
	ModeNibble_AutoSkip              uint8 = 0x5
	ModeNibble_AutoIncrement         uint8 = 0x6
	ModeNibble_AutoIncrementIndirect uint8 = 0x7
	// 0x8-0xB, the low two bits are the offset Width
	ModeNibble_Indexed        uint8 = 0x8
	ModeNibble_IndexedLast    uint8 = 0xB
	ModeNibble_RegisterDirect uint8 = 0xC
	ModeNibble_AutoDecrement  uint8 = 0xD
	ModeNibble_Reserved       uint8 = 0xE
	// The register nibble selects the special mode
	ModeNibble_Special uint8 = 0xF
)

// Values of the low nibble when the mode nibble is ModeNibble_Special.
// Below 0xC the low two bits are the offset Width and bits 2-3 select the base
const (
	SpecialNibble_PCRelative   uint8 = 0x0
	SpecialNibble_SPRelative   uint8 = 0x4
	SpecialNibble_Absolute     uint8 = 0x8
	SpecialNibble_StackPushPop uint8 = 0xC
	SpecialNibble_Immediate    uint8 = 0xD
	SpecialNibble_Reserved     uint8 = 0xE
	SpecialNibble_Escape       uint8 = 0xF
)

// Addressing mode selected by an operand
type AddressingMode uint

const (
	// '#n' with n in [-32, 31], packed into the mode byte
	AddressingMode_Literal AddressingMode = iota
	// '#n', '#NAME' or '#1.5' with a trailing typed value (F D)
	AddressingMode_Immediate
	// 'Rn'
	AddressingMode_RegisterDirect
	// '(Rn)'
	AddressingMode_RegisterIndirect
	// '(Rn)+'
	AddressingMode_AutoIncrement
	// '@(Rn)+'
	AddressingMode_AutoIncrementIndirect
	// '-(Rn)'
	AddressingMode_AutoDecrement
	// '(Rn)++'
	AddressingMode_AutoSkip
	// 'A(Rn)'
	AddressingMode_IndexedRegister
	// '@A(Rn)', always a word offset
	AddressingMode_IndirectIndexed
	// 'A(PC)' and '@A(PC)'
	AddressingMode_IndexedPC
	// 'A(SP)' and '@A(SP)'
	AddressingMode_IndexedSP
	// 'A' and '@A', unsigned
	AddressingMode_Absolute
	// 'STK'
	AddressingMode_StackPushPop
	AddressingMode_Reserved
	AddressingMode_Escape
	// A bare identifier where an address is expected, resolved later by the assembler driver
	AddressingMode_UnresolvedLabel
)

func (m AddressingMode) String() string {
	switch m {
	case AddressingMode_Literal:
		return "literal"
	case AddressingMode_Immediate:
		return "immediate"
	case AddressingMode_RegisterDirect:
		return "register direct"
	case AddressingMode_RegisterIndirect:
		return "register indirect"
	case AddressingMode_AutoIncrement:
		return "autoincrement"
	case AddressingMode_AutoIncrementIndirect:
		return "autoincrement indirect"
	case AddressingMode_AutoDecrement:
		return "autodecrement"
	case AddressingMode_AutoSkip:
		return "autoskip"
	case AddressingMode_IndexedRegister:
		return "offset+register indirect"
	case AddressingMode_IndirectIndexed:
		return "indirect offset+register indirect"
	case AddressingMode_IndexedPC:
		return "PC relative"
	case AddressingMode_IndexedSP:
		return "SP relative"
	case AddressingMode_Absolute:
		return "absolute"
	case AddressingMode_StackPushPop:
		return "push/pop"
	case AddressingMode_Reserved:
		return "reserved"
	case AddressingMode_Escape:
		return "escape"
	case AddressingMode_UnresolvedLabel:
		return "label"
	}

	panic("unreachable")
}

// Returns true for the modes carrying a general register number
func (m AddressingMode) HasRegister() bool {
	switch m {
	case AddressingMode_RegisterDirect, AddressingMode_RegisterIndirect,
		AddressingMode_AutoIncrement, AddressingMode_AutoIncrementIndirect,
		AddressingMode_AutoDecrement, AddressingMode_AutoSkip,
		AddressingMode_IndexedRegister, AddressingMode_IndirectIndexed:
		return true
	}

	return false
}

// Returns true for the modes followed by an offset/index value
func (m AddressingMode) HasOffset() bool {
	switch m {
	case AddressingMode_IndexedRegister, AddressingMode_IndirectIndexed,
		AddressingMode_IndexedPC, AddressingMode_IndexedSP, AddressingMode_Absolute:
		return true
	}

	return false
}
