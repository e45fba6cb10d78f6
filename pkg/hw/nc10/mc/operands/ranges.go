package operands

import (
	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
)

// Width code of a trailing offset/index value. It is or'ed into the low two bits
// of the mode nibble (indexed register modes) or of the register nibble (special modes)
type Width uint8

const (
	Width_Byte Width = iota
	Width_Halfword
	Width_Word
	// Word offset, accessed through one extra level of indirection ('@A(Rn)')
	Width_IndirectWord
)

func (w Width) String() string {
	switch w {
	case Width_Byte:
		return "byte"
	case Width_Halfword:
		return "halfword"
	case Width_Word:
		return "word"
	case Width_IndirectWord:
		return "indirect word"
	}

	panic("unreachable")
}

// Size in bytes of the value following the mode byte
func (w Width) Size() int {
	switch w {
	case Width_Byte:
		return 1
	case Width_Halfword:
		return 2
	case Width_Word, Width_IndirectWord:
		return 4
	}

	panic("unreachable")
}

// Returns the integer type holding values of this width
func (w Width) IntegerType(signed bool) types.OperandType {
	return types.IntegerOfSize(w.Size(), signed)
}

// Returns true if n is representable as a two's complement (signed) or plain binary (unsigned) integer of the given bits
func InRange(n int64, bits int, signed bool) bool {
	if signed {
		max := int64(1)<<(bits-1) - 1
		min := -(int64(1) << (bits - 1))
		return n >= min && n <= max
	}

	max := int64(1)<<bits - 1
	return n >= 0 && n <= max
}

// Returns true if n fits the signed 6 bit literal window [-32, 31] packed into the operand mode byte
func FitsInline6Bit(n int64) bool {
	return InRange(n, 6, true)
}

// Picks the narrowest of byte, halfword and word able to hold n with the given signedness
func ClassifyInteger(n int64, signed bool) (types.OperandType, Width, error) {
	for _, w := range []Width{Width_Byte, Width_Halfword, Width_Word} {
		if InRange(n, utils.BitsPerByte*w.Size(), signed) {
			return w.IntegerType(signed), w, nil
		}
	}

	kind := "signed"
	if !signed {
		kind = "unsigned"
	}

	return types.OperandType_None, 0, utils.MakeError(ErrValueOutOfRange, "%v does not fit a %v word", n, kind)
}
