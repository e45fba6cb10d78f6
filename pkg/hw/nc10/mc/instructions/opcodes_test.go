package instructions_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/instructions"
	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
)

var _ = Describe("Opcode table", func() {
	opcodes := &instructions.Opcodes

	Describe("mnemonic lookup", func() {
		DescribeTable("should map mnemonics to opcodes",
			func(mnemonic string, expected instructions.OpCode) {
				op, err := opcodes.ParseOpCode(mnemonic)

				Expect(err).NotTo(HaveOccurred())
				Expect(op).To(Equal(expected))
				Expect(op.String()).To(Equal(mnemonic))
			},
			// Even opcodes come from the first grid, odd ones from the second
			Entry("MOVB", "MOVB", instructions.OpCode(0x00)),
			Entry("SFTB", "SFTB", instructions.OpCode(0x01)),
			Entry("MOVR", "MOVR", instructions.OpCode(0x08)),
			Entry("CVBR", "CVBR", instructions.OpCode(0x09)),
			Entry("NOP", "NOP", instructions.OpCode(0x0B)),
			Entry("BG", "BG", instructions.OpCode(0x0F)),
			Entry("REP", "REP", instructions.OpCode(0x1E)),
			Entry("TRAP", "TRAP", instructions.OpCode(0x4E)),
			Entry("LDPR", "LDPR", instructions.OpCode(0x85)),
			Entry("STPR", "STPR", instructions.OpCode(0x95)),
			Entry("CALL", "CALL", instructions.OpCode(0xCF)),
			Entry("MOVA", "MOVA", instructions.OpCode(0xE5)),
		)

		It("should ignore mnemonic case", func() {
			op, err := opcodes.ParseOpCode("movw")

			Expect(err).NotTo(HaveOccurred())
			Expect(op).To(Equal(instructions.OpCode(0x04)))
		})

		It("should reject reserved, escape and unknown mnemonics", func() {
			for _, mnemonic := range []string{"RES", "ESC", "FOO", ""} {
				_, err := opcodes.ParseOpCode(mnemonic)
				Expect(err).To(MatchError(instructions.ErrInvalidOpCode), mnemonic)
			}
		})
	})

	Describe("implemented opcodes", func() {
		It("should count every opcode neither reserved nor escape", func() {
			Expect(opcodes.TotalOpCodes()).To(Equal(142))
			Expect(opcodes.AllOpCodes()).To(HaveLen(142))
		})

		It("should list opcodes in ascending order", func() {
			all := opcodes.AllOpCodes()

			for i := 1; i < len(all); i++ {
				Expect(all[i].OpCode).To(BeNumerically(">", all[i-1].OpCode))
			}
		})

		It("should flag reserved and escape opcodes", func() {
			Expect(instructions.OpCode(0x06).Reserved()).To(BeTrue())
			Expect(instructions.OpCode(0xF1).Escape()).To(BeTrue())
			Expect(opcodes.Implemented(instructions.OpCode(0xF8))).To(BeFalse())
			Expect(opcodes.Implemented(instructions.OpCode(0x00))).To(BeTrue())
		})

		It("should decode implemented opcode bytes only", func() {
			op, err := opcodes.DecodeOpCode(0x0B)
			Expect(err).NotTo(HaveOccurred())
			Expect(op.String()).To(Equal("NOP"))

			_, err = opcodes.DecodeOpCode(0x06)
			Expect(err).To(MatchError(instructions.ErrInvalidOpCode))
		})

		It("should split opcodes into type and operation nibbles", func() {
			op := instructions.OpCode(0x85)

			Expect(op.TypeNibble()).To(Equal(uint8(0x5)))
			Expect(op.OperationNibble()).To(Equal(uint8(0x8)))
		})
	})

	Describe("operand types", func() {
		pair := func(t types.OperandType) []types.OperandType {
			return []types.OperandType{t, t}
		}

		DescribeTable("should follow the opcode type nibble",
			func(mnemonic string, expected []types.OperandType) {
				op, err := opcodes.ParseOpCode(mnemonic)
				Expect(err).NotTo(HaveOccurred())

				operandTypes, err := instructions.OperandTypes(op)
				Expect(err).NotTo(HaveOccurred())
				Expect(operandTypes).To(Equal(expected))
			},
			Entry("byte", "MOVB", pair(types.OperandType_Byte)),
			Entry("byte shift", "SFTB", pair(types.OperandType_Byte)),
			Entry("halfword", "ADDH", pair(types.OperandType_Halfword)),
			Entry("word", "MOVW", pair(types.OperandType_Word)),
			Entry("word logic", "XORW", pair(types.OperandType_Word)),
			Entry("load processor register", "LDPR", []types.OperandType{types.OperandType_Word, types.OperandType_Byte}),
			Entry("store processor register", "STPR", []types.OperandType{types.OperandType_Byte, types.OperandType_Word}),
			Entry("load count", "LCNT", []types.OperandType{types.OperandType_Word, types.OperandType_Byte}),
			Entry("load pointer", "LPTR", pair(types.OperandType_Word)),
			Entry("move address", "MOVA", pair(types.OperandType_Word)),
			Entry("real", "ADDR", pair(types.OperandType_Real)),
			Entry("byte to real", "CVBR", []types.OperandType{types.OperandType_Byte, types.OperandType_Real}),
			Entry("word to byte", "CVWB", []types.OperandType{types.OperandType_Word, types.OperandType_Byte}),
			Entry("real to longreal", "CVRL", []types.OperandType{types.OperandType_Real, types.OperandType_LongReal}),
			Entry("longreal", "SQTL", pair(types.OperandType_LongReal)),
			Entry("no operands", "NOP", []types.OperandType{}),
			Entry("trap", "TRAP", []types.OperandType{types.OperandType_UnsignedByte}),
			Entry("repeat", "REPNZ", []types.OperandType{types.OperandType_Register}),
			Entry("branch", "BNE", []types.OperandType{types.OperandType_Address}),
			Entry("call", "CALL", []types.OperandType{types.OperandType_Address}),
		)

		It("should fail for reserved and escape opcodes", func() {
			for _, op := range []instructions.OpCode{0x06, 0x0C, 0x5E, 0xF1, 0xF8} {
				_, err := instructions.OperandTypes(op)
				Expect(err).To(MatchError(instructions.ErrReservedOpcodeOperand), op.String())
			}
		})

		It("should have types for every implemented opcode", func() {
			for _, descriptor := range opcodes.AllOpCodes() {
				_, err := instructions.OperandTypes(descriptor.OpCode)
				Expect(err).NotTo(HaveOccurred(), descriptor.Mnemonic)
			}
		})
	})

	Describe("table construction", func() {
		It("should panic on grids of the wrong size", func() {
			Expect(func() { instructions.NewOpCodesDescriptor("MOVB", "SFTB") }).To(Panic())
		})
	})
})
