package operands

import (
	"fmt"
	"sort"

	"github.com/Manu343726/nc10as/pkg/utils"
)

// Selector of one of the built-in processor registers, as taken by LDPR/STPR.
// Wherever a 6 bit immediate is accepted it can be spelled by name, e.g. '#PI' is '#4'
type ProcessorRegister uint8

const (
	ProcessorRegister_StackPointer ProcessorRegister = iota
	ProcessorRegister_ProgramStatus
	ProcessorRegister_FaultRegister
	ProcessorRegister_ConfigurationRegister
	ProcessorRegister_ProcessorID
	ProcessorRegister_OutputReady
	ProcessorRegister_InputReady
	ProcessorRegister_OutputEnable
	ProcessorRegister_InputEnable
	ProcessorRegister_InputPending
	ProcessorRegister_ParityError
	ProcessorRegister_InputOverrun

	TOTAL_PROCESSOR_REGISTERS
)

type processorRegisterInfo struct {
	mnemonic    string
	description string
	readOnly    bool
}

var processorRegisters = [TOTAL_PROCESSOR_REGISTERS]processorRegisterInfo{
	{"SP", "Stack Pointer", false},
	{"PS", "Program Status", false},
	{"FR", "Fault Register", false},
	{"CR", "Configuration Register", false},
	{"PI", "Processor ID", false},
	{"OR", "Output Ready", true},
	{"IR", "Input Ready", true},
	{"OE", "Output Enable", false},
	{"IE", "Input Enable", false},
	{"IP", "Input Pending", true},
	{"PE", "Parity Error", true},
	{"IO", "Input Overrun", true},
}

// Canonical mnemonic of the register, e.g. "CR"
func (r ProcessorRegister) Mnemonic() string {
	return processorRegisters[r].mnemonic
}

func (r ProcessorRegister) Description() string {
	return processorRegisters[r].description
}

func (r ProcessorRegister) ReadOnly() bool {
	return processorRegisters[r].readOnly
}

func (r ProcessorRegister) String() string {
	return fmt.Sprintf("%v (%v)", r.Mnemonic(), r.Description())
}

// Immutable alias -> processor register mapping consulted when parsing '#NAME' immediates.
// Aliases are case sensitive
type NamedImmediateTable struct {
	codes map[string]ProcessorRegister
}

// Builds a table with the canonical mnemonic of every processor register plus the given alternate spellings
func NewNamedImmediateTable(alternateSpellings map[string]ProcessorRegister) NamedImmediateTable {
	codes := make(map[string]ProcessorRegister, int(TOTAL_PROCESSOR_REGISTERS)+len(alternateSpellings))

	for i := range processorRegisters {
		codes[processorRegisters[i].mnemonic] = ProcessorRegister(i)
	}

	for alias, register := range alternateSpellings {
		if existing, ok := codes[alias]; ok && existing != register {
			panic(fmt.Sprintf("named immediate alias '%v' already maps to %v", alias, existing))
		}

		codes[alias] = register
	}

	return NamedImmediateTable{codes: codes}
}

// Returns the register selected by the alias, if any
func (t *NamedImmediateTable) Lookup(alias string) (ProcessorRegister, bool) {
	register, ok := t.codes[alias]
	return register, ok
}

// Returns all aliases resolving to the given register, canonical mnemonic first
func (t *NamedImmediateTable) Aliases(register ProcessorRegister) []string {
	aliases := []string{register.Mnemonic()}

	for _, alias := range utils.SortedKeys(t.codes) {
		if t.codes[alias] == register && alias != register.Mnemonic() {
			aliases = append(aliases, alias)
		}
	}

	return aliases
}

// All aliases known by the table, sorted
func (t *NamedImmediateTable) AllAliases() []string {
	aliases := utils.Keys(t.codes)
	sort.Strings(aliases)
	return aliases
}

// The asm listings of the original documentation spell some registers differently
var NamedImmediates NamedImmediateTable = NewNamedImmediateTable(map[string]ProcessorRegister{
	"CONFIG": ProcessorRegister_ConfigurationRegister,
	"IDREG":  ProcessorRegister_ProcessorID,
	"INPEND": ProcessorRegister_InputPending,
	"INRDY":  ProcessorRegister_InputReady,
	"OUTRDY": ProcessorRegister_OutputReady,
})
