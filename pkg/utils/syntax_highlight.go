package utils

import (
	"strings"
	"unicode"

	"github.com/fatih/color"
)

// Assembly syntax highlighting colors
var (
	asmMnemonicColor = color.New(color.FgMagenta, color.Bold)
	asmRegisterColor = color.New(color.FgCyan)
	asmNumberColor   = color.New(color.FgYellow)
	asmOperatorColor = color.New(color.FgRed)
	asmLabelColor    = color.New(color.FgGreen)
)

// Registers and keywords that may appear inside an operand
var asmKeywords = map[string]bool{
	"PC": true, "SP": true, "STK": true, "RES": true, "ESC": true,
}

func isAsmRegister(word string) bool {
	if asmKeywords[word] {
		return true
	}

	digits, ok := strings.CutPrefix(word, "R")
	return ok && digits != "" && len(digits) <= 2 && strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}

func isAsmWordRune(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// HighlightOperand applies syntax highlighting to one operand, e.g. "@-8(R3)" or "#CONFIG"
func HighlightOperand(operand string) string {
	var result strings.Builder
	runes := []rune(operand)

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '#':
			// The whole immediate, named or numeric
			result.WriteString(asmNumberColor.Sprint(string(runes[i:])))
			return result.String()
		case isAsmWordRune(r):
			begin := i
			for i < len(runes) && isAsmWordRune(runes[i]) {
				i++
			}

			word := string(runes[begin:i])

			switch {
			case isAsmRegister(word):
				result.WriteString(asmRegisterColor.Sprint(word))
			case unicode.IsDigit(runes[begin]):
				result.WriteString(asmNumberColor.Sprint(word))
			default:
				result.WriteString(asmLabelColor.Sprint(word))
			}

			continue
		case unicode.IsSpace(r):
			result.WriteRune(r)
		default:
			result.WriteString(asmOperatorColor.Sprint(string(r)))
		}

		i++
	}

	return result.String()
}

// HighlightInstruction applies syntax highlighting to an instruction of the form 'mnemonic [operand[, operand...]]'
func HighlightInstruction(instruction string) string {
	mnemonic, rest, hasOperands := strings.Cut(strings.TrimSpace(instruction), " ")

	if !hasOperands {
		return asmMnemonicColor.Sprint(mnemonic)
	}

	return asmMnemonicColor.Sprint(mnemonic) + " " + strings.Join(Map(strings.Split(strings.TrimSpace(rest), ","), func(operand string) string {
		return HighlightOperand(strings.TrimSpace(operand))
	}), ", ")
}
