package utils

import (
	"errors"
	"strings"
)

var ErrEmptyFrame = errors.New("ascii frame has no fields")

// One column of an ascii frame diagram
type AsciiFrameField struct {
	// Name of the field, drawn in the first row
	Name string
	// Contents of the field, drawn below the name
	Value string
	// Field width with its unit, e.g. "4 bits". Drawn under the frame
	Size string
}

func (f *AsciiFrameField) columnWidth() int {
	return Max([]int{len(f.Name), len(f.Value), len(f.Size)}) + 2
}

// Centers text in a cell of the given width. Odd padding goes to the right
func centered(text string, width int) string {
	if len(text) > width {
		return text
	}

	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}

// Prints an ascii diagram of a binary frame made of contiguous fields, first field leftmost:
//
//	+--------+--------+---------+
//	|  mode  |  reg   |  value  |
//	|   F    |   D    |  64 00  |
//	+--------+--------+---------+
//	  4 bits   4 bits   2 bytes
func AsciiFrame(fields []AsciiFrameField, leftpad int) (string, error) {
	if len(fields) == 0 {
		return "", ErrEmptyFrame
	}

	var border, names, values, sizes strings.Builder

	for i := range fields {
		field := &fields[i]
		width := field.columnWidth()

		border.WriteString("+" + strings.Repeat("-", width))
		names.WriteString("|" + centered(field.Name, width))
		values.WriteString("|" + centered(field.Value, width))
		sizes.WriteString(" " + centered(field.Size, width))
	}

	border.WriteString("+")
	names.WriteString("|")
	values.WriteString("|")

	padding := strings.Repeat(" ", leftpad)

	var result strings.Builder

	for _, row := range []string{border.String(), names.String(), values.String(), border.String(), strings.TrimRight(sizes.String(), " ")} {
		result.WriteString(padding)
		result.WriteString(row)
		result.WriteString("\n")
	}

	return result.String(), nil
}
