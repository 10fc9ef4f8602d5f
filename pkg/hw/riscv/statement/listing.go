package statement

import (
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/render"
)

// Writes a listing of the statements: address, machine word, display form and
// source location. Statements are written in address order. Style decorates the
// display form, and can be nil
func DumpListing(w io.Writer, statements []*Statement, config render.DisplayConfig, style render.Style) error {
	sorted := append([]*Statement(nil), statements...)
	SortByAddress(sorted)

	invalid := 0

	if _, err := fmt.Fprintf(w, "=== Listing (%d statements) ===\n", len(sorted)); err != nil {
		return err
	}

	for i, s := range sorted {
		word := "--------"
		if s.state.HasMachineWord() {
			word = fmt.Sprintf("%08x", uint32(s.binaryWord))
		}

		if s.state == State_Decoded && s.instruction == nil {
			invalid++
		}

		var row strings.Builder
		fmt.Fprintf(&row, "  [%4d] %v  %v  %v", i, render.FormatNumber(s.address, config.AddressBase), word, s.StyledDisplayText(config, style))

		if s.source.Line > 0 {
			fmt.Fprintf(&row, "  ; line %d", s.source.Line)

			if s.source.Text != "" {
				fmt.Fprintf(&row, ": %s", s.source.Text)
			}
		}

		if s.altered {
			row.WriteString("  (altered)")
		}

		row.WriteByte('\n')

		if _, err := io.WriteString(w, row.String()); err != nil {
			return err
		}
	}

	if invalid > 0 {
		if _, err := fmt.Fprintf(w, "%d words do not encode any known instruction\n", invalid); err != nil {
			return err
		}
	}

	return nil
}
