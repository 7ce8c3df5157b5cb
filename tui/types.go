package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/jrwynneiii/dvbparams/catalog"
	"github.com/rivo/tview"
)

type CodeRateTable struct {
	tview.TableContentReadOnly
	rates []catalog.CodeRate
}

type StandardTable struct {
	tview.TableContentReadOnly
	cat      *catalog.Catalog
	standard catalog.Standard
}

func NewCodeRateTable(cat *catalog.Catalog, standard string) *CodeRateTable {
	t := &CodeRateTable{}
	for _, rate := range cat.CodeRates {
		if rate.AppliesTo(standard) {
			t.rates = append(t.rates, rate)
		}
	}
	return t
}

func NewStandardTable(cat *catalog.Catalog, standard string) (*StandardTable, error) {
	std, ok := cat.Standard(standard)
	if !ok {
		return nil, fmt.Errorf("unknown standard %q", standard)
	}
	return &StandardTable{cat: cat, standard: std}, nil
}

// Rate returns the code rate shown on a table row; row 0 is the header.
func (c *CodeRateTable) Rate(row int) (catalog.CodeRate, bool) {
	if row < 1 || row > len(c.rates) {
		return catalog.CodeRate{}, false
	}
	return c.rates[row-1], true
}

func (c *CodeRateTable) GetRowCount() int {
	return len(c.rates) + 1
}

func (c *CodeRateTable) GetColumnCount() int {
	return 4
}

func (c *CodeRateTable) GetCell(row, column int) *tview.TableCell {
	if row == 0 {
		switch column {
		case 0:
			return tview.NewTableCell("[lightskyblue]Code Rate ").SetSelectable(false)
		case 1:
			return tview.NewTableCell("[white]Frame Sizes ").SetSelectable(false)
		case 2:
			return tview.NewTableCell("[green]VL-SNR ").SetSelectable(false)
		case 3:
			return tview.NewTableCell("[white]Identifiers").SetSelectable(false)
		}
		return tview.NewTableCell("ERROR")
	}

	rate, ok := c.Rate(row)
	if !ok {
		return tview.NewTableCell("ERROR")
	}
	switch column {
	case 0:
		return tview.NewTableCell(fmt.Sprintf("[lightskyblue]%s", rate.Code))
	case 1:
		return tview.NewTableCell(fmt.Sprintf("[white]%s", strings.Join(rate.FrameNames(), ", ")))
	case 2:
		if rate.SupportsVLSNR() {
			return tview.NewTableCell("[green]yes")
		}
		return tview.NewTableCell("[red]no")
	case 3:
		return tview.NewTableCell(fmt.Sprintf("[white]%s", strings.Join(identifiers(rate), ", ")))
	}
	return tview.NewTableCell("ERROR")
}

func (s *StandardTable) GetRowCount() int {
	return 4
}

func (s *StandardTable) GetColumnCount() int {
	return 2
}

func (s *StandardTable) GetCell(row, column int) *tview.TableCell {
	switch row {
	case 0:
		if column == 0 {
			return tview.NewTableCell("Engine standard:")
		}
		return tview.NewTableCell(s.standard.ID.String())
	case 1:
		if column == 0 {
			return tview.NewTableCell("VL-SNR mode:")
		}
		color := tcell.ColorGreen
		if !s.standard.VLSNR {
			color = tcell.ColorRed
		}
		return tview.NewTableCell(fmt.Sprintf("%v", s.standard.VLSNR)).SetTextColor(color)
	case 2:
		if column == 0 {
			return tview.NewTableCell("Constellations:")
		}
		return tview.NewTableCell(strings.Join(s.cat.ConstellationsFor(s.standard.Name), " "))
	case 3:
		if column == 0 {
			return tview.NewTableCell("Roll-off factors:")
		}
		rolloffs := s.cat.RolloffsFor(s.standard.Name)
		if len(rolloffs) == 0 {
			return tview.NewTableCell("n/a")
		}
		return tview.NewTableCell(strings.Join(rolloffs, " "))
	}
	return tview.NewTableCell("ERROR")
}

// identifiers lists the distinct engine identifiers of a code rate.
func identifiers(rate catalog.CodeRate) []string {
	if !rate.ContextDependent() {
		return []string{rate.ID.String()}
	}
	var ids []string
	for _, v := range rate.Variants {
		if id := v.ID.String(); !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// describe renders the per-context breakdown of a code rate for the detail
// pane.
func describe(rate catalog.CodeRate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[lightskyblue]%s[white]\n", rate.Code)
	if !rate.ContextDependent() {
		fmt.Fprintf(&b, "%s for %s frames\n", rate.ID, strings.Join(rate.Frames, ", "))
		return b.String()
	}
	for _, v := range rate.Variants {
		mode := "off"
		if v.VLSNR {
			mode = "on"
		}
		fmt.Fprintf(&b, "%-7s VL-SNR %-3s -> %s\n", v.Frame, mode, v.ID)
	}
	return b.String()
}

// RateValue is the numeric value of a fractional code rate label, or 0 when
// the label is not a fraction.
func RateValue(code string) float64 {
	num, den, ok := strings.Cut(code, "/")
	if !ok {
		return 0
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
