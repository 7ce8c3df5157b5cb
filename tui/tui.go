package tui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/jrwynneiii/dvbparams/catalog"
	"github.com/navidys/tvxwidgets"
	"github.com/rivo/tview"
)

// StartUI opens a read-only browser over the code rates of one standard.
// It blocks until the user quits with q or Ctrl-C.
func StartUI(cat *catalog.Catalog, standard string) error {
	stdData, err := NewStandardTable(cat, standard)
	if err != nil {
		return err
	}
	rateData := NewCodeRateTable(cat, standard)

	app := tview.NewApplication()

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle("Code Rate Detail")

	rateTable := tview.NewTable().SetContent(rateData)
	rateTable.SetFixed(1, 0)
	rateTable.SetSelectable(true, false).SetBorder(true).SetTitle(fmt.Sprintf("%s Code Rates", standard))
	rateTable.SetSelectionChangedFunc(func(row, column int) {
		if rate, ok := rateData.Rate(row); ok {
			details.SetText(describe(rate))
		}
	})

	stdTable := tview.NewTable().SetContent(stdData)
	stdTable.SetSelectable(false, false).SetBorder(true).SetTitle("Standard")

	ratePlot := tvxwidgets.NewPlot()
	ratePlot.SetLineColor([]tcell.Color{tcell.ColorLightSkyBlue})
	ratePlot.SetMarker(tvxwidgets.PlotMarkerBraille)
	ratePlot.SetBorder(true)
	ratePlot.SetTitle("Code Rate Value")

	var values []float64
	for row := 1; row < rateData.GetRowCount(); row++ {
		rate, _ := rateData.Rate(row)
		values = append(values, RateValue(rate.Code))
	}
	if len(values) > 0 {
		ratePlot.SetData([][]float64{values})
	}

	leftCol := tview.NewFlex().SetDirection(tview.FlexRow)
	leftCol.AddItem(rateTable, 0, 3, true)
	leftCol.AddItem(stdTable, 6, 0, false)

	rightCol := tview.NewFlex().SetDirection(tview.FlexRow)
	rightCol.AddItem(details, 0, 2, false)
	rightCol.AddItem(ratePlot, 0, 3, false)

	page := tview.NewFlex().SetDirection(tview.FlexColumn)
	page.AddItem(leftCol, 0, 3, true)
	page.AddItem(rightCol, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	log.Debugf("Browsing %d %s code rates", len(values), standard)
	if err := app.SetRoot(page, true).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("could not start UI: %w", err)
	}
	return nil
}
