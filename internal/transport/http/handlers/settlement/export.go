package settlement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jung-kurt/gofpdf"

	"liquidador/internal/domain/liquidation"
	"liquidador/internal/requestctx"
	"liquidador/internal/transport/http/api"
	"liquidador/internal/transport/http/shared"
)

type reportLine struct {
	Label   string
	Minutes int
	Rate    float64
	Amount  float64
}

var categoryLabels = []struct {
	cat   liquidation.Category
	label string
}{
	{liquidation.NightSurchargeWeekday, "Recargo nocturno ordinario"},
	{liquidation.DaySurchargeHoliday, "Recargo diurno dominical/festivo"},
	{liquidation.NightSurchargeHoliday, "Recargo nocturno dominical/festivo"},
	{liquidation.OvertimeDayWeekday, "Hora extra diurna ordinaria"},
	{liquidation.OvertimeNightWeekday, "Hora extra nocturna ordinaria"},
	{liquidation.OvertimeDayHoliday, "Hora extra diurna dominical/festivo"},
	{liquidation.OvertimeNightHoliday, "Hora extra nocturna dominical/festivo"},
}

func reportLines(result liquidation.Result) []reportLine {
	lines := make([]reportLine, 0, len(categoryLabels))
	for _, entry := range categoryLabels {
		breakdown := result.CategoryBreakdown(entry.cat)
		lines = append(lines, reportLine{
			Label:   entry.label,
			Minutes: breakdown.Minutes,
			Rate:    entry.cat.Rate(),
			Amount:  breakdown.Amount,
		})
	}
	return lines
}

// settle runs the shared resolve+calculate path for the export
// endpoints. Months with validation errors are refused; an export of a
// broken month would be misleading.
func (h *Handler) settle(w http.ResponseWriter, r *http.Request) (resolvedRequest, liquidation.Result, bool) {
	reqID := requestctx.GetRequestID(r.Context())

	resolved, ok := h.resolve(w, r)
	if !ok {
		return resolvedRequest{}, liquidation.Result{}, false
	}

	result := liquidation.Calculate(resolved.Days, resolved.Context)
	if len(result.Errors) > 0 {
		api.WriteJSON(w, http.StatusUnprocessableEntity, api.Envelope{
			Success:   false,
			Data:      result,
			Error:     &api.Error{Code: "validation_failed", Message: "month has validation errors"},
			RequestID: reqID,
		})
		return resolvedRequest{}, liquidation.Result{}, false
	}
	if h.Collector != nil {
		h.Collector.RecordSettlement()
	}
	return resolved, result, true
}

// handleExportCSV settles the month and streams the breakdown as a CSV
// file.
func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	resolved, result, ok := h.settle(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	rows := [][]string{
		{"concepto", "horas", "tarifa", "valor"},
	}
	for _, line := range reportLines(result) {
		rows = append(rows, []string{
			line.Label,
			shared.FormatMinutes(line.Minutes),
			fmt.Sprintf("%.2f", line.Rate),
			fmt.Sprintf("%.2f", line.Amount),
		})
	}
	rows = append(rows,
		[]string{"Horas normales", shared.FormatMinutes(result.NormalMinutes), "", ""},
		[]string{"Total trabajado", shared.FormatMinutes(result.TotalMinutesWorked), "", ""},
		[]string{"Total recargos", "", "", fmt.Sprintf("%.2f", result.TotalSurcharge)},
		[]string{"Total horas extras", "", "", fmt.Sprintf("%.2f", result.TotalOvertime)},
		[]string{"Total a pagar", "", "", fmt.Sprintf("%.2f", result.TotalPayable)},
		[]string{"Horas compensatorias", fmt.Sprintf("%d", result.CompensatoryHours), "", ""},
	)
	if err := writer.WriteAll(rows); err != nil {
		slog.Error("csv export failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not build CSV", reqID)
		return
	}

	filename := fmt.Sprintf("liquidacion-%s.csv", resolved.Month.Format("2006-01"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleExportPDF settles the month and renders the breakdown as a PDF.
func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	resolved, result, ok := h.settle(w, r)
	if !ok {
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, translate("Liquidación de recargos y horas extras"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, translate(fmt.Sprintf("Mes: %s", resolved.Month.Format("2006-01"))))
	pdf.Ln(6)
	pdf.Cell(0, 8, translate(fmt.Sprintf("Salario mensual: $%.2f", resolved.Context.MonthlySalary)))
	pdf.Ln(10)

	colWidths := []float64{85, 25, 25, 40}
	header := []string{"Concepto", "Horas", "Tarifa", "Valor"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, title := range header {
		pdf.CellFormat(colWidths[i], 8, translate(title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, line := range reportLines(result) {
		pdf.CellFormat(colWidths[0], 7, translate(line.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, shared.FormatMinutes(line.Minutes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, fmt.Sprintf("%.2f", line.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, fmt.Sprintf("$%.2f", line.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	totals := []struct {
		label string
		value string
	}{
		{"Horas normales", shared.FormatMinutes(result.NormalMinutes)},
		{"Total trabajado", shared.FormatMinutes(result.TotalMinutesWorked)},
		{"Total recargos", fmt.Sprintf("$%.2f", result.TotalSurcharge)},
		{"Total horas extras", fmt.Sprintf("$%.2f", result.TotalOvertime)},
		{"Total a pagar", fmt.Sprintf("$%.2f", result.TotalPayable)},
		{"Horas compensatorias", fmt.Sprintf("%d", result.CompensatoryHours)},
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	for _, total := range totals {
		pdf.CellFormat(colWidths[0], 7, translate(total.label), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, total.value, "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if result.CapReachedAt != nil {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, translate(fmt.Sprintf(
			"El tope del 50%% del salario se alcanzó el %s a las %s. Los minutos posteriores se reconocen como tiempo compensatorio.",
			result.CapReachedAt.Date, result.CapReachedAt.Time)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		slog.Error("pdf export failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not build PDF", reqID)
		return
	}

	filename := fmt.Sprintf("liquidacion-%s.pdf", resolved.Month.Format("2006-01"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
