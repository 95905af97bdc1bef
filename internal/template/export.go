package template

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
)

// Export formats supported by Export.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatHTML = "html"
)

// exportDocument is the JSON export shape.
type exportDocument struct {
	Template      string            `json:"template"`
	Currency      string            `json:"currency"`
	ReportingDate string            `json:"reporting_date"`
	Rows          []model.ReportRow `json:"rows"`
	Summary       model.Summary     `json:"summary"`
}

// Export renders the mapped template in the requested format. Unknown
// formats are an error.
func Export(rec model.CapitalRecord, rows []model.ReportRow, format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return exportJSON(rec, rows)
	case FormatCSV:
		return exportCSV(rec, rows)
	case FormatHTML:
		return exportHTML(rec, rows), nil
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
}

func exportJSON(rec model.CapitalRecord, rows []model.ReportRow) (string, error) {
	doc := exportDocument{
		Template:      model.TemplateID,
		Currency:      rec.Currency,
		ReportingDate: rec.ReportingDate.Format("2006-01-02"),
		Rows:          rows,
		Summary:       rec.Summarize(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling export: %w", err)
	}
	return string(data), nil
}

func exportCSV(rec model.CapitalRecord, rows []model.ReportRow) (string, error) {
	var b strings.Builder
	cw := csv.NewWriter(&b)

	if err := cw.Write([]string{"row", "description", "amount", "currency"}); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		amount := ""
		if row.Amount != nil {
			amount = row.Amount.StringFixed(2)
		}
		if err := cw.Write([]string{row.RowNumber, row.Description, amount, row.Currency}); err != nil {
			return "", fmt.Errorf("writing row %s: %w", row.RowNumber, err)
		}
	}

	s := rec.Summarize()
	summaryRows := [][]string{
		{"", "Total CET1", s.TotalCET1.StringFixed(2), rec.Currency},
		{"", "Total Tier 1", s.TotalTier1.StringFixed(2), rec.Currency},
		{"", "Total Tier 2", s.TotalTier2.StringFixed(2), rec.Currency},
		{"", "Total own funds", s.TotalOwnFunds.StringFixed(2), rec.Currency},
	}
	for _, row := range summaryRows {
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("writing summary: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func exportHTML(rec model.CapitalRecord, rows []model.ReportRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<html>\n<head><title>COREP Template %s</title></head>\n<body>\n", model.TemplateID)
	fmt.Fprintf(&b, "<h1>COREP Template %s</h1>\n", model.TemplateID)
	fmt.Fprintf(&b, "<p>Currency: %s | Date: %s</p>\n",
		html.EscapeString(rec.Currency), rec.ReportingDate.Format("2006-01-02"))

	b.WriteString("<table border=\"1\">\n<tr><th>Row</th><th>Description</th><th>Amount</th></tr>\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(row.RowNumber),
			html.EscapeString(row.Description),
			html.EscapeString(row.FormattedAmount))
	}
	b.WriteString("</table>\n")

	s := rec.Summarize()
	b.WriteString("<h2>Summary</h2>\n<ul>\n")
	for _, item := range []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Total CET1", s.TotalCET1},
		{"Total AT1", s.TotalAT1},
		{"Total Tier 1", s.TotalTier1},
		{"Total Tier 2", s.TotalTier2},
		{"Total own funds", s.TotalOwnFunds},
	} {
		amount := item.amount
		fmt.Fprintf(&b, "<li>%s: %s</li>\n", item.label,
			html.EscapeString(FormatAmount(&amount, rec.Currency)))
	}
	b.WriteString("</ul>\n</body>\n</html>\n")
	return b.String()
}
