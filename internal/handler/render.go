package handler

import (
	"fmt"
	"html/template"
	"strings"

	"seatcheck/internal/models"
)

const indexPage = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Excursion Seat Checker</title></head>
<body style="font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;padding:16px;">
  <h1>Excursion Seat Checker</h1>
  <p>Checks live seat availability for the excursion on a given date.</p>
  <ul>
    <li>HTML table: <code>/run?date=15/12/2025</code></li>
    <li>JSON: <code>/api?date=15/12/2025</code></li>
  </ul>
</body>
</html>`

var resultTemplate = template.Must(template.New("result").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Seat availability - {{.Date}}</title>
<style>
body { font-family: -apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif; padding: 16px; background: #f5f5f5; }
h1 { font-size: 20px; margin-bottom: 8px; }
.summary { margin-bottom: 12px; }
table { border-collapse: collapse; width: 100%; background: #fff; }
th, td { border: 1px solid #ddd; padding: 8px; font-size: 14px; }
th { background: #fafafa; text-align: left; }
tr:nth-child(even) { background: #f9f9f9; }
.ok { color: #0a960a; font-weight: bold; }
.no { color: #c00; font-weight: bold; }
</style>
</head>
<body>
<h1>Seat availability</h1>
<div class="summary">
Date: <b>{{.Date}}</b><br>
Departures: <b>{{len .Rows}}</b>, bookable: <b>{{.AvailableCount}}</b><br>
Status: {{.Message}}
</div>
{{if .Rows}}
<table>
<tr><th>Departure</th><th>Status</th><th>Bookable</th><th>Seats left</th></tr>
{{range .Rows}}
<tr>
<td>{{.Name}}</td>
<td>{{.StatusText}}</td>
{{if .Available}}<td class="ok">yes</td>{{else}}<td class="no">no</td>{{end}}
<td>{{if .SeatsLeft}}{{.SeatsLeft}}{{else}}&mdash;{{end}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No departures to show for this date.</p>
{{end}}
<p style="margin-top:12px;font-size:12px;color:#999;">Live data scraped from the operator's booking site; indicative only.</p>
</body>
</html>`))

func renderResult(result models.QueryResult) (string, error) {
	var b strings.Builder
	if err := resultTemplate.Execute(&b, result); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderValidationError(err error) string {
	return fmt.Sprintf(
		`<p>Bad request: %s. Use <code>?date=dd/mm/yyyy</code>, e.g. <code>/run?date=15/12/2025</code>.</p>`,
		template.HTMLEscapeString(err.Error()),
	)
}
