package report

import (
	"fmt"
	"html/template"
	"strings"
)

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<title>DMS Readiness Report</title>
<style>
body {
  font-family: 'Arial', sans-serif;
  background-color: #f4f4f4;
  color: #333;
  line-height: 1.6;
  margin: 0;
  padding: 20px;
}
h2 {
  color: #4285f4;
  margin-bottom: 1em;
}
table {
  border-collapse: collapse;
  width: 100%;
  margin-bottom: 2em;
  background-color: #fff;
  box-shadow: 0 2px 5px rgba(0, 0, 0, 0.1);
}
th, td {
  border: 1px solid #ddd;
  padding: 8px;
  text-align: left;
}
th {
  background-color: #f0f0f0;
  font-weight: bold;
}
tr:nth-child(even) {
  background-color: #f9f9f9;
}
tr:hover {
  background-color: #e0e0e0;
}
.warning {
  color: orange;
}
.error {
  color: #c0392b;
  font-weight: bold;
}
</style>
</head>
<body>
<h1>DMS Readiness Check Report</h1>
<p>Generated on: {{.GeneratedAt}}</p>
<p>Target: {{.Host}}{{if .ServerVersion}} (Oracle {{.ServerVersion}}){{end}}</p>
{{range .Results}}<h2>{{.Name}}</h2>
<p>{{.Description}}</p>
{{if .Warning}}<p class="warning"><strong>Warning:</strong> {{.Warning}}</p>
{{end}}<table>
<tr><th>Findings</th></tr>
{{range .Rows}}<tr><td>{{.}}</td></tr>
{{end}}</table>
{{end}}{{range .Failures}}<p class="error">Check {{.Name}} failed: {{.Err}}</p>
{{end}}</body>
</html>
`

type htmlReport struct {
	GeneratedAt   string
	Host          string
	ServerVersion string
	Results       []htmlResult
	Failures      []htmlFailure
}

type htmlResult struct {
	Name        string
	Description string
	Warning     string
	Rows        []string
}

type htmlFailure struct {
	Name string
	Err  string
}

// RenderHTML produces a single self-contained HTML document for the
// Report. Rendering the same Report twice yields byte-identical output.
func RenderHTML(rep *Report) (string, error) {
	tpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("parse the report template: %w", err)
	}
	view := htmlReport{
		GeneratedAt:   rep.GeneratedAt.Format("2006-01-02 15:04:05"),
		Host:          rep.Host,
		ServerVersion: rep.ServerVersion,
	}
	for _, result := range rep.Results() {
		rows := make([]string, len(result.Rows))
		for i, row := range result.Rows {
			rows[i] = formatRow(row)
		}
		view.Results = append(view.Results, htmlResult{
			Name:        result.Name,
			Description: result.Description,
			Warning:     result.Warning,
			Rows:        rows,
		})
	}
	for _, failure := range rep.Failures() {
		view.Failures = append(view.Failures, htmlFailure{Name: failure.Name, Err: failure.Err.Error()})
	}
	var b strings.Builder
	if err := tpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render the report template: %w", err)
	}
	return b.String(), nil
}
