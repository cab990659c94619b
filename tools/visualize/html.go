package visualize

import (
	"fmt"
	"html"
	"os"
	"strings"
)

// WriteHTMLReport writes a single page with the summary table followed by
// the inline SVG figures, in the given order.
func WriteHTMLReport(filename string, stats []SummaryStat, titles []string, svgs []string) error {
	var rows strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&rows, "\t\t<tr><td>%s</td><td>%s</td></tr>\n", html.EscapeString(s.Name), s.format())
	}

	var figures strings.Builder
	for i, svg := range svgs {
		fmt.Fprintf(&figures, "\t<h2>%s</h2>\n\t<div>%s</div>\n", html.EscapeString(titles[i]), svg)
	}

	page := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<title>AMPscan Report</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
	</style>
</head>
<body>
	<h1>AMPscan Report</h1>
	<table>
		<tr><th>Metric</th><th>Value</th></tr>
%s	</table>
%s</body>
</html>`, rows.String(), figures.String())

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(page); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
