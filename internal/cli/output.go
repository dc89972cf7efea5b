package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	reportservice "github.com/bsan5566/food-waste/internal/services/report"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	fmt.Printf("%+v\n", data)
	return nil
}

// Message outputs a plain confirmation line (suppressed in quiet mode).
func (f *OutputFormatter) Message(format string, args ...interface{}) error {
	if f.Quiet {
		return nil
	}
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"message": fmt.Sprintf(format, args...),
		})
	}
	fmt.Printf(format+"\n", args...)
	return nil
}

// Table outputs a report result as an aligned text table, or as JSON rows.
// In quiet mode only the data rows are printed, tab-separated, with no
// header or rule lines.
func (f *OutputFormatter) Table(res *reportservice.Result) error {
	if f.Quiet && !f.JSON {
		_, err := fmt.Print(renderQuietRows(res))
		return err
	}

	if f.JSON {
		rows := make([]map[string]string, 0, len(res.Rows))
		for _, row := range res.Rows {
			m := make(map[string]string, len(res.Columns))
			for i, col := range res.Columns {
				if i < len(row) {
					m[col] = row[i]
				}
			}
			rows = append(rows, m)
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"report":  res.Name,
			"rows":    rows,
		})
	}

	_, err := fmt.Print(renderTable(res))
	return err
}

func renderQuietRows(res *reportservice.Result) string {
	var b strings.Builder
	for _, row := range res.Rows {
		b.WriteString(strings.Join(row, "\t") + "\n")
	}
	return b.String()
}

func renderTable(res *reportservice.Result) string {
	widths := make([]int, len(res.Columns))
	for i, col := range res.Columns {
		widths[i] = len(col)
	}
	for _, row := range res.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, col := range res.Columns {
		fmt.Fprintf(&b, "%-*s  ", widths[i], col)
	}
	b.WriteString("\n")
	for i := range res.Columns {
		b.WriteString(strings.Repeat("-", widths[i]) + "  ")
	}
	b.WriteString("\n")
	for _, row := range res.Rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
			}
		}
		b.WriteString("\n")
	}
	if len(res.Rows) == 0 {
		b.WriteString("(no rows)\n")
	}
	return b.String()
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", suggestion)
	}
	return nil
}
