package preview

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/flytaly/cardtext/pkg/log"
	"github.com/flytaly/cardtext/pkg/spans"
)

func header(path string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 80
	}
	return fmt.Sprintf(" %s  Watch path: %s", color.Green.Sprint("➜"), color.Cyan.Sprint(tail(path, max(maxWidth-16, 20))))
}

func status(res spans.Result) string {
	s := fmt.Sprintf("%d spans", len(res.Spans))
	if res.Truncated {
		s += ", truncated"
	}
	return color.Gray.Sprint(s)
}

func printLogs(records []log.Record, limit int) string {
	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, " "+r.String())
	}
	return strings.Join(lines, "\n")
}

func tail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "..." + string(r[len(r)-(n-3):])
}
