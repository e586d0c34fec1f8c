/*
Package textfunc expands the date and time functions allowed in card text:

	{{DATE(2017-02-14T06:08:39Z, SHORT)}}  Tue, Feb 14, 2017
	{{TIME(2017-02-14T06:08:39Z)}}         6:08 AM

DATE takes an optional COMPACT (default), SHORT or LONG style. Functions
that do not parse are left in the text unchanged.
*/
package textfunc

import (
	"regexp"
	"strings"
	"time"
)

const (
	compactLayout = "1/2/2006"
	shortLayout   = "Mon, Jan 2, 2006"
	longLayout    = "Monday, January 2, 2006"
	timeLayout    = "3:04 PM"
)

var (
	funcRe = regexp.MustCompile(`\{\{(DATE|TIME)\(([^(){}]*)\)\}\}`)

	dateStyles = map[string]string{
		"COMPACT": compactLayout,
		"SHORT":   shortLayout,
		"LONG":    longLayout,
	}
)

// Expand replaces every well-formed function in text with its value in
// loc. A nil loc means UTC.
func Expand(text string, loc *time.Location) string {
	if !strings.Contains(text, "{{") {
		return text
	}
	if loc == nil {
		loc = time.UTC
	}
	return funcRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := funcRe.FindStringSubmatch(m)
		v, ok := expand(sub[1], sub[2], loc)
		if !ok {
			return m
		}
		return v
	})
}

func expand(name, args string, loc *time.Location) (string, bool) {
	parts := strings.Split(args, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	t, err := time.Parse(time.RFC3339, parts[0])
	if err != nil {
		return "", false
	}
	t = t.In(loc)

	switch name {
	case "TIME":
		if len(parts) != 1 {
			return "", false
		}
		return t.Format(timeLayout), true
	case "DATE":
		layout := compactLayout
		switch len(parts) {
		case 1:
		case 2:
			l, ok := dateStyles[strings.ToUpper(parts[1])]
			if !ok {
				return "", false
			}
			layout = l
		default:
			return "", false
		}
		return t.Format(layout), true
	}
	return "", false
}
