// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/Tasmia-create/campus-event-prototype/flash"
)

//go:embed templates/*.html
var files embed.FS

// Page names, one per template file
const (
	Home               = "home"
	AddEvent           = "add_event"
	EventDetail        = "event_detail"
	Register           = "register"
	Attendance         = "attendance"
	Feedback           = "feedback"
	ViewAttendance     = "view_attendance"
	ViewFeedback       = "view_feedback"
	ReportRegistration = "report_registrations"
	ReportAttendance   = "report_attendance"
	ReportFeedback     = "report_feedback"
	ReportTopStudents  = "report_top_students"
)

var pageNames = []string{
	Home, AddEvent, EventDetail, Register, Attendance, Feedback,
	ViewAttendance, ViewFeedback,
	ReportRegistration, ReportAttendance, ReportFeedback, ReportTopStudents,
}

// Page is the data every template receives
type Page struct {
	Title string
	Flash *flash.Message
	Data  interface{}
}

var funcs = template.FuncMap{
	"ordinal": humanize.Ordinal,
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"decimal": func(f float64) string {
		return humanize.FtoaWithDigits(f, 1)
	},
	"inc": func(i int) int {
		return i + 1
	},
}

var pages = mustParse()

func mustParse() map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(files,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			panic(fmt.Sprintf("views: parse %s: %v", name, err))
		}
		parsed[name] = t
	}
	return parsed
}

// Render executes the named page inside the layout and writes it with status.
// The page is rendered to a buffer first so a template error still yields a clean 500.
func Render(w http.ResponseWriter, status int, name string, page Page) error {
	t, ok := pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", page); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
