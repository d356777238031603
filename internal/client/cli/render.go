package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/client/capture"
	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(w io.Writer, headers ...any) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row(headers))
	return tw
}

func formatDuration(seconds int) string {
	return (time.Duration(seconds) * time.Second).String()
}

func mark(b bool, sym string) string {
	if b {
		return sym
	}
	return ""
}

func renderRecordings(w io.Writer, recs []models.Recording) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No recordings")
		return
	}
	tw := newTable(w, "ID", "Title", "Type", "Language", "Tribe", "Length", "Status", "★")
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 6, Align: text.AlignRight}})
	for _, r := range recs {
		tw.AppendRow(table.Row{
			r.ID, r.Title, r.ContentType, r.Language, r.Tribe,
			formatDuration(r.Duration), r.SyncStatus, mark(r.IsBookmarked, "★"),
		})
	}
	tw.Render()
}

func renderRecording(w io.Writer, r models.Recording) {
	tw := newTable(w, "Field", "Value")
	tw.AppendRows([]table.Row{
		{"ID", r.ID},
		{"Title", r.Title},
		{"Type", r.ContentType},
		{"Length", formatDuration(r.Duration)},
		{"Recorded", r.Date.Local().Format(time.DateTime)},
		{"Audio", r.AudioURL},
		{"Language", r.Language},
		{"Speaker", r.Speaker},
		{"Tribe", r.Tribe},
		{"Region", r.Region},
		{"Transcription", r.Transcription},
		{"Status", r.SyncStatus},
		{"Bookmarked", r.IsBookmarked},
	})
	if r.InThread() {
		tw.AppendRows([]table.Row{
			{"Thread", r.ThreadTitle},
			{"Part", r.PartNumber},
			{"Part description", r.PartDescription},
		})
	}

	langs := make([]string, 0, len(r.Translations))
	for l := range r.Translations {
		langs = append(langs, string(l))
	}
	slices.Sort(langs)
	for _, l := range langs {
		tw.AppendRow(table.Row{"Translation (" + l + ")", r.Translations[models.TranslationLanguage(l)]})
	}
	tw.Render()
}

func renderThreads(w io.Writer, threads []models.Thread) {
	if len(threads) == 0 {
		fmt.Fprintln(w, "No threads")
		return
	}
	tw := newTable(w, "Thread", "Part", "Title", "ID")
	for _, th := range threads {
		for i, p := range th.Parts {
			title := ""
			if i == 0 {
				title = th.Title
			}
			part := p.PartNumber
			if _, ok := p.Part(); !ok {
				part = "-"
			}
			tw.AppendRow(table.Row{title, part, p.Title, p.ID})
		}
		tw.AppendSeparator()
	}
	tw.Render()
}

func renderStats(w io.Writer, s models.Stats) {
	tw := newTable(w, "Recordings", "Languages", "Contributors", "Regions")
	tw.AppendRow(table.Row{s.Total, s.Languages, s.Contributors, s.Regions})
	tw.Render()
}

// captureStatus is the one-line prompt shown while recording.
func captureStatus(st capture.State) string {
	var b strings.Builder
	switch {
	case st.IsPaused:
		b.WriteString("paused")
	case st.IsRecording:
		b.WriteString("recording")
	case st.Finished:
		b.WriteString("finished")
	default:
		b.WriteString("idle")
	}
	fmt.Fprintf(&b, " %s %s", st.ContentType, formatDuration(st.Duration))
	return b.String()
}
