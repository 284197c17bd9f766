package slots

import (
	"fmt"
	"sort"
	"time"

	"onepaslots/pkg/tgui"
)

const (
	summaryTitle = "OnePA Badminton Slots Available"
	// PeakMarker prefixes peak-hour slots in the summary.
	PeakMarker    = "⭐"
	offPeakMarker = "  "
	// NoSlotsText is the trailer used when nothing was found.
	NoSlotsText = "No available slots found"

	checkedLayout = "02/01/2006 15:04"
	errorTextMax  = 3500
)

// FormatSummary renders agg as a Telegram HTML message.
//
// Facilities are listed by id, each under its display name from names (the
// raw id when unmapped), dates in calendar order and courts in the order
// they first appear. now is printed as the check time.
func FormatSummary(agg *Aggregate, names map[string]string, now time.Time) string {
	lines := []tgui.H{
		tgui.Raw("🏸 " + string(tgui.B(summaryTitle)) + " 🏸"),
		tgui.Raw("📅 Checked on: " + now.Format(checkedLayout) + "\n"),
	}

	facilities := agg.Facilities()
	sort.Strings(facilities)

	total, withSlots := 0, 0
	for _, f := range facilities {
		dates := agg.Dates(f)
		if len(dates) == 0 {
			continue
		}
		withSlots++
		name, ok := names[f]
		if !ok || name == "" {
			name = f
		}
		lines = append(lines, "\n"+tgui.B("🏢 "+name))

		sortDates(dates)
		for _, d := range dates {
			e, _ := agg.Entry(f, d)
			lines = append(lines, "\n📆 "+tgui.B(d))
			lines = append(lines, courtLines(e.Slots)...)
			total += len(e.Slots)
		}
	}

	if total == 0 {
		lines = append(lines, "\n❌ "+tgui.B(NoSlotsText))
	} else {
		lines = append(lines, "\n✅ "+tgui.B(fmt.Sprintf("Total: %d slots across %d facilities", total, withSlots)))
	}
	lines = append(lines, tgui.Raw("\n"+PeakMarker+" = Peak hours"))

	return tgui.JoinH("\n", lines...).String()
}

// courtLines groups slots by court, courts in first-seen order.
func courtLines(slots []SlotRecord) []tgui.H {
	var courts []string
	byCourt := map[string][]SlotRecord{}
	for _, s := range slots {
		if _, ok := byCourt[s.Court]; !ok {
			courts = append(courts, s.Court)
		}
		byCourt[s.Court] = append(byCourt[s.Court], s)
	}

	out := make([]tgui.H, 0, len(slots)+len(courts))
	for _, c := range courts {
		out = append(out, "  "+tgui.Esc(c)+":")
		for _, s := range byCourt[c] {
			marker := offPeakMarker
			if s.IsPeak {
				marker = PeakMarker
			}
			out = append(out, tgui.H("    "+marker+" ")+tgui.Esc(s.Time))
		}
	}
	return out
}

// sortDates orders DD/MM/YYYY strings by calendar date. Unparseable values
// sort after valid ones, lexicographically.
func sortDates(dates []string) {
	sort.SliceStable(dates, func(i, j int) bool {
		ti, ei := time.Parse(DateLayout, dates[i])
		tj, ej := time.Parse(DateLayout, dates[j])
		switch {
		case ei == nil && ej == nil:
			return ti.Before(tj)
		case ei == nil:
			return true
		case ej == nil:
			return false
		default:
			return dates[i] < dates[j]
		}
	})
}

// FormatError renders the notification sent when a run fails.
func FormatError(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	body := tgui.Esc(tgui.TruncRunes(msg, errorTextMax))
	return "❌ " + tgui.B("Error running OnePA checker").String() + "\n\n" + body.String()
}

// PlainText strips the HTML markup from a formatted message.
func PlainText(msg string) string {
	return tgui.Plain(tgui.H(msg))
}
