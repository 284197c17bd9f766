package slots

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"onepaslots/pkg/tgui"
)

var formatNow = time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)

func TestFormatSummaryEmpty(t *testing.T) {
	t.Parallel()
	msg := FormatSummary(NewAggregate(), map[string]string{"f": "Facility"}, formatNow)

	if !strings.Contains(msg, NoSlotsText) {
		t.Fatalf("missing no-slots marker:\n%s", msg)
	}
	if strings.Contains(msg, "🏢") {
		t.Fatalf("unexpected facility header:\n%s", msg)
	}
	if !strings.Contains(msg, "Checked on: 01/01/2025 09:30") {
		t.Fatalf("missing timestamp:\n%s", msg)
	}
	if !strings.HasSuffix(msg, PeakMarker+" = Peak hours") {
		t.Fatalf("missing legend:\n%s", msg)
	}
}

func TestFormatSummaryUnmappedFacility(t *testing.T) {
	t.Parallel()
	agg := NewAggregate()
	agg.Put("mystery_BADMINTONCOURTS", DateEntry{Date: "01/01/2025", Slots: []SlotRecord{{Court: "Court 1", Time: "t"}}})

	msg := FormatSummary(agg, map[string]string{}, formatNow)
	if !strings.Contains(msg, "<b>🏢 mystery_BADMINTONCOURTS</b>") {
		t.Fatalf("raw id not rendered:\n%s", msg)
	}
}

func TestFormatSummaryLayout(t *testing.T) {
	t.Parallel()
	agg := NewAggregate()
	agg.Put("kallangcc_BADMINTONCOURTS", DateEntry{Date: "02/01/2025", Slots: []SlotRecord{
		{Court: "Court 2", Time: "8:00 AM - 9:00 AM"},
		{Court: "Court 1", Time: "7:00 PM - 8:00 PM", IsPeak: true},
		{Court: "Court 2", Time: "9:00 AM - 10:00 AM"},
	}})
	agg.Put("kallangcc_BADMINTONCOURTS", DateEntry{Date: "01/01/2025", Slots: []SlotRecord{
		{Court: "Court 1", Time: "7:00 AM - 8:00 AM"},
	}})
	agg.Put("bidadari_BADMINTONCOURTS", DateEntry{Date: "31/12/2024", Slots: []SlotRecord{
		{Court: "Hall A & B", Time: "<late>"},
	}})
	names := map[string]string{"kallangcc_BADMINTONCOURTS": "Kallang CC", "bidadari_BADMINTONCOURTS": "Bidadari CC"}

	msg := FormatSummary(agg, names, formatNow)
	want := strings.Join([]string{
		"🏸 <b>OnePA Badminton Slots Available</b> 🏸",
		"📅 Checked on: 01/01/2025 09:30\n",
		"\n<b>🏢 Bidadari CC</b>",
		"\n📆 <b>31/12/2024</b>",
		"  Hall A &amp; B:",
		"       &lt;late&gt;",
		"\n<b>🏢 Kallang CC</b>",
		"\n📆 <b>01/01/2025</b>",
		"  Court 1:",
		"       7:00 AM - 8:00 AM",
		"\n📆 <b>02/01/2025</b>",
		"  Court 2:",
		"       8:00 AM - 9:00 AM",
		"       9:00 AM - 10:00 AM",
		"  Court 1:",
		"    ⭐ 7:00 PM - 8:00 PM",
		"\n✅ <b>Total: 5 slots across 2 facilities</b>",
		"\n⭐ = Peak hours",
	}, "\n")
	if msg != want {
		t.Fatalf("FormatSummary =\n%s\nwant\n%s", msg, want)
	}
}

func TestSortDatesChronological(t *testing.T) {
	t.Parallel()
	dates := []string{"01/02/2025", "31/01/2025", "garbage", "15/01/2025"}
	sortDates(dates)
	want := []string{"15/01/2025", "31/01/2025", "01/02/2025", "garbage"}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("sortDates = %v, want %v", dates, want)
		}
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()
	msg := FormatError(errors.New("write available_slots.json: <disk full>"))
	if !strings.HasPrefix(msg, "❌ <b>Error running OnePA checker</b>\n\n") {
		t.Fatalf("unexpected header: %q", msg)
	}
	if !strings.Contains(msg, "&lt;disk full&gt;") {
		t.Fatalf("error text not escaped: %q", msg)
	}
	if got := PlainText(msg); !strings.Contains(got, "<disk full>") || strings.Contains(got, "<b>") {
		t.Fatalf("PlainText = %q", got)
	}
}

func TestFormatSummarySplitsIntoBalancedChunks(t *testing.T) {
	t.Parallel()
	agg := NewAggregate()
	names := map[string]string{}
	for f := 1; f <= 6; f++ {
		id := fmt.Sprintf("fac%d_BADMINTONCOURTS", f)
		names[id] = fmt.Sprintf("Facility %d & Co", f)
		for d := 1; d <= 6; d++ {
			var recs []SlotRecord
			for s := 0; s < 5*d; s++ {
				recs = append(recs, SlotRecord{
					Court:  fmt.Sprintf("Court <%d>", s%4+1),
					Time:   fmt.Sprintf("%d:00 AM - %d:00 AM", s%12+1, s%12+2),
					IsPeak: s%3 == 0,
				})
			}
			agg.Put(id, DateEntry{Date: fmt.Sprintf("%02d/01/2025", d), Slots: recs})
		}
	}

	msg := FormatSummary(agg, names, formatNow)
	chunks := tgui.SplitHTML(msg, 4000)
	if len(chunks) < 2 {
		t.Fatalf("expected a multi-chunk message, got %d chunk(s)", len(chunks))
	}
	if strings.Join(chunks, "") != msg {
		t.Fatalf("chunks do not reassemble the summary")
	}
	for i, c := range chunks {
		if n := utf8.RuneCountInString(c); n > 4000 {
			t.Fatalf("chunk %d has %d runes", i, n)
		}
		if open, closed := strings.Count(c, "<b>"), strings.Count(c, "</b>"); open != closed {
			t.Fatalf("chunk %d has %d <b> and %d </b>:\n%s", i, open, closed, c)
		}
		if strings.Count(c, "<") != strings.Count(c, ">") {
			t.Fatalf("chunk %d has a cut tag:\n%s", i, c)
		}
		if strings.Count(c, "&") != strings.Count(c, ";") {
			t.Fatalf("chunk %d has a cut entity:\n%s", i, c)
		}
	}
}
