package models

import (
	"testing"
	"time"
)

func TestSeverityRankOrdersLevels(t *testing.T) {
	prev := 0
	for _, level := range Severities {
		rank := SeverityRank(level)
		if rank <= prev {
			t.Fatalf("severity %q rank %d not above previous %d", level, rank, prev)
		}
		prev = rank
	}
	if SeverityRank("urgent") != 0 {
		t.Fatalf("unknown severity should rank 0")
	}
	if ValidSeverity("urgent") {
		t.Fatalf("unknown severity should not validate")
	}
}

func TestValidStatus(t *testing.T) {
	if !ValidStatus(StatusClosedWithoutEscalation) || !ValidStatus(StatusClosedWithEscalation) {
		t.Fatalf("known labels should validate")
	}
	if ValidStatus("open") {
		t.Fatalf("unknown label should not validate")
	}
}

func TestParseEventTimeAcceptsCommonLayouts(t *testing.T) {
	cases := []string{
		"2026-08-30T10:11:12Z",
		"2026-08-30T10:11:12+02:00",
		"2026-08-30T10:11:12.123456",
		"2026-08-30T10:11:12",
		"2026-08-30 10:11:12",
	}
	for _, in := range cases {
		got, err := ParseEventTime(in)
		if err != nil {
			t.Fatalf("ParseEventTime(%q): %v", in, err)
		}
		if got.Year() != 2026 || got.Month() != time.August || got.Day() != 30 {
			t.Fatalf("ParseEventTime(%q) = %v", in, got)
		}
	}

	if _, err := ParseEventTime("yesterday"); err == nil {
		t.Fatalf("expected error for junk timestamp")
	}
}

func TestRecordMatchesHeaderOrder(t *testing.T) {
	n := Notable{
		Time:        time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Src:         "10.0.1.5",
		Dest:        "192.168.2.3",
		Signature:   "EICAR-TEST-FILE",
		Category:    "malware",
		FileName:    "calc.exe",
		Severity:    SeverityLow,
		User:        `CORP\user001`,
		StatusLabel: StatusClosedWithoutEscalation,
	}

	rec := n.Record()
	header := CSVHeader()
	if len(rec) != len(header) {
		t.Fatalf("record has %d fields, header has %d", len(rec), len(header))
	}
	if rec[0] != "2026-08-30T10:00:00Z" {
		t.Fatalf("unexpected time field: %s", rec[0])
	}
	if rec[1] != "10.0.1.5" || rec[8] != StatusClosedWithoutEscalation {
		t.Fatalf("unexpected record layout: %v", rec)
	}
}
