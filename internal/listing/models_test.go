package listing

import (
	"testing"
	"time"

	"github.com/ytget/radio-schedule/internal/model"
)

func TestChannelModel_Cells(t *testing.T) {
	m := NewChannelModel()
	m.Append(model.NewChannel(132, "P1"))
	m.Append(model.NewChannel(163, "P2"))

	if cols := m.Columns(); len(cols) != 1 || cols[0] != ColumnChannel {
		t.Errorf("unexpected columns: %v", cols)
	}
	if got := m.Cell(1, 0); got != "P2" {
		t.Errorf("Cell(1, 0) = %q, expected P2", got)
	}
	if got := m.Cell(1, 1); got != "" {
		t.Errorf("Cell(1, 1) = %q, expected empty", got)
	}
	if got := m.Cell(5, 0); got != "" {
		t.Errorf("Cell(5, 0) = %q, expected empty", got)
	}
}

func TestProgramModel_Cells(t *testing.T) {
	start := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)
	p := &model.Program{Name: "Morgonpasset", StartTime: start, EndTime: start.Add(3 * time.Hour)}

	m := NewProgramModel()
	m.Append(p)

	if cols := m.Columns(); len(cols) != 3 {
		t.Errorf("unexpected columns: %v", cols)
	}

	tests := []struct {
		col      int
		expected string
	}{
		{0, "Morgonpasset"},
		{1, "March 10    10 : 00"},
		{2, "March 10    13 : 00"},
		{3, ""},
	}
	for _, test := range tests {
		if got := m.Cell(0, test.col); got != test.expected {
			t.Errorf("Cell(0, %d) = %q, expected %q", test.col, got, test.expected)
		}
	}
}
