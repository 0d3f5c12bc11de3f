package listing

import "github.com/ytget/radio-schedule/internal/model"

// Column headers
const (
	ColumnChannel = "Channel"
	ColumnProgram = "Program"
	ColumnStart   = "Start"
	ColumnEnd     = "End"
)

// ChannelModel backs the channel table. Rows expose the channel name only.
type ChannelModel struct {
	*Store[*model.Channel]
}

// NewChannelModel creates an empty channel model.
func NewChannelModel() *ChannelModel {
	return &ChannelModel{Store: NewStore[*model.Channel]()}
}

// Columns returns the column headers.
func (m *ChannelModel) Columns() []string {
	return []string{ColumnChannel}
}

// Cell returns the text at row, col or "" when out of range.
func (m *ChannelModel) Cell(row, col int) string {
	ch, ok := m.At(row)
	if !ok || ch == nil {
		return ""
	}
	if col == 0 {
		return ch.Name
	}
	return ""
}

// ProgramModel backs the program table: name, start and end.
type ProgramModel struct {
	*Store[*model.Program]
}

// NewProgramModel creates an empty program model.
func NewProgramModel() *ProgramModel {
	return &ProgramModel{Store: NewStore[*model.Program]()}
}

// Columns returns the column headers.
func (m *ProgramModel) Columns() []string {
	return []string{ColumnProgram, ColumnStart, ColumnEnd}
}

// Cell returns the text at row, col or "" when out of range.
func (m *ProgramModel) Cell(row, col int) string {
	p, ok := m.At(row)
	if !ok || p == nil {
		return ""
	}
	switch col {
	case 0:
		return p.Name
	case 1:
		return p.FormattedStart()
	case 2:
		return p.FormattedEnd()
	default:
		return ""
	}
}
