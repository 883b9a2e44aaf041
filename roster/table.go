package roster

import "fmt"

// Table is an ordered set of players. Row indices are stable for the
// lifetime of the table and are what groups refer back to.
type Table struct {
	rows []Player
}

// NewTable wraps a copy of rows.
func NewTable(rows []Player) *Table {
	cp := make([]Player, len(rows))
	copy(cp, rows)

	return &Table{rows: cp}
}

// Len returns the number of players.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.rows)
}

// Row returns player i.
func (t *Table) Row(i int) (Player, error) {
	if t == nil {
		return Player{}, ErrNilTable
	}
	if i < 0 || i >= len(t.rows) {
		return Player{}, fmt.Errorf("%w: %d (len %d)", ErrRowOutOfRange, i, len(t.rows))
	}

	return t.rows[i], nil
}

// Rows returns a copy of every row in table order.
func (t *Table) Rows() []Player {
	if t == nil {
		return nil
	}
	out := make([]Player, len(t.rows))
	copy(out, t.rows)

	return out
}

// Column returns column c as a fresh slice in table order.
func (t *Table) Column(c Column) ([]float64, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColumn, int(c))
	}
	out := make([]float64, len(t.rows))
	for i, p := range t.rows {
		out[i], _ = p.Value(c)
	}

	return out, nil
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}

	return NewTable(t.rows)
}

// SetGroup labels row i.
func (t *Table) SetGroup(i int, g Group) error {
	if _, err := t.Row(i); err != nil {
		return err
	}
	t.rows[i].Group = g

	return nil
}

// SetSize sets the dot size (area units) of row i.
func (t *Table) SetSize(i int, size float64) error {
	if _, err := t.Row(i); err != nil {
		return err
	}
	t.rows[i].Size = size

	return nil
}

// GroupIndices returns the row indices carrying label g, in table order.
func (t *Table) GroupIndices(g Group) []int {
	if t == nil {
		return nil
	}
	var idx []int
	for i, p := range t.rows {
		if p.Group == g {
			idx = append(idx, i)
		}
	}

	return idx
}
