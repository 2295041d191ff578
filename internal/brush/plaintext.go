package brush

import (
	"strings"

	errgo "gopkg.in/errgo.v1"
)

// ParsePlaintext reads a pattern in the ".cells" format: lines starting with
// '!' are comments ("!Name: x" sets the name), '.' is a dead cell and 'O' or
// '*' a live one. Short rows are padded with dead cells. The name argument is
// used when the text carries no name.
func ParsePlaintext(name, text string) (*Brush, error) {
	var rows [][]bool
	width := 0
	for i, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(line, "!") {
			if n, ok := strings.CutPrefix(line, "!Name:"); ok {
				name = strings.TrimSpace(n)
			}
			continue
		}
		line = strings.TrimRight(line, " \t")
		row := make([]bool, 0, len(line))
		for j, r := range line {
			switch r {
			case '.':
				row = append(row, false)
			case 'O', 'o', '*':
				row = append(row, true)
			default:
				return nil, errgo.WithCausef(nil, ErrSyntax, "line %d col %d: unexpected %q", i+1, j+1, r)
			}
		}
		rows = append(rows, row)
		if len(row) > width {
			width = len(row)
		}
	}
	// Leading and trailing blank lines carry no cells.
	for len(rows) > 0 && len(rows[0]) == 0 {
		rows = rows[1:]
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || width == 0 {
		return nil, errgo.WithCausef(nil, ErrEmptyPattern, "brush %q: empty pattern", name)
	}
	for y, row := range rows {
		if len(row) < width {
			rows[y] = append(row, make([]bool, width-len(row))...)
		}
	}
	b, err := FromRows(name, rows)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	return b, nil
}

// Format renders b in plaintext format, including a name comment.
func Format(b *Brush) string {
	var sb strings.Builder
	if b.Name != "" {
		sb.WriteString("!Name: ")
		sb.WriteString(b.Name)
		sb.WriteByte('\n')
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Pattern[x][y] {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
