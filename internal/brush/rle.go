package brush

import (
	"strconv"
	"strings"

	errgo "gopkg.in/errgo.v1"
)

// MaxPatternSize bounds the width, height and run counts ParseRLE accepts.
const MaxPatternSize = 4096

// ParseRLE reads a run-length encoded pattern. It returns the brush and the
// rule named in the header line, which is empty when the header has none.
//
// The header "x = W, y = H" sets a minimum size; rows and columns beyond it
// grow the brush.
func ParseRLE(text string) (*Brush, string, error) {
	var (
		name   string
		rule   string
		width  int
		height int
		header bool
		body   strings.Builder
	)
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "#N"):
			name = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "#"):
		case !header && strings.HasPrefix(line, "x"):
			var err error
			width, height, rule, err = parseRLEHeader(line)
			if err != nil {
				return nil, "", errgo.Mask(err, errgo.Is(ErrSyntax))
			}
			header = true
		default:
			body.WriteString(line)
		}
	}

	var rows [][]bool
	row := []bool{}
	run := 0
	done := false
	for i, r := range body.String() {
		if done {
			break
		}
		switch {
		case r >= '0' && r <= '9':
			run = run*10 + int(r-'0')
			if run > MaxPatternSize {
				return nil, "", errgo.WithCausef(nil, ErrSyntax, "rle offset %d: run count exceeds %d", i, MaxPatternSize)
			}
			continue
		case r == 'b' || r == '.':
			row = appendRun(row, false, run)
		case r == 'o' || r == 'O' || r == '*':
			row = appendRun(row, true, run)
		case r == '$':
			n := max(run, 1)
			if len(rows)+n >= MaxPatternSize {
				return nil, "", errgo.WithCausef(nil, ErrSyntax, "rle offset %d: more than %d rows", i, MaxPatternSize)
			}
			rows = append(rows, row)
			for j := 1; j < n; j++ {
				rows = append(rows, []bool{})
			}
			row = []bool{}
		case r == '!':
			done = true
		case r == ' ' || r == '\t':
		default:
			return nil, "", errgo.WithCausef(nil, ErrSyntax, "rle offset %d: unexpected %q", i, r)
		}
		if len(row) > MaxPatternSize {
			return nil, "", errgo.WithCausef(nil, ErrSyntax, "rle offset %d: row wider than %d", i, MaxPatternSize)
		}
		run = 0
	}
	rows = append(rows, row)
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	for _, row := range rows {
		width = max(width, len(row))
	}
	height = max(height, len(rows))
	if width == 0 || height == 0 {
		return nil, "", errgo.WithCausef(nil, ErrEmptyPattern, "brush %q: empty pattern", name)
	}
	full := make([][]bool, height)
	for y := range full {
		full[y] = make([]bool, width)
		if y < len(rows) {
			copy(full[y], rows[y])
		}
	}
	b, err := FromRows(name, full)
	if err != nil {
		return nil, "", errgo.Mask(err, errgo.Any)
	}
	return b, rule, nil
}

func appendRun(row []bool, v bool, run int) []bool {
	for n := max(run, 1); n > 0; n-- {
		row = append(row, v)
	}
	return row
}

func parseRLEHeader(line string) (w, h int, rule string, err error) {
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return 0, 0, "", errgo.WithCausef(nil, ErrSyntax, "rle header: malformed field %q", strings.TrimSpace(field))
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "x", "y":
			n, convErr := strconv.Atoi(value)
			if convErr != nil || n < 0 {
				return 0, 0, "", errgo.WithCausef(nil, ErrSyntax, "rle header: bad %s value %q", key, value)
			}
			if n > MaxPatternSize {
				return 0, 0, "", errgo.WithCausef(nil, ErrSyntax, "rle header: %s = %d exceeds %d", key, n, MaxPatternSize)
			}
			if key == "x" {
				w = n
			} else {
				h = n
			}
		case "rule":
			rule = value
		}
	}
	return w, h, rule, nil
}

// FormatRLE renders b as run-length encoded text, including an optional rule.
func FormatRLE(b *Brush, rule string) string {
	var sb strings.Builder
	if b.Name != "" {
		sb.WriteString("#N ")
		sb.WriteString(b.Name)
		sb.WriteByte('\n')
	}
	sb.WriteString("x = ")
	sb.WriteString(strconv.Itoa(b.Width()))
	sb.WriteString(", y = ")
	sb.WriteString(strconv.Itoa(b.Height()))
	if rule != "" {
		sb.WriteString(", rule = ")
		sb.WriteString(rule)
	}
	sb.WriteByte('\n')

	writeRun := func(n int, tag byte) {
		if n == 0 {
			return
		}
		if n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte(tag)
	}
	blankRows := 0
	started := false
	for y := 0; y < b.Height(); y++ {
		// Trailing dead cells in a row are implied.
		last := -1
		for x := 0; x < b.Width(); x++ {
			if b.Pattern[x][y] {
				last = x
			}
		}
		if last < 0 {
			blankRows++
			continue
		}
		if started {
			writeRun(blankRows+1, '$')
		} else {
			writeRun(blankRows, '$')
		}
		started = true
		blankRows = 0
		var cur bool
		n := 0
		for x := 0; x <= last; x++ {
			v := b.Pattern[x][y]
			if n > 0 && v != cur {
				writeRun(n, tagFor(cur))
				n = 0
			}
			cur = v
			n++
		}
		writeRun(n, tagFor(cur))
	}
	sb.WriteString("!\n")
	return sb.String()
}

func tagFor(alive bool) byte {
	if alive {
		return 'o'
	}
	return 'b'
}
