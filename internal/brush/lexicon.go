package brush

import "sort"

var lexiconSource = map[string]string{
	"block": `
OO
OO`,
	"blinker": `
OOO`,
	"glider": `
.O.
..O
OOO`,
	"toad": `
.OOO
OOO.`,
	"beacon": `
OO..
OO..
..OO
..OO`,
	"pulsar": `
..OOO...OOO..
.............
O....O.O....O
O....O.O....O
O....O.O....O
..OOO...OOO..
.............
..OOO...OOO..
O....O.O....O
O....O.O....O
O....O.O....O
.............
..OOO...OOO..`,
	"pentadecathlon": `
..O....O..
OO.OOOO.OO
..O....O..`,
	"lwss": `
.O..O
O....
O...O
OOOO.`,
	"r-pentomino": `
.OO
OO.
.O.`,
	"eraser": `
...
...
...`,
}

var lexicon = buildLexicon()

func buildLexicon() map[string]*Brush {
	out := make(map[string]*Brush, len(lexiconSource))
	for name, text := range lexiconSource {
		b, err := ParsePlaintext(name, text)
		if err != nil {
			panic("brush: bad lexicon entry " + name + ": " + err.Error())
		}
		out[name] = b
	}
	return out
}

// Lexicon returns the built-in brushes ordered by name.
func Lexicon() []*Brush {
	out := make([]*Brush, 0, len(lexicon))
	for _, b := range lexicon {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the built-in brush with the given name.
func Lookup(name string) (*Brush, bool) {
	b, ok := lexicon[name]
	return b, ok
}
