package life

// Repeat-count divisors for the default history length of 15. Each is the
// largest count CountRepeatingPattern can return for that period, so the
// channels land in [0, 1].
const (
	period2Max = 6
	period3Max = 4
	period5Max = 2
	period6Max = 2
)

// CountRepeatingPattern treats the first period entries of history as a
// candidate pattern and counts how many complete copies of it follow
// immediately, stopping at the first mismatch. An all-false candidate never
// counts as repeating.
func CountRepeatingPattern(history []bool, period int) int {
	if period <= 0 || period > len(history) {
		return 0
	}
	pattern := history[:period]
	alive := false
	for _, v := range pattern {
		if v {
			alive = true
			break
		}
	}
	if !alive {
		return 0
	}
	count := 0
	for i := period; i < len(history); i++ {
		if history[i] != pattern[i%period] {
			break
		}
		if (i+1)%period == 0 {
			count++
		}
	}
	return count
}

// Classify derives a highlight from a cell history (newest first). Red
// tracks period 2, blue period 3 and green period 5. When neither the
// period-2 nor the period-3 signal is strong, red and blue instead both track
// period 6, which would otherwise show up only as a blend. It reports false
// when every channel is zero.
func Classify(history []bool) (Tint, bool) {
	r2 := CountRepeatingPattern(history, 2)
	r3 := CountRepeatingPattern(history, 3)
	t := Tint{
		R: channel(r2, period2Max),
		G: channel(CountRepeatingPattern(history, 5), period5Max),
		B: channel(r3, period3Max),
	}
	if r2 < 3 && r3 < 2 {
		v := channel(CountRepeatingPattern(history, 6), period6Max)
		t.R, t.B = v, v
	}
	if t.R == 0 && t.G == 0 && t.B == 0 {
		return Tint{}, false
	}
	return t, true
}

func channel(repeats, limit int) float64 {
	return min(float64(repeats)/float64(limit), 1)
}
