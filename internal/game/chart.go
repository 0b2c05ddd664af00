package game

type NoteChart struct {
	Notes    []Note    `json:"notes"`
	Barlines []float64 `json:"barlines"`
	Balloons []uint32  `json:"balloons"` // Hit targets in the order balloons occur
	Lyrics   []Lyric   `json:"lyrics,omitempty"`
}

// Length is the time from the first barline to the last playable moment.
func (c *NoteChart) Length() float64 {
	if len(c.Barlines) == 0 && len(c.Notes) == 0 {
		return 0
	}
	start, end := 0.0, 0.0
	if len(c.Barlines) > 0 {
		start, end = c.Barlines[0], c.Barlines[len(c.Barlines)-1]
	} else {
		start = c.Notes[0].Time
	}
	for i := range c.Notes {
		if e := c.Notes[i].End(); e > end {
			end = e
		}
	}
	return end - start
}

// Counts tallies the notes by kind.
func (c *NoteChart) Counts() map[NoteKind]int {
	counts := map[NoteKind]int{}
	for _, n := range c.Notes {
		counts[n.Kind]++
	}
	return counts
}
