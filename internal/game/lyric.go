package game

// Lyric is a line of text shown from Time until the next lyric.
type Lyric struct {
	Time float64 `json:"time"`
	Text string  `json:"text"`
}
