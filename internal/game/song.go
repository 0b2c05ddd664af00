package game

type Song struct {
	Title     string  `json:"title"`
	Subtitle  string  `json:"subtitle,omitempty"`
	Wave      string  `json:"wave"`
	BPM       float64 `json:"bpm"`
	Offset    float64 `json:"offset"`
	DemoStart float64 `json:"demo_start"`

	Difficulties [LevelCount]*Difficulty `json:"difficulties"`
}

// Charts returns the populated levels in ascending order.
func (s *Song) Charts() []Level {
	levels := make([]Level, 0, LevelCount)
	for i, d := range s.Difficulties {
		if nil != d {
			levels = append(levels, Level(i))
		}
	}
	return levels
}

func (s *Song) Difficulty(l Level) *Difficulty {
	if l >= LevelCount {
		return nil
	}
	return s.Difficulties[l]
}
