package testdata

// Minimal is the smallest chart that compiles: one don in one measure.
const Minimal = "TITLE:T\nBPM:120\nWAVE:a.ogg\n#START\n1000,\n#END\n"

// Full exercises every command and note type over two courses.
const Full = "\uFEFFTITLE:Drum Test // a comment\r\n" +
	"SUBTITLE:--Test Artist\r\n" +
	"BPM:150\r\n" +
	"WAVE:drum test.ogg\r\n" +
	"OFFSET:-1.5\r\n" +
	"DEMOSTART:20.25\r\n" +
	"\r\n" +
	"COURSE:Hard\r\n" +
	"LEVEL:6\r\n" +
	"BALLOON:12\r\n" +
	"#START\r\n" +
	"#LYRIC first line\r\n" +
	"1020,\r\n" +
	"#GOGOSTART\r\n" +
	"3040\r\n" +
	"AB00,\r\n" +
	"#GOGOEND\r\n" +
	"500000008000,\r\n" +
	"#BARLINEOFF\r\n" +
	"7008,\r\n" +
	"#BARLINEON\r\n" +
	"#MEASURE 3/4\r\n" +
	"#SCROLL 2\r\n" +
	"600800,\r\n" +
	"#BPMCHANGE 300\r\n" +
	"#DELAY 0.5\r\n" +
	"1,\r\n" +
	",\r\n" +
	"#END\r\n" +
	"\r\n" +
	"COURSE:Edit\r\n" +
	"LEVEL:10\r\n" +
	"BALLOON:\r\n" +
	"#START P1\r\n" +
	"9000900080001000,\r\n" +
	"#END\r\n"
