package config

import (
	"runtime"

	"gopkg.in/alecthomas/kingpin.v2"
)

// Command names returned by Parse
const (
	CompileCommand = "compile"
	ShowCommand    = "show"
	ScanCommand    = "scan"
	ServeCommand   = "serve"
	ExportCommand  = "export"
)

var (
	app = kingpin.New("drumchart", "Compile drum charts into timed notes").Version("0.3.0")

	Database = app.Flag("db", "Song library database").Default("./songs.db").String()
	Color    = app.Flag("color", "Color terminal output").Default("true").Bool()

	compile      = app.Command(CompileCommand, "Compile a chart and print a summary")
	CompileFile  = compile.Arg("file", "Chart file").Required().ExistingFile()
	CompileAudio = compile.Flag("audio", "Check the chart against its audio file").Short('a').Bool()

	show       = app.Command(ShowCommand, "Print the notes of one course")
	ShowFile   = show.Arg("file", "Chart file").Required().ExistingFile()
	ShowCourse = show.Flag("course", "Course to print, asks when not given").Short('c').String()

	scan      = app.Command(ScanCommand, "Compile every chart under a directory into the library")
	Directory = scan.Arg("directory", "Song directory").Required().ExistingDir()
	Jobs      = scan.Flag("jobs", "Charts compiled at once").Short('j').Default("0").Int()

	serve  = app.Command(ServeCommand, "Serve the compiler and library over HTTP")
	Listen = serve.Flag("listen", "Address to listen on").Short('l').Default(":8080").String()

	export       = app.Command(ExportCommand, "Write one course as a MIDI file")
	ExportFile   = export.Arg("file", "Chart file").Required().ExistingFile()
	ExportCourse = export.Flag("course", "Course to export").Short('c').Default("Oni").String()
	ExportOut    = export.Flag("out", "MIDI file to write").Short('o').Required().String()
)

// Parse fills the flag values from args and returns the selected command.
func Parse(args []string) (string, error) {
	command, err := app.Parse(args)
	if nil != err {
		return "", err
	}
	if *Jobs <= 0 {
		*Jobs = runtime.NumCPU()
	}
	return command, nil
}
