package main

import (
	"log"
	"os"

	"git.lost.host/meutraa/drumchart/internal/config"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	command, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	p := &Program{}
	p.Init(os.Stdout)

	switch command {
	case config.CompileCommand:
		return p.Compile(*config.CompileFile, *config.CompileAudio)
	case config.ShowCommand:
		return p.Show(*config.ShowFile, *config.ShowCourse)
	case config.ScanCommand:
		return p.Scan(*config.Directory, *config.Jobs)
	case config.ServeCommand:
		return p.Serve(*config.Listen)
	case config.ExportCommand:
		return p.Export(*config.ExportFile, *config.ExportCourse, *config.ExportOut)
	}
	return nil
}
