/*
Package snesmap is a library for exporting tile maps authored in the Tiled
map editor as SNES screenblock tilemaps, written as WLA-DX include files.
*/
package snesmap

import (
	"io/ioutil"
	"log"
)

const (
	// FormatName is the name of the export format as shown to the user
	FormatName = "SNES source file (8x8)"
	// Extension is the file extension of exported files
	Extension = "inc"
)

type Exporter struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Exporter{
		logger: logger,
	}
}
