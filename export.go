package snesmap

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"
)

// Export encodes m and writes it alongside fileName as
// "<dir>/<sanitized base name>.inc". fileName is the path chosen for the
// export, its extension is replaced. Validation failures leave no file behind.
func (e *Exporter) Export(m Map, fileName string) error {
	start := time.Now()

	base := BaseName(fileName)

	b := new(bytes.Buffer)
	if err := e.encode(b, base, m); err != nil {
		return err
	}

	file := OutputFile(fileName)
	if err := ioutil.WriteFile(file, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}

	e.logger.Printf("Tilemap exported to %s\n", file)
	e.logger.Printf("Export completed in %v\n", time.Since(start))

	return nil
}

// OutputFile returns the include file Export writes for fileName.
func OutputFile(fileName string) string {
	return filepath.Join(filepath.Dir(fileName), BaseName(fileName)+"."+Extension)
}

func exportTarget(file, dir string) string {
	if dir == "" {
		dir = filepath.Dir(file)
	}
	return filepath.Join(dir, filepath.Base(file))
}

// ExportFile loads the TMX file and exports it into dir, creating dir if
// needed. If dir is empty the file is exported next to the TMX file.
func (e *Exporter) ExportFile(file, dir string) error {
	m, err := LoadTMXFile(file)
	if err != nil {
		return err
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return e.Export(m, exportTarget(file, dir))
}

// CheckFile loads the TMX file and validates it without exporting anything.
func CheckFile(file string) (Map, error) {
	m, err := LoadTMXFile(file)
	if err != nil {
		return nil, err
	}
	if err := Validate(m); err != nil {
		return nil, err
	}
	return m, nil
}
