package snesmap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

const tmxExt = ".tmx"

func (e *Exporter) findMaps(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, editors leave backups and swap files there
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(file), tmxExt) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

// outputs records which TMX file each include file is being written for
type outputs struct {
	mu    sync.Mutex
	files map[string]string
}

func (o *outputs) claim(out, file string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if prev, ok := o.files[out]; ok {
		return fmt.Errorf("%s and %s both export to %s", prev, file, out)
	}
	o.files[out] = file
	return nil
}

func (e *Exporter) exportWorker(ctx context.Context, in <-chan string, base, dir string, claimed *outputs) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			// Mirror the source tree when exporting elsewhere
			out := ""
			if dir != "" {
				rel, err := filepath.Rel(base, filepath.Dir(file))
				if err != nil {
					errc <- err
					return
				}
				out = filepath.Join(dir, rel)
			}

			if err := claimed.claim(OutputFile(exportTarget(file, out)), file); err != nil {
				errc <- err
				return
			}

			if err := e.ExportFile(file, out); err != nil {
				errc <- err
				return
			}

			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}()
	return errc, nil
}

// firstError drains every stage and returns the first error reported,
// calling cancel as soon as it arrives so blocked stages can finish. Each
// stage sends at most one error before closing its channel.
func firstError(cancel context.CancelFunc, stages ...<-chan error) error {
	var (
		once  sync.Once
		first error
		wg    sync.WaitGroup
	)

	wg.Add(len(stages))
	for _, c := range stages {
		go func(c <-chan error) {
			defer wg.Done()
			for err := range c {
				if err != nil {
					once.Do(func() {
						first = err
						cancel()
					})
				}
			}
		}(c)
	}
	wg.Wait()

	return first
}

// ExportDir exports every TMX file found under path. Each export is
// independent so they run concurrently. If dir is empty each file is
// exported next to its TMX file, otherwise the directory structure under
// path is recreated under dir.
func (e *Exporter) ExportDir(path, dir string) error {
	base, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if dir != "" {
		if dir, err = filepath.Abs(dir); err != nil {
			return err
		}
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := e.findMaps(ctx, base)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	claimed := &outputs{files: make(map[string]string)}

	for i := 0; i < runtime.NumCPU(); i++ {
		errc, err := e.exportWorker(ctx, files, base, dir, claimed)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return firstError(cancelFunc, errcList...)
}
