package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"github.com/reusee/tailisp/cmds"
	"github.com/reusee/tailisp/syncs"
	"github.com/reusee/tailisp/vars"
)

var jobs = cmds.Var[int]("-jobs")

func init() {
	cmds.Define("check", cmds.Func(func(paths []string) {
		setAction(func(a *app) error {
			return a.check(paths)
		})
	}).Args("path...").Desc("tokenize and read files or directories, reporting every failure"))
}

type checkResult struct {
	path   string
	failed bool
	output bytes.Buffer
}

// check processes files concurrently and prints results in argument order.
func (a *app) check(args []string) error {
	paths, err := a.expand(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("check: no files")
	}

	sem := syncs.NewSemaphore(vars.FirstNonZero(*jobs, runtime.NumCPU()))
	results := make([]*checkResult, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		result := &checkResult{
			path: path,
		}
		results[i] = result
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem.Do(func() {
				a.checkOne(result)
			})
		}()
	}
	wg.Wait()

	failed := 0
	for _, result := range results {
		if result.failed {
			failed++
			if _, err := a.stderr.Write(result.output.Bytes()); err != nil {
				return err
			}
			continue
		}
		if _, err := a.stdout.Write(result.output.Bytes()); err != nil {
			return err
		}
	}
	a.logger.Info("check", "files", len(paths), "failed", failed)

	if failed > 0 {
		fmt.Fprintf(a.stderr, "%d of %d files failed\n", failed, len(paths))
		return errReported
	}
	return nil
}

// expand replaces directories with the files under them that have a configured extension.
func (a *app) expand(args []string) (paths []string, err error) {
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			// missing files are reported per file
			paths = append(paths, arg)
			continue
		}
		if err := filepath.WalkDir(arg, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && slices.Contains(a.extensions, filepath.Ext(path)) {
				paths = append(paths, path)
			}
			return nil
		}); err != nil {
			return nil, wrap(err)
		}
	}
	return paths, nil
}

func (a *app) checkOne(result *checkResult) {
	// each file renders into its own buffer
	diag := new(bytes.Buffer)
	sub := *a
	sub.stdout = diag
	sub.stderr = diag

	ctx := sub.fileContext(result.path)
	src, err := sub.load(ctx, result.path)
	if err != nil {
		result.failed = true
		fmt.Fprintf(&result.output, "%s: error: %v\n", result.path, err)
		return
	}
	values, err := sub.read(ctx, src)
	if err != nil {
		result.failed = true
		fmt.Fprintf(&result.output, "%s:\n", result.path)
		result.output.Write(diag.Bytes())
		return
	}
	fmt.Fprintf(&result.output, "%s: ok, %d forms\n", result.path, len(values))
}
