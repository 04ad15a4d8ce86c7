// SPDX-License-Identifier: BSD-2-Clause
package main

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// The tree walker below is a parallel directory walker, after Michael T.
// Jones's `walk` package. scc's own transducer is strictly single-file,
// in-order: this walker is only ever used to *enumerate* the files named
// by a directory argument, concurrently, before they are sorted and
// handed to the sequential scan driver one at a time. No scanning
// happens inside the walk itself.

// sourceExtensions lists the file suffixes treated as C/C++ source when
// a directory argument is expanded.
var sourceExtensions = map[string]bool{
	".c": true, ".h": true, ".cc": true, ".cpp": true, ".cxx": true,
	".hpp": true, ".hxx": true, ".h++": true, ".inl": true,
	".C": true, ".H": true, ".ii": true, ".tcc": true,
}

type visitData struct {
	path string
	info os.FileInfo
}

// walkFunc is called once per regular file or directory found under a
// walked root. Returning filepath.SkipDir for a directory prunes it.
type walkFunc func(path string, info os.FileInfo, err error) error

type walkState struct {
	walkFn walkFunc
	v      chan visitData
	active sync.WaitGroup
	lock   sync.RWMutex
	err    error
}

func (ws *walkState) terminated() bool {
	ws.lock.RLock()
	done := ws.err != nil
	ws.lock.RUnlock()
	return done
}

func (ws *walkState) setTerminated(err error) {
	ws.lock.Lock()
	if ws.err == nil {
		ws.err = err
	}
	ws.lock.Unlock()
}

func (ws *walkState) visitChannel() {
	for file := range ws.v {
		ws.visitFile(file)
		ws.active.Add(-1)
	}
}

func readDirNames(dirname string) ([]string, error) {
	f, err := os.Open(dirname)
	if err != nil {
		return nil, err
	}
	names, err := f.Readdirnames(-1)
	f.Close()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (ws *walkState) visitFile(file visitData) {
	if ws.terminated() {
		return
	}

	err := ws.walkFn(file.path, file.info, nil)
	if err != nil {
		if !(file.info.IsDir() && err == filepath.SkipDir) {
			ws.setTerminated(err)
		}
		return
	}

	if !file.info.IsDir() {
		return
	}

	names, err := readDirNames(file.path)
	if err != nil {
		if err = ws.walkFn(file.path, file.info, err); err != nil {
			ws.setTerminated(err)
		}
		return
	}

	here := file.path
	for _, name := range names {
		file.path = filepath.Join(here, name)
		file.info, err = os.Lstat(file.path)
		if err != nil {
			if err = ws.walkFn(file.path, file.info, err); err != nil && (!file.info.IsDir() || err != filepath.SkipDir) {
				ws.setTerminated(err)
				return
			}
			continue
		}
		if file.info.IsDir() {
			ws.active.Add(1)
			select {
			case ws.v <- file:
			default:
				ws.active.Add(-1)
				ws.visitFile(file)
			}
			continue
		}
		if err := ws.walkFn(file.path, file.info, nil); err != nil {
			ws.setTerminated(err)
			return
		}
	}
}

func walk(root string, walkFn walkFunc) error {
	info, err := os.Lstat(root)
	if err != nil {
		return walkFn(root, nil, err)
	}

	ws := &walkState{
		walkFn: walkFn,
		v:      make(chan visitData, 1024),
	}
	defer close(ws.v)

	ws.active.Add(1)
	ws.v <- visitData{root, info}

	const walkers = 16
	for i := 0; i < walkers; i++ {
		go ws.visitChannel()
	}
	ws.active.Wait()

	return ws.err
}

// expandDirectory concurrently enumerates root for files with a
// recognized C/C++ source extension, returning them in a single sorted,
// deterministic slice so that the caller's sequential scan order does
// not depend on the walk's concurrent discovery order.
func expandDirectory(root string) ([]string, error) {
	var (
		mu    sync.Mutex
		found []string
	)
	err := walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if sourceExtensions[filepath.Ext(path)] {
			mu.Lock()
			found = append(found, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}
