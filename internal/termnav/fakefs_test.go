package termnav

import (
	"io/fs"
	"path"
	"time"
)

// fakeEntry is a directory child in a fakeFS.
type fakeEntry struct {
	name string
	mode fs.FileMode
}

func dirEntry(name string) fakeEntry  { return fakeEntry{name: name, mode: fs.ModeDir} }
func fileEntry(name string) fakeEntry { return fakeEntry{name: name} }
func linkEntry(name string) fakeEntry { return fakeEntry{name: name, mode: fs.ModeSymlink} }

func (e fakeEntry) Name() string               { return e.name }
func (e fakeEntry) IsDir() bool                { return e.mode.IsDir() }
func (e fakeEntry) Type() fs.FileMode          { return e.mode.Type() }
func (e fakeEntry) Info() (fs.FileInfo, error) { return fakeInfo{e}, nil }

type fakeInfo struct{ e fakeEntry }

func (i fakeInfo) Name() string       { return i.e.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return i.e.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.e.mode.IsDir() }
func (i fakeInfo) Sys() any           { return nil }

// fakeFS lists children in exactly the order given. links maps a symlink
// path to the path it resolves to.
type fakeFS struct {
	dirs  map[string][]fakeEntry
	links map[string]string
	reads []string
}

func (f *fakeFS) ReadDir(dir string) ([]fs.DirEntry, error) {
	f.reads = append(f.reads, dir)
	children, ok := f.dirs[dir]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrNotExist}
	}
	out := make([]fs.DirEntry, len(children))
	for i, c := range children {
		out[i] = c
	}
	return out, nil
}

func (f *fakeFS) Stat(p string) (fs.FileInfo, error) {
	if target, ok := f.links[p]; ok {
		p = target
	}
	if _, ok := f.dirs[p]; ok {
		return fakeInfo{dirEntry(path.Base(p))}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

// projectFS is the /home/u/proj tree used across tests.
func projectFS() *fakeFS {
	return &fakeFS{
		dirs: map[string][]fakeEntry{
			"/":       {dirEntry("home")},
			"/home":   {dirEntry("u")},
			"/home/u": {dirEntry("proj")},
			"/home/u/proj": {
				dirEntry("src"),
				fileEntry("Cargo.toml"),
				dirEntry(".git"),
				dirEntry("target"),
			},
			"/home/u/proj/src":    {fileEntry("main.rs")},
			"/home/u/proj/target": {},
			"/home/u/proj/.git":   {},
		},
	}
}
