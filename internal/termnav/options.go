/*
 * Copyright (c) 2026. AXIOM STUDIO AI Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package termnav

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
)

// EntryKind tags an option list entry.
type EntryKind int

const (
	SelfEntry   EntryKind = iota // Select the current directory.
	ParentEntry                  // Go up one level.
	ChildEntry                   // Descend into a named subdirectory.
)

// Entry is one navigable item of an option list.
type Entry struct {
	Kind EntryKind
	Name string // base name, set for ChildEntry only
}

// Label returns the unindexed display label.
func (e Entry) Label() string {
	switch e.Kind {
	case SelfEntry:
		return "."
	case ParentEntry:
		return ".."
	default:
		return e.Name
	}
}

// OptionList is the ordered set of entries shown for one directory.
// Entries[0] is always SelfEntry and Entries[1] is always ParentEntry.
type OptionList struct {
	Entries []Entry
	Labels  []string
	Indexed bool
}

// Len returns the number of options.
func (o OptionList) Len() int { return len(o.Labels) }

// DirReader reads directory listings. The real implementation keeps the
// order the filesystem returns; tests inject a fixed order.
type DirReader interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
}

type osDirReader struct{}

// ReadDir lists dir without sorting, unlike os.ReadDir.
func (osDirReader) ReadDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}

func (osDirReader) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// OptionBuilder produces the option list for a directory.
type OptionBuilder struct {
	reader  DirReader
	exclude []glob.Glob
}

// NewOptionBuilder returns a builder reading the real filesystem. Directory
// names matching any of the exclude globs are never listed.
func NewOptionBuilder(exclude []string) (*OptionBuilder, error) {
	return NewOptionBuilderWithReader(osDirReader{}, exclude)
}

// NewOptionBuilderWithReader returns a builder backed by a custom reader.
func NewOptionBuilderWithReader(reader DirReader, exclude []string) (*OptionBuilder, error) {
	globs, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}
	return &OptionBuilder{reader: reader, exclude: globs}, nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// Build reads dir and returns its option list. Any read failure is returned
// unchanged so callers can inspect the underlying *fs.PathError.
func (b *OptionBuilder) Build(dir string, showHidden, indexed bool) (OptionList, error) {
	children, err := b.reader.ReadDir(dir)
	if err != nil {
		return OptionList{}, err
	}

	entries := []Entry{{Kind: SelfEntry}, {Kind: ParentEntry}}
	for _, child := range children {
		name := child.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if b.excluded(name) || !b.isDir(dir, child) {
			continue
		}
		entries = append(entries, Entry{Kind: ChildEntry, Name: name})
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label()
		if indexed {
			labels[i] = indexPrefix(i) + labels[i]
		}
	}
	return OptionList{Entries: entries, Labels: labels, Indexed: indexed}, nil
}

// isDir follows symlinks so a link to a directory is listed like one.
func (b *OptionBuilder) isDir(dir string, child fs.DirEntry) bool {
	if child.IsDir() {
		return true
	}
	if child.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := b.reader.Stat(filepath.Join(dir, child.Name()))
	return err == nil && info.IsDir()
}

func (b *OptionBuilder) excluded(name string) bool {
	for _, g := range b.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func indexPrefix(i int) string {
	return "[" + strconv.Itoa(i) + "] "
}

// stripIndexPrefix removes one leading "[<digits>] " from label.
func stripIndexPrefix(label string) string {
	if !strings.HasPrefix(label, "[") {
		return label
	}
	end := strings.Index(label, "] ")
	if end < 2 {
		return label
	}
	for _, c := range label[1:end] {
		if c < '0' || c > '9' {
			return label
		}
	}
	return label[end+2:]
}
