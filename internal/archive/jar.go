/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

// Package archive loads a container archive (a standard zip file), parses
// every .class entry it holds, and exposes the manifest-designated entry
// class (spec §4.E).
package archive

import (
	"archive/zip"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/flate"

	"jacobin/internal/classfile"
	"jacobin/internal/trace"
)

var registerDecompressor sync.Once

// Archive is an in-memory map of class entries plus the decoded manifest
// (spec §3 "Archive (Jar)").
type Archive struct {
	Path     string
	Classes  map[string]*classfile.ClassModule
	Manifest Manifest
}

// Open loads the archive at path: every entry ending in ".class" is decoded
// via classfile.Load and indexed by its archive-internal path; per-class
// decode failures are logged and skipped, not fatal (spec §4.E/§7). The
// manifest is required: its absence is fatal, as are a file that cannot be
// opened and one that is not a zip archive.
func Open(path string) (*Archive, error) {
	registerDecompressor.Do(func() {
		// Swap in klauspost/compress's faster flate implementation for the
		// zip reader's Deflate method, rather than the stdlib's.
		zip.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})
	})

	f, err := os.Open(path)
	if err != nil {
		return nil, &ArchiveError{Kind: OpenFailed, Path: path, Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, &ArchiveError{Kind: OpenFailed, Path: path, Err: err}
	}

	zr, err := zip.NewReader(f, stat.Size())
	if err != nil {
		return nil, &ArchiveError{Kind: NotAnArchive, Path: path, Err: err}
	}
	// Swap in klauspost/compress's faster flate implementation for this
	// reader's Deflate method, rather than the stdlib's.
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	a := &Archive{
		Path:    path,
		Classes: make(map[string]*classfile.ClassModule),
	}

	var manifestFound bool
	for _, f := range zr.File {
		switch {
		case f.Name == manifestPath:
			rc, err := f.Open()
			if err != nil {
				continue
			}
			data, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				continue
			}
			a.Manifest = parseManifest(data)
			manifestFound = true
		case strings.HasSuffix(f.Name, ".class"):
			rc, err := f.Open()
			if err != nil {
				trace.Error("failed to open archive entry " + f.Name + ": " + err.Error())
				continue
			}
			mod, err := classfile.Load(rc)
			rc.Close()
			if err != nil {
				trace.Error("dropping unparseable class " + f.Name + ": " + err.Error())
				continue
			}
			a.Classes[f.Name] = mod
		}
	}

	if !manifestFound {
		return nil, &ArchiveError{Kind: ManifestMissing, Path: path}
	}

	return a, nil
}

// MainClass resolves the Main-Class manifest entry to its loaded
// ClassModule, returning false if the entry is absent or was not
// successfully parsed (spec §4.E).
func (a *Archive) MainClass() (*classfile.ClassModule, bool) {
	name, ok := a.Manifest.MainClass()
	if !ok {
		return nil, false
	}
	mod, ok := a.Classes[name+".class"]
	return mod, ok
}
