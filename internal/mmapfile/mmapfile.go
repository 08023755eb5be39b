// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package mmapfile loads storage files into owned buffers and writes
// them back atomically.
package mmapfile

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/kang1806/PKHeX/internal/bytesutil"
)

// Read returns the contents of the file at path in a new buffer.  The
// file is mapped read-only and copied, so the result stays valid after
// the mapping is gone.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s): %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("f.Stat: %w", err)
	}
	size := fi.Size()
	if size == 0 {
		// mmap of a zero-length file fails with EINVAL
		return []byte{}, nil
	}
	if size != int64(int(size)) {
		return nil, fmt.Errorf("file %s too large to map: %d bytes", path, size)
	}

	m, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("unix.Mmap: %w", err)
	}
	defer func() {
		_ = unix.Munmap(m)
	}()
	if err := unix.Madvise(m, unix.MADV_SEQUENTIAL); err != nil {
		return nil, fmt.Errorf("madvise: %w", err)
	}

	return bytesutil.Clone(m), nil
}

// WriteAtomic replaces the file at path with data.  The bytes go to a
// temporary file in the same directory that is renamed over path, so
// readers see either the old or the new contents.
func WriteAtomic(path string, data []byte) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("filepath.Abs: %w", err)
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "pkhex.*.tmp")
	if err != nil {
		return fmt.Errorf("CreateTemp failed (may need permissions for dir %q): %w", dir, err)
	}
	cleanup := func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	}

	if n, err := f.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("f.Write: %w", err)
	} else if n != len(data) {
		cleanup()
		return fmt.Errorf("f.Write: short write of %d (wanted %d)", n, len(data))
	}
	if err := f.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("f.Sync: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("f.Close: %w", err)
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("os.Chmod(0644): %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("os.Rename: %w", err)
	}
	return nil
}
