/*
 * dump.go, part of gokin.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package estimator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

const dumpSuffix = ".response.zst"

//dumpResponse writes raw, zstd-compressed, to dir/id.response.zst and returns the path.
func dumpResponse(dir, id string, raw []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, id+dumpSuffix)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return "", err
	}
	if _, err := enc.Write(raw); err != nil {
		enc.Close()
		f.Close()
		return "", err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

//ReadDump returns the raw response stored in a dump file.
func ReadDump(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading dump %s: %w", path, err)
	}
	defer dec.Close()
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading dump %s: %w", path, err)
	}
	return raw, nil
}
