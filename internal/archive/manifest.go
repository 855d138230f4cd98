/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package archive

import "strings"

const manifestPath = "META-INF/MANIFEST.MF"

// Manifest is the key/value mapping decoded from META-INF/MANIFEST.MF
// (spec §3/§4.E).
type Manifest map[string]string

// parseManifest splits the manifest file line-by-line (tolerating CRLF),
// and for every non-empty line splits once on the first ':' into a
// whitespace-trimmed key/value pair (spec §4.E, scenario 6).
func parseManifest(data []byte) Manifest {
	m := make(Manifest)
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		m[key] = val
	}
	return m
}

// MainClass returns the Main-Class manifest value, if present.
func (m Manifest) MainClass() (string, bool) {
	v, ok := m["Main-Class"]
	return v, ok
}
