/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestManifestCRLF exercises spec §8 concrete scenario 6.
func TestManifestCRLF(t *testing.T) {
	m := parseManifest([]byte("Main-Class: A\r\n"))
	v, ok := m.MainClass()
	require.True(t, ok)
	require.Equal(t, "A", v)
}

func TestManifestIgnoresBlankLines(t *testing.T) {
	m := parseManifest([]byte("Manifest-Version: 1.0\n\nMain-Class: pkg/Main\n"))
	v, ok := m.MainClass()
	require.True(t, ok)
	require.Equal(t, "pkg/Main", v)
	require.Equal(t, "1.0", m["Manifest-Version"])
}

func TestManifestMissingColonIgnored(t *testing.T) {
	m := parseManifest([]byte("not a manifest line\nMain-Class: X\n"))
	v, ok := m.MainClass()
	require.True(t, ok)
	require.Equal(t, "X", v)
}
