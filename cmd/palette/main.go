// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command palette prints Material tonal palettes and color schemes as
// terminal swatches, checks contrast ratios, and edits the theme
// settings file shared with GUI hosts.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
