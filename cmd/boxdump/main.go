// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command boxdump prints the contents of flat box storage files and
// serialized record lists as JSON.
package main

import (
	"github.com/kang1806/PKHeX/cmd/boxdump/cmd"
)

func main() {
	cmd.Execute()
}
