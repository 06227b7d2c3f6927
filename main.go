// SPDX-License-Identifier: MPL-2.0

package main

import cmd "pngstash-cli/cmd/pngstash"

func main() {
	cmd.Execute()
}
