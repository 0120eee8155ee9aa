// Command infographic renders the agent reporting infographic to a PNG file.
//
// Usage:
//
//	infographic [--config content.yaml] [-o out.png] [--dpi 300] [--width 16 --height 20] [--tight] [-v]
//
// Without configuration file, the built-in content is used.
package main

import "os"

func main() {
	os.Exit(execute(NewRootCommand(), os.Args[1:]))
}
