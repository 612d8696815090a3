// Command intentctl runs the intent pipeline from a terminal, without the
// HTTP layer.
package main

import "os"

func main() {
	os.Exit(newRunner(os.Stdout, os.Stderr, buildApp).run(os.Args[1:]))
}
