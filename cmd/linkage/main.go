// Command linkage is the CLI entry point.
package main

import "github.com/kinematics-lab/linkage/internal/cli"

func main() {
	cli.Execute()
}
