// Command tubenet answers journey, backbone and closure questions about a
// transit network loaded from a "Line, Station1, Station2, Time" CSV file.
package main

import "github.com/katalvlaran/tubenet/cmd/tubenet/commands"

func main() {
	commands.Execute()
}
