// Command mtcsctl clears CSV files of multilateral trade credit
// obligations using the mtcs engine.
package main

import "github.com/katalvlaran/mtcs/internal/cli"

func main() {
	cli.Execute()
}
