// Command ggchart renders chart descriptions with the gg 2D graphics library.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gogpu/ggchart/internal/cli"
)

func main() {
	app := cli.New()

	if err := app.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
