// Command newsdata inspects labeled news-headline datasets.
package main

import (
	"os"

	"github.com/hupe1980/newsdata/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
