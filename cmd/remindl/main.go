package main

import (
	"fmt"
	"os"

	"github.com/remindl/remindl/cmd"
)

// Build metadata, set via -ldflags at release time.
var (
	version   = "dev"
	buildType = "local"
	date      = "unknown"
	commit    = "unknown"
)

func main() {
	err := cmd.Execute(os.Args, cmd.BuildArgs{
		Version:   version,
		BuildType: buildType,
		Date:      date,
		Commit:    commit,
	})
	if err != nil {
		fmt.Printf("remindl: %s\n", err.Error())
		os.Exit(1)
	}
}
