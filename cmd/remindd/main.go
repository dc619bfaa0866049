// remindd runs the reminder daemon directly, without the CLI wrapper.
package main

import (
	"fmt"
	"os"

	"github.com/remindl/remindl/cmd"
)

var (
	version   = "dev"
	buildType = "local"
	date      = "unknown"
	commit    = "unknown"
)

func main() {
	err := cmd.Execute([]string{os.Args[0], "daemon"}, cmd.BuildArgs{
		Version:   version,
		BuildType: buildType,
		Date:      date,
		Commit:    commit,
	})
	if err != nil {
		fmt.Println("remindd:", err.Error())
		os.Exit(1)
	}
}
