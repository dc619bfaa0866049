package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/remindl/remindl/pkg/remindcli"
)

func stop(ctx *cli.Context) error {
	client, err := remindcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "stop", "new_client", err)
		return nil
	}
	defer client.Close()

	resp, err := client.StopDaemon()
	if err != nil {
		printRuntimeErr(ctx, "stop", "stop_daemon", err)
		return nil
	}
	if resp.Stopped {
		fmt.Println("Daemon stopped; pending reminders were discarded.")
	}
	return nil
}
