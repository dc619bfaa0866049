package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/remindl/remindl/pkg/remindcli"
)

func status(ctx *cli.Context) error {
	client, err := remindcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "status", "new_client", err)
		return nil
	}
	defer client.Close()

	version, err := client.GetDaemonVersion()
	if err != nil {
		printRuntimeErr(ctx, "status", "version", err)
		return nil
	}
	perm, err := client.Permission()
	if err != nil {
		printRuntimeErr(ctx, "status", "permission", err)
		return nil
	}

	fmt.Printf("Daemon version: %s\n", version.Version)
	fmt.Printf("Notification permission: %s\n", perm.State)
	if perm.State == "denied" {
		fmt.Println("Reminders cannot be scheduled; enable notifications for this app in your system settings and restart the daemon.")
	}
	return nil
}
