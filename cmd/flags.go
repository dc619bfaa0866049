package cmd

import "github.com/urfave/cli"

var setFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "date, d",
		Usage: "set the reminder's calendar date (YYYY-MM-DD), keeping the time of day",
	},
	cli.StringFlag{
		Name:  "time, t",
		Usage: "set the reminder's time of day (HH:MM or HH:MM:SS), keeping the date",
	},
	cli.StringFlag{
		Name:  "at",
		Usage: "set the full trigger instant (\"YYYY-MM-DD HH:MM\")",
	},
	cli.StringFlag{
		Name:  "in",
		Usage: "set the trigger instant relative to now (e.g. 45m, 2h, 1h30m)",
	},
	cli.BoolFlag{
		Name:  "pick, p",
		Usage: "choose date and time interactively",
	},
}
