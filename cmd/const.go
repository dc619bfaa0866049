package cmd

const DESCRIPTION = `
Remindl schedules one-shot desktop reminders. Compose a short
text with a date and a time of day, and remindl raises an OS
notification at that exact instant.
`

const (
	SetDescription = `The set command schedules a reminder. The reminder text is
taken from the arguments; the trigger instant starts at the
current moment and each flag replaces one component of it.

Example:
        remindl set "water the plants" --date 2026-09-01 --time 09:30
        remindl set "stand up" --in 45m
        remindl set "dentist" --at "2026-09-03 14:00"

`
	StatusDescription = `The status command reports the daemon version and whether the
host granted the notification permission.

Example:
        remindl status

`
	StopDescription = `The stop command asks the running daemon to shut down. Pending
reminders are lost; nothing survives a daemon restart.

Example:
        remindl stop

`
)

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`
