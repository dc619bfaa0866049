package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/remindl/remindl/pkg/remindcli"
	"github.com/remindl/remindl/pkg/remindlib"
)

func set(ctx *cli.Context) error {
	title := strings.Join(ctx.Args(), " ")
	if strings.TrimSpace(title) == "" {
		if ctx.Command.Name == "" && ctx.NumFlags() == 0 {
			return help(ctx)
		}
		return printErrWithCmdHelp(ctx,
			errors.New("error: reminder text must not be empty"))
	}
	title, err := remindlib.ValidateTitle(title)
	if err != nil {
		return printErrWithCmdHelp(ctx,
			errors.New("error: reminder text must not be empty"))
	}

	draft, err := composeWhen(ctx, remindlib.NewDraft(time.Now()))
	if err != nil {
		return printErrWithCmdHelp(ctx, err)
	}

	if warning := pastWarning(draft.TriggerAt); warning != "" {
		fmt.Println(warning)
	}

	client, err := remindcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "set", "new_client", err)
		return nil
	}
	defer client.Close()
	client.CheckVersionMismatch(currentBuildArgs.Version)

	resp, err := client.Remind(title, draft.TriggerAt)
	if err != nil {
		printScheduleErr(ctx, err)
		return nil
	}

	fmt.Printf("Reminder set: %q at %s\n",
		resp.Title, resp.TriggerAt.Local().Format(triggerAtLayout))
	return nil
}

// composeWhen resolves the trigger instant from the set flags. The
// draft starts at the current moment; each flag replaces exactly one
// component of it.
func composeWhen(ctx *cli.Context, draft remindlib.Draft) (remindlib.Draft, error) {
	if ctx.Bool("pick") {
		return pickWhen(draft, ctx.App.Writer)
	}

	atVal := ctx.String("at")
	inVal := ctx.String("in")
	dateVal := ctx.String("date")
	clockVal := ctx.String("time")

	if err := validateWhenExclusion(atVal, inVal, dateVal, clockVal); err != nil {
		return draft, err
	}

	switch {
	case atVal != "":
		t, err := parseAt(atVal)
		if err != nil {
			return draft, err
		}
		draft.TriggerAt = t
	case inVal != "":
		t, err := parseIn(inVal)
		if err != nil {
			return draft, err
		}
		draft.TriggerAt = t
	default:
		if dateVal != "" {
			sel, err := parseDateFlag(dateVal)
			if err != nil {
				return draft, err
			}
			draft = draft.WithDate(sel)
		}
		if clockVal != "" {
			sel, err := parseTimeFlag(clockVal)
			if err != nil {
				return draft, err
			}
			draft = draft.WithClock(sel)
		}
	}
	return draft, nil
}

// printScheduleErr prints a scheduling rejection with wording specific
// to the failure kind.
func printScheduleErr(ctx *cli.Context, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, remindlib.ErrEmptyTitle.Error()):
		fmt.Printf("%s: reminder text must not be empty\n", ctx.App.HelpName)
	case strings.Contains(msg, remindlib.ErrNotAuthorized.Error()):
		fmt.Printf("%s: notifications are not authorized; enable them for this app in your system settings\n", ctx.App.HelpName)
	case strings.Contains(msg, "delivery failed"):
		fmt.Printf("%s: could not hand the reminder to the notification service: %s\n", ctx.App.HelpName, msg)
	default:
		printRuntimeErr(ctx, "set", "remind", err)
	}
}
