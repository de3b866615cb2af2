package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	AddEntry(ctx context.Context) error
	History(ctx context.Context, args []string) error
	Trends(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Medications(ctx context.Context) error
	AddMedication(ctx context.Context) error
	RemoveMedication(ctx context.Context, args []string) error
	ToggleMedication(ctx context.Context, args []string) error
	Reminders(ctx context.Context) error
	AddReminder(ctx context.Context, args []string) error
	RemoveReminder(ctx context.Context, args []string) error
	SetNotifications(ctx context.Context, args []string) error
}

// runREPL reads a line, parses the first token as the command and dispatches
// to methods on a. Handlers report their own errors; the loop stays focused
// on I/O and exits on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("moodlog> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Commands:")
			printlnFn("  add                    record a new entry")
			printlnFn("  history [date]         list dates, or one day's entries")
			printlnFn("  trends [range]         day|week|month|year|all (default week)")
			printlnFn("  export [start] [end]   write an HTML report, bounds optional")
			printlnFn("  meds                   list medications")
			printlnFn("  addmed                 register a medication")
			printlnFn("  delmed <n>             remove medication n")
			printlnFn("  take <n>               toggle medication n for the next entry")
			printlnFn("  reminders              show reminder times")
			printlnFn("  addrem <HH:MM>         add a reminder time")
			printlnFn("  delrem <HH:MM>         remove a reminder time")
			printlnFn("  notify on|off          enable or disable notifications")
			printlnFn("  exit")

		case "add":
			_ = a.AddEntry(ctx)

		case "history", "h":
			_ = a.History(ctx, args)

		case "trends", "t":
			_ = a.Trends(ctx, args)

		case "export":
			_ = a.Export(ctx, args)

		case "meds":
			_ = a.Medications(ctx)

		case "addmed":
			_ = a.AddMedication(ctx)

		case "delmed":
			_ = a.RemoveMedication(ctx, args)

		case "take":
			_ = a.ToggleMedication(ctx, args)

		case "reminders":
			_ = a.Reminders(ctx)

		case "addrem":
			_ = a.AddReminder(ctx, args)

		case "delrem":
			_ = a.RemoveReminder(ctx, args)

		case "notify":
			_ = a.SetNotifications(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
