package cli

import (
	"context"
	"errors"

	"moodlog/internal/common"
)

// Reminders shows the configured reminder times and whether notifications
// are on.
func (a *App) Reminders(ctx context.Context) error {
	state := "off"
	if a.reminders.Enabled() {
		state = "on"
	}
	printlnFn("Notifications:", state)

	times := a.reminders.Times()
	if len(times) == 0 {
		printlnFn("No reminder times set.")
		return nil
	}
	printlnFn("Reminder times:")
	for _, tod := range times {
		printlnFn("  " + tod)
	}
	return nil
}

func (a *App) AddReminder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: addrem <HH:MM>")
		return errors.New("missing reminder time")
	}

	if err := a.reminders.Add(ctx, args[0]); err != nil {
		if errors.Is(err, common.ErrInvalidReminderTime) {
			printlnFn("Invalid time:", args[0], "(expected HH:MM, e.g. 09:00)")
		} else {
			printlnFn("Failed to add reminder:", err.Error())
		}
		return err
	}

	printlnFn("Reminder added at", args[0])
	return a.rearm(ctx)
}

func (a *App) RemoveReminder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: delrem <HH:MM>")
		return errors.New("missing reminder time")
	}

	a.reminders.Remove(ctx, args[0])
	printlnFn("Reminder removed:", args[0])
	return a.rearm(ctx)
}

func (a *App) SetNotifications(ctx context.Context, args []string) error {
	if len(args) == 0 || (args[0] != "on" && args[0] != "off") {
		printlnFn("Usage: notify on|off")
		return errors.New("expected on or off")
	}

	enabled := args[0] == "on"
	a.reminders.SetEnabled(ctx, enabled)
	if enabled {
		printlnFn("Notifications on.")
		return a.rearm(ctx)
	}

	printlnFn("Notifications off.")
	if err := a.scheduler.Pause(); err != nil {
		a.log.Warn(ctx, "failed to pause scheduler", "error", err)
	}
	return nil
}

// rearm rebuilds the scheduler's job set from the current reminder times.
// A no-op while notifications are off.
func (a *App) rearm(ctx context.Context) error {
	if !a.reminders.Enabled() {
		return nil
	}
	if err := a.scheduler.Reschedule(ctx, a.reminders.Times()); err != nil {
		a.log.Warn(ctx, "failed to arm reminder jobs", "error", err)
		return err
	}
	a.scheduler.Start()
	return nil
}
