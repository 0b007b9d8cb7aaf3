package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/raincheck"
)

const dateFormat = "2006-01-02 15:04"

var encouragements = []string{
	"Look at what you've accomplished.",
	"Progress never looked so good.",
	"Well done, you made it happen.",
	"These RainChecks met their moment.",
	"One check at a time, you're doing great.",
}

// id returns args[0] or asks for it.
func (a *App) id(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// prefilled asks for a value, showing current; an empty answer keeps it.
func (a *App) prefilled(prompt, current string) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// readDraft collects the editable fields, starting from base. It does not
// validate; the service does.
func (a *App) readDraft(ctx context.Context, base raincheck.Draft) (raincheck.Draft, error) {
	d := base
	var err error

	if d.Title, err = a.prefilled("Title", base.Title); err != nil {
		return d, err
	}
	if d.Emoji, err = a.prefilled("Emoji", base.Emoji); err != nil {
		return d, err
	}

	notesPrompt := "Notes (optional)"
	if base.Notes != "" {
		notesPrompt = "Notes (empty keeps the current ones, '-' clears them)"
	}
	notes, err := GetMultiline(a.reader, notesPrompt, a.out)
	if err != nil {
		return d, err
	}
	switch notes {
	case "":
	case "-":
		d.Notes = ""
	default:
		d.Notes = notes
	}

	kind, err := a.prefilled("Reminder: rain, random or fixed", base.ReminderType.String())
	if err != nil {
		return d, err
	}
	d.ReminderType = raincheck.ReminderType(strings.ToLower(kind))

	d.ReminderValue = nil
	if d.ReminderType == raincheck.ReminderFixed {
		current := ""
		if base.ReminderValue != nil {
			current = base.ReminderValue.In(time.Local).Format(dateFormat)
		}
		v, err := a.prefilled("Reminder date (YYYY-MM-DD [HH:MM])", current)
		if err != nil {
			return d, err
		}
		if v != "" {
			at, err := ParseDate(v, time.Local)
			if err != nil {
				return d, &raincheck.ValidationError{Field: raincheck.FieldReminderValue, Message: "Please select a reminder date."}
			}
			d.ReminderValue = &at
		}
	}

	if d.URL, err = a.prefilled("Link (optional)", base.URL); err != nil {
		return d, err
	}

	imagePrompt := "Image file (optional)"
	if base.ImageURI != nil {
		imagePrompt = "Image file (empty keeps the current image, '-' removes it)"
	}
	path, err := getSimpleText(a.reader, imagePrompt, a.out)
	if err != nil {
		return d, err
	}
	switch path {
	case "":
	case "-":
		d.ImageURI = nil
	default:
		key, err := a.uploadImage(ctx, path)
		if err != nil {
			return d, err
		}
		d.ImageURI = &key
	}

	current := "n"
	if base.IsPublic {
		current = "y"
	}
	public, err := a.prefilled("Share publicly? (y/n)", current)
	if err != nil {
		return d, err
	}
	d.IsPublic = strings.EqualFold(public, "y") || strings.EqualFold(public, "yes")

	return d, nil
}

func (a *App) uploadImage(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	return a.rainchecks.UploadImage(ctx, f, info.Size(), mime.TypeByExtension(filepath.Ext(path)))
}

func (a *App) Create(ctx context.Context, _ []string) error {
	d, err := a.readDraft(ctx, raincheck.Draft{})
	if err != nil {
		return err
	}
	rc, err := a.rainchecks.Create(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created %s %s (%s)\n", rc.Emoji, rc.Title, rc.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.id(args, "RainCheck id to edit")
	if err != nil {
		return err
	}
	rc, err := a.rainchecks.Get(ctx, id)
	if err != nil {
		return err
	}

	d, err := a.readDraft(ctx, raincheck.DraftOf(*rc))
	if err != nil {
		return err
	}
	updated, err := a.rainchecks.Update(ctx, rc.ID, rc.Revision, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s %s\n", updated.Emoji, updated.Title)
	return nil
}

// List prints pending RainChecks, flagging the ones whose reminder is due.
func (a *App) List(ctx context.Context, _ []string) error {
	items, err := a.rainchecks.ListPending(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Nothing saved for a rainy day yet. Try 'create'.")
		return nil
	}

	now := a.now()
	for _, rc := range items {
		flag := ""
		if raincheck.IsDue(*rc, now) {
			flag = "  [due]"
		}
		fmt.Fprintf(a.out, "%s  %s %s  (%s)%s\n", rc.ID, rc.Emoji, rc.Title, describeReminder(*rc), flag)
	}
	return nil
}

func (a *App) Completed(ctx context.Context, _ []string) error {
	items, err := a.rainchecks.ListCompleted(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No completed RainChecks yet, why not go create one?")
		return nil
	}

	noun := "RainChecks"
	if len(items) == 1 {
		noun = "RainCheck"
	}
	fmt.Fprintf(a.out, "You've completed %d %s\n", len(items), noun)
	fmt.Fprintln(a.out, encouragements[a.pick(len(encouragements))])

	for _, rc := range items {
		done := ""
		if rc.CompletedAt != nil {
			done = " on " + rc.CompletedAt.In(time.Local).Format("2006-01-02")
		}
		fmt.Fprintf(a.out, "%s  %s %s%s\n", rc.ID, rc.Emoji, rc.Title, done)
	}
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.id(args, "RainCheck id to show")
	if err != nil {
		return err
	}
	rc, err := a.rainchecks.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s\n", rc.Emoji, rc.Title)
	if rc.Notes != "" {
		fmt.Fprintln(a.out, rc.Notes)
	}
	fmt.Fprintf(a.out, "Reminder: %s\n", describeReminder(*rc))
	if rc.URL != "" {
		fmt.Fprintf(a.out, "Link: %s\n", rc.URL)
	}
	if rc.ImageURI != nil {
		url, err := a.rainchecks.ImageURL(ctx, *rc.ImageURI)
		if err != nil {
			a.logger.Warn(ctx, "image link unavailable", "key", *rc.ImageURI, "error", err)
			url = *rc.ImageURI
		}
		fmt.Fprintf(a.out, "Image: %s\n", url)
	}
	visibility := "private"
	if rc.IsPublic {
		visibility = "public"
	}
	fmt.Fprintf(a.out, "Visibility: %s\n", visibility)
	fmt.Fprintf(a.out, "Created: %s\n", rc.CreatedAt.In(time.Local).Format(dateFormat))
	if rc.Completed && rc.CompletedAt != nil {
		fmt.Fprintf(a.out, "Completed: %s\n", rc.CompletedAt.In(time.Local).Format(dateFormat))
	}
	return nil
}

func (a *App) Complete(ctx context.Context, args []string) error {
	id, err := a.id(args, "RainCheck id to complete")
	if err != nil {
		return err
	}
	ok, err := GetConfirmation(a.reader, "Mark this RainCheck as done?", a.out)
	if err != nil || !ok {
		return err
	}
	rc, err := a.rainchecks.Complete(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Nice! %s %s is done.\n", rc.Emoji, rc.Title)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.id(args, "RainCheck id to delete")
	if err != nil {
		return err
	}
	ok, err := GetConfirmation(a.reader, "Delete this RainCheck? This cannot be undone.", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.rainchecks.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

func describeReminder(rc raincheck.RainCheck) string {
	switch r := rc.Reminder().(type) {
	case raincheck.FixedReminder:
		return r.At.In(time.Local).Format(dateFormat)
	case raincheck.RainReminder:
		return "on a rainy day"
	case raincheck.RandomReminder:
		return "some random day"
	default:
		return "no reminder"
	}
}
