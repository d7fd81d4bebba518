package cli

import (
	"context"
	"fmt"

	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
)

func (a *App) listClasses(ctx context.Context) {
	res, err := a.classes.All(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if len(res.Data) == 0 {
		fmt.Fprintf(a.out, "No classes%s\n", sourceTag(res.Source))
		return
	}

	fmt.Fprintf(a.out, "Classes%s:\n", sourceTag(res.Source))
	for _, c := range res.Data {
		archived := ""
		if c.Archived {
			archived = " [archived]"
		}
		fmt.Fprintf(a.out, "  %s  %s (%s)%s\n", c.ID, c.Name, c.ClassCode, archived)
	}
}

func (a *App) showClass(ctx context.Context, id string) {
	res, err := a.classes.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	c := res.Data
	fmt.Fprintf(a.out, "%s (%s)%s\n", c.Name, c.ClassCode, sourceTag(res.Source))
	if c.Section != "" {
		fmt.Fprintf(a.out, "  section: %s\n", c.Section)
	}
	if c.ClassDesc != "" {
		fmt.Fprintf(a.out, "  %s\n", c.ClassDesc)
	}

	notes, err := a.notes.ByClass(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Notes%s:\n", sourceTag(notes.Source))
	for _, n := range notes.Data {
		fmt.Fprintf(a.out, "  %s  %q by %s (%d upvotes)\n",
			n.ID, n.Title, a.notes.AuthorName(ctx, n.UploaderID), n.Upvotes)
	}
}

func (a *App) showRoster(ctx context.Context, classID string) {
	res, err := a.classes.Roster(ctx, classID)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Roster%s:\n", sourceTag(res.Source))
	for _, s := range res.Data {
		fmt.Fprintf(a.out, "  %s  %s %s <%s>\n", s.ID, s.FirstName, s.LastName, s.Email)
	}
}

func (a *App) newClass(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Class name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	desc, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	section, err := GetSimpleText(a.reader, "Section (optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	created, err := a.classes.Create(ctx, gateway.ClassInput{
		Name:      name,
		ClassDesc: desc,
		Section:   section,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Cannot create class: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Class created: id=%s join code=%s\n", created.ClassID, created.ClassCode)
}

func (a *App) archiveClass(ctx context.Context, id string, archived bool) {
	if err := a.classes.SetArchived(ctx, id, archived); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if archived {
		fmt.Fprintln(a.out, "Class archived")
	} else {
		fmt.Fprintln(a.out, "Class restored")
	}
}

func (a *App) enroll(ctx context.Context, classCode string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first")
		return
	}
	if err := a.students.Enroll(ctx, a.user.ID, classCode); err != nil {
		fmt.Fprintf(a.out, "Enrollment failed: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Enrolled")
}

func (a *App) unenroll(ctx context.Context, classID string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first")
		return
	}
	if err := a.students.Unenroll(ctx, a.user.ID, classID); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Unenrolled")
}
