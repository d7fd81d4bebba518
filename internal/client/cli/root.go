package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Email + " "
	}
	s = s + string(a.mode())
	return fmt.Sprintf("(%s)", s)
}

// Root runs the interactive command loop until the user exits or stdin
// closes.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to WolfNotes CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "wolf %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "profile":
			a.profile(ctx)

		case "classes":
			a.listClasses(ctx)
		case "class":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: class <id>")
				continue
			}
			a.showClass(ctx, args[0])
		case "roster":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: roster <class-id>")
				continue
			}
			a.showRoster(ctx, args[0])
		case "newclass":
			a.newClass(ctx)
		case "archive":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: archive <class-id>")
				continue
			}
			a.archiveClass(ctx, args[0], true)
		case "unarchive":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: unarchive <class-id>")
				continue
			}
			a.archiveClass(ctx, args[0], false)

		case "enroll":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: enroll <class-code>")
				continue
			}
			a.enroll(ctx, args[0])
		case "unenroll":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: unenroll <class-id>")
				continue
			}
			a.unenroll(ctx, args[0])

		case "notes":
			a.myNotes(ctx)
		case "upload":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: upload <class-id> <pdf-path>")
				continue
			}
			a.uploadNote(ctx, args[0], args[1])
		case "upvote":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: upvote <note-id>")
				continue
			}
			a.upvote(ctx, args[0])
		case "download":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: download <note-id> <destination>")
				continue
			}
			a.download(ctx, args[0], args[1])
		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: delete <note-id>")
				continue
			}
			a.deleteNote(ctx, args[0])

		case "open":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: open <path>")
				continue
			}
			a.openPage(ctx, args[0])

		case "sync":
			a.syncNow(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: classes, class <id>, roster <id>, newclass, archive <id>, unarchive <id>,")
		fmt.Fprintln(a.out, "  enroll <code>, unenroll <id>, notes, upload <class-id> <pdf>, upvote <id>, download <id> <dst>,")
		fmt.Fprintln(a.out, "  delete <id>, open <path>, profile, sync, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, open <path>, exit")
	}
}
