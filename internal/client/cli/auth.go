package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
	"github.com/slicedsoap/wolfnotes/internal/client/models"
	"github.com/slicedsoap/wolfnotes/internal/client/services"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	user, err := a.auth.Login(ctx, email, string(password))
	if err == nil {
		a.user = user
		a.setOnline(ctx, true)
		fmt.Fprintf(a.out, "Signed in as %s %s\n", user.FirstName, user.LastName)
		return
	}

	if errors.Is(err, gateway.ErrNetworkUnreachable) {
		fmt.Fprintln(a.out, "Server unreachable, trying cached profile...")
		res, cerr := a.auth.Current(ctx)
		if cerr != nil || res.Data.Email != email {
			fmt.Fprintln(a.out, "No cached session for this account")
			return
		}
		a.user = res.Data
		a.setOnline(ctx, false)
		fmt.Fprintf(a.out, "Offline session as %s %s (cached)\n", res.Data.FirstName, res.Data.LastName)
		return
	}

	fmt.Fprintf(a.out, "Login failed: %v\n", err)
}

func (a *App) Register(ctx context.Context) {
	firstName, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	lastName, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	role, err := GetSimpleText(a.reader, "Role (student/instructor)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	reg := gateway.Registration{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      role,
	}

	if models.Role(role) == models.RoleInstructor {
		if reg.Institution, err = GetSimpleText(a.reader, "Institution", a.out); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		if reg.Subject, err = GetSimpleText(a.reader, "Subject", a.out); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	reg.Password = string(password)

	if err := a.auth.Register(ctx, reg); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Account created, you can login now")
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil && !errors.Is(err, gateway.ErrNetworkUnreachable) {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return
	}
	a.user = nil
	fmt.Fprintln(a.out, "Logged out. Cached data stays on this device.")
}

func (a *App) profile(ctx context.Context) {
	res, err := a.auth.Current(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNoCachedProfile) {
			fmt.Fprintln(a.out, "Offline and no cached profile on this device")
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	u := res.Data
	fmt.Fprintf(a.out, "%s %s <%s> role=%s%s\n", u.FirstName, u.LastName, u.Email, u.Role, sourceTag(res.Source))
	if u.Role == models.RoleInstructor {
		fmt.Fprintf(a.out, "  institution: %s, subject: %s\n", u.Institution, u.Subject)
	}
}

// sourceTag marks cache-served reads so stale data is never mistaken for
// live data.
func sourceTag(s services.Source) string {
	if s == services.SourceCache {
		return " [cached]"
	}
	return ""
}
