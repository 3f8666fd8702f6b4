package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/iudanet/learnsync/internal/client/auth"
	"github.com/iudanet/learnsync/internal/models"
)

// ErrPasswordMismatch пароль и подтверждение не совпали
var ErrPasswordMismatch = errors.New("passwords do not match")

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")

	prompts := []string{
		"Email: ",
		"First name: ",
		"Last name: ",
		"Role (refugee, instructor, employer, admin) [refugee]: ",
	}
	answers := make([]string, len(prompts))
	for i, prompt := range prompts {
		value, err := c.io.ReadInput(prompt)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		answers[i] = value
	}

	password, err := c.readNewPassword("Password: ")
	if err != nil {
		return err
	}

	res, err := c.auth.Register(ctx, auth.RegisterInput{
		Email:     answers[0],
		FirstName: answers[1],
		LastName:  answers[2],
		Role:      models.Role(strings.ToLower(answers[3])),
		Password:  password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ " + res.Message)
	c.io.Printf("Local user ID: %d\n", res.User.ID)
	c.io.Println("Run 'learnsync login' to start a session.")
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	res, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Logged in as %s <%s>\n", res.User.FullName(), res.User.Email)
	c.io.Printf("Session expires: %s\n", res.Session.ExpiresAt.Local().Format(timeLayout))
	if res.Session.ServerToken != "" {
		c.io.Println("Server session: active")
	} else {
		c.io.Println("Server session: offline, changes will sync when the server is reachable")
	}
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	view := statusView{Online: c.network.Online()}

	if user, ok := c.auth.CurrentUser(ctx); ok {
		view.User = user
		if session, ok := c.auth.CurrentSession(ctx); ok {
			view.SessionExpires = session.ExpiresAt.Local().Format(timeLayout)
			view.ServerSession = session.ServerToken != ""
		}
	}

	pending, err := c.queue.Len(ctx)
	if err != nil {
		return fmt.Errorf("failed to read pending actions: %w", err)
	}
	view.Pending = pending

	lastSync, ok, err := c.meta.GetLastSync(ctx)
	if err != nil {
		return fmt.Errorf("failed to read last sync time: %w", err)
	}
	if ok {
		view.LastSync = lastSync.Local().Format(timeLayout)
	}

	return statusTemplate.Execute(c.io, view)
}

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(c.io)
	values := map[string]*string{
		"first":    fs.String("first", "", "First name"),
		"last":     fs.String("last", "", "Last name"),
		"phone":    fs.String("phone", "", "Phone"),
		"bio":      fs.String("bio", "", "About you"),
		"location": fs.String("location", "", "Location"),
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Только явно заданные флаги, пустое значение тоже изменение
	var upd models.ProfileUpdate
	fs.Visit(func(f *flag.Flag) {
		v := values[f.Name]
		switch f.Name {
		case "first":
			upd.FirstName = v
		case "last":
			upd.LastName = v
		case "phone":
			upd.Phone = v
		case "bio":
			upd.Bio = v
		case "location":
			upd.Location = v
		}
	})

	if upd.Empty() {
		user, ok := c.auth.CurrentUser(ctx)
		if !ok {
			return fmt.Errorf("not logged in. Please run 'learnsync login' first")
		}
		return profileTemplate.Execute(c.io, user)
	}

	user, err := c.auth.UpdateProfile(ctx, upd)
	if err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}
	c.io.Println("✓ Profile updated. Changes will sync when online.")
	return profileTemplate.Execute(c.io, user)
}

func (c *Cli) runPasswd(ctx context.Context) error {
	c.io.Println("=== Change password ===")

	current, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	next, err := c.readNewPassword("New password: ")
	if err != nil {
		return err
	}

	if err := c.auth.ChangePassword(ctx, current, next); err != nil {
		return fmt.Errorf("password change failed: %w", err)
	}
	c.io.Println("✓ Password changed.")
	return nil
}

func (c *Cli) runUsers(ctx context.Context) error {
	users, err := c.auth.Users(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		c.io.Println("No users on this device.")
		return nil
	}
	return usersTemplate.Execute(c.io, users)
}

func (c *Cli) runWipe(ctx context.Context) error {
	answer, err := c.io.ReadInput("This deletes all accounts, sessions, courses and queued changes on this device. Type 'yes' to continue: ")
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if answer != "yes" {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.auth.ClearAllData(ctx); err != nil {
		return fmt.Errorf("wipe failed: %w", err)
	}
	c.io.Println("✓ All local data deleted.")
	return nil
}

// readNewPassword читает пароль дважды
func (c *Cli) readNewPassword(prompt string) (string, error) {
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password != confirm {
		return "", ErrPasswordMismatch
	}
	return password, nil
}
