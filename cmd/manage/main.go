// Command manage runs one-off administrative tasks against the database.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/internlink/internlink-api/internal/config"
	"github.com/internlink/internlink-api/internal/database"
	"github.com/internlink/internlink-api/internal/logging"
	"github.com/internlink/internlink-api/internal/models"
	"github.com/internlink/internlink-api/internal/services"
	"gorm.io/gorm"
)

const usage = `usage: manage <command> [flags]

commands:
  create-admin -email EMAIL -password PASSWORD   create or promote an admin account
  make-admin -id USER_ID                         give an existing user the ADMIN role
  list-users                                     print every account
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := run(database.DB, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(db *gorm.DB, command string, args []string, out io.Writer) error {
	switch command {
	case "create-admin":
		fs := flag.NewFlagSet(command, flag.ContinueOnError)
		email := fs.String("email", "", "admin email")
		password := fs.String("password", "", "admin password")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *email == "" || len(*password) < 8 {
			return fmt.Errorf("create-admin needs -email and a -password of at least 8 characters")
		}

		user, err := services.NewAuthService(db, nil).CreateAdmin(*email, *password)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "admin ready: id=%d email=%s\n", user.ID, user.Email)
		return nil

	case "make-admin":
		fs := flag.NewFlagSet(command, flag.ContinueOnError)
		id := fs.Uint("id", 0, "user id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id == 0 {
			return fmt.Errorf("make-admin needs -id")
		}

		// Zero is never a real user id, so the self-change guard never trips.
		user, err := services.NewAdminService(db).ChangeRole(0, *id, models.RoleAdmin)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "user %d (%s) is now %s\n", user.ID, user.Email, user.Role)
		return nil

	case "list-users":
		users, err := services.NewAdminService(db).ListUsers()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tBLOCKED\tCREATED")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\n", u.ID, u.Email, u.Role, u.IsBlocked, u.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()

	default:
		return fmt.Errorf("unknown command %q\n\n%s", command, usage)
	}
}
