package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/core"
	"taskboard/internal/db"
	"taskboard/internal/repository"
	"taskboard/pkg/log"
	"taskboard/pkg/token"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("taskboard", zapcore.WarnLevel)

	cfg := config.NewApp()

	dbConn, err := db.NewSqliteDB(cfg.DBPath)
	if err != nil {
		logger.Errorw("failed to open database", "error", err)
		return err
	}

	if err := repository.Migrate(dbConn); err != nil {
		logger.Errorw("failed to migrate database", "error", err)
		return err
	}

	// repositories
	users := repository.NewUserRepository(dbConn)
	projects := repository.NewProjectRepository(dbConn)

	// session token issuer
	issuer := token.NewIssuer([]byte(cfg.SessionSecret))

	// services
	auth := core.NewAuth(logger, users, projects, issuer)
	projectService := core.NewProjects(logger, projects)
	exporter := core.NewExporter(logger, projects)

	app := &console{
		in:         bufio.NewScanner(os.Stdin),
		out:        os.Stdout,
		exportPath: cfg.ExportPath,
		auth:       auth,
		projects:   projectService,
		exporter:   exporter,
	}
	return app.run(context.Background())
}

// console is the replaceable presentation collaborator: it renders results,
// turns service errors into messages and asks for confirmation before the
// destructive calls. None of that lives in the services themselves.
type console struct {
	in         *bufio.Scanner
	out        io.Writer
	exportPath string
	auth       *core.Auth
	projects   *core.Projects
	exporter   *core.Exporter
}

func (c *console) run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out, "\n1) login  2) register  3) list users  4) quit")
		switch c.prompt("> ") {
		case "1":
			identity, ok := c.login(ctx)
			if ok {
				if err := c.session(ctx, identity); err != nil {
					return err
				}
			}
		case "2":
			c.register(ctx)
		case "3":
			c.listUsers(ctx, false)
		case "4", "":
			return nil
		}
	}
}

func (c *console) login(ctx context.Context) (core.Identity, bool) {
	username := c.prompt("username: ")
	password := c.prompt("password: ")

	identity, _, err := c.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			fmt.Fprintln(c.out, "invalid username or password")
		} else {
			fmt.Fprintf(c.out, "login failed: %s\n", err)
		}
		return core.Identity{}, false
	}

	fmt.Fprintf(c.out, "welcome, %s!\n", identity.Username)
	return identity, true
}

func (c *console) register(ctx context.Context) {
	input := core.RegisterInput{
		Username: c.prompt("username: "),
		Password: c.prompt("password: "),
		Role:     c.prompt("role (admin or user): "),
	}

	if _, err := c.auth.Register(ctx, input); err != nil {
		switch {
		case errors.Is(err, core.ErrUserAlreadyExists):
			fmt.Fprintln(c.out, "a user with that name already exists")
		case errors.Is(err, core.ErrInvalidRole):
			fmt.Fprintln(c.out, "role must be admin or user")
		default:
			fmt.Fprintf(c.out, "registration failed: %s\n", err)
		}
		return
	}
	fmt.Fprintln(c.out, "user registered")
}

func (c *console) session(ctx context.Context, identity core.Identity) error {
	for {
		fmt.Fprintln(c.out, "\n1) add project  2) list projects  3) toggle completed  4) delete project")
		fmt.Fprintln(c.out, "5) export to csv  6) delete my account  7) manage users  8) logout")
		switch c.prompt("> ") {
		case "1":
			c.addProject(ctx, identity)
		case "2":
			c.listProjects(ctx, identity)
		case "3":
			if id, ok := c.promptID("project id: "); ok {
				completed := c.prompt("completed (y/n): ") == "y"
				if err := c.projects.SetCompleted(ctx, id, completed); err != nil {
					fmt.Fprintf(c.out, "update failed: %s\n", err)
				}
			}
		case "4":
			if id, ok := c.promptID("project id: "); ok && c.confirm("delete this project?") {
				if err := c.projects.Delete(ctx, id); err != nil {
					fmt.Fprintf(c.out, "delete failed: %s\n", err)
				}
			}
		case "5":
			c.export(ctx, identity)
		case "6":
			if c.confirm("delete your account and all of its projects?") {
				if err := c.auth.DeleteAccount(ctx, identity.ID); err != nil {
					fmt.Fprintf(c.out, "delete failed: %s\n", err)
					continue
				}
				fmt.Fprintln(c.out, "account deleted")
				return nil
			}
		case "7":
			if identity.Role != core.RoleAdmin {
				fmt.Fprintln(c.out, "admin only")
				continue
			}
			c.manageUsers(ctx)
		case "8", "":
			return nil
		}
	}
}

func (c *console) addProject(ctx context.Context, identity core.Identity) {
	input := core.ProjectInput{
		OwnerID:          identity.ID,
		Name:             c.prompt("name: "),
		Type:             c.prompt("type: "),
		StartDate:        c.prompt("start date (dd.mm.yyyy): "),
		EndDate:          c.prompt("end date (dd.mm.yyyy): "),
		AttachedFilePath: c.prompt("attached file path (optional): "),
	}

	if _, err := c.projects.Add(ctx, input); err != nil {
		fmt.Fprintf(c.out, "could not add project: %s\n", err)
		return
	}
	fmt.Fprintln(c.out, "project added")
}

func (c *console) listProjects(ctx context.Context, identity core.Identity) {
	deadlines, err := c.projects.ListWithDeadlines(ctx, identity.ID, time.Now())
	if err != nil {
		fmt.Fprintf(c.out, "could not list projects: %s\n", err)
		return
	}

	if len(deadlines) == 0 {
		fmt.Fprintln(c.out, "no projects yet")
		return
	}

	for _, d := range deadlines {
		p := d.Project
		done := " "
		if p.Completed {
			done = "x"
		}
		fmt.Fprintf(c.out, "[%s] #%d %s - %s - %s to %s\n", done, p.ID, p.Name, p.Type, p.StartDate, p.EndDate)
		if p.AttachedFilePath != "" {
			fmt.Fprintf(c.out, "      file: %s\n", p.AttachedFilePath)
		}
		if !p.Completed && d.Status != core.StatusOK {
			fmt.Fprintf(c.out, "      !! %s\n", d.Status)
		}
	}
}

func (c *console) export(ctx context.Context, identity core.Identity) {
	err := c.exporter.ExportCSV(ctx, identity.ID, c.exportPath)
	if err != nil {
		if errors.Is(err, core.ErrNothingToExport) {
			fmt.Fprintln(c.out, "no projects to export")
		} else {
			fmt.Fprintf(c.out, "export failed: %s\n", err)
		}
		return
	}
	fmt.Fprintf(c.out, "projects exported to %s\n", c.exportPath)
}

func (c *console) listUsers(ctx context.Context, withRoles bool) {
	users, err := c.auth.ListUsers(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "could not list users: %s\n", err)
		return
	}
	for _, user := range users {
		if withRoles {
			fmt.Fprintf(c.out, "#%d %s (%s)\n", user.ID, user.Username, user.Role)
		} else {
			fmt.Fprintf(c.out, "user: %s\n", user.Username)
		}
	}
}

func (c *console) manageUsers(ctx context.Context) {
	c.listUsers(ctx, true)
	raw := c.prompt("user id to delete (empty to go back): ")
	if raw == "" {
		return
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fmt.Fprintln(c.out, "not a valid id")
		return
	}
	if !c.confirm("delete this user and all of their projects?") {
		return
	}
	if err := c.auth.DeleteAccount(ctx, uint(id)); err != nil {
		fmt.Fprintf(c.out, "delete failed: %s\n", err)
		return
	}
	fmt.Fprintln(c.out, "user deleted")
}

func (c *console) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) promptID(label string) (uint, bool) {
	raw := c.prompt(label)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fmt.Fprintln(c.out, "not a valid id")
		return 0, false
	}
	return uint(id), true
}

func (c *console) confirm(question string) bool {
	return c.prompt(question+" (y/n): ") == "y"
}
