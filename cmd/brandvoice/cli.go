package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/brandvoice-backend/internal/app"
	"github.com/heartmarshall/brandvoice-backend/internal/config"
	"github.com/heartmarshall/brandvoice-backend/internal/domain"
	"github.com/heartmarshall/brandvoice-backend/internal/service/transform"
	"github.com/heartmarshall/brandvoice-backend/internal/service/user"
	"github.com/heartmarshall/brandvoice-backend/internal/transport/rest"
)

// appLoader builds the wired application. migrate forces auto-migration on.
type appLoader func(ctx context.Context, migrate bool) (*app.App, error)

func loadApp(ctx context.Context, migrate bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if migrate {
		cfg.Storage.AutoMigrate = true
	}
	return app.New(ctx, cfg, app.NewLogger(cfg.Log))
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(load appLoader) *cli.App {
	a := &cli.App{
		Name:    "brandvoice",
		Usage:   "Rewrite marketing copy in a brand's voice",
		Version: app.BuildVersion(),
		Commands: []*cli.Command{
			serveCmd(load),
			migrateCmd(load),
			transformCmd(load),
			regenerateCmd(load),
			historyCmd(load),
			analyticsCmd(load),
			voicesCmd(),
			userCmd(load),
		},
	}
	// Errors are returned to main instead of exiting inside the library.
	a.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return a
}

// withApp opens the application for the duration of fn.
func withApp(c *cli.Context, load appLoader, migrate bool, fn func(a *app.App) error) error {
	a, err := load(c.Context, migrate)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer func() {
		if err := a.Close(); err != nil {
			a.Log.Error("close application", slog.String("error", err.Error()))
		}
	}()
	return fn(a)
}

func serveCmd(load appLoader) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API until interrupted",
		Action: func(c *cli.Context) error {
			return withApp(c, load, false, func(a *app.App) error {
				return app.Serve(c.Context, a.Config.Server, a.Handler(), a.Log)
			})
		},
	}
}

func migrateCmd(load appLoader) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations for the configured storage driver",
		Action: func(c *cli.Context) error {
			return withApp(c, load, true, func(a *app.App) error {
				if a.Store.Name == config.DriverMemory {
					return outputJSON(c.App.Writer, map[string]string{"status": "skipped", "driver": a.Store.Name})
				}
				return outputJSON(c.App.Writer, map[string]string{"status": "migrated", "driver": a.Store.Name})
			})
		},
	}
}

func transformFlags(withBrand bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "Text to transform (read from stdin when omitted)"},
		&cli.StringFlag{Name: "content-type", Aliases: []string{"c"}, Value: string(domain.ContentTypeSocialMedia), Usage: contentTypeUsage()},
	}
	if withBrand {
		flags = append(flags, &cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: brandUsage()})
	}
	return flags
}

func transformCmd(load appLoader) *cli.Command {
	flags := append(transformFlags(true),
		&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "Transform into every brand voice"},
	)
	return &cli.Command{
		Name:  "transform",
		Usage: "Rewrite text in one brand voice, or all of them with --all",
		Flags: flags,
		Action: func(c *cli.Context) error {
			text, err := inputText(c)
			if err != nil {
				return outputError(err)
			}
			ct := domain.ContentType(c.String("content-type"))

			return withApp(c, load, false, func(a *app.App) error {
				if c.Bool("all") {
					batch, err := a.Transform.TransformAll(c.Context, transform.TransformAllInput{Text: text, ContentType: ct})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(c.App.Writer, rest.BatchBody(batch))
				}

				result, err := a.Transform.TransformOne(c.Context, transform.TransformInput{
					Text:        text,
					BrandVoice:  domain.BrandVoice(c.String("brand")),
					ContentType: ct,
				})
				if err != nil {
					return outputError(err)
				}
				return outputJSON(c.App.Writer, rest.ResultBody(*result))
			})
		},
	}
}

func regenerateCmd(load appLoader) *cli.Command {
	return &cli.Command{
		Name:  "regenerate",
		Usage: "Produce a fresh rewrite for the same input",
		Flags: transformFlags(true),
		Action: func(c *cli.Context) error {
			text, err := inputText(c)
			if err != nil {
				return outputError(err)
			}
			return withApp(c, load, false, func(a *app.App) error {
				result, err := a.Transform.Regenerate(c.Context, transform.TransformInput{
					Text:        text,
					BrandVoice:  domain.BrandVoice(c.String("brand")),
					ContentType: domain.ContentType(c.String("content-type")),
				})
				if err != nil {
					return outputError(err)
				}
				return outputJSON(c.App.Writer, rest.ResultBody(*result))
			})
		},
	}
}

func historyCmd(load appLoader) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recent transformations, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "Maximum rows (server default when 0)"},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, load, false, func(a *app.App) error {
				list, err := a.Transform.ListTransformations(c.Context, c.Int("limit"))
				if err != nil {
					return outputError(err)
				}
				return outputJSON(c.App.Writer, rest.HistoryBody(list))
			})
		},
	}
}

func analyticsCmd(load appLoader) *cli.Command {
	return &cli.Command{
		Name:  "analytics",
		Usage: "Show usage counters and the most popular voices and content types",
		Action: func(c *cli.Context) error {
			return withApp(c, load, false, func(a *app.App) error {
				summary, err := a.Analytics.Summary(c.Context)
				if err != nil {
					return outputError(err)
				}
				return outputJSON(c.App.Writer, rest.AnalyticsBody(summary))
			})
		},
	}
}

func voicesCmd() *cli.Command {
	return &cli.Command{
		Name:  "voices",
		Usage: "List the available brand voices and content types",
		Action: func(c *cli.Context) error {
			return outputJSON(c.App.Writer, rest.CatalogBody())
		},
	}
}

func userCmd(load appLoader) *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage user records",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, EnvVars: []string{"BRANDVOICE_PASSWORD"}},
				},
				Action: func(c *cli.Context) error {
					return withApp(c, load, false, func(a *app.App) error {
						u, err := a.Users.Create(c.Context, user.CreateInput{
							Username: c.String("username"),
							Password: c.String("password"),
						})
						if err != nil {
							return outputError(err)
						}
						return outputJSON(c.App.Writer, toUserOutput(u))
					})
				},
			},
			{
				Name:  "get",
				Usage: "Look up a user by id or username",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id"},
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}},
				},
				Action: func(c *cli.Context) error {
					if !c.IsSet("id") && c.String("username") == "" {
						return cli.Exit("one of --id or --username is required", 1)
					}
					return withApp(c, load, false, func(a *app.App) error {
						var (
							u   *domain.User
							err error
						)
						if c.IsSet("id") {
							u, err = a.Users.Get(c.Context, c.Int64("id"))
						} else {
							u, err = a.Users.GetByUsername(c.Context, c.String("username"))
						}
						if err != nil {
							return outputError(err)
						}
						return outputJSON(c.App.Writer, toUserOutput(u))
					})
				},
			},
			{
				Name:  "verify",
				Usage: "Check a username and password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, EnvVars: []string{"BRANDVOICE_PASSWORD"}},
				},
				Action: func(c *cli.Context) error {
					return withApp(c, load, false, func(a *app.App) error {
						u, err := a.Users.Authenticate(c.Context, c.String("username"), c.String("password"))
						if err != nil {
							return outputError(err)
						}
						return outputJSON(c.App.Writer, toUserOutput(u))
					})
				},
			},
		},
	}
}

// userOutput omits the password hash.
type userOutput struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

func toUserOutput(u *domain.User) userOutput {
	return userOutput{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// inputText returns --text, or stdin when the flag is absent and input is piped.
func inputText(c *cli.Context) (string, error) {
	if c.IsSet("text") {
		return c.String("text"), nil
	}
	if !stdinHasData(c.App.Reader) {
		return "", errors.New("text is required: pass --text or pipe it via stdin")
	}
	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// stdinHasData reports whether r is piped input rather than a terminal.
// Readers that are not files (tests) always count as piped.
func stdinHasData(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats err for the terminal. Validation messages are shown
// as-is; generation failures keep the backend detail, since operators need it.
func outputError(err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return cli.Exit("invalid input: "+ve.Message(), 2)
	case errors.Is(err, domain.ErrUnauthorized):
		return cli.Exit("invalid username or password", 3)
	case errors.Is(err, domain.ErrNotFound):
		return cli.Exit("not found", 4)
	default:
		return cli.Exit(err.Error(), 1)
	}
}

func brandUsage() string {
	ids := make([]string, 0, len(domain.AllBrandVoices()))
	for _, bv := range domain.AllBrandVoices() {
		ids = append(ids, string(bv))
	}
	return "Brand voice: " + strings.Join(ids, ", ")
}

func contentTypeUsage() string {
	ids := make([]string, 0, len(domain.AllContentTypes()))
	for _, ct := range domain.AllContentTypes() {
		ids = append(ids, string(ct))
	}
	return "Content type: " + strings.Join(ids, ", ")
}
