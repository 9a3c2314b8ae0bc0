package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-auth/internal/adapter"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/models"
)

const usage = `usage: client [-a address] [-timeout d] [-c config.json] <command> [flags]

commands:
  register  -u username -p password   create an account, prints its id
  login     -u username -p password   prints a session token
  protected -t token                  prints the username the token belongs to
  protected -u username -p password   logs in first, then calls the resource
  version                             prints the server version
  build                               prints client build information`

// ErrUsage is returned for a missing or unknown command. Its text is the
// usage summary.
var ErrUsage = errors.New(usage)

// App runs a single client command.
type App struct {
	serverAdapter adapter.ServerAdapter
	buildInfo     models.AppBuildInfo
	args          []string
	out           io.Writer

	logger *logger.Logger
}

// NewApp returns an App that runs the command in args (name first, then its
// flags) and prints the result to out.
func NewApp(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, args []string, out io.Writer, logger *logger.Logger) *App {
	return &App{
		serverAdapter: serverAdapter,
		buildInfo:     buildInfo,
		args:          args,
		out:           out,
		logger:        logger,
	}
}

func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	args, out, serverAdapter := a.args, a.out, a.serverAdapter
	if len(args) == 0 {
		return ErrUsage
	}
	a.logger.Debug().Str("command", args[0]).Msg("running command")

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	token := fs.String("t", "", "bearer token")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w\n\n%s", err, usage)
	}

	creds := models.Credentials{Username: *username, Password: *password}

	switch args[0] {
	case "register":
		id, err := serverAdapter.Register(ctx, creds)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		fmt.Fprintln(out, id)

	case "login":
		signed, err := serverAdapter.Login(ctx, creds)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		fmt.Fprintln(out, signed)

	case "protected":
		if *token != "" {
			serverAdapter.SetToken(*token)
		} else if _, err := serverAdapter.Login(ctx, creds); err != nil {
			return fmt.Errorf("login: %w", err)
		}

		name, err := serverAdapter.Protected(ctx)
		if err != nil {
			return fmt.Errorf("protected: %w", err)
		}
		fmt.Fprintln(out, name)

	case "version":
		version, err := serverAdapter.Version(ctx)
		if err != nil {
			return fmt.Errorf("version: %w", err)
		}
		fmt.Fprintln(out, version)

	case "build":
		fmt.Fprintf(out, "Build version: %s\n", a.buildInfo.BuildVersion())
		fmt.Fprintf(out, "Build date: %s\n", a.buildInfo.BuildDate())
		fmt.Fprintf(out, "Build commit: %s\n", a.buildInfo.BuildCommit())

	default:
		return fmt.Errorf("unknown command %q\n\n%w", args[0], ErrUsage)
	}

	return nil
}
