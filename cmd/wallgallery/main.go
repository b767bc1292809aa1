package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"

	"github.com/dixieflatline76/wallgallery/config"
	"github.com/dixieflatline76/wallgallery/pkg/session"
	"github.com/dixieflatline76/wallgallery/util/log"
	"github.com/joho/godotenv"
)

const usage = `usage: wallgallery [-token-store keyring|file] <command> [arguments]

commands:
  categories                        list categories
  list [-category] [-skip] [-limit] list wallpapers
  search <query>                    search titles, categories and tags
  login -email -password            sign in
  register -email -password         create an account
  logout                            sign out
  whoami                            show the signed in user
  like <id>                         like or unlike a wallpaper
  download [-o file] [-fit WxH] <id>
  theme [dark|light|toggle]         show or set the theme
  admin categories|create|list|upload
`

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run parses the global flags, builds the app and dispatches the command.
func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("wallgallery", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { fmt.Fprint(out, usage) }
	tokenStore := fs.String("token-store", "keyring", "where the access token is kept: keyring or file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openStore(*tokenStore)
	if err != nil {
		return err
	}

	a := newApp(config.Load(), store, out)
	return a.dispatch(ctx, fs.Args())
}

// openStore keeps non-secret state in the settings file and, by default, the token in the OS keyring.
func openStore(kind string) (session.Store, error) {
	file, err := session.NewFileStore(config.GetFilename())
	if err != nil {
		return nil, err
	}

	switch kind {
	case "file":
		return file, nil
	case "keyring":
		username := "default"
		if u, err := user.Current(); err == nil {
			username = u.Username
		}
		return session.Layered{Secrets: session.NewKeyringStore(username), Prefs: file}, nil
	default:
		return nil, fmt.Errorf("unknown token store %q", kind)
	}
}
