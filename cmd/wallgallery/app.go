package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dixieflatline76/wallgallery/config"
	"github.com/dixieflatline76/wallgallery/pkg/api"
	"github.com/dixieflatline76/wallgallery/pkg/download"
	"github.com/dixieflatline76/wallgallery/pkg/drive"
	"github.com/dixieflatline76/wallgallery/pkg/gallery"
	"github.com/dixieflatline76/wallgallery/pkg/session"
)

// searchWindow is how many wallpapers search and download scan, matching the web search page.
const searchWindow = 200

const httpTimeout = 30 * time.Second

type app struct {
	cfg     config.Config
	store   session.Store
	sess    *session.Session
	client  *api.Client
	fetcher *download.Fetcher
	out     io.Writer
}

func newApp(cfg config.Config, store session.Store, out io.Writer) *app {
	hc := &http.Client{Timeout: httpTimeout}
	ua := config.AppName + "/" + version()
	sess := session.New(store)

	return &app{
		cfg:     cfg,
		store:   store,
		sess:    sess,
		client:  api.New(cfg.APIBaseURL, sess, api.WithHTTPClient(hc), api.WithUserAgent(ua), api.WithRateLimit(cfg.RateLimit)),
		fetcher: download.NewFetcher(hc, ua),
		out:     out,
	}
}

func version() string {
	if config.AppVersion == "" {
		return "dev"
	}
	return config.AppVersion
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return flag.ErrHelp
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "categories":
		return a.categories(ctx)
	case "list":
		return a.list(ctx, rest)
	case "search":
		return a.search(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "register":
		return a.register(ctx, rest)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami(ctx)
	case "like":
		return a.like(ctx, rest)
	case "download":
		return a.download(ctx, rest)
	case "theme":
		return a.theme(rest)
	case "admin":
		return a.admin(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *app) categories(ctx context.Context) error {
	s := gallery.NewCategoryQuery(a.client).Load(ctx)
	if s.Err != "" {
		fmt.Fprintf(a.out, "warning: %s, showing defaults\n", s.Err)
	}
	for _, c := range s.Items {
		fmt.Fprintln(a.out, c)
	}
	return nil
}

// fetchPage runs one wallpaper query to completion.
func (a *app) fetchPage(ctx context.Context, p gallery.Params) (gallery.QueryState, error) {
	q := gallery.NewWallpaperQuery(a.client, a.cfg.PageSize)
	defer q.Close()

	select {
	case <-q.Set(p):
	case <-ctx.Done():
		return gallery.QueryState{}, ctx.Err()
	}

	s := q.Snapshot()
	if s.Err != "" {
		return s, fmt.Errorf("%s", s.Err)
	}
	return s, nil
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := a.flags("list")
	category := fs.String("category", gallery.AllCategory, "category name")
	skip := fs.Int("skip", 0, "number of wallpapers to skip")
	limit := fs.Int("limit", a.cfg.PageSize, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := a.fetchPage(ctx, gallery.Params{Category: *category, Skip: *skip, Limit: *limit})
	if err != nil {
		return err
	}
	a.printWallpapers(s.Items)
	if s.HasMore {
		fmt.Fprintf(a.out, "more available: -skip %d\n", *skip+len(s.Items))
	}
	return nil
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := a.flags("search")
	category := fs.String("category", gallery.AllCategory, "category name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := a.fetchPage(ctx, gallery.Params{Category: *category, Limit: searchWindow})
	if err != nil {
		return err
	}
	a.printWallpapers(gallery.Search(s.Items, strings.Join(fs.Args(), " ")))
	return nil
}

func (a *app) printWallpapers(items []gallery.Wallpaper) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "no wallpapers found")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tLIKES\tDOWNLOADS\tTAGS\tPREVIEW")
	for _, w := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			w.ID, w.Title, w.Category, w.LikesCount, w.DownloadCount, strings.Join(w.Tags, ","), w.ImageURL)
	}
	tw.Flush()
}

func (a *app) credentials(name string, args []string) (string, string, error) {
	fs := a.flags(name)
	email := fs.String("email", "", "account email")
	password := fs.String("password", os.Getenv("WALLGALLERY_PASSWORD"), "account password")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	return *email, *password, nil
}

func (a *app) login(ctx context.Context, args []string) error {
	email, password, err := a.credentials("login", args)
	if err != nil {
		return err
	}

	auth := gallery.NewAuth(a.client, a.sess)
	if res := auth.Login(ctx, email, password); !res.Success {
		return fmt.Errorf("%s", res.Error)
	}
	u := auth.User()
	fmt.Fprintf(a.out, "logged in as %s (%s)\n", u.Email, u.Role)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	email, password, err := a.credentials("register", args)
	if err != nil {
		return err
	}

	if res := gallery.NewAuth(a.client, a.sess).Register(ctx, email, password); !res.Success {
		return fmt.Errorf("%s", res.Error)
	}
	fmt.Fprintf(a.out, "registered %s, you can now log in\n", email)
	return nil
}

func (a *app) logout() error {
	gallery.NewAuth(a.client, a.sess).Logout()
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	auth := gallery.NewAuth(a.client, a.sess)
	auth.Start(ctx)
	if !auth.IsAuthenticated() {
		fmt.Fprintln(a.out, "not logged in")
		return nil
	}
	u := auth.User()
	fmt.Fprintf(a.out, "%s (%s) id=%s admin=%t\n", u.Email, u.Role, u.ID, auth.IsAdmin())
	return nil
}

func oneArg(args []string, what string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("expected exactly one %s", what)
	}
	return args[0], nil
}

func (a *app) like(ctx context.Context, args []string) error {
	id, err := oneArg(args, "wallpaper id")
	if err != nil {
		return err
	}
	res := gallery.NewActions(a.client).Like(ctx, id)
	if !res.Success {
		return fmt.Errorf("%s", res.Error)
	}
	fmt.Fprintln(a.out, res.Message)
	return nil
}

func (a *app) download(ctx context.Context, args []string) error {
	fs := a.flags("download")
	output := fs.String("o", "", "output file, default <id>.jpg")
	fit := fs.String("fit", "", "resize and crop to WIDTHxHEIGHT")
	category := fs.String("category", gallery.AllCategory, "category to look the wallpaper up in")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := oneArg(fs.Args(), "wallpaper id")
	if err != nil {
		return err
	}

	var width, height int
	if *fit != "" {
		if width, height, err = download.ParseSize(*fit); err != nil {
			return err
		}
	}

	s, err := a.fetchPage(ctx, gallery.Params{Category: *category, Limit: searchWindow})
	if err != nil {
		return err
	}
	w, ok := gallery.FindByID(s.Items, id)
	if !ok {
		return fmt.Errorf("wallpaper %s not found", id)
	}

	path := *output
	if path == "" {
		path = id + ".jpg"
	}
	if err := a.save(ctx, w.DownloadURL, path); err != nil {
		if fileID := drive.FileID(w.DownloadURL); drive.ValidFileID(fileID) {
			fmt.Fprintf(a.out, "open in a browser instead: %s\n", drive.ShareURL(fileID))
		}
		return err
	}

	if res := gallery.NewActions(a.client).Download(ctx, id); !res.Success {
		fmt.Fprintf(a.out, "warning: %s\n", res.Error)
	}

	if width > 0 {
		if err := download.Fit(path, path, width, height); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.out, "saved %s\n", path)
	return nil
}

func (a *app) save(ctx context.Context, url, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := a.fetcher.Fetch(ctx, url, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func (a *app) theme(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, session.LoadTheme(a.store, nil))
		return nil
	}

	var (
		t   session.Theme
		err error
	)
	if args[0] == "toggle" {
		t = session.LoadTheme(a.store, nil).Toggle()
	} else if t, err = session.ParseTheme(args[0]); err != nil {
		return err
	}
	if err := session.SaveTheme(a.store, t); err != nil {
		return err
	}
	fmt.Fprintln(a.out, t)
	return nil
}
