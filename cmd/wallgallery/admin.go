package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/dixieflatline76/wallgallery/pkg/gallery"
)

func (a *app) admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("admin needs a subcommand: categories, create, list or upload")
	}

	auth := gallery.NewAuth(a.client, a.sess)
	auth.Start(ctx)
	if !auth.IsAdmin() {
		return fmt.Errorf("admin commands need an administrator login")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "categories":
		return a.adminCategories(ctx)
	case "create":
		return a.adminCreate(ctx, rest)
	case "list":
		return a.adminList(ctx)
	case "upload":
		return a.adminUpload(ctx, rest)
	default:
		return fmt.Errorf("unknown admin command %q", cmd)
	}
}

func (a *app) adminCategories(ctx context.Context) error {
	cats, err := a.client.ListAdminCategories(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	return tw.Flush()
}

func (a *app) adminCreate(ctx context.Context, args []string) error {
	name, err := oneArg(args, "category name")
	if err != nil {
		return err
	}
	cat, err := a.client.CreateCategory(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created %s (%s)\n", cat.Name, cat.ID)
	return nil
}

func (a *app) adminList(ctx context.Context) error {
	raws, err := a.client.ListAllWallpapers(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tCATEGORY ID\tUPLOADED\tLIKES\tDOWNLOADS")
	for _, r := range raws {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			r.ID, r.Title, r.CategoryName, r.CategoryID.Or("-"), r.UploadDate.Or("-"), max(r.LikesCount, 0), max(r.DownloadCount, 0))
	}
	return tw.Flush()
}

func (a *app) adminUpload(ctx context.Context, args []string) error {
	fs := a.flags("upload")
	title := fs.String("title", "", "wallpaper title")
	description := fs.String("description", "", "wallpaper description")
	categoryID := fs.String("category-id", "", "category id, see admin categories")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := oneArg(fs.Args(), "image file")
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t := *title
	if t == "" {
		t = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	res, err := a.client.UploadWallpaper(ctx, t, *description, *categoryID, filepath.Base(path), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: id=%s drive=%s\n", res.Message, res.WallpaperID, res.FileID)
	return nil
}
