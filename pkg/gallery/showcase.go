package gallery

import (
	"context"

	"github.com/dixieflatline76/wallgallery/util/log"
	"golang.org/x/sync/errgroup"
)

// maxShowcaseFetches bounds concurrent category requests.
const maxShowcaseFetches = 4

// Row is one category strip of a showcase.
type Row struct {
	Category string
	Items    []Wallpaper
	Err      string
}

// Showcase loads the first n wallpapers of each category concurrently, in the order given.
// A failing category yields an empty row with Err set; the showcase itself only fails when ctx does.
func Showcase(ctx context.Context, src WallpaperSource, categories []string, n int) ([]Row, error) {
	if n <= 0 {
		n = DefaultPageSize
	}
	rows := make([]Row, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxShowcaseFetches)
	for i, cat := range categories {
		i, cat := i, cat
		g.Go(func() error {
			rows[i].Category = cat
			rows[i].Items = []Wallpaper{}

			var err error
			if IsAll(cat) {
				raws, e := src.ListWallpapers(gctx, 0, n)
				rows[i].Items, err = FromRawList(raws), e
			} else {
				raws, e := src.ListWallpapersByCategory(gctx, cat, 0, n)
				rows[i].Items, err = FromRawList(raws), e
			}
			if err != nil {
				log.Printf("showcase row %q failed: %v", cat, err)
				rows[i].Items = []Wallpaper{}
				rows[i].Err = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
