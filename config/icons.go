package config

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
	"github.com/patrickmn/go-cache"
)

// IconCacheTTL is how long a decoded icon stays cached after its last load.
const IconCacheTTL = 10 * time.Minute

// Decoded icons shared by every File. Keys include the modification time, so
// an edited image is decoded again.
var icons = cache.New(IconCacheTTL, 2*IconCacheTTL)

// LoadIcons decodes the icon images in order. Relative paths are resolved
// against the directory of the loaded file.
func (f *File) LoadIcons() ([]image.Image, error) {
	out := make([]image.Image, len(f.Icons))
	for i, p := range f.Icons {
		if !filepath.IsAbs(p) && f.dir != "" {
			p = filepath.Join(f.dir, p)
		}
		img, err := loadIcon(p)
		if err != nil {
			return nil, fmt.Errorf("config: icons[%d]: %w", i, err)
		}
		out[i] = img
	}
	return out, nil
}

func loadIcon(path string) (image.Image, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	key := abs + "@" + strconv.FormatInt(info.ModTime().UnixNano(), 10)
	if v, ok := icons.Get(key); ok {
		if img, ok := v.(image.Image); ok {
			return img, nil
		}
	}

	buf, err := gg.LoadImage(abs)
	if err != nil {
		return nil, err
	}
	img := buf.ToStdImage()
	icons.SetDefault(key, img)
	ggchart.Logger().Debug("config: decoded icon", "path", abs, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// FlushIcons drops every cached icon.
func FlushIcons() {
	icons.Flush()
}
