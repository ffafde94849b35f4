package loop

import (
	"fmt"

	"github.com/tomz197/bitmappers/internal/config"
	"github.com/tomz197/bitmappers/internal/font"
	"github.com/tomz197/bitmappers/internal/imageio"
	"github.com/tomz197/bitmappers/internal/raster"
)

// OptionsFromEnv builds session options from the BITMAPPERS_* variables:
//
//	BITMAPPERS_DEMO         first demo
//	BITMAPPERS_FG, _BG      screen colors as #rrggbb
//	BITMAPPERS_IMAGE        image file for the dither demo
//	BITMAPPERS_FONT_XBM     XBM glyph atlas for the font demo
//	BITMAPPERS_FONT_WIDTH   its cell size, default 8x8
//	BITMAPPERS_FONT_HEIGHT
func OptionsFromEnv() (Options, error) {
	var opts Options
	var err error

	opts.Demo = config.GetEnv("BITMAPPERS_DEMO", "")
	if opts.Foreground, err = config.GetEnvColor("BITMAPPERS_FG", raster.Black); err != nil {
		return opts, err
	}
	if opts.Background, err = config.GetEnvColor("BITMAPPERS_BG", raster.White); err != nil {
		return opts, err
	}

	if path := config.GetEnv("BITMAPPERS_IMAGE", ""); path != "" {
		if opts.Demos.Image, err = imageio.Open(path); err != nil {
			return opts, fmt.Errorf("BITMAPPERS_IMAGE: %w", err)
		}
	}

	if path := config.GetEnv("BITMAPPERS_FONT_XBM", ""); path != "" {
		gw, err := config.GetEnvInt("BITMAPPERS_FONT_WIDTH", 8)
		if err != nil {
			return opts, err
		}
		gh, err := config.GetEnvInt("BITMAPPERS_FONT_HEIGHT", 8)
		if err != nil {
			return opts, err
		}
		if opts.Demos.Font, err = font.FromXBM(path, gw, gh); err != nil {
			return opts, fmt.Errorf("BITMAPPERS_FONT_XBM: %w", err)
		}
	}
	return opts, nil
}
