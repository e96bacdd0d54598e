package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phex-cli/phex/internal/metadata"
	"github.com/phex-cli/phex/internal/subst"
)

// metaFlags are the flags shared by render and placeholders for loading
// image metadata and overriding environment-derived placeholder values.
type metaFlags struct {
	meta     string // path to a TOML metadata sidecar
	username string
	home     string
	pictures string
	desktop  string
}

func (f *metaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.meta, "meta", "m", "", "Path to a TOML metadata sidecar file")
	cmd.Flags().StringVar(&f.username, "username", "", "Override the username placeholder")
	cmd.Flags().StringVar(&f.home, "home", "", "Override the home folder placeholder")
	cmd.Flags().StringVar(&f.pictures, "pictures", "", "Override the pictures folder placeholder")
	cmd.Flags().StringVar(&f.desktop, "desktop", "", "Override the desktop folder placeholder")
}

// loadImage builds the image record for a command invocation. A sidecar
// wins over the file argument; when both are given the file argument
// still supplies the path and filename.
func (f *metaFlags) loadImage(file string) (metadata.Image, error) {
	switch {
	case f.meta != "":
		img, err := metadata.Load(f.meta)
		if err != nil {
			return metadata.Image{}, fmt.Errorf("load metadata: %w", err)
		}
		if file != "" {
			img.Path = file
			img.Filename = filepath.Base(file)
		}
		return img, nil

	case file != "":
		img, err := metadata.FromFile(file)
		if err != nil {
			return metadata.Image{}, fmt.Errorf("read file: %w", err)
		}
		return img, nil

	default:
		return metadata.Image{}, nil
	}
}

// options builds substitution options from config overrides, with
// command line flags taking precedence.
func (f *metaFlags) options() subst.Options {
	opts := subst.Options{
		Username:    cfg.Overrides.Username,
		HomeDir:     cfg.Overrides.HomeDir,
		PicturesDir: cfg.Overrides.PicturesDir,
		DesktopDir:  cfg.Overrides.DesktopDir,
	}
	if f.username != "" {
		opts.Username = f.username
	}
	if f.home != "" {
		opts.HomeDir = f.home
	}
	if f.pictures != "" {
		opts.PicturesDir = f.pictures
	}
	if f.desktop != "" {
		opts.DesktopDir = f.desktop
	}
	return opts
}
