package model

import (
	"strconv"
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/m-mizutani/goerr/v2"
)

// RGB is a 24-bit colour
type RGB struct {
	R, G, B uint8
}

// Packed returns the colour as the integer Discord expects
func (c RGB) Packed() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// ParseHexRGB parses "#rrggbb" or "rrggbb"
func ParseHexRGB(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, goerr.New("colour must be 6 hex digits", goerr.V("value", s))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, goerr.Wrap(err, "invalid hex colour", goerr.V("value", s))
	}

	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func fromCatppuccin(c catppuccin.Color) RGB {
	return RGB{R: c.RGB[0], G: c.RGB[1], B: c.RGB[2]}
}

// Palette holds the colour used for each kind of notification. It is built
// once at startup and shared read-only by the mapper.
type Palette struct {
	Issue       RGB
	PullRequest RGB
	Discussion  RGB
	Repository  RGB
	Release     RGB
	Membership  RGB
	Commit      RGB
	Deleted     RGB
	Transferred RGB
	Error       RGB
}

// DefaultPalette is based on the Catppuccin Mocha flavour
func DefaultPalette() Palette {
	mocha := catppuccin.Mocha
	return Palette{
		Issue:       fromCatppuccin(mocha.Green()),
		PullRequest: fromCatppuccin(mocha.Blue()),
		Discussion:  fromCatppuccin(mocha.Peach()),
		Repository:  fromCatppuccin(mocha.Yellow()),
		Release:     fromCatppuccin(mocha.Mauve()),
		Membership:  fromCatppuccin(mocha.Base()),
		Commit:      fromCatppuccin(mocha.Teal()),
		Deleted:     fromCatppuccin(mocha.Red()),
		Transferred: fromCatppuccin(mocha.Pink()),
		Error:       fromCatppuccin(mocha.Red()),
	}
}

// WithOverrides returns a copy of p with the named entries replaced. Keys
// match the policy file: issue, pull_request, discussion, repository,
// release, membership, commit, deleted, transferred, error.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	slots := map[string]*RGB{
		"issue":        &p.Issue,
		"pull_request": &p.PullRequest,
		"discussion":   &p.Discussion,
		"repository":   &p.Repository,
		"release":      &p.Release,
		"membership":   &p.Membership,
		"commit":       &p.Commit,
		"deleted":      &p.Deleted,
		"transferred":  &p.Transferred,
		"error":        &p.Error,
	}

	for key, value := range overrides {
		slot, ok := slots[key]
		if !ok {
			return Palette{}, goerr.New("unknown palette key", goerr.V("key", key))
		}
		c, err := ParseHexRGB(value)
		if err != nil {
			return Palette{}, goerr.Wrap(err, "invalid palette entry", goerr.V("key", key))
		}
		*slot = c
	}

	return p, nil
}
