package model

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexColor is an NRGBA color that reads and writes as "#rrggbb" or
// "#rrggbbaa" in config files and environment variables.
type HexColor color.NRGBA

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (HexColor, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return HexColor{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexColor{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustHex is ParseHexColor for literals known to be valid.
func MustHex(s string) HexColor {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NRGBA returns the color as a color.NRGBA.
func (c HexColor) NRGBA() color.NRGBA { return color.NRGBA(c) }

func (c HexColor) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Decode implements envconfig.Decoder.
func (c *HexColor) Decode(value string) error {
	parsed, err := ParseHexColor(value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c HexColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *HexColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return c.Decode(s)
}
