package config

import (
	"fmt"
	"strings"

	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

// GridPreset is a named width/height pair for the --size flag.
type GridPreset struct {
	Name          string
	Width, Height int
}

// Named grid-size presets. "custom" sizes bypass these and are parsed
// directly from --size WxH by the caller.
var (
	Small  = GridPreset{Name: "small", Width: 8, Height: 8}
	Medium = GridPreset{Name: "medium", Width: 16, Height: 16}
	Large  = GridPreset{Name: "large", Width: 32, Height: 32}
)

var gridPresets = map[string]GridPreset{
	Small.Name:  Small,
	Medium.Name: Medium,
	Large.Name:  Large,
}

// GridPresetByName looks up a named grid preset, case-insensitively.
func GridPresetByName(name string) (GridPreset, error) {
	preset, ok := gridPresets[strings.ToLower(name)]
	if !ok {
		return GridPreset{}, fmt.Errorf("config: unknown grid preset %q", name)
	}
	return preset, nil
}

// KernelPreset is a named kernel width/height pair for the --kernel flag.
type KernelPreset struct {
	Name string
	W, H int
}

var (
	VonNeumannPlus = KernelPreset{Name: "vonneumannplus", W: 3, H: 3}
	Wide           = KernelPreset{Name: "wide", W: 5, H: 5}
)

var kernelPresets = map[string]KernelPreset{
	VonNeumannPlus.Name: VonNeumannPlus,
	Wide.Name:           Wide,
}

// KernelPresetByName looks up a named kernel preset, case-insensitively.
func KernelPresetByName(name string) (KernelPreset, error) {
	preset, ok := kernelPresets[strings.ToLower(name)]
	if !ok {
		return KernelPreset{}, fmt.Errorf("config: unknown kernel preset %q", name)
	}
	return preset, nil
}

// ParseBorderPolicy parses the --border flag's value.
func ParseBorderPolicy(s string) (wfc.BorderPolicy, error) {
	switch strings.ToLower(s) {
	case "cutoff", "":
		return wfc.Cutoff, nil
	case "wrapping", "wrap":
		return wfc.Wrapping, nil
	default:
		return wfc.Cutoff, fmt.Errorf("config: unknown border policy %q (want \"cutoff\" or \"wrapping\")", s)
	}
}
