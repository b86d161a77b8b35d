package ebitensink

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// BlendMode selects how petals composite over what is already drawn.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // source * destination; only darkens
	BlendScreen                    // 1 - (1-src)*(1-dst); only brightens
	BlendBelow                     // destination-over (draw behind existing content)
)

var blendNames = [...]string{
	BlendNormal:   "normal",
	BlendAdd:      "add",
	BlendMultiply: "multiply",
	BlendScreen:   "screen",
	BlendBelow:    "below",
}

func (b BlendMode) String() string {
	if int(b) < len(blendNames) {
		return blendNames[b]
	}
	return fmt.Sprintf("BlendMode(%d)", b)
}

// ParseBlendMode looks a mode up by name. The empty string is BlendNormal.
func ParseBlendMode(name string) (BlendMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return BlendNormal, nil
	}
	for i, n := range blendNames {
		if n == name {
			return BlendMode(i), nil
		}
	}
	return BlendNormal, fmt.Errorf("ebitensink: unknown blend mode %q", name)
}

// EbitenBlend returns the ebiten.Blend value for b.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendBelow:
		return ebiten.BlendDestinationOver
	default:
		return ebiten.BlendSourceOver
	}
}
