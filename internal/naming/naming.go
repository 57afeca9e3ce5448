// Package naming gives palettes a short human-readable name.
package naming

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
)

// Fallback is used whenever no name can be obtained.
const Fallback = "Vibrant Color Palette"

// ErrNamingUnavailable reports that the namer could not produce a name.
var ErrNamingUnavailable = errors.New("palette naming unavailable")

// Namer produces a name for a list of hex colors.
type Namer interface {
	Name(ctx context.Context, colors []string) (string, error)
}

// Resolve asks namer for a name within timeout. It always returns a usable
// name; a non-nil error means the fallback was substituted.
func Resolve(ctx context.Context, namer Namer, colors []string, timeout time.Duration) (string, error) {
	if namer == nil {
		return Fallback, ErrNamingUnavailable
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	name, err := namer.Name(ctx, colors)
	if err != nil {
		return Fallback, fmt.Errorf("%w: %w", ErrNamingUnavailable, err)
	}

	name = Clean(name)
	if name == "" {
		return Fallback, fmt.Errorf("%w: empty name", ErrNamingUnavailable)
	}
	return name, nil
}

// Clean strips quotes and surrounding whitespace from a raw name.
func Clean(raw string) string {
	return strings.TrimSpace(strings.NewReplacer(`"`, "", "'", "").Replace(raw))
}

// LabelNamer names a palette after its harmony rule, without any network call.
type LabelNamer struct {
	Rule harmony.Rule
}

// Name implements Namer.
func (n LabelNamer) Name(ctx context.Context, _ []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return n.Rule.Label() + " Palette", nil
}
