package bridge

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/flytaly/cardtext/pkg/card"
)

// ErrInvalidInlineKind is returned for rich text inlines that are neither
// plain text nor text runs.
var ErrInvalidInlineKind = errors.New("invalid inline kind")

const CodeInvalidInlineKind = "INVALID_INLINE_KIND"

func invalidInline(kind card.Kind) error {
	return goerrors.Wrap(fmt.Errorf("%w: %q", ErrInvalidInlineKind, kind),
		goerrors.CategoryValidation, "rich text inline must be plain text or a text run").
		WithTextCode(CodeInvalidInlineKind).
		WithMetadata(map[string]any{"kind": string(kind)})
}
