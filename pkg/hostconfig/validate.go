package hostconfig

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

// ErrMissingRequiredConfig reports a host config that cannot supply the
// values the resolver depends on. It indicates a broken collaborator and
// is never defaulted away.
var ErrMissingRequiredConfig = errors.New("missing required host config")

const CodeMissingRequiredConfig = "MISSING_REQUIRED_CONFIG"

// Validate checks cfg before any conversion runs. Absent values are fine;
// present but unusable ones are not.
func Validate(cfg *HostConfig) error {
	if cfg == nil {
		return missingConfig(errors.New("host config is nil"))
	}
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.FontTypes),
		validation.Field(&cfg.ForegroundColors),
		validation.Field(&cfg.Link),
		validation.Field(&cfg.LineBreaks, validation.In(values(Policies)...)),
		validation.Field(&cfg.TextDefaults),
	)
	if err != nil {
		return missingConfig(err)
	}
	return nil
}

func missingConfig(err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %v", ErrMissingRequiredConfig, err),
		goerrors.CategoryValidation, "host config is missing required values").
		WithTextCode(CodeMissingRequiredConfig)
}

func (f FontTypesConfig) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Default),
		validation.Field(&f.Monospace),
	)
}

func (f FontTypeConfig) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FontSizes),
		validation.Field(&f.FontWeights),
	)
}

func (s FontSizes) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Small, validation.Min(0)),
		validation.Field(&s.Default, validation.Min(0)),
		validation.Field(&s.Medium, validation.Min(0)),
		validation.Field(&s.Large, validation.Min(0)),
		validation.Field(&s.ExtraLarge, validation.Min(0)),
	)
}

func (w FontWeights) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Lighter, validation.Min(0)),
		validation.Field(&w.Default, validation.Min(0)),
		validation.Field(&w.Bolder, validation.Min(0)),
	)
}

func (f ForegroundColors) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Default),
		validation.Field(&f.Dark),
		validation.Field(&f.Light),
		validation.Field(&f.Accent),
		validation.Field(&f.Good),
		validation.Field(&f.Warning),
		validation.Field(&f.Attention),
	)
}

func (p ColorPair) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Default, validation.By(hexColor)),
		validation.Field(&p.Subtle, validation.By(hexColor)),
	)
}

func (l LinkStyle) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Color, validation.In(values(Colors)...)),
	)
}

func (t TextDefaults) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Color, validation.In(values(Colors)...)),
		validation.Field(&t.Size, validation.In(values(Sizes)...)),
		validation.Field(&t.Weight, validation.In(values(Weights)...)),
		validation.Field(&t.FontType, validation.In(values(FontTypes)...)),
		validation.Field(&t.Alignment, validation.In(values(Alignments)...)),
	)
}

func hexColor(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, _, err := ParseHex(s); err != nil {
		return validation.NewError("hostconfig.color_invalid", err.Error())
	}
	return nil
}
