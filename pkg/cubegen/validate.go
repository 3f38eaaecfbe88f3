package cubegen

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// fieldOrder decides which field is reported when several are invalid.
var fieldOrder = []string{"name", "description", "query", "dimensions", "measures", "metadata"}

func isString(value any) error {
	if _, ok := value.(string); !ok {
		return errors.New("must be a string")
	}

	return nil
}

func isStringList(value any) error {
	items, ok := value.([]any)
	if !ok {
		if _, ok := value.([]string); ok {
			return nil
		}

		return errors.New("must be a list of strings")
	}

	for _, item := range items {
		if _, ok := item.(string); !ok {
			return errors.New("must be a list of strings")
		}
	}

	return nil
}

func isObject(value any) error {
	if value == nil {
		return nil
	}

	if _, ok := value.(map[string]any); !ok {
		return errors.New("must be an object")
	}

	return nil
}

// Validate checks the normalized object and decodes it into a CubeStructure.
func Validate(m map[string]any) (*CubeStructure, error) {
	err := validation.Validate(m,
		validation.Map(
			validation.Key("name", validation.By(isString)),
			validation.Key("description", validation.By(isString)),
			validation.Key("query", validation.By(isString)),
			validation.Key("dimensions", validation.By(isStringList)),
			validation.Key("measures", validation.By(isStringList)),
			validation.Key("metadata", validation.By(isObject)).Optional(),
		).AllowExtraKeys(),
	)
	if err != nil {
		return nil, validationFailure(err)
	}

	cube := &CubeStructure{}

	if err := mapstructure.Decode(m, cube); err != nil {
		return nil, &Error{
			Kind: ValidationFailure,
			Err:  errors.Wrap(err, "decoding data cube structure"),
		}
	}

	if cube.Dimensions == nil {
		cube.Dimensions = []string{}
	}

	if cube.Measures == nil {
		cube.Measures = []string{}
	}

	return cube, nil
}

func validationFailure(err error) error {
	var verrs validation.Errors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &Error{Kind: ValidationFailure, Err: err}
	}

	for _, f := range fieldOrder {
		if ferr, ok := verrs[f]; ok {
			return &Error{Kind: ValidationFailure, Field: f, Err: ferr}
		}
	}

	return &Error{Kind: ValidationFailure, Err: err}
}
