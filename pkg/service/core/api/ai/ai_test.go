package ai_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/securebi/securebi-backend/pkg/cubegen"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service/core/api/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGenerator struct {
	cube *cubegen.CubeStructure
	err  error
}

func (g *staticGenerator) Generate(_ context.Context, _ cubegen.Request) (*cubegen.CubeStructure, error) {
	return g.cube, g.err
}

type staticModel struct {
	answer string
	err    error
	prompt string
}

func (m *staticModel) Generate(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt

	return m.answer, m.err
}

func (m *staticModel) Backend() string {
	return "static"
}

func TestCubeGenerationAPI_GenerateCube(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		expectKind  errs.Kind
		expectParam errs.Parameter
	}{
		{
			name:       "missing input",
			err:        errors.Wrap(cubegen.ErrMissingInput, "building prompt"),
			expectKind: errs.InvalidRequest,
		},
		{
			name:       "transport failure",
			err:        &cubegen.Error{Kind: cubegen.TransportFailure, Err: fmt.Errorf("deadline exceeded")},
			expectKind: errs.IO,
		},
		{
			name:       "parse failure",
			err:        &cubegen.Error{Kind: cubegen.ParseFailure, Err: fmt.Errorf("no JSON object"), Excerpt: "sorry"},
			expectKind: errs.InvalidRequest,
		},
		{
			name:        "validation failure",
			err:         &cubegen.Error{Kind: cubegen.ValidationFailure, Field: "query", Err: fmt.Errorf("cannot be blank")},
			expectKind:  errs.InvalidRequest,
			expectParam: "query",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := ai.NewCubeGenerationAPI(&staticGenerator{err: tc.err})

			_, err := api.GenerateCube(context.Background(), cubegen.Request{})
			require.Error(t, err)
			assert.True(t, errs.KindIs(tc.expectKind, err), "got kind of %v", err)

			if tc.expectParam != "" {
				var e *errs.Error
				require.True(t, errors.As(err, &e))
				assert.Equal(t, tc.expectParam, e.Param)
			}
		})
	}
}

func TestCubeGenerationAPI_GenerateCube_Success(t *testing.T) {
	cube := &cubegen.CubeStructure{
		Name:       "Sales by region",
		Query:      "SELECT region, SUM(amount) AS total FROM sales GROUP BY region",
		Dimensions: []string{"region"},
		Measures:   []string{"total"},
	}

	got, err := ai.NewCubeGenerationAPI(&staticGenerator{cube: cube}).GenerateCube(context.Background(), cubegen.Request{})
	require.NoError(t, err)
	assert.Equal(t, cube, got)
}

func TestChatAPI_Chat(t *testing.T) {
	model := &staticModel{answer: "Revenue is up."}

	got, err := ai.NewChatAPI(model).Chat(context.Background(), "How is revenue?")
	require.NoError(t, err)
	assert.Equal(t, "Revenue is up.", got)
	assert.Equal(t, "How is revenue?", model.prompt)

	_, err = ai.NewChatAPI(&staticModel{err: fmt.Errorf("quota exceeded")}).Chat(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, errs.KindIs(errs.IO, err))
}
