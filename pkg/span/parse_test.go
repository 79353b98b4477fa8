package span

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	cases := map[string]struct {
		in          string
		want        Span[int]
		expectedErr bool
	}{
		"ClosedOpen":        {in: "[1, 5)", want: FromRange[int](ClosedOpen(1, 5))},
		"NoSpaces":          {in: "(1,5]", want: FromRange[int](OpenClosed(1, 5))},
		"Padded":            {in: "  [ -3 , 7 ]  ", want: FromRange[int](Closed(-3, 7))},
		"UnboundedSymbol":   {in: "(-∞, ∞)", want: FromRange[int](All[int]())},
		"UnboundedPlus":     {in: "(-∞, +∞)", want: FromRange[int](All[int]())},
		"UnboundedWord":     {in: "(-inf, 10]", want: FromRange[int](AtMost(10))},
		"UnboundedWordEnd":  {in: "(3, INF)", want: FromRange[int](GreaterThan(3))},
		"Empty":             {in: "", expectedErr: true},
		"NoComma":           {in: "[1 5]", expectedErr: true},
		"BadStart":          {in: "{1, 5]", expectedErr: true},
		"BadEnd":            {in: "[1, 5}", expectedErr: true},
		"BadKey":            {in: "[a, 5]", expectedErr: true},
		"ClosedUnbounded":   {in: "[-∞, 5]", expectedErr: true},
		"ClosedUnboundedHi": {in: "[1, ∞]", expectedErr: true},
		"MissingEnd":        {in: "[1,", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseInt(tc.in)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range allSpans(-1, 1) {
		got, err := ParseInt(s.String())
		require.NoError(t, err, s.String())
		assert.Equal(t, s, got)
	}
}

func TestParseCustomKey(t *testing.T) {
	got, err := Parse("[1.5, 2.5)", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	require.NoError(t, err)
	assert.Equal(t, New(LeftIncluded(1.5), RightExcluded(2.5)), got)
}
