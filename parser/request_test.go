package parser

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanDivider(t *testing.T) {
	input := `{"op": "SELECT", "table": "a"};
{"op": "INSERT", "table": "a", "columns": ["s"], "rows": [["x;y"], ["quote \" ; inside"]]};
{"op": "SELECT", "table": "b"}`

	s := bufio.NewScanner(strings.NewReader(input))
	s.Split(PlanDivider)

	var tokens []string
	for s.Scan() {
		tokens = append(tokens, strings.TrimSpace(s.Text()))
	}
	require.NoError(t, s.Err())
	require.Equal(t, []string{
		`{"op": "SELECT", "table": "a"}`,
		`{"op": "INSERT", "table": "a", "columns": ["s"], "rows": [["x;y"], ["quote \" ; inside"]]}`,
		`{"op": "SELECT", "table": "b"}`,
	}, tokens)
}

func TestPlanDividerNeedsMoreData(t *testing.T) {
	advance, token, err := PlanDivider([]byte(`{"op": "SEL`), false)
	require.NoError(t, err)
	require.Zero(t, advance)
	require.Nil(t, token)

	advance, token, err = PlanDivider(nil, true)
	require.NoError(t, err)
	require.Zero(t, advance)
	require.Nil(t, token)
}
