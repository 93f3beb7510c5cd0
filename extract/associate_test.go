package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cdox/types"
)

// associateHeuristic runs the pipeline with an empty declaration index,
// so association relies on the line heuristic alone.
func associateHeuristic(t *testing.T, src string) []types.Comment {
	t.Helper()
	buf := []byte(src)
	spans, err := scan(buf)
	require.NoError(t, err)
	lt := newLineTable(buf)
	comments := classify(buf, spans, "test.c", lt)
	associate(comments, newDeclIndex(), lt)
	return comments
}

func TestAssociateForwardNearest(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *types.Declaration
	}{
		{
			name: "doc_before_function",
			src:  "/** @brief add */\nint add(int x, int y) {\n",
			want: &types.Declaration{Kind: "function", Name: "add", Line: 2},
		},
		{
			name: "skips_blank_lines",
			src:  "// docs\n\n\nint mul(int a, int b);\n",
			want: &types.Declaration{Kind: "function", Name: "mul", Line: 4},
		},
		{
			name: "macro",
			src:  "/** @def MAX */\n#define MAX 10\n",
			want: &types.Declaration{Kind: "macro", Name: "MAX", Line: 2},
		},
		{
			name: "struct",
			src:  "// a 2D point\nstruct Point {\n",
			want: &types.Declaration{Kind: "struct", Name: "Point", Line: 2},
		},
		{
			name: "class",
			src:  "// sample\nclass SampleClass {\n",
			want: &types.Declaration{Kind: "class", Name: "SampleClass", Line: 2},
		},
		{
			name: "enum",
			src:  "// colors\nenum Color { RED };\n",
			want: &types.Declaration{Kind: "enum", Name: "Color", Line: 2},
		},
		{
			name: "anonymous_typedef_struct",
			src:  "// docs\ntypedef struct {\n",
			want: &types.Declaration{Kind: "typedef", Line: 2},
		},
		{
			name: "plain_typedef",
			src:  "// docs\ntypedef unsigned long word_t;\n",
			want: &types.Declaration{Kind: "typedef", Name: "word_t", Line: 2},
		},
		{
			name: "variable_with_initializer",
			src:  "// the answer\nint answer = 42;\n",
			want: &types.Declaration{Kind: "variable", Name: "answer", Line: 2},
		},
		{
			name: "namespace",
			src:  "// impl details\nnamespace detail {\n",
			want: &types.Declaration{Kind: "namespace", Name: "detail", Line: 2},
		},
		{
			name: "next_line_is_not_a_declaration",
			src:  "// note\nreturn 0;\n",
			want: nil,
		},
		{
			name: "control_flow_is_not_a_declaration",
			src:  "// guard\nif (x > 0) {\n",
			want: nil,
		},
		{
			name: "no_following_line",
			src:  "// dangling\n",
			want: nil,
		},
		{
			name: "preprocessor_conditional_is_not_a_declaration",
			src:  "// cfg\n#endif\n",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			comments := associateHeuristic(t, tc.src)
			require.Len(t, comments, 1)
			require.Equal(t, tc.want, comments[0].Decl)
		})
	}
}

func TestAssociateSkipsInterveningComments(t *testing.T) {
	src := "// first\n// second\n\n/* third */\nint mul(int a, int b);\n"
	comments := associateHeuristic(t, src)
	require.Len(t, comments, 3)

	want := &types.Declaration{Kind: "function", Name: "mul", Line: 5}
	for _, c := range comments {
		require.Equal(t, want, c.Decl)
	}
}

func TestAssociateTrailing(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *types.Declaration
	}{
		{
			name: "trailing_line_comment",
			src:  "int x; // counter\n",
			want: &types.Declaration{Kind: "variable", Name: "x", Line: 1},
		},
		{
			name: "trailing_block_comment",
			src:  "int a = 10;  /* first number */\n",
			want: &types.Declaration{Kind: "variable", Name: "a", Line: 1},
		},
		{
			name: "trailing_member_doc",
			src:  "int value; ///< current value\n",
			want: &types.Declaration{Kind: "variable", Name: "value", Line: 1},
		},
		{
			name: "trailing_on_non_declaration",
			src:  "return a * b; /* inline */\n",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			comments := associateHeuristic(t, tc.src)
			require.Len(t, comments, 1)
			require.Equal(t, tc.want, comments[0].Decl)
		})
	}
}

// A trailing comment belongs to its own line's declaration, never the
// next one.
func TestAssociateTrailingDoesNotLookForward(t *testing.T) {
	src := "done(); // end of setup\nint next_decl;\n"
	comments := associateHeuristic(t, src)
	require.Len(t, comments, 1)
	require.Nil(t, comments[0].Decl)
}

func TestAssociateCommentOnlyFileHasNoAssociations(t *testing.T) {
	src := "/* one */\n// two\n/// three\n"
	comments := associateHeuristic(t, src)
	require.Len(t, comments, 3)
	for _, c := range comments {
		require.Nil(t, c.Decl)
	}
}
