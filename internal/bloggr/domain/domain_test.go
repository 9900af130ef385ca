package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLikeStatus(t *testing.T) {
	for _, s := range []string{"None", "Like", "Dislike"} {
		got, err := ParseLikeStatus(s)
		require.NoError(t, err)
		require.Equal(t, LikeStatus(s), got)
	}
	for _, s := range []string{"", "like", "LIKE", "Love"} {
		_, err := ParseLikeStatus(s)
		require.Error(t, err, s)
	}
}

func TestListQueryNormalize(t *testing.T) {
	q := ListQuery{PageNumber: 0, PageSize: 1000, SearchNameTerm: "  go "}.Normalize()
	require.Equal(t, 1, q.PageNumber)
	require.Equal(t, MaxPageSize, q.PageSize)
	require.Equal(t, "go", q.SearchNameTerm)
	require.Equal(t, 0, q.Offset())

	q = ListQuery{PageNumber: 3, PageSize: 10}.Normalize()
	require.Equal(t, 20, q.Offset())
}

func TestPagesCount(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 0, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Page[int]{TotalCount: tc.total, PageSize: tc.size}.PagesCount())
	}
}

func TestMapPage(t *testing.T) {
	p := Page[int]{PageNumber: 2, PageSize: 2, TotalCount: 4, Items: []int{3, 4}}
	out := MapPage(p, func(i int) string { return string(rune('a' + i)) })
	require.Equal(t, []string{"d", "e"}, out.Items)
	require.Equal(t, 2, out.PagesCount())
}
