package harvest_test

import (
	"testing"

	"github.com/fwojciec/linkharvest"
	"github.com/fwojciec/linkharvest/harvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultNormalizer() *harvest.Normalizer {
	return harvest.NewNormalizer(linkharvest.NewTrackingParams(linkharvest.DefaultTrackingParams...))
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "removes tracking parameter and keeps the rest",
			raw:  "https://example.com/?id=1&utm_source=x",
			want: "https://example.com/?id=1",
		},
		{
			name: "drops the question mark when no parameter survives",
			raw:  "https://example.com/page?utm_source=x&utm_medium=y",
			want: "https://example.com/page",
		},
		{
			name: "keeps surviving parameters in their original order",
			raw:  "https://example.com/?b=2&gclid=abc&a=1&fbclid=z&c=3",
			want: "https://example.com/?b=2&a=1&c=3",
		},
		{
			name: "matches keys case-insensitively",
			raw:  "https://example.com/?UTM_Source=x&Keep=Yes",
			want: "https://example.com/?Keep=Yes",
		},
		{
			name: "decodes keys before matching",
			raw:  "https://example.com/?utm%5Fsource=x&q=a%20b",
			want: "https://example.com/?q=a%20b",
		},
		{
			name: "filters repeated keys independently",
			raw:  "https://example.com/?ref=1&tag=a&ref=2&tag=b",
			want: "https://example.com/?tag=a&tag=b",
		},
		{
			name: "drops empty query segments",
			raw:  "https://example.com/?a=1&&b=2&",
			want: "https://example.com/?a=1&b=2",
		},
		{
			name: "preserves the fragment",
			raw:  "https://example.com/docs?utm_campaign=launch&v=2#install",
			want: "https://example.com/docs?v=2#install",
		},
		{
			name: "does not treat a question mark in the fragment as a query",
			raw:  "https://example.com/docs#section?utm_source=x",
			want: "https://example.com/docs#section?utm_source=x",
		},
		{
			name: "leaves URLs without a query untouched",
			raw:  "HTTPS://Example.com/Path/",
			want: "HTTPS://Example.com/Path/",
		},
		{
			name: "keeps valueless parameters",
			raw:  "https://example.com/?debug&si=abc",
			want: "https://example.com/?debug",
		},
	}

	n := defaultNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := n.Normalize(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizer_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"not a url", "/relative/path?utm_source=x", "http://[::1", ""} {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			got, err := defaultNormalizer().Normalize(raw)

			require.Error(t, err)
			assert.Equal(t, linkharvest.EINVALID, linkharvest.ErrorCode(err))
			assert.Equal(t, raw, got)
		})
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://example.com/?id=1&utm_source=x",
		"https://example.com/?a=1&&b=2&",
		"https://example.com/path?",
		"https://example.com/?fbclid=1#frag",
		"https://example.com/?q=%E2%9C%93&ref=x&Q=2",
		"mailto:someone@example.com?subject=hi&utm_source=x",
	}

	n := defaultNormalizer()
	for _, u := range urls {
		once, err := n.Normalize(u)
		require.NoError(t, err)

		twice, err := n.Normalize(once)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "normalizing %q twice", u)
	}
}

func TestNormalizer_RemovesEveryDefaultParam(t *testing.T) {
	t.Parallel()

	n := defaultNormalizer()
	for _, name := range linkharvest.DefaultTrackingParams {
		got, err := n.Normalize("https://example.com/?" + name + "=foo&keep=1")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/?keep=1", got, "param %q", name)
	}
}

func TestNormalizer_CustomParams(t *testing.T) {
	t.Parallel()

	n := harvest.NewNormalizer(linkharvest.NewTrackingParams("session"))

	got, err := n.Normalize("https://example.com/?session=1&utm_source=x")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/?utm_source=x", got)
}
