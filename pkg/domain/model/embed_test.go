package model_test

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

var author = model.Profile{
	Login:     "octocat",
	HTMLURL:   "https://github.com/octocat",
	AvatarURL: "https://avatars.githubusercontent.com/u/583231",
}

func TestLimitText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{name: "empty", text: "", limit: 10, want: ""},
		{name: "shorter", text: "hello", limit: 10, want: "hello"},
		{name: "exact", text: strings.Repeat("a", 640), limit: 640, want: strings.Repeat("a", 640)},
		{name: "one over", text: strings.Repeat("a", 641), limit: 640, want: strings.Repeat("a", 637) + "..."},
		{name: "title", text: strings.Repeat("t", 150), limit: 100, want: strings.Repeat("t", 97) + "..."},
		// "é" is two bytes; the cut at byte 7 falls inside the fourth one
		{name: "multibyte", text: strings.Repeat("é", 10), limit: 10, want: strings.Repeat("é", 3) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.LimitText(tt.text, tt.limit)
			gt.Value(t, got).Equal(tt.want)
			gt.True(t, len(got) <= tt.limit)
			gt.True(t, utf8.ValidString(got))
		})
	}
}

func TestLimitText_PrefixProperty(t *testing.T) {
	inputs := []string{
		strings.Repeat("x", 1000),
		strings.Repeat("日本語", 100),
		strings.Repeat("🐈", 200),
		"short",
	}

	for _, in := range inputs {
		got := model.LimitText(in, model.MaxDescriptionLength)
		gt.True(t, len(got) <= model.MaxDescriptionLength)
		if got != in {
			gt.String(t, got).HasSuffix("...")
			gt.True(t, strings.HasPrefix(in, strings.TrimSuffix(got, "...")))
		}
	}
}

func TestEmbedBuilder_Build(t *testing.T) {
	msg, err := model.NewEmbedBuilder().
		Title("[org/repo] Issue opened: #1 hello").
		URL("https://github.com/org/repo/issues/1").
		Description("body").
		Color(model.RGB{R: 0x12, G: 0x34, B: 0x56}).
		Author(author).
		Build()
	gt.NoError(t, err)
	gt.Number(t, len(msg.Embeds)).Equal(1)

	e := msg.Embeds[0]
	gt.Value(t, e.Title).Equal("[org/repo] Issue opened: #1 hello")
	gt.Value(t, e.URL).Equal("https://github.com/org/repo/issues/1")
	gt.Value(t, *e.Description).Equal("body")
	gt.Value(t, *e.Color).Equal(0x123456)
	gt.Value(t, e.Author).Equal(model.EmbedAuthor{
		Name:    "octocat",
		URL:     "https://github.com/octocat",
		IconURL: "https://avatars.githubusercontent.com/u/583231",
	})
}

func TestEmbedBuilder_AuthorUsesLogin(t *testing.T) {
	named := author
	named.Name = "The Octocat"

	msg, err := model.NewEmbedBuilder().
		Title("t").
		URL("https://github.com/org/repo").
		Author(named).
		Build()
	gt.NoError(t, err)
	gt.Value(t, msg.Embeds[0].Author.Name).Equal("octocat")
}

func TestEmbedBuilder_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		builder *model.EmbedBuilder
		is      func(error) bool
	}{
		{
			name:    "empty builder reports title first",
			builder: model.NewEmbedBuilder(),
			is:      func(err error) bool { return goerr.HasTag(err, model.TagMissingTitle) },
		},
		{
			name:    "missing url",
			builder: model.NewEmbedBuilder().Title("t").Author(author),
			is:      func(err error) bool { return goerr.HasTag(err, model.TagMissingURL) },
		},
		{
			name:    "missing author",
			builder: model.NewEmbedBuilder().Title("t").URL("https://example.com"),
			is:      func(err error) bool { return goerr.HasTag(err, model.TagMissingAuthor) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := tt.builder.Build()
			gt.Error(t, err)
			gt.Value(t, msg).Nil()
			gt.True(t, tt.is(err))
		})
	}
}

func TestMessage_JSON(t *testing.T) {
	msg, err := model.NewEmbedBuilder().
		Title("title").
		URL("https://example.com").
		Author(author).
		Build()
	gt.NoError(t, err)

	raw, err := json.Marshal(msg)
	gt.NoError(t, err)

	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(raw, &decoded))

	embeds := decoded["embeds"].([]any)
	gt.Number(t, len(embeds)).Equal(1)

	e := embeds[0].(map[string]any)
	gt.Value(t, e["title"]).Equal("title")
	gt.Value(t, e["url"]).Equal("https://example.com")
	gt.True(t, hasNull(e, "description"))
	gt.True(t, hasNull(e, "color"))

	a := e["author"].(map[string]any)
	gt.Value(t, a["icon_url"]).Equal("https://avatars.githubusercontent.com/u/583231")
}

func hasNull(m map[string]any, key string) bool {
	v, ok := m[key]
	return ok && v == nil
}
