package model

import (
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
)

// Discord limits applied by EmbedBuilder. They are byte lengths.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 640
	MaxAuthorNameLength  = 256
)

const ellipsis = "..."

// Message is the body posted to a Discord webhook
type Message struct {
	Embeds []Embed `json:"embeds"`
}

// Embed is a single Discord embed. Description and Color are encoded as
// null when unset.
type Embed struct {
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Description *string     `json:"description"`
	Color       *int        `json:"color"`
	Author      EmbedAuthor `json:"author"`
}

// EmbedAuthor is the author block of an embed
type EmbedAuthor struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	IconURL string `json:"icon_url"`
}

// EmbedBuilder accumulates embed fields and validates them in Build. The
// zero value is ready to use.
type EmbedBuilder struct {
	title       *string
	url         *string
	author      *Profile
	description *string
	color       *int
}

// NewEmbedBuilder returns an empty builder
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{}
}

// Title sets the title, truncated to MaxTitleLength
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	s := LimitText(title, MaxTitleLength)
	b.title = &s
	return b
}

// URL sets the link the title points to
func (b *EmbedBuilder) URL(url string) *EmbedBuilder {
	b.url = &url
	return b
}

// Author sets the author from a GitHub profile login
func (b *EmbedBuilder) Author(author Profile) *EmbedBuilder {
	b.author = &author
	return b
}

// Description sets the body, truncated to MaxDescriptionLength
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	s := LimitText(description, MaxDescriptionLength)
	b.description = &s
	return b
}

// Color sets the sidebar color
func (b *EmbedBuilder) Color(c RGB) *EmbedBuilder {
	packed := c.Packed()
	b.color = &packed
	return b
}

// Build validates the accumulated fields and returns the message. Title,
// URL and Author are required.
func (b *EmbedBuilder) Build() (*Message, error) {
	if b.title == nil {
		return nil, goerr.New("missing title", goerr.T(TagMissingTitle))
	}
	if b.url == nil {
		return nil, goerr.New("missing url", goerr.T(TagMissingURL))
	}
	if b.author == nil {
		return nil, goerr.New("missing author", goerr.T(TagMissingAuthor))
	}

	return &Message{
		Embeds: []Embed{
			{
				Title:       *b.title,
				URL:         *b.url,
				Description: b.description,
				Color:       b.color,
				Author: EmbedAuthor{
					Name:    LimitText(b.author.Login, MaxAuthorNameLength),
					URL:     b.author.HTMLURL,
					IconURL: b.author.AvatarURL,
				},
			},
		},
	}, nil
}

// LimitText returns text unchanged when it fits in limit bytes. Otherwise it
// keeps at most limit-3 bytes and appends "...". The cut is moved back to a
// rune boundary so the result is always valid UTF-8.
func LimitText(text string, limit int) string {
	if len(text) <= limit {
		return text
	}

	cut := limit - len(ellipsis)
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + ellipsis
}
