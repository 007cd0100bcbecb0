// Package platform maps external video URLs to embeddable player URLs
// and display metadata. Classification is pure and deterministic, so
// results are safe to memoize by URL.
package platform

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Name identifies a recognized video platform
type Name string

const (
	YouTube     Name = "YouTube"
	Yandex      Name = "Yandex"
	Vimeo       Name = "Vimeo"
	Dailymotion Name = "Dailymotion"
	Twitch      Name = "Twitch"
	External    Name = "External"
)

const untitled = "Untitled video"

// Classification is the result of classifying a single URL
type Classification struct {
	Platform   Name   `json:"platform"`
	EmbedURL   string `json:"embedUrl"`
	Embeddable bool   `json:"isEmbeddable"`
	Title      string `json:"title"`
}

// Classifier derives embed URLs for known platforms. Parent is the
// hostname the site is served from; the Twitch player refuses to load
// without it as the `parent` query parameter.
type Classifier struct {
	Parent string
}

// NewClassifier creates a classifier for the given embedding host
func NewClassifier(parent string) *Classifier {
	return &Classifier{Parent: parent}
}

// Classify maps an external video URL to its platform, an embeddable
// player URL and a display title. Platforms are matched by hostname in
// priority order; the first match wins. Input that does not parse as an
// absolute URL falls back to the External platform rather than failing.
func (c *Classifier) Classify(raw string) Classification {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return Classification{
			Platform:   External,
			EmbedURL:   raw,
			Embeddable: true,
			Title:      titleFromPath(raw),
		}
	}

	host := strings.ToLower(u.Hostname())

	switch {
	case matchesHost(host, "youtube.com") || matchesHost(host, "youtu.be"):
		return c.classifyYouTube(u, raw)
	case strings.Contains(host, "yandex"):
		// Yandex requires authenticated access; its player cannot be
		// framed by third parties.
		return Classification{
			Platform:   Yandex,
			EmbedURL:   raw,
			Embeddable: false,
			Title:      fallbackTitle(u),
		}
	case matchesHost(host, "vimeo.com"):
		return c.classifyVimeo(u, raw)
	case matchesHost(host, "dailymotion.com"):
		return c.classifyDailymotion(u, raw)
	case matchesHost(host, "twitch.tv"):
		return c.classifyTwitch(u, raw)
	}

	return Classification{
		Platform:   External,
		EmbedURL:   raw,
		Embeddable: true,
		Title:      fallbackTitle(u),
	}
}

func (c *Classifier) classifyYouTube(u *url.URL, raw string) Classification {
	id := u.Query().Get("v")
	if id == "" && strings.Contains(strings.ToLower(u.Hostname()), "youtu.be") {
		id = firstSegment(u.Path)
	}

	if id == "" {
		return Classification{
			Platform:   YouTube,
			EmbedURL:   raw,
			Embeddable: true,
			Title:      fallbackTitle(u),
		}
	}

	return Classification{
		Platform:   YouTube,
		EmbedURL:   "https://www.youtube.com/embed/" + id,
		Embeddable: true,
		Title:      fmt.Sprintf("YouTube video %s", id),
	}
}

func (c *Classifier) classifyVimeo(u *url.URL, raw string) Classification {
	id := lastSegment(u.Path)
	if id == "" {
		return Classification{
			Platform:   Vimeo,
			EmbedURL:   raw,
			Embeddable: true,
			Title:      fallbackTitle(u),
		}
	}

	return Classification{
		Platform:   Vimeo,
		EmbedURL:   "https://player.vimeo.com/video/" + id,
		Embeddable: true,
		Title:      fmt.Sprintf("Vimeo video %s", id),
	}
}

func (c *Classifier) classifyDailymotion(u *url.URL, raw string) Classification {
	id := segmentAfter(u.Path, "video")
	// Dailymotion appends a slug after an underscore
	if i := strings.Index(id, "_"); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return Classification{
			Platform:   Dailymotion,
			EmbedURL:   raw,
			Embeddable: true,
			Title:      fallbackTitle(u),
		}
	}

	return Classification{
		Platform:   Dailymotion,
		EmbedURL:   "https://www.dailymotion.com/embed/video/" + id,
		Embeddable: true,
		Title:      fmt.Sprintf("Dailymotion video %s", id),
	}
}

func (c *Classifier) classifyTwitch(u *url.URL, raw string) Classification {
	id := segmentAfter(u.Path, "videos")
	if id == "" {
		return Classification{
			Platform:   Twitch,
			EmbedURL:   raw,
			Embeddable: true,
			Title:      fallbackTitle(u),
		}
	}

	embed := url.URL{
		Scheme: "https",
		Host:   "player.twitch.tv",
		RawQuery: url.Values{
			"video":  []string{id},
			"parent": []string{c.Parent},
		}.Encode(),
	}

	return Classification{
		Platform:   Twitch,
		EmbedURL:   embed.String(),
		Embeddable: true,
		Title:      fmt.Sprintf("Twitch video %s", id),
	}
}

// matchesHost reports whether host equals domain or is a subdomain of it
func matchesHost(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

func splitSegments(p string) []string {
	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, s := range parts {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func firstSegment(p string) string {
	if segs := splitSegments(p); len(segs) > 0 {
		return segs[0]
	}
	return ""
}

func lastSegment(p string) string {
	if segs := splitSegments(p); len(segs) > 0 {
		return segs[len(segs)-1]
	}
	return ""
}

// segmentAfter returns the path segment immediately following marker
func segmentAfter(p, marker string) string {
	segs := splitSegments(p)
	for i, s := range segs {
		if s == marker && i+1 < len(segs) {
			return segs[i+1]
		}
	}
	return ""
}

// fallbackTitle derives a title for URLs with no recognized video id:
// the last path segment without its extension, else the hostname with a
// leading www. stripped.
func fallbackTitle(u *url.URL) string {
	if seg := lastSegment(u.Path); seg != "" {
		if name := strings.TrimSuffix(seg, path.Ext(seg)); name != "" {
			return name
		}
	}
	if host := strings.TrimPrefix(u.Hostname(), "www."); host != "" {
		return host
	}
	return untitled
}

// titleFromPath handles input that never parsed as a URL
func titleFromPath(raw string) string {
	seg := lastSegment(raw)
	if seg == "" {
		return untitled
	}
	if name := strings.TrimSuffix(seg, path.Ext(seg)); name != "" {
		return name
	}
	return untitled
}
