package catalog

import (
	"regexp"
	"strings"

	"github.com/cesargomez89/saavnsource/internal/constants"
	"github.com/cesargomez89/saavnsource/internal/domain"
)

// linkPattern matches provider web URLs such as
// https://www.jiosaavn.com/song/tum-hi-ho/EToxUyFpcwQ or
// https://www.jiosaavn.com/featured/trending-today/I3kvhipIy73uCJW60TJk1Q__.
// The type is the first whole path segment naming a known kind; the id is the last segment.
var linkPattern = regexp.MustCompile(
	`^https?://(?:www\.)?(?:jiosaavn\.com|saavn\.com)/(?:[^?#]*?/)??(?P<type>song|album|featured|artist)/(?:[^?#]+/)?(?P<id>[A-Za-z0-9_-]+)/?(?:[?#].*)?$`,
)

var (
	linkTypeIndex = linkPattern.SubexpIndex("type")
	linkIDIndex   = linkPattern.SubexpIndex("id")
)

// Check decides whether identifier belongs to this source. It does no I/O.
func (p *JioSaavnProvider) Check(identifier string) (domain.Classification, bool) {
	if !p.opts.Enabled {
		return domain.Classification{}, false
	}
	return Classify(identifier)
}

// Classify recognises shortcut prefixes and provider URLs.
func Classify(identifier string) (domain.Classification, bool) {
	if rest, ok := strings.CutPrefix(identifier, constants.SearchPrefix); ok {
		return domain.Classification{Kind: domain.MatchSearch, Identifier: rest}, true
	}
	if rest, ok := strings.CutPrefix(identifier, constants.RecommendationPrefix); ok {
		return domain.Classification{Kind: domain.MatchRecommendation, Identifier: rest}, true
	}

	m := linkPattern.FindStringSubmatch(identifier)
	if m == nil {
		return domain.Classification{}, false
	}

	return domain.Classification{
		Kind:        domain.MatchURL,
		ContentType: domain.ContentType(m[linkTypeIndex]),
		Identifier:  m[linkIDIndex],
		URL:         identifier,
	}, true
}
