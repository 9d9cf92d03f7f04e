package models

// TaglineSlots is the fixed number of tagline slots the site rotates
// through; reads always return exactly this many entries.
const TaglineSlots = 10

// SocialIcons is the closed set of icon identifiers a social link may
// reference. The backend only stores and validates the identifier; resolving
// it to a renderable asset is the client's concern.
var SocialIcons = map[string]bool{
	"Facebook":  true,
	"Instagram": true,
	"Reddit":    true,
	"YouTube":   true,
	"Twitter":   true,
	"LinkedIn":  true,
}

// SocialLink is one entry in the site footer.
type SocialLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// SiteSettings is the owner-editable singleton document controlling the
// public site chrome.
type SiteSettings struct {
	CoverPages  []string     `json:"coverPages"`
	Taglines    []string     `json:"taglines"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

// Normalize pads or truncates Taglines to exactly TaglineSlots entries and
// replaces nil sequences with empty ones, so callers never see a partial
// document.
func (s *SiteSettings) Normalize() {
	if s.CoverPages == nil {
		s.CoverPages = []string{}
	}
	if s.SocialLinks == nil {
		s.SocialLinks = []SocialLink{}
	}
	if len(s.Taglines) > TaglineSlots {
		s.Taglines = s.Taglines[:TaglineSlots]
	}
	for len(s.Taglines) < TaglineSlots {
		s.Taglines = append(s.Taglines, "")
	}
}
