package content

// CountryID identifies one of the supported markets.
type CountryID string

const (
	Sudan  CountryID = "sudan"
	Oman   CountryID = "oman"
	Uganda CountryID = "uganda"
)

// PlatformID identifies a social platform, or "all" for no filter.
type PlatformID string

const (
	All       PlatformID = "all"
	Facebook  PlatformID = "facebook"
	TikTok    PlatformID = "tiktok"
	Instagram PlatformID = "instagram"
	LinkedIn  PlatformID = "linkedin"
	YouTube   PlatformID = "youtube"
	WhatsApp  PlatformID = "whatsapp"
)

// PlatformOrder is the fixed rendering order for platform post lists.
var PlatformOrder = []PlatformID{Facebook, TikTok, Instagram, LinkedIn, YouTube, WhatsApp}

// Countries lists the supported markets in display order.
var Countries = []CountryID{Sudan, Oman, Uganda}

// ContentPost is a pre-written scheduled post. Date is "MM-DD"; several
// posts may share a date on the same platform.
type ContentPost struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PeakTime is one entry of the audience-activity table.
type PeakTime struct {
	Time      string `json:"time"`
	Platforms string `json:"platforms"`
	Icon      string `json:"icon"`
}

// EngagingContent names a content format that performs well in the market.
type EngagingContent struct {
	NameKey string `json:"nameKey"`
	Icon    string `json:"icon"`
}

// BehaviorData holds the social-media behavior statistics for a market.
type BehaviorData struct {
	PeakTimes       []PeakTime        `json:"peakTimes"`
	EngagingContent []EngagingContent `json:"engagingContent"`
}

// AgriTopic is a messaging topic for the agriculture sector.
type AgriTopic struct {
	TitleKey       string `json:"titleKey"`
	DescriptionKey string `json:"descriptionKey"`
}

// AgriPlatform is a platform-outreach note for the agriculture sector.
type AgriPlatform struct {
	Name           string `json:"name"`
	DescriptionKey string `json:"descriptionKey"`
	Icon           string `json:"icon"`
}

// AgricultureData groups the agriculture messaging guidance for a market.
type AgricultureData struct {
	Topics    []AgriTopic    `json:"topics"`
	Platforms []AgriPlatform `json:"platforms"`
}

// CalendarDataset holds the scheduled posts for one market.
//
// ActivePeriods maps a weekday (0 = Sunday) to the recommended posting
// windows for that day. The six post lists keep their authored order.
type CalendarDataset struct {
	ActivePeriods  map[int][]string `json:"activePeriods"`
	FacebookPosts  []ContentPost    `json:"facebookPosts"`
	TikTokPosts    []ContentPost    `json:"tiktokPosts"`
	InstagramPosts []ContentPost    `json:"instagramPosts"`
	LinkedInPosts  []ContentPost    `json:"linkedinPosts"`
	YouTubePosts   []ContentPost    `json:"youtubePosts"`
	WhatsAppPosts  []ContentPost    `json:"whatsappPosts"`
}

// Posts returns the post list for a single platform. All is not a valid
// argument here; it returns nil.
func (c *CalendarDataset) Posts(p PlatformID) []ContentPost {
	switch p {
	case Facebook:
		return c.FacebookPosts
	case TikTok:
		return c.TikTokPosts
	case Instagram:
		return c.InstagramPosts
	case LinkedIn:
		return c.LinkedInPosts
	case YouTube:
		return c.YouTubePosts
	case WhatsApp:
		return c.WhatsAppPosts
	}
	return nil
}

// CountryDataset is the full static dataset for one market.
type CountryDataset struct {
	Name        string          `json:"name"`
	Behavior    BehaviorData    `json:"behavior"`
	Agriculture AgricultureData `json:"agriculture"`
	Calendar    CalendarDataset `json:"calendar"`
}
