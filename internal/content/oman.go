package content

var omanData = &CountryDataset{
	Name: "oman",
	Behavior: BehaviorData{
		PeakTimes: []PeakTime{
			{Time: "6:00 - 8:00 AM", Platforms: "Instagram, WhatsApp", Icon: "SunriseIcon"},
			{Time: "2:00 - 4:00 PM", Platforms: "Instagram, TikTok", Icon: "SunIcon"},
			{Time: "9:00 PM - 12:00 AM", Platforms: "Instagram, YouTube, TikTok", Icon: "MoonIcon"},
		},
		EngagingContent: []EngagingContent{
			{NameKey: "contentHighQualityReels", Icon: "VideoCameraIcon"},
			{NameKey: "contentInfographics", Icon: "ChartBarIcon"},
			{NameKey: "contentExpertInterviews", Icon: "MicrophoneIcon"},
			{NameKey: "contentHeritageFarming", Icon: "LandmarkIcon"},
			{NameKey: "contentPracticalTips", Icon: "LightBulbIcon"},
			{NameKey: "contentGiveaways", Icon: "GiftIcon"},
		},
	},
	Agriculture: AgricultureData{
		Topics: []AgriTopic{
			{TitleKey: "topicDatePalmTitle", DescriptionKey: "topicDatePalmDesc_oman"},
			{TitleKey: "topicWaterSavingTitle", DescriptionKey: "topicWaterSavingDesc_oman"},
			{TitleKey: "topicGreenhouseTitle", DescriptionKey: "topicGreenhouseDesc_oman"},
			{TitleKey: "topicHomeGardensTitle", DescriptionKey: "topicHomeGardensDesc_oman"},
		},
		Platforms: []AgriPlatform{
			{Name: "Instagram", DescriptionKey: "agriPlatformInstagram_oman", Icon: "InstagramIcon"},
			{Name: "WhatsApp", DescriptionKey: "agriPlatformWhatsApp_oman", Icon: "WhatsAppIcon"},
			{Name: "YouTube", DescriptionKey: "agriPlatformYouTube_oman", Icon: "YouTubeIcon"},
		},
	},
	Calendar: CalendarDataset{
		ActivePeriods: map[int][]string{
			0: {"9:00 - 11:00 PM"},
			1: {"6:00 - 8:00 AM", "9:00 - 11:00 PM"},
			2: {"2:00 - 4:00 PM", "9:00 - 11:00 PM"},
			3: {"6:00 - 8:00 AM", "9:00 - 11:00 PM"},
			4: {"2:00 - 4:00 PM", "9:00 PM - 12:00 AM"},
			5: {"4:00 - 6:00 PM", "9:00 PM - 12:00 AM"},
			6: {"10:00 AM - 12:00 PM", "9:00 - 11:00 PM"},
		},
		FacebookPosts: []ContentPost{
			{Date: "07-06", Title: "Falaj Wisdom, Modern Seeds", Description: "Post connecting Oman's traditional falaj irrigation heritage with modern drought-tolerant varieties."},
			{Date: "07-20", Title: "Distributor Spotlight: Nizwa", Description: "Introduce the Nizwa distribution point with opening hours, contact and this month's available varieties."},
		},
		TikTokPosts: []ContentPost{
			{Date: "07-04", Title: "Greenhouse in 30 Seconds", Description: "Quick tour of a modern Omani greenhouse running Seedtech vegetable lines, shot vertically with captions."},
			{Date: "07-18", Title: "Guess the Seedling", Description: "Interactive quiz video: close-ups of seedlings, viewers guess the crop in comments."},
		},
		InstagramPosts: []ContentPost{
			{Date: "07-02", Title: "Dates Season Prep", Description: "Reel on preparing date palm plots before the khareef humidity, with tips from a local expert."},
			{Date: "07-09", Title: "Salalah Khareef Series: Part 1", Description: "First of a monsoon-season series from Dhofar: what the khareef means for vegetable growers."},
			{Date: "07-16", Title: "Salalah Khareef Series: Part 2", Description: "Part 2: protecting seedlings from humidity-driven fungal pressure, product-neutral advice."},
			{Date: "07-23", Title: "Home Garden Heroes", Description: "User-generated content roundup of home gardens grown from Seedtech retail packets."},
			{Date: "07-30", Title: "Month in Review", Description: "Carousel recap of July highlights and a teaser of August content."},
		},
		LinkedInPosts: []ContentPost{
			{Date: "07-13", Title: "Agri-Tech in the Gulf: Oman's Opportunity", Description: "Analysis post on greenhouse expansion and seed-technology adoption in the Sultanate."},
			{Date: "07-27", Title: "Hiring: Field Agronomist, Muscat", Description: "Recruitment post for a field agronomist role supporting the Oman distributor network."},
		},
		YouTubePosts: []ContentPost{
			{Date: "07-11", Title: "Drip Irrigation Setup, Step by Step", Description: "Tutorial installing a small-plot drip system, with a bill of materials and costs in OMR."},
		},
		WhatsAppPosts: []ContentPost{
			{Date: "07-02", Title: "Khareef Advisory", Description: "Broadcast advisory for Dhofar growers ahead of the khareef, with recommended protected varieties."},
			{Date: "07-20", Title: "New Stock Announcement", Description: "Broadcast: new vegetable seed stock arriving at Nizwa and Muscat points this week."},
		},
	},
}
