package content

var ugandaData = &CountryDataset{
	Name: "uganda",
	Behavior: BehaviorData{
		PeakTimes: []PeakTime{
			{Time: "6:00 - 8:00 AM", Platforms: "WhatsApp, Facebook", Icon: "SunriseIcon"},
			{Time: "12:00 - 2:00 PM", Platforms: "Facebook, TikTok", Icon: "SunIcon"},
			{Time: "7:00 - 10:00 PM", Platforms: "Facebook, TikTok, YouTube", Icon: "MoonIcon"},
		},
		EngagingContent: []EngagingContent{
			{NameKey: "contentShortVideo", Icon: "VideoCameraIcon"},
			{NameKey: "contentRadioCrossover", Icon: "MicrophoneIcon"},
			{NameKey: "contentPracticalTips", Icon: "LightBulbIcon"},
			{NameKey: "contentYouthFarming", Icon: "UsersIcon"},
			{NameKey: "contentMarketPrices", Icon: "ChartBarIcon"},
			{NameKey: "contentSuccessStories", Icon: "TrophyIcon"},
		},
	},
	Agriculture: AgricultureData{
		Topics: []AgriTopic{
			{TitleKey: "topicMaizeTitle", DescriptionKey: "topicMaizeDesc_uganda"},
			{TitleKey: "topicBeansTitle", DescriptionKey: "topicBeansDesc_uganda"},
			{TitleKey: "topicSecondSeasonTitle", DescriptionKey: "topicSecondSeasonDesc_uganda"},
			{TitleKey: "topicPostHarvestTitle", DescriptionKey: "topicPostHarvestDesc_uganda"},
		},
		Platforms: []AgriPlatform{
			{Name: "WhatsApp", DescriptionKey: "agriPlatformWhatsApp_uganda", Icon: "WhatsAppIcon"},
			{Name: "Facebook", DescriptionKey: "agriPlatformFacebook_uganda", Icon: "FacebookIcon"},
			{Name: "YouTube", DescriptionKey: "agriPlatformYouTube_uganda", Icon: "YouTubeIcon"},
		},
	},
	Calendar: CalendarDataset{
		ActivePeriods: map[int][]string{
			0: {"7:00 - 10:00 PM"},
			1: {"6:00 - 8:00 AM", "7:00 - 10:00 PM"},
			2: {"12:00 - 2:00 PM", "7:00 - 10:00 PM"},
			3: {"6:00 - 8:00 AM", "7:00 - 10:00 PM"},
			4: {"12:00 - 2:00 PM", "7:00 - 10:00 PM"},
			5: {"12:00 - 2:00 PM", "7:00 - 11:00 PM"},
			6: {"9:00 - 11:00 AM", "7:00 - 11:00 PM"},
		},
		FacebookPosts: []ContentPost{
			{Date: "07-02", Title: "First Season Harvest Check-In", Description: "Ask followers how their first-season maize harvest went, with a poll on yields and a thank-you to the community."},
			{Date: "07-09", Title: "Drying and Storage Done Right", Description: "Illustrated guide to drying maize to safe moisture levels and storing in hermetic bags to beat weevils."},
			{Date: "07-16", Title: "Second Season Starts Now", Description: "Countdown post for second-season planting: recommended hybrids per region and where to buy."},
			{Date: "07-16", Title: "Distributor Map Update", Description: "Same-day follow-up post sharing the refreshed agro-dealer map with three new districts covered."},
			{Date: "07-23", Title: "Young Farmer Feature: Brenda from Mbale", Description: "Story of a 24-year-old agripreneur growing beans commercially, with her tips for starting small."},
		},
		TikTokPosts: []ContentPost{
			{Date: "07-07", Title: "Weevil-Proof Storage Hack", Description: "Demo of hermetic bag sealing in under a minute, duet-friendly format."},
			{Date: "07-21", Title: "Race the Rains", Description: "Energetic clip of land prep ahead of second-season rains with trending audio."},
		},
		InstagramPosts: []ContentPost{
			{Date: "07-10", Title: "Green Hills of Kabale", Description: "Photo series from highland bean fields with a caption on altitude-adapted varieties."},
			{Date: "07-28", Title: "Agro-Dealer Portraits", Description: "Portrait series of the dealers who bring certified seed to the last mile."},
		},
		LinkedInPosts: []ContentPost{
			{Date: "07-14", Title: "Last-Mile Seed Distribution in East Africa", Description: "Insight post on the agro-dealer model and what it takes to reach smallholders reliably."},
		},
		YouTubePosts: []ContentPost{
			{Date: "07-11", Title: "Second Season Planting Guide", Description: "Full planting guide for the August-November season: spacing, fertilizer program, early weeding."},
			{Date: "07-25", Title: "Luganda Voice-Over: Storage Basics", Description: "Local-language version of the storage guide to widen reach beyond English speakers."},
		},
		WhatsAppPosts: []ContentPost{
			{Date: "07-07", Title: "Agro-Dealer Broadcast", Description: "Broadcast to the dealer network: second-season stock allocations and delivery schedule."},
			{Date: "07-21", Title: "Farmer Group Tip Sheet", Description: "Forwardable PDF tip sheet on second-season variety selection for farmer groups."},
		},
	},
}
