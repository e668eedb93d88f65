package content

var sudanData = &CountryDataset{
	Name: "sudan",
	Behavior: BehaviorData{
		PeakTimes: []PeakTime{
			{Time: "7:00 - 9:00 AM", Platforms: "Facebook, WhatsApp", Icon: "SunriseIcon"},
			{Time: "1:00 - 3:00 PM", Platforms: "Facebook, TikTok", Icon: "SunIcon"},
			{Time: "8:00 - 11:00 PM", Platforms: "Facebook, TikTok, YouTube", Icon: "MoonIcon"},
		},
		EngagingContent: []EngagingContent{
			{NameKey: "contentShortVideo", Icon: "VideoCameraIcon"},
			{NameKey: "contentSuccessStories", Icon: "TrophyIcon"},
			{NameKey: "contentPracticalTips", Icon: "LightBulbIcon"},
			{NameKey: "contentReligiousGreetings", Icon: "StarIcon"},
			{NameKey: "contentMarketPrices", Icon: "ChartBarIcon"},
			{NameKey: "contentCommunityQA", Icon: "ChatBubbleIcon"},
		},
	},
	Agriculture: AgricultureData{
		Topics: []AgriTopic{
			{TitleKey: "topicSorghumTitle", DescriptionKey: "topicSorghumDesc_sudan"},
			{TitleKey: "topicIrrigationTitle", DescriptionKey: "topicIrrigationDesc_sudan"},
			{TitleKey: "topicSeedQualityTitle", DescriptionKey: "topicSeedQualityDesc_sudan"},
			{TitleKey: "topicPestControlTitle", DescriptionKey: "topicPestControlDesc_sudan"},
		},
		Platforms: []AgriPlatform{
			{Name: "Facebook", DescriptionKey: "agriPlatformFacebook_sudan", Icon: "FacebookIcon"},
			{Name: "WhatsApp", DescriptionKey: "agriPlatformWhatsApp_sudan", Icon: "WhatsAppIcon"},
			{Name: "TikTok", DescriptionKey: "agriPlatformTikTok_sudan", Icon: "TikTokIcon"},
		},
	},
	Calendar: CalendarDataset{
		ActivePeriods: map[int][]string{
			0: {"8:00 - 10:00 PM"},
			1: {"7:00 - 9:00 AM", "8:00 - 10:00 PM"},
			2: {"1:00 - 3:00 PM", "8:00 - 10:00 PM"},
			3: {"7:00 - 9:00 AM", "8:00 - 10:00 PM"},
			4: {"1:00 - 3:00 PM", "9:00 - 11:00 PM"},
			5: {"12:00 - 2:00 PM", "8:00 - 11:00 PM"},
			6: {"10:00 AM - 12:00 PM", "8:00 - 11:00 PM"},
		},
		FacebookPosts: []ContentPost{
			{Date: "07-01", Title: "Season Kickoff: Your Sorghum Questions Answered", Description: "Open thread with Seedtech agronomists answering the most common questions about the summer sorghum season in Gezira and beyond."},
			{Date: "07-05", Title: "Meet the Farmer: Al-Tayeb from Sennar", Description: "Photo story of a Sennar farmer who doubled his yield with certified seed. Includes before/after field photos and his own words."},
			{Date: "07-12", Title: "5 Signs Your Seed Is Not Certified", Description: "Carousel post teaching farmers to spot uncertified seed bags. Call to action: visit the nearest Seedtech distributor."},
			{Date: "07-19", Title: "Rainy Season Checklist", Description: "Practical checklist for preparing fields before the peak rains: drainage, seed treatment, and planting windows."},
			{Date: "07-26", Title: "Community Friday: Share Your Field", Description: "Invite followers to post a photo of their field this week. Best photo is featured on the page next Friday."},
		},
		TikTokPosts: []ContentPost{
			{Date: "07-03", Title: "60 Seconds: Planting Depth", Description: "Fast-cut demo showing correct sorghum planting depth with a simple finger-measure trick. Upbeat local music."},
			{Date: "07-12", Title: "Seed Bag Unboxing", Description: "A young agronomist unboxes a Seedtech bag and points out the certification label, lot number, and germination rate."},
			{Date: "07-24", Title: "Field Glow-Up", Description: "Timelapse transition of a field from sowing to green rows in 3 weeks. Text overlay with the hybrid name."},
		},
		InstagramPosts: []ContentPost{
			{Date: "07-05", Title: "Golden Hour in Gezira", Description: "Reel of sunrise over irrigated sorghum rows with a short caption on water-efficient varieties."},
			{Date: "07-15", Title: "From Lab to Land", Description: "Behind-the-scenes photo set from the Seedtech quality lab: germination tests, purity checks, sealing."},
			{Date: "07-29", Title: "Harvest Countdown", Description: "Story-style countdown graphic building anticipation for harvest content in August."},
		},
		LinkedInPosts: []ContentPost{
			{Date: "07-08", Title: "Food Security Starts With Seed", Description: "Thought-leadership article on the role of certified seed in Sudan's food security, with sector figures."},
			{Date: "07-22", Title: "Partnering With Cooperatives", Description: "Announcement of new distribution partnerships with farming cooperatives in River Nile state."},
		},
		YouTubePosts: []ContentPost{
			{Date: "07-10", Title: "Full Guide: Summer Sorghum Season", Description: "A 12-minute agronomist walkthrough of the full season: variety choice, sowing, fertilization, pest alerts."},
			{Date: "07-24", Title: "Farmer Stories: Episode 3", Description: "Documentary-style visit to a family farm in White Nile, focusing on how seed choice changed their income."},
		},
		WhatsAppPosts: []ContentPost{
			{Date: "07-01", Title: "Weekly Tip Broadcast", Description: "Short broadcast message: this week's planting window and a link to the distributor map."},
			{Date: "07-15", Title: "Mid-Month Price Update", Description: "Broadcast with current seed prices and availability per region, forwarded easily within farmer groups."},
			{Date: "07-26", Title: "Voice Note: Pest Alert", Description: "A 45-second voice note from an agronomist on early signs of stem borer and what to do this week."},
		},
	},
}
