package catalog

import "kingdom/internal/core"

const (
	faith         = core.ModeFaith
	encouragement = core.ModeEncouragement
	easy          = core.DifficultyEasy
	medium        = core.DifficultyMedium
	hard          = core.DifficultyHard
)

var seasonalTemplates = table{
	"spring": {
		faith: {
			{Title: "New Life, New Season", Description: "Share a spring session that reflects renewal and God's faithfulness in fresh starts.", ContentType: "carousel", Difficulty: easy, Engagement: 420, Hashtags: []string{"#springsession", "#newseason"}, BibleConnection: "Isaiah 43:19"},
			{Title: "Blooming Where You're Planted", Description: "Highlight a client story of growth using blossoms as the backdrop.", ContentType: "reel", Difficulty: medium, Engagement: 510, Hashtags: []string{"#bloomwhereplanted"}, BibleConnection: "Jeremiah 17:8"},
		},
		encouragement: {
			{Title: "Fresh Starts Mini Sessions", Description: "Announce spring minis and invite followers to celebrate their own fresh start.", ContentType: "carousel", Difficulty: easy, Engagement: 400, Hashtags: []string{"#springminis", "#freshstart"}},
			{Title: "Growth Looks Good On You", Description: "Before and after edits that show how small changes bloom into big results.", ContentType: "reel", Difficulty: medium, Engagement: 480, Hashtags: []string{"#growthmindset"}},
		},
	},
	"summer": {
		faith: {
			{Title: "Golden Hour Gratitude", Description: "Post a golden hour gallery with a caption on gratitude for long summer light.", ContentType: "carousel", Difficulty: easy, Engagement: 530, Hashtags: []string{"#goldenhour", "#gratitude"}, BibleConnection: "Psalm 118:24"},
			{Title: "Summer Sabbath Rest", Description: "Behind the scenes of how you rest during the busiest season.", ContentType: "story", Difficulty: easy, Engagement: 350, Hashtags: []string{"#sabbathrest"}, BibleConnection: "Matthew 11:28"},
		},
		encouragement: {
			{Title: "Sunshine Sessions", Description: "Showcase beach and field sessions with tips for clients to feel confident on camera.", ContentType: "reel", Difficulty: medium, Engagement: 560, Hashtags: []string{"#summersessions"}},
			{Title: "Slow Down This Summer", Description: "Encourage followers to capture unhurried moments with the people they love.", ContentType: "post", Difficulty: easy, Engagement: 330, Hashtags: []string{"#slowliving"}},
		},
	},
	"fall": {
		faith: {
			{Title: "Harvest of Thankfulness", Description: "Family sessions in the leaves paired with a reflection on seasons of harvest.", ContentType: "carousel", Difficulty: easy, Engagement: 600, Hashtags: []string{"#fallfamily", "#harvest"}, BibleConnection: "Galatians 6:9"},
			{Title: "Letting Go Like Autumn Leaves", Description: "A short reel about surrendering plans and trusting God with the next season.", ContentType: "reel", Difficulty: medium, Engagement: 470, Hashtags: []string{"#surrender"}, BibleConnection: "Ecclesiastes 3:1"},
		},
		encouragement: {
			{Title: "Cozy Season Mini Sessions", Description: "Book fall minis with a countdown and a look at your favorite cozy locations.", ContentType: "carousel", Difficulty: easy, Engagement: 580, Hashtags: []string{"#fallminis", "#cozyseason"}},
			{Title: "Change Is Beautiful", Description: "Celebrate client milestones and transitions with warm autumn tones.", ContentType: "post", Difficulty: easy, Engagement: 390, Hashtags: []string{"#changeisgood"}},
		},
	},
	"winter": {
		faith: {
			{Title: "Light in the Darkness", Description: "Twinkle-light portraits with a caption about the light that darkness cannot overcome.", ContentType: "carousel", Difficulty: medium, Engagement: 550, Hashtags: []string{"#winterlight"}, BibleConnection: "John 1:5"},
			{Title: "Quiet Winter Devotions", Description: "Share your morning routine and the verse carrying you through the cold months.", ContentType: "story", Difficulty: easy, Engagement: 300, Hashtags: []string{"#devotional"}, BibleConnection: "Lamentations 3:22-23"},
		},
		encouragement: {
			{Title: "Warm Moments, Cold Days", Description: "In-home lifestyle sessions that capture warmth and connection indoors.", ContentType: "carousel", Difficulty: medium, Engagement: 520, Hashtags: []string{"#inhomesession"}},
			{Title: "Year in Review", Description: "Recap your favorite sessions of the year and thank the clients who made it possible.", ContentType: "reel", Difficulty: medium, Engagement: 640, Hashtags: []string{"#yearinreview"}},
		},
	},
}

var holidayTemplates = table{
	"christmas": {
		faith: {
			{Title: "The Reason for the Season", Description: "A nativity-inspired styled shoot with a caption on the gift of Emmanuel.", ContentType: "carousel", Difficulty: hard, Engagement: 720, Hashtags: []string{"#christmas", "#emmanuel"}, BibleConnection: "Luke 2:10-11"},
			{Title: "Christmas Card Countdown", Description: "Remind families of delivery deadlines for holiday cards from their sessions.", ContentType: "story", Difficulty: easy, Engagement: 410, Hashtags: []string{"#christmascards"}},
		},
		encouragement: {
			{Title: "Holiday Gift Guide", Description: "Share session gift cards and print products as meaningful presents.", ContentType: "carousel", Difficulty: easy, Engagement: 560, Hashtags: []string{"#giftguide"}},
			{Title: "Twelve Days of Client Love", Description: "Feature one client story a day leading up to Christmas.", ContentType: "post", Difficulty: medium, Engagement: 610, Hashtags: []string{"#clientlove"}},
		},
	},
	"easter": {
		faith: {
			{Title: "He Is Risen", Description: "Sunrise imagery paired with the resurrection story and an invitation to celebrate.", ContentType: "reel", Difficulty: medium, Engagement: 690, Hashtags: []string{"#heisrisen", "#easter"}, BibleConnection: "Matthew 28:6"},
		},
		encouragement: {
			{Title: "Spring Family Traditions", Description: "Capture egg hunts and Sunday best outfits with tips for candid family photos.", ContentType: "carousel", Difficulty: easy, Engagement: 500, Hashtags: []string{"#familytraditions"}},
		},
	},
	"thanksgiving": {
		faith: {
			{Title: "Give Thanks in All Things", Description: "A gratitude list of clients, answered prayers and favorite frames from the year.", ContentType: "carousel", Difficulty: easy, Engagement: 580, Hashtags: []string{"#givethanks"}, BibleConnection: "1 Thessalonians 5:18"},
		},
		encouragement: {
			{Title: "Grateful for You", Description: "Thank your community with a behind the scenes reel and a small client giveaway.", ContentType: "reel", Difficulty: medium, Engagement: 560, Hashtags: []string{"#grateful"}},
		},
	},
	"valentines": {
		faith: {
			{Title: "Love Is Patient", Description: "Anniversary couples sharing what love has looked like through the years.", ContentType: "carousel", Difficulty: medium, Engagement: 540, Hashtags: []string{"#loveispatient"}, BibleConnection: "1 Corinthians 13:4-7"},
		},
		encouragement: {
			{Title: "Love Notes Mini Sessions", Description: "Promote couples and self-love minis with a playful countdown.", ContentType: "story", Difficulty: easy, Engagement: 470, Hashtags: []string{"#valentinesminis"}},
		},
	},
	"mothers_day": {
		faith: {
			{Title: "She Is Clothed in Strength", Description: "Honor mothers in your community with portraits and their own words.", ContentType: "carousel", Difficulty: medium, Engagement: 620, Hashtags: []string{"#mothersday"}, BibleConnection: "Proverbs 31:25"},
		},
		encouragement: {
			{Title: "Moms Belong in Photos Too", Description: "Encourage moms to get in the frame with a simple how-to and a booking link.", ContentType: "reel", Difficulty: easy, Engagement: 650, Hashtags: []string{"#momsinframe"}},
		},
	},
	"fathers_day": {
		faith: {
			{Title: "A Father's Heart", Description: "Dads and kids sessions with a caption about the Father's love.", ContentType: "carousel", Difficulty: medium, Engagement: 480, Hashtags: []string{"#fathersday"}, BibleConnection: "Psalm 103:13"},
		},
		encouragement: {
			{Title: "Dad Jokes and Candids", Description: "A lighthearted reel of the best candid laughs from dad sessions.", ContentType: "reel", Difficulty: easy, Engagement: 520, Hashtags: []string{"#dadlife"}},
		},
	},
	"new_year": {
		faith: {
			{Title: "Word of the Year", Description: "Share the word you are praying over for the new year and invite followers to share theirs.", ContentType: "post", Difficulty: easy, Engagement: 560, Hashtags: []string{"#wordoftheyear"}, BibleConnection: "Isaiah 43:18-19"},
		},
		encouragement: {
			{Title: "Goals Worth Capturing", Description: "Invite followers to name one milestone they want photographed this year.", ContentType: "carousel", Difficulty: easy, Engagement: 540, Hashtags: []string{"#newyeargoals"}},
		},
	},
	"back_to_school": {
		faith: {
			{Title: "Blessings for the School Year", Description: "First-day portraits paired with a short prayer for students and teachers.", ContentType: "carousel", Difficulty: easy, Engagement: 450, Hashtags: []string{"#backtoschool"}, BibleConnection: "Proverbs 22:6"},
		},
		encouragement: {
			{Title: "First Day Photo Tips", Description: "Quick tips for parents to take great first-day photos on their phones.", ContentType: "reel", Difficulty: easy, Engagement: 590, Hashtags: []string{"#firstdayofschool"}},
		},
	},
}

var nicheTemplates = table{
	"photography": {
		faith: {
			{Title: "Why I Photograph With Purpose", Description: "Tell the story of how your faith shapes the way you serve clients.", ContentType: "reel", Difficulty: medium, Engagement: 520, Hashtags: []string{"#photographerlife"}, BibleConnection: "Colossians 3:23"},
			{Title: "Gear That Serves the Story", Description: "A flat lay of your kit and how each piece helps you tell honest stories.", ContentType: "carousel", Difficulty: easy, Engagement: 380, Hashtags: []string{"#camerabag"}},
		},
		encouragement: {
			{Title: "Editing Breakdown", Description: "Walk through one edit from raw to final with three simple adjustments.", ContentType: "reel", Difficulty: medium, Engagement: 610, Hashtags: []string{"#editingtips"}},
			{Title: "Posing Prompts That Work", Description: "Share five prompts that get real smiles from nervous clients.", ContentType: "carousel", Difficulty: easy, Engagement: 570, Hashtags: []string{"#posingtips"}},
		},
	},
	"wedding": {
		faith: {
			{Title: "A Cord of Three Strands", Description: "Highlight a ceremony moment that centered the couple's faith.", ContentType: "carousel", Difficulty: medium, Engagement: 650, Hashtags: []string{"#christianwedding"}, BibleConnection: "Ecclesiastes 4:12"},
		},
		encouragement: {
			{Title: "Wedding Day Timeline Tips", Description: "Help engaged couples plan a stress-free timeline with room for portraits.", ContentType: "carousel", Difficulty: easy, Engagement: 600, Hashtags: []string{"#weddingplanning"}},
		},
	},
	"portrait": {
		faith: {
			{Title: "Fearfully and Wonderfully Made", Description: "Portrait series celebrating each client's God-given uniqueness.", ContentType: "carousel", Difficulty: medium, Engagement: 560, Hashtags: []string{"#portraitphotography"}, BibleConnection: "Psalm 139:14"},
		},
		encouragement: {
			{Title: "Confidence Session Reveal", Description: "Client reaction video when they see their portraits for the first time.", ContentType: "reel", Difficulty: medium, Engagement: 680, Hashtags: []string{"#confidenceboost"}},
		},
	},
	"small_business": {
		faith: {
			{Title: "Kingdom Business Lessons", Description: "Three lessons about stewardship you learned from running your business.", ContentType: "carousel", Difficulty: easy, Engagement: 490, Hashtags: []string{"#kingdombusiness"}, BibleConnection: "Proverbs 16:3"},
		},
		encouragement: {
			{Title: "Small Business Wins", Description: "Celebrate a recent win and invite other owners to share theirs.", ContentType: "post", Difficulty: easy, Engagement: 450, Hashtags: []string{"#smallbusinesswins"}},
		},
	},
	"fitness": {
		faith: {
			{Title: "Strength for Today", Description: "Workout clip with a verse about strength and perseverance.", ContentType: "reel", Difficulty: easy, Engagement: 510, Hashtags: []string{"#faithandfitness"}, BibleConnection: "Philippians 4:13"},
		},
		encouragement: {
			{Title: "Progress Over Perfection", Description: "Share a client transformation focused on habits rather than numbers.", ContentType: "carousel", Difficulty: medium, Engagement: 590, Hashtags: []string{"#progressnotperfection"}},
		},
	},
	"food": {
		faith: {
			{Title: "Gathered Around the Table", Description: "A styled table shoot with a caption on hospitality and breaking bread.", ContentType: "carousel", Difficulty: medium, Engagement: 530, Hashtags: []string{"#hospitality"}, BibleConnection: "Acts 2:46"},
		},
		encouragement: {
			{Title: "Five-Minute Food Styling", Description: "Quick styling tricks that make home cooking look magazine ready.", ContentType: "reel", Difficulty: easy, Engagement: 620, Hashtags: []string{"#foodstyling"}},
		},
	},
}

var productTemplates = table{
	"digital": {
		faith: {
			{Title: "Introducing {product}", Description: "Share why you prayed over and built {product} to serve your community.", ContentType: "carousel", Difficulty: easy, Engagement: 480, Hashtags: []string{"#digitalproduct"}, BibleConnection: "1 Peter 4:10"},
			{Title: "Inside {product}", Description: "A screen-recorded walkthrough of {product} showing the first three steps.", ContentType: "reel", Difficulty: medium, Engagement: 540, Hashtags: []string{"#behindthescenes"}},
		},
		encouragement: {
			{Title: "Meet {product}", Description: "Explain the problem {product} solves and who it is for in one carousel.", ContentType: "carousel", Difficulty: easy, Engagement: 470, Hashtags: []string{"#newlaunch"}},
			{Title: "What Customers Say About {product}", Description: "Turn testimonials about {product} into a quote series.", ContentType: "post", Difficulty: easy, Engagement: 430, Hashtags: []string{"#testimonial"}},
		},
	},
	"physical": {
		faith: {
			{Title: "Made With Purpose: {product}", Description: "Show the hands and heart behind {product} from start to finish.", ContentType: "reel", Difficulty: medium, Engagement: 560, Hashtags: []string{"#handmade"}, BibleConnection: "Colossians 3:23"},
		},
		encouragement: {
			{Title: "Unboxing {product}", Description: "Film an unboxing of {product} with the small details customers love.", ContentType: "reel", Difficulty: easy, Engagement: 600, Hashtags: []string{"#unboxing"}},
		},
	},
	"service": {
		faith: {
			{Title: "How {product} Serves You", Description: "Walk through what a client experiences when they book {product}.", ContentType: "carousel", Difficulty: easy, Engagement: 450, Hashtags: []string{"#clientexperience"}, BibleConnection: "Mark 10:45"},
		},
		encouragement: {
			{Title: "Is {product} Right for You?", Description: "A quick quiz-style carousel helping followers decide if {product} fits their needs.", ContentType: "carousel", Difficulty: easy, Engagement: 490, Hashtags: []string{"#bookingnow"}},
		},
	},
	"course": {
		faith: {
			{Title: "Why I Created {product}", Description: "Share the calling behind {product} and the students you hope to reach.", ContentType: "reel", Difficulty: medium, Engagement: 520, Hashtags: []string{"#onlinecourse"}, BibleConnection: "2 Timothy 2:2"},
		},
		encouragement: {
			{Title: "Free Lesson From {product}", Description: "Teach one bite-sized lesson from {product} and link to enroll.", ContentType: "carousel", Difficulty: medium, Engagement: 580, Hashtags: []string{"#learnwithme"}},
		},
	},
}

var modeTags = map[core.Mode][]TagEntry{
	faith: {
		{"#faithoverfear", 78}, {"#kingdombusiness", 64}, {"#blessed", 85}, {"#christiancreative", 58},
		{"#faithfulentrepreneur", 52}, {"#godisgood", 80}, {"#walkbyfaith", 66}, {"#purposedriven", 60},
	},
	encouragement: {
		{"#youvegotthis", 74}, {"#keepgoing", 68}, {"#encouragement", 70}, {"#believeinyourself", 72},
		{"#positivevibes", 82}, {"#smallstepsbigdreams", 55}, {"#motivation", 88}, {"#dreambig", 65},
	},
}

var seasonTags = map[string][]TagEntry{
	"spring": {{"#springvibes", 76}, {"#springminis", 60}, {"#bloom", 55}},
	"summer": {{"#summervibes", 84}, {"#goldenhour", 79}, {"#summersessions", 58}},
	"fall":   {{"#fallvibes", 81}, {"#autumnleaves", 73}, {"#fallminis", 66}},
	"winter": {{"#winterwonderland", 77}, {"#holidayseason", 80}, {"#cozyseason", 62}},
}

var nicheTags = map[string][]TagEntry{
	"photography":    {{"#photographer", 88}, {"#photooftheday", 90}, {"#portraitmode", 61}, {"#lightroom", 57}},
	"wedding":        {{"#weddingphotography", 86}, {"#bridetobe", 80}, {"#weddinginspo", 74}},
	"portrait":       {{"#portraitphotography", 84}, {"#headshots", 63}, {"#brandingphotos", 59}},
	"small_business": {{"#smallbusiness", 89}, {"#shopsmall", 82}, {"#entrepreneur", 86}, {"#womeninbusiness", 71}},
	"fitness":        {{"#fitnessmotivation", 87}, {"#workout", 85}, {"#healthylifestyle", 78}},
	"food":           {{"#foodie", 90}, {"#homecooking", 72}, {"#foodphotography", 76}},
}

var educational = map[core.Mode][]Template{
	faith: {
		{Title: "Stewarding Your Gifts in Business", Description: "Teach how you set prices and boundaries as an act of stewardship.", ContentType: "carousel", Difficulty: medium, Engagement: 460, BibleConnection: "Matthew 25:14-30"},
		{Title: "Prayer Before Every Session", Description: "Share your pre-session routine and how it calms you and your clients.", ContentType: "reel", Difficulty: easy, Engagement: 410, BibleConnection: "Philippians 4:6"},
		{Title: "Serving Clients Well", Description: "Five ways to turn a photo session into a ministry of encouragement.", ContentType: "carousel", Difficulty: easy, Engagement: 440, BibleConnection: "Galatians 5:13"},
		{Title: "Rest and Rhythm for Creatives", Description: "How a weekly sabbath keeps your creativity healthy.", ContentType: "post", Difficulty: easy, Engagement: 360, BibleConnection: "Exodus 20:8-10"},
		{Title: "Integrity in Editing", Description: "Your approach to honest retouching and why it matters.", ContentType: "reel", Difficulty: medium, Engagement: 390, BibleConnection: "Proverbs 11:3"},
	},
	encouragement: {
		{Title: "Lighting Basics in 60 Seconds", Description: "Explain window light, backlight and open shade with one example each.", ContentType: "reel", Difficulty: easy, Engagement: 590},
		{Title: "Pricing With Confidence", Description: "A simple formula for pricing sessions so your business stays sustainable.", ContentType: "carousel", Difficulty: medium, Engagement: 520},
		{Title: "What to Wear Guide", Description: "Color palettes and textures that photograph well in every season.", ContentType: "carousel", Difficulty: easy, Engagement: 560},
		{Title: "Beating Creative Burnout", Description: "Three habits that help you stay inspired during busy seasons.", ContentType: "post", Difficulty: easy, Engagement: 430},
		{Title: "Client Communication Scripts", Description: "Templates for inquiries, reminders and gallery delivery emails.", ContentType: "carousel", Difficulty: medium, Engagement: 470},
	},
}

var goalTemplates = map[core.Mode][]Template{
	faith: {
		{Title: "Faithful Steps Toward {goal}", Description: "Share one step you are taking this week toward {target} and invite prayer for the journey.", ContentType: "post", Difficulty: easy, Engagement: 420, BibleConnection: "Proverbs 16:9"},
		{Title: "Trusting God With {goal}", Description: "A reel on surrendering results while working diligently toward {target}.", ContentType: "reel", Difficulty: medium, Engagement: 480, BibleConnection: "Proverbs 3:5-6"},
		{Title: "Kingdom Growth: {goal}", Description: "Carousel breaking down how you plan to serve more people on the way to {target}.", ContentType: "carousel", Difficulty: medium, Engagement: 450, BibleConnection: "Colossians 3:23"},
	},
	encouragement: {
		{Title: "Road to {goal}", Description: "Document your progress toward {target} and celebrate the small wins publicly.", ContentType: "post", Difficulty: easy, Engagement: 430},
		{Title: "Behind the Goal: {goal}", Description: "Behind the scenes of the habits that will get you to {target}.", ContentType: "reel", Difficulty: medium, Engagement: 500},
		{Title: "Help Me Reach {goal}", Description: "Invite your community to be part of reaching {target} with a clear call to action.", ContentType: "carousel", Difficulty: easy, Engagement: 460},
	},
}

var viralFormats = []Format{
	{Name: "Before & After", ContentType: "reel", Multiplier: 1.6, Difficulty: easy},
	{Name: "Day in the Life", ContentType: "reel", Multiplier: 1.4, Difficulty: medium},
	{Name: "Behind the Scenes", ContentType: "reel", Multiplier: 1.3, Difficulty: easy},
	{Name: "Myth vs Fact", ContentType: "carousel", Multiplier: 1.2, Difficulty: easy},
	{Name: "Step-by-Step Tutorial", ContentType: "carousel", Multiplier: 1.5, Difficulty: medium},
	{Name: "Client Reaction", ContentType: "reel", Multiplier: 1.7, Difficulty: hard},
}

var weeklyThemes = map[core.Mode][]DayTheme{
	faith: {
		{"Monday", "Motivation and Scripture", "post"},
		{"Tuesday", "Teaching Tuesday", "carousel"},
		{"Wednesday", "Client Testimony", "carousel"},
		{"Thursday", "Behind the Scenes", "reel"},
		{"Friday", "Faith at Work", "reel"},
		{"Saturday", "Community Spotlight", "story"},
		{"Sunday", "Sabbath Reflection", "post"},
	},
	encouragement: {
		{"Monday", "Monday Motivation", "post"},
		{"Tuesday", "Tips and Tutorials", "carousel"},
		{"Wednesday", "Client Wins", "carousel"},
		{"Thursday", "Behind the Scenes", "reel"},
		{"Friday", "Feel-Good Friday", "reel"},
		{"Saturday", "Community Spotlight", "story"},
		{"Sunday", "Rest and Reset", "post"},
	},
}
