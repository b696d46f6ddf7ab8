package main

import "time"

// Seed collections. Loaded into the Store once at process start; everything
// here is show-canon flavored demo data.

var seedCharacters = []Character{
	{
		ID:                "ted-lasso",
		Name:              "Ted Lasso",
		Role:              RoleCoach,
		TeamID:            "afc-richmond",
		DateOfBirth:       "1970-09-22",
		Email:             "ted.lasso@afcrichmond.com",
		ProfileImageURL:   "https://afcrichmond.com/images/ted-lasso.jpg",
		SalaryGBP:         "150000.00",
		HeightMeters:      1.83,
		Background:        "Former American football coach from Kansas who moved to London to coach AFC Richmond",
		PersonalityTraits: []string{"optimistic", "kind", "folksy", "persistent"},
		EmotionalStats: EmotionalStats{
			Optimism: 95, Vulnerability: 80, Empathy: 100, Resilience: 90, Curiosity: 99,
		},
		SignatureQuotes: []string{
			"Be curious, not judgmental.",
			"I believe in believe.",
			"Be a goldfish.",
		},
		GrowthArcs: []GrowthArc{
			{
				Season:        1,
				StartingPoint: "Fish out of water, hiding pain with humor",
				Challenge:     "Earning respect despite inexperience",
				Breakthrough:  "Showing vulnerability about his marriage",
				EndingPoint:   "Accepted by the team despite relegation",
			},
		},
	},
	{
		ID:                "rebecca-welton",
		Name:              "Rebecca Welton",
		Role:              RoleOwner,
		TeamID:            "afc-richmond",
		Email:             "rebecca@afcrichmond.com",
		HeightMeters:      1.80,
		Background:        "Owner of AFC Richmond, initially hired Ted to sabotage the club her ex-husband loves",
		PersonalityTraits: []string{"poised", "guarded", "witty", "loyal"},
		EmotionalStats: EmotionalStats{
			Optimism: 55, Vulnerability: 45, Empathy: 75, Resilience: 95, Curiosity: 70,
		},
		SignatureQuotes: []string{
			"I'd like to propose a toast to Ted Lasso.",
		},
		GrowthArcs: []GrowthArc{
			{
				Season:        1,
				StartingPoint: "Consumed by revenge against Rupert",
				Challenge:     "Choosing the club over her own bitterness",
				Breakthrough:  "Confessing the sabotage plot to Ted",
				EndingPoint:   "Genuine champion of Richmond and its people",
			},
		},
	},
	{
		ID:                "roy-kent",
		Name:              "Roy Kent",
		Role:              RolePlayer,
		TeamID:            "afc-richmond",
		HeightMeters:      1.75,
		Background:        "Legendary midfielder and club captain in the twilight of his playing career",
		PersonalityTraits: []string{"gruff", "honest", "protective", "secretly soft"},
		EmotionalStats: EmotionalStats{
			Optimism: 30, Vulnerability: 40, Empathy: 80, Resilience: 85, Curiosity: 50,
		},
		SignatureQuotes: []string{
			"He's here, he's there, he's every-f***ing-where.",
		},
		GrowthArcs: []GrowthArc{
			{
				Season:        1,
				StartingPoint: "Angry captain refusing to accept decline",
				Challenge:     "Leading a dressing room that has stopped listening",
				Breakthrough:  "Benching himself for the good of the team",
				EndingPoint:   "At peace with the end of his playing days",
			},
		},
	},
	{
		ID:                "keeley-jones",
		Name:              "Keeley Jones",
		Role:              RoleStaff,
		TeamID:            "afc-richmond",
		Background:        "Model turned brand and PR manager for AFC Richmond",
		PersonalityTraits: []string{"bubbly", "sharp", "supportive", "ambitious"},
		EmotionalStats: EmotionalStats{
			Optimism: 88, Vulnerability: 70, Empathy: 90, Resilience: 75, Curiosity: 85,
		},
	},
	{
		ID:                "jamie-tartt",
		Name:              "Jamie Tartt",
		Role:              RolePlayer,
		TeamID:            "afc-richmond",
		HeightMeters:      1.80,
		Background:        "Gifted, cocky young striker learning to be a team player",
		PersonalityTraits: []string{"talented", "arrogant", "wounded", "improving"},
		EmotionalStats: EmotionalStats{
			Optimism: 65, Vulnerability: 35, Empathy: 40, Resilience: 70, Curiosity: 45,
		},
		SignatureQuotes: []string{
			"Jamie Tartt, doo doo doo doo doo doo.",
		},
		GrowthArcs: []GrowthArc{
			{
				Season:        1,
				StartingPoint: "Selfish star chasing personal glory",
				Challenge:     "Sharing the spotlight with his teammates",
				Breakthrough:  "The extra pass against Manchester City",
				EndingPoint:   "Starting to understand what a team is",
			},
		},
	},
	{
		ID:                "coach-beard",
		Name:              "Coach Beard",
		Role:              RoleCoach,
		TeamID:            "afc-richmond",
		Background:        "Ted's enigmatic right-hand man and tactical brain",
		PersonalityTraits: []string{"quiet", "brilliant", "mysterious", "loyal"},
		EmotionalStats: EmotionalStats{
			Optimism: 60, Vulnerability: 50, Empathy: 70, Resilience: 80, Curiosity: 98,
		},
	},
	{
		ID:                "sam-obisanya",
		Name:              "Sam Obisanya",
		Role:              RolePlayer,
		TeamID:            "afc-richmond",
		Background:        "Kind-hearted Nigerian right back turned forward, conscience of the squad",
		PersonalityTraits: []string{"kind", "principled", "joyful", "brave"},
		EmotionalStats: EmotionalStats{
			Optimism: 90, Vulnerability: 75, Empathy: 95, Resilience: 80, Curiosity: 85,
		},
	},
	{
		ID:                "trent-crimm",
		Name:              "Trent Crimm",
		Role:              RoleJournalist,
		Background:        "Formerly of The Independent; cynical journalist won over by the Lasso way",
		PersonalityTraits: []string{"skeptical", "eloquent", "fair", "curious"},
		EmotionalStats: EmotionalStats{
			Optimism: 50, Vulnerability: 55, Empathy: 70, Resilience: 65, Curiosity: 95,
		},
		SignatureQuotes: []string{
			"Trent Crimm, The Independent.",
		},
	},
}

var seedTeams = []Team{
	{
		ID:                "afc-richmond",
		Name:              "AFC Richmond",
		Nickname:          "The Greyhounds",
		League:            "Premier League",
		Stadium:           "Nelson Road",
		StadiumLocation:   &GeoLocation{Latitude: 51.4816, Longitude: -0.1910},
		FoundedYear:       1897,
		Website:           "https://www.afcrichmond.com",
		ContactEmail:      "info@afcrichmond.com",
		AnnualBudgetGBP:   "50000000.00",
		AverageAttendance: 24500.5,
		WinPercentage:     45.5,
		CultureScore:      85,
		IsActive:          true,
		Values: TeamValues{
			PrimaryValue:    "Believe",
			SecondaryValues: []string{"Family", "Resilience", "Joy"},
			TeamMotto:       "Football is life!",
		},
		RivalTeams:     []string{"west-ham"},
		PrimaryColor:   "#0033A0",
		SecondaryColor: "#FFFFFF",
	},
	{
		ID:                "west-ham",
		Name:              "West Ham United",
		Nickname:          "The Hammers",
		League:            "Premier League",
		Stadium:           "London Stadium",
		StadiumLocation:   &GeoLocation{Latitude: 51.5387, Longitude: -0.0166},
		FoundedYear:       1895,
		Website:           "https://www.whufc.com",
		ContactEmail:      "info@westhamunited.co.uk",
		AnnualBudgetGBP:   "150000000.00",
		AverageAttendance: 59988.0,
		WinPercentage:     52.3,
		CultureScore:      70,
		IsActive:          true,
		Values: TeamValues{
			PrimaryValue:    "Pride",
			SecondaryValues: []string{"History", "Community", "Passion"},
			TeamMotto:       "Forever Blowing Bubbles",
		},
		RivalTeams:     []string{"afc-richmond"},
		PrimaryColor:   "#7A263A",
		SecondaryColor: "#1BB1E7",
	},
	{
		ID:           "manchester-city",
		Name:         "Manchester City",
		Nickname:     "The Citizens",
		League:       "Premier League",
		Stadium:      "Etihad Stadium",
		FoundedYear:  1880,
		CultureScore: 75,
		IsActive:     true,
		Values: TeamValues{
			PrimaryValue:    "Excellence",
			SecondaryValues: []string{"Dominance", "Precision"},
			TeamMotto:       "Superbia in Proelio",
		},
		RivalTeams: []string{"afc-richmond"},
	},
}

var seedMatches = []Match{
	{
		ID:         "match-001",
		HomeTeamID: "afc-richmond",
		AwayTeamID: "manchester-city",
		MatchType:  MatchLeague,
		Date:       time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
		HomeScore:  2,
		AwayScore:  2,
		Result:     ResultDraw,
		EpisodeID:  "s01e10",
		TurningPoints: []TurningPoint{
			{
				Minute:            89,
				Description:       "Jamie Tartt passes to Sam instead of shooting",
				EmotionalImpact:   "Showed Jamie's growth from selfish to team player",
				CharacterInvolved: "jamie-tartt",
			},
		},
		LessonLearned:        "Sometimes a tie feels like a win when you've grown as people.",
		TedHalftimeSpeech:    "Guys, I want you to know, I don't care if we win or lose today. I just want you to go out there and play the best football of your lives.",
		Attendance:           24500,
		TicketRevenueGBP:     "735000.00",
		PossessionPercentage: 52.3,
		WeatherTempCelsius:   14.5,
	},
	{
		ID:         "match-002",
		HomeTeamID: "west-ham",
		AwayTeamID: "afc-richmond",
		MatchType:  MatchLeague,
		Date:       time.Date(2024, 2, 3, 17, 30, 0, 0, time.UTC),
		HomeScore:  1,
		AwayScore:  2,
		Result:     ResultLoss,
		TurningPoints: []TurningPoint{
			{
				Minute:            67,
				Description:       "Roy Kent's thunderous tackle wins back possession",
				EmotionalImpact:   "Galvanized the team's fighting spirit",
				CharacterInvolved: "roy-kent",
			},
		},
		LessonLearned:      "Playing against your old boss is just another game, unless you let it be more.",
		Attendance:         59850,
		WeatherTempCelsius: 8.0,
	},
	{
		ID:         "match-003",
		HomeTeamID: "afc-richmond",
		AwayTeamID: "west-ham",
		MatchType:  MatchFriendly,
		Date:       time.Date(2024, 7, 20, 14, 0, 0, 0, time.UTC),
		Result:     ResultPending,
		Attendance: 0,
	},
}

var seedEpisodes = []Episode{
	{
		ID:                     "s01e01",
		Season:                 1,
		EpisodeNumber:          1,
		Title:                  "Pilot",
		Director:               "Tom Marshall",
		Writer:                 "Jason Sudeikis, Bill Lawrence, Brendan Hunt, Joe Kelly",
		AirDate:                "2020-08-14",
		RuntimeMinutes:         30,
		ViewerRating:           7.8,
		USViewersMillions:      0.9,
		Synopsis:               "American football coach Ted Lasso is hired to manage AFC Richmond, a struggling English Premier League team.",
		MainTheme:              "Taking chances and believing in yourself",
		TedWisdom:              "Taking on a challenge is a lot like riding a horse. If you're comfortable while you're doing it, you're probably doing it wrong.",
		BiscuitsWithBossMoment: "Ted brings Rebecca homemade biscuits for the first time, beginning their bonding ritual.",
		CharacterFocus:         []string{"ted-lasso", "rebecca-welton"},
		MemorableMoments: []string{
			"Ted's first press conference",
			"The BELIEVE sign goes up",
		},
	},
	{
		ID:                     "s01e08",
		Season:                 1,
		EpisodeNumber:          8,
		Title:                  "The Diamond Dogs",
		Director:               "MJ Delaney",
		Writer:                 "Jason Sudeikis, Brendan Hunt, Joe Kelly",
		AirDate:                "2020-10-02",
		RuntimeMinutes:         29,
		ViewerRating:           9.1,
		USViewersMillions:      1.42,
		Synopsis:               "Ted creates a support group for the coaching staff while Rebecca faces a difficult decision about her future.",
		MainTheme:              "The power of vulnerability and male friendship",
		TedWisdom:              "There's two buttons I never like to hit: that's panic and snooze.",
		BiscuitsWithBossMoment: "Ted and Rebecca have an honest conversation about trust.",
		CharacterFocus:         []string{"ted-lasso", "coach-beard", "rebecca-welton"},
		MemorableMoments: []string{
			"First Diamond Dogs meeting",
			"The famous dart scene with Rupert",
			"Be curious, not judgmental speech",
		},
	},
	{
		ID:                "s01e10",
		Season:            1,
		EpisodeNumber:     10,
		Title:             "The Hope That Kills You",
		Director:          "MJ Delaney",
		Writer:            "Jason Sudeikis, Brendan Hunt, Joe Kelly",
		AirDate:           "2020-10-09",
		RuntimeMinutes:    33,
		ViewerRating:      9.3,
		USViewersMillions: 1.55,
		Synopsis:          "Richmond faces Manchester City in a must-win match to avoid relegation.",
		MainTheme:         "Hope, heartbreak, and what it means to lose together",
		TedWisdom:         "I want you to be grateful that you're going through this sad moment with all these other folks. Because I promise you, there is something worse out there than being sad, and that is being alone and being sad.",
		CharacterFocus:    []string{"ted-lasso", "jamie-tartt", "sam-obisanya"},
		MemorableMoments: []string{
			"Jamie's selfless pass",
			"The locker room speech after relegation",
		},
	},
	{
		ID:             "s02e05",
		Season:         2,
		EpisodeNumber:  5,
		Title:          "Rainbow",
		Director:       "Erica Dunton",
		Writer:         "Jason Sudeikis, Brendan Hunt, Joe Kelly",
		AirDate:        "2021-08-20",
		RuntimeMinutes: 38,
		ViewerRating:   8.9,
		Synopsis:       "Ted helps Roy realize his true calling lies back at Nelson Road.",
		MainTheme:      "Finding where you truly belong",
		TedWisdom:      "Fate only gets you so far. The rest is up to you.",
		CharacterFocus: []string{"roy-kent", "ted-lasso"},
		MemorableMoments: []string{
			"Roy's rom-com run to the stadium",
			"'He's here, he's there' chant returns",
		},
	},
}

var seedQuotes = []Quote{
	{
		ID:              "quote-001",
		Text:            "Be curious, not judgmental.",
		CharacterID:     "ted-lasso",
		EpisodeID:       "s01e08",
		Context:         "Ted playing darts against Rupert in the pub, explaining his philosophy",
		Theme:           "curiosity",
		SecondaryThemes: []string{"wisdom", "kindness"},
		MomentType:      "pub",
		IsInspirational: true,
		PopularityScore: 95.5,
		TimesShared:     150000,
	},
	{
		ID:              "quote-002",
		Text:            "You know what the happiest animal on Earth is? It's a goldfish. You know why? It's got a 10-second memory.",
		CharacterID:     "ted-lasso",
		EpisodeID:       "s01e02",
		Context:         "Ted coaching Sam after a rough training session",
		Theme:           "resilience",
		SecondaryThemes: []string{"wisdom"},
		MomentType:      "training",
		IsInspirational: true,
		IsFunny:         true,
		PopularityScore: 93.0,
		TimesShared:     120000,
	},
	{
		ID:              "quote-003",
		Text:            "I believe in believe.",
		CharacterID:     "ted-lasso",
		EpisodeID:       "s01e01",
		Context:         "Ted hanging the BELIEVE sign in the locker room",
		Theme:           "belief",
		SecondaryThemes: []string{"leadership"},
		MomentType:      "locker_room",
		IsInspirational: true,
		PopularityScore: 91.2,
		TimesShared:     98000,
	},
	{
		ID:              "quote-004",
		Text:            "Football is life!",
		CharacterID:     "ted-lasso",
		Context:         "Dani Rojas's joyful battle cry, adopted by the whole club",
		Theme:           "celebration",
		SecondaryThemes: []string{"humor"},
		MomentType:      "training",
		IsInspirational: true,
		IsFunny:         true,
		PopularityScore: 89.9,
		TimesShared:     87000,
	},
	{
		ID:              "quote-005",
		Text:            "Taking on a challenge is a lot like riding a horse. If you're comfortable while you're doing it, you're probably doing it wrong.",
		CharacterID:     "ted-lasso",
		EpisodeID:       "s01e01",
		Context:         "Ted's first conversation with the press about taking the Richmond job",
		Theme:           "growth",
		SecondaryThemes: []string{"wisdom", "humor"},
		MomentType:      "press_conference",
		IsInspirational: true,
		PopularityScore: 82.1,
		TimesShared:     45000,
	},
	{
		ID:              "quote-006",
		Text:            "Be a goldfish.",
		CharacterID:     "ted-lasso",
		EpisodeID:       "s01e02",
		Context:         "Shortened form of the goldfish wisdom, used all over the club",
		Theme:           "resilience",
		MomentType:      "training",
		IsInspirational: true,
		PopularityScore: 96.0,
		TimesShared:     200000,
	},
	{
		ID:              "quote-007",
		Text:            "I promise you there is something worse out there than being sad, and that's being alone and being sad.",
		CharacterID:     "ted-lasso",
		EpisodeID:       "s01e10",
		Context:         "The locker room after relegation is confirmed",
		Theme:           "vulnerability",
		SecondaryThemes: []string{"teamwork", "love"},
		MomentType:      "locker_room",
		IsInspirational: true,
		PopularityScore: 88.4,
		TimesShared:     76000,
	},
	{
		ID:              "quote-008",
		Text:            "He's here, he's there, he's every-f***ing-where.",
		CharacterID:     "roy-kent",
		Context:         "The Nelson Road chant for the club captain",
		Theme:           "celebration",
		SecondaryThemes: []string{"identity"},
		MomentType:      "celebration",
		IsFunny:         true,
		PopularityScore: 85.3,
		TimesShared:     64000,
	},
	{
		ID:              "quote-009",
		Text:            "Trent Crimm, The Independent.",
		CharacterID:     "trent-crimm",
		EpisodeID:       "s01e01",
		Context:         "Trent's trademark introduction at every press conference",
		Theme:           "identity",
		MomentType:      "press_conference",
		IsFunny:         true,
		PopularityScore: 80.0,
		TimesShared:     52000,
	},
	{
		ID:              "quote-010",
		Text:            "I'd like to propose a toast to Ted Lasso.",
		CharacterID:     "rebecca-welton",
		Context:         "Rebecca publicly backing Ted after confessing her sabotage",
		Theme:           "forgiveness",
		SecondaryThemes: []string{"growth"},
		MomentType:      "celebration",
		IsInspirational: true,
		PopularityScore: 71.5,
		TimesShared:     21000,
	},
}

var seedTeamMembers = []TeamMember{
	{
		ID:         "member-jamie",
		MemberType: "player",
		Name:       "Jamie Tartt",
		JoinedDate: "2019-08-01",
		Player: &PlayerDetail{
			Position:     "Forward",
			JerseyNumber: 9,
			Nationality:  "England",
			Goals:        14,
			Assists:      6,
		},
	},
	{
		ID:         "member-sam",
		MemberType: "player",
		Name:       "Sam Obisanya",
		JoinedDate: "2019-07-15",
		Player: &PlayerDetail{
			Position:     "Forward",
			JerseyNumber: 24,
			Nationality:  "Nigeria",
			Goals:        9,
			Assists:      5,
		},
	},
	{
		ID:         "member-dani",
		MemberType: "player",
		Name:       "Dani Rojas",
		JoinedDate: "2020-01-10",
		Player: &PlayerDetail{
			Position:     "Midfielder",
			JerseyNumber: 10,
			Nationality:  "Mexico",
			Goals:        11,
			Assists:      8,
		},
	},
	{
		ID:         "member-ted",
		MemberType: "coach",
		Name:       "Ted Lasso",
		JoinedDate: "2020-08-01",
		Coach: &CoachDetail{
			CoachingRole:    "Head Coach",
			YearsExperience: 12,
			Philosophy:      "Believe in each other, and win or lose, grow as people.",
		},
	},
	{
		ID:         "member-beard",
		MemberType: "coach",
		Name:       "Coach Beard",
		JoinedDate: "2020-08-01",
		Coach: &CoachDetail{
			CoachingRole:    "Assistant Coach",
			YearsExperience: 12,
			Philosophy:      "The answer is in a book somewhere.",
		},
	},
	{
		ID:         "member-higgins",
		MemberType: "staff",
		Name:       "Leslie Higgins",
		JoinedDate: "2005-03-01",
		Staff: &StaffDetail{
			Department: "Football Operations",
			JobTitle:   "Director of Football Operations",
		},
	},
	{
		ID:         "member-keeley",
		MemberType: "staff",
		Name:       "Keeley Jones",
		JoinedDate: "2020-10-01",
		Staff: &StaffDetail{
			Department: "Marketing",
			JobTitle:   "Head of Brand & PR",
		},
	},
}

var coachingPrinciples = []CoachingPrinciple{
	{
		ID:              "believe",
		Principle:       "Believe",
		Explanation:     "Success starts with believing in yourself and the people around you, before any evidence arrives.",
		Application:     "Put up a BELIEVE sign where you can see it daily. When doubt creeps in, remember why you started.",
		ExampleFromShow: "Ted hangs the BELIEVE sign in the locker room, and it becomes a rallying symbol for the team.",
		TedQuote:        "I believe in believe.",
	},
	{
		ID:              "be-curious",
		Principle:       "Be Curious, Not Judgmental",
		Explanation:     "Ask questions before forming opinions. Judgment closes doors; curiosity opens them.",
		Application:     "When someone frustrates you, ask one genuine question about their perspective before responding.",
		ExampleFromShow: "Ted explains this principle while beating Rupert at darts, revealing that Rupert never bothered to learn that Ted was a dart champion.",
		TedQuote:        "Be curious, not judgmental.",
	},
	{
		ID:              "goldfish",
		Principle:       "Be a Goldfish",
		Explanation:     "Don't dwell on mistakes or setbacks. A goldfish has a 10-second memory - be like the goldfish.",
		Application:     "When you make a mistake, acknowledge it, learn from it, and move on quickly.",
		ExampleFromShow: "Ted tells Sam to 'be a goldfish' after he misses a shot, helping him shake off the disappointment.",
		TedQuote:        "You know what the happiest animal on Earth is? It's a goldfish. You know why? It's got a 10-second memory.",
	},
	{
		ID:              "diamond-dogs",
		Principle:       "Diamond Dogs",
		Explanation:     "Build a trusted circle where people can be vulnerable and ask for help without judgment.",
		Application:     "Create a regular space where your team can talk about anything, work or otherwise, with full support.",
		ExampleFromShow: "The coaching staff forms the Diamond Dogs to talk through personal problems together.",
		TedQuote:        "Diamond Dogs, assemble!",
	},
	{
		ID:              "total-football",
		Principle:       "Everyone Plays Every Role",
		Explanation:     "Rigid roles limit growth. Understanding each other's jobs builds empathy and flexibility.",
		Application:     "Rotate responsibilities occasionally so everyone appreciates what their teammates carry.",
		ExampleFromShow: "Richmond adopts Total Football, asking every player to think beyond their position.",
		TedQuote:        "It's about the whole being stronger than the sum of its parts.",
	},
	{
		ID:              "biscuits",
		Principle:       "Biscuits With the Boss",
		Explanation:     "Small, consistent acts of kindness build trust faster than any grand gesture.",
		Application:     "Find your version of biscuits - a small daily ritual that shows someone they matter.",
		ExampleFromShow: "Ted brings Rebecca homemade biscuits every morning until their guarded relationship becomes a real friendship.",
		TedQuote:        "Biscuits are biscuits. It's the showing up that counts.",
	},
}

var biscuitBox = []Biscuit{
	{
		ID:            "classic-shortbread",
		Type:          BiscuitClassicShortbread,
		Message:       "You're doing great, boss!",
		WarmthLevel:   8,
		PairsWellWith: "A cup of English breakfast tea and a good chat",
		TedNote:       "Made these thinking of you. Hope they brighten your day!",
	},
	{
		ID:            "chocolate-chip",
		Type:          BiscuitChocolateChip,
		Message:       "Life is like a box of biscuits - you never know which one's gonna have the most chocolate chips!",
		WarmthLevel:   7,
		PairsWellWith: "A glass of cold milk and a football match on the telly",
		TedNote:       "Added extra chocolate chips because you deserve it!",
	},
	{
		ID:            "victory-batch",
		Type:          BiscuitVictoryBatch,
		Message:       "Sweet like three points on a Saturday!",
		WarmthLevel:   9,
		PairsWellWith: "Champagne, or sparkling apple juice if you're in training",
		TedNote:       "Baked these the morning after the win. Still warm with pride!",
	},
	{
		ID:            "apology-batch",
		Type:          BiscuitApologyBatch,
		Message:       "Sorry works best when it comes with butter and sugar.",
		WarmthLevel:   10,
		PairsWellWith: "An honest conversation and a fresh start",
		TedNote:       "I messed up, and I own that. These are a down payment on making it right.",
	},
}

var pepTalkSegments = []string{
	"Hey there, friend. I heard you might be needing a little boost today.",
	"Now, I know things might seem tough right now. And you know what? That's okay.",
	"Tough times are like that one relative at Thanksgiving - they show up whether you want them to or not, but they don't stay forever.",
	"Here's the thing about you, though. You've got something special. I can feel it all the way from here.",
	"You know what a goldfish would do in your situation? It would forget the bad stuff and just keep swimming.",
	"Every champion I've ever met has one thing in common: they kept showing up, even when it was hard. Especially when it was hard.",
	"So here's what we're gonna do. We're gonna take a deep breath. We're gonna stand up a little taller.",
	"And we're gonna believe. Not because it's easy, but because believing is the first step to becoming.",
	"Now get out there and be the best darn version of yourself this world has ever seen. I believe in you!",
}

// believeResponses is keyed by situation type.
var believeResponses = map[string][]string{
	"work_challenge": {
		"Work challenges are like a tough opponent - they show up to make you better, whether you asked for it or not.",
		"Every hard day at work is just practice for the person you're becoming. And practice makes progress.",
		"You know what I love about a big work challenge? It means somebody believes you can handle it.",
	},
	"personal_setback": {
		"Setbacks are just setups for comebacks. I've seen it a hundred times, and I'll see it a hundred more.",
		"This right here is a chapter, not the whole book. And you're the one holding the pen.",
	},
	"team_conflict": {
		"Teams are like families - a little friction just means folks care. The trick is caring out loud, kindly.",
		"Conflict on a team is a sign people are invested. Now let's turn that investment into understanding.",
	},
	"self_doubt": {
		"Doubting yourself just means you're taking the thing seriously. Now let's aim that seriousness at trying.",
		"You know who else doubted themselves? Every single person who ever did anything worth doing.",
		"I've doubted myself plenty. Then I remembered: you don't have to feel ready, you just have to show up.",
	},
	"failure": {
		"Failure isn't the opposite of success, it's an ingredient of it. Like buttermilk in biscuits.",
		"You didn't fail - you found one more way that didn't work. Edison talk, but it's true.",
	},
	"big_decision": {
		"Big decisions feel heavy because they matter. Heavy things build muscles.",
		"There's no perfect choice, friend. There's just the choice you make, and what you make of it.",
	},
	"new_beginning": {
		"New beginnings are scary and exciting, and the difference between the two is mostly breathing.",
		"Every expert was once a beginner who refused to quit. Welcome to day one!",
	},
	"relationship": {
		"Relationships are like gardens - they grow with attention, honesty, and the occasional bit of fertilizer. That last part's a metaphor for hard conversations.",
		"The best relationships aren't the ones without problems. They're the ones where both folks keep choosing each other anyway.",
	},
}

// reframeTemplates maps negative-thought substrings to canned reframes,
// checked in order.
var reframeTemplates = []struct {
	Pattern        string
	Reframe        string
	TedPerspective string
}{
	{
		Pattern:        "not good enough",
		Reframe:        "I'm still learning and growing in this role, and every challenge is an opportunity to become even better.",
		TedPerspective: "Now shoot, feeling like you're not good enough? That just means you care! The day you stop caring is the day you should worry. You wouldn't be in this job if someone didn't believe in you.",
	},
	{
		Pattern:        "always fail",
		Reframe:        "I have succeeded before and I can succeed again. Each attempt teaches me something new.",
		TedPerspective: "Always? That's a mighty big word. I bet if we sat down with some biscuits, we'd find a whole list of things you've done right.",
	},
	{
		Pattern:        "can't do",
		Reframe:        "I haven't done this yet, and 'yet' is one of the most powerful words there is.",
		TedPerspective: "Can't is just can wearing a disguise and a bad attitude. Add a 'yet' to the end of that sentence and watch what happens.",
	},
	{
		Pattern:        "nobody likes",
		Reframe:        "I am worthy of connection, and the right people appreciate me for who I am.",
		TedPerspective: "Now hold on - I like you already, and we just met. Sometimes our brains tell us stories that the facts just don't back up.",
	},
	{
		Pattern:        "too late",
		Reframe:        "The best time to start was yesterday. The second best time is right now.",
		TedPerspective: "Too late? Friend, Roy Kent thought his story was over, and he was just getting to the good part.",
	},
}
