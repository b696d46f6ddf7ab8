package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

var goldfishWisdom = []string{
	"Remember: be a goldfish. 10-second memory for the bad stuff, eternal memory for the good.",
	"You know what a goldfish never does? Dwell. Be a goldfish.",
	"Goldfish don't worry about yesterday's problems. Neither should you.",
	"The happiest animal on Earth has a 10-second memory. There's a lesson there.",
}

var actionSuggestions = map[string][]string{
	"work_challenge": {
		"Take one small step today. Just one. That's all you need to do.",
		"Talk to someone you trust about it. Diamond Dogs style.",
		"Write down three things that could go right instead of wrong.",
	},
	"personal_setback": {
		"Do something kind for yourself today - you've earned it.",
		"Call someone who makes you laugh. Laughter is underrated medicine.",
		"Take a walk. Sometimes the best thinking happens when you're moving.",
	},
	"team_conflict": {
		"Invite the other person for coffee. Neutral ground works wonders.",
		"Ask one genuine question about their perspective before sharing yours.",
		"Write down what you both actually want - you might find it's the same thing.",
	},
	"self_doubt": {
		"Make a list of three things you've done well this week. No matter how small.",
		"Tell someone you trust how you're feeling. Vulnerability is strength.",
		"Do one thing that scares you a little - confidence comes from action.",
	},
	"failure": {
		"Write down what you learned. Every failure is a lesson in disguise.",
		"Reach out to someone who's failed their way to success. You'd be surprised how many there are.",
		"Give yourself permission to try again tomorrow. Fresh starts are free.",
	},
	"big_decision": {
		"List the pros and cons, then throw the list away and trust your gut.",
		"Talk to someone who's made a similar decision. Learn from their journey.",
		"Sleep on it, but set a deadline. Decisions need breathing room, not forever.",
	},
	"new_beginning": {
		"Embrace the discomfort - it means you're growing.",
		"Connect with one new person in your new situation today.",
		"Create a small ritual that feels like home, wherever you are.",
	},
	"relationship": {
		"Say what you mean and mean what you say - clearly and kindly.",
		"Remember why you care about this person in the first place.",
		"Listen twice as much as you speak. Revolutionary, I know.",
	},
}

func pickLine(lines []string) string {
	return lines[rand.Intn(len(lines))]
}

// believeEngine answers with canned motivation. Three easter eggs hide in
// the input checks: too much "believe" is a 418, too much negativity a 429,
// and too much judgment (shared with the conflict resolver) a 403.
func (s *Server) believeEngine(w http.ResponseWriter, r *http.Request) {
	var req BelieveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	situation := strings.ToLower(req.Situation)

	if strings.Count(situation, "believe") >= 3 {
		writeJSON(w, http.StatusTeapot, map[string]any{
			"status":        "I'm a Believer!",
			"message":       "You're already believing so hard, you don't need my help!",
			"ted_says":      "Well shoot, you've got more believe in you than a Kansas sunrise. Keep on keeping on!",
			"believe_score": 100,
		})
		return
	}

	negativeWords := []string{"hate", "terrible", "awful", "worst", "never", "hopeless", "give up"}
	negativity := 0
	for _, word := range negativeWords {
		if strings.Contains(situation, word) {
			negativity++
		}
	}
	if negativity >= 4 {
		writeJSON(w, http.StatusTooManyRequests, map[string]any{
			"error":      "Too Much Negativity",
			"message":    "Whoa there, partner! That's a lot of negative energy. Let's take a breath and try again with a little more optimism.",
			"ted_advice": "Be a goldfish. 10-second memory for the bad stuff.",
		})
		return
	}

	if req.Intensity < 1 {
		req.Intensity = 5
	}
	if req.Intensity > 10 {
		req.Intensity = 10
	}

	responses, ok := believeResponses[req.SituationType]
	if !ok {
		responses = believeResponses["self_doubt"]
	}
	tedResponse := pickLine(responses)
	switch {
	case req.Intensity >= 8:
		tedResponse = "Now you listen here, friend. " + tedResponse + " And that's the truth!"
	case req.Intensity <= 3:
		tedResponse = "Hey, I hear you. " + tedResponse
	}

	actions, ok := actionSuggestions[req.SituationType]
	if !ok {
		actions = actionSuggestions["self_doubt"]
	}

	// Relevant quote: an inspirational Ted quote from the store.
	relevantQuote := "Be curious, not judgmental."
	tedQuotes := make([]string, 0)
	for _, q := range s.store.ListQuotes("ted-lasso", "") {
		if q.IsInspirational {
			tedQuotes = append(tedQuotes, q.Text)
		}
	}
	if len(tedQuotes) > 0 {
		relevantQuote = pickLine(tedQuotes)
	}

	score := 70
	if req.Context != "" {
		score += 10
	}
	score += req.Intensity * 2
	if score > 100 {
		score = 100
	}

	writeJSON(w, http.StatusOK, BelieveResponse{
		TedResponse:      tedResponse,
		RelevantQuote:    relevantQuote,
		ActionSuggestion: pickLine(actions),
		GoldfishWisdom:   pickLine(goldfishWisdom),
		BelieveScore:     score,
	})
}

var tedApproaches = map[string][]string{
	"interpersonal": {
		"I'd sit down with both of 'em over some biscuits and just listen. Really listen. Most conflicts come from people feeling unheard.",
		"You know what I do? I ask questions. Be curious about why they feel the way they do. Judgment never solved anything, but curiosity? That's the Swiss Army knife of understanding.",
	},
	"team_dynamics": {
		"This is a Diamond Dogs situation. Get everyone in a room, create a safe space, and let people speak their truth. No judgment, just support.",
		"Sometimes you gotta remember that a team is like a family - you might not always like each other, but you gotta love each other. Focus on what unites you.",
	},
	"leadership": {
		"Leadership isn't about being right - it's about doing right. Sometimes that means admitting you don't have all the answers.",
		"The best leaders I know are the ones who lift others up, not push them down. Lead with kindness, and the respect will follow.",
	},
	"ego": {
		"Ego is just fear wearing a fancy hat. The real strength is in vulnerability.",
		"You know what happens when ego wins? Everyone loses. Including the ego.",
	},
	"miscommunication": {
		"Nine times out of ten, conflict comes from two people saying the same thing in different languages. Your job is to be the translator.",
		"Assume positive intent. Most people aren't trying to hurt you - they're just trying to be heard.",
	},
	"competition": {
		"Competition can bring out the best in us, but it can also bring out the worst. The key is making sure you're competing with yourself, not against others.",
		"You know what's better than winning? Helping someone else become their best. That's the real victory.",
	},
}

var diamondDogsAdvice = []string{
	"The Diamond Dogs say: Woof woof! Also, have you tried just... talking about your feelings?",
	"Diamond Dogs protocol: Listen first, advise second, support always. Roo roo roo!",
	"The pack has spoken: Every person in this conflict is going through something. Lead with empathy.",
	"Diamond Dogs wisdom: Sometimes the bravest thing you can do is admit you're scared.",
}

var barbecueSauceWisdom = []string{
	"You know, this situation is like barbecue sauce - it can either make things delicious or make a real mess. The difference is how you apply it.",
	"My grandma used to say, 'Don't let the brisket burn while you're worrying about the sauce.' Focus on what matters.",
	"Conflict is like a Kansas summer - hot and uncomfortable, but it always passes. And you appreciate the cool days more after.",
	"You can't make cornbread without breaking a few eggs and getting your hands dirty. Same with working through conflict.",
}

func (s *Server) resolveConflict(w http.ResponseWriter, r *http.Request) {
	var req ConflictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if len(req.PartiesInvolved) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid Conflict",
			"A conflict needs at least one party involved. Takes two to tango, usually.")
		return
	}

	judgmentalWords := []string{"stupid", "idiot", "wrong", "fault", "blame", "always", "never"}
	description := strings.ToLower(req.Description)
	judgment := 0
	for _, word := range judgmentalWords {
		if strings.Contains(description, word) {
			judgment++
		}
	}
	if judgment >= 3 {
		writeJSON(w, http.StatusForbidden, map[string]any{
			"error":      "Judgment Without Curiosity",
			"message":    "Hold on now - that request felt a bit judgmental. Remember: be curious, not judgmental.",
			"ted_advice": "Try approaching this with an open mind and genuine curiosity.",
		})
		return
	}

	approaches, ok := tedApproaches[req.ConflictType]
	if !ok {
		approaches = tedApproaches["interpersonal"]
	}

	parties := strings.Join(req.PartiesInvolved, " and ")
	diagnoses := map[string]string{
		"interpersonal":    fmt.Sprintf("Sounds like there's some hurt feelings between %s. Usually that means someone feels disrespected or unheard.", parties),
		"team_dynamics":    fmt.Sprintf("With %d people involved, this isn't about individuals - it's about the system. Something in how you all work together needs adjusting.", len(req.PartiesInvolved)),
		"leadership":       "This is about trust. When leadership conflicts arise, it's usually because someone feels their voice doesn't matter or their expertise isn't valued.",
		"ego":              "Ah, the old ego trap. Someone's protecting themselves because they're scared of being seen as weak. The irony is, that protection is what's making them weak.",
		"miscommunication": "This right here is a classic case of two people having different conversations about the same thing. Nobody's wrong, you're just speaking different languages.",
		"competition":      "Healthy competition became unhealthy somewhere along the way. Probably when winning became more important than growing.",
	}
	diagnosis, ok := diagnoses[req.ConflictType]
	if !ok {
		diagnosis = diagnoses["interpersonal"]
	}

	otherParty := "the other person"
	if len(req.PartiesInvolved) > 1 {
		otherParty = req.PartiesInvolved[1]
	}
	steps := []string{
		"Take a breath and remember that everyone involved is a human being doing their best.",
		fmt.Sprintf("Reach out to %s and express genuine curiosity about their perspective.", otherParty),
		"Listen - really listen - without planning your response while they're talking.",
		"Share how YOU feel using 'I' statements, not accusations.",
		"Find one thing you can both agree on, no matter how small.",
		"Make a plan together for how to move forward. Collaboration beats compromise.",
	}
	if len(req.AttemptsMade) > 0 {
		acknowledged := fmt.Sprintf("Acknowledge what you've already tried (%s) and be honest that you want to try a different approach.",
			strings.Join(req.AttemptsMade, ", "))
		steps = append(steps[:2], append([]string{acknowledged}, steps[2:]...)...)
	}

	outcomes := []string{
		fmt.Sprintf("If you approach this with curiosity and kindness, %s might just end up closer than before. Some of the best relationships are forged through working through hard stuff.", parties),
		"Best case scenario? You both grow from this. You understand each other better, and you've got a template for handling future disagreements. That's called progress.",
		"Imagine a world where this conflict leads to a breakthrough. Where everyone feels heard, respected, and motivated. That world is one honest conversation away.",
	}

	writeJSON(w, http.StatusOK, ConflictResolution{
		Diagnosis:           diagnosis,
		TedApproach:         pickLine(approaches),
		DiamondDogsAdvice:   pickLine(diamondDogsAdvice),
		StepsToResolution:   steps,
		PotentialOutcome:    pickLine(outcomes),
		BarbecueSauceWisdom: pickLine(barbecueSauceWisdom),
	})
}

var dailyAffirmations = []string{
	"I am capable of handling whatever comes my way today.",
	"My worth is not determined by my productivity or others' opinions.",
	"I choose progress over perfection.",
	"I am exactly where I need to be on my journey.",
	"Today, I will be curious, not judgmental - especially with myself.",
	"I have overcome hard things before, and I will do it again.",
	"My feelings are valid, but they don't define my reality.",
	"I am growing, learning, and becoming better every day.",
	"I deserve kindness, especially from myself.",
	"I believe in myself, even when it's hard to.",
}

var drSharonInsights = []string{
	"What evidence do you have that this thought is true? Often our minds present fears as facts.",
	"This thought seems to be protecting you from something. What might that be?",
	"Notice how this thought makes you feel in your body. Our thoughts create physical responses.",
	"You're identifying with this thought, but you are not your thoughts. You're the observer of them.",
	"Consider: would you say this to a friend? Why do we treat ourselves more harshly?",
	"The truth will set you free, but first it will piss you off. That discomfort is growth.",
}

var tedPerspectives = []string{
	"Now hold on there, friend. That negative thought? It's just your brain trying to protect you from disappointment. But here's the thing - you can't be disappointed if you never try, but you also can't win.",
	"You know what I think? I think that thought's been hanging around so long it forgot to update itself. Time to give it a little renovation.",
	"Here's the deal - your brain is like a muscle. It's been doing negative push-ups for so long, it's real strong at that. But we can train it to do positive push-ups instead.",
	"That thought right there? It's not a fact, it's a feeling dressed up in a facts costume. And Halloween's over, my friend.",
}

var defaultReframes = []string{
	"This is a challenging moment, not a permanent state. I am resilient and capable of growth.",
	"I acknowledge this feeling without letting it define me. I choose to focus on what I can control.",
	"This thought is just one perspective. I can choose to see this differently.",
	"I am learning from this experience. Every challenge contains an opportunity for growth.",
}

func (s *Server) reframeThought(w http.ResponseWriter, r *http.Request) {
	var req ReframeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if req.NegativeThought == "" {
		writeError(w, http.StatusBadRequest, "Nothing To Reframe",
			"Share the thought that's bothering you. Bottling it up never helped anybody.")
		return
	}

	original := strings.ToLower(req.NegativeThought)
	reframed := ""
	perspective := ""
	for _, tmpl := range reframeTemplates {
		if strings.Contains(original, tmpl.Pattern) {
			reframed = tmpl.Reframe
			perspective = tmpl.TedPerspective
			break
		}
	}
	if reframed == "" {
		reframed = pickLine(defaultReframes)
		perspective = pickLine(tedPerspectives)
	}

	resp := ReframeResponse{
		OriginalThought:  req.NegativeThought,
		ReframedThought:  reframed,
		TedPerspective:   perspective,
		DailyAffirmation: pickLine(dailyAffirmations),
	}
	if req.Recurring {
		resp.DrSharonInsight = pickLine(drSharonInsights)
	}
	writeJSON(w, http.StatusOK, resp)
}

var deflectionHumor = []string{
	"Well, you know what they say back in Kansas... actually, I don't remember what they say, but it was probably something about being kind.",
	"That's a great question. Have you ever had a biscuit? I find most questions are easier to answer after a good biscuit.",
	"You know, I once asked my goldfish that same question. He didn't have an answer either, but he seemed happy about it.",
	"I appreciate the question, but I'm still trying to figure out why they call it 'football' when y'all mostly use your feet. In America, we barely use our feet and we call it football. Life's funny that way.",
}

var hostileDeflections = []string{
	"Now that's what I call a spicy meatball of a question. I respect the heat!",
	"Trent Crimm, The Independent! Always keeping me on my toes. Well, my toes appreciate the exercise.",
	"You know, that question feels like it came with a bit of hot sauce on it. I respect that. I'm more of a honey mustard guy myself.",
}

var actualWisdom = []string{
	"The truth is, I believe that success isn't measured in wins and losses. It's measured in whether we become better people along the way.",
	"At the end of the day, it's not about the scoreboard. It's about whether we gave everything we had and treated people right while doing it.",
	"You can judge a team by their results, sure. But I prefer to judge us by how we treat each other when things get hard.",
	"I think there's something beautiful about trying your hardest, even when the outcome isn't what you wanted. That's not failure - that's courage.",
}

var reporterReactions = []string{
	"The room goes silent for a moment, then a few reporters actually smile despite themselves.",
	"Trent Crimm nods slowly, a hint of respect in his eyes.",
	"A few reporters exchange glances, not quite sure how to respond to genuine optimism.",
	"One journalist can be heard muttering, 'I can't tell if he's brilliant or completely mad.'",
}

var followUpDodges = []string{
	"Oh, would you look at the time! I've got biscuits in the oven. Well, metaphorically. Thank you all for coming!",
	"That's a great follow-up, and I'd love to answer it, but Coach Beard is giving me the signal that means either 'wrap it up' or 'there's a bee.' Either way, I should go.",
	"I could answer that, or I could leave you all with a sense of mystery and wonder. I'm gonna go with option B. Y'all have a great day!",
	"Follow-up questions are like second helpings at Thanksgiving - always tempting, but sometimes you gotta know when to say when. Thanks everyone!",
}

var lossResponses = []string{
	"Well, I'll tell you what - we didn't get the result we wanted today. But I saw a team out there that fought hard and cared about each other. And in my book, that's never a loss.",
	"You know, losing hurts. It really does. But I always say, every setback is a setup for a comeback. These boys will learn from this, and they'll be better for it.",
	"Was it our best day? No sir, it was not. But was it our last day? Also no. We'll be back at it tomorrow, better than ever. That's what teams do.",
}

var winResponses = []string{
	"I'm real proud of the boys today. But here's the thing - I was proud of them before the match too. The result just gives everyone else a reason to see what I see every day.",
	"Winning feels good, I won't lie. But you know what feels better? Seeing this team come together and play for each other. That's the real victory.",
	"We got the W today, and that's great. But I'm more excited about how we got it - together, as a family. That's what makes it special.",
}

var doubtResponses = []string{
	"You know, I've never been too bothered by doubters. I was doubting myself for years before it became popular. All I can do is be curious about what I can learn and keep showing up.",
	"Critics serve an important purpose - they help you figure out what you actually believe in. And I believe in this team. That's not gonna change based on what folks say.",
	"Be curious, not judgmental. That applies to critics too. Maybe they see something I don't. I'm always willing to learn. But I'm not willing to stop believing.",
}

var defaultPressResponses = []string{
	"That's a really thoughtful question, and I appreciate you asking it. Here's what I know: we're gonna keep working hard, treating people right, and believing in each other. Everything else tends to work itself out.",
	"You know, I could give you some fancy answer full of sports cliches. But the truth is simpler: we care about each other, we work hard, and we believe. That's our whole strategy.",
	"I've learned that the best answer to most questions is just to be honest. So here's my honest answer: I don't have all the answers. But I've got a great team, and together we'll figure it out.",
}

func containsAny(s string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}

func (s *Server) pressConference(w http.ResponseWriter, r *http.Request) {
	var req PressConferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	question := strings.ToLower(req.Question)

	var responses []string
	switch {
	case containsAny(question, "loss", "lost", "defeat", "embarrass"):
		responses = lossResponses
	case containsAny(question, "win", "victory", "success"):
		responses = winResponses
	case containsAny(question, "doubt", "critic", "skeptic", "wrong"):
		responses = doubtResponses
	default:
		responses = defaultPressResponses
	}

	deflection := ""
	if req.Hostile {
		deflection = pickLine(hostileDeflections)
	} else if containsAny(question, "loss", "defeat", "fail") {
		deflection = pickLine(deflectionHumor)
	}

	writeJSON(w, http.StatusOK, PressConferenceResponse{
		Response:         pickLine(responses),
		DeflectionHumor:  deflection,
		ActualWisdom:     pickLine(actualWisdom),
		ReporterReaction: pickLine(reporterReactions),
		FollowUpDodge:    pickLine(followUpDodges),
	})
}

// --- Coaching principles ---

func (s *Server) listCoachingPrinciples(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(coachingPrinciples, skip, limit))
}

func (s *Server) getRandomPrinciple(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, coachingPrinciples[rand.Intn(len(coachingPrinciples))])
}

func (s *Server) getCoachingPrinciple(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, p := range coachingPrinciples {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Principle Not Found",
		"Principle '"+id+"' not found. The best principles are the ones you discover yourself!")
}

// --- Biscuits as a Service ---

func (s *Server) listBiscuits(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(biscuitBox, skip, limit))
}

var freshBiscuitNotes = []string{
	"P.S. You're doing amazing, sweetie!",
	"P.S. Remember: be curious, not judgmental!",
	"P.S. Today's gonna be a good day, I can feel it!",
	"P.S. You've got more heart than a cardiologist's convention!",
}

func (s *Server) getFreshBiscuit(w http.ResponseWriter, r *http.Request) {
	biscuit := biscuitBox[rand.Intn(len(biscuitBox))]
	biscuit.TedNote = biscuit.TedNote + " " + pickLine(freshBiscuitNotes)
	biscuit.WarmthLevel = 10 // fresh from the oven
	writeJSON(w, http.StatusOK, biscuit)
}

func (s *Server) getBiscuit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, b := range biscuitBox {
		if b.ID == id {
			writeJSON(w, http.StatusOK, b)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Biscuit Not Found",
		"Biscuit '"+id+"' not found. Must have been eaten already!")
}

func (s *Server) orderBiscuits(w http.ResponseWriter, r *http.Request) {
	var order BiscuitOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if order.Recipient == "" {
		writeError(w, http.StatusBadRequest, "Invalid Order",
			"Biscuits need a recipient. They're a gift, not a snack. Well, they're both.")
		return
	}

	var batch Biscuit
	found := false
	for _, b := range biscuitBox {
		if b.Type == order.Type {
			batch = b
			found = true
			break
		}
	}
	if !found {
		batch = biscuitBox[rand.Intn(len(biscuitBox))]
	}
	batch.Message = fmt.Sprintf("For %s: %s", order.Recipient, batch.Message)
	if order.Occasion != "" {
		batch.TedNote = fmt.Sprintf("%s Happy %s!", batch.TedNote, order.Occasion)
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "baking",
		"eta":     "tomorrow morning, pink box and all",
		"biscuit": batch,
	})
}
