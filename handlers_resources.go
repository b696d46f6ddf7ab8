package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func pageParams(r *http.Request) (skip, limit int) {
	skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return skip, limit
}

// --- Characters ---

func (s *Server) listCharacters(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	teamID := r.URL.Query().Get("team_id")
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.store.ListCharacters(role, teamID), skip, limit))
}

func (s *Server) getCharacter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, ok := s.store.GetCharacter(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Character Not Found",
			"Character '"+id+"' not found. Maybe they transferred to another show?")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) createCharacter(w http.ResponseWriter, r *http.Request) {
	var c Character
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if c.Name == "" {
		writeError(w, http.StatusBadRequest, "Invalid Character", "A character needs a name, friend.")
		return
	}
	if c.ID == "" {
		c.ID = slugify(c.Name)
	}
	if err := s.store.CreateCharacter(&c); err != nil {
		writeError(w, http.StatusConflict, "Character Already Exists",
			"Character '"+c.ID+"' already exists. There's only one "+c.Name+"!")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) updateCharacter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var upd CharacterUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	c, err := s.store.UpdateCharacter(id, &upd)
	if err != nil {
		writeError(w, http.StatusNotFound, "Character Not Found",
			"Character '"+id+"' not found. Maybe they transferred to another show?")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteCharacter(id); err != nil {
		writeError(w, http.StatusNotFound, "Character Not Found",
			"Character '"+id+"' not found. Can't say goodbye to someone who was never here.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getCharacterQuotes(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := s.store.GetCharacter(id); !ok {
		writeError(w, http.StatusNotFound, "Character Not Found",
			"Character '"+id+"' not found. Maybe they transferred to another show?")
		return
	}
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.store.ListQuotes(id, ""), skip, limit))
}

// --- Teams ---

func (s *Server) listTeams(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.store.ListTeams(r.URL.Query().Get("league")), skip, limit))
}

func (s *Server) getTeam(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	t, ok := s.store.GetTeam(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Team Not Found",
			"Team '"+id+"' not found. Maybe they got relegated out of existence?")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) createTeam(w http.ResponseWriter, r *http.Request) {
	var t Team
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if t.Name == "" {
		writeError(w, http.StatusBadRequest, "Invalid Team", "A club needs a name before it needs a badge.")
		return
	}
	if err := s.store.CreateTeam(&t); err != nil {
		writeError(w, http.StatusConflict, "Team Already Exists",
			"Team '"+t.ID+"' already exists. There's only room for one!")
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) updateTeam(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var upd TeamUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	t, err := s.store.UpdateTeam(id, &upd)
	if err != nil {
		writeError(w, http.StatusNotFound, "Team Not Found",
			"Team '"+id+"' not found. Maybe they got relegated out of existence?")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) deleteTeam(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteTeam(id); err != nil {
		writeError(w, http.StatusNotFound, "Team Not Found",
			"Team '"+id+"' not found. Already relegated!")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getTeamRivals(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	t, ok := s.store.GetTeam(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Team Not Found",
			"Team '"+id+"' not found. Maybe they got relegated out of existence?")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"team_id": id,
		"rivals":  t.RivalTeams,
	})
}

// getTeamCulture assesses a club the way Ted would: by how much it believes.
func (s *Server) getTeamCulture(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	t, ok := s.store.GetTeam(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Team Not Found",
			"Team '"+id+"' not found. Maybe they got relegated out of existence?")
		return
	}
	var assessment, recommendation string
	switch {
	case t.CultureScore >= 90:
		assessment = "BELIEVE philosophy fully embraced"
		recommendation = "Keep doing what you're doing. Maybe hang another sign."
	case t.CultureScore >= 70:
		assessment = "Strong culture with room to grow"
		recommendation = "A few more biscuit mornings wouldn't hurt."
	case t.CultureScore >= 50:
		assessment = "Culture needs attention"
		recommendation = "Schedule a Diamond Dogs session, pronto."
	default:
		assessment = "Culture emergency"
		recommendation = "Immediate biscuits-with-the-boss intervention required."
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"team_id":        id,
		"culture_score":  t.CultureScore,
		"assessment":     assessment,
		"recommendation": recommendation,
		"team_motto":     t.Values.TeamMotto,
	})
}

func (s *Server) getTeamRoster(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := s.store.GetTeam(id); !ok {
		writeError(w, http.StatusNotFound, "Team Not Found",
			"Team '"+id+"' not found. Maybe they got relegated out of existence?")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"team_id": id,
		"roster":  s.store.TeamRoster(id),
	})
}

// --- Matches ---

func (s *Server) listMatches(w http.ResponseWriter, r *http.Request) {
	matchType := r.URL.Query().Get("match_type")
	teamID := r.URL.Query().Get("team_id")
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.store.ListMatches(matchType, teamID), skip, limit))
}

func (s *Server) getMatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	m, ok := s.store.GetMatch(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Match Not Found",
			"Match '"+id+"' not found. Try one of our existing matches or use format 'match-XXX'!")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) createMatch(w http.ResponseWriter, r *http.Request) {
	var m Match
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		writeError(w, http.StatusBadRequest, "Invalid Match",
			"A match needs two teams. Even Ted can't coach an empty pitch.")
		return
	}
	if m.Result == "" {
		m.Result = ResultPending
	}
	if m.MatchType == "" {
		m.MatchType = MatchLeague
	}
	writeJSON(w, http.StatusCreated, s.store.CreateMatch(&m))
}

func (s *Server) updateMatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var upd MatchUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	m, err := s.store.UpdateMatch(id, &upd)
	if err != nil {
		writeError(w, http.StatusNotFound, "Match Not Found",
			"Match '"+id+"' not found. Try one of our existing matches or use format 'match-XXX'!")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) deleteMatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteMatch(id); err != nil {
		writeError(w, http.StatusNotFound, "Match Not Found",
			"Match '"+id+"' not found. Can't strike a fixture that was never scheduled.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getMatchTurningPoints(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	m, ok := s.store.GetMatch(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Match Not Found",
			"Match '"+id+"' not found. Try one of our existing matches or use format 'match-XXX'!")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"match_id":       id,
		"turning_points": m.TurningPoints,
	})
}

// --- Episodes ---

func (s *Server) listEpisodes(w http.ResponseWriter, r *http.Request) {
	season, _ := strconv.Atoi(r.URL.Query().Get("season"))
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.store.ListEpisodes(season), skip, limit))
}

func (s *Server) getEpisode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	e, ok := s.store.GetEpisode(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Episode Not Found",
			"Episode '"+id+"' not found. Use the format s01e01, like a proper binge-watcher.")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) createEpisode(w http.ResponseWriter, r *http.Request) {
	var e Episode
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if e.Season < 1 || e.EpisodeNumber < 1 {
		writeError(w, http.StatusBadRequest, "Invalid Episode",
			"Season and episode number both start at 1, like all good stories.")
		return
	}
	if err := s.store.CreateEpisode(&e); err != nil {
		writeError(w, http.StatusConflict, "Episode Already Exists",
			"Episode '"+e.ID+"' already aired. No retcons allowed!")
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) updateEpisode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var upd EpisodeUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	e, err := s.store.UpdateEpisode(id, &upd)
	if err != nil {
		writeError(w, http.StatusNotFound, "Episode Not Found",
			"Episode '"+id+"' not found. Use the format s01e01, like a proper binge-watcher.")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) getEpisodeWisdom(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	e, ok := s.store.GetEpisode(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Episode Not Found",
			"Episode '"+id+"' not found. Use the format s01e01, like a proper binge-watcher.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"episode_id":                id,
		"title":                     e.Title,
		"main_theme":                e.MainTheme,
		"ted_wisdom":                e.TedWisdom,
		"biscuits_with_boss_moment": e.BiscuitsWithBossMoment,
		"memorable_moments":         e.MemorableMoments,
	})
}

func (s *Server) deleteEpisode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteEpisode(id); err != nil {
		writeError(w, http.StatusNotFound, "Episode Not Found",
			"Episode '"+id+"' not found. Can't cancel what never aired.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Quotes ---

func (s *Server) listQuotes(w http.ResponseWriter, r *http.Request) {
	characterID := r.URL.Query().Get("character_id")
	theme := r.URL.Query().Get("theme")
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.store.ListQuotes(characterID, theme), skip, limit))
}

func (s *Server) getQuote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	q, ok := s.store.GetQuote(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Quote Not Found",
			"Quote '"+id+"' not found. The best quotes are the ones you live, anyway.")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) getRandomQuote(w http.ResponseWriter, r *http.Request) {
	quotes := s.store.ListQuotes("", r.URL.Query().Get("theme"))
	if len(quotes) == 0 {
		writeError(w, http.StatusNotFound, "No Quotes Found",
			"No quotes matched that filter. Go make your own memorable moment!")
		return
	}
	writeJSON(w, http.StatusOK, quotes[rand.Intn(len(quotes))])
}

func (s *Server) createQuote(w http.ResponseWriter, r *http.Request) {
	var q Quote
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if q.Text == "" || q.CharacterID == "" {
		writeError(w, http.StatusBadRequest, "Invalid Quote",
			"A quote needs words and someone to say them.")
		return
	}
	writeJSON(w, http.StatusCreated, s.store.CreateQuote(&q))
}

func (s *Server) updateQuote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var upd QuoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	q, err := s.store.UpdateQuote(id, &upd)
	if err != nil {
		writeError(w, http.StatusNotFound, "Quote Not Found",
			"Quote '"+id+"' not found. The best quotes are the ones you live, anyway.")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) deleteQuote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteQuote(id); err != nil {
		writeError(w, http.StatusNotFound, "Quote Not Found",
			"Quote '"+id+"' not found. Some words are just meant to be forgotten.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Team members ---

func (s *Server) listTeamMembers(w http.ResponseWriter, r *http.Request) {
	memberType := r.URL.Query().Get("member_type")
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.store.ListTeamMembers(memberType), skip, limit))
}

func (s *Server) getTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	m, ok := s.store.GetTeamMember(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Team Member Not Found",
			"Team member '"+id+"' not found. Check the squad list again.")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) createTeamMember(w http.ResponseWriter, r *http.Request) {
	var m TeamMember
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if m.Name == "" {
		writeError(w, http.StatusBadRequest, "Invalid Team Member",
			"Everyone on this team has a name. Even the kit man.")
		return
	}
	valid := (m.MemberType == "player" && m.Player != nil && m.Coach == nil && m.Staff == nil) ||
		(m.MemberType == "coach" && m.Coach != nil && m.Player == nil && m.Staff == nil) ||
		(m.MemberType == "staff" && m.Staff != nil && m.Player == nil && m.Coach == nil)
	if !valid {
		writeError(w, http.StatusBadRequest, "Invalid Team Member",
			"member_type must be player, coach, or staff, with exactly the matching detail block.")
		return
	}
	if err := s.store.CreateTeamMember(&m); err != nil {
		writeError(w, http.StatusConflict, "Team Member Already Exists",
			"Team member '"+m.ID+"' already exists. We're all unique here!")
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) updateTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var upd TeamMemberUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	m, err := s.store.UpdateTeamMember(id, &upd)
	switch err {
	case nil:
		writeJSON(w, http.StatusOK, m)
	case errWrongMemberType:
		writeError(w, http.StatusBadRequest, "Invalid Team Member Update",
			"That detail block doesn't match the member's type. A kit man can't moonlight as a striker.")
	default:
		writeError(w, http.StatusNotFound, "Team Member Not Found",
			"Team member '"+id+"' not found. Check the squad list again.")
	}
}

func (s *Server) deleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteTeamMember(id); err != nil {
		writeError(w, http.StatusNotFound, "Team Member Not Found",
			"Team member '"+id+"' not found. Check the squad list again.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listPlayers is the player-only view of the squad, optionally narrowed by
// position.
func (s *Server) listPlayers(w http.ResponseWriter, r *http.Request) {
	position := r.URL.Query().Get("position")
	members := s.store.ListTeamMembers("player")
	out := make([]*TeamMember, 0, len(members))
	for _, m := range members {
		if position != "" && (m.Player == nil || m.Player.Position != position) {
			continue
		}
		out = append(out, m)
	}
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(out, skip, limit))
}

func (s *Server) listCoaches(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("coaching_role")
	members := s.store.ListTeamMembers("coach")
	out := make([]*TeamMember, 0, len(members))
	for _, m := range members {
		if role != "" && (m.Coach == nil || m.Coach.CoachingRole != role) {
			continue
		}
		out = append(out, m)
	}
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(out, skip, limit))
}

func (s *Server) listStaff(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	members := s.store.ListTeamMembers("staff")
	out := make([]*TeamMember, 0, len(members))
	for _, m := range members {
		if department != "" && (m.Staff == nil || m.Staff.Department != department) {
			continue
		}
		out = append(out, m)
	}
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(out, skip, limit))
}
