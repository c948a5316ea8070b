package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Score computes the compatibility score between a user's profile and a
// team. It is a pure function: all comparisons are case-insensitive, tags
// are trimmed of whitespace, and a user without a profile scores 0
// unconditionally.
//
//  1. Skill overlap: +2 per skill shared between the profile and the
//     team's required skills (both comma-delimited).
//  2. Personality affinity: +1 when the personality string occurs as a
//     substring of the team goal.
//  3. Goal overlap: +1 per comma-delimited profile goal occurring as a
//     word of the team goal.
//
// The score has no upper bound. Tokenizing into sets makes the result
// invariant to tag order and duplication.
func Score(profile *models.Profile, team *models.Team) int {
	if profile == nil {
		return 0
	}

	score := 0

	if profile.Skills != "" && team.RequiredSkills != "" {
		score += 2 * overlap(tagSet(profile.Skills), tagSet(team.RequiredSkills))
	}

	if personality := strings.ToLower(strings.TrimSpace(profile.Personality)); personality != "" && team.Goal != "" {
		if strings.Contains(strings.ToLower(team.Goal), personality) {
			score++
		}
	}

	if profile.Goals != "" && team.Goal != "" {
		score += overlap(tagSet(profile.Goals), wordSet(team.Goal))
	}

	return score
}

// tagSet splits a comma-delimited tag list into a normalized set
func tagSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tag := range strings.Split(s, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			set[tag] = struct{}{}
		}
	}
	return set
}

// wordSet splits free text on whitespace into a normalized set
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(s) {
		set[strings.ToLower(word)] = struct{}{}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

// Candidate pairs an eligible user with their match score for a team
type Candidate struct {
	User  models.User `json:"user"`
	Score int         `json:"score"`
}

// MatchOptions tunes candidate selection for a single call
type MatchOptions struct {
	// RestrictToCategory narrows category-scoped teams to users whose
	// profile declares that interest category. Category membership is
	// advisory, so this defaults to off; class scope is always exclusive.
	RestrictToCategory bool
}

// MatchingService ranks eligible users for a team. It is a pure read-side
// computation with no side effects, safe to call repeatedly.
type MatchingService struct {
	userRepo          repository.UserRepositoryInterface
	teamRepo          repository.TeamRepositoryInterface
	categoryExclusive bool
}

// NewMatchingService creates a new matching service. categoryExclusive
// applies the category restriction to every call, regardless of
// per-call options.
func NewMatchingService(userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, categoryExclusive bool) *MatchingService {
	return &MatchingService{
		userRepo:          userRepo,
		teamRepo:          teamRepo,
		categoryExclusive: categoryExclusive,
	}
}

// Candidates returns the users eligible to join the team ordered by
// descending match score. Current members are never eligible; teams
// scoped to a class draw only from that class. Ties keep the
// repository's ascending creation order as a stable tie-break.
func (s *MatchingService) Candidates(teamID uuid.UUID, opts MatchOptions) ([]Candidate, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	filter := repository.CandidateFilter{
		ExcludeTeamID: teamID,
		ClassID:       team.ClassID,
	}
	if team.CategoryID != nil && (opts.RestrictToCategory || s.categoryExclusive) {
		filter.CategoryID = team.CategoryID
	}

	users, err := s.userRepo.ListCandidates(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	candidates := make([]Candidate, 0, len(users))
	for _, user := range users {
		candidates = append(candidates, Candidate{
			User:  user,
			Score: Score(user.Profile, team),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates, nil
}
