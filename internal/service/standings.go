package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/afinewinecompany/cnebl-sub004/internal/logger"
	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
)

const standingsCacheTTL = 60 * time.Second

// StandingRow 是戰績榜上的一列
type StandingRow struct {
	Rank         int     `json:"rank"`
	TeamID       uint    `json:"team_id"`
	TeamName     string  `json:"team_name"`
	Abbreviation string  `json:"abbreviation"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Ties         int     `json:"ties"`
	Pct          float64 `json:"pct"`
	RunsFor      int     `json:"runs_for"`
	RunsAgainst  int     `json:"runs_against"`
	RunDiff      int     `json:"run_diff"`
	GamesBack    float64 `json:"games_back"`
}

type StandingsService struct {
	gameRepo   repository.GameRepository
	teamRepo   repository.TeamRepository
	seasonRepo repository.SeasonRepository
	rdb        *redis.Client
	log        *logger.Logger
}

func NewStandingsService(
	gameRepo repository.GameRepository,
	teamRepo repository.TeamRepository,
	seasonRepo repository.SeasonRepository,
	rdb *redis.Client,
	log *logger.Logger,
) *StandingsService {
	return &StandingsService{
		gameRepo:   gameRepo,
		teamRepo:   teamRepo,
		seasonRepo: seasonRepo,
		rdb:        rdb,
		log:        log,
	}
}

// Standings 回傳某賽季的戰績榜，seasonID 為 0 時採用啟用中的賽季
// 結果以 Redis 快取，比賽完賽時由 GameService 使其失效
func (s *StandingsService) Standings(seasonID uint) ([]StandingRow, error) {
	if seasonID == 0 {
		season, err := s.seasonRepo.FindActive()
		if err != nil {
			return nil, fmt.Errorf("%w: 目前沒有啟用中的賽季", ErrNotFound)
		}
		seasonID = season.ID
	}

	ctx := context.Background()
	cacheKey := fmt.Sprintf("standings:%d", seasonID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var rows []StandingRow
			if err := json.Unmarshal([]byte(cached), &rows); err == nil {
				return rows, nil
			}
		}
	}

	teams, err := s.teamRepo.FindAll()
	if err != nil {
		return nil, err
	}
	games, err := s.gameRepo.FindFinalBySeason(seasonID)
	if err != nil {
		return nil, err
	}

	rows := ComputeStandings(teams, games)

	if s.rdb != nil {
		if encoded, err := json.Marshal(rows); err == nil {
			s.rdb.Set(ctx, cacheKey, encoded, standingsCacheTTL)
		}
	}

	return rows, nil
}

// ComputeStandings 由完賽的比賽計算戰績榜
// 排序：勝率、勝場、得失分差、隊名；和局計半勝；勝差以首位為基準
func ComputeStandings(teams []models.Team, games []models.Game) []StandingRow {
	rows := make([]StandingRow, 0, len(teams))
	index := make(map[uint]*StandingRow, len(teams))

	for _, team := range teams {
		rows = append(rows, StandingRow{
			TeamID:       team.ID,
			TeamName:     team.Name,
			Abbreviation: team.Abbreviation,
		})
	}
	for i := range rows {
		index[rows[i].TeamID] = &rows[i]
	}

	for _, game := range games {
		home, hasHome := index[game.HomeTeamID]
		away, hasAway := index[game.AwayTeamID]
		if !hasHome || !hasAway {
			continue
		}

		home.RunsFor += game.HomeScore
		home.RunsAgainst += game.AwayScore
		away.RunsFor += game.AwayScore
		away.RunsAgainst += game.HomeScore

		switch {
		case game.HomeScore > game.AwayScore:
			home.Wins++
			away.Losses++
		case game.AwayScore > game.HomeScore:
			away.Wins++
			home.Losses++
		default:
			home.Ties++
			away.Ties++
		}
	}

	for i := range rows {
		row := &rows[i]
		row.RunDiff = row.RunsFor - row.RunsAgainst
		played := row.Wins + row.Losses + row.Ties
		if played > 0 {
			row.Pct = (float64(row.Wins) + 0.5*float64(row.Ties)) / float64(played)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Pct != rows[j].Pct {
			return rows[i].Pct > rows[j].Pct
		}
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		if rows[i].RunDiff != rows[j].RunDiff {
			return rows[i].RunDiff > rows[j].RunDiff
		}
		return rows[i].TeamName < rows[j].TeamName
	})

	for i := range rows {
		rows[i].Rank = i + 1
		if i > 0 {
			leader := rows[0]
			rows[i].GamesBack = (float64(leader.Wins-rows[i].Wins) + float64(rows[i].Losses-leader.Losses)) / 2
		}
	}

	return rows
}
