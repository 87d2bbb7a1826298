// Package seed loads the initial catalog into an empty database.
package seed

import (
	"context"

	"github.com/wqy7711/e-novel-api/internal/logger"
	"github.com/wqy7711/e-novel-api/internal/model"
	"github.com/wqy7711/e-novel-api/internal/repository"
)

var novels = []model.Novel{
	{
		NovelID:     "20001",
		Title:       "The Digital Odyssey",
		Author:      "Ada Sterling",
		Description: "A journey through virtual worlds where reality and fiction blur. The protagonist must navigate dangerous terrain and solve complex puzzles to return home.",
		Genre:       "Science Fiction",
		Published:   true,
		PageCount:   312,
		Rating:      4.5,
	},
	{
		NovelID:     "20002",
		Title:       "The Quantum Paradox",
		Author:      "Ada Sterling",
		Description: "When a physicist discovers a way to manipulate quantum states, he accidentally creates multiple timelines. Now he must find a way to merge them before reality collapses.",
		Genre:       "Science Fiction",
		Published:   true,
		PageCount:   423,
		Rating:      4.8,
	},
	{
		NovelID:     "20003",
		Title:       "Midnight in Shanghai",
		Author:      "Wei Lin",
		Description: "A noir detective story set in near-future Shanghai. A private investigator takes on a case that will lead him through the city's shadowy underworld.",
		Genre:       "Thriller",
		Published:   true,
		PageCount:   287,
		Rating:      4.2,
	},
	{
		NovelID:     "20004",
		Title:       "Gardens of Memory",
		Author:      "Wei Lin",
		Description: "A poignant drama about a woman who can remember everyone else's memories but is slowly forgetting her own.",
		Genre:       "Drama",
		Published:   true,
		PageCount:   298,
		Rating:      4.9,
	},
}

// Run inserts the seed catalog when the novels table is empty. It is a no-op
// otherwise, so it is safe on every startup.
func Run(ctx context.Context, repo repository.NovelRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, novel := range novels {
		if err := repo.Create(ctx, novel); err != nil {
			return err
		}
	}
	logger.Info("seed catalog loaded", "module", "seed", "action", "create", "resource", "novel", "result", "ok", "count", len(novels))
	return nil
}
