package domain

// MergeWeek folds live updates into a cached week. Updates are matched to
// cached games by id; only Status, Completed and, once completed, Winner
// and FinalScore are overwritten. Cached games absent from the update set
// keep their prior state exactly. Reports whether anything changed.
func MergeWeek(week *Week, updates []Game) bool {
	if week == nil {
		return false
	}

	changed := false
	for _, update := range updates {
		idx := indexOfGame(week.Games, update.ID)
		if idx < 0 {
			continue
		}

		game := &week.Games[idx]
		if game.Status != update.Status {
			game.Status = update.Status
			changed = true
		}
		if game.Completed != update.Completed {
			game.Completed = update.Completed
			changed = true
		}
		if update.Completed {
			if game.Winner != update.Winner {
				game.Winner = update.Winner
				changed = true
			}
			if game.FinalScore != update.FinalScore {
				game.FinalScore = update.FinalScore
				changed = true
			}
		}
	}
	return changed
}

func indexOfGame(games []Game, id string) int {
	for i := range games {
		if games[i].ID == id {
			return i
		}
	}
	return -1
}
