package motivation

import (
	"time"

	"github.com/nousjournal/nous/internal/utils"
)

// Writing prompts by weekday. The prompt is computed once when an entry is
// first created and stored with it for historical fidelity, so editing this
// table never rewrites past entries.
var weekdayPrompts = map[time.Weekday]string{
	time.Monday:    "Quels sont tes objectifs prioritaires pour cette semaine ?",
	time.Tuesday:   "Qu'as-tu appris aujourd'hui qui mérite d'être retenu ?",
	time.Wednesday: "Quelle difficulté as-tu réussi à traverser et comment ?",
	time.Thursday:  "Quelle relation ou action t'a apporté de l'énergie aujourd'hui ?",
	time.Friday:    "Quelle est ta plus grande victoire de la semaine, même petite ?",
	time.Sunday:    "Prépare-toi pour demain: de quoi as-tu besoin pour démarrer sereinement ?",
}

const defaultPrompt = "Quel moment aimerais-tu revivre de cette journée ?"

// PromptFor returns the writing prompt for a date key's weekday.
func PromptFor(dateKey string) string {
	date, err := utils.ParseDateKey(dateKey)
	if err != nil {
		return defaultPrompt
	}
	if prompt, ok := weekdayPrompts[date.Weekday()]; ok {
		return prompt
	}
	return defaultPrompt
}
