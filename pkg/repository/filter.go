package repository

import (
	"strings"

	"gorm.io/gorm"

	"droscher.com/DrinkMenu/pkg/textfilter"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// textFilterScope lowers filter into one LIKE clause per token on column, keeping the
// contains-every-token semantics of textfilter.Filter.Matches.
func textFilterScope(filter textfilter.Filter, column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, token := range filter.Tokens() {
			db = db.Where(column+` LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(token)+"%")
		}

		return db
	}
}
