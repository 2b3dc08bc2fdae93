package usecase

import (
	"slices"
	"strings"

	"github.com/m-mizutani/isoshelf/pkg/domain/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAndSort returns the records whose name contains search (case-insensitive),
// ordered by mode. The input slice is never reordered. Unknown modes keep the input order.
func FilterAndSort(records []*model.FileRecord, search string, mode model.SortMode, lang language.Tag) []*model.FileRecord {
	needle := strings.ToLower(search)

	result := make([]*model.FileRecord, 0, len(records))
	for _, rec := range records {
		if needle == "" || strings.Contains(strings.ToLower(rec.Name), needle) {
			result = append(result, rec)
		}
	}

	switch mode {
	case model.SortByName, model.SortByNameDesc:
		// Collator keeps internal buffers and is not safe for concurrent use
		col := collate.New(lang)
		sign := 1
		if mode == model.SortByNameDesc {
			sign = -1
		}
		slices.SortStableFunc(result, func(a, b *model.FileRecord) int {
			return sign * col.CompareString(a.Name, b.Name)
		})

	case model.SortByDate:
		slices.SortStableFunc(result, func(a, b *model.FileRecord) int {
			return b.LastUpdated.Compare(a.LastUpdated)
		})

	case model.SortByDateOld:
		slices.SortStableFunc(result, func(a, b *model.FileRecord) int {
			return a.LastUpdated.Compare(b.LastUpdated)
		})
	}

	return result
}
