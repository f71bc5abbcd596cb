// Package counting упорядочивает строки сессии пересчёта для отображения.
package counting

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CountableItem — строка сессии вместе с данными товара; вход сортировки.
type CountableItem struct {
	EntryID  string  `json:"entry_id"`
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Brand    *string `json:"brand,omitempty"`
	ItemType *string `json:"item_type,omitempty"`
	UnitType string  `json:"unit_type"`
	Quantity float64 `json:"quantity"`
}

func newCollator() *collate.Collator {
	// Loose: без учёта регистра и диакритики
	return collate.New(language.Und, collate.Loose)
}

// compareKey сравнивает два опциональных текстовых ключа.
// Оба отсутствуют — равны; отсутствующий всегда после присутствующего,
// независимо от ранга ключа; оба присутствуют — по коллации.
func compareKey(c *collate.Collator, a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return c.CompareString(*a, *b)
}

// SortForCountMode возвращает новый срез, упорядоченный по ключам
// item_type → brand → name; первый ненулевой результат сравнения решает.
// Вход не изменяется. При равенстве всех ключей сохраняется исходный порядок.
func SortForCountMode(items []CountableItem) []CountableItem {
	c := newCollator()
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b CountableItem) int {
		if v := compareKey(c, a.ItemType, b.ItemType); v != 0 {
			return v
		}
		if v := compareKey(c, a.Brand, b.Brand); v != 0 {
			return v
		}
		return compareKey(c, &a.Name, &b.Name)
	})
	return out
}

// SortByItemType возвращает новый срез, упорядоченный по item_type с
// добивкой по name; brand не участвует. Вход не изменяется. При равенстве
// обоих ключей сохраняется исходный порядок.
func SortByItemType(items []CountableItem) []CountableItem {
	c := newCollator()
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b CountableItem) int {
		if v := compareKey(c, a.ItemType, b.ItemType); v != 0 {
			return v
		}
		return compareKey(c, &a.Name, &b.Name)
	})
	return out
}
