package grocery

import (
	"strconv"
	"strings"
	"time"
)

// NextID derives an id from now in unix milliseconds, bumping it until it is
// not in taken.
func NextID(taken map[string]bool, now time.Time) string {
	n := now.UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if !taken[id] {
			return id
		}
		n++
	}
}

func itemIDs(items []ListItem) map[string]bool {
	ids := make(map[string]bool, len(items))
	for _, it := range items {
		ids[it.ID] = true
	}
	return ids
}

// AddItem appends an unchecked item named by the trimmed name. A blank name
// leaves items unchanged and returns ok=false.
func AddItem(items []ListItem, name string, now time.Time) ([]ListItem, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return items, false
	}
	out := make([]ListItem, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, ListItem{ID: NextID(itemIDs(items), now), Name: name})
	return out, true
}

// Replace returns a copy of items with fn applied to the item matching id.
func Replace(items []ListItem, id string, fn func(ListItem) ListItem) []ListItem {
	out := make([]ListItem, len(items))
	for i, it := range items {
		if it.ID == id {
			it = fn(it)
		}
		out[i] = it
	}
	return out
}

// ToggleItem flips the checked state of the item with id.
func ToggleItem(items []ListItem, id string) []ListItem {
	return Replace(items, id, func(it ListItem) ListItem {
		it.Checked = !it.Checked
		return it
	})
}

// EditItem renames the item with id. A blank name is ignored.
func EditItem(items []ListItem, id, name string) []ListItem {
	name = strings.TrimSpace(name)
	if name == "" {
		return items
	}
	return Replace(items, id, func(it ListItem) ListItem {
		it.Name = name
		return it
	})
}

// DeleteItem removes the item with id.
func DeleteItem(items []ListItem, id string) []ListItem {
	out := make([]ListItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// SetQuantity adds delta to the item's quantity, never going below one.
func SetQuantity(items []ListItem, id string, delta int) []ListItem {
	return Replace(items, id, func(it ListItem) ListItem {
		it.Quantity = max(1, it.Qty()+delta)
		return it
	})
}
