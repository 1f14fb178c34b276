package domain

// QueueItem is carried through opaquely apart from ID and Title.
type QueueItem struct {
	ID              string  `json:"id" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Thumbnail       string  `json:"thumbnail"`
	Duration        string  `json:"duration"`
	Artists         string  `json:"artists"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// InsertionIndex is where a "play next" item lands for the given focus.
// Focus -1 and focus 0 both count as no selection and insert at the front.
// Anything past the end clamps to length; nothing is ever negative.
func InsertionIndex(focus, length int) int {
	idx := 0
	if focus != 0 && focus+1 != 0 {
		idx = focus + 1
	}
	idx = min(idx, length)
	if idx < 0 {
		idx = 0
	}
	return idx
}

// ItemAt resolves index against the queue; negative indices count from the end.
func ItemAt(queue []QueueItem, index int) (QueueItem, bool) {
	if index < 0 {
		index += len(queue)
	}
	if index < 0 || index >= len(queue) {
		return QueueItem{}, false
	}
	return queue[index], true
}

// InsertAt splices item into queue at idx, which must be within [0, len].
func InsertAt(queue []QueueItem, idx int, item QueueItem) []QueueItem {
	queue = append(queue, QueueItem{})
	copy(queue[idx+1:], queue[idx:])
	queue[idx] = item
	return queue
}
