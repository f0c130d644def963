package labels

import (
	"fmt"
)

// Labels interns the raw symbols of a corpus. Ids are handed out densely in
// the order symbols are first seen so a fixed input always produces the same
// table.
type Labels struct {
	ids    map[string]int32
	labels []string
}

func New() *Labels {
	return &Labels{
		ids:    make(map[string]int32),
		labels: make([]string, 0, 64),
	}
}

func (l *Labels) Intern(label string) int32 {
	if id, has := l.ids[label]; has {
		return id
	}
	id := int32(len(l.labels))
	l.ids[label] = id
	l.labels = append(l.labels, label)
	return id
}

func (l *Labels) Id(label string) (int32, bool) {
	id, has := l.ids[label]
	return id, has
}

func (l *Labels) Label(id int32) string {
	if id < 0 || int(id) >= len(l.labels) {
		return fmt.Sprintf("label-[%d]", id)
	}
	return l.labels[id]
}

func (l *Labels) Labels(ids []int32) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, l.Label(id))
	}
	return labels
}

func (l *Labels) Size() int {
	return len(l.labels)
}
