package format

import "strings"

// Default layout used by signal clerks.
const (
	DefaultGroupSize     = 5
	DefaultGroupsPerLine = 5
)

// Layout controls grouping. Zero fields fall back to the defaults.
type Layout struct {
	GroupSize     int
	GroupsPerLine int
}

func (l Layout) withDefaults() Layout {
	if l.GroupSize <= 0 {
		l.GroupSize = DefaultGroupSize
	}
	if l.GroupsPerLine <= 0 {
		l.GroupsPerLine = DefaultGroupsPerLine
	}
	return l
}

// Groups formats s with the default layout.
func Groups(s string) string {
	return Layout{}.Format(s)
}

// Format splits s into groups joined by spaces and lines joined by "\n".
// The last group and line may be short.
func (l Layout) Format(s string) string {
	l = l.withDefaults()
	r := []rune(s)
	if len(r) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/l.GroupSize + 1)
	for i, g := 0, 0; i < len(r); i, g = i+l.GroupSize, g+1 {
		if g > 0 {
			if g%l.GroupsPerLine == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		end := i + l.GroupSize
		if end > len(r) {
			end = len(r)
		}
		b.WriteString(string(r[i:end]))
	}
	return b.String()
}
