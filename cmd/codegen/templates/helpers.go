package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func typeParams(count int) string {
	return prefixedStrings("T", count)
}

func valueList(count int) string {
	return prefixedStrings("v", count)
}

func sourceParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		idx := strconv.Itoa(i)
		sb.WriteString("s")
		sb.WriteString(idx)
		sb.WriteString(" Source[T")
		sb.WriteString(idx)
		sb.WriteString("]")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func argParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		idx := strconv.Itoa(i)
		sb.WriteString("v")
		sb.WriteString(idx)
		sb.WriteString(" T")
		sb.WriteString(idx)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
