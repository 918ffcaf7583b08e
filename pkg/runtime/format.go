package runtime

import (
	"strconv"
	"strings"
)

// FormatValue renders a value the way print and the REPL show it.
func FormatValue(v Value) string {
	var b strings.Builder
	writeValue(&b, v, make(map[*Object]bool))
	return b.String()
}

func writeValue(b *strings.Builder, v Value, seen map[*Object]bool) {
	switch val := v.(type) {
	case UndefinedValue:
		b.WriteString("undefined")
	case IntValue:
		b.WriteString(strconv.Itoa(val.Val))
	case StringValue:
		b.WriteString(val.Val)
	case *FunctionValue:
		b.WriteString("function ")
		b.WriteString(val.Name)
	case *Object:
		if seen[val] {
			b.WriteString("...")
			return
		}
		seen[val] = true
		b.WriteString("{ ")
		for i, name := range val.FieldNames() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(name)
			b.WriteString(": ")
			writeValue(b, val.values[name], seen)
		}
		b.WriteString(" }")
		delete(seen, val)
	default:
		b.WriteString("undefined")
	}
}
